package models

import (
	"time"

	"github.com/google/uuid"
)

// Shelter - физическое укрытие, зарегистрированное волонтером
type Shelter struct {
	ID         uuid.UUID `json:"id"`
	ProviderID uuid.UUID `json:"provider_id"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	CreatedAt  time.Time `json:"created_at"`
}
