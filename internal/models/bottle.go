package models

import (
	"time"

	"github.com/google/uuid"
)

type BottleStatus string

const (
	BottleStatusOpen     BottleStatus = "open"
	BottleStatusResolved BottleStatus = "resolved"
)

// Bottle - просьба о помощи от ищущего убежище
type Bottle struct {
	ID        uuid.UUID         `json:"id"`
	UserID    uuid.UUID         `json:"user_id"`
	Content   string            `json:"content"`
	Status    BottleStatus      `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	Responses []*BottleResponse `json:"responses"`
}

// BottleResponse - ответ волонтера с контактами
type BottleResponse struct {
	ID                uuid.UUID `json:"id"`
	BottleID          uuid.UUID `json:"bottle_id"`
	ProviderID        uuid.UUID `json:"provider_id"`
	ContactInfoShared string    `json:"contact_info_shared"`
	Message           string    `json:"message"`
	CreatedAt         time.Time `json:"created_at"`
}
