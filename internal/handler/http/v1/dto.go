package v1

import (
	"time"

	"github.com/google/uuid"
)

// SignUpRequest DTO для регистрации
// @Description DTO для регистрации
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=seeker provider"`
	SubRole  string `json:"sub_role,omitempty" validate:"omitempty,oneof=mental physical"`
}

// SignInRequest DTO для входа
// @Description DTO для входа
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AccountResponse DTO с данными аккаунта
// @Description DTO с данными аккаунта
type AccountResponse struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email,omitempty"`
	Role           string    `json:"role"`
	SubRole        string    `json:"sub_role,omitempty"`
	CreatedAt      time.Time `json:"created_at,omitzero"`
	ProfileMissing bool      `json:"profile_missing"`
}

// SessionResponse DTO с токеном доступа
// @Description DTO с токеном доступа
type SessionResponse struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	ExpiresAt   time.Time       `json:"expires_at"`
	Account     AccountResponse `json:"account"`
}

// SubmitBottleRequest DTO для новой просьбы о помощи
// @Description DTO для новой просьбы о помощи
type SubmitBottleRequest struct {
	Content string `json:"content" validate:"required,max=4000"`
}

// RespondToBottleRequest DTO для ответа волонтера
// @Description DTO для ответа волонтера
type RespondToBottleRequest struct {
	ContactInfo string `json:"contact_info" validate:"required,max=255"`
	Message     string `json:"message,omitempty" validate:"max=2000"`
}

// BottleReplyResponse DTO ответа волонтера на просьбу
// @Description DTO ответа волонтера на просьбу
type BottleReplyResponse struct {
	ID          uuid.UUID `json:"id"`
	BottleID    uuid.UUID `json:"bottle_id"`
	ProviderID  uuid.UUID `json:"provider_id"`
	ContactInfo string    `json:"contact_info"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}

// BottleResponse DTO просьбы вместе с ответами
// @Description DTO просьбы вместе с ответами
type BottleResponse struct {
	ID        uuid.UUID              `json:"id"`
	UserID    uuid.UUID              `json:"user_id"`
	Content   string                 `json:"content"`
	Status    string                 `json:"status"`
	CreatedAt time.Time              `json:"created_at"`
	Responses []*BottleReplyResponse `json:"responses"`
}

// RegisterShelterRequest DTO для регистрации укрытия.
// Координаты - указатели, чтобы отличать 0 от отсутствия значения.
// @Description DTO для регистрации укрытия
type RegisterShelterRequest struct {
	Name      string   `json:"name" validate:"max=255"`
	Address   string   `json:"address" validate:"max=500"`
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// ShelterResponse DTO укрытия
// @Description DTO укрытия
type ShelterResponse struct {
	ID            uuid.UUID `json:"id"`
	ProviderID    uuid.UUID `json:"provider_id"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	CreatedAt     time.Time `json:"created_at"`
	NavigationURL string    `json:"navigation_url"`
}

// RankedShelterResponse DTO укрытия с расстоянием до точки отсчета
// @Description DTO укрытия с расстоянием до точки отсчета
type RankedShelterResponse struct {
	ShelterResponse
	DistanceKm float64 `json:"distance_km"`
}

// CoordinateResponse DTO координаты
// @Description DTO координаты
type CoordinateResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NearbySheltersResponse DTO ранжированного списка укрытий
// @Description DTO ранжированного списка укрытий
type NearbySheltersResponse struct {
	Origin   CoordinateResponse       `json:"origin"`
	Fallback bool                     `json:"fallback"`
	Shelters []*RankedShelterResponse `json:"shelters"`
}
