package models

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleSeeker   Role = "seeker"
	RoleProvider Role = "provider"
)

// SubRole уточняет вид помощи, которую оказывает волонтер
type SubRole string

const (
	SubRoleNone     SubRole = ""
	SubRoleMental   SubRole = "mental"
	SubRolePhysical SubRole = "physical"
)

// Account - профиль пользователя (таблица profiles)
type Account struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email,omitempty"`
	Role      Role      `json:"role"`
	SubRole   SubRole   `json:"sub_role,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	// ProfileMissing выставляется, когда токен валиден, но строка профиля еще не создана
	ProfileMissing bool `json:"-"`
}

// AuthUser - учетная запись провайдера идентификации (таблица auth_users)
type AuthUser struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         Role
	SubRole      SubRole
	CreatedAt    time.Time
}

// Session выдается после успешного входа
type Session struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	Account     *Account  `json:"account"`
}
