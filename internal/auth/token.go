package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/shenikar/shelter_guard/internal/models"
)

var (
	ErrTokenMissing = errors.New("access token is required")
	ErrTokenInvalid = errors.New("access token is invalid")
	ErrTokenExpired = errors.New("access token is expired")
)

// Claims - содержимое access-токена. Роль передается как метаданные,
// чтобы вызывающего можно было распознать до появления строки профиля.
type Claims struct {
	jwt.RegisteredClaims
	Email   string         `json:"email,omitempty"`
	Role    models.Role    `json:"role"`
	SubRole models.SubRole `json:"sub_role,omitempty"`
}

// TokenManager выпускает и проверяет HS256 токены
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: "shelter_guard",
		now:    time.Now,
	}
}

// Issue подписывает токен для пользователя
func (m *TokenManager) Issue(user *models.AuthUser) (string, time.Time, error) {
	now := m.now()
	expiresAt := now.Add(m.ttl)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
		Email:   user.Email,
		Role:    user.Role,
		SubRole: user.SubRole,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign access token: %w", err)
	}
	return signed, expiresAt, nil
}

// Parse проверяет подпись, издателя и срок действия токена
func (m *TokenManager) Parse(token string) (*Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrTokenMissing
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	if _, err := uuid.Parse(claims.Subject); err != nil {
		return nil, fmt.Errorf("%w: subject is not an account id", ErrTokenInvalid)
	}
	return &claims, nil
}

// AccountID возвращает идентификатор аккаунта из subject
func (c *Claims) AccountID() uuid.UUID {
	id, _ := uuid.Parse(c.Subject)
	return id
}
