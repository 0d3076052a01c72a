package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shenikar/shelter_guard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser() *models.AuthUser {
	return &models.AuthUser{
		ID:      uuid.New(),
		Email:   "helper@example.com",
		Role:    models.RoleProvider,
		SubRole: models.SubRoleMental,
	}
}

func TestTokenManager_IssueAndParse(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	user := newTestUser()

	token, expiresAt, err := m.Issue(user)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.AccountID())
	assert.Equal(t, models.RoleProvider, claims.Role)
	assert.Equal(t, models.SubRoleMental, claims.SubRole)
	assert.Equal(t, user.Email, claims.Email)
}

func TestTokenManager_Expired(t *testing.T) {
	m := NewTokenManager("secret", time.Minute)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := m.Issue(newTestUser())
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Parse(token)

	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	token, _, err := NewTokenManager("secret", time.Hour).Issue(newTestUser())
	require.NoError(t, err)

	_, err = NewTokenManager("other", time.Hour).Parse(token)

	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenManager_Missing(t *testing.T) {
	_, err := NewTokenManager("secret", time.Hour).Parse("   ")
	assert.ErrorIs(t, err, ErrTokenMissing)
}

func TestTokenManager_RejectsNonUUIDSubject(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	claims := Claims{RegisteredClaims: jwt.RegisteredClaims{
		Issuer:    "shelter_guard",
		Subject:   "not-a-uuid",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = m.Parse(token)

	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)

	assert.NoError(t, CheckPassword(hash, "correct horse"))
	assert.ErrorIs(t, CheckPassword(hash, "wrong"), ErrPasswordMismatch)
}
