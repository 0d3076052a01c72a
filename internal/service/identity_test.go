package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/shelter_guard/internal/auth"
	"github.com/shenikar/shelter_guard/internal/models"
	"github.com/shenikar/shelter_guard/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

// newTestIdentityService - сервис с мок-репозиторием и настоящим менеджером токенов
func newTestIdentityService(t *testing.T) (*identityService, *mocks.MockAccountRepository, *auth.TokenManager) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockAccountRepository(ctrl)
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	svc := NewIdentityService(repoMock, tokens, newTestLogger())
	return svc.(*identityService), repoMock, tokens
}

func TestSignUp_Provider(t *testing.T) {
	svc, repoMock, _ := newTestIdentityService(t)
	ctx := context.Background()

	repoMock.EXPECT().
		CreateAuthUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.AuthUser) error {
			assert.Equal(t, "helper@example.com", u.Email)
			assert.NotEqual(t, "secret1", u.PasswordHash)
			assert.Equal(t, models.SubRolePhysical, u.SubRole)
			u.ID = uuid.New()
			return nil
		}).Times(1)
	repoMock.EXPECT().EnsureProfile(ctx, gomock.Any()).Return(nil).Times(1)

	account, err := svc.SignUp(ctx, "  Helper@Example.com ", "secret1", models.RoleProvider, models.SubRolePhysical)

	require.NoError(t, err)
	assert.Equal(t, models.RoleProvider, account.Role)
	assert.False(t, account.ProfileMissing)
}

func TestSignUp_SeekerDropsSubRole(t *testing.T) {
	svc, repoMock, _ := newTestIdentityService(t)
	ctx := context.Background()

	repoMock.EXPECT().CreateAuthUser(ctx, gomock.Any()).Return(nil).Times(1)
	repoMock.EXPECT().
		EnsureProfile(ctx, gomock.Any()).
		Do(func(_ context.Context, a *models.Account) {
			assert.Equal(t, models.RoleSeeker, a.Role)
			assert.Equal(t, models.SubRoleNone, a.SubRole)
		}).Return(nil).Times(1)

	_, err := svc.SignUp(ctx, "seeker@example.com", "secret1", models.RoleSeeker, models.SubRoleMental)

	require.NoError(t, err)
}

func TestSignUp_ProfileGapIsNotFatal(t *testing.T) {
	svc, repoMock, _ := newTestIdentityService(t)
	ctx := context.Background()

	repoMock.EXPECT().CreateAuthUser(ctx, gomock.Any()).Return(nil).Times(1)
	repoMock.EXPECT().EnsureProfile(ctx, gomock.Any()).Return(ErrStoreUnavailable).Times(1)

	account, err := svc.SignUp(ctx, "seeker@example.com", "secret1", models.RoleSeeker, "")

	require.NoError(t, err)
	assert.True(t, account.ProfileMissing)
}

func TestSignUp_Validation(t *testing.T) {
	svc, _, _ := newTestIdentityService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		role     models.Role
		subRole  models.SubRole
	}{
		{"empty email", " ", "secret1", models.RoleSeeker, ""},
		{"short password", "a@b.c", "123", models.RoleSeeker, ""},
		{"unknown role", "a@b.c", "secret1", models.Role("admin"), ""},
		{"provider without sub role", "a@b.c", "secret1", models.RoleProvider, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SignUp(ctx, tt.email, tt.password, tt.role, tt.subRole)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestSignUp_EmailTaken(t *testing.T) {
	svc, repoMock, _ := newTestIdentityService(t)
	ctx := context.Background()

	repoMock.EXPECT().CreateAuthUser(ctx, gomock.Any()).Return(ErrConflict).Times(1)
	repoMock.EXPECT().EnsureProfile(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.SignUp(ctx, "taken@example.com", "secret1", models.RoleSeeker, "")

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignIn_Success(t *testing.T) {
	svc, repoMock, tokens := newTestIdentityService(t)
	ctx := context.Background()
	hash, err := auth.HashPassword("secret1")
	require.NoError(t, err)
	user := &models.AuthUser{ID: uuid.New(), Email: "helper@example.com", PasswordHash: hash, Role: models.RoleProvider, SubRole: models.SubRoleMental}

	repoMock.EXPECT().GetAuthUserByEmail(ctx, "helper@example.com").Return(user, nil).Times(1)
	repoMock.EXPECT().GetProfile(ctx, user.ID).Return(&models.Account{ID: user.ID, Role: models.RoleProvider, SubRole: models.SubRoleMental}, nil).Times(1)

	session, err := svc.SignIn(ctx, "helper@example.com", "secret1")

	require.NoError(t, err)
	assert.Equal(t, models.RoleProvider, session.Account.Role)
	claims, err := tokens.Parse(session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.AccountID())
}

func TestSignIn_WrongPassword(t *testing.T) {
	svc, repoMock, _ := newTestIdentityService(t)
	ctx := context.Background()
	hash, err := auth.HashPassword("secret1")
	require.NoError(t, err)

	repoMock.EXPECT().GetAuthUserByEmail(ctx, "a@b.c").Return(&models.AuthUser{ID: uuid.New(), PasswordHash: hash}, nil).Times(1)

	_, err = svc.SignIn(ctx, "a@b.c", "wrong-password")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestSignIn_UnknownEmail(t *testing.T) {
	svc, repoMock, _ := newTestIdentityService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetAuthUserByEmail(ctx, "nobody@b.c").Return(nil, ErrNotFound).Times(1)

	_, err := svc.SignIn(ctx, "nobody@b.c", "secret1")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCurrentAccount_WithProfile(t *testing.T) {
	svc, repoMock, tokens := newTestIdentityService(t)
	ctx := context.Background()
	user := &models.AuthUser{ID: uuid.New(), Email: "s@b.c", Role: models.RoleSeeker}
	token, _, err := tokens.Issue(user)
	require.NoError(t, err)

	repoMock.EXPECT().GetProfile(ctx, user.ID).Return(&models.Account{ID: user.ID, Role: models.RoleSeeker}, nil).Times(1)

	account, err := svc.CurrentAccount(ctx, token)

	require.NoError(t, err)
	assert.Equal(t, user.ID, account.ID)
	assert.Equal(t, "s@b.c", account.Email)
	assert.False(t, account.ProfileMissing)
}

func TestCurrentAccount_ProfileMissingUsesTokenMetadata(t *testing.T) {
	svc, repoMock, tokens := newTestIdentityService(t)
	ctx := context.Background()
	user := &models.AuthUser{ID: uuid.New(), Role: models.RoleSeeker}
	token, _, err := tokens.Issue(user)
	require.NoError(t, err)

	repoMock.EXPECT().GetProfile(ctx, user.ID).Return(nil, ErrNotFound).Times(1)

	account, err := svc.CurrentAccount(ctx, token)

	require.NoError(t, err)
	assert.True(t, account.ProfileMissing)
	assert.Equal(t, models.RoleSeeker, account.Role)
}

func TestCurrentAccount_InvalidToken(t *testing.T) {
	svc, _, _ := newTestIdentityService(t)

	_, err := svc.CurrentAccount(context.Background(), "garbage")

	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestCurrentAccount_StoreDown(t *testing.T) {
	svc, repoMock, tokens := newTestIdentityService(t)
	ctx := context.Background()
	user := &models.AuthUser{ID: uuid.New(), Role: models.RoleSeeker}
	token, _, err := tokens.Issue(user)
	require.NoError(t, err)

	repoMock.EXPECT().GetProfile(ctx, user.ID).Return(nil, ErrStoreUnavailable).Times(1)

	_, err = svc.CurrentAccount(ctx, token)

	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.False(t, errors.Is(err, ErrUnauthenticated))
}

func TestAccountHasRole(t *testing.T) {
	svc, repoMock, _ := newTestIdentityService(t)
	ctx := context.Background()
	provider := uuid.New()
	seeker := uuid.New()
	ghost := uuid.New()

	repoMock.EXPECT().GetProfile(ctx, provider).Return(&models.Account{ID: provider, Role: models.RoleProvider}, nil).AnyTimes()
	repoMock.EXPECT().GetProfile(ctx, seeker).Return(&models.Account{ID: seeker, Role: models.RoleSeeker}, nil).AnyTimes()
	repoMock.EXPECT().GetProfile(ctx, ghost).Return(nil, ErrNotFound).AnyTimes()

	assert.NoError(t, svc.AccountHasRole(ctx, provider, models.RoleProvider))
	assert.ErrorIs(t, svc.AccountHasRole(ctx, seeker, models.RoleProvider), ErrRoleNotPermitted)
	assert.ErrorIs(t, svc.AccountHasRole(ctx, ghost, models.RoleProvider), ErrUnauthenticated)
}

func TestResolveRole(t *testing.T) {
	svc, repoMock, _ := newTestIdentityService(t)
	ctx := context.Background()
	id := uuid.New()

	repoMock.EXPECT().GetProfile(ctx, id).Return(&models.Account{ID: id, Role: models.RoleProvider, SubRole: models.SubRoleMental}, nil).Times(1)

	role, subRole, err := svc.ResolveRole(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, models.RoleProvider, role)
	assert.Equal(t, models.SubRoleMental, subRole)
}
