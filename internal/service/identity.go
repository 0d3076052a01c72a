package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/shelter_guard/internal/auth"
	"github.com/shenikar/shelter_guard/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=identity.go -destination=mocks/identity_mock.go -package=mocks

const minPasswordLength = 6

// AccountRepository - учетные записи провайдера идентификации и профили
type AccountRepository interface {
	CreateAuthUser(ctx context.Context, user *models.AuthUser) error
	GetAuthUserByEmail(ctx context.Context, email string) (*models.AuthUser, error)
	// EnsureProfile создает строку профиля, если ее еще нет
	EnsureProfile(ctx context.Context, account *models.Account) error
	GetProfile(ctx context.Context, id uuid.UUID) (*models.Account, error)
}

// TokenManager выпускает и проверяет access-токены
type TokenManager interface {
	Issue(user *models.AuthUser) (string, time.Time, error)
	Parse(token string) (*auth.Claims, error)
}

// RoleChecker - проверка возможностей аккаунта перед записью
type RoleChecker interface {
	AccountHasRole(ctx context.Context, accountID uuid.UUID, role models.Role) error
}

// IdentityService определяет контракт регистрации, входа и распознавания вызывающего
type IdentityService interface {
	RoleChecker
	SignUp(ctx context.Context, email, password string, role models.Role, subRole models.SubRole) (*models.Account, error)
	SignIn(ctx context.Context, email, password string) (*models.Session, error)
	CurrentAccount(ctx context.Context, token string) (*models.Account, error)
	ResolveRole(ctx context.Context, accountID uuid.UUID) (models.Role, models.SubRole, error)
}

type identityService struct {
	repo   AccountRepository
	tokens TokenManager
	logger *logrus.Logger
}

func NewIdentityService(repo AccountRepository, tokens TokenManager, logger *logrus.Logger) IdentityService {
	return &identityService{
		repo:   repo,
		tokens: tokens,
		logger: logger,
	}
}

// SignUp создает учетную запись и затем профиль.
// Ошибка записи профиля не прерывает регистрацию: профиль будет восстановлен позже.
func (s *identityService) SignUp(ctx context.Context, email, password string, role models.Role, subRole models.SubRole) (*models.Account, error) {
	email = normalizeEmail(email)
	log := s.logger.WithFields(logrus.Fields{
		"service": "identity",
		"method":  "SignUp",
		"role":    role,
	})

	if email == "" {
		return nil, validationError("email is required")
	}
	if len(password) < minPasswordLength {
		return nil, validationError("password must be at least %d characters", minPasswordLength)
	}
	subRole, err := normalizeRole(role, subRole)
	if err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("service: could not sign up: %w", err)
	}

	user := &models.AuthUser{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		SubRole:      subRole,
	}
	if err := s.repo.CreateAuthUser(ctx, user); err != nil {
		if errors.Is(err, ErrConflict) {
			log.Info("Sign up rejected: email already registered")
			return nil, ErrEmailTaken
		}
		log.WithError(err).Error("Failed to create auth user")
		return nil, fmt.Errorf("service: could not sign up: %w", err)
	}

	account := &models.Account{
		ID:        user.ID,
		Email:     user.Email,
		Role:      user.Role,
		SubRole:   user.SubRole,
		CreatedAt: user.CreatedAt,
	}
	if err := s.repo.EnsureProfile(ctx, account); err != nil {
		log.WithError(err).WithField("account_id", user.ID).Warn("Profile was not materialized after sign up")
		account.ProfileMissing = true
	}

	log.WithField("account_id", account.ID).Info("Account signed up")
	return account, nil
}

// SignIn проверяет пароль и выдает сессию с ролью для маршрутизации клиента
func (s *identityService) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	email = normalizeEmail(email)
	log := s.logger.WithFields(logrus.Fields{
		"service": "identity",
		"method":  "SignIn",
	})

	user, err := s.repo.GetAuthUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		log.WithError(err).Error("Failed to load auth user")
		return nil, fmt.Errorf("service: could not sign in: %w", err)
	}
	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("service: could not sign in: %w", err)
	}

	token, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		log.WithError(err).Error("Failed to issue access token")
		return nil, fmt.Errorf("service: could not sign in: %w", err)
	}

	account := &models.Account{
		ID:        user.ID,
		Email:     user.Email,
		Role:      user.Role,
		SubRole:   user.SubRole,
		CreatedAt: user.CreatedAt,
	}
	role, subRole, err := s.ResolveRole(ctx, user.ID)
	switch {
	case err == nil:
		account.Role, account.SubRole = role, subRole
	case errors.Is(err, ErrUnauthenticated):
		account.ProfileMissing = true
	default:
		return nil, err
	}

	log.WithField("account_id", user.ID).Info("Account signed in")
	return &models.Session{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Account:     account,
	}, nil
}

// CurrentAccount распознает вызывающего по токену. Если профиля нет,
// аккаунт собирается из метаданных токена и помечается ProfileMissing.
func (s *identityService) CurrentAccount(ctx context.Context, token string) (*models.Account, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}

	id := claims.AccountID()
	profile, err := s.repo.GetProfile(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return &models.Account{
				ID:             id,
				Email:          claims.Email,
				Role:           claims.Role,
				SubRole:        claims.SubRole,
				ProfileMissing: true,
			}, nil
		}
		return nil, fmt.Errorf("service: could not resolve account: %w", err)
	}
	profile.Email = claims.Email
	return profile, nil
}

// ResolveRole читает роль из профиля один раз на момент решения
func (s *identityService) ResolveRole(ctx context.Context, accountID uuid.UUID) (models.Role, models.SubRole, error) {
	profile, err := s.repo.GetProfile(ctx, accountID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", "", fmt.Errorf("%w: no profile for account %s", ErrUnauthenticated, accountID)
		}
		return "", "", fmt.Errorf("service: could not resolve role: %w", err)
	}
	return profile.Role, profile.SubRole, nil
}

func (s *identityService) AccountHasRole(ctx context.Context, accountID uuid.UUID, role models.Role) error {
	actual, _, err := s.ResolveRole(ctx, accountID)
	if err != nil {
		return err
	}
	if actual != role {
		s.logger.WithFields(logrus.Fields{
			"service":    "identity",
			"method":     "AccountHasRole",
			"account_id": accountID,
			"required":   role,
			"actual":     actual,
		}).Warn("Role check failed")
		return ErrRoleNotPermitted
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// normalizeRole проверяет сочетание роли и подроли. У ищущего подроли нет.
func normalizeRole(role models.Role, subRole models.SubRole) (models.SubRole, error) {
	switch role {
	case models.RoleSeeker:
		return models.SubRoleNone, nil
	case models.RoleProvider:
		switch subRole {
		case models.SubRoleMental, models.SubRolePhysical:
			return subRole, nil
		default:
			return "", validationError("provider sub role must be %q or %q", models.SubRoleMental, models.SubRolePhysical)
		}
	default:
		return "", validationError("unknown role %q", role)
	}
}
