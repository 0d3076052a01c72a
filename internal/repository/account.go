package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/shelter_guard/internal/models"
	"github.com/shenikar/shelter_guard/internal/service"
)

type AccountRepository struct {
	db *pgxpool.Pool
}

func NewAccountRepository(db *pgxpool.Pool) service.AccountRepository {
	return &AccountRepository{db: db}
}

// CreateAuthUser создает учетную запись; роль сохраняется как метаданные регистрации
func (r *AccountRepository) CreateAuthUser(ctx context.Context, user *models.AuthUser) error {
	query := `
		INSERT INTO auth_users (email, password_hash, role, sub_role)
		VALUES ($1, $2, $3, $4) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.SubRole,
	).Scan(&user.ID, &user.CreatedAt)
	return mapError("failed to create auth user", err)
}

func (r *AccountRepository) GetAuthUserByEmail(ctx context.Context, email string) (*models.AuthUser, error) {
	user := &models.AuthUser{}
	query := `
		SELECT id, email, password_hash, role, sub_role, created_at
		FROM auth_users
		WHERE email = $1;
	`
	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.SubRole,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, mapError("failed to get auth user by email", err)
	}
	return user, nil
}

// EnsureProfile вставляет профиль, существующую строку не трогает
func (r *AccountRepository) EnsureProfile(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO profiles (id, role, sub_role)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO NOTHING;
	`
	_, err := r.db.Exec(ctx, query, account.ID, account.Role, account.SubRole)
	return mapError("failed to ensure profile", err)
}

func (r *AccountRepository) GetProfile(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	account := &models.Account{}
	query := `
		SELECT id, role, sub_role, created_at
		FROM profiles
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&account.ID,
		&account.Role,
		&account.SubRole,
		&account.CreatedAt,
	)
	if err != nil {
		return nil, mapError("failed to get profile", err)
	}
	return account, nil
}
