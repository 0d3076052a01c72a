package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shenikar/shelter_guard/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: service.ErrNotFound},
		{name: "wrapped no rows", err: fmt.Errorf("scan: %w", pgx.ErrNoRows), want: service.ErrNotFound},
		{
			name: "foreign key",
			err:  &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "bottles_user_id_fkey"},
			want: service.ErrConstraintViolation,
		},
		{
			name: "unique",
			err:  &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "auth_users_email_key"},
			want: service.ErrConflict,
		},
		{
			name: "check",
			err:  &pgconn.PgError{Code: pgerrcode.CheckViolation},
			want: service.ErrValidation,
		},
		{
			name: "other pg error",
			err:  &pgconn.PgError{Code: pgerrcode.DeadlockDetected},
			want: service.ErrStoreUnavailable,
		},
		{name: "connection error", err: errors.New("dial tcp: connection refused"), want: service.ErrStoreUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError("op", tt.err)
			assert.ErrorIs(t, got, tt.want)
		})
	}

	assert.NoError(t, mapError("op", nil))
}

func TestMapError_KeepsConstraintName(t *testing.T) {
	err := mapError("insert bottle", &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "bottles_user_id_fkey"})

	assert.ErrorContains(t, err, "insert bottle")
	assert.ErrorContains(t, err, "bottles_user_id_fkey")
}
