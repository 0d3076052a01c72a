package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shenikar/shelter_guard/internal/service"
)

// mapError переводит ошибку postgres в вид ошибки сервиса, сохраняя исходный текст
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, service.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.ForeignKeyViolation:
			return fmt.Errorf("%s: %w: %s", op, service.ErrConstraintViolation, pgErr.ConstraintName)
		case pgerrcode.UniqueViolation:
			return fmt.Errorf("%s: %w: %s", op, service.ErrConflict, pgErr.ConstraintName)
		case pgerrcode.CheckViolation, pgerrcode.NotNullViolation, pgerrcode.InvalidTextRepresentation:
			return fmt.Errorf("%s: %w: %s", op, service.ErrValidation, pgErr.Message)
		}
	}
	return fmt.Errorf("%s: %w: %v", op, service.ErrStoreUnavailable, err)
}
