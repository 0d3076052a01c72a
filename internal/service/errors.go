package service

import (
	"errors"
	"fmt"
)

// Виды ошибок, которые сервисы возвращают наружу. Репозитории оборачивают
// ошибки хранилища в ErrConstraintViolation, ErrNotFound, ErrConflict или ErrStoreUnavailable.
var (
	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrValidation          = errors.New("validation error")
	ErrNotFound            = errors.New("not found")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrConflict            = errors.New("conflict")
	ErrStoreUnavailable    = errors.New("store unavailable")

	ErrRoleNotPermitted   = fmt.Errorf("%w: role not permitted", ErrUnauthenticated)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", ErrUnauthenticated)
	ErrEmailTaken         = fmt.Errorf("%w: email already registered", ErrConflict)
)

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
