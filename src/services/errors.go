package services

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

var (
	// ErrValidation marks input that is missing or malformed.
	ErrValidation = errors.New("invalid input")
	// ErrInvalidCredentials is returned when an email/password pair does not match.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrNotFoundOrUnauthorized is returned when a target is absent or not owned by the caller.
	ErrNotFoundOrUnauthorized = errors.New("not found or not owned by collector")
	// ErrStorage hides database failures from callers.
	ErrStorage = errors.New("storage failure")
)

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// storageError logs the underlying failure and returns a generic error.
func storageError(op string, err error) error {
	logrus.WithError(err).WithField("op", op).Error("database operation failed")
	return fmt.Errorf("%s: %w", op, ErrStorage)
}
