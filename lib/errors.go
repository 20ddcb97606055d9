package lib

import (
	"errors"

	"github.com/uptrace/bun/driver/pgdriver"
)

// Database errors
var (
	ErrConflict = errors.New("conflict")
	ErrNotFound = errors.New("not found")
)

// Auth errors
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
	ErrInvalidCode  = errors.New("invalid verification code")
	ErrCodeExpired  = errors.New("verification code expired")
	ErrTooManyTries = errors.New("too many verification attempts")
)

// Checkout errors
var (
	ErrEmptyCart        = errors.New("cart is empty")
	ErrInvalidSignature = errors.New("invalid payment signature")
)

func MapPgError(err error) error {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		switch pgErr.Field('C') { // SQLSTATE
		case "23505": // unique_violation
			return ErrConflict
		case "P0002": // no_data_found
			return ErrNotFound
		}
	}
	return err
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsUniqueViolation(err error) bool {
	return errors.Is(err, ErrConflict)
}

// GetDetailForLogging returns the error message for log fields without
// nil panics when err is nil
func GetDetailForLogging(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
