// Package common defines shared sentinel errors used across client and
// server layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// repository-level errors
	ErrorNotFound = errors.New("not found")

	// service-level errors
	ErrorInternal      = errors.New("internal error")
	ErrorUnauthorized  = errors.New("unauthorized")
	ErrorForbidden     = errors.New("forbidden")
	ErrorValidation    = errors.New("validation error")
	ErrorAlreadyExists = errors.New("already exists")

	// auth errors (invalid or malformed token)
	ErrInvalidToken = errors.New("invalid token")

	// token lifecycle errors
	ErrTokenExpired = errors.New("token expired")
)
