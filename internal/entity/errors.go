package entity

import (
	"errors"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrAlreadyExists     = errors.New("already exists")
	ErrServiceInactive   = errors.New("service is not active")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrStatusLocked      = errors.New("status locked")
	ErrInvalidSignature  = errors.New("invalid signature")
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrForbidden         = errors.New("forbidden")
)
