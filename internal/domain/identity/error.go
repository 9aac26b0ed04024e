package identity

import (
	"errors"
)

var (
	ErrNotFound     = errors.New("identity not found")
	ErrInvalidInput = errors.New("invalid registration input")
	ErrInvalidAuth  = errors.New("invalid credentials")
	ErrLoginTaken   = errors.New("login already registered")
)
