package core

import "errors"

var (
	ErrBadArguments       = errors.New("bad arguments")
	ErrTooLarge           = errors.New("text too large")
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already in progress")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrServiceUnavailable = errors.New("service unavailable")
)
