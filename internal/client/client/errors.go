package client

import "errors"

var (
	ErrUnavailable       = errors.New("server unavailable")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrAlreadyRegistered = errors.New("user already registered")
	ErrNotFound          = errors.New("user or challenge not found")
	ErrInvalidArgument   = errors.New("request rejected as malformed")
	ErrBadResponse       = errors.New("malformed server response")
)

var (
	ErrLocalDataNotAvailable = errors.New("no local secret for user")
	ErrLocalDataExists       = errors.New("local secret for user already exists")
)
