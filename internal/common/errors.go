// Package common defines sentinel errors and constants shared by the client
// and server layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// ErrInvalidArgument marks a malformed or missing request field. It is
	// always detected before any store is touched.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrAlreadyExists marks a registration conflict.
	ErrAlreadyExists = errors.New("already exists")

	// ErrNotFound covers unknown identities and unknown, expired or already
	// consumed sessions alike.
	ErrNotFound = errors.New("not found")

	// ErrPermissionDenied marks a proof that failed verification.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrInternal marks a violated store invariant.
	ErrInternal = errors.New("internal error")

	// ErrInvalidToken marks a session token that failed to parse or verify.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired marks a session token past its expiry.
	ErrTokenExpired = errors.New("token expired")
)
