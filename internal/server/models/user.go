package models

import (
	"time"

	"github.com/dmitrijs2005/zkpauth/internal/zkp"
)

// UserRecord is the long-lived public key material registered for an
// identity. It is never mutated after registration.
type UserRecord struct {
	Identity  string
	Keys      zkp.PublicKeys
	CreatedAt time.Time
}
