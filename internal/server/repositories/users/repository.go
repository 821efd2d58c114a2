// Package users holds the credential store: the mapping from identity to
// registered public keys.
package users

import (
	"context"

	"github.com/dmitrijs2005/zkpauth/internal/server/models"
)

type Repository interface {
	// Create stores a new record. It returns common.ErrAlreadyExists if the
	// identity is taken; at most one Create per identity ever succeeds.
	Create(ctx context.Context, user *models.UserRecord) error
	// GetByIdentity returns common.ErrNotFound for unknown identities.
	GetByIdentity(ctx context.Context, identity string) (*models.UserRecord, error)
}
