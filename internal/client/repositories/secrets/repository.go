// Package secrets stores sealed prover secrets in the client vault.
package secrets

import (
	"context"

	"github.com/dmitrijs2005/zkpauth/internal/client/models"
)

// Repository persists one SealedSecret per user. Get returns (nil, nil)
// when the user has no stored secret.
type Repository interface {
	Get(ctx context.Context, user string) (*models.SealedSecret, error)
	Set(ctx context.Context, s *models.SealedSecret) error
	Delete(ctx context.Context, user string) error
	ListUsers(ctx context.Context) ([]string, error)
}
