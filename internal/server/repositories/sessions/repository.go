// Package sessions holds the session store: short-lived challenge state
// keyed by auth_id and consumed exactly once.
package sessions

import (
	"context"
	"time"

	"github.com/dmitrijs2005/zkpauth/internal/server/models"
)

type Repository interface {
	// Create inserts a session. It returns common.ErrAlreadyExists if authID
	// is already in use.
	Create(ctx context.Context, authID string, session *models.Session) error
	// Take atomically removes and returns the session. Unknown, consumed
	// and expired sessions all yield common.ErrNotFound.
	Take(ctx context.Context, authID string) (*models.Session, error)
	// Sweep deletes sessions that expired before now and reports how many
	// were removed.
	Sweep(ctx context.Context, now time.Time) (int, error)
}
