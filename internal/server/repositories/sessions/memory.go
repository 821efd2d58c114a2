package sessions

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/zkpauth/internal/common"
	"github.com/dmitrijs2005/zkpauth/internal/server/models"
)

type MemoryRepository struct {
	mu       sync.Mutex
	sessions map[string]models.Session
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryRepository creates an in-memory session store. A ttl of zero
// disables expiry.
func NewMemoryRepository(ttl time.Duration) *MemoryRepository {
	return &MemoryRepository{
		sessions: make(map[string]models.Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (r *MemoryRepository) expired(s models.Session, now time.Time) bool {
	return r.ttl > 0 && now.Sub(s.CreatedAt) > r.ttl
}

func (r *MemoryRepository) Create(ctx context.Context, authID string, session *models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[authID]; ok {
		return fmt.Errorf("session %q: %w", authID, common.ErrAlreadyExists)
	}
	r.sessions[authID] = *session

	return nil
}

func (r *MemoryRepository) Take(ctx context.Context, authID string) (*models.Session, error) {
	r.mu.Lock()
	session, ok := r.sessions[authID]
	if ok {
		delete(r.sessions, authID)
	}
	r.mu.Unlock()

	if !ok || r.expired(session, r.now()) {
		return nil, common.ErrNotFound
	}

	return &session, nil
}

func (r *MemoryRepository) Sweep(ctx context.Context, now time.Time) (int, error) {
	if r.ttl <= 0 {
		return 0, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, s := range r.sessions {
		if r.expired(s, now) {
			delete(r.sessions, id)
			removed++
		}
	}

	return removed, nil
}

// Len reports the number of stored sessions, expired ones included.
func (r *MemoryRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
