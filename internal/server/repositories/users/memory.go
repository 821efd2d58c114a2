package users

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/zkpauth/internal/common"
	"github.com/dmitrijs2005/zkpauth/internal/server/models"
)

type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]models.UserRecord
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]models.UserRecord)}
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.UserRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Identity]; ok {
		return fmt.Errorf("user %q: %w", user.Identity, common.ErrAlreadyExists)
	}
	r.users[user.Identity] = *user

	return nil
}

func (r *MemoryRepository) GetByIdentity(ctx context.Context, identity string) (*models.UserRecord, error) {
	r.mu.RLock()
	user, ok := r.users[identity]
	r.mu.RUnlock()

	if !ok {
		return nil, common.ErrNotFound
	}

	return &user, nil
}
