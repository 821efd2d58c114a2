// Package repomanager bundles the credential and session stores so they can
// be injected into services as one dependency.
package repomanager

import (
	"time"

	"github.com/dmitrijs2005/zkpauth/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/zkpauth/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users() users.Repository
	Sessions() sessions.Repository
}

type MemoryRepositoryManager struct {
	users    *users.MemoryRepository
	sessions *sessions.MemoryRepository
}

// NewMemoryRepositoryManager creates empty in-memory stores. Sessions older
// than challengeTTL are treated as expired; zero disables expiry.
func NewMemoryRepositoryManager(challengeTTL time.Duration) *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		users:    users.NewMemoryRepository(),
		sessions: sessions.NewMemoryRepository(challengeTTL),
	}
}

func (m *MemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *MemoryRepositoryManager) Sessions() sessions.Repository {
	return m.sessions
}
