package repomanager

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/zkpauth/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepositoryManager_ReturnsStableStores(t *testing.T) {
	m := NewMemoryRepositoryManager(time.Minute)
	ctx := context.Background()

	require.NoError(t, m.Users().Create(ctx, &models.UserRecord{Identity: "alice"}))
	_, err := m.Users().GetByIdentity(ctx, "alice")
	assert.NoError(t, err)

	require.NoError(t, m.Sessions().Create(ctx, "a1", &models.Session{Identity: "alice", CreatedAt: time.Now()}))
	_, err = m.Sessions().Take(ctx, "a1")
	assert.NoError(t, err)
}
