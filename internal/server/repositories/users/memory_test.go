package users

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/dmitrijs2005/zkpauth/internal/common"
	"github.com/dmitrijs2005/zkpauth/internal/server/models"
	"github.com/dmitrijs2005/zkpauth/internal/zkp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(identity string) *models.UserRecord {
	return &models.UserRecord{
		Identity: identity,
		Keys:     zkp.PublicKeys{Y1: big.NewInt(4), Y2: big.NewInt(9)},
	}
}

func TestCreate_ThenDuplicate(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, record("alice")))

	err := repo.Create(ctx, record("alice"))
	assert.ErrorIs(t, err, common.ErrAlreadyExists)
}

func TestGetByIdentity(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, record("alice")))

	got, err := repo.GetByIdentity(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Identity)
	assert.Equal(t, int64(4), got.Keys.Y1.Int64())
	assert.Equal(t, int64(9), got.Keys.Y2.Int64())

	_, err = repo.GetByIdentity(ctx, "ghost")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestCreate_ConcurrentSameIdentity_OneWins(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	const n = 64
	var wins, conflicts atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := repo.Create(ctx, record("bob"))
			switch {
			case err == nil:
				wins.Add(1)
			case assert.ErrorIs(t, err, common.ErrAlreadyExists):
				conflicts.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
	assert.Equal(t, int32(n-1), conflicts.Load())
}

func TestCreate_ConcurrentDistinctIdentities(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	const n = 64
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, repo.Create(ctx, record(fmt.Sprintf("user-%d", i))))
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		_, err := repo.GetByIdentity(ctx, fmt.Sprintf("user-%d", i))
		assert.NoError(t, err)
	}
}
