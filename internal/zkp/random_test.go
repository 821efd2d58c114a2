package zkp

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomScalar_Range(t *testing.T) {
	q := big.NewInt(3)
	seen := map[int64]bool{}
	for i := 0; i < 200; i++ {
		v, err := RandomScalar(nil, q)
		require.NoError(t, err)
		require.True(t, v.Int64() >= 1 && v.Int64() <= 2, "got %d", v.Int64())
		seen[v.Int64()] = true
	}
	assert.Len(t, seen, 2)
}

func TestRandomScalar_TooSmall(t *testing.T) {
	_, err := RandomScalar(nil, big.NewInt(1))
	assert.ErrorIs(t, err, ErrOrderTooSmall)

	_, err = RandomScalar(nil, nil)
	assert.ErrorIs(t, err, ErrOrderTooSmall)
}

func TestRandomScalar_ReaderError(t *testing.T) {
	_, err := RandomScalar(bytes.NewReader(nil), RFC5114().Q)
	assert.Error(t, err)
}
