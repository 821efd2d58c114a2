package zkp

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
)

// ErrOrderTooSmall is returned when the sampling range [1, q-1] is empty.
var ErrOrderTooSmall = errors.New("order must be greater than 1")

// RandomScalar draws a uniformly distributed integer from [1, q-1].
// A nil reader selects crypto/rand.Reader.
func RandomScalar(r io.Reader, q *big.Int) (*big.Int, error) {
	if q == nil || q.Cmp(two) < 0 {
		return nil, ErrOrderTooSmall
	}
	if r == nil {
		r = rand.Reader
	}
	v, err := rand.Int(r, new(big.Int).Sub(q, one))
	if err != nil {
		return nil, err
	}
	return v.Add(v, one), nil
}
