package zkp

import (
	"errors"
	"math/big"
)

// ErrNonCanonical is returned by Decode for byte strings carrying leading
// zero bytes.
var ErrNonCanonical = errors.New("non-canonical integer encoding")

// Encode returns the minimal big-endian encoding of a non-negative integer.
// Zero encodes to the empty byte string.
func Encode(n *big.Int) []byte {
	if n == nil {
		return nil
	}
	return n.Bytes()
}

// Decode is the inverse of Encode. An empty input yields 0; callers decide
// whether zero is a legal value for the field being decoded.
func Decode(b []byte) (*big.Int, error) {
	if len(b) > 0 && b[0] == 0 {
		return nil, ErrNonCanonical
	}
	return new(big.Int).SetBytes(b), nil
}
