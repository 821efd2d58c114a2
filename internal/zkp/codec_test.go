package zkp

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Empty(t *testing.T) {
	v, err := Decode(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, v.Sign())

	v, err = Decode([]byte{})
	require.NoError(t, err)
	assert.Equal(t, 0, v.Sign())
}

func TestEncode_Zero(t *testing.T) {
	assert.Empty(t, Encode(big.NewInt(0)))
	assert.Nil(t, Encode(nil))
}

func TestEncode_BigEndian(t *testing.T) {
	assert.Equal(t, []byte{0x01, 0x00}, Encode(big.NewInt(256)))
	assert.Equal(t, []byte{0xff}, Encode(big.NewInt(255)))
}

func TestDecode_RejectsLeadingZero(t *testing.T) {
	_, err := Decode([]byte{0x00, 0x01})
	assert.True(t, errors.Is(err, ErrNonCanonical))
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	pp := RFC5114()
	values := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(255),
		big.NewInt(256),
		new(big.Int).Sub(pp.Q, one),
		new(big.Int).Sub(pp.P, one),
		pp.G,
	}
	for i := 0; i < 32; i++ {
		v, err := RandomScalar(nil, pp.P)
		require.NoError(t, err)
		values = append(values, v)
	}

	for _, v := range values {
		got, err := Decode(Encode(v))
		require.NoError(t, err)
		assert.Equal(t, 0, v.Cmp(got), "value %s", v.Text(16))
	}
}

func TestDecodeEncode_RoundTripBytes(t *testing.T) {
	in := []byte{0x7f, 0x00, 0x10}
	v, err := Decode(in)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(in, Encode(v)))
}
