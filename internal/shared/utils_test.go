package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWipeByteArray(t *testing.T) {
	b := []byte("passphrase")
	WipeByteArray(b)
	assert.Equal(t, make([]byte, len("passphrase")), b)

	assert.NotPanics(t, func() { WipeByteArray(nil) })
}
