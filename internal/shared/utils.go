// Package shared holds small helpers used by both client and server code.
package shared

// WipeByteArray overwrites b with zeros. Use it on passphrases and
// unsealed secrets once they are no longer needed. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
