// Package models defines client-side data models.
package models

import "time"

// SealedSecret is a user's secret x encrypted under a passphrase, as kept
// in the local vault.
type SealedSecret struct {
	User       string
	Salt       []byte
	Nonce      []byte
	Ciphertext []byte
	CreatedAt  time.Time
}
