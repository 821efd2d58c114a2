// Package cryptox seals small secrets under a passphrase: argon2id derives
// a key from the passphrase and a random salt, AES-GCM encrypts the payload.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"io"

	"golang.org/x/crypto/argon2"
)

const SaltSize = 16

var ErrDecrypt = errors.New("cannot decrypt: wrong passphrase or corrupted data")

func DeriveMasterKey(password []byte, salt []byte) []byte {
	x := argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
	return x
}

// Sealed is a passphrase-protected payload.
type Sealed struct {
	Salt       []byte
	Nonce      []byte
	Ciphertext []byte
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Seal encrypts plaintext with a key derived from passphrase and a fresh
// salt. A nil r means crypto/rand.
func Seal(r io.Reader, passphrase, plaintext []byte) (*Sealed, error) {
	if r == nil {
		r = rand.Reader
	}

	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(r, salt); err != nil {
		return nil, err
	}

	aesgcm, err := newGCM(DeriveMasterKey(passphrase, salt))
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aesgcm.NonceSize())
	if _, err := io.ReadFull(r, nonce); err != nil {
		return nil, err
	}

	return &Sealed{
		Salt:       salt,
		Nonce:      nonce,
		Ciphertext: aesgcm.Seal(nil, nonce, plaintext, nil),
	}, nil
}

// Open reverses Seal. Any authentication failure is reported as ErrDecrypt.
func Open(passphrase []byte, s *Sealed) ([]byte, error) {
	aesgcm, err := newGCM(DeriveMasterKey(passphrase, s.Salt))
	if err != nil {
		return nil, err
	}
	if len(s.Nonce) != aesgcm.NonceSize() {
		return nil, ErrDecrypt
	}

	plaintext, err := aesgcm.Open(nil, s.Nonce, s.Ciphertext, nil)
	if err != nil {
		return nil, ErrDecrypt
	}
	return plaintext, nil
}
