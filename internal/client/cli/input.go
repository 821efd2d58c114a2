package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/zkpauth/internal/shared"
	"golang.org/x/term"
)

var ErrPassphraseMismatch = errors.New("passphrases do not match")

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// GetPassword prints prompt to w and reads a passphrase from the terminal
// without echo. The caller should wipe the returned slice.
func GetPassword(w io.Writer, prompt string) ([]byte, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// GetNewPassword asks for a passphrase twice and fails unless both match.
func GetNewPassword(w io.Writer) ([]byte, error) {
	pw, err := GetPassword(w, "Enter passphrase: ")
	if err != nil {
		return nil, err
	}
	again, err := GetPassword(w, "Repeat passphrase: ")
	if err != nil {
		shared.WipeByteArray(pw)
		return nil, err
	}
	defer shared.WipeByteArray(again)

	if !bytes.Equal(pw, again) {
		shared.WipeByteArray(pw)
		return nil, ErrPassphraseMismatch
	}
	return pw, nil
}
