// Package cli provides the zkpauth command-line client.
//
// Commands (cobra):
//
//	register <user>               create a secret, register it, then log in
//	login <user> [--secret hex]   prove knowledge of the secret, print token
//	forget <user>                 remove the sealed secret from the vault
//	users                         list users with a secret in the vault
//	version                       print build information
//
// The secret is sealed in a local SQLite vault under a passphrase read
// from the terminal without echo.
package cli
