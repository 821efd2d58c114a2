// Package services contains application services for the zkpauth client.
// AuthService is the prover side of the protocol: it creates and stores
// the secret on registration and runs one Chaum-Pedersen round per login.
// The secret never leaves the process; only y1, y2, r1, r2 and s are sent.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/dmitrijs2005/zkpauth/internal/client/client"
	"github.com/dmitrijs2005/zkpauth/internal/client/models"
	"github.com/dmitrijs2005/zkpauth/internal/client/repositories/secrets"
	"github.com/dmitrijs2005/zkpauth/internal/cryptox"
	"github.com/dmitrijs2005/zkpauth/internal/dbx"
	"github.com/dmitrijs2005/zkpauth/internal/shared"
	"github.com/dmitrijs2005/zkpauth/internal/zkp"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: create a secret, register its public keys with the server
//     and seal the secret into the local vault. Returns the secret.
//   - Login: unseal the user's secret and prove knowledge of it.
//   - LoginWithSecret: prove knowledge of a caller-supplied secret.
//   - ForgetSecret: remove the user's sealed secret from the vault.
//   - ListUsers: users with a secret in the vault.
//   - Close: release the client connection and the vault.
type AuthService interface {
	Register(ctx context.Context, user string, passphrase []byte) (*big.Int, error)
	Login(ctx context.Context, user string, passphrase []byte) (string, error)
	LoginWithSecret(ctx context.Context, user string, x *big.Int) (string, error)
	ForgetSecret(ctx context.Context, user string) error
	ListUsers(ctx context.Context) ([]string, error)
	Close(ctx context.Context) error
}

type authService struct {
	client client.Client
	db     *sql.DB
	params *zkp.Params
	random io.Reader
	now    func() time.Time
}

// NewAuthService constructs an AuthService bound to the given API client,
// vault database and group parameters.
func NewAuthService(c client.Client, db *sql.DB, params *zkp.Params) AuthService {
	return &authService{client: c, db: db, params: params, now: time.Now}
}

func (a *authService) getSecretsRepo(db dbx.DBTX) secrets.Repository {
	return secrets.NewSQLiteRepository(db)
}

// Register refuses to run if the vault already holds a secret for user, so
// an existing secret is never overwritten. If the server accepts the keys
// but sealing fails, the secret is still returned alongside the error so
// the caller can show it.
func (a *authService) Register(ctx context.Context, user string, passphrase []byte) (*big.Int, error) {
	existing, err := a.getSecretsRepo(a.db).Get(ctx, user)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", client.ErrLocalDataExists, user)
	}

	x, err := zkp.RandomScalar(a.random, a.params.Q)
	if err != nil {
		return nil, fmt.Errorf("generate secret: %w", err)
	}

	if err := a.client.Register(ctx, user, zkp.DerivePublicKeys(x, a.params)); err != nil {
		return nil, fmt.Errorf("register error: %w", err)
	}

	if err := a.saveSecret(ctx, user, passphrase, x); err != nil {
		return x, fmt.Errorf("secret saving error: %w", err)
	}
	return x, nil
}

func (a *authService) saveSecret(ctx context.Context, user string, passphrase []byte, x *big.Int) error {
	sealed, err := cryptox.Seal(a.random, passphrase, zkp.Encode(x))
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := a.getSecretsRepo(tx)

		existing, err := repo.Get(ctx, user)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w: %s", client.ErrLocalDataExists, user)
		}

		return repo.Set(ctx, &models.SealedSecret{
			User:       user,
			Salt:       sealed.Salt,
			Nonce:      sealed.Nonce,
			Ciphertext: sealed.Ciphertext,
			CreatedAt:  a.now(),
		})
	})
}

// Login unseals the stored secret and runs one proof round with it.
func (a *authService) Login(ctx context.Context, user string, passphrase []byte) (string, error) {
	stored, err := a.getSecretsRepo(a.db).Get(ctx, user)
	if err != nil {
		return "", err
	}
	if stored == nil {
		return "", fmt.Errorf("%w: %s", client.ErrLocalDataNotAvailable, user)
	}

	plain, err := cryptox.Open(passphrase, &cryptox.Sealed{Salt: stored.Salt, Nonce: stored.Nonce, Ciphertext: stored.Ciphertext})
	if err != nil {
		return "", err
	}

	x, err := zkp.Decode(plain)
	shared.WipeByteArray(plain)
	if err != nil {
		return "", fmt.Errorf("stored secret: %w", err)
	}

	return a.LoginWithSecret(ctx, user, x)
}

// LoginWithSecret commits to a fresh nonce, obtains a challenge, answers it
// and returns the session token issued by the server.
func (a *authService) LoginWithSecret(ctx context.Context, user string, x *big.Int) (string, error) {
	if x == nil || x.Sign() <= 0 {
		return "", fmt.Errorf("secret must be positive")
	}

	prover, err := zkp.NewProver(a.random, x, a.params)
	if err != nil {
		return "", err
	}

	authID, c, err := a.client.CreateChallenge(ctx, user, prover.Commitment())
	if err != nil {
		return "", fmt.Errorf("challenge error: %w", err)
	}

	token, err := a.client.VerifyAnswer(ctx, authID, prover.Respond(c))
	if err != nil {
		return "", fmt.Errorf("verification error: %w", err)
	}
	return token, nil
}

func (a *authService) ForgetSecret(ctx context.Context, user string) error {
	return a.getSecretsRepo(a.db).Delete(ctx, user)
}

func (a *authService) ListUsers(ctx context.Context) ([]string, error) {
	return a.getSecretsRepo(a.db).ListUsers(ctx)
}

// Close releases the client connection and the vault.
func (a *authService) Close(ctx context.Context) error {
	err := a.client.Close()
	if a.db != nil {
		err = errors.Join(err, a.db.Close())
	}
	return err
}
