// Package services contains server-side business logic. AuthService is the
// protocol orchestrator: it sequences the Chaum-Pedersen exchange
// (Register, CreateChallenge, VerifyAnswer) against the credential and
// session stores.
package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/dmitrijs2005/zkpauth/internal/common"
	"github.com/dmitrijs2005/zkpauth/internal/server/auth"
	"github.com/dmitrijs2005/zkpauth/internal/server/config"
	"github.com/dmitrijs2005/zkpauth/internal/server/models"
	"github.com/dmitrijs2005/zkpauth/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/zkpauth/internal/zkp"
	"github.com/google/uuid"
)

// Challenge is returned by CreateChallenge: the opaque auth_id correlating
// the attempt and the verifier's challenge c.
type Challenge struct {
	AuthID string
	C      *big.Int
}

// AuthService holds no per-attempt state; everything an attempt needs lives
// in the session store between CreateChallenge and VerifyAnswer.
type AuthService struct {
	params                       *zkp.Params
	repomanager                  repomanager.RepositoryManager
	jwtSecret                    []byte
	sessionTokenValidityDuration time.Duration

	random    io.Reader
	newAuthID func() string
	now       func() time.Time
}

// NewAuthService constructs an AuthService over the given group parameters
// and stores.
func NewAuthService(params *zkp.Params, m repomanager.RepositoryManager, cfg *config.Config) *AuthService {
	return &AuthService{
		params:                       params,
		repomanager:                  m,
		jwtSecret:                    []byte(cfg.SecretKey),
		sessionTokenValidityDuration: cfg.SessionTokenValidityDuration,
		newAuthID:                    uuid.NewString,
		now:                          time.Now,
	}
}

// Register stores the public keys (y1, y2) for identity. It fails with
// common.ErrInvalidArgument for an empty identity or keys outside the group,
// and common.ErrAlreadyExists if the identity is taken.
func (s *AuthService) Register(ctx context.Context, identity string, y1, y2 *big.Int) error {
	if identity == "" {
		return fmt.Errorf("%w: empty identity", common.ErrInvalidArgument)
	}
	if !s.params.IsElement(y1) || !s.params.IsElement(y2) {
		return fmt.Errorf("%w: public key is not a group element", common.ErrInvalidArgument)
	}

	user := &models.UserRecord{
		Identity:  identity,
		Keys:      zkp.PublicKeys{Y1: new(big.Int).Set(y1), Y2: new(big.Int).Set(y2)},
		CreatedAt: s.now(),
	}

	if err := s.repomanager.Users().Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return err
		}
		return fmt.Errorf("%w: error creating user: %v", common.ErrInternal, err)
	}

	return nil
}

// CreateChallenge records the commitment (r1, r2) for identity and returns
// a fresh challenge. Unknown identities get common.ErrNotFound and no
// session is created.
func (s *AuthService) CreateChallenge(ctx context.Context, identity string, r1, r2 *big.Int) (*Challenge, error) {
	if identity == "" {
		return nil, fmt.Errorf("%w: empty identity", common.ErrInvalidArgument)
	}
	if !s.params.IsElement(r1) || !s.params.IsElement(r2) {
		return nil, fmt.Errorf("%w: commitment is not a group element", common.ErrInvalidArgument)
	}

	if _, err := s.repomanager.Users().GetByIdentity(ctx, identity); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("user %q: %w", identity, common.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: error looking up user: %v", common.ErrInternal, err)
	}

	c, err := zkp.RandomScalar(s.random, s.params.Q)
	if err != nil {
		return nil, fmt.Errorf("%w: error sampling challenge: %v", common.ErrInternal, err)
	}

	authID := s.newAuthID()
	session := &models.Session{
		Identity:   identity,
		Commitment: zkp.Commitment{R1: new(big.Int).Set(r1), R2: new(big.Int).Set(r2)},
		Challenge:  c,
		CreatedAt:  s.now(),
	}

	if err := s.repomanager.Sessions().Create(ctx, authID, session); err != nil {
		return nil, fmt.Errorf("%w: error storing session: %v", common.ErrInternal, err)
	}

	return &Challenge{AuthID: authID, C: new(big.Int).Set(c)}, nil
}

// VerifyAnswer consumes the session for authID and checks response sv
// against it. The session is removed before anything else is checked, so a
// transcript is verified at most once. On success a fresh session token is
// returned.
func (s *AuthService) VerifyAnswer(ctx context.Context, authID string, sv *big.Int) (string, error) {
	if authID == "" {
		return "", fmt.Errorf("%w: empty auth_id", common.ErrInvalidArgument)
	}
	if !s.params.IsScalar(sv) {
		return "", fmt.Errorf("%w: response out of range", common.ErrInvalidArgument)
	}

	session, err := s.repomanager.Sessions().Take(ctx, authID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", fmt.Errorf("session: %w", common.ErrNotFound)
		}
		return "", fmt.Errorf("%w: error taking session: %v", common.ErrInternal, err)
	}

	user, err := s.repomanager.Users().GetByIdentity(ctx, session.Identity)
	if err != nil {
		return "", fmt.Errorf("%w: session references user %q: %v", common.ErrInternal, session.Identity, err)
	}

	if !zkp.Verify(session.Commitment, user.Keys, session.Challenge, sv, s.params) {
		return "", fmt.Errorf("user %q: %w", session.Identity, common.ErrPermissionDenied)
	}

	token, err := auth.GenerateToken(user.Identity, s.jwtSecret, s.sessionTokenValidityDuration)
	if err != nil {
		return "", fmt.Errorf("%w: error generating token: %v", common.ErrInternal, err)
	}

	return token, nil
}
