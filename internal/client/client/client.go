package client

import (
	"context"
	"math/big"

	"github.com/dmitrijs2005/zkpauth/internal/zkp"
)

type Client interface {
	Close() error
	Register(ctx context.Context, user string, keys zkp.PublicKeys) error
	CreateChallenge(ctx context.Context, user string, cm zkp.Commitment) (authID string, c *big.Int, err error)
	VerifyAnswer(ctx context.Context, authID string, s *big.Int) (sessionID string, err error)
}
