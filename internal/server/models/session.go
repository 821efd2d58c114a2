package models

import (
	"math/big"
	"time"

	"github.com/dmitrijs2005/zkpauth/internal/zkp"
)

// Session is the challenge state of one login attempt, keyed by auth_id
// in the session store and consumed exactly once.
type Session struct {
	Identity   string
	Commitment zkp.Commitment
	Challenge  *big.Int
	CreatedAt  time.Time
}
