package zkp

import (
	"io"
	"math/big"
)

// PublicKeys is the registered key pair y1 = g^x, y2 = h^x (mod p).
type PublicKeys struct {
	Y1 *big.Int
	Y2 *big.Int
}

// Commitment is the prover's first message r1 = g^k, r2 = h^k (mod p).
type Commitment struct {
	R1 *big.Int
	R2 *big.Int
}

// DerivePublicKeys computes the public key pair for secret x.
func DerivePublicKeys(x *big.Int, pp *Params) PublicKeys {
	return PublicKeys{
		Y1: new(big.Int).Exp(pp.G, x, pp.P),
		Y2: new(big.Int).Exp(pp.H, x, pp.P),
	}
}

// Commit computes the commitment for nonce k. A nonce must never be reused.
func Commit(k *big.Int, pp *Params) Commitment {
	return Commitment{
		R1: new(big.Int).Exp(pp.G, k, pp.P),
		R2: new(big.Int).Exp(pp.H, k, pp.P),
	}
}

// Respond computes s = k - c*x (mod q), always in [0, q-1].
func Respond(k, c, x, q *big.Int) *big.Int {
	cx := new(big.Int).Mul(c, x)
	s := new(big.Int).Sub(k, cx)
	// big.Int.Mod is Euclidean, so s is never negative here.
	return s.Mod(s, q)
}

// Verify accepts iff g^s * y1^c = r1 and h^s * y2^c = r2 (mod p).
// Both relations must hold.
func Verify(cm Commitment, keys PublicKeys, c, s *big.Int, pp *Params) bool {
	if cm.R1 == nil || cm.R2 == nil || keys.Y1 == nil || keys.Y2 == nil || c == nil || s == nil {
		return false
	}
	ok1 := check(pp.G, keys.Y1, cm.R1, c, s, pp.P)
	ok2 := check(pp.H, keys.Y2, cm.R2, c, s, pp.P)
	return ok1 && ok2
}

func check(base, y, r, c, s, p *big.Int) bool {
	lhs := new(big.Int).Exp(base, s, p)
	lhs.Mul(lhs, new(big.Int).Exp(y, c, p))
	lhs.Mod(lhs, p)
	return lhs.Cmp(r) == 0
}

// Prover holds the secret side of one proof round. It is not safe for
// concurrent use and must be discarded after Respond.
type Prover struct {
	params *Params
	x      *big.Int
	k      *big.Int
}

// NewProver samples a fresh nonce for secret x.
func NewProver(r io.Reader, x *big.Int, pp *Params) (*Prover, error) {
	k, err := RandomScalar(r, pp.Q)
	if err != nil {
		return nil, err
	}
	return &Prover{params: pp, x: x, k: k}, nil
}

// Commitment returns the commitment for this round's nonce.
func (p *Prover) Commitment() Commitment {
	return Commit(p.k, p.params)
}

// Respond answers challenge c and wipes the nonce.
func (p *Prover) Respond(c *big.Int) *big.Int {
	s := Respond(p.k, c, p.x, p.params.Q)
	p.k.SetInt64(0)
	return s
}
