// Package zkp implements the Chaum-Pedersen proof of equality of discrete
// logarithms over a prime-order subgroup of Z_p^*, together with the group
// parameters and the big-integer wire codec used by both prover and verifier.
//
// All functions in this package are pure: they hold no shared state and are
// safe to call from any number of goroutines.
package zkp

import (
	"errors"
	"math/big"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// ErrInvalidParams is returned by Params.Validate for parameters that break
// the structural group invariants.
var ErrInvalidParams = errors.New("invalid group parameters")

// Params holds the public group constants: modulus P, subgroup order Q and
// two generators G and H of the order-Q subgroup.
//
// Params values are treated as immutable once constructed.
type Params struct {
	P *big.Int
	Q *big.Int
	G *big.Int
	H *big.Int
}

// RFC 5114 section 2.1: 1024-bit MODP group with 160-bit prime order subgroup.
const (
	rfc5114P = "B10B8F96A080E01DDE92DE5EAE5D54EC52C99FBCFB06A3C6" +
		"9A6A9DCA52D23B616073E28675A23D189838EF1E2EE652C0" +
		"13ECB4AEA906112324975C3CD49B83BFACCBDD7D90C4BD70" +
		"98488E9C219A73724EFFD6FAE5644738FAA31A4FF55BCCC0" +
		"A151AF5F0DC8B4BD45BF37DF365C1A65E68CFDA76D4DA708" +
		"DF1FB2BC2E4A4371"

	rfc5114Q = "F518AA8781A8DF278ABA4E7D64B7CB9D49462353"

	rfc5114G = "A4D1CBD5C3FD34126765A442EFB99905F8104DD258AC507F" +
		"D6406CFF14266D31266FEA1E5C41564B777E690F5504F213" +
		"160217B4B01B886A5E91547F9E2749F4D7FBD7D3B9A92EE1" +
		"909D0D2263F80A76A6A24C087A091F531DBF0A0169B6A28A" +
		"D662A4D18E73AFA32D779D5918D08BC8858F4DCEF97C2A24" +
		"855E6EEB22B3B2E5"
)

// RFC5114 returns the parameters shared by every prover and the server.
// H is derived as G^2 mod P so that all parties compute the same value
// without coordination.
func RFC5114() *Params {
	p := mustHex(rfc5114P)
	g := mustHex(rfc5114G)
	return &Params{
		P: p,
		Q: mustHex(rfc5114Q),
		G: g,
		H: new(big.Int).Exp(g, two, p),
	}
}

// NewParams builds Params from explicit values and validates them.
func NewParams(p, q, g, h *big.Int) (*Params, error) {
	params := &Params{P: p, Q: q, G: g, H: h}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return params, nil
}

// Validate checks 1 < g,h < p, g != h and g^q = h^q = 1 (mod p).
// It does not judge the cryptographic strength of the group.
func (pp *Params) Validate() error {
	if pp == nil || pp.P == nil || pp.Q == nil || pp.G == nil || pp.H == nil {
		return ErrInvalidParams
	}
	if pp.P.Cmp(two) <= 0 || pp.Q.Cmp(two) <= 0 || pp.Q.Cmp(pp.P) >= 0 {
		return ErrInvalidParams
	}
	if pp.G.Cmp(pp.H) == 0 {
		return ErrInvalidParams
	}
	if !pp.IsElement(pp.G) || !pp.IsElement(pp.H) {
		return ErrInvalidParams
	}
	return nil
}

// IsElement reports whether v is a non-identity member of the order-Q
// subgroup: 1 < v < P and v^Q = 1 (mod P).
func (pp *Params) IsElement(v *big.Int) bool {
	if v == nil || v.Cmp(one) <= 0 || v.Cmp(pp.P) >= 0 {
		return false
	}
	return new(big.Int).Exp(v, pp.Q, pp.P).Cmp(one) == 0
}

// IsScalar reports whether 0 <= v < Q.
func (pp *Params) IsScalar(v *big.Int) bool {
	return v != nil && v.Sign() >= 0 && v.Cmp(pp.Q) < 0
}

func mustHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("zkp: bad hex constant")
	}
	return v
}
