package hashers

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"
	"github.com/pkg/errors"

	"github.com/celestiaorg/lmt"
)

type mimcCombiner struct{}

// MiMC returns a combiner computing the BN254 MiMC hash of two scalar field
// elements. Inputs may be decimal or 0x-prefixed hex and must be smaller than
// the field modulus.
func MiMC() lmt.Combiner {
	return mimcCombiner{}
}

func (mimcCombiner) Combine(left, right lmt.Hash) (lmt.Hash, error) {
	l, err := parseElement(left)
	if err != nil {
		return "", err
	}
	r, err := parseElement(right)
	if err != nil {
		return "", err
	}
	h := mimc.NewMiMC()
	lb, rb := l.Bytes(), r.Bytes()
	if _, err := h.Write(lb[:]); err != nil {
		return "", errors.Wrap(err, "mimc write")
	}
	if _, err := h.Write(rb[:]); err != nil {
		return "", errors.Wrap(err, "mimc write")
	}
	return encodeHex(h.Sum(nil)), nil
}

// parseElement accepts only canonical field elements; silently reducing a
// value modulo the field would make distinct inputs collide.
func parseElement(h lmt.Hash) (fr.Element, error) {
	var e fr.Element
	s, isHex := trimHexPrefix(string(h))
	base := 10
	if isHex {
		base = 16
	}
	v, ok := new(big.Int).SetString(s, base)
	if !ok {
		return e, errors.Wrapf(ErrMalformedInput, "%q is not a field element", string(h))
	}
	if v.Sign() < 0 || v.Cmp(fr.Modulus()) >= 0 {
		return e, errors.Wrapf(ErrMalformedInput, "%q is outside the bn254 scalar field", string(h))
	}
	e.SetBigInt(v)
	return e, nil
}
