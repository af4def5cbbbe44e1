package hashers

import (
	"github.com/wealdtech/go-merkletree/v2/keccak256"

	"github.com/celestiaorg/lmt"
)

type keccakCombiner struct {
	hasher *keccak256.Keccak256
}

// Keccak256 returns a combiner computing keccak256(left || right) over hex
// inputs of any length.
func Keccak256() lmt.Combiner {
	return keccakCombiner{hasher: keccak256.New()}
}

func (k keccakCombiner) Combine(left, right lmt.Hash) (lmt.Hash, error) {
	l, err := decodeHex(left, 0)
	if err != nil {
		return "", err
	}
	r, err := decodeHex(right, 0)
	if err != nil {
		return "", err
	}
	return encodeHex(k.hasher.Hash(l, r)), nil
}
