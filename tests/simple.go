// Package simple is a recursive Merkle tree implementation kept as an
// independent reference for lmt.MerkleTree.
//
// The leaves are split at the largest power of two strictly smaller than
// their count. This produces the same tree as building layers bottom-up and
// carrying the unpaired last node of odd layers, without sharing any code
// with it.
package simple

import (
	"errors"
	"math/bits"

	"github.com/celestiaorg/lmt"
)

var ErrNoLeaves = errors.New("no leaves")

// Root computes the root over leaves.
func Root(leaves []lmt.Hash, c lmt.Combiner) (lmt.Hash, error) {
	switch len(leaves) {
	case 0:
		return "", ErrNoLeaves
	case 1:
		return leaves[0], nil
	default:
		k := getSplitPoint(len(leaves))
		left, err := Root(leaves[:k], c)
		if err != nil {
			return "", err
		}
		right, err := Root(leaves[k:], c)
		if err != nil {
			return "", err
		}
		return c.Combine(left, right)
	}
}

// Path computes the sibling hashes of the leaf at index, leaf level first.
func Path(leaves []lmt.Hash, index int, c lmt.Combiner) ([]lmt.Hash, error) {
	if len(leaves) == 0 {
		return nil, ErrNoLeaves
	}
	if len(leaves) == 1 {
		return []lmt.Hash{}, nil
	}
	k := getSplitPoint(len(leaves))
	if index < k {
		path, err := Path(leaves[:k], index, c)
		if err != nil {
			return nil, err
		}
		sibling, err := Root(leaves[k:], c)
		if err != nil {
			return nil, err
		}
		return append(path, sibling), nil
	}
	path, err := Path(leaves[k:], index-k, c)
	if err != nil {
		return nil, err
	}
	sibling, err := Root(leaves[:k], c)
	if err != nil {
		return nil, err
	}
	return append(path, sibling), nil
}

// getSplitPoint returns the largest power of 2 less than length.
func getSplitPoint(length int) int {
	if length < 1 {
		panic("Trying to split a tree with size < 1")
	}
	uLength := uint(length)
	bitlen := bits.Len(uLength)
	k := 1 << uint(bitlen-1)
	if k == length {
		k >>= 1
	}
	return k
}
