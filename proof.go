package lmt

import (
	"errors"
	"fmt"
	"math"

	"github.com/celestiaorg/lmt/pb"
)

// ErrInvalidProof is returned when a wire proof cannot describe a leaf of any tree.
var ErrInvalidProof = errors.New("invalid merkle proof")

// Proof is an inclusion proof of a single leaf.
type Proof struct {
	// index of the proven leaf.
	index int
	// total number of leaves in the tree the proof was generated from. The
	// verifier needs it to know in which layers the leaf's ancestor was
	// carried up without a sibling.
	total int
	// sibling hashes ordered from the leaf level up.
	nodes []Hash
}

// NewInclusionProof constructs a proof for the leaf at index in a tree of
// total leaves from the sibling hashes returned by MerklePath.
func NewInclusionProof(index, total int, nodes []Hash) Proof {
	return Proof{index, total, nodes}
}

// Index of the proven leaf.
func (proof Proof) Index() int {
	return proof.index
}

// Total number of leaves of the tree.
func (proof Proof) Total() int {
	return proof.total
}

// Nodes returns the sibling hashes, leaf level first.
func (proof Proof) Nodes() []Hash {
	return proof.nodes
}

// VerifyInclusion recomputes the root from leaf and the proof nodes and
// compares it with root. A proof whose shape does not match the tree size
// (wrong number of nodes, index out of range) does not verify. An error is
// only returned when the combiner fails.
func (proof Proof) VerifyInclusion(c Combiner, leaf, root Hash) (bool, error) {
	if proof.total <= 0 || proof.index < 0 || proof.index >= proof.total {
		return false, nil
	}

	nodes := proof.nodes
	current := leaf
	idx := proof.index
	for width := proof.total; width > 1; width = (width + 1) / 2 {
		if sibling := idx ^ 1; sibling < width {
			if len(nodes) == 0 {
				return false, nil
			}
			var err error
			if idx%2 == 0 {
				current, err = c.Combine(current, nodes[0])
			} else {
				current, err = c.Combine(nodes[0], current)
			}
			if err != nil {
				return false, fmt.Errorf("%w: verifying leaf %d: %w", ErrHash, proof.index, err)
			}
			nodes = nodes[1:]
		}
		idx /= 2
	}
	if len(nodes) != 0 {
		return false, nil
	}
	return current == root, nil
}

// VerifyPath checks a path as returned by MerklePath.
func VerifyPath(c Combiner, root, leaf Hash, index, total int, path []Hash) (bool, error) {
	return NewInclusionProof(index, total, path).VerifyInclusion(c, leaf, root)
}

// ToProto converts the proof into its wire representation.
func (proof Proof) ToProto() *pb.Proof {
	nodes := make([]string, len(proof.nodes))
	for i, n := range proof.nodes {
		nodes[i] = string(n)
	}
	return &pb.Proof{
		Index: int64(proof.index),
		Total: int64(proof.total),
		Nodes: nodes,
	}
}

// ProofFromProto converts a wire proof back. It only checks that the index
// lies within the tree; whether the proof is valid is up to VerifyInclusion.
func ProofFromProto(p *pb.Proof) (Proof, error) {
	if p == nil {
		return Proof{}, fmt.Errorf("%w: nil proof", ErrInvalidProof)
	}
	if p.Total <= 0 || p.Index < 0 || p.Index >= p.Total {
		return Proof{}, fmt.Errorf("%w: index %d, total %d", ErrInvalidProof, p.Index, p.Total)
	}
	if uint64(p.Total) > math.MaxInt {
		return Proof{}, fmt.Errorf("%w: total %d does not fit an int", ErrInvalidProof, p.Total)
	}
	nodes := make([]Hash, len(p.Nodes))
	for i, n := range p.Nodes {
		nodes[i] = Hash(n)
	}
	return NewInclusionProof(int(p.Index), int(p.Total), nodes), nil
}
