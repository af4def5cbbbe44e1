package lmt

import (
	"errors"
	"fmt"
	"math/bits"

	"go.uber.org/zap"
)

var (
	// ErrInvalidInput is returned by New for an empty leaf list or a nil combiner.
	ErrInvalidInput = errors.New("invalid tree input")
	// ErrIndexOutOfRange is returned for a leaf index outside [0, Size()).
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrHash wraps every error returned by the combiner.
	ErrHash = errors.New("failed to combine hashes")
)

// MerkleTree is a binary hash tree over an ordered, non-empty list of leaves.
//
// Every layer is built by combining consecutive pairs of the layer below it.
// When a layer has an odd number of nodes the last one has no sibling and is
// carried up to the next layer unchanged.
//
// A MerkleTree is not safe for concurrent use.
type MerkleTree struct {
	combiner Combiner
	logger   *zap.Logger

	// layers[0] are the leaves, the last layer holds only the root. All
	// layers are sized once in New and never reallocated.
	layers [][]Hash
}

// New builds the full tree over a copy of leaves. It calls the combiner
// exactly len(leaves)-1 times.
//
// An empty leaf list or a nil combiner returns ErrInvalidInput. If the
// combiner fails, the error wraps both ErrHash and the combiner's error.
func New(leaves []Hash, combiner Combiner, setters ...Option) (*MerkleTree, error) {
	if len(leaves) == 0 {
		return nil, fmt.Errorf("%w: at least one leaf is required", ErrInvalidInput)
	}
	if combiner == nil {
		return nil, fmt.Errorf("%w: nil combiner", ErrInvalidInput)
	}
	opts := &Options{
		Logger: zap.NewNop(),
	}
	for _, setter := range setters {
		setter(opts)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	t := &MerkleTree{
		combiner: combiner,
		logger:   opts.Logger,
		layers:   allocateLayers(len(leaves)),
	}
	copy(t.layers[0], leaves)
	for level := 0; level < len(t.layers)-1; level++ {
		for p := range t.layers[level+1] {
			parent, err := t.parentOf(level, p)
			if err != nil {
				return nil, err
			}
			t.layers[level+1][p] = parent
		}
	}

	t.logger.Debug("built merkle tree",
		zap.Int("leaves", len(leaves)),
		zap.Int("depth", t.Depth()),
		zap.String("root", string(t.Root())),
	)
	return t, nil
}

// layerCount returns the number of layers, leaves and root included, of a
// tree with numLeaves leaves.
func layerCount(numLeaves int) int {
	return bits.Len(uint(numLeaves-1)) + 1
}

func allocateLayers(numLeaves int) [][]Hash {
	layers := make([][]Hash, 0, layerCount(numLeaves))
	for size := numLeaves; ; size = (size + 1) / 2 {
		layers = append(layers, make([]Hash, size))
		if size == 1 {
			return layers
		}
	}
}

// parentOf computes node p of layer level+1 from its children in layer level.
func (t *MerkleTree) parentOf(level, p int) (Hash, error) {
	children := t.layers[level]
	left := children[2*p]
	if 2*p+1 >= len(children) {
		// no sibling: carried up unchanged
		return left, nil
	}
	parent, err := t.combiner.Combine(left, children[2*p+1])
	if err != nil {
		return "", fmt.Errorf("%w: layer %d, node %d: %w", ErrHash, level+1, p, err)
	}
	return parent, nil
}

// Root returns the tree's root. For a single leaf tree it is the leaf itself.
func (t *MerkleTree) Root() Hash {
	return t.layers[len(t.layers)-1][0]
}

// Size returns the number of leaves.
func (t *MerkleTree) Size() int {
	return len(t.layers[0])
}

// Depth returns the number of layers above the leaves.
func (t *MerkleTree) Depth() int {
	return len(t.layers) - 1
}

// Leaf returns the leaf at index.
func (t *MerkleTree) Leaf(index int) (Hash, error) {
	if err := t.validateIndex(index); err != nil {
		return "", err
	}
	return t.layers[0][index], nil
}

// Leaves returns a copy of the leaves.
func (t *MerkleTree) Leaves() []Hash {
	return append([]Hash(nil), t.layers[0]...)
}

// Layer returns a copy of the given layer, 0 being the leaves and Depth()
// the root.
func (t *MerkleTree) Layer(level int) ([]Hash, error) {
	if level < 0 || level >= len(t.layers) {
		return nil, fmt.Errorf("%w: layer: got: %d, want: [0, %d)", ErrIndexOutOfRange, level, len(t.layers))
	}
	return append([]Hash(nil), t.layers[level]...), nil
}

// MerklePath returns the sibling hashes needed to recompute the root from
// the leaf at index, ordered from the leaf level up. Layers in which the
// leaf's ancestor was carried up contribute nothing, so the path can be
// shorter than Depth().
func (t *MerkleTree) MerklePath(index int) ([]Hash, error) {
	if err := t.validateIndex(index); err != nil {
		return nil, err
	}
	path := make([]Hash, 0, t.Depth())
	idx := index
	for _, layer := range t.layers[:len(t.layers)-1] {
		sibling := idx ^ 1
		if sibling < len(layer) {
			path = append(path, layer[sibling])
		}
		idx /= 2
	}
	return path, nil
}

// Prove returns an inclusion proof for the leaf at index.
func (t *MerkleTree) Prove(index int) (Proof, error) {
	path, err := t.MerklePath(index)
	if err != nil {
		return Proof{}, err
	}
	return NewInclusionProof(index, t.Size(), path), nil
}

// UpdateLeaf replaces the leaf at index and recomputes only its ancestors.
// The resulting tree is identical to one built by New over the updated
// leaves.
//
// If the combiner fails, the leaf stays replaced and the layers above the
// failing one are stale until the next successful UpdateLeaf on a leaf below
// them. There is no rollback.
func (t *MerkleTree) UpdateLeaf(index int, value Hash) error {
	if err := t.validateIndex(index); err != nil {
		return err
	}
	t.layers[0][index] = value

	idx := index
	for level := 0; level < len(t.layers)-1; level++ {
		p := idx / 2
		parent, err := t.parentOf(level, p)
		if err != nil {
			return err
		}
		t.layers[level+1][p] = parent
		idx = p
	}

	t.logger.Debug("updated merkle leaf",
		zap.Int("index", index),
		zap.String("root", string(t.Root())),
	)
	return nil
}

func (t *MerkleTree) validateIndex(index int) error {
	if index < 0 || index >= t.Size() {
		return fmt.Errorf("%w: got: %d, want: [0, %d)", ErrIndexOutOfRange, index, t.Size())
	}
	return nil
}
