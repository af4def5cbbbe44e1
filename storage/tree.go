package storage

import (
	"github.com/pkg/errors"

	"github.com/celestiaorg/lmt"
	"github.com/celestiaorg/lmt/pb"
)

// Save stores the tree's leaves and root under name. hasher records which
// combiner produced the root.
func Save(s LeafStorer, name, hasher string, tree *lmt.MerkleTree) error {
	leaves := tree.Leaves()
	set := &pb.LeafSet{
		Leaves: make([]string, len(leaves)),
		Root:   string(tree.Root()),
		Hasher: hasher,
	}
	for i, leaf := range leaves {
		set.Leaves[i] = string(leaf)
	}
	return s.Put(name, set)
}

// Load rebuilds the tree stored under name. The rebuilt root must match the
// stored one, otherwise ErrRootMismatch is returned; that also happens when
// c is not the combiner the tree was saved with.
func Load(s LeafStorer, name string, c lmt.Combiner, opts ...lmt.Option) (*lmt.MerkleTree, error) {
	set, err := s.Get(name)
	if err != nil {
		return nil, err
	}
	leaves := make([]lmt.Hash, len(set.Leaves))
	for i, leaf := range set.Leaves {
		leaves[i] = lmt.Hash(leaf)
	}
	tree, err := lmt.New(leaves, c, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "rebuilding leaf set %q", name)
	}
	if string(tree.Root()) != set.Root {
		return nil, errors.Wrapf(ErrRootMismatch, "%q: stored %s, rebuilt %s (hasher %q)", name, set.Root, tree.Root(), set.Hasher)
	}
	return tree, nil
}
