package lmt

// Hash is an opaque hash value. The tree only ever compares hashes for
// equality and hands them to a Combiner; it never interprets their encoding.
type Hash string

// Combiner provides the single hashing capability the tree needs: combining
// the hashes of a left and a right child into the hash of their parent.
//
// Implementations must be deterministic for the lifetime of a tree: the same
// inputs always yield the same output.
type Combiner interface {
	Combine(left, right Hash) (Hash, error)
}

// CombineFunc adapts an ordinary function to the Combiner interface.
type CombineFunc func(left, right Hash) (Hash, error)

// Combine calls f(left, right).
func (f CombineFunc) Combine(left, right Hash) (Hash, error) {
	return f(left, right)
}
