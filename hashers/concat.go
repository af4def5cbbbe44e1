package hashers

import "github.com/celestiaorg/lmt"

// Concat returns a placeholder combiner that joins its inputs with sep. It
// is not a hash; it makes tree shapes readable in examples and tests.
func Concat(sep string) lmt.Combiner {
	return lmt.CombineFunc(func(left, right lmt.Hash) (lmt.Hash, error) {
		return left + lmt.Hash(sep) + right, nil
	})
}
