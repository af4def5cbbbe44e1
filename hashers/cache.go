package hashers

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"

	"github.com/celestiaorg/lmt"
)

type pair struct {
	left, right lmt.Hash
}

// CachedCombiner memoizes the results of another combiner. Failed calls are
// not cached. It is safe for concurrent use if the wrapped combiner is.
type CachedCombiner struct {
	next  lmt.Combiner
	cache *lru.Cache[pair, lmt.Hash]
}

// NewCached wraps next with an LRU cache holding up to size results.
func NewCached(next lmt.Combiner, size int) (*CachedCombiner, error) {
	cache, err := lru.New[pair, lmt.Hash](size)
	if err != nil {
		return nil, errors.Wrapf(err, "creating combine cache of size %d", size)
	}
	return &CachedCombiner{next: next, cache: cache}, nil
}

func (c *CachedCombiner) Combine(left, right lmt.Hash) (lmt.Hash, error) {
	key := pair{left, right}
	if h, ok := c.cache.Get(key); ok {
		return h, nil
	}
	h, err := c.next.Combine(left, right)
	if err != nil {
		return "", err
	}
	c.cache.Add(key, h)
	return h, nil
}

// Len returns the number of cached results.
func (c *CachedCombiner) Len() int {
	return c.cache.Len()
}
