package hashers

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/celestiaorg/lmt"
)

const (
	NameSHA256    = "sha256"
	NameMiMC      = "mimc"
	NameKeccak256 = "keccak256"
	NameConcat    = "concat"
)

// ErrUnknownHasher is returned by ByName for a name without a combiner.
var ErrUnknownHasher = errors.New("unknown hasher")

var constructors = map[string]func() lmt.Combiner{
	NameSHA256:    SHA256,
	NameMiMC:      MiMC,
	NameKeccak256: Keccak256,
	NameConcat:    func() lmt.Combiner { return Concat("-") },
}

// ByName returns the combiner registered under name.
func ByName(name string) (lmt.Combiner, error) {
	newCombiner, ok := constructors[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownHasher, "%q (known: %v)", name, Names())
	}
	return newCombiner(), nil
}

// Names returns the registered combiner names in sorted order.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
