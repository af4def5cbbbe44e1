package storage

import (
	"github.com/gogo/protobuf/proto"
	"github.com/pkg/errors"

	"github.com/celestiaorg/lmt/pb"
)

var (
	ErrNotFound     = errors.New("leaf set not found")
	ErrRootMismatch = errors.New("stored root does not match the stored leaves")
)

// LeafStorer persists named leaf sets.
type LeafStorer interface {
	Put(name string, set *pb.LeafSet) error
	// Get returns ErrNotFound if nothing is stored under name.
	Get(name string) (*pb.LeafSet, error)
	Delete(name string) error
	Names() ([]string, error)
	Close() error
}

var _ LeafStorer = &InMemoryLeafStore{}

// InMemoryLeafStore keeps encoded leaf sets in a map.
type InMemoryLeafStore struct {
	sets map[string][]byte
	// This is only to traverse the sets in insertion order.
	keys []string
}

func NewInMemoryLeafStore() *InMemoryLeafStore {
	return &InMemoryLeafStore{
		sets: make(map[string][]byte),
		keys: make([]string, 0),
	}
}

func (i *InMemoryLeafStore) Put(name string, set *pb.LeafSet) error {
	val, err := proto.Marshal(set)
	if err != nil {
		return errors.Wrapf(err, "encoding leaf set %q", name)
	}
	if _, present := i.sets[name]; !present {
		i.keys = append(i.keys, name)
	}
	i.sets[name] = val
	return nil
}

func (i *InMemoryLeafStore) Get(name string) (*pb.LeafSet, error) {
	val, ok := i.sets[name]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "%q", name)
	}
	return decode(name, val)
}

func (i *InMemoryLeafStore) Delete(name string) error {
	if _, present := i.sets[name]; !present {
		return nil
	}
	delete(i.sets, name)
	for k, key := range i.keys {
		if key == name {
			i.keys = append(i.keys[:k], i.keys[k+1:]...)
			break
		}
	}
	return nil
}

// Names returns the stored names in insertion order.
func (i *InMemoryLeafStore) Names() ([]string, error) {
	return append([]string(nil), i.keys...), nil
}

func (i *InMemoryLeafStore) Close() error {
	return nil
}

func (i *InMemoryLeafStore) Count() int {
	return len(i.sets)
}

func decode(name string, val []byte) (*pb.LeafSet, error) {
	set := &pb.LeafSet{}
	if err := proto.Unmarshal(val, set); err != nil {
		return nil, errors.Wrapf(err, "decoding leaf set %q", name)
	}
	return set, nil
}
