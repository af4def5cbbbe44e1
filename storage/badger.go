package storage

import (
	"fmt"
	"path/filepath"
	"strings"

	badgerdb "github.com/dgraph-io/badger/v3"
	"github.com/gogo/protobuf/proto"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/celestiaorg/lmt/pb"
)

const keyPrefixLeafSet = "leafset:"

var _ LeafStorer = &BadgerLeafStore{}

// BadgerLeafStore persists leaf sets in a Badger database.
type BadgerLeafStore struct {
	db     *badgerdb.DB
	logger *zap.Logger
}

// OpenBadger opens (or creates) the database in dir.
func OpenBadger(dir string, logger *zap.Logger) (*BadgerLeafStore, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve absolute path")
	}
	opts := badgerdb.DefaultOptions(absPath)
	opts.SyncWrites = true
	opts.NumVersionsToKeep = 1
	return openBadger(opts, logger)
}

// OpenBadgerInMemory opens a database that lives only in memory.
func OpenBadgerInMemory(logger *zap.Logger) (*BadgerLeafStore, error) {
	return openBadger(badgerdb.DefaultOptions("").WithInMemory(true), logger)
}

func openBadger(opts badgerdb.Options, logger *zap.Logger) (*BadgerLeafStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	opts.Logger = &badgerLoggerAdapter{logger: logger}
	db, err := badgerdb.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open badger database at %q", opts.Dir)
	}
	logger.Debug("opened leaf store", zap.String("dir", opts.Dir), zap.Bool("inMemory", opts.InMemory))
	return &BadgerLeafStore{db: db, logger: logger}, nil
}

func leafSetKey(name string) []byte {
	return []byte(keyPrefixLeafSet + name)
}

func (b *BadgerLeafStore) Put(name string, set *pb.LeafSet) error {
	val, err := proto.Marshal(set)
	if err != nil {
		return errors.Wrapf(err, "encoding leaf set %q", name)
	}
	err = b.db.Update(func(txn *badgerdb.Txn) error {
		return txn.Set(leafSetKey(name), val)
	})
	if err != nil {
		return errors.Wrapf(err, "storing leaf set %q", name)
	}
	return nil
}

func (b *BadgerLeafStore) Get(name string) (*pb.LeafSet, error) {
	var val []byte
	err := b.db.View(func(txn *badgerdb.Txn) error {
		item, err := txn.Get(leafSetKey(name))
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badgerdb.ErrKeyNotFound) {
		return nil, errors.Wrapf(ErrNotFound, "%q", name)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading leaf set %q", name)
	}
	return decode(name, val)
}

func (b *BadgerLeafStore) Delete(name string) error {
	err := b.db.Update(func(txn *badgerdb.Txn) error {
		return txn.Delete(leafSetKey(name))
	})
	if err != nil {
		return errors.Wrapf(err, "deleting leaf set %q", name)
	}
	return nil
}

// Names returns the stored names in key order.
func (b *BadgerLeafStore) Names() ([]string, error) {
	var names []string
	err := b.db.View(func(txn *badgerdb.Txn) error {
		opts := badgerdb.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(keyPrefixLeafSet)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			names = append(names, strings.TrimPrefix(string(it.Item().Key()), keyPrefixLeafSet))
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "listing leaf sets")
	}
	return names, nil
}

func (b *BadgerLeafStore) Close() error {
	return b.db.Close()
}

// badgerLoggerAdapter adapts zap.Logger to the badger.Logger interface.
type badgerLoggerAdapter struct {
	logger *zap.Logger
}

var _ badgerdb.Logger = (*badgerLoggerAdapter)(nil)

func (b *badgerLoggerAdapter) Errorf(format string, args ...interface{}) {
	b.logger.Error(fmt.Sprintf(format, args...))
}

func (b *badgerLoggerAdapter) Warningf(format string, args ...interface{}) {
	b.logger.Warn(fmt.Sprintf(format, args...))
}

func (b *badgerLoggerAdapter) Infof(format string, args ...interface{}) {
	b.logger.Debug(fmt.Sprintf(format, args...))
}

func (b *badgerLoggerAdapter) Debugf(format string, args ...interface{}) {
	b.logger.Debug(fmt.Sprintf(format, args...))
}
