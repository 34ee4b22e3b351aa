// SPDX-License-Identifier: MIT

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/dgraph-io/badger/v4"

	"github.com/coderodde/pctree/tree"
)

// keyPrefix namespaces tree entries inside the database.
const keyPrefix = "tree/"

// Config configures OpenBadger.
type Config struct {
	// Path is the database directory; required unless InMemory.
	Path string

	// InMemory keeps everything in RAM; Path is ignored.
	InMemory bool

	// SyncWrites fsyncs every commit.
	SyncWrites bool

	// Logger receives BadgerDB's own log lines. Nil silences them.
	Logger *slog.Logger
}

// Badger is a Store backed by BadgerDB. Values are the JSON encoding of the
// trees.
type Badger struct {
	db     *badger.DB
	closed atomic.Bool
}

// badgerLogger adapts slog to badger.Logger.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...any) {
	l.logger.Error(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...any) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...any) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...any) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

// OpenBadger opens (creating if needed) a Badger store.
func OpenBadger(cfg Config) (*Badger, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if cfg.Path == "" {
			return nil, errors.New("store: path is required for a persistent database")
		}
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("store: create database directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)
	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("store: open badger database: %w", err)
	}

	return &Badger{db: db}, nil
}

func (b *Badger) Put(key string, t *tree.Tree) error {
	if err := checkPut(key, t); err != nil {
		return err
	}
	if b.closed.Load() {
		return ErrClosed
	}
	val, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("store: encode %q: %w", key, err)
	}

	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+key), val)
	})
}

func (b *Badger) Get(key string) (*tree.Tree, error) {
	if b.closed.Load() {
		return nil, ErrClosed
	}
	var val []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + key))
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)

		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: get %q: %w", key, err)
	}

	t := new(tree.Tree)
	if err := json.Unmarshal(val, t); err != nil {
		return nil, fmt.Errorf("store: decode %q: %w", key, err)
	}

	return t, nil
}

func (b *Badger) Delete(key string) error {
	if b.closed.Load() {
		return ErrClosed
	}
	err := b.db.Update(func(txn *badger.Txn) error {
		k := []byte(keyPrefix + key)
		if _, err := txn.Get(k); err != nil {
			return err
		}

		return txn.Delete(k)
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrNotFound
	}

	return err
}

func (b *Badger) Keys() ([]string, error) {
	if b.closed.Load() {
		return nil, ErrClosed
	}
	var keys []string
	err := b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, string(it.Item().Key()[len(keyPrefix):]))
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("store: list keys: %w", err)
	}

	return keys, nil
}

// Close closes the database. Further calls return ErrClosed.
func (b *Badger) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return ErrClosed
	}

	return b.db.Close()
}
