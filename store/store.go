// SPDX-License-Identifier: MIT

package store

import (
	"errors"
	"slices"
	"sync"

	"github.com/coderodde/pctree/tree"
)

var (
	// ErrNotFound is returned for keys without a stored tree.
	ErrNotFound = errors.New("store: tree not found")

	// ErrEmptyKey is returned for the empty key.
	ErrEmptyKey = errors.New("store: empty key")

	// ErrNilTree is returned when Put receives no tree.
	ErrNilTree = errors.New("store: nil tree")

	// ErrClosed is returned by every method after Close.
	ErrClosed = errors.New("store: closed")
)

// Store persists trees by key.
type Store interface {
	// Put stores t under key, replacing any previous tree.
	Put(key string, t *tree.Tree) error

	// Get returns the tree stored under key or ErrNotFound.
	Get(key string) (*tree.Tree, error)

	// Delete removes key; a missing key is ErrNotFound.
	Delete(key string) error

	// Keys lists stored keys in ascending order.
	Keys() ([]string, error)

	// Close releases the store.
	Close() error
}

// Memory is a map-backed Store. Trees are immutable, so they are kept as is.
type Memory struct {
	mu     sync.RWMutex
	trees  map[string]*tree.Tree
	closed bool
}

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{trees: make(map[string]*tree.Tree)}
}

func (m *Memory) Put(key string, t *tree.Tree) error {
	if err := checkPut(key, t); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	m.trees[key] = t

	return nil
}

func (m *Memory) Get(key string) (*tree.Tree, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, ErrClosed
	}
	t, ok := m.trees[key]
	if !ok {
		return nil, ErrNotFound
	}

	return t, nil
}

func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	if _, ok := m.trees[key]; !ok {
		return ErrNotFound
	}
	delete(m.trees, key)

	return nil
}

func (m *Memory) Keys() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, ErrClosed
	}
	keys := make([]string, 0, len(m.trees))
	for k := range m.trees {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys, nil
}

func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	m.closed = true
	m.trees = nil

	return nil
}

func checkPut(key string, t *tree.Tree) error {
	if key == "" {
		return ErrEmptyKey
	}
	if t == nil {
		return ErrNilTree
	}

	return nil
}

var (
	_ Store = (*Memory)(nil)
	_ Store = (*Badger)(nil)
)
