// SPDX-License-Identifier: MIT

package store_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coderodde/pctree/alphabet"
	"github.com/coderodde/pctree/dataset"
	"github.com/coderodde/pctree/learn"
	"github.com/coderodde/pctree/store"
	"github.com/coderodde/pctree/tree"
)

func learned(t *testing.T) *tree.Tree {
	t.Helper()
	a, err := alphabet.New("A", "C", "G", "T")
	require.NoError(t, err)
	d, err := dataset.FromRecords([][]string{
		{"A", "A"}, {"T", "A"}, {"A", "A"}, {"C", "G"}, {"C", "T"},
		{"C", "A"}, {"T", "A"}, {"T", "A"}, {"T", "C"}, {"C", "T"},
	})
	require.NoError(t, err)
	tr, err := learn.Learn(a, d)
	require.NoError(t, err)

	return tr
}

func backends() map[string]func(t *testing.T) store.Store {
	return map[string]func(t *testing.T) store.Store{
		"memory": func(*testing.T) store.Store { return store.NewMemory() },
		"badger-inmemory": func(t *testing.T) store.Store {
			s, err := store.OpenBadger(store.Config{InMemory: true})
			require.NoError(t, err)
			return s
		},
		"badger-disk": func(t *testing.T) store.Store {
			s, err := store.OpenBadger(store.Config{Path: t.TempDir()})
			require.NoError(t, err)
			return s
		},
	}
}

func TestStore_RoundTrip(t *testing.T) {
	tr := learned(t)
	for name, open := range backends() {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			defer s.Close()

			require.NoError(t, s.Put("b", tr))
			require.NoError(t, s.Put("a", tr))

			got, err := s.Get("b")
			require.NoError(t, err)
			assert.Equal(t, tr.String(), got.String())
			assert.InDelta(t, tr.Score(), got.Score(), 1e-12)

			keys, err := s.Keys()
			require.NoError(t, err)
			assert.Equal(t, []string{"a", "b"}, keys)

			require.NoError(t, s.Delete("a"))
			_, err = s.Get("a")
			assert.ErrorIs(t, err, store.ErrNotFound)
			assert.ErrorIs(t, s.Delete("a"), store.ErrNotFound)

			keys, err = s.Keys()
			require.NoError(t, err)
			assert.Equal(t, []string{"b"}, keys)
		})
	}
}

func TestStore_Errors(t *testing.T) {
	tr := learned(t)
	for name, open := range backends() {
		t.Run(name, func(t *testing.T) {
			s := open(t)

			assert.ErrorIs(t, s.Put("", tr), store.ErrEmptyKey)
			assert.ErrorIs(t, s.Put("k", nil), store.ErrNilTree)
			_, err := s.Get("missing")
			assert.ErrorIs(t, err, store.ErrNotFound)

			require.NoError(t, s.Close())
			assert.ErrorIs(t, s.Close(), store.ErrClosed)
			assert.ErrorIs(t, s.Put("k", tr), store.ErrClosed)
			_, err = s.Get("k")
			assert.ErrorIs(t, err, store.ErrClosed)
			_, err = s.Keys()
			assert.ErrorIs(t, err, store.ErrClosed)
			assert.ErrorIs(t, s.Delete("k"), store.ErrClosed)
		})
	}
}

func TestStore_ConcurrentPuts(t *testing.T) {
	tr := learned(t)
	for name, open := range backends() {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			defer s.Close()

			var wg sync.WaitGroup
			for _, k := range []string{"k1", "k2", "k3", "k4", "k5", "k6"} {
				wg.Add(1)
				go func(k string) {
					defer wg.Done()
					assert.NoError(t, s.Put(k, tr))
				}(k)
			}
			wg.Wait()

			keys, err := s.Keys()
			require.NoError(t, err)
			assert.Len(t, keys, 6)
		})
	}
}

func TestBadger_Persists(t *testing.T) {
	dir := t.TempDir()
	tr := learned(t)

	s, err := store.OpenBadger(store.Config{Path: dir, SyncWrites: true})
	require.NoError(t, err)
	require.NoError(t, s.Put("run-1", tr))
	require.NoError(t, s.Close())

	s, err = store.OpenBadger(store.Config{Path: dir})
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Get("run-1")
	require.NoError(t, err)
	assert.Equal(t, tr.String(), got.String())

	p, err := got.Probability([]string{"C"}, "T")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, p, 1e-12)
}

func TestBadger_RequiresPath(t *testing.T) {
	_, err := store.OpenBadger(store.Config{})
	assert.Error(t, err)
}
