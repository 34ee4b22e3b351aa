// SPDX-License-Identifier: MIT

package tree_test

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coderodde/pctree/alphabet"
	"github.com/coderodde/pctree/dataset"
	"github.com/coderodde/pctree/tree"
)

func dna(t *testing.T) *alphabet.Alphabet {
	t.Helper()
	a, err := alphabet.New("A", "C", "G", "T")
	require.NoError(t, err)

	return a
}

func label(t *testing.T, a *alphabet.Alphabet, syms ...string) alphabet.Label {
	t.Helper()
	l, err := a.LabelOf(syms...)
	require.NoError(t, err)

	return l
}

// sample builds the depth-1 tree {A, G, T} / {C} over DNA symbols.
func sample(t *testing.T) *tree.Tree {
	t.Helper()
	a := dna(t)
	b, err := tree.NewBuilder(a, 1)
	require.NoError(t, err)

	root, err := b.AddRoot(-13.77, 10)
	require.NoError(t, err)
	agt, err := b.AddChild(root, label(t, a, "A", "G", "T"), -6.0, 6)
	require.NoError(t, err)
	c, err := b.AddChild(root, label(t, a, "C"), -7.77, 4)
	require.NoError(t, err)
	require.NoError(t, b.SetDistribution(agt, []float64{5.0 / 6, 1.0 / 6, 0, 0}))
	require.NoError(t, b.SetDistribution(c, []float64{0.25, 0, 0.25, 0.5}))

	tr, err := b.Build()
	require.NoError(t, err)

	return tr
}

func TestNewBuilder_Errors(t *testing.T) {
	_, err := tree.NewBuilder(nil, 1)
	assert.ErrorIs(t, err, tree.ErrNilAlphabet)

	_, err = tree.NewBuilder(dna(t), -1)
	assert.ErrorIs(t, err, tree.ErrBadDepth)
}

func TestBuilder_AddErrors(t *testing.T) {
	a := dna(t)
	b, err := tree.NewBuilder(a, 1)
	require.NoError(t, err)

	_, err = b.AddChild(0, 1, 0, 0)
	assert.ErrorIs(t, err, tree.ErrNoRoot)
	_, err = b.Build()
	assert.ErrorIs(t, err, tree.ErrNoRoot)

	root, err := b.AddRoot(0, 0)
	require.NoError(t, err)
	_, err = b.AddRoot(0, 0)
	assert.ErrorIs(t, err, tree.ErrRootExists)

	_, err = b.AddChild(7, 1, 0, 0)
	assert.ErrorIs(t, err, tree.ErrUnknownNode)
	_, err = b.AddChild(root, 0, 0, 0)
	assert.ErrorIs(t, err, tree.ErrBadLabel)
	_, err = b.AddChild(root, 1<<4, 0, 0)
	assert.ErrorIs(t, err, tree.ErrBadLabel)

	child, err := b.AddChild(root, a.Full(), 0, 0)
	require.NoError(t, err)
	_, err = b.AddChild(child, a.Full(), 0, 0)
	assert.ErrorIs(t, err, tree.ErrBadDepth)

	assert.ErrorIs(t, b.SetDistribution(9, []float64{1, 0, 0, 0}), tree.ErrUnknownNode)
	assert.ErrorIs(t, b.SetDistribution(child, []float64{1}), tree.ErrDistribution)
}

func TestBuilder_BuildValidates(t *testing.T) {
	a := dna(t)
	uniform := []float64{0.25, 0.25, 0.25, 0.25}

	cases := []struct {
		name  string
		setup func(b *tree.Builder)
		want  error
	}{
		{
			name: "overlapping children",
			setup: func(b *tree.Builder) {
				x, _ := b.AddChild(0, label(t, a, "A", "C"), 0, 0)
				y, _ := b.AddChild(0, label(t, a, "C", "G", "T"), 0, 0)
				_ = b.SetDistribution(x, uniform)
				_ = b.SetDistribution(y, uniform)
			},
			want: tree.ErrNotPartition,
		},
		{
			name: "children miss a symbol",
			setup: func(b *tree.Builder) {
				x, _ := b.AddChild(0, label(t, a, "A", "C", "G"), 0, 0)
				_ = b.SetDistribution(x, uniform)
			},
			want: tree.ErrNotPartition,
		},
		{
			name: "leaf without distribution",
			setup: func(b *tree.Builder) {
				_, _ = b.AddChild(0, a.Full(), 0, 0)
			},
			want: tree.ErrDistribution,
		},
		{
			name: "internal node with distribution",
			setup: func(b *tree.Builder) {
				x, _ := b.AddChild(0, a.Full(), 0, 0)
				_ = b.SetDistribution(x, uniform)
				_ = b.SetDistribution(0, uniform)
			},
			want: tree.ErrDistribution,
		},
		{
			name: "shallow leaf",
			setup: func(b *tree.Builder) {
				_ = b.SetDistribution(0, uniform)
			},
			want: tree.ErrBadDepth,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := tree.NewBuilder(a, 1)
			require.NoError(t, err)
			_, err = b.AddRoot(0, 0)
			require.NoError(t, err)
			tc.setup(b)
			_, err = b.Build()
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBuilder_SingleUse(t *testing.T) {
	a := dna(t)
	b, err := tree.NewBuilder(a, 0)
	require.NoError(t, err)
	_, err = b.AddRoot(0, 1)
	require.NoError(t, err)
	require.NoError(t, b.SetDistribution(0, []float64{1, 0, 0, 0}))
	_, err = b.Build()
	require.NoError(t, err)

	_, err = b.Build()
	assert.ErrorIs(t, err, tree.ErrBuilt)
	_, err = b.AddChild(0, 1, 0, 0)
	assert.ErrorIs(t, err, tree.ErrBuilt)
}

func TestTree_Accessors(t *testing.T) {
	tr := sample(t)

	assert.Equal(t, 3, tr.Len())
	assert.Equal(t, 1, tr.Depth())
	assert.InDelta(t, -13.77, tr.Score(), 1e-12)
	assert.Equal(t, []tree.NodeID{1, 2}, tr.Leaves())

	root := tr.Root()
	assert.True(t, root.IsRoot())
	assert.False(t, root.IsLeaf())
	assert.Equal(t, tree.NoParent, root.Parent)
	assert.Equal(t, 10, root.Weight)

	n, err := tr.Node(2)
	require.NoError(t, err)
	assert.Equal(t, "{C}", tr.Alphabet().Format(n.Label))
	assert.Equal(t, tree.NodeID(0), n.Parent)

	// copies must not alias the arena
	n.Distribution[0] = 42
	again, err := tr.Node(2)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, again.Distribution[0], 1e-12)

	_, err = tr.Node(3)
	assert.ErrorIs(t, err, tree.ErrUnknownNode)
}

func TestTree_String(t *testing.T) {
	want := "{}\n  {A, G, T}\n  {C}\n"
	assert.Equal(t, want, sample(t).String())
}

func TestTree_Traverse(t *testing.T) {
	a := dna(t)
	b, err := tree.NewBuilder(a, 2)
	require.NoError(t, err)
	_, _ = b.AddRoot(0, 0)
	x, _ := b.AddChild(0, label(t, a, "A", "C"), 0, 0)
	y, _ := b.AddChild(0, label(t, a, "G", "T"), 0, 0)
	for _, p := range []tree.NodeID{x, y} {
		l, _ := b.AddChild(p, a.Full(), 0, 0)
		require.NoError(t, b.SetDistribution(l, []float64{1, 0, 0, 0}))
	}
	tr, err := b.Build()
	require.NoError(t, err)

	collect := func(bottomUp bool) []tree.NodeID {
		var ids []tree.NodeID
		require.NoError(t, tr.Traverse(bottomUp, func(n tree.Node) error {
			ids = append(ids, n.ID)
			return nil
		}))
		return ids
	}
	assert.Equal(t, []tree.NodeID{0, 1, 3, 2, 4}, collect(false))
	assert.Equal(t, []tree.NodeID{3, 1, 4, 2, 0}, collect(true))

	stop := errors.New("stop")
	calls := 0
	err = tr.Traverse(false, func(tree.Node) error {
		calls++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)

	assert.Equal(t, "{}\n  {A, C}\n    {A, C, G, T}\n  {G, T}\n    {A, C, G, T}\n", tr.String())
}

func TestTree_Predict(t *testing.T) {
	tr := sample(t)

	p, err := tr.Predict([]string{"G"})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{5.0 / 6, 1.0 / 6, 0, 0}, p, 1e-12)

	p, err = tr.Predict([]string{"C"})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.25, 0, 0.25, 0.5}, p, 1e-12)

	pr, err := tr.Probability([]string{"C"}, "T")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, pr, 1e-12)

	_, err = tr.Predict([]string{"C", "A"})
	assert.ErrorIs(t, err, tree.ErrContextLength)
	_, err = tr.Predict([]string{"X"})
	assert.ErrorIs(t, err, alphabet.ErrUnknownSymbol)
	_, err = tr.Probability([]string{"A"}, "X")
	assert.ErrorIs(t, err, alphabet.ErrUnknownSymbol)
}

func TestTree_LogLikelihood(t *testing.T) {
	tr := sample(t)
	d, err := dataset.FromRecords([][]string{
		{"A", "A"}, {"T", "A"}, {"A", "A"}, {"C", "G"}, {"C", "T"},
		{"C", "A"}, {"T", "A"}, {"T", "A"}, {"T", "C"}, {"C", "T"},
	})
	require.NoError(t, err)

	ll, err := tr.LogLikelihood(d)
	require.NoError(t, err)
	want := 5*math.Log(5.0/6) + math.Log(1.0/6) + 2*math.Log(0.25) + 2*math.Log(0.5)
	assert.InDelta(t, want, ll, 1e-9)

	deep, err := dataset.FromRecords([][]string{{"A", "A", "A"}})
	require.NoError(t, err)
	_, err = tr.LogLikelihood(deep)
	assert.ErrorIs(t, err, tree.ErrContextLength)

	zero, err := dataset.FromRecords([][]string{{"A", "G"}})
	require.NoError(t, err)
	ll, err = tr.LogLikelihood(zero)
	require.NoError(t, err)
	assert.True(t, math.IsInf(ll, -1))
}

func TestTree_JSONRoundTrip(t *testing.T) {
	tr := sample(t)
	data, err := json.Marshal(tr)
	require.NoError(t, err)

	var back tree.Tree
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, tr.String(), back.String())
	assert.InDelta(t, tr.Score(), back.Score(), 1e-12)
	assert.Equal(t, tr.Alphabet().Symbols(), back.Alphabet().Symbols())

	p, err := back.Predict([]string{"C"})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.25, 0, 0.25, 0.5}, p, 1e-12)
}

func TestTree_UnmarshalErrors(t *testing.T) {
	docs := map[string]string{
		"not json":         `[`,
		"empty alphabet":   `{"alphabet":[],"depth":0,"nodes":[]}`,
		"no nodes":         `{"alphabet":["A"],"depth":0,"nodes":[]}`,
		"bad root":         `{"alphabet":["A"],"depth":0,"nodes":[{"id":0,"parent":3,"label":[]}]}`,
		"ids out of order": `{"alphabet":["A"],"depth":1,"nodes":[{"id":0,"parent":-1,"label":[]},{"id":2,"parent":0,"label":["A"]}]}`,
		"forward parent":   `{"alphabet":["A"],"depth":1,"nodes":[{"id":0,"parent":-1,"label":[]},{"id":1,"parent":1,"label":["A"]}]}`,
		"unknown symbol":   `{"alphabet":["A"],"depth":1,"nodes":[{"id":0,"parent":-1,"label":[]},{"id":1,"parent":0,"label":["B"]}]}`,
		"unknown p key":    `{"alphabet":["A"],"depth":0,"nodes":[{"id":0,"parent":-1,"label":[],"distribution":{"B":1}}]}`,
		"missing p":        `{"alphabet":["A"],"depth":0,"nodes":[{"id":0,"parent":-1,"label":[]}]}`,
	}
	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			var tr tree.Tree
			assert.ErrorIs(t, json.Unmarshal([]byte(doc), &tr), tree.ErrDecode)
		})
	}
}
