// SPDX-License-Identifier: MIT

package learn

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/coderodde/pctree/alphabet"
	"github.com/coderodde/pctree/bic"
	"github.com/coderodde/pctree/dataset"
	"github.com/coderodde/pctree/partition"
	"github.com/coderodde/pctree/tree"
)

// Learner learns context trees with a fixed set of Options. It is immutable
// after New and safe for concurrent use.
type Learner struct {
	opts Options
}

// New applies opts over DefaultOptions.
func New(opts ...Option) (*Learner, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Learner{opts: o}, nil
}

// Algorithm returns the configured grouping strategy.
func (l *Learner) Algorithm() Algorithm { return l.opts.Algorithm }

// Learn returns the highest scoring context tree for d over a under the
// configured algorithm. With Optimal the result maximizes the BIC score over
// every parsimonious context tree of depth d.Depth().
//
// Errors: ErrInvalidArgument (wrapping the offending detail),
// ErrInternalConsistency (wrapping a bic sentinel). No partial tree is ever
// returned.
//
// Complexity (n = |alphabet|, D = depth, N = rows):
//   - Time:   O((2ⁿ)ᴰ·(Bell(n)·n + N·2ⁿ⁻¹)) for Optimal
//   - Memory: O((2ⁿ)ᴰ + Bell(n)·n + N·2⁽ⁿ⁻¹⁾ᴰ)
func (l *Learner) Learn(a *alphabet.Alphabet, d *dataset.Dataset) (*tree.Tree, error) {
	r, err := l.newRun(a, d)
	if err != nil {
		return nil, err
	}
	r.log.Debug("learn started",
		slog.String("algorithm", l.opts.Algorithm.String()),
		slog.Int("symbols", r.n),
		slog.Int("rows", len(r.ys)),
		slog.Int("depth", r.depth),
		slog.Float64("penalty", r.scorer.Penalty()),
	)

	r.expand()
	r.resolve()
	t, err := r.assemble()
	if err != nil {
		return nil, err
	}
	r.log.Debug("learn finished",
		slog.Int("extended_nodes", len(r.nodes)),
		slog.Int("tree_nodes", t.Len()),
		slog.Float64("score", t.Score()),
	)

	return t, nil
}

// Learn runs the optimal learner; opts may tune limits, hooks and logging.
func Learn(a *alphabet.Alphabet, d *dataset.Dataset, opts ...Option) (*tree.Tree, error) {
	l, err := New(opts...)
	if err != nil {
		return nil, err
	}

	return l.Learn(a, d)
}

// extNode is a node of the extended tree. Children of a node are stored
// contiguously: the child labelled L sits at first+L−1.
type extNode struct {
	label     alphabet.Label
	remaining int
	first     int // −1 at leaves
	rows      []int32
	weight    int
	counts    []int // leaves only
	score     float64
	chosen    partition.Partition
}

const (
	// maxArena caps the extended tree and the row count whatever MaxNodes
	// says; rows are addressed by int32.
	maxArena = math.MaxInt32

	// preallocNodes caps the initial arena capacity.
	preallocNodes = 1 << 20
)

// run holds the state of one learn call.
type run struct {
	opts   *Options
	log    *slog.Logger
	a      *alphabet.Alphabet
	n      int
	labels int
	depth  int
	scorer bic.Scorer
	xs     [][]int
	ys     []int
	sel    selector
	nodes  []extNode
}

// newRun validates the inputs, encodes the rows and prepares the selector.
// Nothing combinatorial happens before every check has passed.
func (l *Learner) newRun(a *alphabet.Alphabet, d *dataset.Dataset) (*run, error) {
	if a == nil || a.Size() == 0 {
		return nil, fmt.Errorf("%w: alphabet is nil or empty", ErrInvalidArgument)
	}
	if d == nil || d.Len() == 0 {
		return nil, fmt.Errorf("%w: dataset is nil or empty", ErrInvalidArgument)
	}
	if d.Len() > maxArena {
		return nil, fmt.Errorf("%w: %d rows exceed %d", ErrInvalidArgument, d.Len(), maxArena)
	}
	n, depth := a.Size(), d.Depth()

	xs := make([][]int, d.Len())
	ys := make([]int, d.Len())
	for i := range xs {
		row := d.Row(i)
		if row.Len() != depth {
			return nil, fmt.Errorf("%w: row %d has %d explanatory symbols, want %d", ErrInvalidArgument, i, row.Len(), depth)
		}
		syms := row.Symbols()
		codes := make([]int, len(syms))
		for j, s := range syms {
			c, ok := a.Index(s)
			if !ok {
				return nil, fmt.Errorf("%w: row %d: %w: %q", ErrInvalidArgument, i, alphabet.ErrUnknownSymbol, s)
			}
			codes[j] = c
		}
		xs[i], ys[i] = codes[:depth], codes[depth]
	}

	limit := maxArena
	if m := l.opts.MaxNodes; m > 0 && m < limit {
		limit = m
	}
	labels := a.LabelCount()
	size, ok := extendedSize(labels, depth, limit)
	if !ok {
		return nil, fmt.Errorf("%w: extended tree of %d symbols and depth %d exceeds %d nodes", ErrInvalidArgument, n, depth, limit)
	}

	scorer, err := bic.NewScorer(n, d.Len())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	r := &run{
		opts:   &l.opts,
		log:    l.opts.Logger,
		a:      a,
		n:      n,
		labels: labels,
		depth:  depth,
		scorer: scorer,
		xs:     xs,
		ys:     ys,
		nodes:  make([]extNode, 0, min(size, preallocNodes)),
	}

	switch l.opts.Algorithm {
	case Optimal:
		if m := l.opts.MaxPartitions; m > 0 && (n > 25 || partition.Bell(n) > uint64(m)) {
			return nil, fmt.Errorf("%w: %d symbols have more than %d partitions", ErrInvalidArgument, n, m)
		}
		parts, err := partition.All(n)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
		}
		r.sel = optimalSelector{parts: parts}
	case Greedy:
		r.sel = greedySelector{n: n}
	case RandomSampling:
		r.sel = newRandomSelector(n, l.opts.Samples, l.opts.Seed)
	case Independence:
		r.sel = independenceSelector{full: a.Full()}
	}

	return r, nil
}

// extendedSize returns Σ_{l=0..depth} labels^l and false once the sum
// exceeds limit.
func extendedSize(labels, depth, limit int) (int, bool) {
	total, level := 1, 1
	for i := 0; i < depth; i++ {
		if level > limit/labels {
			return 0, false
		}
		level *= labels
		if total > limit-level {
			return 0, false
		}
		total += level
	}

	return total, true
}

// expand builds the extended tree breadth-first. The arena doubles as the
// queue: node i is expanded once every node before it has been.
func (r *run) expand() {
	all := make([]int32, len(r.ys))
	for i := range all {
		all[i] = int32(i)
	}
	r.nodes = append(r.nodes, extNode{remaining: r.depth, first: -1, rows: all})

	buckets := make([][]int32, r.n)
	for i := 0; i < len(r.nodes); i++ {
		if r.nodes[i].remaining == 0 {
			r.settleLeaf(i)
			continue
		}
		idx := r.nodes[i].remaining - 1
		for s := range buckets {
			buckets[s] = buckets[s][:0]
		}
		for _, row := range r.nodes[i].rows {
			s := r.xs[row][idx]
			buckets[s] = append(buckets[s], row)
		}

		r.nodes[i].first = len(r.nodes)
		for l := 1; l <= r.labels; l++ {
			lbl := alphabet.Label(l)
			size := 0
			for _, s := range lbl.Indices() {
				size += len(buckets[s])
			}
			rows := make([]int32, 0, size)
			for _, s := range lbl.Indices() {
				rows = append(rows, buckets[s]...)
			}
			r.nodes = append(r.nodes, extNode{
				label:     lbl,
				remaining: r.nodes[i].remaining - 1,
				first:     -1,
				rows:      rows,
				weight:    len(rows),
			})
		}
		r.nodes[i].weight = len(r.nodes[i].rows)
		r.nodes[i].rows = nil
	}
}

// settleLeaf counts the responses of a leaf and scores it.
func (r *run) settleLeaf(i int) {
	nd := &r.nodes[i]
	nd.counts = make([]int, r.n)
	for _, row := range nd.rows {
		nd.counts[r.ys[row]]++
	}
	nd.weight = len(nd.rows)
	nd.rows = nil
	nd.score = r.scorer.Score(nd.counts)
}

// resolve visits the arena in descending id order, so every child is
// resolved before its parent.
func (r *run) resolve() {
	scores := make([]float64, r.labels)
	weights := make([]int, r.labels)
	for i := len(r.nodes) - 1; i >= 0; i-- {
		nd := &r.nodes[i]
		if nd.first < 0 {
			r.opts.OnNodeResolved(0, 0)
			continue
		}
		for l := 0; l < r.labels; l++ {
			c := &r.nodes[nd.first+l]
			scores[l], weights[l] = c.score, c.weight
		}
		p, s, evaluated := r.sel.choose(scores, weights)
		nd.chosen, nd.score = p, s
		r.opts.OnNodeResolved(nd.remaining, evaluated)
	}
}

// assemble copies the selected part of the extended tree into a tree.Tree,
// breadth-first, and attaches leaf distributions.
func (r *run) assemble() (*tree.Tree, error) {
	b, err := tree.NewBuilder(r.a, r.depth)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternalConsistency, err)
	}
	root := &r.nodes[0]
	rootID, err := b.AddRoot(root.score, root.weight)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternalConsistency, err)
	}

	type pending struct {
		ext int
		id  tree.NodeID
	}
	queue := []pending{{ext: 0, id: rootID}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		nd := &r.nodes[cur.ext]

		if nd.first < 0 {
			p, err := bic.Distribution(nd.counts)
			if err != nil {
				return nil, fmt.Errorf("%w: leaf %s at depth %d: %w", ErrInternalConsistency, r.a.Format(nd.label), r.depth, err)
			}
			if err = b.SetDistribution(cur.id, p); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInternalConsistency, err)
			}
			continue
		}
		for _, lbl := range nd.chosen {
			ext := nd.first + int(lbl) - 1
			c := &r.nodes[ext]
			id, err := b.AddChild(cur.id, lbl, c.score, c.weight)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInternalConsistency, err)
			}
			queue = append(queue, pending{ext: ext, id: id})
		}
	}

	t, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternalConsistency, err)
	}

	return t, nil
}
