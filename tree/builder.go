// SPDX-License-Identifier: MIT

package tree

import (
	"fmt"
	"slices"

	"github.com/coderodde/pctree/alphabet"
)

// Builder assembles a Tree node by node. Ids are handed out sequentially,
// starting with the root at 0. A Builder is single-use: after Build every
// method returns ErrBuilt.
type Builder struct {
	alphabet *alphabet.Alphabet
	depth    int
	nodes    []Node
	built    bool
}

// NewBuilder starts a tree of the given depth over a.
func NewBuilder(a *alphabet.Alphabet, depth int) (*Builder, error) {
	if a == nil {
		return nil, ErrNilAlphabet
	}
	if depth < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadDepth, depth)
	}

	return &Builder{alphabet: a, depth: depth}, nil
}

// AddRoot adds the root node (empty label, depth 0).
func (b *Builder) AddRoot(score float64, weight int) (NodeID, error) {
	if b.built {
		return 0, ErrBuilt
	}
	if len(b.nodes) > 0 {
		return 0, ErrRootExists
	}
	b.nodes = append(b.nodes, Node{ID: 0, Parent: NoParent, Score: score, Weight: weight})

	return 0, nil
}

// AddChild appends a child with the given label under parent.
func (b *Builder) AddChild(parent NodeID, label alphabet.Label, score float64, weight int) (NodeID, error) {
	if b.built {
		return 0, ErrBuilt
	}
	if len(b.nodes) == 0 {
		return 0, ErrNoRoot
	}
	if parent < 0 || int(parent) >= len(b.nodes) {
		return 0, fmt.Errorf("%w: parent %d", ErrUnknownNode, parent)
	}
	if label.IsEmpty() || label&^b.alphabet.Full() != 0 {
		return 0, fmt.Errorf("%w: %b", ErrBadLabel, label)
	}
	d := b.nodes[parent].Depth + 1
	if d > b.depth {
		return 0, fmt.Errorf("%w: child of node %d would sit at depth %d > %d", ErrBadDepth, parent, d, b.depth)
	}

	id := NodeID(len(b.nodes))
	b.nodes = append(b.nodes, Node{ID: id, Parent: parent, Label: label, Depth: d, Score: score, Weight: weight})
	b.nodes[parent].Children = append(b.nodes[parent].Children, id)

	return id, nil
}

// SetDistribution attaches the response distribution of a node. Its length
// must equal the alphabet size; whether it sums to one is the scorer's
// business.
func (b *Builder) SetDistribution(id NodeID, p []float64) error {
	if b.built {
		return ErrBuilt
	}
	if id < 0 || int(id) >= len(b.nodes) {
		return fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}
	if len(p) != b.alphabet.Size() {
		return fmt.Errorf("%w: node %d has %d probabilities for %d symbols", ErrDistribution, id, len(p), b.alphabet.Size())
	}
	b.nodes[id].Distribution = slices.Clone(p)

	return nil
}

// Build verifies the invariants and freezes the tree:
//   - a root exists;
//   - the children of every internal node partition the alphabet;
//   - every leaf sits at the tree depth and carries a distribution;
//   - internal nodes carry no distribution.
func (b *Builder) Build() (*Tree, error) {
	if b.built {
		return nil, ErrBuilt
	}
	if len(b.nodes) == 0 {
		return nil, ErrNoRoot
	}
	full := b.alphabet.Full()
	for i := range b.nodes {
		n := &b.nodes[i]
		if n.IsLeaf() {
			if n.Depth != b.depth {
				return nil, fmt.Errorf("%w: leaf %d at depth %d, tree depth %d", ErrBadDepth, n.ID, n.Depth, b.depth)
			}
			if n.Distribution == nil {
				return nil, fmt.Errorf("%w: leaf %d has none", ErrDistribution, n.ID)
			}
			continue
		}
		if n.Distribution != nil {
			return nil, fmt.Errorf("%w: internal node %d has one", ErrDistribution, n.ID)
		}
		var union alphabet.Label
		for _, c := range n.Children {
			l := b.nodes[c].Label
			if union.Intersects(l) {
				return nil, fmt.Errorf("%w: node %d, overlapping %s", ErrNotPartition, n.ID, b.alphabet.Format(l))
			}
			union = union.Union(l)
		}
		if union != full {
			return nil, fmt.Errorf("%w: node %d covers only %s", ErrNotPartition, n.ID, b.alphabet.Format(union))
		}
	}

	b.built = true
	t := &Tree{alphabet: b.alphabet, depth: b.depth, nodes: b.nodes}
	b.nodes = nil

	return t, nil
}
