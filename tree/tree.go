// SPDX-License-Identifier: MIT

package tree

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/coderodde/pctree/alphabet"
	"github.com/coderodde/pctree/dataset"
)

// Tree is an immutable parsimonious context tree.
type Tree struct {
	alphabet *alphabet.Alphabet
	depth    int
	nodes    []Node
}

// Alphabet returns the alphabet the tree was learned over.
func (t *Tree) Alphabet() *alphabet.Alphabet { return t.alphabet }

// Depth returns the number of explanatory symbols the tree consumes.
func (t *Tree) Depth() int { return t.depth }

// Len returns the number of nodes.
func (t *Tree) Len() int { return len(t.nodes) }

// Score returns the BIC score of the whole tree (the root score).
func (t *Tree) Score() float64 { return t.nodes[0].Score }

// Root returns a copy of the root node.
func (t *Tree) Root() Node { return t.nodes[0].clone() }

// Node returns a copy of node id.
func (t *Tree) Node(id NodeID) (Node, error) {
	if id < 0 || int(id) >= len(t.nodes) {
		return Node{}, fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}

	return t.nodes[id].clone(), nil
}

// Leaves returns the leaf ids in arena order.
func (t *Tree) Leaves() []NodeID {
	var out []NodeID
	for i := range t.nodes {
		if t.nodes[i].IsLeaf() {
			out = append(out, t.nodes[i].ID)
		}
	}

	return out
}

// Traverse visits every node depth-first, parents before children
// (pre-order) or, with bottomUp, children before parents (post-order).
// Siblings are visited in child order. A non-nil error from fn stops the walk
// and is returned as is.
func (t *Tree) Traverse(bottomUp bool, fn func(Node) error) error {
	type frame struct {
		id       NodeID
		expanded bool
	}
	stack := []frame{{id: 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &t.nodes[f.id]

		if !bottomUp || f.expanded || n.IsLeaf() {
			if err := fn(n.clone()); err != nil {
				return err
			}
			if bottomUp {
				continue
			}
		} else {
			stack = append(stack, frame{id: f.id, expanded: true})
		}
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{id: n.Children[i]})
		}
	}

	return nil
}

// Leaf routes a context to its leaf. The context must hold exactly Depth()
// symbols, oldest first, as in a dataset row.
func (t *Tree) Leaf(context []string) (Node, error) {
	if len(context) != t.depth {
		return Node{}, fmt.Errorf("%w: got %d symbols, want %d", ErrContextLength, len(context), t.depth)
	}
	id := NodeID(0)
	for l := 0; l < t.depth; l++ {
		s := context[t.depth-1-l]
		i, ok := t.alphabet.Index(s)
		if !ok {
			return Node{}, fmt.Errorf("%w: %q", alphabet.ErrUnknownSymbol, s)
		}
		next := NodeID(-1)
		for _, c := range t.nodes[id].Children {
			if t.nodes[c].Label.Has(i) {
				next = c
				break
			}
		}
		if next < 0 {
			// Build guarantees a covering child.
			return Node{}, fmt.Errorf("%w: no child of node %d matches %q", ErrNotPartition, id, s)
		}
		id = next
	}

	return t.nodes[id].clone(), nil
}

// Predict returns the response distribution for a context, indexed by
// alphabet position.
func (t *Tree) Predict(context []string) ([]float64, error) {
	n, err := t.Leaf(context)
	if err != nil {
		return nil, err
	}

	return n.Distribution, nil
}

// Probability returns P(response | context).
func (t *Tree) Probability(context []string, response string) (float64, error) {
	i, ok := t.alphabet.Index(response)
	if !ok {
		return 0, fmt.Errorf("%w: %q", alphabet.ErrUnknownSymbol, response)
	}
	n, err := t.Leaf(context)
	if err != nil {
		return 0, err
	}

	return n.Distribution[i], nil
}

// LogLikelihood returns Σ ln P(response | context) over the rows of d. A row
// whose response has probability zero yields -Inf.
func (t *Tree) LogLikelihood(d *dataset.Dataset) (float64, error) {
	if d.Depth() != t.depth {
		return 0, fmt.Errorf("%w: dataset depth %d, tree depth %d", ErrContextLength, d.Depth(), t.depth)
	}
	var ll float64
	for i := 0; i < d.Len(); i++ {
		row := d.Row(i)
		syms := row.Symbols()
		p, err := t.Probability(syms[:row.Len()], row.Response())
		if err != nil {
			return 0, fmt.Errorf("row %d: %w", i, err)
		}
		ll += math.Log(p)
	}

	return ll, nil
}

// String renders one line per node in pre-order, indented by two spaces per
// depth level.
func (t *Tree) String() string {
	var sb strings.Builder
	_ = t.Dump(&sb, false)

	return sb.String()
}

// Dump writes the tree like String. With verbose every line also carries the
// node score and weight, and leaves their distribution.
func (t *Tree) Dump(w io.Writer, verbose bool) error {
	return t.Traverse(false, func(n Node) error {
		var sb strings.Builder
		sb.WriteString(strings.Repeat("  ", n.Depth))
		sb.WriteString(t.alphabet.Format(n.Label))
		if verbose {
			fmt.Fprintf(&sb, " score=%s weight=%d", strconv.FormatFloat(n.Score, 'f', 6, 64), n.Weight)
			if n.Distribution != nil {
				sb.WriteString(" p=[")
				for i, p := range n.Distribution {
					if i > 0 {
						sb.WriteString(" ")
					}
					fmt.Fprintf(&sb, "%s:%.4f", t.alphabet.Symbol(i), p)
				}
				sb.WriteString("]")
			}
		}
		sb.WriteString("\n")
		_, err := io.WriteString(w, sb.String())

		return err
	})
}
