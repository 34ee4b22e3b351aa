// SPDX-License-Identifier: MIT

package tree

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/coderodde/pctree/alphabet"
)

// ErrDecode is returned for JSON documents that do not describe a tree.
var ErrDecode = errors.New("tree: malformed tree document")

type wireTree struct {
	Alphabet []string   `json:"alphabet"`
	Depth    int        `json:"depth"`
	Nodes    []wireNode `json:"nodes"`
}

type wireNode struct {
	ID           int                `json:"id"`
	Parent       int                `json:"parent"`
	Label        []string           `json:"label"`
	Score        float64            `json:"score"`
	Weight       int                `json:"weight"`
	Distribution map[string]float64 `json:"distribution,omitempty"`
}

// MarshalJSON encodes the tree as its alphabet, depth and the node arena.
// Labels are symbol lists and distributions symbol-keyed maps.
func (t *Tree) MarshalJSON() ([]byte, error) {
	w := wireTree{
		Alphabet: t.alphabet.Symbols(),
		Depth:    t.depth,
		Nodes:    make([]wireNode, len(t.nodes)),
	}
	for i := range t.nodes {
		n := &t.nodes[i]
		wn := wireNode{
			ID:     int(n.ID),
			Parent: int(n.Parent),
			Label:  t.alphabet.SymbolsOf(n.Label),
			Score:  n.Score,
			Weight: n.Weight,
		}
		if n.Distribution != nil {
			wn.Distribution = make(map[string]float64, len(n.Distribution))
			for j, p := range n.Distribution {
				wn.Distribution[t.alphabet.Symbol(j)] = p
			}
		}
		w.Nodes[i] = wn
	}

	return json.Marshal(w)
}

// UnmarshalJSON rebuilds a tree through a Builder, so a decoded tree meets
// the same invariants as a learned one. Nodes must be listed in arena order,
// every parent before its children.
func (t *Tree) UnmarshalJSON(data []byte) error {
	var w wireTree
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	a, err := alphabet.New(w.Alphabet...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	b, err := NewBuilder(a, w.Depth)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if len(w.Nodes) == 0 {
		return fmt.Errorf("%w: no nodes", ErrDecode)
	}

	for i, wn := range w.Nodes {
		if wn.ID != i {
			return fmt.Errorf("%w: node %d listed at position %d", ErrDecode, wn.ID, i)
		}
		var id NodeID
		if i == 0 {
			if wn.Parent != int(NoParent) || len(wn.Label) != 0 {
				return fmt.Errorf("%w: first node is not a root", ErrDecode)
			}
			id, err = b.AddRoot(wn.Score, wn.Weight)
		} else {
			if wn.Parent < 0 || wn.Parent >= i {
				return fmt.Errorf("%w: node %d has parent %d", ErrDecode, i, wn.Parent)
			}
			var l alphabet.Label
			if l, err = a.LabelOf(wn.Label...); err != nil {
				return fmt.Errorf("%w: node %d: %w", ErrDecode, i, err)
			}
			id, err = b.AddChild(NodeID(wn.Parent), l, wn.Score, wn.Weight)
		}
		if err != nil {
			return fmt.Errorf("%w: node %d: %w", ErrDecode, i, err)
		}
		if wn.Distribution == nil {
			continue
		}
		p := make([]float64, a.Size())
		for s, v := range wn.Distribution {
			j, ok := a.Index(s)
			if !ok {
				return fmt.Errorf("%w: node %d: %w: %q", ErrDecode, i, alphabet.ErrUnknownSymbol, s)
			}
			p[j] = v
		}
		if err = b.SetDistribution(id, p); err != nil {
			return fmt.Errorf("%w: node %d: %w", ErrDecode, i, err)
		}
	}

	built, err := b.Build()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	*t = *built

	return nil
}
