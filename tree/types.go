// SPDX-License-Identifier: MIT

package tree

import (
	"errors"
	"slices"

	"github.com/coderodde/pctree/alphabet"
)

var (
	// ErrNilAlphabet is returned when a builder gets no alphabet.
	ErrNilAlphabet = errors.New("tree: alphabet is nil")

	// ErrBadDepth is returned for negative depths and for nodes that would
	// sit below the tree depth.
	ErrBadDepth = errors.New("tree: invalid depth")

	// ErrUnknownNode is returned for ids outside the arena.
	ErrUnknownNode = errors.New("tree: unknown node")

	// ErrRootExists is returned when a second root is added.
	ErrRootExists = errors.New("tree: root already added")

	// ErrNoRoot is returned when children are added, or a tree is built,
	// before the root exists.
	ErrNoRoot = errors.New("tree: no root")

	// ErrBadLabel is returned for empty labels and labels with symbols
	// outside the alphabet.
	ErrBadLabel = errors.New("tree: invalid label")

	// ErrNotPartition is returned when the children of a node do not
	// partition the alphabet.
	ErrNotPartition = errors.New("tree: children labels do not partition the alphabet")

	// ErrDistribution is returned when a distribution is missing at a leaf,
	// present at an internal node, or has the wrong length.
	ErrDistribution = errors.New("tree: invalid distribution")

	// ErrContextLength is returned when a context does not have exactly
	// Depth() symbols.
	ErrContextLength = errors.New("tree: context length does not match tree depth")

	// ErrBuilt is returned when a builder is used after Build.
	ErrBuilt = errors.New("tree: builder already built")
)

// NodeID addresses a node inside its tree's arena.
type NodeID int

// NoParent is the parent id of the root.
const NoParent NodeID = -1

// Node is one context of the tree.
type Node struct {
	ID       NodeID
	Parent   NodeID
	Children []NodeID

	// Label is the set of symbols this node matches; empty at the root.
	Label alphabet.Label

	// Depth is the distance from the root.
	Depth int

	// Score is the BIC score of the subtree rooted here.
	Score float64

	// Weight is the number of training rows reaching the node.
	Weight int

	// Distribution holds P(response = symbol i) at leaves; nil elsewhere.
	Distribution []float64
}

// IsLeaf reports whether n has no children.
func (n Node) IsLeaf() bool { return len(n.Children) == 0 }

// IsRoot reports whether n is the root.
func (n Node) IsRoot() bool { return n.Parent == NoParent }

func (n Node) clone() Node {
	n.Children = slices.Clone(n.Children)
	n.Distribution = slices.Clone(n.Distribution)

	return n
}
