// SPDX-License-Identifier: MIT

// Package tree is the data model of a parsimonious context tree (PCT).
//
// Nodes live in an arena addressed by NodeID; each node keeps its parent id
// and its ordered child ids, so every walk over the tree is iterative and
// stack depth never grows with the tree. The root carries the empty label;
// the children of every internal node carry labels that partition the
// alphabet, and every leaf sits at the tree depth and owns the response
// distribution of the contexts it stands for.
//
// A node at distance l from the root routes a context on explanatory index
// depth−1−l: the symbol nearest to the response is tested first.
//
// Trees are assembled with a Builder, which checks those invariants in
// Build, and are immutable afterwards; every accessor returns copies.
package tree
