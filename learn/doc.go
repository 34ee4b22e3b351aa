// SPDX-License-Identifier: MIT

// Package learn finds the parsimonious context tree (PCT) that maximizes
// the BIC score of a dataset.
//
// What
//
//   - Build the extended tree: the root and, below every node, one child
//     per non-empty subset of the alphabet, down to the dataset depth.
//     Every row reaching a node goes to each child whose label holds the
//     row's explanatory symbol at index remaining−1.
//   - Score leaves from their response counts: −k + Σ c·ln(c/T) with
//     k = ½·(|Σ|−1)·ln N.
//   - Resolve internal nodes bottom-up. A node's score is the best sum of
//     child scores over the groupings its selector considers; the chosen
//     children survive, everything else is discarded.
//   - Copy the surviving nodes into a tree.Tree and attach the response
//     distribution of every leaf.
//
// Algorithms
//
//	Optimal         every partition of the alphabet (Bell(n) per node)
//	Greedy          agglomerative merging from singletons
//	RandomSampling  the single block plus Samples random partitions
//	Independence    the single block only (marginal response model)
//
// Only Optimal guarantees the maximum; the others trade it for speed and
// never beat it.
//
// Determinism
//
//	Partitions are scanned in a fixed order (block count ascending, then
//	generator order) and the first maximum wins, so identical inputs always
//	give an identical tree. RandomSampling restarts from its seed on every
//	call.
//
// Concurrency
//
//	A Learner is immutable after New. Each Learn call keeps its state in a
//	private run value, so concurrent calls over shared alphabets and
//	datasets are safe. Hooks may then run concurrently too.
//
// Usage
//
//	t, err := learn.Learn(a, d)
//
//	l, err := learn.New(
//	    learn.WithAlgorithm(learn.Greedy),
//	    learn.WithMaxNodes(1<<20),
//	    learn.WithLogger(logger),
//	)
//	t, err = l.Learn(a, d)
package learn
