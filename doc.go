// SPDX-License-Identifier: MIT

// Package pctree learns parsimonious context trees (PCTs): variable-order
// models that predict a categorical response from the symbols preceding it,
// merging contexts whose continuations look alike.
//
// 🚀 What is in the box?
//
//	• alphabet/  : ordered symbol sets and their 64-bit subset labels
//	• dataset/   : rows of explanatory symbols + response; CSV, sequences, generator
//	• partition/ : set partitions as restricted growth strings, Stirling & Bell counts
//	• bic/       : the BIC score of a node and its response distribution
//	• tree/      : the immutable PCT: builder, dump, prediction, JSON codec
//	• learn/     : optimal learner plus greedy, random-sampling and independence variants
//	• store/     : tree persistence in memory or in BadgerDB
//	• config/    : YAML configuration with PCT_* environment overrides
//	• metrics/   : Prometheus instruments for learn calls
//	• cmd/pct    : the command line
//
// ✨ How does learning work?
//
// The children of a node at depth l test the explanatory symbol at distance
// l+1 from the response and carry labels that partition the alphabet. The
// learner scores every candidate child (every non-empty subset of the
// alphabet, recursively) bottom-up and keeps, per node, the partition with
// the highest summed BIC score
//
//	score(leaf) = Σ c·ln(c/T) − ½·(|Σ|−1)·ln N
//
// so the result is the best PCT for the data among all trees of that depth.
//
// ⚙️ Quick start:
//
//	a, _ := alphabet.New("A", "C", "G", "T")
//	d, _ := dataset.ReadCSV(f, ',')
//	t, err := learn.Learn(a, d)
//	fmt.Print(t)
//
//	$ pct generate -n 500 -d 2 -o data.csv
//	$ pct learn -i data.csv --scores
package pctree
