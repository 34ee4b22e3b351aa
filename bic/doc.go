// SPDX-License-Identifier: MIT

// Package bic scores the rows reaching a context-tree node with the Bayesian
// Information Criterion:
//
//	score = −k + Σ_s c(s)·ln(c(s)/T),   k = ½·(|Σ|−1)·ln N
//
// where c(s) counts the rows whose response is s, T = Σ c(s) is the number of
// rows at the node, |Σ| the alphabet size and N the size of the whole
// training dataset. k is fixed for a learn call and is therefore computed
// once, in NewScorer.
//
// Counts are plain []int slices indexed by alphabet position.
package bic
