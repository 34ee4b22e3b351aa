// SPDX-License-Identifier: MIT

// Package dataset holds the labeled categorical observations a context tree
// is learned from.
//
// A Row is d explanatory symbols followed by one response symbol; a Dataset
// is a non-empty ordered list of rows sharing the same explanatory length d,
// which is also the depth of the learned tree.
//
// Besides the in-memory types the package offers the loaders and writers the
// CLI uses (CSV records, raw symbol sequences cut into sliding windows) and a
// seeded synthetic generator for tests and benchmarks.
package dataset
