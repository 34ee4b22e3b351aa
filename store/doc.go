// SPDX-License-Identifier: MIT

// Package store persists learned context trees under string keys.
//
// Two implementations share the Store interface: Memory keeps trees in a
// map, Badger keeps their JSON encoding in a BadgerDB database (on disk or
// in memory). Both are safe for concurrent use.
package store
