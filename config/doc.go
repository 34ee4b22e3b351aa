// SPDX-License-Identifier: MIT

// Package config loads the settings of the pct command: a YAML file on top
// of Default, then PCT_* environment overrides, then validation.
//
//	algorithm: optimal        # optimal | greedy | random | independence
//	optimal_limit: 8          # larger alphabets fall back to greedy
//	samples: 32
//	seed: 1
//	max_nodes: 16777216
//	max_partitions: 8388608
//	workers: 4
//	log:
//	  level: info             # debug | info | warn | error
//	  format: text            # text | json
//	store:
//	  path: ""                # empty keeps trees out of BadgerDB
//	  sync_writes: false
package config
