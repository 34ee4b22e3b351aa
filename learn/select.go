// SPDX-License-Identifier: MIT

package learn

import (
	"math/rand"

	"github.com/coderodde/pctree/alphabet"
	"github.com/coderodde/pctree/partition"
)

// selector picks the grouping of one extended node's children.
//
// scores[L−1] and weights[L−1] describe the child with label L. choose
// returns the chosen blocks, their summed score and the number of candidate
// groupings it scored.
type selector interface {
	choose(scores []float64, weights []int) (partition.Partition, float64, int)
}

func sumScores(p partition.Partition, scores []float64) float64 {
	s := 0.0
	for _, l := range p {
		s += scores[l-1]
	}

	return s
}

// optimalSelector scans every partition and keeps the first maximal one.
type optimalSelector struct {
	parts []partition.Partition
}

func (o optimalSelector) choose(scores []float64, _ []int) (partition.Partition, float64, int) {
	best := 0
	bestScore := sumScores(o.parts[0], scores)
	for i := 1; i < len(o.parts); i++ {
		if s := sumScores(o.parts[i], scores); s > bestScore {
			best, bestScore = i, s
		}
	}

	return o.parts[best], bestScore, len(o.parts)
}

// greedySelector starts from singletons and repeatedly merges the pair with
// the largest score change, as long as that change is not negative. Blocks
// stay ordered by their smallest symbol.
type greedySelector struct {
	n int
}

func (g greedySelector) choose(scores []float64, _ []int) (partition.Partition, float64, int) {
	blocks := make(partition.Partition, g.n)
	for i := range blocks {
		blocks[i] = alphabet.Label(1) << uint(i)
	}
	evaluated := 0
	for len(blocks) > 1 {
		bi, bj := -1, -1
		bestDelta := 0.0
		for i := 0; i < len(blocks); i++ {
			for j := i + 1; j < len(blocks); j++ {
				evaluated++
				merged := blocks[i] | blocks[j]
				delta := scores[merged-1] - scores[blocks[i]-1] - scores[blocks[j]-1]
				if delta >= bestDelta && (bi < 0 || delta > bestDelta) {
					bi, bj, bestDelta = i, j, delta
				}
			}
		}
		if bi < 0 {
			break
		}
		blocks[bi] |= blocks[bj]
		blocks = append(blocks[:bj], blocks[bj+1:]...)
	}

	return blocks, sumScores(blocks, scores), evaluated
}

// randomSelector scores the single block and a number of random
// restricted growth strings. Blocks whose child receives no rows are folded
// into the first block so a sample never selects an empty leaf.
type randomSelector struct {
	n       int
	samples int
	rng     *rand.Rand
	codes   []int
}

func newRandomSelector(n, samples int, seed int64) *randomSelector {
	return &randomSelector{
		n:       n,
		samples: samples,
		rng:     rand.New(rand.NewSource(seed)),
		codes:   make([]int, n),
	}
}

func (r *randomSelector) choose(scores []float64, weights []int) (partition.Partition, float64, int) {
	full := alphabet.Label(1)<<uint(r.n) - 1
	best := partition.Partition{full}
	bestScore := scores[full-1]
	for k := 0; k < r.samples; k++ {
		p := r.sample(weights)
		if s := sumScores(p, scores); s > bestScore {
			best, bestScore = p, s
		}
	}

	return best, bestScore, r.samples + 1
}

// sample draws s[0] = 0, s[i] ∈ [0, max(s[0..i−1])+1], which is a valid
// restricted growth string though not a uniform one.
func (r *randomSelector) sample(weights []int) partition.Partition {
	top := 0
	for i := 1; i < r.n; i++ {
		r.codes[i] = r.rng.Intn(top + 2)
		top = max(top, r.codes[i])
	}
	p := make(partition.Partition, top+1)
	for i, c := range r.codes {
		p[c] |= alphabet.Label(1) << uint(i)
	}

	out := p[:1]
	for _, l := range p[1:] {
		if weights[l-1] == 0 {
			out[0] |= l
			continue
		}
		out = append(out, l)
	}
	if len(out) > 1 && weights[out[0]-1] == 0 {
		out[1] |= out[0]
		out = out[1:]
	}

	return out
}

// independenceSelector always keeps the full alphabet as one block.
type independenceSelector struct {
	full alphabet.Label
}

func (s independenceSelector) choose(scores []float64, _ []int) (partition.Partition, float64, int) {
	return partition.Partition{s.full}, scores[s.full-1], 1
}
