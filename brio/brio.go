package brio

import (
	"math"

	"github.com/vicentehelano/delaunay/geometry"
)

// Brio reorders point sets into a biased randomized insertion order
// driven by per-round kD-trees.
type Brio struct {
	opts   Options
	rounds [][2]int
}

// New constructs a reorderer with the given options.
func New(opts ...Option) *Brio {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Brio{opts: o}
}

// Rounds returns the [left,right) index ranges of the rounds computed
// by the latest Reorder call.
func (b *Brio) Rounds() [][2]int {
	return b.rounds
}

// Reorder returns a permutation of the input points: rounds whose sizes
// roughly double from one round to the next (each later round draws a
// binomial half of what remains), each round swept in kD-tree order. The
// input slice is not modified. When every input ID is zero, sequential
// identities are assigned to the copy first, so callers can trace
// points across the permutation.
func (b *Brio) Reorder(points []geometry.Point) []geometry.Point {
	out := make([]geometry.Point, len(points))
	copy(out, points)

	if allUnidentified(out) {
		for i := range out {
			out[i].ID = i
		}
	}

	if len(out) < 2 {
		return out
	}

	b.createRounds(len(out))
	b.opts.Logger.Debug().Int("rounds", len(b.rounds)).Msg("brio: rounds ready")

	for _, r := range b.rounds {
		if r[1]-r[0] < 2 {
			continue
		}
		tree := newKdTree(b.opts.Rand)
		block := tree.sort(out[r[0]:r[1]])
		copy(out[r[0]:r[1]], block)
	}
	b.opts.Logger.Debug().Int("points", len(out)).Msg("brio: reorder done")

	return out
}

// createRounds splits n points into ⌊log2 n⌋ rounds. Working backwards
// from the last round, each receives a Binomial(remaining, 1/2) share;
// round 0 takes what is left.
func (b *Brio) createRounds(n int) {
	r := int(math.Floor(math.Log2(float64(n))))
	if r < 1 {
		r = 1
	}

	sizes := make([]int, r)
	remaining := n
	for i := r - 1; i >= 1; i-- {
		k := b.binomial(remaining)
		sizes[i] = k
		remaining -= k
	}
	sizes[0] = remaining

	b.rounds = make([][2]int, r)
	left := 0
	for i, size := range sizes {
		b.rounds[i] = [2]int{left, left + size}
		left += size
	}
}

// binomial draws from Binomial(n, 1/2) as n fair coin flips.
func (b *Brio) binomial(n int) int {
	k := 0
	for i := 0; i < n; i++ {
		if b.opts.Rand.Uint64()&1 == 1 {
			k++
		}
	}

	return k
}

// allUnidentified reports whether no point carries an external identity.
func allUnidentified(points []geometry.Point) bool {
	for _, p := range points {
		if p.ID != 0 {
			return false
		}
	}

	return true
}

// SquaredWalkLength sums the squared distances between consecutive
// points, the locality statistic of an insertion order: the lower, the
// closer consecutive insertions are.
func SquaredWalkLength(points []geometry.Point) float64 {
	total := 0.0
	for i := 0; i+1 < len(points); i++ {
		dx := points[i+1].X - points[i].X
		dy := points[i+1].Y - points[i].Y
		total += dx*dx + dy*dy
	}

	return total
}
