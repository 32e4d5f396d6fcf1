package brio

import (
	"github.com/golang/geo/r2"
	"golang.org/x/exp/rand"

	"github.com/vicentehelano/delaunay/geometry"
)

// Split axes.
const (
	xAxis = 0
	yAxis = 1
)

// node is one kD-tree node. Points live in internal and leaf nodes
// alike (the design of Liu et al.); each node keeps the sub-box it was
// built from.
type node struct {
	axis  int
	point geometry.Point
	child [2]*node
	bbox  r2.Rect
}

// leaf reports whether the node has no children.
func (n *node) leaf() bool {
	return n.child[0] == nil && n.child[1] == nil
}

// kdTree builds a 2D kD-tree over a block of points and emits them in
// alternating in-order.
type kdTree struct {
	points []geometry.Point
	root   *node
	rng    *rand.Rand
}

// newKdTree returns a tree using the given random source for pivot
// selection.
func newKdTree(rng *rand.Rand) *kdTree {
	return &kdTree{rng: rng}
}

// sort builds the tree over the block (reordering it in place during
// median selection) and returns the points in alternating in-order.
func (t *kdTree) sort(points []geometry.Point) []geometry.Point {
	t.points = points

	box := geometry.NewBoundingBox()
	box.Fit(points)

	t.root = t.build(0, len(points), box.Rect())

	return t.alternating(t.root)
}

// build recursively constructs the subtree over points[begin:end)
// inside box: the median along the longest axis becomes the node point,
// and the box splits at its coordinate.
func (t *kdTree) build(begin, end int, box r2.Rect) *node {
	n := end - begin
	if n == 1 {
		return &node{axis: -1, point: t.points[begin], bbox: box}
	}

	axis := longestAxis(box)
	k := (n + n%2) / 2
	median := t.selectMedian(k, axis, begin, end-1)

	left, right := box, box
	if axis == xAxis {
		split := t.points[median].X
		left.X.Hi = split
		right.X.Lo = split
	} else {
		split := t.points[median].Y
		left.Y.Hi = split
		right.Y.Lo = split
	}

	nd := &node{axis: axis, point: t.points[median], bbox: box}
	if begin < median {
		nd.child[0] = t.build(begin, median, left)
	}
	if median+1 < end {
		nd.child[1] = t.build(median+1, end, right)
	}

	return nd
}

// longestAxis picks the split axis of a box.
func longestAxis(box r2.Rect) int {
	if box.X.Length() > box.Y.Length() {
		return xAxis
	}

	return yAxis
}

// selectMedian runs randomized quickselect for the i-th smallest point
// (1-based) by the given axis within points[left:right+1]. Expected
// linear time.
func (t *kdTree) selectMedian(i, axis, left, right int) int {
	if left == right {
		return left
	}

	pivot := t.partition(axis, left, right)

	k := pivot - left // size of the left side
	switch {
	case i < k+1:
		return t.selectMedian(i, axis, left, pivot-1)
	case i > k+1:
		return t.selectMedian(i-k-1, axis, pivot+1, right)
	default:
		return pivot
	}
}

// partition is a Lomuto partition around a uniformly chosen pivot; it
// returns the pivot's final position.
func (t *kdTree) partition(axis, left, right int) int {
	index := left + t.rng.Intn(right-left+1)
	pivot := coord(t.points[index], axis)
	t.points[index], t.points[right] = t.points[right], t.points[index]

	i := left - 1
	for j := left; j < right; j++ {
		if coord(t.points[j], axis) <= pivot {
			i++
			t.points[i], t.points[j] = t.points[j], t.points[i]
		}
	}
	t.points[i+1], t.points[right] = t.points[right], t.points[i+1]

	return i + 1
}

// coord projects a point onto an axis.
func coord(p geometry.Point, axis int) float64 {
	if axis == xAxis {
		return p.X
	}

	return p.Y
}

// alternating emits the subtree in alternating in-order: one child
// normally, the node, then the other child reversed. The recursion
// flips direction at every level, producing the space-filling sweep.
func (t *kdTree) alternating(n *node) []geometry.Point {
	if n == nil {
		return nil
	}

	out := t.alternating(n.child[0])
	out = append(out, n.point)
	aux := t.alternating(n.child[1])
	for i := len(aux) - 1; i >= 0; i-- {
		out = append(out, aux[i])
	}

	return out
}
