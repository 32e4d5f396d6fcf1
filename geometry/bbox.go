package geometry

import "github.com/golang/geo/r2"

// BoundingBox is a 2D axis-aligned bounding box backed by an r2.Rect.
// The zero value is not ready for use; construct with NewBoundingBox.
type BoundingBox struct {
	rect r2.Rect
}

// NewBoundingBox returns an empty bounding box containing no points.
func NewBoundingBox() BoundingBox {
	return BoundingBox{rect: r2.EmptyRect()}
}

// Fit shrinks or grows the box to tightly enclose the given points.
func (b *BoundingBox) Fit(points []Point) {
	b.rect = r2.EmptyRect()
	b.Expand(points)
}

// Expand grows the box so it also encloses the given points.
func (b *BoundingBox) Expand(points []Point) {
	for _, p := range points {
		b.rect = b.rect.AddPoint(p.R2())
	}
}

// Scale resizes the box about its center by the given factor.
func (b *BoundingBox) Scale(scale float64) {
	if b.rect.IsEmpty() {
		return
	}
	size := b.rect.Size().Mul(scale)
	b.rect = r2.RectFromCenterSize(b.rect.Center(), size)
}

// IsEmpty reports whether the box contains no points.
func (b BoundingBox) IsEmpty() bool {
	return b.rect.IsEmpty()
}

// Min returns the lower-left corner.
func (b BoundingBox) Min() Point {
	lo := b.rect.Lo()

	return Point{X: lo.X, Y: lo.Y}
}

// Max returns the upper-right corner.
func (b BoundingBox) Max() Point {
	hi := b.rect.Hi()

	return Point{X: hi.X, Y: hi.Y}
}

// Rect exposes the underlying r2 rectangle.
func (b BoundingBox) Rect() r2.Rect {
	return b.rect
}
