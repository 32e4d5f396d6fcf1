package delaunay_test

import (
	"fmt"

	"github.com/vicentehelano/delaunay/delaunay"
	"github.com/vicentehelano/delaunay/geometry"
	"github.com/vicentehelano/delaunay/links"
)

// ExampleTriangulation_Insert triangulates the classic nine-point
// Blandford example on the link-vertex structure.
func ExampleTriangulation_Insert() {
	points := []geometry.Point{
		geometry.NewPoint(0, 1), geometry.NewPoint(3, 0), geometry.NewPoint(6, 1),
		geometry.NewPoint(9, 0), geometry.NewPoint(9, 2), geometry.NewPoint(6, 3),
		geometry.NewPoint(3, 2), geometry.NewPoint(3, 4), geometry.NewPoint(9, 4),
	}

	t := delaunay.New(links.New())
	if err := t.Insert(points); err != nil {
		fmt.Println("insert failed:", err)
		return
	}

	fmt.Println("vertices:", t.NumberOfVertices())
	fmt.Println("finite faces:", len(t.FiniteFaces()))
	fmt.Println("hull size:", len(t.ConvexHull()))
	// Output:
	// vertices: 10
	// finite faces: 10
	// hull size: 6
}
