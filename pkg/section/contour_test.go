package section

import (
	"math"
	"testing"

	"github.com/gosect/gosect/pkg/geometry"
)

func squareEdges() []CutEdge {
	v := func(x, y float64) geometry.Vector3 { return geometry.NewVector3(x, y, 0) }
	// Deliberately unordered and with mixed edge directions
	return []CutEdge{
		{V1: v(1, 1), V2: v(0, 1)},
		{V1: v(0, 0), V2: v(1, 0)},
		{V1: v(0, 1), V2: v(0, 0)},
		{V1: v(1, 0), V2: v(1, 1)},
	}
}

func TestContoursClosedLoop(t *testing.T) {
	contours := Contours(squareEdges(), 1e-6)

	if len(contours) != 1 {
		t.Fatalf("expected 1 contour, got %d", len(contours))
	}
	if len(contours[0]) != 4 {
		t.Errorf("expected 4 vertices, got %d", len(contours[0]))
	}
}

func TestContoursTwoLoops(t *testing.T) {
	edges := squareEdges()
	v := func(x, y float64) geometry.Vector3 { return geometry.NewVector3(x, y, 5) }
	edges = append(edges,
		CutEdge{V1: v(10, 10), V2: v(11, 10)},
		CutEdge{V1: v(11, 10), V2: v(11, 11)},
		CutEdge{V1: v(11, 11), V2: v(10, 10)},
	)

	contours := Contours(edges, 1e-6)
	if len(contours) != 2 {
		t.Fatalf("expected 2 contours, got %d", len(contours))
	}
}

func TestContoursEmpty(t *testing.T) {
	if contours := Contours(nil, 1e-6); contours != nil {
		t.Errorf("expected nil, got %v", contours)
	}
}

func TestContoursTwoPlaneCorner(t *testing.T) {
	model := cubeModel()
	// Keep the corner x >= 0.5, y >= 0.5
	planes := []Plane{
		{Normal: geometry.NewVector3(1, 0, 0), Offset: -0.5},
		{Normal: geometry.NewVector3(0, 1, 0), Offset: -0.5},
	}

	_, cuts := ClipModel(model, planes)
	byPlane := GroupByPlane(cuts)

	for planeIdx, plane := range planes {
		edges := byPlane[planeIdx]
		if len(edges) == 0 {
			t.Fatalf("plane %d produced no cut edges", planeIdx)
		}
		for _, edge := range edges {
			for _, v := range []geometry.Vector3{edge.V1, edge.V2} {
				if math.Abs(plane.SignedDistance(v)) > 1e-9 {
					t.Errorf("plane %d edge vertex off plane: %v", planeIdx, v)
				}
			}
		}
		// Each cap boundary must chain into a single contour even where
		// the other plane trimmed its cut edges
		contours := Contours(edges, 1e-6)
		if len(contours) != 1 {
			t.Fatalf("plane %d: expected 1 contour, got %d", planeIdx, len(contours))
		}
	}

	// The x=0.5 contour runs down to the plane intersection line at
	// y=0.5; the trimmed corner vertices must be part of the chain
	contour := Contours(byPlane[0], 1e-6)[0]
	for _, want := range []geometry.Vector3{
		geometry.NewVector3(0.5, 0.5, 0),
		geometry.NewVector3(0.5, 0.5, 1),
	} {
		found := false
		for _, v := range contour {
			if v.Distance(want) < 1e-9 {
				found = true
			}
		}
		if !found {
			t.Errorf("contour missing trimmed corner %v: %v", want, contour)
		}
	}
}

func TestGroupByPlane(t *testing.T) {
	edges := []CutEdge{
		{PlaneIndex: 0},
		{PlaneIndex: 2},
		{PlaneIndex: 0},
	}

	byPlane := GroupByPlane(edges)
	if len(byPlane[0]) != 2 {
		t.Errorf("expected 2 edges on plane 0, got %d", len(byPlane[0]))
	}
	if len(byPlane[2]) != 1 {
		t.Errorf("expected 1 edge on plane 2, got %d", len(byPlane[2]))
	}
}

func polygonArea(triangles [][3]geometry.Vector3) float64 {
	total := 0.0
	for _, tri := range triangles {
		e1 := tri[1].Sub(tri[0])
		e2 := tri[2].Sub(tri[0])
		total += e1.Cross(e2).Length() / 2
	}
	return total
}

func TestTriangulateSquare(t *testing.T) {
	v := func(x, y float64) geometry.Vector3 { return geometry.NewVector3(x, y, 0) }
	square := []geometry.Vector3{v(0, 0), v(2, 0), v(2, 2), v(0, 2)}

	triangles := Triangulate(square)
	if len(triangles) != 2 {
		t.Fatalf("expected 2 triangles, got %d", len(triangles))
	}
	if area := polygonArea(triangles); math.Abs(area-4) > 1e-9 {
		t.Errorf("expected area 4, got %v", area)
	}
}

func TestTriangulateConcave(t *testing.T) {
	v := func(x, y float64) geometry.Vector3 { return geometry.NewVector3(x, y, 0) }
	// L-shape, area 3
	poly := []geometry.Vector3{
		v(0, 0), v(2, 0), v(2, 1), v(1, 1), v(1, 2), v(0, 2),
	}

	triangles := Triangulate(poly)
	if len(triangles) != 4 {
		t.Fatalf("expected 4 triangles, got %d", len(triangles))
	}
	if area := polygonArea(triangles); math.Abs(area-3) > 1e-9 {
		t.Errorf("expected area 3, got %v", area)
	}
}

func TestTriangulateOffAxisPlane(t *testing.T) {
	// Square standing in the YZ plane; projection must drop X
	v := func(y, z float64) geometry.Vector3 { return geometry.NewVector3(4, y, z) }
	square := []geometry.Vector3{v(0, 0), v(1, 0), v(1, 1), v(0, 1)}

	triangles := Triangulate(square)
	if len(triangles) != 2 {
		t.Fatalf("expected 2 triangles, got %d", len(triangles))
	}
	if area := polygonArea(triangles); math.Abs(area-1) > 1e-9 {
		t.Errorf("expected area 1, got %v", area)
	}
}

func TestTriangulateDegenerate(t *testing.T) {
	v := func(x, y float64) geometry.Vector3 { return geometry.NewVector3(x, y, 0) }

	if tris := Triangulate([]geometry.Vector3{v(0, 0), v(1, 1)}); tris != nil {
		t.Errorf("expected nil for 2 vertices, got %v", tris)
	}
	if tris := Triangulate([]geometry.Vector3{v(0, 0), v(1, 0), v(0, 1)}); len(tris) != 1 {
		t.Errorf("expected 1 triangle for 3 vertices, got %d", len(tris))
	}
}
