package section

import (
	"math"

	"github.com/gosect/gosect/pkg/geometry"
)

// GroupByPlane splits cut edges by the plane index that produced them
func GroupByPlane(edges []CutEdge) map[int][]CutEdge {
	byPlane := make(map[int][]CutEdge)
	for _, edge := range edges {
		byPlane[edge.PlaneIndex] = append(byPlane[edge.PlaneIndex], edge)
	}
	return byPlane
}

// Contours orders unordered cut edges into one or more closed loops.
// Vertices closer than the tolerance are treated as coincident.
func Contours(edges []CutEdge, tolerance float64) [][]geometry.Vector3 {
	if len(edges) == 0 {
		return nil
	}

	tol2 := tolerance * tolerance
	equal := func(a, b geometry.Vector3) bool {
		d := a.Sub(b)
		return d.Dot(d) < tol2
	}

	unused := make([]CutEdge, len(edges))
	copy(unused, edges)
	var contours [][]geometry.Vector3

	for len(unused) > 0 {
		current := unused[0]
		unused = unused[1:]
		contour := []geometry.Vector3{current.V1, current.V2}

		// Extend by chaining connected edges until the loop closes
		maxIterations := len(edges) * 2
		for i := 0; i < maxIterations && len(unused) > 0; i++ {
			last := contour[len(contour)-1]
			found := false

			for j, edge := range unused {
				if equal(edge.V1, last) {
					contour = append(contour, edge.V2)
				} else if equal(edge.V2, last) {
					contour = append(contour, edge.V1)
				} else {
					continue
				}
				unused = append(unused[:j], unused[j+1:]...)
				found = true
				break
			}

			if len(contour) >= 3 && equal(contour[0], contour[len(contour)-1]) {
				contour = contour[:len(contour)-1]
				break
			}
			if !found {
				break
			}
		}

		if len(contour) >= 3 {
			contours = append(contours, contour)
		}
	}

	return contours
}

// Triangulate fills a simple polygon using ear clipping, projecting to
// the 2D plane most perpendicular to the polygon normal. Falls back to
// a fan when no ear can be found (degenerate or self-touching input).
func Triangulate(vertices []geometry.Vector3) [][3]geometry.Vector3 {
	if len(vertices) < 3 {
		return nil
	}
	if len(vertices) == 3 {
		return [][3]geometry.Vector3{{vertices[0], vertices[1], vertices[2]}}
	}

	normal := polygonNormal(vertices)
	project := projector(normal)

	indices := make([]int, len(vertices))
	for i := range indices {
		indices[i] = i
	}

	var triangles [][3]geometry.Vector3

	for len(indices) > 3 {
		earFound := false

		for i := 0; i < len(indices); i++ {
			if !isEar(vertices, indices, i, project) {
				continue
			}
			prev := indices[(i-1+len(indices))%len(indices)]
			curr := indices[i]
			next := indices[(i+1)%len(indices)]
			triangles = append(triangles, [3]geometry.Vector3{
				vertices[prev], vertices[curr], vertices[next],
			})
			indices = append(indices[:i], indices[i+1:]...)
			earFound = true
			break
		}

		if !earFound {
			for i := 1; i < len(indices)-1; i++ {
				triangles = append(triangles, [3]geometry.Vector3{
					vertices[indices[0]],
					vertices[indices[i]],
					vertices[indices[i+1]],
				})
			}
			return triangles
		}
	}

	triangles = append(triangles, [3]geometry.Vector3{
		vertices[indices[0]],
		vertices[indices[1]],
		vertices[indices[2]],
	})

	return triangles
}

// polygonNormal estimates the polygon normal from its first corner
func polygonNormal(vertices []geometry.Vector3) geometry.Vector3 {
	e1 := vertices[1].Sub(vertices[0])
	e2 := vertices[2].Sub(vertices[0])
	return e1.Cross(e2)
}

// projector returns a 2D projection dropping the dominant normal axis
func projector(normal geometry.Vector3) func(geometry.Vector3) (float64, float64) {
	ax := math.Abs(normal.X)
	ay := math.Abs(normal.Y)
	az := math.Abs(normal.Z)

	switch {
	case ax >= ay && ax >= az:
		return func(v geometry.Vector3) (float64, float64) { return v.Y, v.Z }
	case ay >= ax && ay >= az:
		return func(v geometry.Vector3) (float64, float64) { return v.X, v.Z }
	default:
		return func(v geometry.Vector3) (float64, float64) { return v.X, v.Y }
	}
}

func isEar(vertices []geometry.Vector3, indices []int, earIndex int, project func(geometry.Vector3) (float64, float64)) bool {
	n := len(indices)
	prev := indices[(earIndex-1+n)%n]
	curr := indices[earIndex]
	next := indices[(earIndex+1)%n]

	ax, ay := project(vertices[prev])
	bx, by := project(vertices[curr])
	cx, cy := project(vertices[next])

	// Convex corner check
	cross := (bx-ax)*(cy-ay) - (by-ay)*(cx-ax)
	if cross <= 0 {
		return false
	}

	// No other vertex may lie inside the candidate ear
	for i := 0; i < n; i++ {
		idx := indices[i]
		if idx == prev || idx == curr || idx == next {
			continue
		}
		px, py := project(vertices[idx])
		if pointInTriangle2D(px, py, ax, ay, bx, by, cx, cy) {
			return false
		}
	}

	return true
}

func pointInTriangle2D(px, py, ax, ay, bx, by, cx, cy float64) bool {
	sign := func(p1x, p1y, p2x, p2y, p3x, p3y float64) float64 {
		return (p1x-p3x)*(p2y-p3y) - (p2x-p3x)*(p1y-p3y)
	}

	d1 := sign(px, py, ax, ay, bx, by)
	d2 := sign(px, py, bx, by, cx, cy)
	d3 := sign(px, py, cx, cy, ax, ay)

	hasNeg := (d1 < 0) || (d2 < 0) || (d3 < 0)
	hasPos := (d1 > 0) || (d2 > 0) || (d3 > 0)

	return !(hasNeg && hasPos)
}
