package section

import (
	"github.com/gosect/gosect/pkg/geometry"
	"github.com/gosect/gosect/pkg/stl"
)

// ClippedTriangle is a triangle that may have been produced by clipping.
// Each edge remembers which section plane it lies on (-1 for none), so
// that a cut edge trimmed by a later plane keeps its original plane.
type ClippedTriangle struct {
	Vertices  [3]geometry.Vector3
	CutEdges  [3]bool
	Normal    geometry.Vector3
	edgePlane [3]int
}

// CutEdge is an edge lying on a section plane
type CutEdge struct {
	V1, V2     geometry.Vector3
	PlaneIndex int
}

func newUnclipped(tri geometry.Triangle) ClippedTriangle {
	return ClippedTriangle{
		Vertices:  [3]geometry.Vector3{tri.V1, tri.V2, tri.V3},
		Normal:    tri.CalculateNormal(),
		edgePlane: [3]int{-1, -1, -1},
	}
}

func newClipped(vertices [3]geometry.Vector3, normal geometry.Vector3, edgePlane [3]int) ClippedTriangle {
	return ClippedTriangle{
		Vertices:  vertices,
		CutEdges:  [3]bool{edgePlane[0] >= 0, edgePlane[1] >= 0, edgePlane[2] >= 0},
		Normal:    normal,
		edgePlane: edgePlane,
	}
}

// ClipTriangle clips a triangle against a single plane, keeping the
// positive side. The edge created on the plane is tagged with
// planeIndex; kept subsegments of earlier cut edges inherit their tag.
// Edge i connects vertex i to vertex (i+1)%3.
func ClipTriangle(tri ClippedTriangle, plane Plane, planeIndex int) []ClippedTriangle {
	var dist [3]float64
	var inside [3]bool
	insideCount := 0
	for i := 0; i < 3; i++ {
		dist[i] = plane.SignedDistance(tri.Vertices[i])
		inside[i] = dist[i] >= 0
		if inside[i] {
			insideCount++
		}
	}

	switch insideCount {
	case 3:
		return []ClippedTriangle{tri}
	case 0:
		return nil
	}

	// Intersection parameter along the edge from vertex a to vertex b
	cut := func(a, b int) geometry.Vector3 {
		t := dist[a] / (dist[a] - dist[b])
		return tri.Vertices[a].Lerp(tri.Vertices[b], t)
	}

	if insideCount == 1 {
		var in int
		for i := 0; i < 3; i++ {
			if inside[i] {
				in = i
				break
			}
		}
		next := (in + 1) % 3
		prev := (in + 2) % 3

		newV1 := cut(in, next)
		newV2 := cut(in, prev)

		return []ClippedTriangle{newClipped(
			[3]geometry.Vector3{tri.Vertices[in], newV1, newV2},
			tri.Normal,
			[3]int{tri.edgePlane[in], planeIndex, tri.edgePlane[prev]},
		)}
	}

	// Two vertices inside: the kept quad is split into two triangles.
	// The diagonal is interior, never a cut edge.
	var out int
	for i := 0; i < 3; i++ {
		if !inside[i] {
			out = i
			break
		}
	}
	next := (out + 1) % 3
	prev := (out + 2) % 3

	newV1 := cut(out, next)
	newV2 := cut(out, prev)

	tri1 := newClipped(
		[3]geometry.Vector3{tri.Vertices[next], tri.Vertices[prev], newV1},
		tri.Normal,
		[3]int{tri.edgePlane[next], -1, tri.edgePlane[out]},
	)
	tri2 := newClipped(
		[3]geometry.Vector3{tri.Vertices[prev], newV2, newV1},
		tri.Normal,
		[3]int{tri.edgePlane[prev], planeIndex, -1},
	)

	return []ClippedTriangle{tri1, tri2}
}

// ClipModel clips every triangle of a model against all planes in order
// and collects the cut edges generated on each plane.
func ClipModel(model *stl.Model, planes []Plane) ([]ClippedTriangle, []CutEdge) {
	var kept []ClippedTriangle
	var cuts []CutEdge

	for _, tri := range model.Triangles {
		triangles := []ClippedTriangle{newUnclipped(tri)}

		for planeIdx, plane := range planes {
			var next []ClippedTriangle
			for _, t := range triangles {
				next = append(next, ClipTriangle(t, plane, planeIdx)...)
			}
			triangles = next
		}

		for _, clipped := range triangles {
			for i, planeIdx := range clipped.edgePlane {
				if planeIdx < 0 {
					continue
				}
				v1 := clipped.Vertices[i]
				v2 := clipped.Vertices[(i+1)%3]
				// A cut edge trimmed at exactly another plane collapses
				// to a point
				if v1 == v2 {
					continue
				}
				cuts = append(cuts, CutEdge{V1: v1, V2: v2, PlaneIndex: planeIdx})
			}
		}

		kept = append(kept, triangles...)
	}

	return kept, cuts
}
