package analysis

import (
	"fmt"
	"math"

	"github.com/gosect/gosect/pkg/geometry"
	"github.com/gosect/gosect/pkg/stl"
)

// MeasurementResult contains various measurements of a model
type MeasurementResult struct {
	BoundingBox    geometry.BoundingBox
	Dimensions     geometry.Vector3
	BoxVolume      float64
	EnclosedVolume float64
	SurfaceArea    float64
	TriangleCount  int
	EdgeCount      int
	MinEdgeLength  float64
	MaxEdgeLength  float64
	AvgEdgeLength  float64
	Closed         bool
}

// AnalyzeModel performs comprehensive analysis on a model
func AnalyzeModel(model *stl.Model) *MeasurementResult {
	result := &MeasurementResult{
		BoundingBox:   model.BoundingBox(),
		SurfaceArea:   model.SurfaceArea(),
		TriangleCount: model.TriangleCount(),
	}

	result.Dimensions = result.BoundingBox.Size()
	result.BoxVolume = result.BoundingBox.Volume()
	result.EnclosedVolume = EnclosedVolume(model)
	result.Closed = IsClosedManifold(model)

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0
	edgeCount := 0

	for _, triangle := range model.Triangles {
		for _, length := range triangle.EdgeLengths() {
			totalLength += length
			edgeCount++
			if length < minLength {
				minLength = length
			}
			if length > maxLength {
				maxLength = length
			}
		}
	}

	result.EdgeCount = edgeCount
	if edgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(edgeCount)
	}

	return result
}

// edgeKey builds an order-independent key for an undirected edge.
// Coordinates are rounded so float noise from parsing does not split
// shared edges.
func edgeKey(a, b geometry.Vector3) string {
	k1 := fmt.Sprintf("%.6f,%.6f,%.6f", a.X, a.Y, a.Z)
	k2 := fmt.Sprintf("%.6f,%.6f,%.6f", b.X, b.Y, b.Z)
	if k1 < k2 {
		return k1 + "|" + k2
	}
	return k2 + "|" + k1
}

// IsClosedManifold reports whether every edge of the model is shared by
// exactly two triangles. Open shells, dangling faces, and wireframe-like
// geometry fail this test; such shapes cannot carry a section cap.
func IsClosedManifold(model *stl.Model) bool {
	if model.TriangleCount() == 0 {
		return false
	}

	counts := make(map[string]int)
	for _, tri := range model.Triangles {
		counts[edgeKey(tri.V1, tri.V2)]++
		counts[edgeKey(tri.V2, tri.V3)]++
		counts[edgeKey(tri.V3, tri.V1)]++
	}

	for _, c := range counts {
		if c != 2 {
			return false
		}
	}
	return true
}

// EnclosedVolume computes the volume enclosed by the surface using the
// signed-tetrahedron sum. Only meaningful for closed, consistently-wound
// models; the absolute value is returned.
func EnclosedVolume(model *stl.Model) float64 {
	total := 0.0
	for _, tri := range model.Triangles {
		total += tri.V1.Dot(tri.V2.Cross(tri.V3)) / 6.0
	}
	return math.Abs(total)
}

// AvgVertexSpacing estimates the average distance between connected
// vertices by sampling triangle edges
func AvgVertexSpacing(model *stl.Model) float64 {
	if model.TriangleCount() == 0 {
		return 1.0
	}

	sampleSize := min(model.TriangleCount(), 1000)
	totalLength := 0.0
	edgeCount := 0

	for i := 0; i < sampleSize; i++ {
		for _, length := range model.Triangles[i].EdgeLengths() {
			totalLength += length
			edgeCount++
		}
	}

	if edgeCount == 0 {
		return 1.0
	}
	return totalLength / float64(edgeCount)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
