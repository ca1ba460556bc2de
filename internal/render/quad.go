package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gosect/gosect/internal/clipping"
	"github.com/gosect/gosect/pkg/geometry"
)

var defaultQuadNormal = geometry.NewVector3(0, 0, 1)

// unitQuad is a unit square in the XY plane facing +Z, used for both
// cap fills and plane helpers after transformation onto a clip plane.
var unitQuad = []float32{
	-0.5, -0.5, 0, 0, 0, 1,
	0.5, -0.5, 0, 0, 0, 1,
	0.5, 0.5, 0, 0, 0, 1,
	-0.5, -0.5, 0, 0, 0, 1,
	0.5, 0.5, 0, 0, 0, 1,
	-0.5, 0.5, 0, 0, 0, 1,
}

// planeQuadMatrix places the unit quad on a clip plane, centered at the
// point of the plane nearest the reference center and scaled to twice
// the reference size so it always spans the model.
func planeQuadMatrix(plane clipping.Plane, refSize float64) mgl32.Mat4 {
	normal := plane.Normal
	length := normal.Length()
	if length == 0 {
		// Degenerate normal, park the quad at the center
		normal = defaultQuadNormal
		length = 1
	}
	unit := normal.Mul(1 / length)

	// dot(N, p) + effectiveOffset == 0 at distance Offset/|N| from
	// the center along the unit normal
	point := plane.Center.Sub(unit.Mul(plane.Offset / length))

	rotate := mgl32.QuatBetweenVectors(
		mgl32.Vec3{0, 0, 1},
		mgl32.Vec3{float32(unit.X), float32(unit.Y), float32(unit.Z)},
	).Mat4()

	extent := float32(refSize) * 2
	if extent == 0 {
		extent = 1
	}

	translate := mgl32.Translate3D(float32(point.X), float32(point.Y), float32(point.Z))
	scale := mgl32.Scale3D(extent, extent, 1)
	return translate.Mul4(rotate).Mul4(scale)
}
