// Package section computes cross-sections of tessellated models on the
// CPU: triangles are clipped against arbitrary planes, the cut edges are
// chained into closed contours, and the contours are triangulated into
// flat cap fills.
package section

import "github.com/gosect/gosect/pkg/geometry"

// Plane is a half-space boundary. Points p with Normal·p + Offset >= 0
// are kept; everything else is clipped away.
type Plane struct {
	Normal geometry.Vector3
	Offset float64
}

// SignedDistance returns the signed distance from the plane, positive on
// the kept side. The normal is used as given; a non-unit normal scales
// the distance but not its sign.
func (p Plane) SignedDistance(v geometry.Vector3) float64 {
	return p.Normal.Dot(v) + p.Offset
}

// Reversed returns the same geometric plane with the kept side flipped
func (p Plane) Reversed() Plane {
	return Plane{Normal: p.Normal.Neg(), Offset: -p.Offset}
}

// PointOn returns a point lying on the plane
func (p Plane) PointOn() geometry.Vector3 {
	n2 := p.Normal.Dot(p.Normal)
	if n2 == 0 {
		return geometry.Vector3{}
	}
	return p.Normal.Mul(-p.Offset / n2)
}
