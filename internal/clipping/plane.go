// Package clipping implements the three-plane cross-section system:
// the plane pair model, the per-solid stencil cap units, the themed
// plane helpers and the controller tying them together. It owns no GL
// state; the render backend consumes its planes and units per frame.
package clipping

import (
	"github.com/gosect/gosect/pkg/geometry"
	"github.com/gosect/gosect/pkg/section"
)

// Plane is a clip plane with its offset expressed relative to a
// reference center, so the same offset value cuts at the same relative
// depth regardless of where the model sits in world space. A point p
// is kept iff dot(Normal, p) + EffectiveOffset() >= 0.
type Plane struct {
	Normal geometry.Vector3
	Offset float64
	Center geometry.Vector3
}

// EffectiveOffset returns the world-space plane constant
func (p Plane) EffectiveOffset() float64 {
	return p.Offset - p.Normal.Dot(p.Center)
}

// Reversed returns the same geometric plane traversed from the other
// side: negated normal and offset, same center. Derived on demand so
// the pair can never drift apart.
func (p Plane) Reversed() Plane {
	return Plane{
		Normal: p.Normal.Neg(),
		Offset: -p.Offset,
		Center: p.Center,
	}
}

// Section converts to the world-space plane form used by the CPU
// cross-section engine.
func (p Plane) Section() section.Plane {
	return section.Plane{Normal: p.Normal, Offset: p.EffectiveOffset()}
}

// defaultNormals are the initial plane orientations, one per axis
var defaultNormals = [3]geometry.Vector3{
	geometry.NewVector3(-1, 0, 0),
	geometry.NewVector3(0, -1, 0),
	geometry.NewVector3(0, 0, -1),
}
