package clipping

import "github.com/gosect/gosect/internal/scene"

// ColorSource selects where a cap unit's fill color comes from
type ColorSource int

const (
	// PlaneColor fills the cap with the plane's themed helper color
	PlaneColor ColorSource = iota
	// ObjectColor fills the cap with the clipped solid's own color
	ObjectColor
)

// CapUnit closes the cut of one closed solid against one plane. The
// render backend runs the two-pass stencil technique per unit: mark the
// solid's cut interior in the stencil, then fill a plane-coincident
// quad where the stencil is set.
type CapUnit struct {
	Solid      *scene.Solid
	PlaneIndex int
	Source     ColorSource
	Fallback   scene.Color // plane helper theme color
	Quad       *scene.Node // owned fill quad
}

// ActiveColor resolves the fill color at draw time. ObjectColor reads
// the solid's current material so later recoloring is picked up.
func (u *CapUnit) ActiveColor() scene.Color {
	if u.Source == ObjectColor {
		return u.Solid.Material.Color
	}
	return u.Fallback
}

// Helper is one translucent plane visual
type Helper struct {
	Node     *scene.Node
	Material scene.Material
}
