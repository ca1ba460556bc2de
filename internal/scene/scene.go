package scene

import (
	"fmt"

	"github.com/gosect/gosect/pkg/analysis"
	"github.com/gosect/gosect/pkg/geometry"
	"github.com/gosect/gosect/pkg/stl"
)

// Scene owns the node tree and the loaded solids
type Scene struct {
	Root   *Node
	solids []*Solid
	bounds geometry.BoundingBox
}

// New creates an empty scene
func New() *Scene {
	return &Scene{
		Root:   NewNode("root"),
		bounds: geometry.NewBoundingBox(),
	}
}

// AddSolid flattens a model into a solid, assigns it a palette color
// and attaches it to the scene root. Closedness is computed here so the
// clipping system can skip open shells.
func (s *Scene) AddSolid(model *stl.Model) *Solid {
	name := model.Name
	if name == "" {
		name = fmt.Sprintf("solid-%d", len(s.solids))
	}

	solid := &Solid{
		Node: NewNode(name),
		Mesh: NewTriMesh(model),
		Material: Material{
			Color:   PaletteColor(len(s.solids)),
			Opacity: 1,
		},
		Closed: analysis.IsClosedManifold(model),
	}

	s.Root.AddChild(solid.Node)
	s.solids = append(s.solids, solid)
	s.bounds.Union(model.BoundingBox())
	return solid
}

// Solids returns the loaded solids in load order
func (s *Scene) Solids() []*Solid {
	return s.solids
}

// Bounds returns the union bounding box of all solids
func (s *Scene) Bounds() geometry.BoundingBox {
	return s.bounds
}

// Center returns the bounds center, the origin for an empty scene
func (s *Scene) Center() geometry.Vector3 {
	return s.bounds.Center()
}

// Size returns the reference size: the bounds diagonal
func (s *Scene) Size() float64 {
	return s.bounds.Diagonal()
}

// Clear drops all solids and resets the bounds. Nodes attached to the
// root by other subsystems are removed with it.
func (s *Scene) Clear() {
	s.Root = NewNode("root")
	s.solids = nil
	s.bounds = geometry.NewBoundingBox()
}
