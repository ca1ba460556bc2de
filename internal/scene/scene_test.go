package scene

import (
	"math"
	"testing"

	"github.com/gosect/gosect/pkg/geometry"
	"github.com/gosect/gosect/pkg/stl"
)

func unitCube() *stl.Model {
	model := stl.NewModel("cube")
	quad := func(a, b, c, d geometry.Vector3) {
		model.AddTriangle(geometry.NewTriangle(geometry.Vector3{}, a, b, c))
		model.AddTriangle(geometry.NewTriangle(geometry.Vector3{}, a, c, d))
	}
	v := func(x, y, z float64) geometry.Vector3 { return geometry.NewVector3(x, y, z) }

	quad(v(0, 0, 0), v(0, 1, 0), v(1, 1, 0), v(1, 0, 0))
	quad(v(0, 0, 1), v(1, 0, 1), v(1, 1, 1), v(0, 1, 1))
	quad(v(0, 0, 0), v(1, 0, 0), v(1, 0, 1), v(0, 0, 1))
	quad(v(0, 1, 0), v(0, 1, 1), v(1, 1, 1), v(1, 1, 0))
	quad(v(0, 0, 0), v(0, 0, 1), v(0, 1, 1), v(0, 1, 0))
	quad(v(1, 0, 0), v(1, 1, 0), v(1, 1, 1), v(1, 0, 1))
	return model
}

func TestAddSolid(t *testing.T) {
	s := New()
	solid := s.AddSolid(unitCube())

	if len(s.Solids()) != 1 {
		t.Fatalf("expected 1 solid, got %d", len(s.Solids()))
	}
	if !solid.Closed {
		t.Error("expected cube to be detected as closed")
	}
	if solid.Mesh.VertexCount() != 36 {
		t.Errorf("expected 36 vertices, got %d", solid.Mesh.VertexCount())
	}
	if solid.Node.Parent != s.Root {
		t.Error("expected solid node attached to scene root")
	}
}

func TestOpenShellNotClosed(t *testing.T) {
	model := stl.NewModel("shell")
	model.AddTriangle(geometry.NewTriangle(
		geometry.Vector3{},
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(0, 1, 0),
	))

	s := New()
	solid := s.AddSolid(model)
	if solid.Closed {
		t.Error("expected single triangle to not be closed")
	}
}

func TestSceneSizeAndCenter(t *testing.T) {
	s := New()
	s.AddSolid(unitCube())

	if math.Abs(s.Size()-math.Sqrt(3)) > 1e-9 {
		t.Errorf("expected size sqrt(3), got %f", s.Size())
	}
	center := s.Center()
	if math.Abs(center.X-0.5) > 1e-9 || math.Abs(center.Y-0.5) > 1e-9 || math.Abs(center.Z-0.5) > 1e-9 {
		t.Errorf("expected center (0.5,0.5,0.5), got %v", center)
	}
}

func TestEmptySceneSize(t *testing.T) {
	s := New()
	if s.Size() != 0 {
		t.Errorf("expected empty scene size 0, got %f", s.Size())
	}
	if !s.Bounds().IsEmpty() {
		t.Error("expected empty bounds")
	}
}

func TestClear(t *testing.T) {
	s := New()
	s.AddSolid(unitCube())
	s.Clear()

	if len(s.Solids()) != 0 {
		t.Errorf("expected 0 solids after clear, got %d", len(s.Solids()))
	}
	if s.Size() != 0 {
		t.Errorf("expected size 0 after clear, got %f", s.Size())
	}
}

func TestPaletteCycles(t *testing.T) {
	first := PaletteColor(0)
	wrapped := PaletteColor(len(basePalette))
	if first != wrapped {
		t.Error("expected palette to cycle")
	}
}

func TestInterleavedLayout(t *testing.T) {
	model := stl.NewModel("tri")
	model.AddTriangle(geometry.NewTriangle(
		geometry.Vector3{},
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(0, 1, 0),
	))

	mesh := NewTriMesh(model)
	data := mesh.Interleaved()
	if len(data) != 3*6 {
		t.Fatalf("expected 18 floats, got %d", len(data))
	}
	// Normal of a CCW triangle in the XY plane points +Z
	if data[5] != 1 {
		t.Errorf("expected +Z normal in interleaved data, got %f", data[5])
	}
}

func TestNodeVisibility(t *testing.T) {
	root := NewNode("root")
	child := NewNode("child")
	root.AddChild(child)

	if !child.WorldVisible() {
		t.Error("expected child visible by default")
	}
	root.Visible = false
	if child.WorldVisible() {
		t.Error("expected child hidden when parent is hidden")
	}
}
