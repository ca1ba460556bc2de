package analysis

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

func TestAnalyzeCube(t *testing.T) {
	result := AnalyzeModel(unitCube())

	if result.TriangleCount != 12 {
		t.Errorf("expected 12 triangles, got %d", result.TriangleCount)
	}
	if math.Abs(result.SurfaceArea-6) > 1e-9 {
		t.Errorf("expected surface area 6, got %v", result.SurfaceArea)
	}
	if math.Abs(result.BoxVolume-1) > 1e-9 {
		t.Errorf("expected box volume 1, got %v", result.BoxVolume)
	}
	if math.Abs(result.EnclosedVolume-1) > 1e-9 {
		t.Errorf("expected enclosed volume 1, got %v", result.EnclosedVolume)
	}
	if !result.Closed {
		t.Error("cube should be recognized as closed")
	}
}

func TestIsClosedManifoldOpenShell(t *testing.T) {
	model := stl.NewModel("open")
	model.AddTriangle(geometry.NewTriangle(
		geometry.Vector3{},
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(0, 1, 0),
	))

	if IsClosedManifold(model) {
		t.Error("single triangle should not be closed")
	}
}

func TestIsClosedManifoldEmpty(t *testing.T) {
	if IsClosedManifold(stl.NewModel("")) {
		t.Error("empty model should not be closed")
	}
}

func TestAvgVertexSpacing(t *testing.T) {
	spacing := AvgVertexSpacing(unitCube())
	if spacing <= 0 {
		t.Errorf("expected positive spacing, got %v", spacing)
	}

	if AvgVertexSpacing(stl.NewModel("")) != 1.0 {
		t.Error("empty model should fall back to 1.0")
	}
}
