package clipping

import (
	"math"
	"testing"

	"github.com/gosect/gosect/pkg/geometry"
)

func TestEffectiveOffset(t *testing.T) {
	p := Plane{
		Normal: geometry.NewVector3(-1, 0, 0),
		Offset: 5,
		Center: geometry.NewVector3(2, 0, 0),
	}

	// offset - dot(normal, center) = 5 - (-2) = 7
	if p.EffectiveOffset() != 7 {
		t.Errorf("expected effective offset 7, got %f", p.EffectiveOffset())
	}
}

func TestEffectiveOffsetOriginCenter(t *testing.T) {
	for i, n := range defaultNormals {
		p := Plane{Normal: n, Offset: 5}
		if p.EffectiveOffset() != 5 {
			t.Errorf("plane %d: expected effective offset 5, got %f", i, p.EffectiveOffset())
		}
	}
}

func TestReversed(t *testing.T) {
	p := Plane{
		Normal: geometry.NewVector3(0, -1, 0),
		Offset: 3,
		Center: geometry.NewVector3(1, 2, 3),
	}
	r := p.Reversed()

	if r.Normal != p.Normal.Neg() {
		t.Errorf("expected negated normal, got %v", r.Normal)
	}
	if r.Offset != -p.Offset {
		t.Errorf("expected negated offset, got %f", r.Offset)
	}
	if r.Center != p.Center {
		t.Errorf("expected same center, got %v", r.Center)
	}
	if r.EffectiveOffset() != -p.EffectiveOffset() {
		t.Errorf("expected mirrored effective offset, got %f and %f",
			p.EffectiveOffset(), r.EffectiveOffset())
	}
}

func TestReversedIsSameGeometricPlane(t *testing.T) {
	p := Plane{
		Normal: geometry.NewVector3(1, 1, 0).Normalize(),
		Offset: 2,
		Center: geometry.NewVector3(0.5, -1, 4),
	}
	r := p.Reversed()

	// A point on the plane satisfies both equations with distance 0
	onPlane := p.Normal.Mul(-p.EffectiveOffset())
	d1 := p.Normal.Dot(onPlane) + p.EffectiveOffset()
	d2 := r.Normal.Dot(onPlane) + r.EffectiveOffset()
	if math.Abs(d1) > 1e-12 || math.Abs(d2) > 1e-12 {
		t.Errorf("expected point on both planes, distances %g and %g", d1, d2)
	}
}

func TestSectionConversion(t *testing.T) {
	p := Plane{
		Normal: geometry.NewVector3(-1, 0, 0),
		Offset: 5,
		Center: geometry.NewVector3(2, 0, 0),
	}
	sp := p.Section()

	if sp.Normal != p.Normal {
		t.Errorf("expected same normal, got %v", sp.Normal)
	}
	if sp.Offset != p.EffectiveOffset() {
		t.Errorf("expected world offset %f, got %f", p.EffectiveOffset(), sp.Offset)
	}
}
