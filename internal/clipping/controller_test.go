package clipping

import (
	"testing"

	"github.com/gosect/gosect/internal/scene"
	"github.com/gosect/gosect/pkg/geometry"
	"github.com/gosect/gosect/pkg/stl"
)

func cubeAt(name string, origin geometry.Vector3) *stl.Model {
	model := stl.NewModel(name)
	quad := func(a, b, c, d geometry.Vector3) {
		model.AddTriangle(geometry.NewTriangle(geometry.Vector3{}, a, b, c))
		model.AddTriangle(geometry.NewTriangle(geometry.Vector3{}, a, c, d))
	}
	v := func(x, y, z float64) geometry.Vector3 {
		return origin.Add(geometry.NewVector3(x, y, z))
	}

	quad(v(0, 0, 0), v(0, 1, 0), v(1, 1, 0), v(1, 0, 0))
	quad(v(0, 0, 1), v(1, 0, 1), v(1, 1, 1), v(0, 1, 1))
	quad(v(0, 0, 0), v(1, 0, 0), v(1, 0, 1), v(0, 0, 1))
	quad(v(0, 1, 0), v(0, 1, 1), v(1, 1, 1), v(1, 1, 0))
	quad(v(0, 0, 0), v(0, 0, 1), v(0, 1, 1), v(0, 1, 0))
	quad(v(1, 0, 0), v(1, 1, 0), v(1, 1, 1), v(1, 0, 1))
	return model
}

func buildScene(t *testing.T, solidCount int) *scene.Scene {
	t.Helper()
	s := scene.New()
	for i := 0; i < solidCount; i++ {
		s.AddSolid(cubeAt("cube", geometry.NewVector3(float64(i)*2, 0, 0)))
	}
	return s
}

func newTestController(s *scene.Scene, theme Theme) *Controller {
	return NewController(s.Root, s.Solids(), s.Size(), s.Center(), theme, nil)
}

type countingReleaser struct {
	released int
}

func (r *countingReleaser) Release(node *scene.Node) {
	r.released++
}

func TestDefaultPlanes(t *testing.T) {
	c := NewController(scene.NewNode("root"), nil, 10, geometry.Vector3{}, ThemeLight, nil)

	for i, want := range defaultNormals {
		p := c.Plane(i)
		if p.Normal != want {
			t.Errorf("plane %d: expected normal %v, got %v", i, want, p.Normal)
		}
		if p.Offset != 5 {
			t.Errorf("plane %d: expected offset 5, got %f", i, p.Offset)
		}
		if p.EffectiveOffset() != 5 {
			t.Errorf("plane %d: expected effective offset 5, got %f", i, p.EffectiveOffset())
		}
	}
}

func TestSetOffsetMirrorsReverse(t *testing.T) {
	c := NewController(scene.NewNode("root"), nil, 10, geometry.Vector3{}, ThemeLight, nil)

	for i := 0; i < 3; i++ {
		c.SetOffset(i, 2.5)
		if c.Plane(i).Offset != 2.5 {
			t.Errorf("plane %d: expected offset 2.5, got %f", i, c.Plane(i).Offset)
		}
		if c.Plane(i).Reversed().Offset != -2.5 {
			t.Errorf("plane %d: expected reverse offset -2.5, got %f",
				i, c.Plane(i).Reversed().Offset)
		}
	}
}

func TestSetNormalResetsOffsetAndFiresCallback(t *testing.T) {
	c := NewController(scene.NewNode("root"), nil, 10, geometry.Vector3{}, ThemeLight, nil)
	c.SetOffset(1, 1.25)

	var gotIndex = -1
	var gotNormal geometry.Vector3
	c.OnNormalChange(func(index int, normal geometry.Vector3) {
		gotIndex = index
		gotNormal = normal
	})

	n := geometry.NewVector3(0, 0, 1)
	c.SetNormal(1, n)

	if c.Plane(1).Normal != n {
		t.Errorf("expected normal %v, got %v", n, c.Plane(1).Normal)
	}
	if c.Plane(1).Reversed().Normal != n.Neg() {
		t.Errorf("expected reverse normal %v, got %v", n.Neg(), c.Plane(1).Reversed().Normal)
	}
	if c.Plane(1).Offset != 5 {
		t.Errorf("expected offset reset to 5, got %f", c.Plane(1).Offset)
	}
	if gotIndex != 1 || gotNormal != n {
		t.Errorf("expected callback (1, %v), got (%d, %v)", n, gotIndex, gotNormal)
	}
}

func TestSetNormalAcceptsNonUnitVector(t *testing.T) {
	c := NewController(scene.NewNode("root"), nil, 10, geometry.Vector3{}, ThemeLight, nil)

	n := geometry.NewVector3(0, 0, 3)
	c.SetNormal(2, n)
	if c.Plane(2).Normal != n {
		t.Errorf("expected vector stored as given, got %v", c.Plane(2).Normal)
	}
}

func TestUnitCount(t *testing.T) {
	cases := []struct {
		solids int
		units  int
	}{
		{0, 0},
		{1, 3},
		{2, 6},
	}

	for _, tc := range cases {
		s := buildScene(t, tc.solids)
		c := newTestController(s, ThemeLight)

		if len(c.Units()) != tc.units {
			t.Errorf("%d solids: expected %d units, got %d",
				tc.solids, tc.units, len(c.Units()))
		}
		if len(c.ObjectColors()) != tc.solids*3 {
			t.Errorf("%d solids: expected %d object colors, got %d",
				tc.solids, tc.solids*3, len(c.ObjectColors()))
		}
	}
}

func TestOpenSolidGetsNoUnits(t *testing.T) {
	s := scene.New()
	open := stl.NewModel("open")
	open.AddTriangle(geometry.NewTriangle(
		geometry.Vector3{},
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(0, 1, 0),
	))
	s.AddSolid(open)

	c := newTestController(s, ThemeLight)
	if len(c.Units()) != 0 {
		t.Errorf("expected 0 units for open shell, got %d", len(c.Units()))
	}
	if len(c.ObjectColors()) != 3 {
		t.Errorf("expected 3 object colors regardless of closedness, got %d",
			len(c.ObjectColors()))
	}
}

func TestColorModeRoundTrip(t *testing.T) {
	s := buildScene(t, 1)
	c := newTestController(s, ThemeLight)
	unit := c.Units()[0]

	solidColor := s.Solids()[0].Material.Color
	planeColor := ThemeLight.PlaneColors()[unit.PlaneIndex]

	if c.ColorMode() {
		t.Error("expected object-color caps off by default")
	}
	if unit.ActiveColor() != planeColor {
		t.Errorf("expected plane color %v, got %v", planeColor, unit.ActiveColor())
	}

	c.SetColorMode(true)
	if !c.ColorMode() {
		t.Error("expected color mode true")
	}
	if unit.ActiveColor() != solidColor {
		t.Errorf("expected solid color %v, got %v", solidColor, unit.ActiveColor())
	}

	c.SetColorMode(false)
	if unit.ActiveColor() != planeColor {
		t.Errorf("expected plane color restored, got %v", unit.ActiveColor())
	}
}

func TestObjectColorTracksSolidRecolor(t *testing.T) {
	s := buildScene(t, 1)
	c := newTestController(s, ThemeLight)
	c.SetColorMode(true)

	recolored := scene.Color{R: 0.1, G: 0.2, B: 0.3}
	s.Solids()[0].Material.Color = recolored

	if c.Units()[0].ActiveColor() != recolored {
		t.Errorf("expected live solid color %v, got %v",
			recolored, c.Units()[0].ActiveColor())
	}
}

func TestSetVisible(t *testing.T) {
	s := buildScene(t, 2)
	c := newTestController(s, ThemeLight)

	for _, flag := range []bool{false, false, true, true} {
		c.SetVisible(flag)
		if c.Visible() != flag {
			t.Errorf("expected visible %v", flag)
		}
		for i, unit := range c.Units() {
			if unit.Quad.Visible != flag {
				t.Errorf("unit %d: expected quad visibility %v", i, flag)
			}
		}
		for i, helper := range c.Helpers() {
			if helper.Node.Visible != flag {
				t.Errorf("helper %d: expected visibility %v", i, flag)
			}
		}
	}
}

func TestThemeColors(t *testing.T) {
	light := ThemeLight.PlaneColors()
	wantLight := [3]scene.Color{
		{R: 1, G: 0, B: 0},
		{R: 0, G: 1, B: 0},
		{R: 0, G: 0, B: 1},
	}
	if light != wantLight {
		t.Errorf("expected light colors %v, got %v", wantLight, light)
	}
	if ThemeLight.HelperOpacity() != 0.10 {
		t.Errorf("expected light opacity 0.10, got %f", ThemeLight.HelperOpacity())
	}

	dark := ThemeDark.PlaneColors()
	wantDark := [3]scene.Color{
		{R: 1, G: 0.271, B: 0},
		{R: 0.196, G: 0.804, B: 0.196},
		{R: 0.678, G: 0.847, B: 0.902},
	}
	if dark != wantDark {
		t.Errorf("expected dark colors %v, got %v", wantDark, dark)
	}
	if ThemeDark.HelperOpacity() != 0.20 {
		t.Errorf("expected dark opacity 0.20, got %f", ThemeDark.HelperOpacity())
	}
}

func TestHelperMaterials(t *testing.T) {
	s := buildScene(t, 1)
	c := newTestController(s, ThemeDark)

	colors := ThemeDark.PlaneColors()
	for i, helper := range c.Helpers() {
		if helper.Material.Color != colors[i] {
			t.Errorf("helper %d: expected color %v, got %v",
				i, colors[i], helper.Material.Color)
		}
		if helper.Material.Opacity != 0.20 {
			t.Errorf("helper %d: expected opacity 0.20, got %f",
				i, helper.Material.Opacity)
		}
	}
}

func TestDisposeIdempotent(t *testing.T) {
	s := buildScene(t, 2)
	releaser := &countingReleaser{}
	c := NewController(s.Root, s.Solids(), s.Size(), s.Center(), ThemeLight, releaser)
	c.OnNormalChange(func(int, geometry.Vector3) {})

	c.Dispose()
	c.Dispose()

	// 6 cap quads + 3 helpers, released exactly once
	if releaser.released != 9 {
		t.Errorf("expected 9 releases, got %d", releaser.released)
	}
	if c.onNormalChange != nil {
		t.Error("expected callback cleared after dispose")
	}
	if c.center != nil {
		t.Error("expected center reference cleared after dispose")
	}
	if c.helpers != nil {
		t.Error("expected helper references cleared after dispose")
	}
}

func TestDisposeWithoutReleaser(t *testing.T) {
	s := buildScene(t, 1)
	c := newTestController(s, ThemeLight)
	c.Dispose() // must not panic with a nil releaser
}

func TestZeroSolidSceneMutations(t *testing.T) {
	s := scene.New()
	c := newTestController(s, ThemeLight)

	c.SetOffset(0, 1)
	c.SetNormal(2, geometry.NewVector3(1, 0, 0))
	c.SetVisible(false)
	c.SetColorMode(true)
	c.Dispose()
}
