package clipping

import (
	"fmt"

	"github.com/gosect/gosect/internal/scene"
	"github.com/gosect/gosect/pkg/geometry"
	"github.com/gosect/gosect/pkg/section"
)

// Releaser frees GPU resources tied to a scene node. The render
// backend implements it; tests pass nil.
type Releaser interface {
	Release(node *scene.Node)
}

// Controller owns the three clip planes, one cap unit per closed solid
// and plane, and the plane helper visuals. It is built once per loaded
// scene and must be disposed and rebuilt on reload; solids are not
// comparable across loads.
//
// All methods are driven from the render-loop thread; there is exactly
// one writer and no locking.
type Controller struct {
	planes  [3]Plane
	units   []*CapUnit
	helpers []*Helper

	// base color per (solid, plane), indexed solidIndex*3+planeIndex
	objectColors []scene.Color

	size           float64
	center         *geometry.Vector3
	theme          Theme
	visible        bool
	useObjectColor bool
	onNormalChange func(index int, normal geometry.Vector3)

	root     *scene.Node
	releaser Releaser
	disposed bool
}

// NewController builds the clipping state for a scene: three planes at
// half the reference size, one cap unit per (closed solid, plane), and
// three themed helper quads attached to the root node.
func NewController(root *scene.Node, solids []*scene.Solid, size float64, center geometry.Vector3, theme Theme, releaser Releaser) *Controller {
	c := &Controller{
		size:     size,
		center:   &center,
		theme:    theme,
		visible:  true,
		root:     root,
		releaser: releaser,
	}

	for i := 0; i < 3; i++ {
		c.planes[i] = Plane{
			Normal: defaultNormals[i],
			Offset: size / 2,
			Center: center,
		}
	}

	colors := theme.PlaneColors()
	opacity := theme.HelperOpacity()

	c.objectColors = make([]scene.Color, 0, len(solids)*3)
	for _, solid := range solids {
		for planeIdx := 0; planeIdx < 3; planeIdx++ {
			c.objectColors = append(c.objectColors, solid.Material.Color)

			// Open shells get no caps; clipping still applies to them
			if !solid.Closed {
				continue
			}

			quad := scene.NewNode(fmt.Sprintf("cap-%s-%d", solid.Node.Name, planeIdx))
			root.AddChild(quad)
			c.units = append(c.units, &CapUnit{
				Solid:      solid,
				PlaneIndex: planeIdx,
				Source:     PlaneColor,
				Fallback:   colors[planeIdx],
				Quad:       quad,
			})
		}
	}

	for i := 0; i < 3; i++ {
		node := scene.NewNode(fmt.Sprintf("plane-helper-%d", i))
		root.AddChild(node)
		c.helpers = append(c.helpers, &Helper{
			Node:     node,
			Material: scene.Material{Color: colors[i], Opacity: opacity},
		})
	}

	return c
}

// Plane returns the i-th clip plane
func (c *Controller) Plane(index int) Plane {
	return c.planes[index]
}

// SectionPlanes returns all planes in world form for the CPU engine
func (c *Controller) SectionPlanes() []section.Plane {
	out := make([]section.Plane, 3)
	for i, p := range c.planes {
		out[i] = p.Section()
	}
	return out
}

// Units returns the cap units in build order
func (c *Controller) Units() []*CapUnit {
	return c.units
}

// Helpers returns the three plane helper visuals
func (c *Controller) Helpers() []*Helper {
	return c.helpers
}

// ObjectColors returns the flat per-(solid, plane) base color array
func (c *Controller) ObjectColors() []scene.Color {
	return c.objectColors
}

// Size returns the reference size the controller was built with
func (c *Controller) Size() float64 {
	return c.size
}

// SetOffset moves a plane along its normal. The value is not clamped
// to the model bounds; the UI layer may clamp if it wants to.
func (c *Controller) SetOffset(index int, value float64) {
	c.planes[index].Offset = value
}

// SetNormal reorients a plane and resets its offset to half the
// reference size, so the plane lands at a sensible cut position
// instead of keeping a stale offset from the previous axis. The vector
// is stored as given; callers are expected to pass unit normals.
func (c *Controller) SetNormal(index int, normal geometry.Vector3) {
	c.planes[index].Normal = normal
	c.planes[index].Offset = c.size / 2
	if c.onNormalChange != nil {
		c.onNormalChange(index, normal)
	}
}

// OnNormalChange registers the callback fired by SetNormal
func (c *Controller) OnNormalChange(fn func(index int, normal geometry.Vector3)) {
	c.onNormalChange = fn
}

// SetVisible shows or hides every cap quad and helper. It does not
// affect the geometric clipping of ordinary surfaces.
func (c *Controller) SetVisible(flag bool) {
	c.visible = flag
	for _, unit := range c.units {
		unit.Quad.Visible = flag
	}
	for _, helper := range c.helpers {
		helper.Node.Visible = flag
	}
}

// Visible reports whether caps and helpers are shown
func (c *Controller) Visible() bool {
	return c.visible
}

// SetColorMode switches every cap between the solid's own color and
// the plane theme color. State flip only; the color itself is resolved
// at draw time.
func (c *Controller) SetColorMode(useObjectColor bool) {
	c.useObjectColor = useObjectColor
	source := PlaneColor
	if useObjectColor {
		source = ObjectColor
	}
	for _, unit := range c.units {
		unit.Source = source
	}
}

// ColorMode reports whether object-color caps are enabled
func (c *Controller) ColorMode() bool {
	return c.useObjectColor
}

// Dispose releases the GPU resources owned by cap quads and helpers
// and breaks the callback and center references. Idempotent.
func (c *Controller) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true

	for _, unit := range c.units {
		if c.releaser != nil {
			c.releaser.Release(unit.Quad)
		}
		if c.root != nil {
			c.root.RemoveChild(unit.Quad)
		}
	}
	for _, helper := range c.helpers {
		if c.releaser != nil {
			c.releaser.Release(helper.Node)
		}
		if c.root != nil {
			c.root.RemoveChild(helper.Node)
		}
	}

	c.helpers = nil
	c.onNormalChange = nil
	c.center = nil
	c.root = nil
}
