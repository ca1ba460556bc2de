package render

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gosect/gosect/internal/clipping"
	"github.com/gosect/gosect/internal/scene"
)

// FrameOptions are the per-frame draw toggles
type FrameOptions struct {
	ClippingEnabled bool
	Wireframe       bool
	Edges           bool
	Background      [3]float32
}

var identity = mgl32.Ident4()

// sentinel neutralizes a clip plane: distance 1 everywhere
var sentinel = mgl32.Vec4{0, 0, 0, 1}

func sentinelPlanes() [3]mgl32.Vec4 {
	return [3]mgl32.Vec4{sentinel, sentinel, sentinel}
}

func planeVec(p clipping.Plane) mgl32.Vec4 {
	return mgl32.Vec4{
		float32(p.Normal.X),
		float32(p.Normal.Y),
		float32(p.Normal.Z),
		float32(p.EffectiveOffset()),
	}
}

func activePlanes(ctrl *clipping.Controller, enabled bool) [3]mgl32.Vec4 {
	planes := sentinelPlanes()
	if ctrl == nil || !enabled {
		return planes
	}
	for i := 0; i < 3; i++ {
		planes[i] = planeVec(ctrl.Plane(i))
	}
	return planes
}

// DrawFrame renders one frame: clipped solids, then the stencil caps
// unit by unit, then the translucent plane helpers.
func (r *Renderer) DrawFrame(width, height int, view, proj mgl32.Mat4, eye mgl32.Vec3, sc *scene.Scene, ctrl *clipping.Controller, opts FrameOptions) {
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(opts.Background[0], opts.Background[1], opts.Background[2], 1)
	gl.ClearDepth(1)
	gl.StencilMask(0xFF)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT)

	planes := activePlanes(ctrl, opts.ClippingEnabled)

	r.drawSolids(view, proj, eye, sc, planes, opts)

	if ctrl != nil && opts.ClippingEnabled {
		for _, unit := range ctrl.Units() {
			r.drawCapUnit(unit, ctrl, view, proj)
		}
		r.drawHelpers(ctrl, view, proj)
	}
}

func (r *Renderer) drawSolids(view, proj mgl32.Mat4, eye mgl32.Vec3, sc *scene.Scene, planes [3]mgl32.Vec4, opts FrameOptions) {
	r.shaded.use()
	r.shaded.setMat4("proj", proj)
	r.shaded.setMat4("view", view)
	r.shaded.setMat4("model", identity)
	r.shaded.setVec3("eyePos", eye)
	r.shaded.setClipPlanes(planes)

	if opts.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}

	for _, solid := range sc.Solids() {
		if !solid.Node.WorldVisible() {
			continue
		}
		mesh, ok := r.meshes[solid.Node]
		if !ok {
			continue
		}
		c := solid.Material.Color
		r.shaded.setVec3("baseColor", mgl32.Vec3{c.R, c.G, c.B})
		r.shaded.setFloat("opacity", solid.Material.Opacity)
		mesh.draw()
	}

	if opts.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	if opts.Edges && !opts.Wireframe {
		r.drawEdges(view, proj, sc, planes)
	}
}

// drawEdges overlays triangle edges on the shaded surface
func (r *Renderer) drawEdges(view, proj mgl32.Mat4, sc *scene.Scene, planes [3]mgl32.Vec4) {
	r.flat.use()
	r.flat.setMat4("proj", proj)
	r.flat.setMat4("view", view)
	r.flat.setMat4("model", identity)
	r.flat.setVec3("baseColor", mgl32.Vec3{0.1, 0.1, 0.1})
	r.flat.setFloat("opacity", 1)
	r.flat.setClipPlanes(planes)

	gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	gl.Enable(gl.POLYGON_OFFSET_LINE)
	gl.PolygonOffset(-1, -1)

	for _, solid := range sc.Solids() {
		if !solid.Node.WorldVisible() {
			continue
		}
		if mesh, ok := r.meshes[solid.Node]; ok {
			mesh.draw()
		}
	}

	gl.Disable(gl.POLYGON_OFFSET_LINE)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
}

// drawHelpers draws the translucent plane quads last, unclipped
func (r *Renderer) drawHelpers(ctrl *clipping.Controller, view, proj mgl32.Mat4) {
	r.flat.use()
	r.flat.setMat4("proj", proj)
	r.flat.setMat4("view", view)
	r.flat.setClipPlanes(sentinelPlanes())

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DepthMask(false)

	for i, helper := range ctrl.Helpers() {
		if !helper.Node.WorldVisible() {
			continue
		}
		c := helper.Material.Color
		r.flat.setVec3("baseColor", mgl32.Vec3{c.R, c.G, c.B})
		r.flat.setFloat("opacity", helper.Material.Opacity)
		r.flat.setMat4("model", planeQuadMatrix(ctrl.Plane(i), ctrl.Size()))
		r.quad.draw()
	}

	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
}
