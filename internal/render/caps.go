package render

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gosect/gosect/internal/clipping"
)

// stencilGuard scopes one cap unit's ownership of the shared stencil
// buffer: cleared on acquire, cleared again on release, so a skipped
// draw can never leak marks into the next unit.
type stencilGuard struct{}

func acquireStencil() stencilGuard {
	gl.Enable(gl.STENCIL_TEST)
	gl.StencilMask(0xFF)
	gl.Clear(gl.STENCIL_BUFFER_BIT)
	return stencilGuard{}
}

func (stencilGuard) release() {
	gl.StencilMask(0xFF)
	gl.Clear(gl.STENCIL_BUFFER_BIT)
	gl.Disable(gl.STENCIL_TEST)
}

// drawCapUnit runs the two-pass stencil technique for one unit.
//
// Mark pass: the solid is drawn twice with color and depth writes off
// and only this unit's plane active. Front-culled triangles increment
// the stencil on depth-pass, back-culled ones decrement it; the count
// stays non-zero exactly where the camera ray is inside the solid
// beyond the cut. With a non-manifold or inconsistently wound solid
// the parity comes out wrong and the cap renders wrong; inputs are
// expected to be closed manifolds.
//
// Fill pass: a quad coincident with the plane is drawn where the
// stencil is non-zero, clipped by the other two planes but not by its
// own (the quad lies exactly on it). The quad stays depth-tested:
// where the solid's kept surface sits in front of the cut the mark
// count is non-zero too, and only the depth test keeps the quad from
// painting over it.
//
// Both passes rely on the renderer's LEQUAL depth func so fragments
// coincident with the depth written by the main scene pass still
// count.
func (r *Renderer) drawCapUnit(unit *clipping.CapUnit, ctrl *clipping.Controller, view, proj mgl32.Mat4) {
	guard := acquireStencil()
	defer guard.release()

	if !unit.Quad.WorldVisible() || !unit.Solid.Node.WorldVisible() {
		return
	}
	mesh, ok := r.meshes[unit.Solid.Node]
	if !ok {
		return
	}

	r.flat.use()
	r.flat.setMat4("proj", proj)
	r.flat.setMat4("view", view)
	r.flat.setMat4("model", identity)

	markPlanes := sentinelPlanes()
	markPlanes[unit.PlaneIndex] = planeVec(ctrl.Plane(unit.PlaneIndex))
	r.flat.setClipPlanes(markPlanes)

	gl.ColorMask(false, false, false, false)
	gl.DepthMask(false)
	gl.Enable(gl.CULL_FACE)
	gl.StencilFunc(gl.ALWAYS, 0, 0xFF)
	gl.StencilMask(0xFF)

	gl.CullFace(gl.FRONT)
	gl.StencilOp(gl.KEEP, gl.KEEP, gl.INCR_WRAP)
	mesh.draw()

	gl.CullFace(gl.BACK)
	gl.StencilOp(gl.KEEP, gl.KEEP, gl.DECR_WRAP)
	mesh.draw()

	gl.Disable(gl.CULL_FACE)
	gl.ColorMask(true, true, true, true)
	gl.DepthMask(true)

	fillPlanes := activePlanes(ctrl, true)
	fillPlanes[unit.PlaneIndex] = sentinel
	r.flat.setClipPlanes(fillPlanes)

	color := unit.ActiveColor()
	r.flat.setVec3("baseColor", mgl32.Vec3{color.R, color.G, color.B})
	r.flat.setFloat("opacity", 1)
	r.flat.setMat4("model", planeQuadMatrix(ctrl.Plane(unit.PlaneIndex), ctrl.Size()))

	gl.StencilFunc(gl.NOTEQUAL, 0, 0xFF)
	gl.StencilOp(gl.KEEP, gl.KEEP, gl.KEEP)
	gl.StencilMask(0x00)
	r.quad.draw()
}
