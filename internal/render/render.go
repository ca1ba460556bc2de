package render

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/gosect/gosect/internal/scene"
)

// Renderer owns the shader programs and the per-node GPU meshes. It
// implements clipping.Releaser so the controller can free cap
// resources on dispose.
type Renderer struct {
	shaded *program
	flat   *program
	meshes map[*scene.Node]*glMesh
	quad   *glMesh
}

// NewRenderer compiles the programs and uploads the shared quad. The
// GL context must be current.
func NewRenderer() (*Renderer, error) {
	shaded, err := newProgram(shadedVertexSrc, shadedFragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("shaded program: %w", err)
	}
	flat, err := newProgram(flatVertexSrc, flatFragmentSrc)
	if err != nil {
		shaded.delete()
		return nil, fmt.Errorf("flat program: %w", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	// LEQUAL so the cap mark passes, which re-render geometry already
	// in the depth buffer, pass at coincident depth
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.MULTISAMPLE)
	for i := 0; i < 3; i++ {
		// Disabled planes are neutralized by the shader sentinel
		gl.Enable(gl.CLIP_DISTANCE0 + uint32(i))
	}

	return &Renderer{
		shaded: shaded,
		flat:   flat,
		meshes: make(map[*scene.Node]*glMesh),
		quad:   uploadMesh(unitQuad),
	}, nil
}

// UploadSolid uploads (or replaces) the GPU mesh for a solid
func (r *Renderer) UploadSolid(solid *scene.Solid) {
	if old, ok := r.meshes[solid.Node]; ok {
		old.delete()
	}
	r.meshes[solid.Node] = uploadMesh(solid.Mesh.Interleaved())
}

// Release frees the GPU mesh tied to a node, if any
func (r *Renderer) Release(node *scene.Node) {
	if mesh, ok := r.meshes[node]; ok {
		mesh.delete()
		delete(r.meshes, node)
	}
}

// ReleaseAll frees every uploaded mesh, keeping the programs
func (r *Renderer) ReleaseAll() {
	for node, mesh := range r.meshes {
		mesh.delete()
		delete(r.meshes, node)
	}
}

// Destroy frees all GPU resources
func (r *Renderer) Destroy() {
	r.ReleaseAll()
	r.quad.delete()
	r.shaded.delete()
	r.flat.delete()
}
