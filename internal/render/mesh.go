package render

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// glMesh is an uploaded vertex buffer: interleaved position+normal,
// 6 floats per vertex.
type glMesh struct {
	vao   uint32
	vbo   uint32
	count int32
}

const vertexStride = 6 * 4

func uploadMesh(data []float32) *glMesh {
	mesh := &glMesh{count: int32(len(data) / 6)}

	gl.GenVertexArrays(1, &mesh.vao)
	gl.BindVertexArray(mesh.vao)

	gl.GenBuffers(1, &mesh.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, mesh.vbo)
	if len(data) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	}

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexStride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, vertexStride, 3*4)

	gl.BindVertexArray(0)
	return mesh
}

func (m *glMesh) draw() {
	if m.count == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	gl.BindVertexArray(0)
}

func (m *glMesh) delete() {
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteVertexArrays(1, &m.vao)
}
