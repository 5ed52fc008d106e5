package gfx

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/TrevorMickelson/CS-330/internal/geometry"
)

const bytesFloat32 = 4 // a float32 is 4 bytes

// Mesh is a vertex array object, its buffer and the number of vertices.
type Mesh struct {
	VAO   uint32
	VBO   uint32
	Count int32
}

// NewMesh uploads shape into a new VBO and records its attribute layout in
// a new VAO.
//
// https://www.songho.ca/opengl/gl_vbo.html#create
func NewMesh(shape geometry.Shape) Mesh {

	var m Mesh
	m.Count = int32(shape.Count())

	// create VAO and VBO
	gl.GenVertexArrays(1, &m.VAO)
	gl.GenBuffers(1, &m.VBO)
	gl.BindVertexArray(m.VAO)

	// copy vertex data to VBO
	gl.BindBuffer(gl.ARRAY_BUFFER, m.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(shape.Data)*bytesFloat32, gl.Ptr(shape.Data), gl.STATIC_DRAW)

	// interleaved attributes share one stride
	stride := int32(shape.Stride * bytesFloat32)
	for _, a := range shape.Attribs {
		gl.VertexAttribPointer(a.Location, a.Size, gl.FLOAT, false, stride, gl.PtrOffset(a.Offset*bytesFloat32))
		gl.EnableVertexAttribArray(a.Location)
	}

	// unbind, the VAO keeps the buffer binding
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return m

}

// Draw issues the mesh as a triangle list with the bound program.
func (m Mesh) Draw() {
	gl.BindVertexArray(m.VAO)
	gl.DrawArrays(gl.TRIANGLES, 0, m.Count)
}

// Delete releases the VAO and VBO.
func (m Mesh) Delete() {
	gl.DeleteVertexArrays(1, &m.VAO)
	gl.DeleteBuffers(1, &m.VBO)
}
