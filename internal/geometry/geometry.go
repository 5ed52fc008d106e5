// Package geometry builds the flat, non-indexed vertex lists for the demo
// shapes. Each shape is uploaded as-is and drawn as a triangle list.
package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	PositionSize = 3 // x,y,z
	ColorSize    = 4 // r,g,b,a
	TexCoordSize = 2 // u,v

	// Stride is the number of floats per vertex for every shape.
	Stride = PositionSize + ColorSize

	VerticesPerFace = 6 // two triangles per quad, no indices
	BoxFaces        = 6
)

// Scene defaults for the round shapes.
const (
	Segments         = 100
	Radius   float32 = 0.5
	Height   float32 = 1
)

// Attrib describes one vertex attribute pointer, in floats.
type Attrib struct {
	Location uint32
	Size     int32
	Offset   int
}

// Shape is an interleaved vertex buffer with its attribute layout.
type Shape struct {
	Name    string
	Data    []float32
	Stride  int
	Attribs []Attrib
}

// Count returns the number of vertices in the shape.
func (s Shape) Count() int {
	if s.Stride == 0 {
		return 0
	}
	return len(s.Data) / s.Stride
}

// colorAttribs is position + RGBA colour.
var colorAttribs = []Attrib{
	{Location: 0, Size: PositionSize, Offset: 0},
	{Location: 1, Size: ColorSize, Offset: PositionSize},
}

// boxAttribs additionally exposes location 2 at float 6 as a texture
// coordinate, overlapping the colour's alpha and the next vertex's x. The
// textured program reads location 1 as a normal, so the box is shaded with
// its face colours as normals; this is the demo's look.
var boxAttribs = []Attrib{
	{Location: 0, Size: PositionSize, Offset: 0},
	{Location: 1, Size: ColorSize, Offset: PositionSize},
	{Location: 2, Size: TexCoordSize, Offset: PositionSize + ColorSize - 1},
}

var (
	red     = mgl32.Vec4{1, 0, 0, 1}
	green   = mgl32.Vec4{0, 1, 0, 1}
	blue    = mgl32.Vec4{0, 0, 1, 1}
	yellow  = mgl32.Vec4{1, 1, 0, 1}
	magenta = mgl32.Vec4{1, 0, 1, 1}
	grey    = mgl32.Vec4{0.5, 0.5, 0.5, 1}
)

// unit cube
//
//	  v6----- v5
//	 /|      /|
//	v1------v0|
//	| |     | |
//	| v7----|-v4
//	|/      |/
//	v2------v3
//
// every face lists six corners: top-left, top-right, bottom-right,
// bottom-right, bottom-left, top-left (as seen from outside the face)
var boxFaces = []struct {
	corners [VerticesPerFace]mgl32.Vec3
	color   mgl32.Vec4
}{
	{ // front
		[VerticesPerFace]mgl32.Vec3{{-.5, .5, .5}, {.5, .5, .5}, {.5, -.5, .5}, {.5, -.5, .5}, {-.5, -.5, .5}, {-.5, .5, .5}},
		red,
	},
	{ // right
		[VerticesPerFace]mgl32.Vec3{{.5, .5, .5}, {.5, .5, -.5}, {.5, -.5, -.5}, {.5, -.5, -.5}, {.5, -.5, .5}, {.5, .5, .5}},
		green,
	},
	{ // back
		[VerticesPerFace]mgl32.Vec3{{-.5, .5, -.5}, {.5, .5, -.5}, {.5, -.5, -.5}, {.5, -.5, -.5}, {-.5, -.5, -.5}, {-.5, .5, -.5}},
		blue,
	},
	{ // left
		[VerticesPerFace]mgl32.Vec3{{-.5, .5, -.5}, {-.5, .5, .5}, {-.5, -.5, .5}, {-.5, -.5, .5}, {-.5, -.5, -.5}, {-.5, .5, -.5}},
		yellow,
	},
	{ // top
		[VerticesPerFace]mgl32.Vec3{{-.5, .5, -.5}, {.5, .5, -.5}, {.5, .5, .5}, {.5, .5, .5}, {-.5, .5, .5}, {-.5, .5, -.5}},
		magenta,
	},
	{ // bottom
		[VerticesPerFace]mgl32.Vec3{{-.5, -.5, -.5}, {.5, -.5, -.5}, {.5, -.5, .5}, {.5, -.5, .5}, {-.5, -.5, .5}, {-.5, -.5, -.5}},
		yellow,
	},
}

// Box returns a unit cube centred on the origin, one colour per face.
func Box() Shape {
	data := make([]float32, 0, BoxFaces*VerticesPerFace*Stride)
	for _, f := range boxFaces {
		for _, p := range f.corners {
			data = appendVertex(data, p, f.color)
		}
	}
	return Shape{Name: "box", Data: data, Stride: Stride, Attribs: boxAttribs}
}

// Cylinder returns segments+1 top/bottom rim pairs around the Y axis.
// The pairs are in strip order and carry no caps.
func Cylinder(segments int, radius, height float32) Shape {
	data := make([]float32, 0, 2*(segments+1)*Stride)
	for i := 0; i <= segments; i++ {
		angle := mgl32.DegToRad(float32(i) / float32(segments) * 360)
		x := math32.Cos(angle) * radius
		z := math32.Sin(angle) * radius

		data = appendVertex(data, mgl32.Vec3{x, 0.5 * height, z}, grey)  // top
		data = appendVertex(data, mgl32.Vec3{x, -0.5 * height, z}, grey) // bottom
	}
	return Shape{Name: "cylinder", Data: data, Stride: Stride, Attribs: colorAttribs}
}

// Sphere returns a (segments+1)^2 latitude/longitude grid of points on a
// sphere of the given radius, row by row from the north pole.
func Sphere(segments int, radius float32) Shape {
	data := make([]float32, 0, (segments+1)*(segments+1)*Stride)
	for lat := 0; lat <= segments; lat++ {
		theta := mgl32.DegToRad(float32(lat) / float32(segments) * 180)
		sinTheta, cosTheta := math32.Sin(theta), math32.Cos(theta)

		for lon := 0; lon <= segments; lon++ {
			phi := mgl32.DegToRad(float32(lon) / float32(segments) * 360)
			sinPhi, cosPhi := math32.Sin(phi), math32.Cos(phi)

			p := mgl32.Vec3{cosPhi * sinTheta, cosTheta, sinPhi * sinTheta}
			data = appendVertex(data, p.Mul(radius), grey)
		}
	}
	return Shape{Name: "sphere", Data: data, Stride: Stride, Attribs: colorAttribs}
}

func appendVertex(data []float32, p mgl32.Vec3, c mgl32.Vec4) []float32 {
	return append(data, p[0], p[1], p[2], c[0], c[1], c[2], c[3])
}
