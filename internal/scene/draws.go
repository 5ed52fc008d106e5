package scene

import "github.com/go-gl/mathgl/mgl32"

// MeshID selects one of the uploaded meshes.
type MeshID int

const (
	MeshBox MeshID = iota
	MeshCylinder
	MeshSphere
)

// ProgramID selects one of the linked shader programs.
type ProgramID int

const (
	ProgramCube ProgramID = iota // lit and textured
	ProgramLamp                  // solid white
)

// Draw is one draw call of a frame.
type Draw struct {
	Name     string
	Mesh     MeshID
	Program  ProgramID
	Model    mgl32.Mat4
	Textured bool

	LightColor    mgl32.Vec3
	LightPosition mgl32.Vec3
}

var (
	xAxis = mgl32.Vec3{1, 0, 0}
	yAxis = mgl32.Vec3{0, 1, 0}
	zAxis = mgl32.Vec3{0, 0, 1}
)

// lamp marker
var (
	markerPosition = mgl32.Vec3{0, 1.5, 1}
	markerColor    = mgl32.Vec3{0, 1, 0}
	markerScale    = float32(0.05)
)

// Draws returns the frame's draw calls in submission order. In 2D mode the
// flat-able objects lose their depth (z scale 0, or 0.01 for the sphere).
func (s *State) Draws() []Draw {
	lit := func(d Draw) Draw {
		d.Program = ProgramCube
		d.LightColor = s.LightColor
		d.LightPosition = s.LightPosition
		return d
	}

	depth := float32(1)
	sphereDepth := float32(1.5)
	secondAxis := yAxis
	if !s.In3D {
		depth, sphereDepth, secondAxis = 0, 0.01, zAxis
	}

	return []Draw{
		lit(Draw{
			Name:     "rectangle",
			Mesh:     MeshBox,
			Model:    model(mgl32.Vec3{0, 0, 0}, 90, xAxis, mgl32.Vec3{4.5, 2, 0.5}),
			Textured: true,
		}),
		lit(Draw{
			Name:     "second rectangle",
			Mesh:     MeshBox,
			Model:    model(mgl32.Vec3{-0.15, 1, 0}, 45, secondAxis, mgl32.Vec3{2, 0.75, depth}),
			Textured: true,
		}),
		lit(Draw{
			Name:  "cylinder",
			Mesh:  MeshCylinder,
			Model: model(mgl32.Vec3{1.5, 0.85, 0}, -90, xAxis, mgl32.Vec3{1, 2.5, depth}),
		}),
		lit(Draw{
			Name:  "sphere",
			Mesh:  MeshSphere,
			Model: model(mgl32.Vec3{-1.5, 1, 0}, 0, yAxis, mgl32.Vec3{1.5, 1.5, sphereDepth}),
		}),
		{
			Name:    "lamp",
			Mesh:    MeshCylinder,
			Program: ProgramLamp,
			Model: mgl32.Translate3D(markerPosition.Elem()).
				Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(LampSpeed)*s.DeltaTime, yAxis)).
				Mul4(mgl32.Scale3D(markerScale, markerScale, markerScale)),
			LightColor:    markerColor,
			LightPosition: markerPosition,
		},
	}
}

// model is translate * rotate(degrees about axis) * scale.
func model(position mgl32.Vec3, degrees float32, axis, scale mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(position.Elem()).
		Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(degrees), axis)).
		Mul4(mgl32.Scale3D(scale.Elem()))
}
