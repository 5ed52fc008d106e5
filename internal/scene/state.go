// Package scene holds the per-frame state shared by input handling and
// rendering, and derives the draw list from it.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/TrevorMickelson/CS-330/internal/camera"
)

const (
	WindowWidth  = 800
	WindowHeight = 600

	// projection
	Near float32 = 0.1
	Far  float32 = 100

	// LampSpeed is the lamp orbit speed in degrees per second.
	LampSpeed float32 = 45
)

// WrapMode is the sampling behaviour outside the [0,1] UV range.
type WrapMode int

const (
	WrapRepeat WrapMode = iota
	WrapMirroredRepeat
	WrapClampToEdge
	WrapClampToBorder
)

var wrapNames = [...]string{
	WrapRepeat:         "REPEAT",
	WrapMirroredRepeat: "MIRRORED REPEAT",
	WrapClampToEdge:    "CLAMP TO EDGE",
	WrapClampToBorder:  "CLAMP TO BORDER",
}

func (m WrapMode) String() string {
	if !m.Valid() {
		return "UNKNOWN"
	}
	return wrapNames[m]
}

// Valid reports whether m is one of the four wrap modes.
func (m WrapMode) Valid() bool {
	return m >= WrapRepeat && m <= WrapClampToBorder
}

// State is everything input handling mutates and rendering reads. It is
// owned by the render loop's goroutine and never shared across threads.
type State struct {
	Camera *camera.Camera

	// mouse
	LastX      float64
	LastY      float64
	FirstMouse bool

	// timing, in seconds
	DeltaTime float32
	LastFrame float64

	ObjectColor   mgl32.Vec3
	LightColor    mgl32.Vec3
	LightPosition mgl32.Vec3

	UVScale mgl32.Vec2
	Wrap    WrapMode

	LampOrbiting bool
	In3D         bool

	// Quit is set when the user asked to close the window.
	Quit bool
}

// NewState returns the state the demo starts with.
func NewState() *State {
	return &State{
		Camera:        camera.New(mgl32.Vec3{0, 0, 7}),
		LastX:         WindowWidth / 2,
		LastY:         WindowHeight / 2,
		FirstMouse:    true,
		ObjectColor:   mgl32.Vec3{1, 0.2, 0},
		LightColor:    mgl32.Vec3{2, 2, 2},
		LightPosition: mgl32.Vec3{2, 1, 3},
		UVScale:       mgl32.Vec2{5, 5},
		Wrap:          WrapRepeat,
		LampOrbiting:  true,
		In3D:          true,
	}
}

// Tick records the frame time now (seconds) and updates DeltaTime.
func (s *State) Tick(now float64) {
	s.DeltaTime = float32(now - s.LastFrame)
	s.LastFrame = now
}

// Advance moves the lamp along its orbit by one frame. The rotation is
// applied to the current position, so error accumulates over long runs.
func (s *State) Advance() {
	if !s.LampOrbiting {
		return
	}
	angle := mgl32.DegToRad(LampSpeed) * s.DeltaTime
	p := mgl32.HomogRotate3DY(angle).Mul4x1(s.LightPosition.Vec4(1))
	s.LightPosition = p.Vec3()
}

// Projection returns the perspective matrix for the camera's current zoom.
func (s *State) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(s.Camera.Zoom), float32(WindowWidth)/WindowHeight, Near, Far)
}
