// Package input maps keyboard state and mouse events onto the shared scene
// state. The key bindings are declared once, as data, so the router can be
// driven by a fake key source in tests.
package input

import (
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/TrevorMickelson/CS-330/internal/camera"
	"github.com/TrevorMickelson/CS-330/internal/scene"
)

// UVStep is how much one frame of a bracket key changes the UV scale.
const UVStep float32 = 0.1

// KeySource reports whether a key is currently held down.
type KeySource interface {
	Pressed(Key) bool
}

// WrapSetter applies a texture wrap mode.
type WrapSetter interface {
	SetWrap(scene.WrapMode)
}

// binding fires Do when Key is held and When (if set) allows it.
type binding struct {
	Key  Key
	When func(*scene.State) bool
	Do   func(r *Router, dt float32)
}

// group is an ordered list of bindings. In an exclusive group at most the
// first binding that fires runs each frame.
type group struct {
	exclusive bool
	bindings  []binding
}

// Router owns the key bindings and mouse callbacks of the window.
type Router struct {
	state  *scene.State
	keys   KeySource
	wrap   WrapSetter
	out    io.Writer
	groups []group
}

// NewRouter wires keys and the texture to state. Messages go to out.
func NewRouter(state *scene.State, keys KeySource, wrap WrapSetter, out io.Writer) *Router {
	r := &Router{state: state, keys: keys, wrap: wrap, out: out}
	r.groups = []group{
		{bindings: []binding{
			{Key: KeyEscape, Do: func(r *Router, _ float32) { r.state.Quit = true }},
		}},
		{bindings: []binding{
			move(KeyW, camera.Forward),
			move(KeyS, camera.Backward),
			move(KeyA, camera.Left),
			move(KeyD, camera.Right),
			move(KeyQ, camera.Up),
			move(KeyE, camera.Down),
		}},
		{bindings: []binding{
			{Key: KeyJ, Do: func(r *Router, _ float32) { r.state.In3D = false }},
			{Key: KeyM, Do: func(r *Router, _ float32) { r.state.In3D = true }},
		}},
		{exclusive: true, bindings: []binding{
			wrapTo(Key1, scene.WrapRepeat),
			wrapTo(Key2, scene.WrapMirroredRepeat),
			wrapTo(Key3, scene.WrapClampToEdge),
			wrapTo(Key4, scene.WrapClampToBorder),
		}},
		{exclusive: true, bindings: []binding{
			{Key: KeyRightBracket, Do: func(r *Router, _ float32) { r.scaleUV(UVStep) }},
			{Key: KeyLeftBracket, Do: func(r *Router, _ float32) { r.scaleUV(-UVStep) }},
		}},
		{exclusive: true, bindings: []binding{
			{
				Key:  KeyL,
				When: func(s *scene.State) bool { return !s.LampOrbiting },
				Do:   func(r *Router, _ float32) { r.state.LampOrbiting = true },
			},
			{
				Key:  KeyK,
				When: func(s *scene.State) bool { return s.LampOrbiting },
				Do:   func(r *Router, _ float32) { r.state.LampOrbiting = false },
			},
		}},
	}
	return r
}

func move(k Key, dir camera.Direction) binding {
	return binding{Key: k, Do: func(r *Router, dt float32) {
		r.state.Camera.ProcessKeyboard(dir, dt)
	}}
}

func wrapTo(k Key, mode scene.WrapMode) binding {
	return binding{
		Key:  k,
		When: func(s *scene.State) bool { return s.Wrap != mode },
		Do: func(r *Router, _ float32) {
			r.wrap.SetWrap(mode)
			r.state.Wrap = mode
			fmt.Fprintf(r.out, "Current Texture Wrapping Mode: %s\n", mode)
		},
	}
}

func (r *Router) scaleUV(step float32) {
	r.state.UVScale = r.state.UVScale.Add(mgl32.Vec2{step, step})
	fmt.Fprintf(r.out, "Current scale (%.6g, %.6g)\n", r.state.UVScale[0], r.state.UVScale[1])
}

// Process polls every bound key once; dt is the frame time in seconds.
func (r *Router) Process(dt float32) {
	for _, g := range r.groups {
		for _, b := range g.bindings {
			if !r.keys.Pressed(b.Key) {
				continue
			}
			if b.When != nil && !b.When(r.state) {
				continue
			}
			b.Do(r, dt)
			if g.exclusive {
				break
			}
		}
	}
}

// CursorPos turns the camera by the cursor's movement since the last call.
// The first call only records the position so the view does not jump.
func (r *Router) CursorPos(x, y float64) {
	s := r.state
	if s.FirstMouse {
		s.LastX, s.LastY = x, y
		s.FirstMouse = false
	}

	// window y grows downwards
	dx := x - s.LastX
	dy := s.LastY - y
	s.LastX, s.LastY = x, y

	s.Camera.ProcessMouseMovement(float32(dx), float32(dy))
}

// Scroll zooms the camera by the vertical wheel offset.
func (r *Router) Scroll(_, dy float64) {
	r.state.Camera.ProcessMouseScroll(float32(dy))
}

// MouseButton logs presses and releases of the three main buttons.
func (r *Router) MouseButton(button MouseButton, action Action) {
	var name string
	switch button {
	case MouseButtonLeft:
		name = "Left"
	case MouseButtonMiddle:
		name = "Middle"
	case MouseButtonRight:
		name = "Right"
	default:
		fmt.Fprintln(r.out, "Unhandled mouse button event")
		return
	}

	verb := "released"
	if action == Press {
		verb = "pressed"
	}
	fmt.Fprintf(r.out, "%s mouse button %s\n", name, verb)
}
