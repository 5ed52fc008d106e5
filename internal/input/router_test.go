package input

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/TrevorMickelson/CS-330/internal/camera"
	"github.com/TrevorMickelson/CS-330/internal/scene"
)

// heldKeys is a KeySource backed by a set.
type heldKeys map[Key]bool

func (h heldKeys) Pressed(k Key) bool { return h[k] }

// wrapLog records every wrap mode applied to the texture.
type wrapLog []scene.WrapMode

func (w *wrapLog) SetWrap(m scene.WrapMode) { *w = append(*w, m) }

type fixture struct {
	state *scene.State
	keys  heldKeys
	wraps *wrapLog
	out   *bytes.Buffer
	r     *Router
}

func newFixture() *fixture {
	f := &fixture{
		state: scene.NewState(),
		keys:  heldKeys{},
		wraps: &wrapLog{},
		out:   &bytes.Buffer{},
	}
	f.r = NewRouter(f.state, f.keys, f.wraps, f.out)
	return f
}

// frame holds keys for one Process call.
func (f *fixture) frame(dt float32, keys ...Key) {
	for k := range f.keys {
		delete(f.keys, k)
	}
	for _, k := range keys {
		f.keys[k] = true
	}
	f.r.Process(dt)
}

func (f *fixture) lines() []string {
	s := strings.TrimRight(f.out.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func TestEscapeQuits(t *testing.T) {
	f := newFixture()
	f.frame(0.016)
	if f.state.Quit {
		t.Fatal("Quit set without escape")
	}
	f.frame(0.016, KeyEscape)
	if !f.state.Quit {
		t.Fatal("Quit not set after escape")
	}
}

func TestMovementKeys(t *testing.T) {
	tests := []struct {
		key Key
		dir camera.Direction
	}{
		{KeyW, camera.Forward},
		{KeyS, camera.Backward},
		{KeyA, camera.Left},
		{KeyD, camera.Right},
		{KeyQ, camera.Up},
		{KeyE, camera.Down},
	}
	for _, tt := range tests {
		f := newFixture()
		want := camera.New(f.state.Camera.Position)
		want.ProcessKeyboard(tt.dir, 0.5)

		f.frame(0.5, tt.key)
		if f.state.Camera.Position.Sub(want.Position).Len() > 1e-5 {
			t.Errorf("key %d: camera at %v, want %v", tt.key, f.state.Camera.Position, want.Position)
		}
	}
}

func TestDisplayMode(t *testing.T) {
	f := newFixture()
	f.frame(0, KeyJ)
	if f.state.In3D {
		t.Error("J did not switch to 2D")
	}
	f.frame(0)
	if f.state.In3D {
		t.Error("2D mode did not persist")
	}
	f.frame(0, KeyM)
	if !f.state.In3D {
		t.Error("M did not switch to 3D")
	}
	f.frame(0, KeyJ, KeyM)
	if !f.state.In3D {
		t.Error("M should win when J and M are both held")
	}
}

func TestWrapKeys(t *testing.T) {
	f := newFixture()

	f.frame(0, Key1) // already repeat
	if len(*f.wraps) != 0 || len(f.lines()) != 0 {
		t.Fatalf("redundant wrap change applied: %v %q", *f.wraps, f.lines())
	}

	f.frame(0, Key2)
	f.frame(0, Key2)
	f.frame(0, Key3)
	f.frame(0, Key4)
	f.frame(0, Key1)

	want := []scene.WrapMode{scene.WrapMirroredRepeat, scene.WrapClampToEdge, scene.WrapClampToBorder, scene.WrapRepeat}
	if len(*f.wraps) != len(want) {
		t.Fatalf("applied %v, want %v", *f.wraps, want)
	}
	for i := range want {
		if (*f.wraps)[i] != want[i] {
			t.Errorf("change %d = %v, want %v", i, (*f.wraps)[i], want[i])
		}
	}

	wantLines := []string{
		"Current Texture Wrapping Mode: MIRRORED REPEAT",
		"Current Texture Wrapping Mode: CLAMP TO EDGE",
		"Current Texture Wrapping Mode: CLAMP TO BORDER",
		"Current Texture Wrapping Mode: REPEAT",
	}
	got := f.lines()
	if strings.Join(got, "\n") != strings.Join(wantLines, "\n") {
		t.Errorf("output = %q, want %q", got, wantLines)
	}
}

func TestWrapKeysFirstHeldWins(t *testing.T) {
	f := newFixture()
	f.frame(0, Key3, Key4)
	if f.state.Wrap != scene.WrapClampToEdge || len(*f.wraps) != 1 {
		t.Fatalf("Wrap = %v after %v, want a single CLAMP TO EDGE", f.state.Wrap, *f.wraps)
	}
	// 3 no longer changes anything, so 4 gets its turn
	f.frame(0, Key3, Key4)
	if f.state.Wrap != scene.WrapClampToBorder {
		t.Errorf("Wrap = %v, want CLAMP TO BORDER", f.state.Wrap)
	}
}

func TestWrapModeMatchesLastDistinctKey(t *testing.T) {
	keys := []Key{Key1, Key2, Key3, Key4}
	modes := map[Key]scene.WrapMode{
		Key1: scene.WrapRepeat,
		Key2: scene.WrapMirroredRepeat,
		Key3: scene.WrapClampToEdge,
		Key4: scene.WrapClampToBorder,
	}
	rng := rand.New(rand.NewSource(7))
	f := newFixture()
	for i := 0; i < 500; i++ {
		k := keys[rng.Intn(len(keys))]
		f.frame(0, k)
		if !f.state.Wrap.Valid() {
			t.Fatalf("step %d: invalid wrap mode %d", i, f.state.Wrap)
		}
		if f.state.Wrap != modes[k] {
			t.Fatalf("step %d: Wrap = %v, want %v", i, f.state.Wrap, modes[k])
		}
	}
}

func TestUVScale(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	f := newFixture()
	start := f.state.UVScale

	up, down := 0, 0
	for i := 0; i < 300; i++ {
		if rng.Intn(3) == 0 {
			f.frame(0, KeyRightBracket)
			up++
		} else {
			f.frame(0, KeyLeftBracket)
			down++
		}
	}

	want := start[0] + UVStep*float32(up-down)
	for i := 0; i < 2; i++ {
		if math32.Abs(f.state.UVScale[i]-want) > 1e-3 {
			t.Errorf("UVScale[%d] = %v, want %v", i, f.state.UVScale[i], want)
		}
	}
	if want >= 0 {
		t.Fatalf("expected the scale to go negative, want = %v", want)
	}
	if n := len(f.lines()); n != 300 {
		t.Errorf("printed %d lines, want 300", n)
	}
}

func TestUVScaleBothBracketsIncrement(t *testing.T) {
	f := newFixture()
	f.frame(0, KeyLeftBracket, KeyRightBracket)
	if f.state.UVScale.Sub(mgl32.Vec2{5.1, 5.1}).Len() > 1e-5 {
		t.Errorf("UVScale = %v, want (5.1, 5.1)", f.state.UVScale)
	}
	if got := f.lines(); len(got) != 1 || !strings.HasPrefix(got[0], "Current scale (5.1") {
		t.Errorf("output = %q", got)
	}
}

func TestLampToggle(t *testing.T) {
	f := newFixture()
	f.frame(0, KeyL)
	if !f.state.LampOrbiting {
		t.Fatal("L paused the lamp")
	}
	f.frame(0, KeyK)
	if f.state.LampOrbiting {
		t.Fatal("K did not pause the lamp")
	}
	f.frame(0, KeyK)
	if f.state.LampOrbiting {
		t.Fatal("holding K resumed the lamp")
	}
	f.frame(0, KeyL, KeyK)
	if !f.state.LampOrbiting {
		t.Fatal("L did not resume the lamp")
	}
	f.frame(0, KeyL, KeyK)
	if f.state.LampOrbiting {
		t.Fatal("K should pause once L no longer applies")
	}
}

func TestCursorPos(t *testing.T) {
	f := newFixture()
	yaw, pitch := f.state.Camera.Yaw, f.state.Camera.Pitch

	// first move only latches the position
	f.r.CursorPos(1000, 1000)
	if f.state.Camera.Yaw != yaw || f.state.Camera.Pitch != pitch {
		t.Fatalf("first move turned the camera to yaw %v pitch %v", f.state.Camera.Yaw, f.state.Camera.Pitch)
	}
	if f.state.FirstMouse {
		t.Fatal("FirstMouse still set")
	}

	// right and up on screen: yaw grows, pitch grows
	f.r.CursorPos(1010, 980)
	if got, want := f.state.Camera.Yaw, yaw+10*camera.DefaultSensitivity; math32.Abs(got-want) > 1e-4 {
		t.Errorf("Yaw = %v, want %v", got, want)
	}
	if got, want := f.state.Camera.Pitch, pitch+20*camera.DefaultSensitivity; math32.Abs(got-want) > 1e-4 {
		t.Errorf("Pitch = %v, want %v", got, want)
	}
	if f.state.LastX != 1010 || f.state.LastY != 980 {
		t.Errorf("last position = (%v, %v), want (1010, 980)", f.state.LastX, f.state.LastY)
	}
}

func TestScroll(t *testing.T) {
	f := newFixture()
	f.r.Scroll(3, 5)
	if f.state.Camera.Zoom != camera.DefaultZoom-5 {
		t.Errorf("Zoom = %v, want %v", f.state.Camera.Zoom, camera.DefaultZoom-5)
	}
}

func TestMouseButton(t *testing.T) {
	f := newFixture()
	f.r.MouseButton(MouseButtonLeft, Press)
	f.r.MouseButton(MouseButtonLeft, Release)
	f.r.MouseButton(MouseButtonMiddle, Press)
	f.r.MouseButton(MouseButtonMiddle, Release)
	f.r.MouseButton(MouseButtonRight, Press)
	f.r.MouseButton(MouseButtonRight, Release)
	f.r.MouseButton(MouseButton(4), Press)

	want := []string{
		"Left mouse button pressed",
		"Left mouse button released",
		"Middle mouse button pressed",
		"Middle mouse button released",
		"Right mouse button pressed",
		"Right mouse button released",
		"Unhandled mouse button event",
	}
	if got := f.lines(); strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestUVScalePrintsRounded(t *testing.T) {
	f := newFixture()
	for i := 0; i < 3; i++ {
		f.frame(0, KeyRightBracket)
	}
	// 5 + 3*0.1 accumulates float32 error
	if got := f.lines(); len(got) != 3 || got[2] != "Current scale (5.3, 5.3)" {
		t.Errorf("output = %q, want last line %q", got, "Current scale (5.3, 5.3)")
	}
}
