package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/TrevorMickelson/CS-330/internal/gfx"
	"github.com/TrevorMickelson/CS-330/internal/input"
	"github.com/TrevorMickelson/CS-330/internal/scene"
	"github.com/TrevorMickelson/CS-330/internal/texture"
)

const windowTitle = "Tutorial 6.2"

var textureFlag = flag.String("texture", "resources/textures/smiley.png", "image file mapped onto the rectangles")

func init() {
	// glfw must be on main thread
	runtime.LockOSThread()
}

func main() {
	flag.Parse()
	if err := run(*textureFlag); err != nil {
		log.Fatalln(err)
	}
}

// windowKeys reports key state straight from the window.
type windowKeys struct {
	window *glfw.Window
}

func (w windowKeys) Pressed(k input.Key) bool {
	return w.window.GetKey(glfw.Key(k)) == glfw.Press
}

func run(texturePath string) error {

	// decode first, nothing to release if the image is bad
	img, err := texture.Load(texturePath)
	if err != nil {
		return fmt.Errorf("failed to load texture %s: %w", texturePath, err)
	}

	// initalize glfw
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	// use OpenGL v4.1 core
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	// create window handle
	window, err := glfw.CreateWindow(scene.WindowWidth, scene.WindowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to create GLFW window: %w", err)
	}
	defer window.Destroy()
	window.MakeContextCurrent()

	// initialize OpenGL
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	fmt.Println("OpenGL version", gl.GoStr(gl.GetString(gl.VERSION)))

	// viewport follows the framebuffer
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
	})

	// capture the mouse
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	renderer, err := gfx.NewRenderer(img)
	if err != nil {
		return err
	}
	defer renderer.Delete()

	state := scene.NewState()
	router := input.NewRouter(state, windowKeys{window}, renderer.Texture(), os.Stdout)

	window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		router.CursorPos(x, y)
	})
	window.SetScrollCallback(func(_ *glfw.Window, dx, dy float64) {
		router.Scroll(dx, dy)
	})
	window.SetMouseButtonCallback(func(_ *glfw.Window, b glfw.MouseButton, a glfw.Action, _ glfw.ModifierKey) {
		router.MouseButton(input.MouseButton(b), input.Action(a))
	})

	// game loop
	for !window.ShouldClose() {

		state.Tick(glfw.GetTime())

		// keyboard
		router.Process(state.DeltaTime)
		if state.Quit {
			window.SetShouldClose(true)
		}

		// move the lamp, then draw into buffer
		state.Advance()
		renderer.Draw(state)

		// render buffer to screen
		window.SwapBuffers()

		// glfw events?
		glfw.PollEvents()

	}

	return nil

}
