package gfx

import (
	"embed"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

//go:embed shaders/*.vert shaders/*.frag
var shaderFiles embed.FS

// Program is a linked vertex + fragment shader pair.
type Program struct {
	ID uint32
}

// CubeProgram links the lit, textured program.
func CubeProgram() (Program, error) {
	return programFromFiles("shaders/cube.vert", "shaders/cube.frag")
}

// LampProgram links the solid white program.
func LampProgram() (Program, error) {
	return programFromFiles("shaders/lamp.vert", "shaders/lamp.frag")
}

func programFromFiles(vertexPath, fragmentPath string) (Program, error) {
	vertexSource, err := shaderFiles.ReadFile(vertexPath)
	if err != nil {
		return Program{}, err
	}
	fragmentSource, err := shaderFiles.ReadFile(fragmentPath)
	if err != nil {
		return Program{}, err
	}
	return NewProgram(string(vertexSource), string(fragmentSource))
}

// NewProgram compiles both stages and links them. On failure nothing is
// left allocated and the returned program has ID 0.
func NewProgram(vertexShaderSource, fragmentShaderSource string) (Program, error) {

	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return Program{}, err
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return Program{}, err
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()

	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {

		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		gl.DeleteProgram(program)
		return Program{}, fmt.Errorf("failed to link program: %v", strings.TrimRight(log, "\x00"))

	}

	// shaders are flagged for deletion and go away with the program
	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)

	return Program{ID: program}, nil

}

var stageNames = map[uint32]string{
	gl.VERTEX_SHADER:   "vertex",
	gl.FRAGMENT_SHADER: "fragment",
}

func compileShader(source string, shaderType uint32) (uint32, error) {

	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {

		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile %s shader: %v", stageNames[shaderType], strings.TrimRight(log, "\x00"))

	}

	return shader, nil

}

// Use binds the program for the following draw calls.
func (p Program) Use() {
	gl.UseProgram(p.ID)
}

// Delete releases the program.
func (p Program) Delete() {
	gl.DeleteProgram(p.ID)
}

// uniform looks a uniform up by name; names the program does not use
// resolve to -1, which gl.Uniform* ignores.
func (p Program) uniform(name string) int32 {
	return gl.GetUniformLocation(p.ID, gl.Str(name+"\x00"))
}

// SetMat4 sets a mat4 uniform on the program in use.
func (p Program) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.uniform(name), 1, false, &m[0])
}

// SetVec3 sets a vec3 uniform on the program in use.
func (p Program) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3f(p.uniform(name), v[0], v[1], v[2])
}

// SetVec2 sets a vec2 uniform on the program in use.
func (p Program) SetVec2(name string, v mgl32.Vec2) {
	gl.Uniform2f(p.uniform(name), v[0], v[1])
}

// SetInt sets an int or sampler uniform on the program in use.
func (p Program) SetInt(name string, i int32) {
	gl.Uniform1i(p.uniform(name), i)
}
