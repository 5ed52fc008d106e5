// Package gfx owns every OpenGL object of the demo: meshes, shader
// programs, the texture, and the per-frame draw submission.
//
// All functions must run on the thread that holds the GL context.
package gfx

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/TrevorMickelson/CS-330/internal/geometry"
	"github.com/TrevorMickelson/CS-330/internal/scene"
	"github.com/TrevorMickelson/CS-330/internal/texture"
)

// textureUnit is the unit uTexture samples from.
const textureUnit = 0

// Renderer holds the GPU resources of the scene and draws frames from a
// scene.State.
type Renderer struct {
	meshes   map[scene.MeshID]Mesh
	programs map[scene.ProgramID]Program
	texture  *Texture
}

// NewRenderer uploads the meshes, links both programs and uploads img.
// Whatever was created is released again if a later step fails.
func NewRenderer(img *texture.Image) (r *Renderer, err error) {

	r = &Renderer{
		meshes:   make(map[scene.MeshID]Mesh),
		programs: make(map[scene.ProgramID]Program),
	}
	defer func() {
		if err != nil {
			r.Delete()
			r = nil
		}
	}()

	// create the meshes
	r.meshes[scene.MeshBox] = NewMesh(geometry.Box())
	r.meshes[scene.MeshCylinder] = NewMesh(geometry.Cylinder(geometry.Segments, geometry.Radius, geometry.Height))
	r.meshes[scene.MeshSphere] = NewMesh(geometry.Sphere(geometry.Segments, geometry.Radius))

	// create the shader programs
	cube, err := CubeProgram()
	if err != nil {
		return r, fmt.Errorf("cube program: %w", err)
	}
	r.programs[scene.ProgramCube] = cube

	lamp, err := LampProgram()
	if err != nil {
		return r, fmt.Errorf("lamp program: %w", err)
	}
	r.programs[scene.ProgramLamp] = lamp

	// load texture
	r.texture, err = NewTexture(img)
	if err != nil {
		return r, err
	}

	// uTexture samples texture unit 0, set once
	cube.Use()
	cube.SetInt("uTexture", textureUnit)
	gl.UseProgram(0)

	// cleared background color = black
	gl.ClearColor(0, 0, 0, 1)

	return r, CheckError()

}

// Texture returns the scene texture, for wrap mode changes.
func (r *Renderer) Texture() *Texture {
	return r.texture
}

// Draw clears the framebuffer and submits every draw of the frame.
func (r *Renderer) Draw(s *scene.State) {

	// do not render pixels hidden behind nearer ones
	gl.Enable(gl.DEPTH_TEST)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	view := s.Camera.ViewMatrix()
	projection := s.Projection()

	for _, d := range s.Draws() {

		program := r.programs[d.Program]
		program.Use()

		// transforms
		program.SetMat4("model", d.Model)
		program.SetMat4("view", view)
		program.SetMat4("projection", projection)

		// lighting
		program.SetVec3("lightColor", d.LightColor)
		program.SetVec3("lightPos", d.LightPosition)
		if d.Program == scene.ProgramCube {
			program.SetVec3("objectColor", s.ObjectColor)
			program.SetVec3("viewPosition", s.Camera.Position)
			program.SetVec2("uvScale", s.UVScale)
		}

		if d.Textured {
			r.texture.Bind(textureUnit)
		}

		r.meshes[d.Mesh].Draw()

	}

	gl.BindVertexArray(0)
	gl.UseProgram(0)

}

// Delete releases meshes, then the texture, then the programs.
func (r *Renderer) Delete() {
	for _, m := range r.meshes {
		m.Delete()
	}
	if r.texture != nil {
		r.texture.Delete()
	}
	for _, p := range r.programs {
		p.Delete()
	}
}
