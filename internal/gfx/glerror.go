package gfx

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

var glErrorNames = map[uint32]string{
	0x500: `GL_INVALID_ENUM`,
	0x501: `GL_INVALID_VALUE`,
	0x502: `GL_INVALID_OPERATION`,
	0x503: `GL_STACK_OVERFLOW`,
	0x504: `GL_STACK_UNDERFLOW`,
	0x505: `GL_OUT_OF_MEMORY`,
	0x506: `GL_INVALID_FRAMEBUFFER_OPERATION`,
	0x507: `GL_CONTEXT_LOST`,
}

// GLError is an error code reported by gl.GetError.
type GLError struct {
	Code uint32
}

func (e GLError) Error() string {
	if name, ok := glErrorNames[e.Code]; ok {
		return "GL_ERROR: " + name
	}
	return fmt.Sprintf("GL_ERROR UNKNOWN: %#x", e.Code)
}

// CheckError drains the accumulated OpenGL errors and returns the first one.
func CheckError() error {
	var first error
	for {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			break
		}
		if first == nil {
			first = GLError{Code: code}
		}
	}
	return first
}
