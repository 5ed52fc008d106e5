package gfx

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/TrevorMickelson/CS-330/internal/scene"
	"github.com/TrevorMickelson/CS-330/internal/texture"
)

var glWrapModes = map[scene.WrapMode]int32{
	scene.WrapRepeat:         gl.REPEAT,
	scene.WrapMirroredRepeat: gl.MIRRORED_REPEAT,
	scene.WrapClampToEdge:    gl.CLAMP_TO_EDGE,
	scene.WrapClampToBorder:  gl.CLAMP_TO_BORDER,
}

// borderColor shows up outside [0,1] with WrapClampToBorder.
var borderColor = [4]float32{1, 0, 1, 1}

// Texture is a 2D texture and its current wrap mode.
type Texture struct {
	ID   uint32
	Wrap scene.WrapMode
}

// NewTexture uploads img with linear filtering, mipmaps and repeat wrapping.
func NewTexture(img *texture.Image) (*Texture, error) {

	var internalFormat int32
	var format uint32
	switch img.Channels {
	case 3:
		internalFormat, format = gl.RGB8, gl.RGB
	case 4:
		internalFormat, format = gl.RGBA8, gl.RGBA
	default:
		return nil, &texture.ChannelError{Channels: img.Channels}
	}
	if len(img.Pix) != img.Width*img.Height*img.Channels {
		return nil, fmt.Errorf("texture has %d bytes, want %dx%dx%d", len(img.Pix), img.Width, img.Height, img.Channels)
	}

	t := &Texture{Wrap: scene.WrapRepeat}

	// create texture and bind to it
	gl.GenTextures(1, &t.ID)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)

	// set wrapping and filtering
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// rows are tightly packed, RGB rows are not 4-byte aligned
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat, int32(img.Width), int32(img.Height), 0, format, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	// unbind texture
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return t, nil

}

// SetWrap changes how the texture samples outside [0,1].
func (t *Texture) SetWrap(mode scene.WrapMode) {

	glMode, ok := glWrapModes[mode]
	if !ok {
		return
	}

	gl.BindTexture(gl.TEXTURE_2D, t.ID)
	if mode == scene.WrapClampToBorder {
		gl.TexParameterfv(gl.TEXTURE_2D, gl.TEXTURE_BORDER_COLOR, &borderColor[0])
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, glMode)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, glMode)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	t.Wrap = mode

}

// Bind attaches the texture to the given texture unit.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
}

// Delete releases the texture.
func (t *Texture) Delete() {
	gl.DeleteTextures(1, &t.ID)
}
