// Package texture decodes image files into tightly packed 8-bit pixel rows
// ready for upload, bottom row first.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register GIF decoding
	_ "image/jpeg" // register JPEG decoding
	_ "image/png"  // register PNG decoding
	"os"

	_ "golang.org/x/image/bmp" // register BMP decoding
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF decoding
	_ "golang.org/x/image/webp" // register WebP decoding
)

// Image is decoded pixel data. Pix holds Height rows of Width*Channels
// bytes with no padding.
type Image struct {
	Width    int
	Height   int
	Channels int
	Pix      []byte
}

// ChannelError reports an image whose channel count cannot be uploaded.
type ChannelError struct {
	Channels int
}

func (e *ChannelError) Error() string {
	return fmt.Sprintf("not implemented to handle image with %d channels", e.Channels)
}

// Load reads and decodes the image at path, then flips it vertically so the
// first row is the bottom of the picture. Only RGB and RGBA images load.
func Load(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// decoders widen gray+alpha to RGBA, so check what the file stores
	if channels, ok := pngChannels(data); ok && channels != 3 && channels != 4 {
		return nil, &ChannelError{Channels: channels}
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return FromImage(src)
}

const pngSignature = "\x89PNG\r\n\x1a\n"

// pngColorChannels maps the IHDR colour type to the channels it stores.
// Palette images count as RGB.
var pngColorChannels = map[byte]int{
	0: 1, // gray
	2: 3, // RGB
	3: 3, // palette
	4: 2, // gray + alpha
	6: 4, // RGBA
}

// pngChannels reads the channel count from a PNG header. ok is false when
// data is not a PNG.
func pngChannels(data []byte) (channels int, ok bool) {
	// signature, IHDR length and type, width, height, bit depth, colour type
	const colorTypeOffset = 8 + 4 + 4 + 4 + 4 + 1
	if len(data) <= colorTypeOffset || string(data[:8]) != pngSignature || string(data[12:16]) != "IHDR" {
		return 0, false
	}
	channels, ok = pngColorChannels[data[colorTypeOffset]]
	return channels, ok
}

// FromImage converts a decoded image. See Load.
func FromImage(src image.Image) (*Image, error) {

	channels := Channels(src)
	if channels != 3 && channels != 4 {
		return nil, &ChannelError{Channels: channels}
	}

	// normalize any colour model into non-premultiplied RGBA
	b := src.Bounds()
	rgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), src, b.Min, draw.Src)

	img := &Image{
		Width:    b.Dx(),
		Height:   b.Dy(),
		Channels: channels,
		Pix:      make([]byte, 0, b.Dx()*b.Dy()*channels),
	}
	for y := 0; y < img.Height; y++ {
		row := rgba.Pix[y*rgba.Stride : y*rgba.Stride+img.Width*4]
		if channels == 4 {
			img.Pix = append(img.Pix, row...)
			continue
		}
		for x := 0; x < len(row); x += 4 {
			img.Pix = append(img.Pix, row[x], row[x+1], row[x+2])
		}
	}

	FlipVertical(img.Pix, img.Width, img.Height, img.Channels)
	return img, nil
}

// Channels reports how many 8-bit channels src needs: 1 for gray and alpha
// models, 4 when any pixel is translucent, 3 otherwise.
func Channels(src image.Image) int {
	switch src.ColorModel() {
	case color.GrayModel, color.Gray16Model, color.AlphaModel, color.Alpha16Model:
		return 1
	}
	if o, ok := src.(interface{ Opaque() bool }); ok {
		if o.Opaque() {
			return 3
		}
		return 4
	}

	b := src.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := src.At(x, y).RGBA(); a != 0xffff {
				return 4
			}
		}
	}
	return 3
}

// FlipVertical swaps rows top-to-bottom in place. Images are stored top row
// first but OpenGL texture space starts at the bottom.
func FlipVertical(pix []byte, width, height, channels int) {
	rowLen := width * channels
	tmp := make([]byte, rowLen)
	for j := 0; j < height/2; j++ {
		top := pix[j*rowLen : (j+1)*rowLen]
		bottom := pix[(height-1-j)*rowLen : (height-j)*rowLen]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}
