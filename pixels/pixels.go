// Package pixels turns raw framebuffer readback bytes into images.
package pixels

import (
	"image"
	"runtime"

	"github.com/disintegration/imaging"
	"github.com/mandykoh/prism/srgb"

	"github.com/amikey/igl/assert"
)

// NRGBA wraps tightly packed RGBA readback bytes as an image without copying.
func NRGBA(data []byte, width, height int32) *image.NRGBA {

	assert.T(int(width*height*4) <= len(data), "readback buffer too small for %dx%d pixels. Len=%d", width, height, len(data))

	return &image.NRGBA{
		Pix:    data,
		Stride: int(width) * 4,
		Rect:   image.Rect(0, 0, int(width), int(height)),
	}
}

// FlipV flips a readback image the right way up. glReadPixels returns rows
// bottom-up while image.NRGBA is top-down.
func FlipV(img image.Image) *image.NRGBA {
	return imaging.FlipV(img)
}

// Linearise converts sRGB-encoded readback pixels to linear values in place.
// Use it when the attachment format is sRGB and later math expects linear light.
func Linearise(img *image.NRGBA) {
	srgb.LineariseImage(img, img, runtime.NumCPU())
}

// Encode converts linear pixel values to sRGB encoding in place, e.g. before
// writing a PNG.
func Encode(img *image.NRGBA) {
	srgb.EncodeImage(img, img, runtime.NumCPU())
}
