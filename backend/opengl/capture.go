package opengl

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ReadFramebuffer reads the w x h pixels at the origin of the current read
// buffer into an image with row 0 at the top.
func ReadFramebuffer(w, h int) *image.RGBA {
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return imageFromBottomUp(pixels, w, h)
}

// imageFromBottomUp builds an image from tightly packed RGBA rows stored
// bottom row first, as GL returns them.
func imageFromBottomUp(pixels []byte, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	row := w * 4
	for y := 0; y < h; y++ {
		src := pixels[(h-1-y)*row:][:row]
		copy(img.Pix[img.PixOffset(0, y):], src)
	}
	return img
}
