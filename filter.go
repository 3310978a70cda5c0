package gllab

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/convolution"
)

// Filter is a 1D convolution filter of the filter lab.
type Filter int

const (
	FilterOriginal Filter = iota
	FilterBlur
	FilterSharpen
	FilterEdge
	filterCount
)

var filterNames = [filterCount]string{
	FilterOriginal: "original",
	FilterBlur:     "blur",
	FilterSharpen:  "sharpen",
	FilterEdge:     "edge",
}

func (f Filter) String() string {
	if f >= 0 && f < filterCount {
		return filterNames[f]
	}
	return fmt.Sprintf("Filter(%d)", int(f))
}

// ParseFilter returns the filter with the given name.
func ParseFilter(name string) (Filter, error) {
	for i, n := range filterNames {
		if n == name {
			return Filter(i), nil
		}
	}
	return 0, fmt.Errorf("unknown filter %q", name)
}

// Direction is the axis a 1D kernel runs along.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

func (d Direction) String() string {
	if d == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Toggle returns the other direction.
func (d Direction) Toggle() Direction {
	if d == Vertical {
		return Horizontal
	}
	return Vertical
}

// KernelRadius is the half-width of every kernel; all kernels have
// 2*KernelRadius+1 taps so the shader can use a fixed-size uniform array.
const KernelRadius = 2

// Kernel returns the taps of f, centered, padded with zeros to
// 2*KernelRadius+1 entries.
func Kernel(f Filter) []float32 {
	switch f {
	case FilterBlur:
		return []float32{1.0 / 16, 4.0 / 16, 6.0 / 16, 4.0 / 16, 1.0 / 16}
	case FilterSharpen:
		return []float32{0, -1, 3, -1, 0}
	case FilterEdge:
		return []float32{0, -1, 2, -1, 0}
	default:
		return []float32{0, 0, 1, 0, 0}
	}
}

// Bias is added to the convolution result before clamping to [0, 255].
// Edge responses are centered on mid-gray so both signs stay visible.
func Bias(f Filter) float32 {
	if f == FilterEdge {
		return 128
	}
	return 0
}

// Apply convolves img with the kernel of f along dir. Samples outside the
// image repeat the nearest edge pixel, matching GL_CLAMP_TO_EDGE. Alpha is
// left untouched.
func Apply(img image.Image, f Filter, dir Direction) *image.RGBA {
	if f == FilterOriginal {
		return clone.AsRGBA(img)
	}

	taps := Kernel(f)
	var k *convolution.Kernel
	if dir == Vertical {
		k = convolution.NewKernel(1, len(taps))
	} else {
		k = convolution.NewKernel(len(taps), 1)
	}
	for i, t := range taps {
		k.Matrix[i] = float64(t)
	}

	return convolution.Convolve(img, k, &convolution.Options{
		Bias:      float64(Bias(f)),
		Wrap:      false,
		KeepAlpha: true,
	})
}
