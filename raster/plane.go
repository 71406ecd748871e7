package raster

import (
	"github.com/pkg/errors"

	"github.com/nvr-ai/go-resample/hashing"
)

// Plane holds one channel of float32 pixel data restricted to a data
// window, stored row-major.
type Plane struct {
	Window Box
	Pix    []float32
}

// NewPlane allocates a zero-filled plane covering the given data window.
func NewPlane(window Box) *Plane {
	size := window.Size()
	return &Plane{
		Window: window,
		Pix:    make([]float32, size.X*size.Y),
	}
}

// DataWindow returns the valid pixel extent of the plane.
func (p *Plane) DataWindow() Box {
	return p.Window
}

// Pixel returns the value at (x,y). The coordinate must lie inside the
// data window.
func (p *Plane) Pixel(x, y int) float32 {
	return p.Pix[p.offset(x, y)]
}

// SetPixel stores a value at (x,y). The coordinate must lie inside the
// data window.
func (p *Plane) SetPixel(x, y int, v float32) {
	p.Pix[p.offset(x, y)] = v
}

func (p *Plane) offset(x, y int) int {
	return (y-p.Window.Min.Y)*(p.Window.Max.X-p.Window.Min.X+1) + (x - p.Window.Min.X)
}

// HashRegion folds every pixel inside the intersection of region and the
// data window into the hasher. Two planes with differing content over the
// region produce differing hashes.
func (p *Plane) HashRegion(region Box, h *hashing.Hasher) {
	r := region.Intersect(p.Window)
	if r.Empty() {
		return
	}
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		for x := r.Min.X; x <= r.Max.X; x++ {
			h.AppendFloat32(p.Pixel(x, y))
		}
	}
}

// Image is a set of named channel planes sharing one data window.
type Image struct {
	Window   Box
	channels map[string]*Plane
}

// NewImage allocates an image with the given data window and zero-filled
// planes for each named channel.
func NewImage(window Box, channels ...string) *Image {
	img := &Image{
		Window:   window,
		channels: make(map[string]*Plane, len(channels)),
	}
	for _, name := range channels {
		img.channels[name] = NewPlane(window)
	}
	return img
}

// ChannelNames returns the names of the channels present in the image.
func (img *Image) ChannelNames() []string {
	names := make([]string, 0, len(img.channels))
	for name := range img.channels {
		names = append(names, name)
	}
	return names
}

// Channel returns the plane for the named channel.
func (img *Image) Channel(name string) (*Plane, error) {
	p, ok := img.channels[name]
	if !ok {
		return nil, errors.Errorf("image has no channel %q", name)
	}
	return p, nil
}
