// Package raster - Value types for tile-addressed float32 raster data.
//
// A raster is described by a data window: an axis-aligned integer pixel
// rectangle with inclusive min/max bounds. Pixel data is stored per channel
// in row-major float32 planes. Computation and caching happen in fixed-size
// square tiles addressed by their origin.
package raster

import "github.com/nvr-ai/go-resample/hashing"

// TileSize is the edge length of the square tile that forms the unit of
// computation and caching.
const TileSize = 64

// Vec2i is an integer 2D vector.
type Vec2i struct {
	X, Y int
}

// Vec2f is a float32 2D vector.
type Vec2f struct {
	X, Y float32
}

// Box is an integer pixel rectangle with inclusive min and max bounds.
// A box with Max < Min on either axis is empty.
type Box struct {
	Min, Max Vec2i
}

// NewBox builds a box from inclusive corner coordinates.
func NewBox(minX, minY, maxX, maxY int) Box {
	return Box{Min: Vec2i{X: minX, Y: minY}, Max: Vec2i{X: maxX, Y: maxY}}
}

// Size returns the pixel dimensions of the box. Inclusive bounds mean a
// single-pixel box has size (1,1).
func (b Box) Size() Vec2i {
	return Vec2i{X: b.Max.X - b.Min.X + 1, Y: b.Max.Y - b.Min.Y + 1}
}

// Empty reports whether the box contains no pixels.
func (b Box) Empty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y
}

// Contains reports whether pixel (x,y) lies inside the box.
func (b Box) Contains(x, y int) bool {
	return x >= b.Min.X && x <= b.Max.X && y >= b.Min.Y && y <= b.Max.Y
}

// Intersect returns the overlapping region of two boxes. The result is
// empty when they do not overlap.
func (b Box) Intersect(o Box) Box {
	r := b
	if o.Min.X > r.Min.X {
		r.Min.X = o.Min.X
	}
	if o.Min.Y > r.Min.Y {
		r.Min.Y = o.Min.Y
	}
	if o.Max.X < r.Max.X {
		r.Max.X = o.Max.X
	}
	if o.Max.Y < r.Max.Y {
		r.Max.Y = o.Max.Y
	}
	return r
}

// AppendTo folds the box bounds into a hasher.
func (b Box) AppendTo(h *hashing.Hasher) {
	h.AppendInt(b.Min.X)
	h.AppendInt(b.Min.Y)
	h.AppendInt(b.Max.X)
	h.AppendInt(b.Max.Y)
}

// Boxf is a real-valued pixel rectangle. Like Box its bounds are inclusive,
// so its size on each axis is max-min+1.
type Boxf struct {
	Min, Max Vec2f
}

// Size returns the real-valued dimensions of the box.
func (b Boxf) Size() Vec2f {
	return Vec2f{X: b.Max.X - b.Min.X + 1, Y: b.Max.Y - b.Min.Y + 1}
}

// AppendTo folds the box bounds into a hasher.
func (b Boxf) AppendTo(h *hashing.Hasher) {
	h.AppendFloat32(b.Min.X)
	h.AppendFloat32(b.Min.Y)
	h.AppendFloat32(b.Max.X)
	h.AppendFloat32(b.Max.Y)
}
