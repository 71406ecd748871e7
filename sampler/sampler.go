// Package sampler - Boundary-aware random access over raster channel data.
//
// A Sampler wraps a pixel source and a rectangular sample region and
// resolves reads outside the source's data window according to a bounding
// mode, so kernel evaluation never has to branch on raster edges itself.
package sampler

import (
	"github.com/nvr-ai/go-resample/hashing"
	"github.com/nvr-ai/go-resample/raster"
)

// BoundingMode selects how reads outside the data window behave.
type BoundingMode int

const (
	// Black treats out-of-window samples as missing: they contribute
	// neither value nor weight to a filtered result.
	Black BoundingMode = iota
	// Clamp reads the nearest in-window pixel instead.
	Clamp
)

// String returns the configuration name of the mode.
func (m BoundingMode) String() string {
	switch m {
	case Black:
		return "black"
	case Clamp:
		return "clamp"
	}
	return "unknown"
}

// Source is random-access pixel data restricted to a data window. Pixel
// must only be called with coordinates inside the window; the sampler
// guarantees this.
type Source interface {
	DataWindow() raster.Box
	Pixel(x, y int) float32
	// HashRegion folds the content the source holds inside region into
	// the hasher.
	HashRegion(region raster.Box, h *hashing.Hasher)
}

// Sampler reads a source through a bounding mode, over a declared sample
// region.
type Sampler struct {
	source Source
	window raster.Box
	region raster.Box
	mode   BoundingMode
}

// New builds a sampler over the source for the given sample region. The
// region declares every pixel the caller may read; it is part of the
// sampler's hash identity.
func New(source Source, region raster.Box, mode BoundingMode) *Sampler {
	return &Sampler{
		source: source,
		window: source.DataWindow(),
		region: region,
		mode:   mode,
	}
}

// Sample reads the pixel at (x,y). The second return value reports whether
// the read produced usable data: it is false only in Black mode for
// coordinates outside the data window, in which case the caller should
// treat the tap as carrying zero weight.
func (s *Sampler) Sample(x, y int) (float32, bool) {
	if !s.window.Contains(x, y) {
		if s.mode == Black {
			return 0, false
		}
		if x < s.window.Min.X {
			x = s.window.Min.X
		} else if x > s.window.Max.X {
			x = s.window.Max.X
		}
		if y < s.window.Min.Y {
			y = s.window.Min.Y
		} else if y > s.window.Max.Y {
			y = s.window.Max.Y
		}
	}
	return s.source.Pixel(x, y), true
}

// Hash folds everything that can influence sampled values into the hasher:
// the bounding mode, the declared region, the data window and the source
// content reachable within the region.
func (s *Sampler) Hash(h *hashing.Hasher) {
	h.AppendInt(int(s.mode))
	s.region.AppendTo(h)
	s.window.AppendTo(h)
	s.source.HashRegion(s.region.Intersect(s.window), h)
}
