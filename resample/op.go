// Package resample - A tile-based 2D resampling engine.
//
// Given a source image with one data window and a destination data window
// of possibly different size, the engine produces resampled pixel data one
// fixed-size tile at a time using a configurable filter kernel. Separable
// kernels are evaluated in two 1D passes with a cacheable intermediate
// raster; non-separable kernels (or the DebugSinglePass override) take a
// combined 2D reference path. Every tile result is content-hashable so an
// external cache can deduplicate and invalidate it precisely.
//
// The engine is stateless per call and performs no internal threading;
// callers may evaluate many tiles concurrently. Evaluating the same tile
// twice is safe and yields identical results.
package resample

import (
	"github.com/chewxy/math32"
	"github.com/pkg/errors"

	"github.com/nvr-ai/go-resample/filters"
	"github.com/nvr-ai/go-resample/graph"
	"github.com/nvr-ai/go-resample/hashing"
	"github.com/nvr-ai/go-resample/raster"
	"github.com/nvr-ai/go-resample/sampler"
)

// Options is the configuration surface of one resampling operation. It is
// read-only to the engine.
type Options struct {
	// DataWindow is the destination data window. Real-valued bounds are
	// permitted; the computed window is rounded outward.
	DataWindow raster.Boxf
	// Filter names the kernel; empty selects a default from the scale
	// ratio.
	Filter string
	// FilterWidth overrides the kernel support per axis when positive,
	// expressed in destination pixels. Zero derives the support from the
	// filter's natural width and the ratio.
	FilterWidth raster.Vec2f
	// BoundingMode resolves reads outside the source data window.
	BoundingMode sampler.BoundingMode
	// Debug overrides pass selection for validation.
	Debug DebugMode
}

// Op binds a source image and options into an evaluatable operation.
type Op struct {
	in   *raster.Image
	opts Options
	memo *graph.Memo
}

// New builds an operation over the source image. The memo caches
// intermediate horizontal-pass tiles between vertical-pass evaluations; a
// nil memo disables caching and recomputes them on demand.
func New(in *raster.Image, opts Options, memo *graph.Memo) *Op {
	return &Op{in: in, opts: opts, memo: memo}
}

// DataWindow returns the data window of the target raster. For the final
// output this is the configured destination window rounded outward; for
// the intermediate horizontal-pass raster (or in DebugHorizontalPass mode)
// the vertical extent is taken verbatim from the source window, since the
// horizontal pass leaves that axis untouched.
func (o *Op) DataWindow(target Target) raster.Box {
	window := raster.RoundOut(o.opts.DataWindow)
	if target == HorizontalPass || o.opts.Debug == DebugHorizontalPass {
		window.Min.Y = o.in.Window.Min.Y
		window.Max.Y = o.in.Window.Max.Y
	}
	return window
}

// HashChannelData returns a digest covering every input that affects the
// pixels ComputeChannelData would produce for the same arguments. Two
// logically identical requests always match; requests differing in any
// input differ.
//
// Arguments:
//   - target: Which raster to hash, final output or horizontal pass.
//   - tileOrigin: The origin of the output tile.
//   - channel: The source channel name.
//
// Returns:
//   - hashing.Digest: The tile's content hash.
//   - error: An error if the configuration cannot produce pixels.
func (o *Op) HashChannelData(target Target, tileOrigin raster.Vec2i, channel string) (hashing.Digest, error) {
	ratio, offset, err := RatioAndOffset(o.opts.DataWindow, o.in.Window)
	if err != nil {
		return hashing.Digest{}, err
	}
	f, err := filters.Create(o.opts.Filter, o.opts.FilterWidth, ratio)
	if err != nil {
		return hashing.Digest{}, err
	}
	passes, err := requiredPasses(o.opts.Debug, target, f)
	if err != nil {
		return hashing.Digest{}, err
	}

	h := hashing.New()
	h.AppendString("resample:channelData")
	h.AppendInt(int(target))
	h.AppendString(channel)
	o.opts.DataWindow.AppendTo(h)
	h.AppendString(f.Name())
	if passes&Horizontal != 0 {
		h.AppendFloat32(f.Width())
		h.AppendFloat32(ratio.X)
		h.AppendFloat32(offset.X)
	}
	if passes&Vertical != 0 {
		h.AppendFloat32(f.Height())
		h.AppendFloat32(ratio.Y)
		h.AppendFloat32(offset.Y)
	}

	src, err := o.passSource(passes, channel)
	if err != nil {
		return hashing.Digest{}, err
	}
	region := inputRegion(tileOrigin, passes, ratio, offset, f)
	sampler.New(src, region, o.opts.BoundingMode).Hash(h)
	if r, ok := src.(*passReader); ok && r.err != nil {
		return hashing.Digest{}, r.err
	}

	// Distinct tiles can read overlapping input regions, so the tile
	// origin disambiguates them.
	h.AppendInt(tileOrigin.X)
	h.AppendInt(tileOrigin.Y)

	return h.Sum(), nil
}

// ComputeChannelData evaluates one output tile of one channel, returning a
// TileSize*TileSize row-major pixel buffer.
//
// Every output pixel is the kernel-weighted average of its taps,
// renormalized by the weight actually applied, so partially clipped kernel
// footprints still average correctly instead of darkening edges. A fully
// clipped footprint leaves the pixel at zero.
func (o *Op) ComputeChannelData(target Target, tileOrigin raster.Vec2i, channel string) ([]float32, error) {
	ratio, offset, err := RatioAndOffset(o.opts.DataWindow, o.in.Window)
	if err != nil {
		return nil, err
	}
	f, err := filters.Create(o.opts.Filter, o.opts.FilterWidth, ratio)
	if err != nil {
		return nil, err
	}
	passes, err := requiredPasses(o.opts.Debug, target, f)
	if err != nil {
		return nil, err
	}

	src, err := o.passSource(passes, channel)
	if err != nil {
		return nil, err
	}
	region := inputRegion(tileOrigin, passes, ratio, offset, f)
	if r, ok := src.(*passReader); ok {
		if err := r.prefetch(region); err != nil {
			return nil, err
		}
	}
	smp := sampler.New(src, region, o.opts.BoundingMode)

	// Support radius in source pixels per axis.
	radius := raster.Vec2i{
		X: int(math32.Ceil(f.Width() / (2 * ratio.X))),
		Y: int(math32.Ceil(f.Height() / (2 * ratio.Y))),
	}

	buf := make([]float32, raster.TileSize*raster.TileSize)

	switch passes {
	case Both:
		o.computeCombined(buf, smp, f, ratio, offset, radius, tileOrigin)
	case Horizontal:
		o.computeHorizontal(buf, smp, f, ratio, offset, radius.X, tileOrigin)
	case Vertical:
		o.computeVertical(buf, smp, f, ratio, offset, radius.Y, tileOrigin)
	default:
		return nil, errors.Errorf("invalid pass set %d", passes)
	}

	return buf, nil
}

// floorfrac splits a coordinate into its integer floor and fractional
// remainder in [0,1).
func floorfrac(v float32) (int, float32) {
	i := int(math32.Floor(v))
	return i, v - float32(i)
}

// computeCombined evaluates the full 2D kernel per output pixel. When the
// kernel is not separable this is the only correct path; it also serves as
// the reference implementation the two-pass path is validated against via
// DebugSinglePass.
func (o *Op) computeCombined(buf []float32, smp *sampler.Sampler, f *filters.Filter, ratio, offset raster.Vec2f, radius raster.Vec2i, tileOrigin raster.Vec2i) {
	i := 0
	for oy := tileOrigin.Y; oy < tileOrigin.Y+raster.TileSize; oy++ {
		iy := (float32(oy)+0.5)/ratio.Y + offset.Y
		iyi, iyf := floorfrac(iy)

		for ox := tileOrigin.X; ox < tileOrigin.X+raster.TileSize; ox++ {
			ix := (float32(ox)+0.5)/ratio.X + offset.X
			ixi, ixf := floorfrac(ix)

			var v, totalW float32
			for fy := -radius.Y; fy <= radius.Y; fy++ {
				for fx := -radius.X; fx <= radius.X; fx++ {
					w := f.Eval(
						ratio.X*(float32(fx)-(ixf-0.5)),
						ratio.Y*(float32(fy)-(iyf-0.5)),
					)
					if w == 0 {
						continue
					}
					s, ok := smp.Sample(ixi+fx, iyi+fy)
					if !ok {
						continue
					}
					v += w * s
					totalW += w
				}
			}

			if totalW > 0 {
				buf[i] = v / totalW
			}
			i++
		}
	}
}

// computeHorizontal evaluates only the horizontal 1D kernel, reading the
// source directly: the vertical axis passes through at the source's native
// extent. Its output is the intermediate raster the vertical pass consumes.
func (o *Op) computeHorizontal(buf []float32, smp *sampler.Sampler, f *filters.Filter, ratio, offset raster.Vec2f, radius int, tileOrigin raster.Vec2i) {
	i := 0
	for oy := tileOrigin.Y; oy < tileOrigin.Y+raster.TileSize; oy++ {
		for ox := tileOrigin.X; ox < tileOrigin.X+raster.TileSize; ox++ {
			ix := (float32(ox)+0.5)/ratio.X + offset.X
			ixi, ixf := floorfrac(ix)

			var v, totalW float32
			for fx := -radius; fx <= radius; fx++ {
				w := f.Xfilt(ratio.X * (float32(fx) - (ixf - 0.5)))
				if w == 0 {
					continue
				}
				s, ok := smp.Sample(ixi+fx, oy)
				if !ok {
					continue
				}
				v += w * s
				totalW += w
			}

			if totalW > 0 {
				buf[i] = v / totalW
			}
			i++
		}
	}
}

// computeVertical evaluates only the vertical 1D kernel, reading the
// intermediate horizontal-pass raster: the horizontal axis is already
// destination-sized there.
func (o *Op) computeVertical(buf []float32, smp *sampler.Sampler, f *filters.Filter, ratio, offset raster.Vec2f, radius int, tileOrigin raster.Vec2i) {
	i := 0
	for oy := tileOrigin.Y; oy < tileOrigin.Y+raster.TileSize; oy++ {
		iy := (float32(oy)+0.5)/ratio.Y + offset.Y
		iyi, iyf := floorfrac(iy)

		for ox := tileOrigin.X; ox < tileOrigin.X+raster.TileSize; ox++ {
			var v, totalW float32
			for fy := -radius; fy <= radius; fy++ {
				w := f.Yfilt(ratio.Y * (float32(fy) - (iyf - 0.5)))
				if w == 0 {
					continue
				}
				s, ok := smp.Sample(ox, iyi+fy)
				if !ok {
					continue
				}
				v += w * s
				totalW += w
			}

			if totalW > 0 {
				buf[i] = v / totalW
			}
			i++
		}
	}
}

// passSource selects the pixel source for a pass set: the vertical pass
// reads the cached horizontal-pass raster, everything else reads the
// source image directly.
func (o *Op) passSource(passes Passes, channel string) (sampler.Source, error) {
	if passes == Vertical {
		return newPassReader(o, channel), nil
	}
	return o.in.Channel(channel)
}
