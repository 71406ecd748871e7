package resample

import (
	"fmt"

	"github.com/nvr-ai/go-resample/hashing"
	"github.com/nvr-ai/go-resample/raster"
)

// passReader exposes the operation's own horizontal-pass raster as a
// sampler source for the vertical pass. Tiles are pulled through the memo
// so racing vertical evaluations share one horizontal computation, and
// hashing folds per-tile digests rather than pixels so a hash request never
// forces pixel computation.
type passReader struct {
	op      *Op
	channel string
	window  raster.Box
	tiles   map[raster.Vec2i][]float32
	err     error
}

func newPassReader(op *Op, channel string) *passReader {
	return &passReader{
		op:      op,
		channel: channel,
		window:  op.DataWindow(HorizontalPass),
		tiles:   make(map[raster.Vec2i][]float32),
	}
}

func (r *passReader) DataWindow() raster.Box {
	return r.window
}

// prefetch materializes every horizontal-pass tile intersecting the region,
// clipped to the data window, so Pixel never has to fault one in.
func (r *passReader) prefetch(region raster.Box) error {
	for _, origin := range raster.TileOrigins(region.Intersect(r.window)) {
		buf, err := r.fetch(origin)
		if err != nil {
			return err
		}
		r.tiles[origin] = buf
	}
	return nil
}

func (r *passReader) fetch(origin raster.Vec2i) ([]float32, error) {
	compute := func() ([]float32, error) {
		return r.op.ComputeChannelData(HorizontalPass, origin, r.channel)
	}
	if r.op.memo == nil {
		return compute()
	}
	key, err := r.op.HashChannelData(HorizontalPass, origin, r.channel)
	if err != nil {
		return nil, err
	}
	return r.op.memo.Do(key, compute)
}

// Pixel reads from a prefetched tile. The sampler only presents in-window
// coordinates, and prefetch covers the whole sample region, so a missing
// tile means the region under-declared the tap footprint; that would
// silently corrupt results, so it fails loudly instead.
func (r *passReader) Pixel(x, y int) float32 {
	origin := raster.TileOrigin(x, y)
	buf, ok := r.tiles[origin]
	if !ok {
		panic(fmt.Sprintf("resample: horizontal-pass read at (%d,%d) outside the prefetched region", x, y))
	}
	return buf[(y-origin.Y)*raster.TileSize+(x-origin.X)]
}

// HashRegion folds the digests of every horizontal-pass tile intersecting
// the region. The digests cover the tiles' content exactly, so this is
// equivalent to hashing the pixels without computing them. A failure is
// recorded for the owning operation to surface.
func (r *passReader) HashRegion(region raster.Box, h *hashing.Hasher) {
	for _, origin := range raster.TileOrigins(region) {
		digest, err := r.op.HashChannelData(HorizontalPass, origin, r.channel)
		if err != nil {
			if r.err == nil {
				r.err = err
			}
			return
		}
		h.AppendDigest(digest)
	}
}
