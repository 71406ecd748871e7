package resample

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/nvr-ai/go-resample/raster"
)

// Render evaluates every tile of the target raster for the given channels
// using a bounded worker pool, and assembles the results into an image
// covering the target's data window.
//
// Tiles are independent, so they run concurrently; the memo (when present)
// guarantees each horizontal-pass tile is computed once no matter how many
// vertical tiles race for it. workers <= 0 uses one worker per CPU.
func (o *Op) Render(target Target, channels []string, workers int) (*raster.Image, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	window := o.DataWindow(target)
	out := raster.NewImage(window, channels...)

	var g errgroup.Group
	g.SetLimit(workers)

	for _, channel := range channels {
		plane, err := out.Channel(channel)
		if err != nil {
			return nil, err
		}
		for _, origin := range raster.TileOrigins(window) {
			channel, origin := channel, origin
			g.Go(func() error {
				buf, err := o.tileData(target, origin, channel)
				if err != nil {
					return err
				}
				// Tiles cover disjoint pixels, so concurrent writes to
				// the shared plane never overlap.
				bound := raster.TileBound(origin).Intersect(window)
				for y := bound.Min.Y; y <= bound.Max.Y; y++ {
					row := (y - origin.Y) * raster.TileSize
					for x := bound.Min.X; x <= bound.Max.X; x++ {
						plane.SetPixel(x, y, buf[row+x-origin.X])
					}
				}
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// tileData computes one tile, through the memo when one is configured.
func (o *Op) tileData(target Target, origin raster.Vec2i, channel string) ([]float32, error) {
	compute := func() ([]float32, error) {
		return o.ComputeChannelData(target, origin, channel)
	}
	if o.memo == nil {
		return compute()
	}
	key, err := o.HashChannelData(target, origin, channel)
	if err != nil {
		return nil, err
	}
	return o.memo.Do(key, compute)
}
