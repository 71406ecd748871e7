package resample

import (
	"github.com/chewxy/math32"

	"github.com/nvr-ai/go-resample/filters"
	"github.com/nvr-ai/go-resample/raster"
)

// inputRegion returns the source-space rectangle that must be readable to
// compute one output tile. Each active pass maps the tile bounds on its
// axis into source space and expands them by the tap radius in source
// pixels, ceil(support/(2*ratio)), the same radius the evaluation loops
// walk; an inactive axis is left in destination space, because that axis
// of the input (the intermediate horizontal-pass raster) is already
// destination-sized. Bounds are rounded outward so the region is never
// smaller than the true tap footprint.
func inputRegion(tileOrigin raster.Vec2i, passes Passes, ratio, offset raster.Vec2f, f *filters.Filter) raster.Box {
	region := raster.Boxf{
		Min: raster.Vec2f{X: float32(tileOrigin.X), Y: float32(tileOrigin.Y)},
		Max: raster.Vec2f{
			X: float32(tileOrigin.X + raster.TileSize),
			Y: float32(tileOrigin.Y + raster.TileSize),
		},
	}

	if passes&Horizontal != 0 {
		radius := math32.Ceil(f.Width() / (2 * ratio.X))
		region.Min.X = region.Min.X/ratio.X + offset.X - radius
		region.Max.X = region.Max.X/ratio.X + offset.X + radius
	}
	if passes&Vertical != 0 {
		radius := math32.Ceil(f.Height() / (2 * ratio.Y))
		region.Min.Y = region.Min.Y/ratio.Y + offset.Y - radius
		region.Max.Y = region.Max.Y/ratio.Y + offset.Y + radius
	}

	return raster.RoundOut(region)
}
