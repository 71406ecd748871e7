package resample

import (
	"github.com/pkg/errors"

	"github.com/nvr-ai/go-resample/raster"
)

// RatioAndOffset computes the per-axis scale and translation that convert
// destination coordinates into source coordinates, from the two data
// windows. The mapping is
//
//	source = dest/ratio + offset
//
// with window sizes measured as max-min+1 to match inclusive pixel bounds.
//
// Arguments:
//   - dst: The destination data window; real-valued bounds are permitted.
//   - src: The source data window.
//
// Returns:
//   - ratio: Destination size divided by source size, per axis.
//   - offset: Source min minus scaled destination min, per axis.
//   - error: An error if either window has a degenerate size, which would
//     make the ratio undefined.
func RatioAndOffset(dst raster.Boxf, src raster.Box) (ratio, offset raster.Vec2f, err error) {
	dstSize := dst.Size()
	srcSize := src.Size()
	if dstSize.X <= 0 || dstSize.Y <= 0 {
		return ratio, offset, errors.Errorf("degenerate destination data window %v", dst)
	}
	if srcSize.X <= 0 || srcSize.Y <= 0 {
		return ratio, offset, errors.Errorf("degenerate source data window %v", src)
	}

	ratio = raster.Vec2f{
		X: dstSize.X / float32(srcSize.X),
		Y: dstSize.Y / float32(srcSize.Y),
	}
	offset = raster.Vec2f{
		X: float32(src.Min.X) - dst.Min.X/ratio.X,
		Y: float32(src.Min.Y) - dst.Min.Y/ratio.Y,
	}
	return ratio, offset, nil
}
