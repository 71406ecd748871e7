package raster

import "github.com/chewxy/math32"

// RoundOut converts a real-valued box to an integer box, rounding the min
// bound down and the max bound up so the result never under-covers the
// original region.
func RoundOut(b Boxf) Box {
	return Box{
		Min: Vec2i{X: int(math32.Floor(b.Min.X)), Y: int(math32.Floor(b.Min.Y))},
		Max: Vec2i{X: int(math32.Ceil(b.Max.X)), Y: int(math32.Ceil(b.Max.Y))},
	}
}

// TileOrigin returns the origin of the tile containing pixel (x,y).
// TileSize is a power of two, so masking floors correctly for negative
// coordinates as well.
func TileOrigin(x, y int) Vec2i {
	return Vec2i{X: x &^ (TileSize - 1), Y: y &^ (TileSize - 1)}
}

// TileBound returns the pixel box covered by the tile at the given origin.
func TileBound(origin Vec2i) Box {
	return Box{
		Min: origin,
		Max: Vec2i{X: origin.X + TileSize - 1, Y: origin.Y + TileSize - 1},
	}
}

// TileOrigins lists the origins of every tile intersecting the box, in
// row-major order.
func TileOrigins(b Box) []Vec2i {
	if b.Empty() {
		return nil
	}
	first := TileOrigin(b.Min.X, b.Min.Y)
	var origins []Vec2i
	for y := first.Y; y <= b.Max.Y; y += TileSize {
		for x := first.X; x <= b.Max.X; x += TileSize {
			origins = append(origins, Vec2i{X: x, Y: y})
		}
	}
	return origins
}
