package sampler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/go-resample/hashing"
	"github.com/nvr-ai/go-resample/raster"
)

func gradientPlane(window raster.Box) *raster.Plane {
	p := raster.NewPlane(window)
	for y := window.Min.Y; y <= window.Max.Y; y++ {
		for x := window.Min.X; x <= window.Max.X; x++ {
			p.SetPixel(x, y, float32(x)+float32(y)/100)
		}
	}
	return p
}

func TestSampleInWindow(t *testing.T) {
	p := gradientPlane(raster.NewBox(0, 0, 3, 3))
	s := New(p, p.DataWindow(), Black)

	v, ok := s.Sample(2, 1)
	require.True(t, ok)
	assert.InDelta(t, 2.01, v, 1e-6)
}

func TestBlackOutsideWindow(t *testing.T) {
	p := gradientPlane(raster.NewBox(0, 0, 3, 3))
	s := New(p, raster.NewBox(-2, -2, 5, 5), Black)

	v, ok := s.Sample(-1, 0)
	assert.False(t, ok, "out-of-window reads carry no weight in Black mode")
	assert.Equal(t, float32(0), v)

	_, ok = s.Sample(4, 2)
	assert.False(t, ok)
	_, ok = s.Sample(0, 0)
	assert.True(t, ok)
}

func TestClampOutsideWindow(t *testing.T) {
	p := gradientPlane(raster.NewBox(0, 0, 3, 3))
	s := New(p, raster.NewBox(-2, -2, 5, 5), Clamp)

	v, ok := s.Sample(-1, 1)
	require.True(t, ok, "Clamp mode always produces data")
	assert.Equal(t, p.Pixel(0, 1), v, "left reads clamp to the first column")

	v, _ = s.Sample(5, 5)
	assert.Equal(t, p.Pixel(3, 3), v, "far corner clamps to the max corner")

	v, _ = s.Sample(2, -2)
	assert.Equal(t, p.Pixel(2, 0), v)
}

func samplerDigest(p *raster.Plane, region raster.Box, mode BoundingMode) hashing.Digest {
	h := hashing.New()
	New(p, region, mode).Hash(h)
	return h.Sum()
}

func TestHashIdentity(t *testing.T) {
	window := raster.NewBox(0, 0, 7, 7)
	region := raster.NewBox(0, 0, 3, 3)

	a := samplerDigest(gradientPlane(window), region, Black)
	b := samplerDigest(gradientPlane(window), region, Black)
	assert.Equal(t, a, b, "identical samplers hash identically")
}

func TestHashSensitivity(t *testing.T) {
	window := raster.NewBox(0, 0, 7, 7)
	region := raster.NewBox(0, 0, 3, 3)
	base := samplerDigest(gradientPlane(window), region, Black)

	assert.NotEqual(t, base, samplerDigest(gradientPlane(window), region, Clamp),
		"bounding mode is part of the hash")
	assert.NotEqual(t, base, samplerDigest(gradientPlane(window), raster.NewBox(4, 4, 7, 7), Black),
		"sample region is part of the hash")

	changed := gradientPlane(window)
	changed.SetPixel(1, 1, -5)
	assert.NotEqual(t, base, samplerDigest(changed, region, Black),
		"pixel content inside the region is part of the hash")

	outside := gradientPlane(window)
	outside.SetPixel(7, 7, -5)
	assert.Equal(t, base, samplerDigest(outside, region, Black),
		"pixels outside the region do not affect the hash")
}
