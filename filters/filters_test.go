package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/go-resample/raster"
)

func TestDefaultSelection(t *testing.T) {
	up, err := Create("", raster.Vec2f{}, raster.Vec2f{X: 2, Y: 2})
	require.NoError(t, err)
	assert.Equal(t, DefaultUpsizing, up.Name(), "enlarging selects the upsizing default")

	down, err := Create("", raster.Vec2f{}, raster.Vec2f{X: 0.5, Y: 0.5})
	require.NoError(t, err)
	assert.Equal(t, DefaultDownsizing, down.Name(), "shrinking selects the downsizing default")

	// Enlarging on one axis is enough to count as upsizing.
	mixed, err := Create("", raster.Vec2f{}, raster.Vec2f{X: 0.5, Y: 2})
	require.NoError(t, err)
	assert.Equal(t, DefaultUpsizing, mixed.Name())

	identity, err := Create("", raster.Vec2f{}, raster.Vec2f{X: 1, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, DefaultDownsizing, identity.Name(), "ratio 1 is not enlarging")
}

func TestSupportScaling(t *testing.T) {
	// Auto width scales the natural width by max(1, ratio) per axis.
	f, err := Create("gaussian", raster.Vec2f{}, raster.Vec2f{X: 3, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, float32(9), f.Width(), "natural width 3 times ratio 3")
	assert.Equal(t, float32(3), f.Height(), "ratio 1 keeps the natural width")

	// Shrinking never reduces the support below its natural value.
	f, err = Create("gaussian", raster.Vec2f{}, raster.Vec2f{X: 0.25, Y: 0.5})
	require.NoError(t, err)
	assert.Equal(t, float32(3), f.Width())
	assert.Equal(t, float32(3), f.Height())
}

func TestExplicitWidthOverride(t *testing.T) {
	f, err := Create("gaussian", raster.Vec2f{X: 5, Y: 7}, raster.Vec2f{X: 3, Y: 3})
	require.NoError(t, err)
	assert.Equal(t, float32(5), f.Width(), "explicit width ignores ratio scaling")
	assert.Equal(t, float32(7), f.Height())

	// A zero axis still derives from the ratio.
	f, err = Create("gaussian", raster.Vec2f{X: 5, Y: 0}, raster.Vec2f{X: 3, Y: 3})
	require.NoError(t, err)
	assert.Equal(t, float32(5), f.Width())
	assert.Equal(t, float32(9), f.Height())
}

func TestUnknownFilter(t *testing.T) {
	_, err := Create("sharpen-o-matic", raster.Vec2f{}, raster.Vec2f{X: 1, Y: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sharpen-o-matic")
}

func TestDescriptors(t *testing.T) {
	descs := Descriptors()
	require.NotEmpty(t, descs)

	byName := map[string]Desc{}
	for _, d := range descs {
		byName[d.Name] = d
	}
	assert.Contains(t, byName, DefaultUpsizing)
	assert.Contains(t, byName, DefaultDownsizing)
	assert.Equal(t, float32(6), byName["lanczos3"].Width)
	assert.False(t, byName["disk"].Separable)
	assert.False(t, byName["radial-lanczos3"].Separable)
}

func TestSeparableFactorization(t *testing.T) {
	f, err := Create("triangle", raster.Vec2f{}, raster.Vec2f{X: 1, Y: 1})
	require.NoError(t, err)
	require.True(t, f.Separable())

	for _, x := range []float32{-0.9, -0.3, 0, 0.4, 0.8} {
		for _, y := range []float32{-0.7, 0, 0.2, 0.9} {
			assert.InDelta(t, f.Xfilt(x)*f.Yfilt(y), f.Eval(x, y), 1e-6,
				"2D response factors into 1D responses at (%v,%v)", x, y)
		}
	}
}

func TestBoxUnitSupport(t *testing.T) {
	f, err := Create("box", raster.Vec2f{}, raster.Vec2f{X: 1, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, float32(1), f.Width())

	assert.Equal(t, float32(1), f.Xfilt(0))
	assert.Equal(t, float32(1), f.Xfilt(0.5), "support is inclusive at the half-pixel edge")
	assert.Equal(t, float32(0), f.Xfilt(1))
	assert.Equal(t, float32(0), f.Xfilt(-1))
}

func TestKernelShapes(t *testing.T) {
	names := []string{"triangle", "gaussian", "blackman-harris", "lanczos3", "mitchell", "bspline", "catmull-rom"}
	for _, name := range names {
		f, err := Create(name, raster.Vec2f{}, raster.Vec2f{X: 1, Y: 1})
		require.NoError(t, err, name)

		assert.Greater(t, f.Xfilt(0), float32(0), "%s has positive central weight", name)
		assert.InDelta(t, f.Xfilt(0.4), f.Xfilt(-0.4), 1e-6, "%s is symmetric", name)
		assert.Equal(t, float32(0), f.Xfilt(f.Width()), "%s vanishes beyond its support", name)
	}
}

func TestNonSeparableKernels(t *testing.T) {
	disk, err := Create("disk", raster.Vec2f{X: 2, Y: 2}, raster.Vec2f{X: 1, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, float32(1), disk.Eval(0, 0))
	assert.Equal(t, float32(1), disk.Eval(1, 0), "on the rim counts as inside")
	assert.Equal(t, float32(0), disk.Eval(1, 1), "the corner lies outside the disk")

	rl, err := Create("radial-lanczos3", raster.Vec2f{}, raster.Vec2f{X: 1, Y: 1})
	require.NoError(t, err)
	assert.InDelta(t, 1, rl.Eval(0, 0), 1e-6)
	assert.InDelta(t, rl.Eval(1, 0), rl.Eval(0, 1), 1e-6, "radial response is rotation symmetric on axes")
}
