// Package filters - 2D filter kernels for raster resampling.
//
// Kernels are looked up by name in a fixed descriptor table that records
// each filter's natural support width (in destination pixels) and whether
// its 2D response factors into independent horizontal and vertical 1D
// responses. Kernels are immutable values; two kernels behave identically
// for caching purposes iff their name, width and height match exactly.
package filters

import (
	"github.com/chewxy/math32"
	"github.com/pkg/errors"

	"github.com/nvr-ai/go-resample/raster"
)

// Default filter names chosen when no filter is configured.
const (
	// DefaultUpsizing favors smooth interpolation when enlarging.
	DefaultUpsizing = "blackman-harris"
	// DefaultDownsizing favors alias suppression when shrinking.
	DefaultDownsizing = "lanczos3"
)

// Desc describes a registered filter: its name, the recommended support
// width in destination pixels, and whether it is separable.
type Desc struct {
	Name      string
	Width     float32
	Separable bool
}

// descriptors is the fixed registry table. Order is stable so it can be
// enumerated deterministically.
var descriptors = []Desc{
	{Name: "box", Width: 1, Separable: true},
	{Name: "triangle", Width: 2, Separable: true},
	{Name: "gaussian", Width: 3, Separable: true},
	{Name: "blackman-harris", Width: 3, Separable: true},
	{Name: "sinc", Width: 4, Separable: true},
	{Name: "lanczos3", Width: 6, Separable: true},
	{Name: "mitchell", Width: 4, Separable: true},
	{Name: "bspline", Width: 4, Separable: true},
	{Name: "catmull-rom", Width: 4, Separable: true},
	{Name: "disk", Width: 1, Separable: false},
	{Name: "radial-lanczos3", Width: 6, Separable: false},
}

// Descriptors returns a copy of the registry table.
func Descriptors() []Desc {
	out := make([]Desc, len(descriptors))
	copy(out, descriptors)
	return out
}

type weightFunc func(x, w float32) float32

var separableWeights = map[string]weightFunc{
	"box":             boxWeight,
	"triangle":        triangleWeight,
	"gaussian":        gaussianWeight,
	"blackman-harris": blackmanHarrisWeight,
	"sinc":            sincWeight,
	"lanczos3":        lanczos3Weight,
	"mitchell":        mitchellWeight,
	"bspline":         bsplineWeight,
	"catmull-rom":     catmullRomWeight,
}

type weight2DFunc func(x, y, w, h float32) float32

var combinedWeights = map[string]weight2DFunc{
	"disk":            diskWeight,
	"radial-lanczos3": radialLanczos3Weight,
}

// Filter is an immutable 2D kernel with a fixed support width and height
// expressed in destination pixels.
type Filter struct {
	name          string
	width, height float32
	separable     bool
	weight1D      weightFunc
	weight2D      weight2DFunc
}

// Name returns the registry name the filter was created under.
func (f *Filter) Name() string { return f.name }

// Width returns the horizontal support in destination pixels.
func (f *Filter) Width() float32 { return f.width }

// Height returns the vertical support in destination pixels.
func (f *Filter) Height() float32 { return f.height }

// Separable reports whether Eval factors into Xfilt and Yfilt.
func (f *Filter) Separable() bool { return f.separable }

// Xfilt evaluates the horizontal 1D response at offset x.
func (f *Filter) Xfilt(x float32) float32 {
	return f.weight1D(x, f.width)
}

// Yfilt evaluates the vertical 1D response at offset y.
func (f *Filter) Yfilt(y float32) float32 {
	return f.weight1D(y, f.height)
}

// Eval evaluates the combined 2D response at offset (x,y).
func (f *Filter) Eval(x, y float32) float32 {
	if f.separable {
		return f.weight1D(x, f.width) * f.weight1D(y, f.height)
	}
	return f.weight2D(x, y, f.width, f.height)
}

// Create builds a kernel for one resampling evaluation.
//
// An empty name selects a default based on the scale ratio: enlarging on
// either axis picks DefaultUpsizing, otherwise DefaultDownsizing. A
// positive requested width or height is used verbatim (it is already in
// destination pixels); a zero one derives from the filter's natural width
// scaled by max(1, ratio) on that axis, keeping the support adequate in
// source pixels when shrinking.
//
// Arguments:
//   - name: The registry name of the filter, or "" for automatic selection.
//   - width: Explicit support per axis; 0 on an axis means derive it.
//   - ratio: The destination/source scale ratio per axis.
//
// Returns:
//   - *Filter: The constructed kernel.
//   - error: An error if the name is not in the registry.
func Create(name string, width raster.Vec2f, ratio raster.Vec2f) (*Filter, error) {
	if name == "" {
		if ratio.X > 1 || ratio.Y > 1 {
			name = DefaultUpsizing
		} else {
			name = DefaultDownsizing
		}
	}

	for _, d := range descriptors {
		if d.Name != name {
			continue
		}
		f := &Filter{
			name:      d.Name,
			width:     d.Width * math32.Max(1, ratio.X),
			height:    d.Width * math32.Max(1, ratio.Y),
			separable: d.Separable,
		}
		if width.X > 0 {
			f.width = width.X
		}
		if width.Y > 0 {
			f.height = width.Y
		}
		if d.Separable {
			f.weight1D = separableWeights[d.Name]
		} else {
			f.weight2D = combinedWeights[d.Name]
		}
		return f, nil
	}

	return nil, errors.Errorf("unknown filter %q", name)
}
