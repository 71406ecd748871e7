package resample

import (
	"github.com/pkg/errors"

	"github.com/nvr-ai/go-resample/filters"
)

// Passes is a bitmask of the filter passes an evaluation performs.
type Passes uint8

const (
	// Horizontal applies the 1D horizontal half of a separable kernel.
	Horizontal Passes = 1 << iota
	// Vertical applies the 1D vertical half of a separable kernel.
	Vertical
	// Both applies the full 2D kernel in a single combined pass.
	Both = Horizontal | Vertical
)

// DebugMode overrides the normal pass selection for validation.
type DebugMode int

const (
	// DebugOff selects passes normally.
	DebugOff DebugMode = iota
	// DebugHorizontalPass outputs the horizontal pass directly for
	// inspection.
	DebugHorizontalPass
	// DebugSinglePass forces the combined 2D path even for separable
	// kernels, as a reference the two-pass path can be validated against.
	DebugSinglePass
)

// Target identifies which raster of the operation is being evaluated.
type Target int

const (
	// Out is the final resampled raster.
	Out Target = iota
	// HorizontalPass is the intermediate raster holding only the
	// horizontal half of a separable resample. It has the destination's
	// horizontal extent and the source's vertical extent, and is cached
	// for consumption by the vertical pass.
	HorizontalPass
)

// requiredPasses decides which passes evaluating the target needs. For the
// final output of a separable kernel only the vertical pass runs, reading
// the cached horizontal pass; non-separable kernels always run combined. A
// horizontal-only evaluation of a non-separable kernel is an error: the
// kernel has no 1D projection to run.
func requiredPasses(debug DebugMode, target Target, f *filters.Filter) (Passes, error) {
	if debug == DebugHorizontalPass {
		if !f.Separable() {
			return 0, errors.Errorf("filter %q is not separable and has no horizontal pass", f.Name())
		}
		return Horizontal, nil
	}
	if debug == DebugSinglePass {
		return Both, nil
	}
	if target == Out {
		if f.Separable() {
			return Vertical, nil
		}
		return Both, nil
	}
	if !f.Separable() {
		return 0, errors.Errorf("filter %q is not separable and has no horizontal pass", f.Name())
	}
	return Horizontal, nil
}
