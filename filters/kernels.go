package filters

import "github.com/chewxy/math32"

// The 1D lobes below are defined over a natural domain and rescaled by the
// requested support width at evaluation time, so widening a filter widens
// its footprint without changing its shape.

func boxWeight(x, w float32) float32 {
	if math32.Abs(x) <= w*0.5 {
		return 1
	}
	return 0
}

func triangleWeight(x, w float32) float32 {
	t := math32.Abs(2 * x / w)
	if t < 1 {
		return 1 - t
	}
	return 0
}

func gaussianWeight(x, w float32) float32 {
	t := 2 * x / w
	if math32.Abs(t) < 1 {
		return math32.Exp(-2 * t * t)
	}
	return 0
}

// blackmanHarris1D evaluates the 3-term Blackman-Harris window over [-1,1].
func blackmanHarris1D(t float32) float32 {
	if t < -1 || t > 1 {
		return 0
	}
	// remap to [0,1] for the usual window formulation
	u := (t + 1) * 0.5
	const (
		a0 = 0.35875
		a1 = 0.48829
		a2 = 0.14128
		a3 = 0.01168
	)
	return a0 -
		a1*math32.Cos(2*math32.Pi*u) +
		a2*math32.Cos(4*math32.Pi*u) -
		a3*math32.Cos(6*math32.Pi*u)
}

func blackmanHarrisWeight(x, w float32) float32 {
	return blackmanHarris1D(2 * x / w)
}

func sinc1D(x float32) float32 {
	x = math32.Abs(x)
	if x < 1e-6 {
		return 1
	}
	x *= math32.Pi
	return math32.Sin(x) / x
}

// sincWeight is a truncated sinc: the lobe spacing stays at one destination
// pixel regardless of width, the width only truncates the tails.
func sincWeight(x, w float32) float32 {
	if math32.Abs(x) > w*0.5 {
		return 0
	}
	return sinc1D(x)
}

// lanczos1D evaluates a 3-lobe Lanczos-windowed sinc over [-3,3].
func lanczos1D(t float32) float32 {
	t = math32.Abs(t)
	if t >= 3 {
		return 0
	}
	return sinc1D(t) * sinc1D(t/3)
}

func lanczos3Weight(x, w float32) float32 {
	return lanczos1D(6 * x / w)
}

// mitchell1D evaluates the Mitchell-Netravali cubic (B=C=1/3) over [-2,2].
func mitchell1D(t float32) float32 {
	t = math32.Abs(t)
	if t >= 2 {
		return 0
	}
	const b, c = 1.0 / 3.0, 1.0 / 3.0
	if t < 1 {
		return ((12-9*b-6*c)*t*t*t + (-18+12*b+6*c)*t*t + (6 - 2*b)) / 6
	}
	return ((-b-6*c)*t*t*t + (6*b+30*c)*t*t + (-12*b-48*c)*t + (8*b + 24*c)) / 6
}

func mitchellWeight(x, w float32) float32 {
	return mitchell1D(4 * x / w)
}

// bspline1D evaluates the cubic B-spline over [-2,2].
func bspline1D(t float32) float32 {
	t = math32.Abs(t)
	if t >= 2 {
		return 0
	}
	if t < 1 {
		return (4 + t*t*(3*t-6)) / 6
	}
	u := 2 - t
	return u * u * u / 6
}

func bsplineWeight(x, w float32) float32 {
	return bspline1D(4 * x / w)
}

// catmullRom1D evaluates the Catmull-Rom cubic over [-2,2].
func catmullRom1D(t float32) float32 {
	t = math32.Abs(t)
	if t >= 2 {
		return 0
	}
	if t < 1 {
		return 1.5*t*t*t - 2.5*t*t + 1
	}
	return -0.5*t*t*t + 2.5*t*t - 4*t + 2
}

func catmullRomWeight(x, w float32) float32 {
	return catmullRom1D(4 * x / w)
}

// diskWeight is the indicator of an axis-scaled ellipse; it does not factor
// into 1D passes.
func diskWeight(x, y, w, h float32) float32 {
	tx := 2 * x / w
	ty := 2 * y / h
	if tx*tx+ty*ty <= 1 {
		return 1
	}
	return 0
}

// radialLanczos3Weight applies the Lanczos-3 lobe to the radial distance;
// it does not factor into 1D passes.
func radialLanczos3Weight(x, y, w, h float32) float32 {
	tx := 6 * x / w
	ty := 6 * y / h
	return lanczos1D(math32.Sqrt(tx*tx + ty*ty))
}
