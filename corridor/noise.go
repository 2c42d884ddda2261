package corridor

import math "github.com/aurelien-rainone/math32"

// hashLattice mixes an integer lattice coordinate with the seed into a
// deterministic 32-bit value. Per §4.1: "a deterministic 32-bit integer
// mix of (x + 57*y + seed)". float32 is used throughout this file instead
// of math.float64, following the teacher's own choice of math32 for every
// float computation in the build pipeline (recast.go uses math32.Cos for
// exactly this reason) — keeping one float width end to end avoids
// float64<->float32 rounding drift between otherwise identical hash
// computations on different platforms, which would break spec §5's
// determinism guarantee.
func hashLattice(x, y int32, seed uint32) uint32 {
	n := uint32(x) + 57*uint32(y) + seed
	n = (n << 13) ^ n
	n = n*(n*n*15731+789221) + 1376312589
	return n
}

// latticeValue01 returns a deterministic value in [0, 1) for an integer
// lattice point.
func latticeValue01(x, y int32, seed uint32) float32 {
	h := hashLattice(x, y, seed)
	return float32(h&0x7fffffff) / float32(0x80000000)
}

// smoothstep is the classic 3t^2 - 2t^3 ease curve used to blend between
// lattice samples.
func smoothstep(t float32) float32 {
	return t * t * (3 - 2*t)
}

// lerp linearly interpolates between a and b.
func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// valueNoise2D computes bilinearly-interpolated, smoothstep-eased value
// noise at (x, y): "bilinear interpolation of a hashed integer lattice,
// smoothed with smoothstep; returns [0,1]" (§4.1 step 2).
func valueNoise2D(x, y float32, seed uint32) float32 {
	x0 := math.Floor(x)
	y0 := math.Floor(y)
	ix0, iy0 := int32(x0), int32(y0)

	tx := smoothstep(x - x0)
	ty := smoothstep(y - y0)

	v00 := latticeValue01(ix0, iy0, seed)
	v10 := latticeValue01(ix0+1, iy0, seed)
	v01 := latticeValue01(ix0, iy0+1, seed)
	v11 := latticeValue01(ix0+1, iy0+1, seed)

	top := lerp(v00, v10, tx)
	bottom := lerp(v01, v11, tx)
	return lerp(top, bottom, ty)
}

// ridgedScore applies the ridged transform of §4.1 step 3: r = 1 -
// |2n-1|, then squared, turning smooth value noise into branching,
// cave-like ridges.
func ridgedScore(n float32) float32 {
	r := 1 - math.Abs(2*n-1)
	return r * r
}

// noiseField parameters, derived from grid dimensions per §4.1 step 1.
type noiseField struct {
	baseFreq, warpFreq, warpAmp float32
	seed                        uint32
}

func newNoiseField(width, length int, seed uint32) noiseField {
	baseFreq := float32(12) / float32(width+length)
	return noiseField{
		baseFreq: baseFreq,
		warpFreq: 0.5 * baseFreq,
		warpAmp:  4.0,
		seed:     seed,
	}
}

// scoreAt computes the ridged, domain-warped noise score for cell (x, y),
// following §4.1 steps 2-3: two value-noise samples at warped coordinates
// feed the warp offset, then a third sample at the warped position is
// passed through the ridged transform.
func (nf noiseField) scoreAt(x, y int) float32 {
	fx, fy := float32(x), float32(y)

	qx := valueNoise2D(fx*nf.warpFreq, fy*nf.warpFreq, nf.seed+101)
	qy := valueNoise2D(fx*nf.warpFreq+19.19, fy*nf.warpFreq+7.7, nf.seed+211)

	wx := fx + (qx*2-1)*nf.warpAmp
	wy := fy + (qy*2-1)*nf.warpAmp

	n := valueNoise2D(wx*nf.baseFreq, wy*nf.baseFreq, nf.seed)
	return ridgedScore(n)
}
