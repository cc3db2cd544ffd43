package zhl16c

import (
	"math"

	"github.com/m5lapp/zhl16c/pressure"
)

const ceilingSafetyEpsilon = 1e-9

// clampGF clamps a gradient factor into (0,1].
func clampGF(gf float64) float64 {
	if gf < 0.01 {
		return 0.01
	}
	if gf > 1.0 {
		return 1.0
	}
	return gf
}

// clampGFPair clamps both gradient factors and enforces gfLow <= gfHigh.
func clampGFPair(gfLow, gfHigh float64) (float64, float64) {
	gfLow = clampGF(gfLow)
	gfHigh = clampGF(gfHigh)
	if gfLow > gfHigh {
		gfLow = gfHigh
	}
	return gfLow, gfHigh
}

// firstStopAnchor returns the anchor depth used to define the variable
// gradient factor's slope: fixed, if the caller supplied one,
// otherwise the deepest tolerated-ambient-pressure depth across all sixteen
// compartments at gfLow.
func (e *Engine) firstStopAnchor(gfLow, surfacePressure float64, fixed *float64) float64 {
	if fixed != nil {
		return *fixed
	}

	maxDepth := 0.0
	for i := range e.compartments {
		pTol := e.compartments[i].ToleratedAmbientPressure(gfLow)
		d := pressure.ToDepth(pTol, surfacePressure, e.waterDensity)
		if d > maxDepth {
			maxDepth = d
		}
	}
	return maxDepth
}

// gfAtDepth is the variable gradient factor: gfLow at or
// below firstStop, linearly interpolated up to gfHigh at the surface, and
// gfHigh everywhere when firstStop is itself zero (no decompression
// obligation to anchor a slope to).
func gfAtDepth(d, firstStop, gfLow, gfHigh float64) float64 {
	if firstStop <= 0 {
		return gfHigh
	}
	if d >= firstStop {
		return gfLow
	}
	return gfHigh - (gfHigh-gfLow)*(d/firstStop)
}

// safeAtDepth is the safety predicate: every compartment's
// current loading must stay within the depth-dependent gradient factor of
// its M-value at d.
func (e *Engine) safeAtDepth(d, gfLow, gfHigh, firstStop, surfacePressure float64) bool {
	pAmb := pressure.ToBar(d, surfacePressure, e.waterDensity)
	gf := gfAtDepth(d, firstStop, gfLow, gfHigh)

	for i := range e.compartments {
		load := e.compartments[i].PN2 + e.compartments[i].PHe
		m := e.compartments[i].MValue(pAmb)
		if load > pAmb+gf*(m-pAmb)+ceilingSafetyEpsilon {
			return false
		}
	}
	return true
}

// Ceiling returns the shallowest depth in metres the diver may currently
// occupy without violating any compartment's gf-limited M-value.
// fixedFirstStopDepth, if non-nil, pins the variable-gradient-factor
// anchor instead of recomputing it from the current tissue state - this is
// how the deco scheduler keeps the GF slope from drifting stop to stop.
func (e *Engine) Ceiling(gfLow, gfHigh float64, fixedFirstStopDepth *float64, surfacePressure float64) float64 {
	gfLow, gfHigh = clampGFPair(gfLow, gfHigh)

	firstStop := e.firstStopAnchor(gfLow, surfacePressure, fixedFirstStopDepth)
	if firstStop <= 0 {
		return 0
	}

	if e.safeAtDepth(0, gfLow, gfHigh, firstStop, surfacePressure) {
		return 0
	}
	if !e.safeAtDepth(firstStop+0.1, gfLow, gfHigh, firstStop, surfacePressure) {
		return firstStop
	}

	lo, hi := 0.0, firstStop+0.1
	for hi-lo > 0.01 {
		mid := (lo + hi) / 2.0
		if e.safeAtDepth(mid, gfLow, gfHigh, firstStop, surfacePressure) {
			hi = mid
		} else {
			lo = mid
		}
	}
	return math.Ceil(hi*10) / 10
}

// referenceCeiling is a linear-scan cross-check for Ceiling: starting
// from the binary search's own upper bound, it steps shallower in 0.1m
// increments until the depth is no longer safe. It exists purely so tests
// can assert it agrees with the binary search within 0.1m; production code
// always uses Ceiling.
func (e *Engine) referenceCeiling(gfLow, gfHigh float64, fixedFirstStopDepth *float64, surfacePressure float64) float64 {
	gfLow, gfHigh = clampGFPair(gfLow, gfHigh)

	firstStop := e.firstStopAnchor(gfLow, surfacePressure, fixedFirstStopDepth)
	if firstStop <= 0 {
		return 0
	}
	if e.safeAtDepth(0, gfLow, gfHigh, firstStop, surfacePressure) {
		return 0
	}

	d := firstStop + 0.1
	if !e.safeAtDepth(d, gfLow, gfHigh, firstStop, surfacePressure) {
		return firstStop
	}

	for {
		next := d - 0.1
		if next <= 0 {
			return 0
		}
		if !e.safeAtDepth(next, gfLow, gfHigh, firstStop, surfacePressure) {
			return math.Ceil(d*10) / 10
		}
		d = next
	}
}
