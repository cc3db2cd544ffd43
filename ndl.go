package zhl16c

import "github.com/m5lapp/zhl16c/gas"

// maxNDL is the cap, in minutes, beyond which NDL is reported as simply
// "999+".
const maxNDL = 999

// NDL returns the no-decompression limit in minutes at depth breathing g,
// If the current tissue state already carries a ceiling at gf, no
// further bottom time is available and NDL is 0. Otherwise a clone of the
// tissue state is walked forward in 1-minute iso-depth steps until some
// compartment's tolerated ambient pressure would exceed surfacePressure,
// capping at 999 minutes.
func (e *Engine) NDL(depth float64, g *gas.Gas, gf, surfacePressure float64) int {
	gf = clampGF(gf)

	if e.Ceiling(gf, gf, nil, surfacePressure) > 0 {
		return 0
	}

	sim := e.Clone()
	for t := 1; t <= maxNDL; t++ {
		sim.AddSegment(depth, depth, 1.0, g, surfacePressure)

		for i := range sim.compartments {
			if sim.compartments[i].ToleratedAmbientPressure(gf) > surfacePressure {
				return t - 1
			}
		}
	}

	return maxNDL
}
