package zhl16c

import (
	"math"
	"sort"

	"github.com/m5lapp/zhl16c/gas"
	"github.com/m5lapp/zhl16c/zhlerr"
)

// maxScheduleIterations bounds the deco-scheduler loop; it is a defensive
// upper bound against runaway bugs, not an expected termination condition -
// a well-formed dive terminates in at most a few thousand iterations.
const maxScheduleIterations = 100000

// maxScheduleMinutes bounds the simulated OC ascent time: a schedule whose
// stops and travel add up to more than a day is reported as
// MaxDurationExceeded instead of being returned.
const maxScheduleMinutes = 24 * 60

// gasSwitchTolerance is how close two gas mixtures must be to be considered
// "the same gas" when deciding whether a switch is worth making.
const gasSwitchTolerance = 1e-3

type decoGasCandidate struct {
	g           *gas.Gas
	switchDepth float64
	taken       bool
}

// switchDepth is the deepest multiple of stopIncrement at or shallower than
// the gas's MOD.
func switchDepthFor(g *gas.Gas, stopIncrement float64) float64 {
	return math.Floor(g.ModOrUnbounded()/stopIncrement) * stopIncrement
}

func gasesEqual(a, b *gas.Gas, tol float64) bool {
	return math.Abs(a.FO2-b.FO2) < tol &&
		math.Abs(a.FHe-b.FHe) < tol &&
		math.Abs(a.FN2-b.FN2) < tol
}

// betterDecoGas reports whether candidate is preferred over current per
// the gas-switch tie-break: higher fO2 wins, ties broken by higher fHe.
func betterDecoGas(candidate, current *gas.Gas) bool {
	if math.Abs(candidate.FO2-current.FO2) > 1e-9 {
		return candidate.FO2 > current.FO2
	}
	return candidate.FHe > current.FHe
}

// CalculateDecoStops generates the open-circuit ascent schedule from
// currentDepth to the surface on bottomGas, switching between the supplied
// decoGases as their MOD allows. The variable-gradient-factor
// anchor is computed once from the current tissue state and held fixed for
// the whole ascent; recomputing it per stop would make the schedule drift
// rather than converge. Fails with *zhlerr.MaxDurationExceeded if the
// schedule needs more than maxScheduleMinutes of stops and travel, or does
// not reach the surface within the iteration cap.
func (e *Engine) CalculateDecoStops(gfLow, gfHigh, currentDepth float64, bottomGas *gas.Gas, decoGases []*gas.Gas, cfg DecoConfig, surfacePressure float64) ([]DiveSegment, error) {
	gfLow, gfHigh = clampGFPair(gfLow, gfHigh)

	sim := e.Clone()
	firstStop := sim.firstStopAnchor(gfLow, surfacePressure, nil)

	candidates := make([]decoGasCandidate, len(decoGases))
	for i, g := range decoGases {
		candidates[i] = decoGasCandidate{g: g, switchDepth: switchDepthFor(g, cfg.StopIncrement)}
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].switchDepth > candidates[j].switchDepth })

	var segments []DiveSegment
	depth := currentDepth
	currentGas := bottomGas
	elapsed := 0.0

	for iter := 0; iter < maxScheduleIterations; iter++ {
		if depth <= 0.01 {
			return segments, nil
		}
		if elapsed > maxScheduleMinutes {
			return nil, &zhlerr.MaxDurationExceeded{IterationCap: iter}
		}

		nextStopDepth := nextStop(depth, cfg)

		if best := selectGasSwitch(candidates, depth, currentGas); best != nil {
			best.taken = true
			switch cfg.GasSwitchMode {
			case GasSwitchMinimum:
				sim.AddSegment(depth, depth, cfg.GasSwitchTime, best.g, surfacePressure)
				segments = append(segments, DiveSegment{StartDepth: depth, EndDepth: depth, Time: cfg.GasSwitchTime, Gas: best.g})
				elapsed += cfg.GasSwitchTime
			case GasSwitchAdditive:
				sim.AddSegment(depth, depth, cfg.GasSwitchTime, currentGas, surfacePressure)
				segments = append(segments, DiveSegment{StartDepth: depth, EndDepth: depth, Time: cfg.GasSwitchTime, Gas: currentGas})
				elapsed += cfg.GasSwitchTime
			}
			currentGas = best.g
			continue
		}

		ceil := sim.Ceiling(gfLow, gfHigh, &firstStop, surfacePressure)
		if ceil <= nextStopDepth+ceilingSafetyEpsilon {
			duration := (depth - nextStopDepth) / cfg.AscentRate
			sim.AddSegment(depth, nextStopDepth, duration, currentGas, surfacePressure)
			segments = append(segments, DiveSegment{StartDepth: depth, EndDepth: nextStopDepth, Time: duration, Gas: currentGas})
			elapsed += duration
			depth = nextStopDepth
		} else {
			sim.AddSegment(depth, depth, 1.0, currentGas, surfacePressure)
			segments = append(segments, DiveSegment{StartDepth: depth, EndDepth: depth, Time: 1.0, Gas: currentGas})
			elapsed += 1.0
		}
	}

	return nil, &zhlerr.MaxDurationExceeded{IterationCap: maxScheduleIterations}
}

// selectGasSwitch picks the best un-taken deco gas available at depth, or
// nil if none qualifies.
func selectGasSwitch(candidates []decoGasCandidate, depth float64, currentGas *gas.Gas) *decoGasCandidate {
	var best *decoGasCandidate
	for i := range candidates {
		c := &candidates[i]
		if c.taken {
			continue
		}
		if c.switchDepth < depth {
			continue
		}
		if depth > c.g.ModOrUnbounded()+ceilingSafetyEpsilon {
			continue
		}
		if gasesEqual(c.g, currentGas, gasSwitchTolerance) {
			continue
		}
		if best == nil || betterDecoGas(c.g, best.g) {
			best = c
		}
	}
	return best
}

// TimeToSurface returns the total minutes of the OC deco schedule from
// currentDepth to the surface, including every stop and travel segment.
func (e *Engine) TimeToSurface(gfLow, gfHigh, currentDepth float64, bottomGas *gas.Gas, decoGases []*gas.Gas, cfg DecoConfig, surfacePressure float64) (float64, error) {
	schedule, err := e.CalculateDecoStops(gfLow, gfHigh, currentDepth, bottomGas, decoGases, cfg, surfacePressure)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, s := range schedule {
		total += s.Time
	}
	return total, nil
}
