package zhl16c

import (
	"github.com/m5lapp/zhl16c/gas"
	"github.com/m5lapp/zhl16c/pressure"
	"github.com/m5lapp/zhl16c/zhlerr"
)

// CalculateCCRDecoStops generates the closed-circuit ascent schedule from
// currentDepth to the surface, holding ppO2 at setpoint on diluent
// throughout. It shares CalculateDecoStops' skeleton but has no
// gas-switch step; every stop and travel segment is written as a CCR
// segment whose effective gas is re-derived at the stop depth (stops) or
// the segment's midpoint depth (travel). Fails with *zhlerr.CannotDilute if
// any required effective-gas derivation is impossible, or
// *zhlerr.MaxDurationExceeded if the schedule does not converge.
func (e *Engine) CalculateCCRDecoStops(gfLow, gfHigh, currentDepth float64, diluent *gas.Gas, setpoint float64, cfg DecoConfig, surfacePressure float64) ([]DiveSegment, error) {
	gfLow, gfHigh = clampGFPair(gfLow, gfHigh)

	sim := e.Clone()
	firstStop := sim.firstStopAnchor(gfLow, surfacePressure, nil)

	var segments []DiveSegment
	depth := currentDepth

	for iter := 0; iter < maxScheduleIterations; iter++ {
		if depth <= 0.01 {
			return segments, nil
		}

		nextStopDepth := nextStop(depth, cfg)
		ceil := sim.Ceiling(gfLow, gfHigh, &firstStop, surfacePressure)

		if ceil <= nextStopDepth+ceilingSafetyEpsilon {
			duration := (depth - nextStopDepth) / cfg.AscentRate
			mid := (depth + nextStopDepth) / 2.0
			pMid := pressure.ToBar(mid, surfacePressure, sim.waterDensity)
			eff, err := gas.EffectiveCCRGas(pMid, setpoint, diluent)
			if err != nil {
				return nil, err
			}
			if err := sim.AddCCRSegment(depth, nextStopDepth, duration, diluent, setpoint, surfacePressure); err != nil {
				return nil, err
			}
			segments = append(segments, DiveSegment{StartDepth: depth, EndDepth: nextStopDepth, Time: duration, Gas: eff, CCR: true, Setpoint: setpoint})
			depth = nextStopDepth
		} else {
			pStop := pressure.ToBar(depth, surfacePressure, sim.waterDensity)
			eff, err := gas.EffectiveCCRGas(pStop, setpoint, diluent)
			if err != nil {
				return nil, err
			}
			if err := sim.AddCCRSegment(depth, depth, 1.0, diluent, setpoint, surfacePressure); err != nil {
				return nil, err
			}
			segments = append(segments, DiveSegment{StartDepth: depth, EndDepth: depth, Time: 1.0, Gas: eff, CCR: true, Setpoint: setpoint})
		}
	}

	return nil, &zhlerr.MaxDurationExceeded{IterationCap: maxScheduleIterations}
}
