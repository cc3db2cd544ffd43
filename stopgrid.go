package zhl16c

import "math"

// nextStop returns the next candidate stop depth below d on the
// cfg.StopIncrement grid, snapping around cfg.LastStopDepth:
//  1. round down to the grid,
//  2. if we're already sitting on a grid point, aim for the next shallower
//     one,
//  3. never return a depth strictly between 0 and LastStopDepth,
//  4. never return a negative depth.
func nextStop(d float64, cfg DecoConfig) float64 {
	n := math.Floor(d/cfg.StopIncrement) * cfg.StopIncrement
	if math.Abs(n-d) < 0.01 {
		n -= cfg.StopIncrement
	}

	if n > 0 && n < cfg.LastStopDepth {
		if d > cfg.LastStopDepth {
			n = cfg.LastStopDepth
		} else {
			n = 0
		}
	}

	if n < 0 {
		n = 0
	}
	return n
}
