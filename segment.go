package zhl16c

import "github.com/m5lapp/zhl16c/gas"

// DiveSegment describes one leg of a dive: a linear depth change (or a
// constant-depth stop, when StartDepth == EndDepth) lasting Time minutes.
// For an open-circuit segment, Gas is the gas actually breathed. For a CCR
// segment (CCR == true), Gas is the effective gas the rebreather delivered
// at that segment's representative depth (midpoint for a transition, the
// stop depth for a constant-depth segment), and Setpoint records the ppO2
// held.
type DiveSegment struct {
	StartDepth float64
	EndDepth   float64
	Time       float64
	Gas        *gas.Gas
	CCR        bool
	Setpoint   float64
}

// CCRPlanSegment describes one leg of a planned closed-circuit-rebreather
// dive as input to CalculateBailoutPlan: a depth change (or stop) of Time
// minutes holding ppO2 at Setpoint.
type CCRPlanSegment struct {
	StartDepth float64
	EndDepth   float64
	Time       float64
	Setpoint   float64
}
