package zhl16c

// GasSwitchMode controls how a gas switch during OC ascent is charged
// against the schedule.
type GasSwitchMode int

const (
	// GasSwitchDisabled swaps gas instantly; no time is logged.
	GasSwitchDisabled GasSwitchMode = iota
	// GasSwitchMinimum adds a stop of at least GasSwitchTime minutes on the
	// new gas before continuing the ascent.
	GasSwitchMinimum
	// GasSwitchAdditive adds GasSwitchTime minutes on the old gas, then
	// switches.
	GasSwitchAdditive
)

func (m GasSwitchMode) String() string {
	switch m {
	case GasSwitchDisabled:
		return "disabled"
	case GasSwitchMinimum:
		return "minimum"
	case GasSwitchAdditive:
		return "additive"
	default:
		return "unknown"
	}
}

// DecoConfig holds the scheduler's tunable options; NewDecoConfig returns
// the documented defaults.
type DecoConfig struct {
	// AscentRate is the travel speed in m/min between stops.
	AscentRate float64
	// SurfaceRate is the travel speed in m/min from the last stop to the
	// surface. It is informational only: stops are still generated down to
	// LastStopDepth, never shallower.
	SurfaceRate float64
	// StopIncrement is the spacing in metres of candidate stop depths.
	StopIncrement float64
	// LastStopDepth is the shallowest stop depth; below this, ascent goes
	// directly to the surface.
	LastStopDepth float64
	// GasSwitchTime is the time in minutes charged at a gas switch,
	// interpreted according to GasSwitchMode.
	GasSwitchTime float64
	GasSwitchMode GasSwitchMode
	// TroubleshootingTime is the time in minutes held at depth on the
	// primary bailout gas before a bailout ascent begins.
	TroubleshootingTime float64
}

// NewDecoConfig returns a DecoConfig populated with the documented
// defaults: 9 m/min ascent, 3 m/min surface rate, 3 m stop spacing, a 3 m
// last stop, a 1-minute disabled gas switch and no troubleshooting time.
func NewDecoConfig() DecoConfig {
	return DecoConfig{
		AscentRate:          9.0,
		SurfaceRate:         3.0,
		StopIncrement:       3.0,
		LastStopDepth:       3.0,
		GasSwitchTime:       1.0,
		GasSwitchMode:       GasSwitchDisabled,
		TroubleshootingTime: 0.0,
	}
}
