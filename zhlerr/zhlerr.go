// Package zhlerr holds the engine's three typed failure kinds, shared
// between the gas and engine packages so neither has to import the other to
// report them.
package zhlerr

import "fmt"

// InvalidGas reports a gas mixture whose fractions are out of range or do
// not sum to 1 within tolerance.
type InvalidGas struct {
	Reason string
}

func (e *InvalidGas) Error() string {
	return fmt.Sprintf("zhl16c: invalid gas: %s", e.Reason)
}

// CannotDilute reports that a CCR effective-gas derivation is impossible for
// the given depth, setpoint and diluent: the diluent does not carry enough
// inert gas to make up the remainder once the setpoint's O2 is accounted
// for. The caller must raise the setpoint, ascend, or carry a diluent with
// more inert content.
type CannotDilute struct {
	Depth, Setpoint float64
}

func (e *CannotDilute) Error() string {
	return fmt.Sprintf("zhl16c: cannot dilute to setpoint %.3f bar at depth %.1fm with this diluent", e.Setpoint, e.Depth)
}

// MaxDurationExceeded reports that a deco scheduler gave up without reaching
// the surface - because the OC schedule ran past its simulated-time limit or
// a scheduler hit its iteration cap - either a pathological input or a bug,
// never silently truncated. IterationCap is the number of iterations the
// scheduler had run when it gave up.
type MaxDurationExceeded struct {
	IterationCap int
}

func (e *MaxDurationExceeded) Error() string {
	return fmt.Sprintf("zhl16c: deco schedule did not converge within %d iterations", e.IterationCap)
}
