package zhl16c

import (
	"math"

	"github.com/m5lapp/zhl16c/compartment"
	"github.com/m5lapp/zhl16c/gas"
	"github.com/m5lapp/zhl16c/pressure"
)

// Engine owns the vector of sixteen ZH-L16C tissue compartments for one
// dive and exposes the ceiling, NDL, deco-schedule, time-to-surface and
// bailout-plan operations over it. It is purely CPU-bound and carries no
// hidden shared mutable state, so a value obtained from Clone is safe to
// hand to another goroutine for independent "what-if" evaluation.
type Engine struct {
	compartments    [compartment.Count]compartment.Compartment
	waterDensity    float64
	surfacePressure float64
}

// NewEngine constructs an Engine and seeds its tissues from a
// surface-equilibrium assumption on air at initialSurfacePressure. A zero
// surfacePressure or waterDensity falls back to the package defaults; a
// zero initialSurfacePressure falls back to surfacePressure itself, so
// that altitude acclimatisation only needs to be specified when it differs
// from the dive's own surface pressure.
func NewEngine(surfacePressure, waterDensity, initialSurfacePressure float64) *Engine {
	if surfacePressure <= 0 {
		surfacePressure = pressure.DefaultSurfacePressure
	}
	if waterDensity <= 0 {
		waterDensity = pressure.DefaultWaterDensity
	}
	if initialSurfacePressure <= 0 {
		initialSurfacePressure = surfacePressure
	}

	return &Engine{
		compartments:    compartment.New(initialSurfacePressure, 0.79, 0.0),
		waterDensity:    waterDensity,
		surfacePressure: surfacePressure,
	}
}

// InitializeTissues reseeds every compartment from a surface-equilibrium
// assumption breathing g at surfacePressure. This is how a diver who
// pre-saturated at one surface pressure (e.g. sea level) before driving up
// to an altitude dive site gets modelled: construct the Engine at the
// altitude's surface pressure, then call InitializeTissues with the sea
// level pressure they actually equilibrated at.
func (e *Engine) InitializeTissues(surfacePressure float64, g *gas.Gas) {
	e.compartments = compartment.New(surfacePressure, g.FN2, g.FHe)
}

// Clone returns an independent copy of the engine; mutating the clone's
// tissue state never affects the receiver. Compartment holds only scalar
// fields, so this is a cheap value copy - no shared backing arrays or
// pointers survive the copy.
func (e *Engine) Clone() *Engine {
	clone := *e
	return &clone
}

// AddSegment mutates the engine's tissue state for an open-circuit segment:
// a linear depth change from startDepth to endDepth over time minutes,
// breathing g. A non-positive time is a defensive no-op.
func (e *Engine) AddSegment(startDepth, endDepth, time float64, g *gas.Gas, surfacePressure float64) {
	if time <= 0 {
		return
	}
	p0 := pressure.ToBar(startDepth, surfacePressure, e.waterDensity)
	p1 := pressure.ToBar(endDepth, surfacePressure, e.waterDensity)
	for i := range e.compartments {
		e.compartments[i].Schreiner(p0, p1, time, g.FN2, g.FHe)
	}
}

// AddCCRSegment mutates the engine's tissue state for a closed-circuit
// segment held at setpoint ppO2 on diluent. A segment whose start
// and end depth differ by more than 1cm is discretised into steps of at
// most 0.5m, each using the effective gas derived at the step's midpoint;
// a constant-depth segment uses a single effective gas for its whole
// duration. Fails with a *zhlerr.CannotDilute if the diluent cannot supply
// the required inert fraction at any step.
func (e *Engine) AddCCRSegment(startDepth, endDepth, time float64, diluent *gas.Gas, setpoint, surfacePressure float64) error {
	if time <= 0 {
		return nil
	}

	if math.Abs(endDepth-startDepth) <= 0.01 {
		pAmb := pressure.ToBar(startDepth, surfacePressure, e.waterDensity)
		eff, err := gas.EffectiveCCRGas(pAmb, setpoint, diluent)
		if err != nil {
			return err
		}
		for i := range e.compartments {
			e.compartments[i].Schreiner(pAmb, pAmb, time, eff.FN2, eff.FHe)
		}
		return nil
	}

	totalDelta := endDepth - startDepth
	steps := int(math.Ceil(math.Abs(totalDelta) / 0.5))
	if steps < 1 {
		steps = 1
	}
	stepDepth := totalDelta / float64(steps)
	stepTime := time / float64(steps)

	curr := startDepth
	for s := 0; s < steps; s++ {
		next := curr + stepDepth
		mid := (curr + next) / 2.0
		pMid := pressure.ToBar(mid, surfacePressure, e.waterDensity)
		eff, err := gas.EffectiveCCRGas(pMid, setpoint, diluent)
		if err != nil {
			return err
		}
		p0 := pressure.ToBar(curr, surfacePressure, e.waterDensity)
		p1 := pressure.ToBar(next, surfacePressure, e.waterDensity)
		for i := range e.compartments {
			e.compartments[i].Schreiner(p0, p1, stepTime, eff.FN2, eff.FHe)
		}
		curr = next
	}
	return nil
}

