// Package gas represents breathing-gas mixtures and the closed-circuit
// rebreather "effective gas at depth" derivation from a diluent and
// setpoint.
package gas

import (
	"math"

	"github.com/m5lapp/zhl16c/zhlerr"
)

const sumTolerance = 1e-4

// Gas is a breathing-gas mixture; fractions sum to 1 within sumTolerance.
// Mod is the gas's maximum operating depth in metres, as supplied by the
// caller (the engine does not derive MOD from a ppO2 limit - oxygen
// toxicity is out of scope). A Mod of zero means the gas carries no
// operating-depth restriction.
type Gas struct {
	FO2 float64
	FHe float64
	FN2 float64
	Mod float64
}

// New validates and constructs a Gas from its three fractions and an
// optional MOD. Fractions must each lie in [0,1] and sum to 1 within 1e-4.
func New(fO2, fHe, fN2, modMeters float64) (*Gas, error) {
	if fO2 < 0 || fO2 > 1 {
		return nil, &zhlerr.InvalidGas{Reason: "fO2 out of range [0,1]"}
	}
	if fHe < 0 || fHe > 1 {
		return nil, &zhlerr.InvalidGas{Reason: "fHe out of range [0,1]"}
	}
	if fN2 < 0 || fN2 > 1 {
		return nil, &zhlerr.InvalidGas{Reason: "fN2 out of range [0,1]"}
	}
	if math.Abs(fO2+fHe+fN2-1.0) > sumTolerance {
		return nil, &zhlerr.InvalidGas{Reason: "fractions do not sum to 1"}
	}
	return &Gas{FO2: fO2, FHe: fHe, FN2: fN2, Mod: modMeters}, nil
}

// Air is a convenience constructor for a gas mix of pure air.
func Air() *Gas {
	g, _ := New(0.21, 0.0, 0.79, 0.0)
	return g
}

// Nitrox constructs an O2/N2 mix with the given O2 fraction and MOD.
func Nitrox(fO2, modMeters float64) (*Gas, error) {
	return New(fO2, 0.0, 1.0-fO2, modMeters)
}

// Trimix constructs an O2/He/N2 mix with the given O2 and He fractions and
// MOD; N2 is derived as the remainder.
func Trimix(fO2, fHe, modMeters float64) (*Gas, error) {
	return New(fO2, fHe, 1.0-fO2-fHe, modMeters)
}

// Heliox constructs an O2/He mix (no N2) with the given O2 fraction and MOD.
func Heliox(fO2, modMeters float64) (*Gas, error) {
	return New(fO2, 1.0-fO2, 0.0, modMeters)
}

// MixName classifies the gas for diagnostic/test purposes; it is not load
// bearing for any engine calculation.
func (g *Gas) MixName() string {
	switch {
	case g.FHe == 0 && math.Abs(g.FO2-0.21) < 1e-9:
		return "Air"
	case g.FHe > 0 && g.FN2 > 0:
		return "Trimix"
	case g.FHe > 0 && g.FN2 == 0:
		return "Heliox"
	case g.FHe == 0:
		return "Nitrox"
	default:
		return "Unknown"
	}
}

// ModOrUnbounded returns g.Mod, or math.MaxFloat64 if the gas was
// constructed with no MOD restriction (Mod == 0), so switch-depth
// computations can compare against it unconditionally.
func (g *Gas) ModOrUnbounded() float64 {
	if g.Mod <= 0 {
		return math.MaxFloat64
	}
	return g.Mod
}

// EffectiveCCRGas derives the breathing gas a closed-circuit rebreather
// actually delivers at ambient pressure pAmb, holding ppO2 at setpoint (bar)
// by diluting the given diluent:
//  1. The setpoint actually achievable is capped by ambient pressure.
//  2. fO2 follows directly from that.
//  3. The remaining inert fraction is split between He and N2 in the same
//     ratio the diluent itself carries them.
//
// Fails with CannotDilute if the diluent does not carry enough inert gas to
// supply the required remainder.
func EffectiveCCRGas(pAmb, setpoint float64, diluent *Gas) (*Gas, error) {
	spEff := math.Min(setpoint, pAmb)
	fO2 := spEff / pAmb
	fInert := 1.0 - fO2

	dInert := diluent.FHe + diluent.FN2
	if dInert-fInert <= 1e-4 {
		return nil, &zhlerr.CannotDilute{Depth: pressureToDepthHint(pAmb), Setpoint: setpoint}
	}

	var fHe float64
	if dInert > 1e-9 {
		fHe = fInert * diluent.FHe / dInert
	}
	fN2 := fInert - fHe

	return &Gas{FO2: fO2, FHe: fHe, FN2: fN2}, nil
}

// pressureToDepthHint gives CannotDilute's error message a rough depth
// without this package depending on the pressure package's configured
// surface pressure/water density; it uses the default 10m-per-bar
// approximation purely for the message, never for any tolerance math.
func pressureToDepthHint(pAmb float64) float64 {
	return (pAmb - 1.01325) * 10.0
}
