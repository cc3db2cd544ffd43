// Package compartment models the sixteen ZH-L16C tissue compartments: their
// static half-time/M-value coefficients, the inert-gas state each carries
// between dive segments, and the M-value/tolerated-ambient-pressure math
// used to derive a decompression ceiling.
package compartment

import "math"

// Count is the number of compartments in the ZH-L16C model.
const Count = 16

// pH2O is the partial pressure of water vapour in the lungs (alveoli), in
// bar. It is subtracted from ambient pressure before an inspired fraction
// is applied, because the lungs humidify every breath regardless of depth.
const pH2O = 0.0627

// coef holds one compartment's published ZH-L16C coefficients for both
// inert gases it may carry.
type coef struct {
	n2HalfTime, n2A, n2B float64
	heHalfTime, heA, heB float64
}

// coefs is the ZH-L16C compartment table. Values are bit-exact to those
// published by Bühlmann/Keller; N2 half-times run 4...635 minutes, He
// half-times 1.51...240.03 minutes (roughly N2/2.65).
var coefs = [Count]coef{
	{n2HalfTime: 4.0, n2A: 1.2599, n2B: 0.5240, heHalfTime: 1.51, heA: 1.6189, heB: 0.4245},
	{n2HalfTime: 8.0, n2A: 1.0000, n2B: 0.6514, heHalfTime: 3.02, heA: 1.3830, heB: 0.5747},
	{n2HalfTime: 12.5, n2A: 0.8618, n2B: 0.7222, heHalfTime: 4.72, heA: 1.1919, heB: 0.6527},
	{n2HalfTime: 18.5, n2A: 0.7562, n2B: 0.7825, heHalfTime: 6.99, heA: 1.0458, heB: 0.7223},
	{n2HalfTime: 27.0, n2A: 0.6667, n2B: 0.8126, heHalfTime: 10.21, heA: 0.9220, heB: 0.7582},
	{n2HalfTime: 38.3, n2A: 0.5600, n2B: 0.8434, heHalfTime: 14.48, heA: 0.8205, heB: 0.7957},
	{n2HalfTime: 54.3, n2A: 0.4947, n2B: 0.8693, heHalfTime: 20.53, heA: 0.7305, heB: 0.8279},
	{n2HalfTime: 77.0, n2A: 0.4500, n2B: 0.8910, heHalfTime: 29.11, heA: 0.6502, heB: 0.8553},
	{n2HalfTime: 109.0, n2A: 0.4187, n2B: 0.9092, heHalfTime: 41.20, heA: 0.5950, heB: 0.8757},
	{n2HalfTime: 146.0, n2A: 0.3798, n2B: 0.9222, heHalfTime: 55.19, heA: 0.5545, heB: 0.8903},
	{n2HalfTime: 187.0, n2A: 0.3497, n2B: 0.9319, heHalfTime: 70.69, heA: 0.5333, heB: 0.8997},
	{n2HalfTime: 239.0, n2A: 0.3223, n2B: 0.9403, heHalfTime: 90.34, heA: 0.5189, heB: 0.9073},
	{n2HalfTime: 305.0, n2A: 0.2850, n2B: 0.9477, heHalfTime: 115.29, heA: 0.5181, heB: 0.9122},
	{n2HalfTime: 390.0, n2A: 0.2737, n2B: 0.9544, heHalfTime: 147.42, heA: 0.5176, heB: 0.9171},
	{n2HalfTime: 498.0, n2A: 0.2523, n2B: 0.9602, heHalfTime: 188.24, heA: 0.5172, heB: 0.9217},
	{n2HalfTime: 635.0, n2A: 0.2327, n2B: 0.9653, heHalfTime: 240.03, heA: 0.5119, heB: 0.9267},
}

// Compartment is one tissue's dissolved inert-gas state plus its (immutable,
// table-derived) rate constants. The zero value is not meaningful; use New.
type Compartment struct {
	coef coef
	kN2  float64 // ln(2)/halfTimeN2
	kHe  float64 // ln(2)/halfTimeHe

	PN2 float64 // current partial pressure of dissolved N2, bar.
	PHe float64 // current partial pressure of dissolved He, bar.
}

// New seeds all sixteen compartments from a surface-equilibrium assumption:
// at rest, breathing the given gas fractions at surfacePressure. Used both
// for the normal sea-level start and for altitude acclimatisation, where
// surfacePressure is the pressure the diver equilibrated at before
// ascending/descending to the actual dive's surface pressure.
func New(surfacePressure, fN2, fHe float64) [Count]Compartment {
	var out [Count]Compartment
	alvN2 := (surfacePressure - pH2O) * fN2
	alvHe := (surfacePressure - pH2O) * fHe
	for i := 0; i < Count; i++ {
		out[i] = Compartment{
			coef: coefs[i],
			kN2:  math.Ln2 / coefs[i].n2HalfTime,
			kHe:  math.Ln2 / coefs[i].heHalfTime,
			PN2:  alvN2,
			PHe:  alvHe,
		}
	}
	return out
}

// N2HalfTime and HeHalfTime expose the raw table values for a given
// compartment index (0-15); used by tests checking the table is bit-exact.
func N2HalfTime(i int) float64 { return coefs[i].n2HalfTime }
func HeHalfTime(i int) float64 { return coefs[i].heHalfTime }
func N2A(i int) float64        { return coefs[i].n2A }
func N2B(i int) float64        { return coefs[i].n2B }

// schreiner solves the Schreiner equation for one inert species over a
// segment of duration t minutes, ambient pressure going linearly from p0 to
// p0+rate*t, breathing a gas with inert fraction f. pi is the compartment's
// starting partial pressure of that species; k is its rate constant.
func schreiner(p0, t, rate, f, pi, k float64) float64 {
	if t == 0 {
		return pi
	}
	palv := (p0 - pH2O) * f
	r := rate * f
	return palv + r*(t-1.0/k) - (palv-pi-r/k)*math.Exp(-k*t)
}

// Schreiner updates the compartment's N2 and He loading for a segment
// lasting t minutes in which ambient pressure moves linearly from p0 to p1,
// breathing a gas of inert fractions fN2/fHe. Both species are always
// updated; an fHe of zero still runs the He term, decaying it toward zero
// alveolar pressure rather than being special-cased out.
func (c *Compartment) Schreiner(p0, p1, t, fN2, fHe float64) {
	if t <= 0 {
		return
	}
	rate := (p1 - p0) / t
	c.PN2 = schreiner(p0, t, rate, fN2, c.PN2, c.kN2)
	c.PHe = schreiner(p0, t, rate, fHe, c.PHe, c.kHe)
}

// ab returns the inert-load-weighted a and b coefficients used by the
// Workman M-value form. When the compartment carries no inert gas at all,
// b is returned as 1 so ToleratedAmbientPressure stays well-defined; callers
// needing the "no limit" case should check MValue's own zero return instead.
func (c *Compartment) ab() (a, b float64) {
	total := c.PN2 + c.PHe
	if total < 1e-10 {
		return 0, 1
	}
	a = (c.coef.n2A*c.PN2 + c.coef.heA*c.PHe) / total
	b = (c.coef.n2B*c.PN2 + c.coef.heB*c.PHe) / total
	return a, b
}

// MValue returns the tolerated inert-gas partial pressure at the given
// ambient pressure, per the Bühlmann Workman form M(Pamb) = Pamb/b + a. If
// the compartment carries no inert gas, no M-value limit applies and zero
// is returned.
func (c *Compartment) MValue(pAmb float64) float64 {
	if c.PN2+c.PHe < 1e-10 {
		return 0
	}
	a, b := c.ab()
	return pAmb/b + a
}

// ToleratedAmbientPressure returns the shallowest ambient pressure at which
// the compartment's current loading stays within the gf-gradient of its
// M-value, i.e. the closed-form solution of
// pN2+pHe <= Pamb + gf*(M(Pamb) - Pamb).
func (c *Compartment) ToleratedAmbientPressure(gf float64) float64 {
	a, b := c.ab()
	total := c.PN2 + c.PHe
	return (total - a*gf) / (gf/b + 1 - gf)
}

// Clone returns a value copy of the compartment set; Compartment holds no
// pointers or shared state, so callers may also just assign the array.
func Clone(cs [Count]Compartment) [Count]Compartment {
	return cs
}
