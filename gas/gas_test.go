package gas

import (
	"errors"
	"math"
	"testing"

	"github.com/m5lapp/zhl16c/zhlerr"
)

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name               string
		fO2, fHe, fN2, mod float64
		wantErr            bool
	}{
		{name: "Air", fO2: 0.21, fHe: 0.0, fN2: 0.79, mod: 0, wantErr: false},
		{name: "Trimix 21/35", fO2: 0.21, fHe: 0.35, fN2: 0.44, mod: 50, wantErr: false},
		{name: "Out of range fO2", fO2: 1.2, fHe: 0.0, fN2: -0.2, wantErr: true},
		{name: "Does not sum to 1", fO2: 0.21, fHe: 0.35, fN2: 0.50, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.fO2, tt.fHe, tt.fN2, tt.mod)
			if (err != nil) != tt.wantErr {
				t.Errorf("New(%v,%v,%v) err = %v, wantErr %v", tt.fO2, tt.fHe, tt.fN2, err, tt.wantErr)
			}
			if tt.wantErr {
				var ig *zhlerr.InvalidGas
				if !errors.As(err, &ig) {
					t.Errorf("expected *zhlerr.InvalidGas, got %T", err)
				}
			}
		})
	}
}

func TestConvenienceConstructors(t *testing.T) {
	a := Air()
	if a.FO2 != 0.21 || a.FN2 != 0.79 || a.FHe != 0.0 {
		t.Errorf("Air() = %+v", a)
	}

	n, err := Nitrox(0.32, 30)
	if err != nil || math.Abs(n.FN2-0.68) > 1e-9 {
		t.Errorf("Nitrox(0.32) = %+v, err %v", n, err)
	}

	tx, err := Trimix(0.21, 0.35, 50)
	if err != nil || math.Abs(tx.FN2-0.44) > 1e-9 {
		t.Errorf("Trimix(0.21,0.35) = %+v, err %v", tx, err)
	}

	hx, err := Heliox(0.21, 60)
	if err != nil || hx.FN2 != 0.0 {
		t.Errorf("Heliox(0.21) = %+v, err %v", hx, err)
	}
}

// TestEffectiveCCRGas checks the CCR loop-gas derivation at 60m, diluent 10/50
// (fO2=0.10, fHe=0.50, fN2=0.40), setpoint 1.3.
func TestEffectiveCCRGas(t *testing.T) {
	diluent, err := Trimix(0.10, 0.50, 0)
	if err != nil {
		t.Fatalf("diluent: %v", err)
	}
	pAmb := 1.01325 + 60.0*1030.0*9.80665/100000.0

	eff, err := EffectiveCCRGas(pAmb, 1.3, diluent)
	if err != nil {
		t.Fatalf("EffectiveCCRGas: %v", err)
	}

	if math.Abs(eff.FO2-0.184) > 0.01 {
		t.Errorf("fO2 = %v, want ~0.184", eff.FO2)
	}

	gotRatio := eff.FHe / (eff.FHe + eff.FN2)
	wantRatio := diluent.FHe / (diluent.FHe + diluent.FN2)
	if math.Abs(gotRatio-wantRatio) > 0.01 {
		t.Errorf("He/(He+N2) ratio = %v, want ~%v", gotRatio, wantRatio)
	}
}

func TestEffectiveCCRGasCannotDilute(t *testing.T) {
	// Lean diluent, deep setpoint held at shallow depth: there isn't enough
	// inert gas in the diluent to fill the remainder once O2 is accounted
	// for.
	diluent, _ := Nitrox(0.99, 0)
	pAmb := 1.5 // ~5m

	_, err := EffectiveCCRGas(pAmb, 1.4, diluent)
	if err == nil {
		t.Fatal("expected CannotDilute error, got nil")
	}
	var cd *zhlerr.CannotDilute
	if !errors.As(err, &cd) {
		t.Errorf("expected *zhlerr.CannotDilute, got %T", err)
	}
}

func TestEffectiveCCRGasSetpointCappedByAmbient(t *testing.T) {
	diluent := Air()
	// At 2m (pAmb ~1.2), a 1.6 bar setpoint cannot be sustained; it should
	// be capped to pAmb, giving fO2 = 1.0 and zero inert fraction, which in
	// turn means the diluent's inert content always suffices.
	pAmb := 1.2
	eff, err := EffectiveCCRGas(pAmb, 1.6, diluent)
	if err != nil {
		t.Fatalf("EffectiveCCRGas: %v", err)
	}
	if math.Abs(eff.FO2-1.0) > 1e-9 {
		t.Errorf("fO2 = %v, want 1.0 (setpoint capped by ambient)", eff.FO2)
	}
}
