package zhl16c

import (
	"testing"

	"github.com/m5lapp/zhl16c/gas"
	"github.com/m5lapp/zhl16c/pressure"
)

func TestNDLFreshEngineAtSurface(t *testing.T) {
	e := NewEngine(0, 0, 0)
	n := e.NDL(0, gas.Air(), 1.0, pressure.DefaultSurfacePressure)
	if n != 999 {
		t.Errorf("NDL at surface = %v, want 999", n)
	}
}

// TestNDLTable checks the NDL on air at gf=1.0 against a table of depths.
func TestNDLTable(t *testing.T) {
	tests := []struct {
		depth    float64
		min, max int
	}{
		{depth: 12, min: 140, max: 250},
		{depth: 18, min: 50, max: 80},
		{depth: 24, min: 25, max: 40},
		{depth: 30, min: 15, max: 25},
		{depth: 40, min: 7, max: 15},
	}

	for _, tt := range tests {
		e := NewEngine(0, 0, 0)
		n := e.NDL(tt.depth, gas.Air(), 1.0, pressure.DefaultSurfacePressure)
		if n < tt.min || n > tt.max {
			t.Errorf("NDL(%vm, air, gf=1.0) = %v, want in [%d,%d]", tt.depth, n, tt.min, tt.max)
		}
	}
}

// TestNDL40mAir checks the no-decompression limit at 40m on air.
func TestNDL40mAir(t *testing.T) {
	e := NewEngine(0, 0, 0)
	n := e.NDL(40, gas.Air(), 1.0, pressure.DefaultSurfacePressure)
	if n < 5 || n > 15 {
		t.Errorf("NDL(40m, air, gf=1.0) = %v, want in [5,15]", n)
	}
}

func TestNDLMonotonicWithGF(t *testing.T) {
	depth := 30.0
	e70 := NewEngine(0, 0, 0)
	e85 := NewEngine(0, 0, 0)
	e100 := NewEngine(0, 0, 0)

	n70 := e70.NDL(depth, gas.Air(), 0.70, pressure.DefaultSurfacePressure)
	n85 := e85.NDL(depth, gas.Air(), 0.85, pressure.DefaultSurfacePressure)
	n100 := e100.NDL(depth, gas.Air(), 1.0, pressure.DefaultSurfacePressure)

	if !(n70 <= n85 && n85 <= n100) {
		t.Errorf("NDL not monotone non-decreasing in gf: gf0.7=%v gf0.85=%v gf1.0=%v", n70, n85, n100)
	}
}
