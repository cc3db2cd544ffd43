package zhl16c

import (
	"testing"

	"github.com/m5lapp/zhl16c/gas"
	"github.com/m5lapp/zhl16c/pressure"
)

func TestCCRDecoShorterThanOCOnSameDiluent(t *testing.T) {
	diluent, _ := gas.Trimix(0.18, 0.45, 0)
	cfg := NewDecoConfig()

	ccrEngine := NewEngine(0, 0, 0)
	if err := ccrEngine.AddCCRSegment(0, 50, 5, diluent, 1.3, pressure.DefaultSurfacePressure); err != nil {
		t.Fatalf("AddCCRSegment descent: %v", err)
	}
	if err := ccrEngine.AddCCRSegment(50, 50, 25, diluent, 1.3, pressure.DefaultSurfacePressure); err != nil {
		t.Fatalf("AddCCRSegment bottom: %v", err)
	}
	ccrSchedule, err := ccrEngine.CalculateCCRDecoStops(0.30, 0.85, 50, diluent, 1.3, cfg, pressure.DefaultSurfacePressure)
	if err != nil {
		t.Fatalf("CalculateCCRDecoStops: %v", err)
	}
	var ccrTTS float64
	for _, s := range ccrSchedule {
		ccrTTS += s.Time
	}

	ocEngine := NewEngine(0, 0, 0)
	ocEngine.AddSegment(0, 50, 5, diluent, pressure.DefaultSurfacePressure)
	ocEngine.AddSegment(50, 50, 25, diluent, pressure.DefaultSurfacePressure)
	ocTTS, err := ocEngine.TimeToSurface(0.30, 0.85, 50, diluent, nil, cfg, pressure.DefaultSurfacePressure)
	if err != nil {
		t.Fatalf("TimeToSurface: %v", err)
	}

	if ccrTTS >= ocTTS {
		t.Errorf("CCR TTS (%v) not shorter than OC TTS on same diluent (%v)", ccrTTS, ocTTS)
	}
}

func TestCCRDecoCannotDilutePropagates(t *testing.T) {
	leanDiluent, _ := gas.Nitrox(0.99, 0)
	cfg := NewDecoConfig()

	e := NewEngine(0, 0, 0)
	// Force a deco obligation with a rich enough loading so the schedule
	// actually needs to evaluate the diluent at depth.
	air := gas.Air()
	e.AddSegment(0, 45, 5, air, pressure.DefaultSurfacePressure)
	e.AddSegment(45, 45, 30, air, pressure.DefaultSurfacePressure)

	_, err := e.CalculateCCRDecoStops(0.30, 0.85, 45, leanDiluent, 1.4, cfg, pressure.DefaultSurfacePressure)
	if err == nil {
		t.Fatal("expected CannotDilute to propagate from CalculateCCRDecoStops")
	}
}
