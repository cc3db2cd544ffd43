package zhl16c

import (
	"github.com/m5lapp/zhl16c/compartment"
	"github.com/m5lapp/zhl16c/gas"
)

// BailoutAnalysis is the result of CalculateBailoutPlan: the worst-case
// point in the planned CCR dive to abort at, the OC time-to-surface from
// there, the CCR segments leading up to it, and the full OC ascent
// schedule that should be followed.
type BailoutAnalysis struct {
	WorstCaseDepth         float64
	WorstCaseTTS           float64
	CCRSegmentsToWorstCase []CCRPlanSegment
	BailoutSchedule        []DiveSegment
}

type bailoutSnapshot struct {
	depth         float64
	tissue        [compartment.Count]compartment.Compartment
	segmentsSoFar []CCRPlanSegment
}

// CalculateBailoutPlan plays the planned CCR dive forward on a simulation
// copy of the engine, snapshotting tissue state at the end of every
// segment, then asks "if the diver bailed out to open circuit here, what
// would their OC time-to-surface be?" for every snapshot using
// bailoutGases (bailoutGases[0] is the primary/bottom bailout gas; the
// rest are treated as OC deco gases). The snapshot with the greatest OC TTS
// is the worst case; its full OC schedule (prefixed by a
// cfg.TroubleshootingTime stop on the primary bailout gas, if any) and the
// CCR segments leading up to it are returned. Fails with
// *zhlerr.CannotDilute if playing back the CCR dive itself requires a
// diluent derivation that is impossible, or *zhlerr.MaxDurationExceeded if
// any candidate's OC schedule does not converge.
func (e *Engine) CalculateBailoutPlan(ccrDive []CCRPlanSegment, diluent *gas.Gas, bailoutGases []*gas.Gas, gfLow, gfHigh float64, cfg DecoConfig, surfacePressure float64) (*BailoutAnalysis, error) {
	sim := e.Clone()

	var snapshots []bailoutSnapshot
	var segmentsSoFar []CCRPlanSegment
	for _, seg := range ccrDive {
		if err := sim.AddCCRSegment(seg.StartDepth, seg.EndDepth, seg.Time, diluent, seg.Setpoint, surfacePressure); err != nil {
			return nil, err
		}
		segmentsSoFar = append(segmentsSoFar, seg)
		snapshots = append(snapshots, bailoutSnapshot{
			depth:         seg.EndDepth,
			tissue:        sim.compartments,
			segmentsSoFar: append([]CCRPlanSegment(nil), segmentsSoFar...),
		})
	}

	if len(snapshots) == 0 {
		return &BailoutAnalysis{}, nil
	}

	primary := bailoutGases[0]
	decoGases := bailoutGases[1:]

	var worst *bailoutSnapshot
	var worstTTS float64 = -1
	var worstSchedule []DiveSegment

	for i := range snapshots {
		snap := &snapshots[i]
		probe := &Engine{compartments: snap.tissue, waterDensity: sim.waterDensity, surfacePressure: sim.surfacePressure}

		tts := 0.0
		var schedule []DiveSegment
		if cfg.TroubleshootingTime > 0 {
			probe.AddSegment(snap.depth, snap.depth, cfg.TroubleshootingTime, primary, surfacePressure)
			schedule = append(schedule, DiveSegment{StartDepth: snap.depth, EndDepth: snap.depth, Time: cfg.TroubleshootingTime, Gas: primary})
			tts += cfg.TroubleshootingTime
		}

		ascent, err := probe.CalculateDecoStops(gfLow, gfHigh, snap.depth, primary, decoGases, cfg, surfacePressure)
		if err != nil {
			return nil, err
		}
		schedule = append(schedule, ascent...)
		for _, s := range ascent {
			tts += s.Time
		}

		if tts > worstTTS {
			worstTTS = tts
			worst = snap
			worstSchedule = schedule
		}
	}

	return &BailoutAnalysis{
		WorstCaseDepth:         worst.depth,
		WorstCaseTTS:           worstTTS,
		CCRSegmentsToWorstCase: worst.segmentsSoFar,
		BailoutSchedule:        worstSchedule,
	}, nil
}
