// sim/metrics_utils.go
package sim

import (
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds the averages reported at the end of a run.
type Summary struct {
	AvgWaitTime        float64 // per served group, minutes
	AvgResurfacingWait float64 // minutes
	MaxResurfacingWait float64 // minutes
	P90ResurfacingWait float64 // minutes
	MeanQueueLength    float64 // at admission
	MaxQueueLength     int     // at admission
	MeanIceQuality     float64
	MinIceQuality      float64
	RejectionRate      float64 // rejected / (served + rejected)
}

// Summarize computes aggregate figures from finalized statistics.
// Safe for empty series (returns zero-value fields).
func Summarize(m *Statistics) *Summary {
	s := &Summary{}
	if m.ServedGroups > 0 {
		s.AvgWaitTime = m.TotalWaitTime / float64(m.ServedGroups)
	}
	if decided := m.ServedGroups + m.RejectedGroups; decided > 0 {
		s.RejectionRate = float64(m.RejectedGroups) / float64(decided)
	}

	if waits := m.IceResurfacingWaitTimes; len(waits) > 0 {
		s.AvgResurfacingWait = stat.Mean(waits, nil)
		s.MaxResurfacingWait = floats.Max(waits)
		sorted := slices.Clone(waits)
		slices.Sort(sorted)
		s.P90ResurfacingWait = stat.Quantile(0.9, stat.Empirical, sorted, nil)
	}

	if len(m.QueueLengths) > 0 {
		lengths := make([]float64, len(m.QueueLengths))
		for i, l := range m.QueueLengths {
			lengths[i] = float64(l)
		}
		s.MeanQueueLength = stat.Mean(lengths, nil)
		s.MaxQueueLength = slices.Max(m.QueueLengths)
	}

	if len(m.IceQualityTimes) > 0 {
		qualities := make([]float64, len(m.IceQualityTimes))
		for i, q := range m.IceQualityTimes {
			qualities[i] = q.Quality
		}
		s.MeanIceQuality = stat.Mean(qualities, nil)
		s.MinIceQuality = floats.Min(qualities)
	}
	return s
}
