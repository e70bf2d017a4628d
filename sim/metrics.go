// Tracks run-wide statistics: served and rejected groups, accumulated wait,
// game and resurfacing time, bad-ice time, and the raw time series.

package sim

import (
	"encoding/json"
	"fmt"
	"io"
)

// IceQualitySample is one (time, quality) observation.
// It serializes as a two-element JSON array.
type IceQualitySample struct {
	Time    float64
	Quality float64
}

func (s IceQualitySample) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{s.Time, s.Quality})
}

func (s *IceQualitySample) UnmarshalJSON(data []byte) error {
	var pair [2]float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("ice quality sample: %w", err)
	}
	s.Time, s.Quality = pair[0], pair[1]
	return nil
}

// Statistics aggregates everything a run measures. It is mutated only from
// the simulator's dispatch loop, finalized once at the horizon, and then
// handed to the caller as a snapshot.
type Statistics struct {
	ServedGroups    int `json:"served_groups"`
	RejectedGroups  int `json:"rejected_groups"`
	GroupsGenerated int `json:"groups_generated"`

	TotalWaitTime           float64 `json:"total_wait_time"`            // minutes
	TotalGameTime           float64 `json:"total_game_time"`            // minutes
	TotalIceResurfacingTime float64 `json:"total_ice_resurfacing_time"` // minutes
	BadIceTime              float64 `json:"bad_ice_time"`               // minutes
	IceResurfacingCount     int     `json:"ice_resurfacing_count"`

	// Derived by Finalize, percent
	Utilization      float64 `json:"utilization"`
	BadIcePercentage float64 `json:"bad_ice_percentage"`

	QueueLengths            []int              `json:"queue_lengths"`
	QueueTimes              []float64          `json:"queue_times"`
	IceResurfacingWaitTimes []float64          `json:"ice_resurfacing_wait_times"`
	IceQualityTimes         []IceQualitySample `json:"ice_quality_times"`
}

// NewStatistics returns an empty aggregator.
func NewStatistics() *Statistics {
	return &Statistics{
		QueueLengths:            make([]int, 0),
		QueueTimes:              make([]float64, 0),
		IceResurfacingWaitTimes: make([]float64, 0),
		IceQualityTimes:         make([]IceQualitySample, 0),
	}
}

// Finalize derives the percentages over a horizon of the given length.
// Game time is booked when a game starts, so the last game may run past the
// horizon; percentages are clamped to [0, 100].
func (m *Statistics) Finalize(horizon float64) {
	if horizon <= 0 {
		m.Utilization = 0
		m.BadIcePercentage = 0
		return
	}
	m.Utilization = clampPercent((m.TotalGameTime + m.TotalIceResurfacingTime) / horizon * 100)
	m.BadIcePercentage = clampPercent(m.BadIceTime / horizon * 100)
}

func clampPercent(v float64) float64 {
	return min(100, max(0, v))
}

// Print writes the results block of a finalized run.
func (m *Statistics) Print(w io.Writer, p Params) {
	summary := Summarize(m)
	fmt.Fprintln(w, "=== Simulation Results ===")
	fmt.Fprintf(w, "Simulated time          : %.2f h (%.0f min)\n", p.T, p.HorizonMinutes())
	fmt.Fprintf(w, "Groups generated        : %d\n", m.GroupsGenerated)
	fmt.Fprintf(w, "Served groups           : %d\n", m.ServedGroups)
	fmt.Fprintf(w, "Rejected groups         : %d\n", m.RejectedGroups)
	fmt.Fprintf(w, "Rink utilization        : %.2f%%\n", m.Utilization)
	fmt.Fprintf(w, "Resurfacings            : %d\n", m.IceResurfacingCount)
	fmt.Fprintf(w, "Resurfacing time        : %.2f min\n", m.TotalIceResurfacingTime)
	fmt.Fprintf(w, "Bad ice time            : %.2f min (%.2f%%)\n", m.BadIceTime, m.BadIcePercentage)
	if m.ServedGroups > 0 {
		fmt.Fprintf(w, "Average queue wait      : %.2f min\n", summary.AvgWaitTime)
	} else {
		fmt.Fprintln(w, "Average queue wait      : n/a")
	}
	if m.IceResurfacingCount > 0 {
		fmt.Fprintf(w, "Average resurfacing wait: %.2f min\n", summary.AvgResurfacingWait)
	}
	if len(m.IceQualityTimes) > 0 {
		fmt.Fprintf(w, "Ice quality (mean/min)  : %.2f / %.2f\n", summary.MeanIceQuality, summary.MinIceQuality)
	}
}
