package sim

import (
	"fmt"
	"math"
)

const (
	// MinIceQuality is the floor of the quality signal.
	MinIceQuality = 0.1
	// BadIceThreshold: quality strictly below it counts as bad ice.
	BadIceThreshold = 0.5
)

// IceQuality maps the time elapsed since the last decay baseline to a
// quality in [MinIceQuality, 1]. The ice is perfect for one interval and then
// degrades linearly, losing half its quality per further interval.
func IceQuality(now, lastBaseline, interval float64) float64 {
	elapsed := now - lastBaseline
	quality := 1.0
	if elapsed > interval {
		quality = math.Max(MinIceQuality, 1.0-(elapsed-interval)/(2*interval))
	}
	if quality < MinIceQuality || quality > 1.0 || math.IsNaN(quality) {
		panic(fmt.Sprintf("IceQuality: %v outside [%v, 1] (elapsed=%v, interval=%v)", quality, MinIceQuality, elapsed, interval))
	}
	return quality
}

// IceState is the maintenance cycle shared by the resurfacing process and
// the groups sampling the ice.
type IceState struct {
	LastBaseline float64 // minutes
	Interval     float64 // S*60 minutes
	Mode         BaselineMode
	// AwaitingRink is set while the resurfacing machine waits for the rink.
	AwaitingRink bool
	// Resurfacing is set while the machine is on the ice.
	Resurfacing bool
}

// NewIceState returns fresh ice with its baseline at t=0.
func NewIceState(interval float64, mode BaselineMode) *IceState {
	if mode == "" {
		mode = BaselineAtInterval
	}
	return &IceState{Interval: interval, Mode: mode}
}

// Quality samples the ice at now.
func (ice *IceState) Quality(now float64) float64 {
	return IceQuality(now, ice.LastBaseline, ice.Interval)
}
