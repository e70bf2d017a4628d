// Package trace provides decision-trace recording for rink admission and
// rink grant analysis.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// AdmissionRecord captures a single waiting-area admission decision.
type AdmissionRecord struct {
	GroupID     int
	Clock       float64 // minutes
	Admitted    bool
	QueueLength int // occupancy seen by the arriving group
}

// GrantRecord captures the moment a request obtained the rink.
type GrantRecord struct {
	Holder      string
	Priority    int
	RequestTime float64 // minutes
	GrantTime   float64 // minutes
}

// Wait returns how long the request was parked.
func (r GrantRecord) Wait() float64 {
	return r.GrantTime - r.RequestTime
}
