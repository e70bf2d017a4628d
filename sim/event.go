package sim

// Event defines the interface for all simulation events.
// Each event must have a Timestamp (in simulated minutes) and an Execute method
// that advances simulation state when invoked.
type Event interface {
	Timestamp() float64
	Execute(*Simulator)
}

// ResumeEvent wakes a suspended process: the end of a timed wait, or the
// hand-over of the rink to a parked request.
type ResumeEvent struct {
	time    float64 // Simulation time of the wake-up (in minutes)
	Process Process // The process to drive to its next suspension point
}

// Timestamp returns the scheduled time of the ResumeEvent.
func (e *ResumeEvent) Timestamp() float64 {
	return e.time
}

// Execute drives the process forward from where it suspended.
func (e *ResumeEvent) Execute(sim *Simulator) {
	sim.drive(e.Process)
}
