package sim

import "fmt"

// Process is a cooperative task driven by the Simulator. Instead of
// language-level suspension, each call to Resume runs the process up to its
// next suspension point and returns a Yield describing what it waits for.
//
// Resume is only ever called from the simulator's dispatch loop.
type Process interface {
	Resume(sim *Simulator) Yield
}

// Yield is a typed suspension request returned by Process.Resume.
type Yield interface {
	isYield()
}

// WaitFor suspends the process for Duration minutes.
type WaitFor struct {
	Duration float64
}

// WaitUntil suspends the process until the absolute time At.
// Used where accumulating relative delays would drift in floating point.
type WaitUntil struct {
	At float64
}

// AcquireRink suspends the process until it holds the rink.
// Lower Priority values are served first.
type AcquireRink struct {
	Priority int
}

// Done terminates the process.
type Done struct{}

func (WaitFor) isYield()     {}
func (WaitUntil) isYield()   {}
func (AcquireRink) isYield() {}
func (Done) isYield()        {}

// Start drives a new process synchronously until its first suspension.
// Arrivals rely on this: admission is decided at the arrival instant,
// before any other event stamped at the same time.
func (sim *Simulator) Start(p Process) {
	sim.drive(p)
}

// drive resumes p repeatedly while its suspension requests can be satisfied
// without advancing the clock.
func (sim *Simulator) drive(p Process) {
	for {
		switch y := p.Resume(sim).(type) {
		case WaitFor:
			sim.ScheduleAt(sim.Clock+y.Duration, p)
			return
		case WaitUntil:
			sim.ScheduleAt(y.At, p)
			return
		case AcquireRink:
			if !sim.Rink.Request(p, y.Priority, sim.Clock) {
				// parked; Rink.Release resumes it
				return
			}
		case Done:
			return
		default:
			panic(fmt.Sprintf("drive: unknown yield %T", y))
		}
	}
}
