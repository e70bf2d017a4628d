package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// ResurfacingState is the phase of the resurfacing cycle.
type ResurfacingState int

const (
	// ResurfacingIdle: about to sleep for one interval.
	ResurfacingIdle ResurfacingState = iota
	// ResurfacingDue: the interval has elapsed.
	ResurfacingDue
	// ResurfacingWaiting: the machine waits for the rink.
	ResurfacingWaiting
	// ResurfacingActive: the machine holds the rink.
	ResurfacingActive
)

// Resurfacing is the periodic maintenance process. It never terminates.
type Resurfacing struct {
	State       ResurfacingState
	requestedAt float64
}

// NewResurfacing creates the maintenance process.
func NewResurfacing() *Resurfacing {
	return &Resurfacing{State: ResurfacingIdle}
}

func (r *Resurfacing) String() string {
	return "resurfacing"
}

// Resume advances the cycle Idle → Due → Waiting → Active → Idle.
func (r *Resurfacing) Resume(sim *Simulator) Yield {
	now := sim.Clock
	ice := sim.Ice
	switch r.State {
	case ResurfacingIdle:
		r.State = ResurfacingDue
		return WaitFor{Duration: ice.Interval}

	case ResurfacingDue:
		if ice.Mode != BaselineAtCompletion {
			ice.LastBaseline = now
		}
		logrus.Infof("[t=%9.3f] resurfacing due, ice considered degrading from here", now)
		r.requestedAt = now
		ice.AwaitingRink = true
		r.State = ResurfacingWaiting
		return AcquireRink{Priority: PriorityResurfacing}

	case ResurfacingWaiting:
		ice.AwaitingRink = false
		wait := now - r.requestedAt
		sim.Stats.IceResurfacingWaitTimes = append(sim.Stats.IceResurfacingWaitTimes, wait)
		if wait > 0 {
			sim.Stats.BadIceTime += wait
			logrus.Infof("[t=%9.3f] play continued on stale ice for %.2f min", now, wait)
		}
		ice.Resurfacing = true
		r.State = ResurfacingActive
		logrus.Infof("[t=%9.3f] resurfacing starts (waited %.2f min)", now, wait)
		return WaitFor{Duration: sim.Params.L}

	case ResurfacingActive:
		sim.Stats.TotalIceResurfacingTime += sim.Params.L
		sim.Stats.IceResurfacingCount++
		ice.Resurfacing = false
		if ice.Mode == BaselineAtCompletion {
			ice.LastBaseline = now
		}
		sim.Rink.Release(r, now)
		logrus.Infof("[t=%9.3f] resurfacing finished (%.2f min)", now, sim.Params.L)
		r.State = ResurfacingDue
		return WaitFor{Duration: ice.Interval}

	default:
		panic(fmt.Sprintf("Resurfacing.Resume: unknown state %d", r.State))
	}
}
