package sim

import "github.com/sirupsen/logrus"

// ArrivalGenerator spawns groups at random intervals for the whole run.
type ArrivalGenerator struct {
	nextID int
	// pending is set once the first inter-arrival wait has been scheduled
	pending bool
}

// NewArrivalGenerator creates the generator; the first group gets id 1.
func NewArrivalGenerator() *ArrivalGenerator {
	return &ArrivalGenerator{}
}

func (a *ArrivalGenerator) String() string {
	return "arrivals"
}

// Resume spawns the group whose interval just elapsed, then waits for the
// next one. The next interval is drawn before the group runs so the draw
// order of the random stream does not depend on the group's fate.
func (a *ArrivalGenerator) Resume(sim *Simulator) Yield {
	interval := sim.Arrivals.Sample(sim.RNG)
	if a.pending {
		a.nextID++
		sim.Stats.GroupsGenerated++
		logrus.Infof("[t=%9.3f] << Arrival: group_%d", sim.Clock, a.nextID)
		sim.Start(NewGroup(a.nextID))
	}
	a.pending = true
	return WaitFor{Duration: interval}
}
