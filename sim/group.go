// Defines the Group process that models one arriving party of players.
// Tracks arrival, queue entry, rink acquisition and the game itself.

package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// GroupState represents the lifecycle state of a group.
type GroupState string

const (
	GroupArriving  GroupState = "arriving"
	GroupRejected  GroupState = "rejected"
	GroupQueued    GroupState = "queued"
	GroupAcquiring GroupState = "acquiring"
	GroupPlaying   GroupState = "playing"
	GroupDeparted  GroupState = "departed"
)

// Group is one unit of demand. It lives from its arrival to its departure
// or rejection.
type Group struct {
	ID int // sequence number assigned by the arrival generator

	ArrivalTime    float64 // minutes
	QueueEntryTime float64 // minutes
	AcquiredTime   float64 // minutes; when the rink was granted
	GameDuration   float64 // minutes

	State   GroupState
	gameEnd float64
}

// NewGroup creates a group about to arrive.
func NewGroup(id int) *Group {
	return &Group{ID: id, State: GroupArriving}
}

func (g *Group) String() string {
	return fmt.Sprintf("group_%d", g.ID)
}

// Resume advances the group:
// Arriving → Rejected, or Arriving → Queued → Acquiring → Playing → Departed.
func (g *Group) Resume(sim *Simulator) Yield {
	now := sim.Clock
	switch g.State {
	case GroupArriving:
		g.ArrivalTime = now
		queueLen := sim.WaitingArea.Len()
		if !sim.WaitingArea.TryEnter(g, now, sim.Stats) {
			g.State = GroupRejected
			sim.Stats.RejectedGroups++
			sim.recordAdmission(g, false, queueLen)
			logrus.Infof("[t=%9.3f] %v rejected (queue %d/%d)", now, g, queueLen, sim.WaitingArea.Capacity())
			return Done{}
		}
		sim.recordAdmission(g, true, queueLen)
		g.State = GroupQueued
		g.QueueEntryTime = now
		logrus.Infof("[t=%9.3f] %v queued (queue %d/%d)", now, g, queueLen+1, sim.WaitingArea.Capacity())

		g.State = GroupAcquiring
		return AcquireRink{Priority: PriorityGroup}

	case GroupAcquiring:
		sim.WaitingArea.Leave(g)
		g.AcquiredTime = now
		wait := now - g.QueueEntryTime
		sim.Stats.TotalWaitTime += wait

		if q := sim.Ice.Quality(now); q < 1.0 {
			logrus.Infof("[t=%9.3f] %v starts on ice of quality %.2f", now, g, q)
		}
		g.GameDuration = sim.GameDurations.Sample(sim.RNG)
		sim.Stats.TotalGameTime += g.GameDuration
		g.gameEnd = now + g.GameDuration
		g.State = GroupPlaying
		logrus.Infof("[t=%9.3f] %v starts playing for %.2f min (waited %.2f)", now, g, g.GameDuration, wait)
		return g.playStep(sim)

	case GroupPlaying:
		if now < g.gameEnd {
			return g.playStep(sim)
		}
		sim.Rink.Release(g, now)
		g.State = GroupDeparted
		sim.Stats.ServedGroups++
		logrus.Infof("[t=%9.3f] %v departs after %.2f min", now, g, g.GameDuration)
		return Done{}

	default:
		panic(fmt.Sprintf("Group.Resume: %v resumed in terminal state %q", g, g.State))
	}
}

// playStep samples the ice and sleeps for one minute, or for the fraction
// of a minute left in the game.
func (g *Group) playStep(sim *Simulator) Yield {
	now := sim.Clock
	quality := sim.Ice.Quality(now)
	sim.Stats.IceQualityTimes = append(sim.Stats.IceQualityTimes, IceQualitySample{Time: now, Quality: quality})

	next := min(now+1, g.gameEnd)
	// while resurfacing is overdue the stale-ice time is booked by the machine
	if quality < BadIceThreshold && !sim.Ice.AwaitingRink {
		sim.Stats.BadIceTime += next - now
	}
	return WaitUntil{At: next}
}
