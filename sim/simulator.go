// sim/simulator.go
package sim

import (
	"container/heap"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/rink-sim/rink-sim/sim/trace"
	"github.com/rink-sim/rink-sim/sim/workload"
)

// eventEntry wraps an Event with a sequence ID for deterministic FIFO
// tie-breaking when timestamps are equal.
type eventEntry struct {
	event Event
	seqID int64
}

// EventQueue is a min-heap ordered by (Timestamp, seqID).
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type EventQueue []eventEntry

func (eq EventQueue) Len() int { return len(eq) }

func (eq EventQueue) Less(i, j int) bool {
	if eq[i].event.Timestamp() != eq[j].event.Timestamp() {
		return eq[i].event.Timestamp() < eq[j].event.Timestamp()
	}
	return eq[i].seqID < eq[j].seqID
}

func (eq EventQueue) Swap(i, j int) { eq[i], eq[j] = eq[j], eq[i] }

func (eq *EventQueue) Push(x any) {
	*eq = append(*eq, x.(eventEntry))
}

func (eq *EventQueue) Pop() any {
	old := *eq
	n := len(old)
	item := old[n-1]
	*eq = old[0 : n-1]
	return item
}

// Simulator is the core object that holds simulation time, system state, and the event loop.
// It exclusively owns every piece of state of one run; nothing is shared across runs.
type Simulator struct {
	Clock   float64 // minutes
	Horizon float64 // minutes, exclusive
	// EventQueue has all pending events, ordered by time then insertion order
	EventQueue EventQueue
	seqID      int64

	Params      Params
	Rink        *Rink
	WaitingArea *WaitingArea
	Ice         *IceState
	Stats       *Statistics
	// Trace is nil unless decision tracing is enabled
	Trace *trace.SimulationTrace

	// RNG is the single random stream every sampler draws from
	RNG           *rand.Rand
	Arrivals      workload.IntervalSampler
	GameDurations workload.IntervalSampler
}

// NewSimulator builds a simulator for one run. No process is started;
// see RunSimulation for the standard wiring.
func NewSimulator(p Params) *Simulator {
	s := &Simulator{
		Clock:         0,
		Horizon:       p.HorizonMinutes(),
		EventQueue:    make(EventQueue, 0),
		Params:        p,
		WaitingArea:   NewWaitingArea(p.K),
		Ice:           NewIceState(p.ResurfacingIntervalMinutes(), p.BaselineMode),
		Stats:         NewStatistics(),
		RNG:           NewSimulationRNG(NewSimulationKey(p.Seed)),
		Arrivals:      workload.NewUniformSampler(p.N, p.M),
		GameDurations: workload.NewUniformSampler(p.A, p.B),
	}
	s.Rink = NewRink(s)
	if p.TraceLevel == trace.TraceLevelDecisions {
		s.Trace = trace.NewSimulationTrace(trace.TraceConfig{Level: p.TraceLevel})
		s.Rink.OnGrant = s.recordGrant
	}
	return s
}

// Schedule pushes an event into the simulator's EventQueue.
func (sim *Simulator) Schedule(ev Event) {
	if ev.Timestamp() < sim.Clock {
		panic(fmt.Sprintf("Schedule: event %T at %v is in the past (clock %v)", ev, ev.Timestamp(), sim.Clock))
	}
	sim.seqID++
	heap.Push(&sim.EventQueue, eventEntry{event: ev, seqID: sim.seqID})
}

// ScheduleAt wakes p at the absolute time t.
func (sim *Simulator) ScheduleAt(t float64, p Process) {
	sim.Schedule(&ResumeEvent{time: t, Process: p})
}

// ScheduleAfter wakes p after delay minutes.
func (sim *Simulator) ScheduleAfter(delay float64, p Process) {
	sim.ScheduleAt(sim.Clock+delay, p)
}

// Run dispatches events in (time, insertion) order until the queue is empty
// or the next event is at or beyond the horizon. Processes still suspended
// at that point are abandoned.
func (sim *Simulator) Run() {
	for len(sim.EventQueue) > 0 {
		if sim.EventQueue[0].event.Timestamp() >= sim.Horizon {
			break
		}
		// get the next event to be simulated
		entry := heap.Pop(&sim.EventQueue).(eventEntry)
		// advance the clock
		sim.Clock = entry.event.Timestamp()
		logrus.Tracef("[t=%9.3f] Executing %T", sim.Clock, entry.event)
		entry.event.Execute(sim)
		sim.assertInvariants()
	}
	sim.Clock = sim.Horizon
	logrus.Infof("[t=%9.3f] Simulation ended, %d events pending", sim.Clock, len(sim.EventQueue))
}

// assertInvariants panics when the rink or the waiting area is in a state
// no correct sequence of events can produce.
func (sim *Simulator) assertInvariants() {
	if sim.Rink.Holders() == 0 && sim.Rink.Waiting() > 0 {
		panic(fmt.Sprintf("invariant: rink idle with %d parked requests at t=%v", sim.Rink.Waiting(), sim.Clock))
	}
	if sim.WaitingArea.Len() > sim.WaitingArea.Capacity() {
		panic(fmt.Sprintf("invariant: waiting area holds %d groups, capacity %d", sim.WaitingArea.Len(), sim.WaitingArea.Capacity()))
	}
}

func (sim *Simulator) recordAdmission(g *Group, admitted bool, queueLen int) {
	if sim.Trace == nil {
		return
	}
	sim.Trace.RecordAdmission(trace.AdmissionRecord{
		GroupID:     g.ID,
		Clock:       sim.Clock,
		Admitted:    admitted,
		QueueLength: queueLen,
	})
}

func (sim *Simulator) recordGrant(req RinkRequest, now float64) {
	sim.Trace.RecordGrant(trace.GrantRecord{
		Holder:      fmt.Sprint(req.Holder),
		Priority:    req.Priority,
		RequestTime: req.RequestTime,
		GrantTime:   now,
	})
}
