package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/rink-sim/rink-sim/sim/trace"
)

// RunSimulation executes one complete run: it wires the arrival generator
// and the resurfacing process onto a fresh simulator, runs it to the
// horizon and returns the finalized statistics.
//
// Parameters are not validated here; see Params.Validate.
func RunSimulation(p Params) *Statistics {
	return runToHorizon(p).Stats
}

// RunSimulationTraced is RunSimulation that also returns the decision trace.
// The trace is nil unless p.TraceLevel enables it.
func RunSimulationTraced(p Params) (*Statistics, *trace.SimulationTrace) {
	s := runToHorizon(p)
	return s.Stats, s.Trace
}

func runToHorizon(p Params) *Simulator {
	s := NewSimulator(p)
	logrus.Infof("Starting simulation: N=%v M=%v A=%v B=%v K=%d T=%vh S=%vh L=%v seed=%d",
		p.N, p.M, p.A, p.B, p.K, p.T, p.S, p.L, p.Seed)

	s.Start(NewArrivalGenerator())
	s.Start(NewResurfacing())
	s.Run()

	s.Stats.Finalize(s.Horizon)
	return s
}
