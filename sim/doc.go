// Package sim provides the discrete-event simulation engine for the rink model.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - simulator.go: the event heap and the dispatch loop
//   - process.go: how processes suspend (WaitFor, WaitUntil, AcquireRink, Done)
//   - group.go: a group's lifecycle (arriving → queued → playing → departed)
//   - resurfacing.go: the periodic maintenance cycle
//
// # Architecture
//
// One Simulator owns every piece of state of a run: the clock, the event
// queue, the rink, the waiting area, the ice state, the statistics and the
// random stream. Processes are explicit state machines; each Resume call runs
// to the next suspension point. Everything executes on the caller's
// goroutine in strict (time, insertion) order, so a run is reproducible from
// its Params alone.
//
// Sub-packages:
//   - sim/workload/: duration samplers (inter-arrival, game length)
//   - sim/trace/: admission and rink grant decision trace
//
// The entry point for callers is RunSimulation.
package sim
