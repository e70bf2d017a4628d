package sim

import "fmt"

// stubProcess records every resume and then terminates.
type stubProcess struct {
	name  string
	log   *[]string
	clock *[]float64
}

func newStub(name string, log *[]string) *stubProcess {
	return &stubProcess{name: name, log: log}
}

func (p *stubProcess) Resume(sim *Simulator) Yield {
	if p.log != nil {
		*p.log = append(*p.log, p.name)
	}
	if p.clock != nil {
		*p.clock = append(*p.clock, sim.Clock)
	}
	return Done{}
}

func (p *stubProcess) String() string {
	return p.name
}

// fakeScheduler captures rink hand-overs without a simulator.
type fakeScheduler struct {
	woken []string
	times []float64
}

func (f *fakeScheduler) ScheduleAt(t float64, p Process) {
	f.woken = append(f.woken, fmt.Sprint(p))
	f.times = append(f.times, t)
}

// fixedParams returns a configuration where every sampled duration is exact:
// arrivals every n minutes, games of a minutes, resurfacing every s hours.
func fixedParams(n, a float64, k int, t, s, l float64) Params {
	p := DefaultParams()
	p.N, p.M = n, 0
	p.A, p.B = a, 0
	p.K = k
	p.T, p.S, p.L = t, s, l
	return p
}
