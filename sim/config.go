package sim

import (
	"errors"
	"fmt"

	"github.com/rink-sim/rink-sim/sim/trace"
)

// BaselineMode selects when the ice decay baseline is reset.
type BaselineMode string

const (
	// BaselineAtInterval resets the baseline when the resurfacing interval
	// elapses, before the machine obtains the rink.
	BaselineAtInterval BaselineMode = "interval"
	// BaselineAtCompletion resets the baseline when resurfacing finishes.
	BaselineAtCompletion BaselineMode = "completion"
)

// IsValidBaselineMode returns true if mode is a recognized baseline mode.
// Empty defaults to BaselineAtInterval.
func IsValidBaselineMode(mode string) bool {
	switch BaselineMode(mode) {
	case BaselineAtInterval, BaselineAtCompletion, "":
		return true
	}
	return false
}

// Params is the full input of one run. Times are in minutes unless the
// field says otherwise.
type Params struct {
	N float64 `yaml:"N" json:"N"` // mean inter-arrival time
	M float64 `yaml:"M" json:"M"` // inter-arrival spread, 0 <= M <= N
	A float64 `yaml:"A" json:"A"` // mean game duration
	B float64 `yaml:"B" json:"B"` // game duration spread, 0 <= B <= A
	K int     `yaml:"K" json:"K"` // waiting area capacity
	T float64 `yaml:"T" json:"T"` // horizon, hours
	S float64 `yaml:"S" json:"S"` // resurfacing interval, hours
	L float64 `yaml:"L" json:"L"` // resurfacing duration

	Seed         int64            `yaml:"seed" json:"seed"`
	BaselineMode BaselineMode     `yaml:"baseline_mode" json:"baseline_mode"`
	TraceLevel   trace.TraceLevel `yaml:"trace_level" json:"trace_level"`
}

// DefaultParams returns the reference configuration of the model.
func DefaultParams() Params {
	return Params{
		N: 5, M: 4,
		A: 12, B: 8,
		K: 5,
		T: 10,
		S: 2, L: 30,
		Seed:         42,
		BaselineMode: BaselineAtInterval,
		TraceLevel:   trace.TraceLevelNone,
	}
}

// HorizonMinutes returns T*60.
func (p Params) HorizonMinutes() float64 {
	return p.T * 60
}

// ResurfacingIntervalMinutes returns S*60.
func (p Params) ResurfacingIntervalMinutes() float64 {
	return p.S * 60
}

// Validate reports every out-of-range parameter. The engine itself never
// calls it: callers decide whether to validate.
func (p Params) Validate() error {
	var errs []error
	if p.N <= 0 {
		errs = append(errs, fmt.Errorf("N must be positive, got %v", p.N))
	}
	if p.M < 0 || p.M > p.N {
		errs = append(errs, fmt.Errorf("M must be in [0, N=%v], got %v", p.N, p.M))
	}
	if p.A <= 0 {
		errs = append(errs, fmt.Errorf("A must be positive, got %v", p.A))
	}
	if p.B < 0 || p.B > p.A {
		errs = append(errs, fmt.Errorf("B must be in [0, A=%v], got %v", p.A, p.B))
	}
	if p.K <= 0 {
		errs = append(errs, fmt.Errorf("K must be positive, got %d", p.K))
	}
	if p.T <= 0 {
		errs = append(errs, fmt.Errorf("T must be positive, got %v", p.T))
	}
	if p.S <= 0 {
		errs = append(errs, fmt.Errorf("S must be positive, got %v", p.S))
	}
	if p.L <= 0 {
		errs = append(errs, fmt.Errorf("L must be positive, got %v", p.L))
	}
	if !IsValidBaselineMode(string(p.BaselineMode)) {
		errs = append(errs, fmt.Errorf("unknown baseline mode %q", p.BaselineMode))
	}
	if !trace.IsValidTraceLevel(string(p.TraceLevel)) {
		errs = append(errs, fmt.Errorf("unknown trace level %q", p.TraceLevel))
	}
	return errors.Join(errs...)
}
