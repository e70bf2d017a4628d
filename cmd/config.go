package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/rink-sim/rink-sim/sim"
	"github.com/rink-sim/rink-sim/sim/trace"
)

// flagChanger reports whether a flag was set explicitly on the command line.
// *pflag.FlagSet satisfies it.
type flagChanger interface {
	Changed(name string) bool
}

// loadParamsFile decodes a params YAML file on top of base. Keys missing from
// the file keep their base value. Unknown keys are errors.
func loadParamsFile(path string, base sim.Params) (sim.Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("reading params file: %w", err)
	}
	p := base
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("parsing params file %s: %w", path, err)
	}
	return p, nil
}

// resolveParams merges defaults, an optional params file and the flags the
// user set explicitly, in that order of precedence.
func resolveParams(flags flagChanger, configPath string, fromFlags sim.Params) (sim.Params, error) {
	p := sim.DefaultParams()
	if configPath != "" {
		var err error
		if p, err = loadParamsFile(configPath, p); err != nil {
			return p, err
		}
	}

	overrides := []struct {
		name  string
		apply func()
	}{
		{"N", func() { p.N = fromFlags.N }},
		{"M", func() { p.M = fromFlags.M }},
		{"A", func() { p.A = fromFlags.A }},
		{"B", func() { p.B = fromFlags.B }},
		{"K", func() { p.K = fromFlags.K }},
		{"T", func() { p.T = fromFlags.T }},
		{"S", func() { p.S = fromFlags.S }},
		{"L", func() { p.L = fromFlags.L }},
		{"seed", func() { p.Seed = fromFlags.Seed }},
		{"baseline-mode", func() { p.BaselineMode = fromFlags.BaselineMode }},
		{"trace-level", func() { p.TraceLevel = fromFlags.TraceLevel }},
	}
	for _, o := range overrides {
		if configPath == "" || flags.Changed(o.name) {
			o.apply()
		}
	}

	if p.BaselineMode == "" {
		p.BaselineMode = sim.BaselineAtInterval
	}
	if p.TraceLevel == "" {
		p.TraceLevel = trace.TraceLevelNone
	}
	return p, nil
}
