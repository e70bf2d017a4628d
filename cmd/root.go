package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/rink-sim/rink-sim/sim"
	"github.com/rink-sim/rink-sim/sim/trace"
)

var (
	// CLI flags for the rink model
	flagParams   sim.Params // N, M, A, B, K, T, S, L and seed
	baselineMode string     // When the ice decay baseline resets
	traceLevel   string     // Decision trace verbosity
	configPath   string     // Optional params YAML file
	logLevel     string     // Log verbosity level
	resultsPath  string     // Where to write Statistics as JSON
	metricsPath  string     // Where to write the Prometheus textfile
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "rink-sim",
	Short: "Discrete-event simulator for an ice rink with periodic resurfacing",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the rink simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if err := runOnce(cmd.Flags(), os.Stdout); err != nil {
			logrus.Fatalf("%v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// runOnce resolves parameters, runs the engine and writes every requested
// output. Invalid parameters stop it before the engine runs.
func runOnce(flags flagChanger, out io.Writer) error {
	fromFlags := flagParams
	fromFlags.BaselineMode = sim.BaselineMode(baselineMode)
	fromFlags.TraceLevel = trace.TraceLevel(traceLevel)

	p, err := resolveParams(flags, configPath, fromFlags)
	if err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}

	runID := uuid.NewString()
	logrus.Infof("Run %s: baseline=%s trace=%s", runID, p.BaselineMode, p.TraceLevel)

	stats, st := sim.RunSimulationTraced(p)
	stats.Print(out, p)
	if st != nil {
		printTraceSummary(out, trace.Summarize(st))
	}

	if resultsPath != "" {
		if err := writeResults(resultsPath, stats); err != nil {
			return err
		}
		logrus.Infof("Results written to %s", resultsPath)
	}
	if metricsPath != "" {
		if err := exportMetrics(metricsPath, runID, stats); err != nil {
			return err
		}
		logrus.Infof("Metrics written to %s", metricsPath)
	}
	return nil
}

func writeResults(path string, stats *sim.Statistics) error {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}
	return nil
}

func printTraceSummary(w io.Writer, s *trace.TraceSummary) {
	fmt.Fprintln(w, "=== Decision Trace ===")
	fmt.Fprintf(w, "Arrivals                : %d (admitted %d, rejected %d)\n",
		s.TotalArrivals, s.AdmittedCount, s.RejectedCount)
	fmt.Fprintf(w, "Rink grants             : %d (resurfacing %d, groups %d)\n",
		s.TotalGrants, s.GrantsByPriority[sim.PriorityResurfacing], s.GrantsByPriority[sim.PriorityGroup])
	fmt.Fprintf(w, "Grant wait (mean/max)   : %.2f / %.2f min\n", s.MeanGrantWait, s.MaxGrantWait)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	defaults := sim.DefaultParams()

	runCmd.Flags().Float64Var(&flagParams.N, "N", defaults.N, "Mean time between group arrivals (minutes)")
	runCmd.Flags().Float64Var(&flagParams.M, "M", defaults.M, "Spread of time between arrivals (minutes, 0 <= M <= N)")
	runCmd.Flags().Float64Var(&flagParams.A, "A", defaults.A, "Mean game duration (minutes)")
	runCmd.Flags().Float64Var(&flagParams.B, "B", defaults.B, "Spread of game duration (minutes, 0 <= B <= A)")
	runCmd.Flags().IntVar(&flagParams.K, "K", defaults.K, "Waiting area capacity (groups)")
	runCmd.Flags().Float64Var(&flagParams.T, "T", defaults.T, "Simulated time (hours)")
	runCmd.Flags().Float64Var(&flagParams.S, "S", defaults.S, "Resurfacing interval (hours)")
	runCmd.Flags().Float64Var(&flagParams.L, "L", defaults.L, "Resurfacing duration (minutes)")
	runCmd.Flags().Int64Var(&flagParams.Seed, "seed", defaults.Seed, "Seed for the random stream")
	runCmd.Flags().StringVar(&baselineMode, "baseline-mode", string(defaults.BaselineMode), "When ice decay restarts (interval, completion)")
	runCmd.Flags().StringVar(&traceLevel, "trace-level", string(defaults.TraceLevel), "Decision trace level (none, decisions)")

	runCmd.Flags().StringVar(&configPath, "config", "", "Params YAML file; explicit flags override its values")
	runCmd.Flags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&resultsPath, "results", "", "Write statistics as JSON to this file")
	runCmd.Flags().StringVar(&metricsPath, "metrics-out", "", "Write run metrics as a Prometheus textfile")

	rootCmd.AddCommand(runCmd)
}
