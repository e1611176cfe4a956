package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/queue-sim/queue-sim/sim"
	"github.com/queue-sim/queue-sim/sim/trace"
)

var (
	// CLI flags for the simulation run
	seed             int64   // Seed for the shared random source
	horizon          float64 // Simulated time at which the run stops
	servers          int     // Number of servers, each fed by its own FIFO queue
	meanInterarrival float64 // Mean exponential inter-arrival duration
	meanService      float64 // Mean exponential service duration
	timeUnit         string  // Label for the simulated time axis (informational)
	scenarioPath     string  // Optional YAML scenario file
	outDir           string  // Directory for the exported trace files
	logLevel         string  // Log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "queue-sim",
	Short: "Discrete-event simulator for multi-server queueing networks",
}

// runCmd executes one simulation using parameters merged from defaults, the
// scenario file and CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the queueing simulation and export its trace",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		params, err := resolveParameters(cmd.Flags())
		if err != nil {
			logrus.Fatalf("Invalid run configuration: %v", err)
		}

		logrus.Infof("Starting simulation: seed=%d horizon=%v servers=%d mean_interarrival=%v mean_service=%v",
			params.Seed, params.Horizon, params.Servers, params.MeanInterarrival, params.MeanService)

		startTime := time.Now() // Get current time (start)

		// Initialize and run the simulator, collecting the full trace
		collector := trace.New()
		s := sim.NewSimulator(params, collector)
		s.Run()

		meta := trace.RunMeta{
			CreatedAt:        startTime.Format(time.RFC3339),
			Parameters:       params,
			CustomersCreated: s.CustomersCreated,
			EventsProcessed:  s.EventsProcessed,
			Departures:       len(collector.Departures),
		}
		if err := trace.Export(collector, outDir, meta); err != nil {
			logrus.Fatalf("Exporting trace: %v", err)
		}

		trace.Summarize(collector).Print(params.TimeUnit)
		fmt.Printf("Trace files written to %s\n", outDir)

		logrus.Info("Simulation complete.")
	},
}

// resolveParameters merges the three configuration layers: defaults, then
// the scenario file, then any flag the user explicitly set. A flag only wins
// when it was actually passed, so a scenario file is not clobbered by flag
// defaults.
func resolveParameters(flags *pflag.FlagSet) (sim.Parameters, error) {
	params := sim.DefaultParameters()
	if scenarioPath != "" {
		if err := sim.LoadParameters(scenarioPath, &params); err != nil {
			return params, err
		}
	}
	if flags.Changed("seed") {
		params.Seed = seed
	}
	if flags.Changed("horizon") {
		params.Horizon = horizon
	}
	if flags.Changed("servers") {
		params.Servers = servers
	}
	if flags.Changed("mean-interarrival") {
		params.MeanInterarrival = meanInterarrival
	}
	if flags.Changed("mean-service") {
		params.MeanService = meanService
	}
	if flags.Changed("time-unit") {
		params.TimeUnit = timeUnit
	}
	return params, params.Validate()
}

// registerRunFlags declares the run flags, binding them to the package-level
// values. Flag defaults mirror DefaultParameters so a bare `run` simulates
// the baseline scenario.
func registerRunFlags(cmd *cobra.Command) {
	defaults := sim.DefaultParameters()
	cmd.Flags().Int64Var(&seed, "seed", defaults.Seed, "Seed for the shared random source")
	cmd.Flags().Float64Var(&horizon, "horizon", defaults.Horizon, "Simulated time at which the run stops")
	cmd.Flags().IntVar(&servers, "servers", defaults.Servers, "Number of servers, each with its own FIFO queue")
	cmd.Flags().Float64Var(&meanInterarrival, "mean-interarrival", defaults.MeanInterarrival, "Mean exponential inter-arrival duration")
	cmd.Flags().Float64Var(&meanService, "mean-service", defaults.MeanService, "Mean exponential service duration")
	cmd.Flags().StringVar(&timeUnit, "time-unit", defaults.TimeUnit, "Label for the simulated time axis (informational)")
	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "YAML scenario file (explicit flags override its values)")
	cmd.Flags().StringVar(&outDir, "out", "results", "Directory for the exported trace files")
	cmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	registerRunFlags(runCmd)

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
