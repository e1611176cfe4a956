package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/queue-sim/queue-sim/sim/trace"
)

var reportDir string

// reportCmd re-prints the summary table for an already exported run, so a
// finished trace can be inspected without re-simulating.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize a previously exported run",
	Long:  "Load the customer records of an exported run directory and print the same summary table `run` prints, without re-running the simulation.",
	Run: func(cmd *cobra.Command, args []string) {
		if err := printReport(reportDir); err != nil {
			logrus.Fatalf("Reading run from %s: %v", reportDir, err)
		}
	},
}

// printReport loads a run's departure records and prints the summary table
// using the time unit recorded in the run metadata.
func printReport(dir string) error {
	meta, customers, err := trace.LoadRun(dir)
	if err != nil {
		return err
	}
	collector := &trace.Trace{Departures: customers}
	trace.Summarize(collector).Print(meta.Parameters.TimeUnit)
	return nil
}

func init() {
	reportCmd.Flags().StringVar(&reportDir, "dir", "results", "Directory holding the exported run")

	rootCmd.AddCommand(reportCmd)
}
