package trace

import (
	"fmt"
	"sort"
)

// Summary aggregates the departure records of one run.
type Summary struct {
	Departures       int
	MeanWait         float64
	MaxWait          float64
	MeanTimeInSystem float64
	// PerServer counts departures per server, keyed by the 1-based server
	// number used in trace files.
	PerServer map[int]int
}

// Summarize computes aggregate statistics from a run's trace.
// Safe for nil or empty traces (returns zero-value fields).
// Wait is service start minus arrival; time in system is completion minus
// arrival.
func Summarize(t *Trace) *Summary {
	summary := &Summary{
		PerServer: make(map[int]int),
	}
	if t == nil {
		return summary
	}

	summary.Departures = len(t.Departures)
	if len(t.Departures) == 0 {
		return summary
	}

	totalWait := 0.0
	totalInSystem := 0.0
	for _, c := range t.Departures {
		wait := c.ServiceStart.MustGet() - c.ArrivalTime
		totalWait += wait
		if wait > summary.MaxWait {
			summary.MaxWait = wait
		}
		totalInSystem += c.Completion.MustGet() - c.ArrivalTime
		summary.PerServer[c.Server.MustGet()+1]++
	}
	summary.MeanWait = totalWait / float64(len(t.Departures))
	summary.MeanTimeInSystem = totalInSystem / float64(len(t.Departures))

	return summary
}

// Print displays the summary table at the end of a run. The time unit label
// is informational and comes from the run's parameters.
func (s *Summary) Print(timeUnit string) {
	fmt.Println("=== Run Summary ===")
	fmt.Printf("Departures           : %d\n", s.Departures)
	if s.Departures > 0 {
		fmt.Printf("Mean Wait            : %.4f %s\n", s.MeanWait, timeUnit)
		fmt.Printf("Max Wait             : %.4f %s\n", s.MaxWait, timeUnit)
		fmt.Printf("Mean Time In System  : %.4f %s\n", s.MeanTimeInSystem, timeUnit)

		servers := make([]int, 0, len(s.PerServer))
		for n := range s.PerServer {
			servers = append(servers, n)
		}
		sort.Ints(servers)
		for _, n := range servers {
			fmt.Printf("Server %-14d: %d departures\n", n, s.PerServer[n])
		}
	}
}
