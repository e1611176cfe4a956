package trace

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/queue-sim/queue-sim/sim"
)

// File names inside an exported run directory.
const (
	StatesFile    = "states.csv"
	CustomersFile = "customers.csv"
	MetaFile      = "run.yaml"
)

// RunMeta is the provenance header written next to the CSV files: when the
// run happened, the exact parameters that produced it, and the final
// counters. Together with the seed it is enough to reproduce the trace
// bit-for-bit.
type RunMeta struct {
	CreatedAt        string         `yaml:"created_at"`
	Parameters       sim.Parameters `yaml:"parameters"`
	CustomersCreated int64          `yaml:"customers_created"`
	EventsProcessed  int64          `yaml:"events_processed"`
	Departures       int            `yaml:"departures"`
}

// customerColumns is the customers.csv header. Column order is fixed;
// existing traces depend on it.
var customerColumns = []string{"id", "arrival_time", "server", "start_service_time", "completion_time"}

// stateColumns builds the states.csv header for n servers: the fixed prefix
// followed by a (length_queue_i, in_service_i) pair per server, 1-based.
func stateColumns(n int) []string {
	cols := []string{"time", "event_id", "event_type", "timing", "length_event_list"}
	for i := 1; i <= n; i++ {
		cols = append(cols, fmt.Sprintf("length_queue_%d", i), fmt.Sprintf("in_service_%d", i))
	}
	return cols
}

// formatTime renders a simulated time with the shortest representation that
// round-trips, so equal values always produce equal bytes.
func formatTime(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Export writes a run's trace into dir: states.csv (two snapshots per
// processed event), customers.csv (one row per departure) and run.yaml
// (provenance). The directory is created if needed. Server numbers in all
// three files are 1-based.
func Export(t *Trace, dir string, meta RunMeta) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	metaData, err := yaml.Marshal(&meta)
	if err != nil {
		return fmt.Errorf("marshaling run metadata: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, MetaFile), metaData, 0644); err != nil {
		return fmt.Errorf("writing run metadata: %w", err)
	}

	if err := exportStates(t.States, filepath.Join(dir, StatesFile), meta.Parameters.Servers); err != nil {
		return err
	}
	return exportCustomers(t.Departures, filepath.Join(dir, CustomersFile))
}

func exportStates(states []sim.StateSnapshot, path string, servers int) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating states file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(stateColumns(servers)); err != nil {
		return fmt.Errorf("writing states header: %w", err)
	}
	for _, snap := range states {
		row := []string{
			formatTime(snap.Time),
			strconv.FormatUint(snap.EventID, 10),
			snap.Event,
			string(snap.Phase),
			strconv.Itoa(snap.Pending),
		}
		for _, g := range snap.Servers {
			busy := "0"
			if g.Busy {
				busy = "1"
			}
			row = append(row, strconv.Itoa(g.QueueLength), busy)
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing state row for event %d: %w", snap.EventID, err)
		}
	}
	return nil
}

func exportCustomers(departures []*sim.Customer, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating customers file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(customerColumns); err != nil {
		return fmt.Errorf("writing customers header: %w", err)
	}
	for _, c := range departures {
		row := []string{
			strconv.FormatInt(c.ID, 10),
			formatTime(c.ArrivalTime),
			strconv.Itoa(c.Server.MustGet() + 1),
			formatTime(c.ServiceStart.MustGet()),
			formatTime(c.Completion.MustGet()),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing customer row %d: %w", c.ID, err)
		}
	}
	return nil
}

// LoadRun reads a previously exported run back from dir: the provenance
// header and the customer records. State snapshots are not loaded; they are
// written for external analysis tools.
func LoadRun(dir string) (*RunMeta, []*sim.Customer, error) {
	metaData, err := os.ReadFile(filepath.Join(dir, MetaFile))
	if err != nil {
		return nil, nil, fmt.Errorf("reading run metadata: %w", err)
	}
	var meta RunMeta
	decoder := yaml.NewDecoder(bytes.NewReader(metaData))
	decoder.KnownFields(true)
	if err := decoder.Decode(&meta); err != nil {
		return nil, nil, fmt.Errorf("parsing run metadata: %w", err)
	}

	customers, err := loadCustomers(filepath.Join(dir, CustomersFile))
	if err != nil {
		return nil, nil, err
	}
	return &meta, customers, nil
}

func loadCustomers(path string) ([]*sim.Customer, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening customers file: %w", err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)

	// Skip header row
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("reading customers header: %w", err)
	}

	var customers []*sim.Customer
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading customers row: %w", err)
		}
		c, err := parseCustomerRow(row)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, nil
}

func parseCustomerRow(row []string) (*sim.Customer, error) {
	if len(row) != len(customerColumns) {
		return nil, fmt.Errorf("customers row has %d columns, expected %d", len(row), len(customerColumns))
	}
	id, err := strconv.ParseInt(row[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing id %q: %w", row[0], err)
	}
	arrival, err := strconv.ParseFloat(row[1], 64)
	if err != nil {
		return nil, fmt.Errorf("parsing arrival_time %q: %w", row[1], err)
	}
	server, err := strconv.Atoi(row[2])
	if err != nil {
		return nil, fmt.Errorf("parsing server %q: %w", row[2], err)
	}
	start, err := strconv.ParseFloat(row[3], 64)
	if err != nil {
		return nil, fmt.Errorf("parsing start_service_time %q: %w", row[3], err)
	}
	completion, err := strconv.ParseFloat(row[4], 64)
	if err != nil {
		return nil, fmt.Errorf("parsing completion_time %q: %w", row[4], err)
	}

	c := &sim.Customer{ID: id, ArrivalTime: arrival}
	// Server numbers are 1-based in the file.
	c.Server.Set(server - 1)
	c.ServiceStart.Set(start)
	c.Completion.Set(completion)
	return c, nil
}
