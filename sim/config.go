package sim

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Parameters configures a single simulation run. A run is fully determined
// by this value: same Parameters, same trace.
type Parameters struct {
	// Seed initializes the shared random source behind both duration streams.
	Seed int64 `yaml:"seed"`
	// Horizon is the simulated time at which the run stops. The event that
	// first reaches or crosses the horizon is still processed in full.
	Horizon float64 `yaml:"horizon"`
	// Servers is the number of single-capacity servers, each fed by its own
	// FIFO queue (must be >= 1).
	Servers int `yaml:"servers"`
	// MeanInterarrival is the mean of the exponential inter-arrival durations.
	MeanInterarrival float64 `yaml:"mean_interarrival"`
	// MeanService is the mean of the exponential service durations.
	MeanService float64 `yaml:"mean_service"`
	// TimeUnit labels the simulated time axis in reports ("minutes", "ms", ...).
	// Informational only; it never affects the simulation.
	TimeUnit string `yaml:"time_unit"`
}

// DefaultParameters returns the baseline configuration used when neither a
// scenario file nor flags supply a value.
func DefaultParameters() Parameters {
	return Parameters{
		Seed:             42,
		Horizon:          1000,
		Servers:          2,
		MeanInterarrival: 1.0,
		MeanService:      1.5,
		TimeUnit:         "minutes",
	}
}

// Validate checks that the parameters describe a runnable system.
// Violations are configuration errors: they are reported before any event
// is processed, and the engine itself assumes they cannot occur.
func (p Parameters) Validate() error {
	if p.Servers < 1 {
		return fmt.Errorf("servers must be >= 1, got %d", p.Servers)
	}
	if p.Horizon <= 0 {
		return fmt.Errorf("horizon must be > 0, got %v", p.Horizon)
	}
	if p.MeanInterarrival <= 0 {
		return fmt.Errorf("mean_interarrival must be > 0, got %v", p.MeanInterarrival)
	}
	if p.MeanService <= 0 {
		return fmt.Errorf("mean_service must be > 0, got %v", p.MeanService)
	}
	return nil
}

// LoadParameters reads a YAML scenario file into *into. Fields absent from
// the file keep whatever *into already holds, so loading over
// DefaultParameters() yields defaults-plus-overrides. Unknown fields are
// rejected so a typoed key fails loudly instead of silently simulating the
// wrong system.
func LoadParameters(path string, into *Parameters) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading scenario file: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(into); err != nil && err != io.EOF {
		return fmt.Errorf("parsing scenario file %s: %w", path, err)
	}
	return nil
}
