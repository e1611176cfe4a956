// Package trace collects and exports a simulation run's output: the
// per-event state snapshots and the per-customer departure records.
package trace

import (
	"github.com/queue-sim/queue-sim/sim"
)

// Trace is an in-memory sim.Recorder. It keeps the complete run output in
// arrival order for later export (CSV/YAML) or summarizing.
type Trace struct {
	States     []sim.StateSnapshot
	Departures []*sim.Customer
}

// New creates a Trace ready for recording.
func New() *Trace {
	return &Trace{
		States:     make([]sim.StateSnapshot, 0),
		Departures: make([]*sim.Customer, 0),
	}
}

// RecordState appends one state snapshot. Implements sim.Recorder.
func (t *Trace) RecordState(snap sim.StateSnapshot) {
	t.States = append(t.States, snap)
}

// RecordCustomer appends one departure record. Implements sim.Recorder.
func (t *Trace) RecordCustomer(c *sim.Customer) {
	t.Departures = append(t.Departures, c)
}
