package sim

// Phase labels whether a state snapshot was taken before or after the
// event's transition ran. Both snapshots of one event share the event's
// timestamp: the clock advances on pop, not during the transition.
type Phase string

const (
	PhaseBefore Phase = "before"
	PhaseAfter  Phase = "after"
)

// ServerGauge is the per-server portion of a state snapshot.
type ServerGauge struct {
	// QueueLength is the number of customers waiting for this server.
	QueueLength int
	// Busy reports whether the server's slot is occupied.
	Busy bool
}

// StateSnapshot is a point-in-time view of the system handed to the
// Recorder around each processed event.
type StateSnapshot struct {
	// Time is the simulation clock (the processed event's timestamp).
	Time float64
	// EventID is the processed event's id.
	EventID uint64
	// Event is the processed event's label: "Arrival" or "Finish(n)".
	Event string
	// Phase is "before" or "after" the transition.
	Phase Phase
	// Pending is the number of events remaining in the schedule.
	Pending int
	// Servers holds one gauge per server, in server order.
	Servers []ServerGauge
}

// Recorder receives the simulation's output. The driver calls it
// synchronously between steps: two RecordState calls per event
// (before/after), then RecordCustomer when the event produced a departure.
//
// The *Customer passed to RecordCustomer is handed over: the engine keeps
// no reference to it afterwards.
type Recorder interface {
	RecordState(snap StateSnapshot)
	RecordCustomer(c *Customer)
}

// nopRecorder is the recorder used when the caller supplies none.
type nopRecorder struct{}

func (nopRecorder) RecordState(StateSnapshot) {}
func (nopRecorder) RecordCustomer(*Customer)  {}
