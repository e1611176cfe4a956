package sim

import "fmt"

// Event is a scheduled occurrence in the simulation. The engine has a
// closed set of exactly two implementations, ArrivalEvent and FinishEvent;
// the simulator dispatches on the concrete type and treats anything else as
// a programming error.
//
// Events are immutable once scheduled: every field, including the keying
// timestamp and the tie-breaking id, is fixed at construction.
type Event interface {
	// Timestamp is the simulated time at which the event occurs.
	Timestamp() float64
	// ID is the event's creation-order serial number, unique within a run
	// and strictly increasing. Equal-timestamp events are processed in id
	// order, which keeps traces reproducible.
	ID() uint64
	// Label is the event's trace representation: "Arrival" or "Finish(n)"
	// with n the 1-based server number.
	Label() string
}

// BaseEvent provides the common timestamp and id fields.
type BaseEvent struct {
	timestamp float64
	id        uint64
}

func (e *BaseEvent) Timestamp() float64 {
	return e.timestamp
}

func (e *BaseEvent) ID() uint64 {
	return e.id
}

// ArrivalEvent represents a new customer entering the system. The customer
// record itself is created when the event is processed, not before.
type ArrivalEvent struct {
	BaseEvent
}

// NewArrivalEvent creates an ArrivalEvent. The id must come from the owning
// simulator's event counter.
func NewArrivalEvent(id uint64, timestamp float64) *ArrivalEvent {
	return &ArrivalEvent{BaseEvent{timestamp: timestamp, id: id}}
}

func (e *ArrivalEvent) Label() string {
	return "Arrival"
}

// FinishEvent represents the customer occupying a server's slot completing
// service at that server.
type FinishEvent struct {
	BaseEvent
	// Server is the 0-based index of the server whose occupant completes.
	Server int
}

// NewFinishEvent creates a FinishEvent for the given server.
func NewFinishEvent(id uint64, timestamp float64, server int) *FinishEvent {
	return &FinishEvent{BaseEvent: BaseEvent{timestamp: timestamp, id: id}, Server: server}
}

func (e *FinishEvent) Label() string {
	// Server numbers are reported 1-based in traces.
	return fmt.Sprintf("Finish(%d)", e.Server+1)
}
