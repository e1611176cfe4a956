package sim

import "fmt"

// Optional wraps a value that starts unset and is assigned later, making
// "not yet assigned" a checked state instead of a sentinel number.
type Optional[T any] struct {
	value T
	set   bool
}

// Set stores v and marks the value as assigned.
func (o *Optional[T]) Set(v T) {
	o.value = v
	o.set = true
}

// Get returns the value and whether it has been assigned.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// MustGet returns the value, panicking if it was never assigned.
// Reserved for places where the engine's own transitions guarantee
// assignment; reaching the panic means a transition defect.
func (o Optional[T]) MustGet() T {
	if !o.set {
		panic("sim: Optional value read before assignment")
	}
	return o.value
}

// Customer models one customer's lifecycle in the system.
//
// A Customer is created when its Arrival event is processed, mutated exactly
// twice (service start, then completion), and then handed to the Recorder as
// a departure record. The engine keeps no reference to a departed customer.
type Customer struct {
	// ID is unique and monotonically increasing in creation order, starting at 1.
	ID int64
	// ArrivalTime is the simulated time the customer entered the system.
	ArrivalTime float64
	// Server is the index of the server the customer was routed to (0-based).
	Server Optional[int]
	// ServiceStart is the simulated time service began.
	ServiceStart Optional[float64]
	// Completion is the simulated time service finished and the customer departed.
	Completion Optional[float64]
}

func (c *Customer) String() string {
	return fmt.Sprintf("customer %d (arrived %v)", c.ID, c.ArrivalTime)
}
