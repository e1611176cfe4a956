// Package sim provides the core discrete-event engine for simulating a
// multi-server queueing network: customers arrive, are routed to the
// least-loaded server's FIFO queue, wait, receive service, and depart.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - customer.go: the Customer lifecycle record (arrival → routed → in service → departed)
//   - event.go: the two event types that drive the simulation (Arrival, Finish)
//   - simulator.go: the event loop and the per-event state transitions
//
// # Determinism
//
// A run is fully determined by its Parameters. Both random streams
// (inter-arrival and service durations) draw from one seeded source, events
// carry strictly increasing ids that break timestamp ties in the schedule,
// and the driver processes one event to completion before popping the next.
// Two runs with the same Parameters produce bit-identical traces.
//
// # Output
//
// The engine itself performs no I/O. Each processed event is reported to a
// Recorder (before/after state snapshots, plus the departing customer when
// one leaves); sim/trace provides the standard in-memory collector with CSV
// and YAML export.
package sim
