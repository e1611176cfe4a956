// sim/simulator.go
package sim

import (
	"github.com/sirupsen/logrus"
)

// Simulator is the core object that owns the simulation clock, the system
// state and the event loop for one run.
//
// Thread-safety: NOT thread-safe. A run is purely sequential; all state is
// owned by the driver for the lifetime of the run.
type Simulator struct {
	Clock   float64
	Horizon float64

	// EventQueue is the future-event schedule.
	EventQueue *EventHeap
	// Servers holds the per-server waiting queues and service slots.
	Servers []*Server
	// Streams drives the inter-arrival and service durations.
	Streams *Streams

	// CustomersCreated counts customers admitted so far. It doubles as the
	// customer id allocator: the first customer gets id 1.
	CustomersCreated int64
	// EventsProcessed counts events popped and executed by the driver.
	EventsProcessed int64

	recorder Recorder
	// nextEventID is per-simulator, not global, so two runs with the same
	// Parameters assign identical event ids.
	nextEventID uint64
}

// NewSimulator creates a simulator for the given parameters. The recorder
// receives every state snapshot and departure; pass nil to discard output.
// Parameters are trusted here (Servers >= 1); validation happens at setup.
func NewSimulator(params Parameters, rec Recorder) *Simulator {
	if rec == nil {
		rec = nopRecorder{}
	}
	servers := make([]*Server, params.Servers)
	for i := range servers {
		servers[i] = NewServer()
	}
	return &Simulator{
		Horizon:    params.Horizon,
		EventQueue: NewEventHeap(),
		Servers:    servers,
		Streams:    NewStreams(params.Seed, params.MeanInterarrival, params.MeanService),
		recorder:   rec,
	}
}

// newEventID allocates the next event id.
func (s *Simulator) newEventID() uint64 {
	s.nextEventID++
	return s.nextEventID
}

// scheduleNextArrival pushes the next Arrival at the current time plus one
// inter-arrival draw.
func (s *Simulator) scheduleNextArrival() {
	at := s.Clock + s.Streams.NextInterarrival()
	s.EventQueue.Schedule(NewArrivalEvent(s.newEventID(), at))
}

// Run executes the event loop until the horizon is reached.
//
// The horizon check uses the clock value from before the pop, so the first
// event whose time reaches or crosses the horizon is still processed in
// full; exactly one such event is, never more. Existing traces depend on
// this boundary behavior.
func (s *Simulator) Run() {
	// Seed the schedule with the first arrival. Every processed Arrival
	// schedules its successor, so the schedule never drains before the
	// horizon check ends the loop.
	s.scheduleNextArrival()

	for s.Clock < s.Horizon {
		ev := s.EventQueue.PopNext()
		if ev.Timestamp() < s.Clock {
			logrus.Panicf("clock went backwards: %v < %v", ev.Timestamp(), s.Clock)
		}
		s.Clock = ev.Timestamp()
		s.EventsProcessed++
		logrus.Infof("[t=%010.4f] executing %s (event %d)", s.Clock, ev.Label(), ev.ID())

		s.recorder.RecordState(s.snapshot(ev, PhaseBefore))
		departed := s.apply(ev)
		s.recorder.RecordState(s.snapshot(ev, PhaseAfter))
		if departed != nil {
			s.recorder.RecordCustomer(departed)
		}
	}
	logrus.Infof("[t=%010.4f] simulation ended after %d events", s.Clock, s.EventsProcessed)
}

// apply dispatches one event to its transition and returns the departing
// customer, if the event produced one. The event set is closed: anything
// other than Arrival or Finish is a defect, not a runtime condition.
func (s *Simulator) apply(ev Event) *Customer {
	switch e := ev.(type) {
	case *ArrivalEvent:
		s.handleArrival(e)
		return nil
	case *FinishEvent:
		return s.handleFinish(e)
	default:
		logrus.Panicf("unknown event type %T", ev)
		return nil
	}
}

// handleArrival admits a new customer: create the record, route it to the
// least-loaded server, schedule the next Arrival, and start service
// immediately if the chosen server is idle. No customer departs here.
func (s *Simulator) handleArrival(e *ArrivalEvent) {
	s.CustomersCreated++
	c := &Customer{ID: s.CustomersCreated, ArrivalTime: e.Timestamp()}

	target := s.chooseServer()
	c.Server.Set(target)
	s.Servers[target].Queue.Enqueue(c)
	logrus.Infof("<< Arrival: %s -> server %d (queue %d)", c, target+1, s.Servers[target].Queue.Len())

	// The successor Arrival is scheduled before any same-step service
	// start, so the inter-arrival draw always precedes the service draw.
	s.scheduleNextArrival()

	if !s.Servers[target].Busy() {
		s.startService(target)
	}
}

// chooseServer picks the arrival routing target: the server with the
// minimum load score, ties broken by the lowest index.
func (s *Simulator) chooseServer() int {
	target := 0
	minLoad := s.Servers[0].Load()
	for i := 1; i < len(s.Servers); i++ {
		if load := s.Servers[i].Load(); load < minLoad {
			minLoad = load
			target = i
		}
	}
	return target
}

// startService is the move-to-server transition: the front waiting customer
// moves into the server's slot and its Finish is scheduled. This is the
// only transition that creates Finish events and the only one that shrinks
// waiting queues. Callers guarantee a non-empty queue and a free slot.
func (s *Simulator) startService(server int) {
	srv := s.Servers[server]
	if srv.Busy() {
		logrus.Panicf("move-to-server: slot of server %d already occupied", server+1)
	}
	c := srv.Queue.Dequeue()
	if c == nil {
		logrus.Panicf("move-to-server: queue of server %d is empty", server+1)
	}
	c.ServiceStart.Set(s.Clock)
	completion := s.Clock + s.Streams.NextService()
	srv.InService = c
	s.EventQueue.Schedule(NewFinishEvent(s.newEventID(), completion, server))
	logrus.Infof("   service start: %s on server %d until %v", c, server+1, completion)
}

// handleFinish completes service at the event's server: the occupant is
// detached from the slot (ownership moves out, the slot empties), the next
// waiting customer, if any, enters service within the same step, and the
// detached customer is returned as the departure record.
//
// A Finish for an empty slot means the scheduling logic is broken; it is
// fatal, never retried.
func (s *Simulator) handleFinish(e *FinishEvent) *Customer {
	srv := s.Servers[e.Server]
	c := srv.InService
	if c == nil {
		logrus.Panicf("Finish for server %d but its slot is empty", e.Server+1)
	}
	srv.InService = nil

	if srv.Queue.Len() > 0 {
		s.startService(e.Server)
	}

	c.Completion.Set(e.Timestamp())
	logrus.Infof(">> Departure: %s from server %d", c, e.Server+1)
	return c
}

// snapshot captures the recorder's view of the system around ev.
func (s *Simulator) snapshot(ev Event, phase Phase) StateSnapshot {
	gauges := make([]ServerGauge, len(s.Servers))
	for i, srv := range s.Servers {
		gauges[i] = ServerGauge{QueueLength: srv.Queue.Len(), Busy: srv.Busy()}
	}
	return StateSnapshot{
		Time:    s.Clock,
		EventID: ev.ID(),
		Event:   ev.Label(),
		Phase:   phase,
		Pending: s.EventQueue.Len(),
		Servers: gauges,
	}
}
