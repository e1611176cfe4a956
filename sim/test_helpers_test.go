package sim

// captureRecorder collects everything the driver reports, so tests can
// assert on the exact snapshot and departure sequences.
type captureRecorder struct {
	states     []StateSnapshot
	departures []*Customer
}

func (r *captureRecorder) RecordState(snap StateSnapshot) {
	r.states = append(r.states, snap)
}

func (r *captureRecorder) RecordCustomer(c *Customer) {
	r.departures = append(r.departures, c)
}

// beforePhase filters the snapshots taken before each transition, one per
// processed event.
func (r *captureRecorder) beforePhase() []StateSnapshot {
	var out []StateSnapshot
	for _, s := range r.states {
		if s.Phase == PhaseBefore {
			out = append(out, s)
		}
	}
	return out
}

// afterPhase filters the snapshots taken after each transition.
func (r *captureRecorder) afterPhase() []StateSnapshot {
	var out []StateSnapshot
	for _, s := range r.states {
		if s.Phase == PhaseAfter {
			out = append(out, s)
		}
	}
	return out
}

// testParameters returns a small valid configuration that tests override
// per scenario.
func testParameters() Parameters {
	return Parameters{
		Seed:             42,
		Horizon:          100,
		Servers:          2,
		MeanInterarrival: 1.0,
		MeanService:      1.5,
		TimeUnit:         "minutes",
	}
}

// driveEvent mimics one driver iteration for tests that exercise
// transitions directly: advance the clock to the event time, then apply.
func driveEvent(s *Simulator, ev Event) *Customer {
	s.Clock = ev.Timestamp()
	return s.apply(ev)
}
