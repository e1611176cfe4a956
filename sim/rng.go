package sim

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Streams is the deterministic variate source that drives the simulation:
// exponentially distributed inter-arrival durations and service durations.
//
// Both distributions draw from one shared seeded source, so the exact order
// in which NextInterarrival and NextService are called is part of the
// reproducibility contract. Two simulations with the same seed and the same
// Parameters MUST produce bit-for-bit identical draw sequences; reordering
// any two calls changes every draw that follows.
//
// Thread-safety: NOT thread-safe. Must be called from a single goroutine.
type Streams struct {
	interarrival distuv.Exponential
	service      distuv.Exponential
}

// NewStreams creates the paired duration streams from a seed and the two
// configured means. Exponential rate is the reciprocal of the mean.
func NewStreams(seed int64, meanInterarrival, meanService float64) *Streams {
	src := rand.NewSource(uint64(seed))
	return &Streams{
		interarrival: distuv.Exponential{Rate: 1 / meanInterarrival, Src: src},
		service:      distuv.Exponential{Rate: 1 / meanService, Src: src},
	}
}

// NextInterarrival returns the next inter-arrival duration. The stream is
// infinite and every draw is positive.
func (s *Streams) NextInterarrival() float64 {
	return s.interarrival.Rand()
}

// NextService returns the next service duration.
func (s *Streams) NextService() float64 {
	return s.service.Rand()
}
