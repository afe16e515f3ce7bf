package utils

import (
	"time"

	"golang.org/x/exp/rand"
)

// RandomSource yields uniformly distributed values in [0, 1).
// *rand.Rand satisfies it; tests inject fixed sequences.
type RandomSource interface {
	Float64() float64
}

// NewRandomSource returns a seeded generator. A zero seed uses the clock.
func NewRandomSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

// RandomSign returns +1 or -1 with equal probability.
func RandomSign(r RandomSource) float64 {
	if r.Float64() > 0.5 {
		return 1
	}
	return -1
}

// RandomRange returns a value in [min, min+spread).
func RandomRange(r RandomSource, min, spread float64) float64 {
	return r.Float64()*spread + min
}

// RandomJitter returns a value in [-amplitude/2, amplitude/2).
func RandomJitter(r RandomSource, amplitude float64) float64 {
	return (r.Float64() - 0.5) * amplitude
}

// SequenceSource replays a fixed list of values, cycling when exhausted.
type SequenceSource struct {
	Values []float64
	next   int
}

// NewSequenceSource builds a SequenceSource over values.
func NewSequenceSource(values ...float64) *SequenceSource {
	return &SequenceSource{Values: values}
}

func (s *SequenceSource) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v
}

// Drawn reports how many values have been consumed.
func (s *SequenceSource) Drawn() int {
	return s.next
}
