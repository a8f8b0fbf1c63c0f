package convert

import (
	"math"
	"math/rand"
	"time"
)

// Temperature bounds of the injected sampling temperature.
const (
	MinTemperature = 0.2
	MaxTemperature = 0.7
)

// Sampler draws sampling temperatures for converted records.
// A Sampler is not safe for concurrent use.
type Sampler struct {
	rng  *rand.Rand
	seed *int64
}

// NewSampler returns a sampler seeded with *seed, or with the clock when
// seed is nil. Two samplers built from the same seed yield the same sequence.
func NewSampler(seed *int64) *Sampler {
	s := &Sampler{}
	if seed != nil {
		v := *seed
		s.seed = &v
		s.rng = rand.New(rand.NewSource(v))
	} else {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s
}

// Seed returns the seed the sampler was built with, if any.
func (s *Sampler) Seed() (int64, bool) {
	if s.seed == nil {
		return 0, false
	}
	return *s.seed, true
}

// Temperature draws uniformly from [MinTemperature, MaxTemperature] and
// rounds to one decimal.
func (s *Sampler) Temperature() float64 {
	v := MinTemperature + s.rng.Float64()*(MaxTemperature-MinTemperature)
	return math.Round(v*10) / 10
}
