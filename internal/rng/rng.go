// Package rng isolates the randomness used by problem generation so tests
// can substitute a seeded or scripted source.
package rng

import "math/rand/v2"

// Source draws uniform integers.
type Source interface {
	// Int returns a uniform integer in [min, max]. If max < min, min is returned.
	Int(min, max int64) int64
}

// Rand is a Source backed by math/rand/v2.
type Rand struct {
	r *rand.Rand
}

// New returns a Source seeded with seed. Equal seeds yield equal sequences.
func New(seed uint64) *Rand {
	return &Rand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Default returns a Source seeded from the runtime's random state.
func Default() *Rand {
	return New(rand.Uint64())
}

func (s *Rand) Int(min, max int64) int64 {
	if max <= min {
		return min
	}
	return min + s.r.Int64N(max-min+1)
}

// Chance reports true with probability p, drawing in whole percent.
func Chance(src Source, p float64) bool {
	if p <= 0 {
		return false
	}
	return float64(src.Int(1, 100)) <= p*100
}

// Scripted replays a fixed list of values, clamped into the requested
// range. After the script is exhausted it returns min. Useful in tests.
type Scripted struct {
	Values []int64
	pos    int
}

func (s *Scripted) Int(min, max int64) int64 {
	if s.pos >= len(s.Values) {
		return min
	}
	v := s.Values[s.pos]
	s.pos++
	if v < min {
		return min
	}
	if v > max && max >= min {
		return max
	}
	return v
}
