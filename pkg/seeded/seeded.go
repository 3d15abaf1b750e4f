// Package seeded provides the string hash and multiplicative LCG that drive every
// synthetic generator. A given key always yields the same stream of draws.
package seeded

import (
	"errors"
	"unicode/utf16"
)

const (
	// Modulus is the Park-Miller prime 2^31 - 1.
	Modulus int64 = 2147483647
	// Multiplier is the Park-Miller minimal-standard multiplier.
	Multiplier int64 = 16807
)

// ErrEmptyKey is returned when a seed is requested for an empty key.
var ErrEmptyKey = errors.New("seed key must not be empty")

// Hash computes the polynomial rolling hash h = h*31 + unit over the UTF-16 code
// units of s, wrapping to a signed 32-bit integer after every step, and returns
// the absolute value. The result lies in [0, 2^31].
func Hash(s string) int64 {
	var h int32
	for _, unit := range utf16.Encode([]rune(s)) {
		h = h*31 + int32(unit)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return v
}

// SeedFor hashes a non-empty key into a stream seed.
func SeedFor(key string) (int64, error) {
	if key == "" {
		return 0, ErrEmptyKey
	}
	return Hash(key), nil
}

// Stream is a cursor over the LCG sequence. It is not safe for concurrent use;
// each generation pass owns its own Stream.
type Stream struct {
	state int64
}

// NewStream creates a stream positioned at seed. Seeds are reduced modulo
// Modulus; a seed congruent to zero would make the generator emit a constant
// sequence, so it is floored to 1.
func NewStream(seed int64) *Stream {
	s := seed % Modulus
	if s < 0 {
		s += Modulus
	}
	if s == 0 {
		s = 1
	}
	return &Stream{state: s}
}

// ForKey creates a stream seeded from the hash of key.
func ForKey(key string) (*Stream, error) {
	seed, err := SeedFor(key)
	if err != nil {
		return nil, err
	}
	return NewStream(seed), nil
}

// Next advances the stream and returns a value in [0, 1).
func (s *Stream) Next() float64 {
	s.state = (s.state * Multiplier) % Modulus
	return float64(s.state-1) / float64(Modulus-1)
}

// Intn returns floor(Next()*n).
func (s *Stream) Intn(n int) int {
	return int(s.Next() * float64(n))
}
