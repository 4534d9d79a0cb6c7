// Package mt19937 implements the 32-bit Mersenne Twister pseudo-random
// number generator by Matsumoto and Nishimura, 1998.
//
// An Engine is not safe for concurrent use. Components that need a private
// stream embed their own Engine (or a *rand.Rand over NewSource) and seed it
// once at construction; the process-wide locked stream lives in package rng.
package mt19937

import (
	"math/rand"
)

const (
	n = 624
	m = 397

	matrixA   = 0x9908b0df
	upperMask = 0x80000000
	lowerMask = 0x7fffffff
)

// DefaultSeed is the reference implementation's default seed value.
const DefaultSeed = 5489

// Engine holds the generator state: a 624-word state vector and a cursor
// into it.
type Engine struct {
	state [n]uint32
	index int
}

// New returns an Engine seeded with seed.
func New(seed uint32) *Engine {
	e := &Engine{}
	e.Seed(seed)
	return e
}

// Seed replaces the entire state vector using the standard init_genrand
// procedure. Every uint32 value is a valid seed.
func (e *Engine) Seed(seed uint32) {
	e.state[0] = seed
	for i := uint32(1); i < n; i++ {
		prev := e.state[i-1]
		e.state[i] = 1812433253*(prev^(prev>>30)) + i
	}
	e.index = n
}

// Uint32 returns the next 32-bit word of the sequence.
func (e *Engine) Uint32() uint32 {
	if e.index >= n {
		e.twist()
	}

	y := e.state[e.index]
	e.index++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

// twist regenerates the state vector in place.
func (e *Engine) twist() {
	for i := 0; i < n; i++ {
		y := (e.state[i] & upperMask) | (e.state[(i+1)%n] & lowerMask)
		next := e.state[(i+m)%n] ^ (y >> 1)
		if y&1 == 1 {
			next ^= matrixA
		}
		e.state[i] = next
	}
	e.index = 0
}

// source adapts an Engine to math/rand.Source64 so it can back a *rand.Rand.
type source struct {
	e *Engine
}

// NewSource returns a math/rand.Source64 over a fresh Engine seeded with
// seed. Like the Engine itself, the returned source is not safe for
// concurrent use.
func NewSource(seed uint32) rand.Source64 {
	return &source{e: New(seed)}
}

// Uint64 composes two consecutive 32-bit draws, high word first.
func (s *source) Uint64() uint64 {
	hi := uint64(s.e.Uint32())
	lo := uint64(s.e.Uint32())
	return hi<<32 | lo
}

func (s *source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

// Seed reseeds the engine with the low 32 bits of seed.
func (s *source) Seed(seed int64) {
	s.e.Seed(uint32(seed))
}
