// Package rng provides the process-wide pseudo-random source shared by all
// generator components.
//
// It holds a single 32-bit Mersenne Twister behind a single mutex, both with
// process lifetime. The stream is seeded once from platform entropy, so
// separate runs diverge unless a caller fixes the seed with SetSeed, after
// which the sequence of Next values is fully reproducible.
//
// Components that embed a private generator should draw their default seed
// from here exactly once, at construction time:
//
//	gen := rand.New(mt19937.NewSource(rng.Next()))
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"sync"

	"github.com/pkg/errors"
	"github.com/txix-open/randgen/rng/mt19937"
)

// Package-variable initialization runs exactly once before first use, which
// is what guarantees a single engine and a single default seeding.
var global = newSource(mustEntropySeed())

type source struct {
	mu  sync.Mutex
	eng *mt19937.Engine
}

func newSource(seed uint32) *source {
	return &source{eng: mt19937.New(seed)}
}

// Next returns the next element of the shared sequence.
//
// Calls from concurrent goroutines are serialized; which caller gets which
// sequence position is decided by mutex acquisition order only.
func Next() uint32 {
	global.mu.Lock()
	defer global.mu.Unlock()
	return global.eng.Uint32()
}

// SetSeed reseeds the shared sequence in place. All prior stream state is
// discarded; subsequent Next values are a pure function of seed, absent
// other goroutines drawing concurrently. Every uint32 value is acceptable.
func SetSeed(seed uint32) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.eng.Seed(seed)
}

// mustEntropySeed panics on entropy failure: there is no fallback seed
// strategy, the process simply cannot start using this package.
func mustEntropySeed() uint32 {
	seed, err := entropySeed()
	if err != nil {
		panic(err)
	}
	return seed
}

func entropySeed() (uint32, error) {
	var b [4]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, errors.WithMessage(err, "read entropy for default rng seed")
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}
