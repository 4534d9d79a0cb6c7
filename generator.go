package main

import (
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/txix-open/randgen/rng"
	"github.com/txix-open/randgen/rng/mt19937"
)

// generator is the private random state of a single worker goroutine. It is
// seeded exactly once, at construction, from the global stream, so fixing
// the global seed makes every worker's output reproducible.
type generator struct {
	rand  *rand.Rand
	faker *gofakeit.Faker
}

func newGenerator() *generator {
	return newSeededGenerator(rng.Next())
}

func newSeededGenerator(seed uint32) *generator {
	// gofakeit treats seed 0 as "use crypto entropy", which would lose
	// reproducibility for a zero draw, so shift the faker seed by one.
	return &generator{
		rand:  rand.New(mt19937.NewSource(seed)),
		faker: gofakeit.New(uint64(seed) + 1),
	}
}

func (g *generator) intn(n int) int {
	return g.rand.Intn(n)
}

func (g *generator) randRange(min, max int) int {
	if max == min {
		return max
	}
	return g.rand.Intn(max-min) + min
}

func (g *generator) randPercent() int {
	return g.rand.Intn(101)
}

func (g *generator) randDate() time.Time {
	now := time.Now().Unix()
	randOffset := g.rand.Int31() / 2

	return time.Unix(now-int64(randOffset), 0)
}
