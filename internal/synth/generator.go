// Package synth fabricates internally consistent market data for the
// terminal fallback providers. Values are plausible, never live.
package synth

import (
	"math/rand"
	"sync"
	"time"
)

// Generator derives synthetic quotes and history series. The random
// source is injectable so tests can fix the sequence.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a generator with a fixed seed.
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// NewRandom creates a time-seeded generator for production use.
func NewRandom() *Generator {
	return New(time.Now().UnixNano())
}

// uniform draws from [min, max).
func (g *Generator) uniform(min, max float64) float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return min + g.rng.Float64()*(max-min)
}

// intBetween draws an integer from [min, max].
func (g *Generator) intBetween(min, max int64) int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return min + g.rng.Int63n(max-min+1)
}
