// internal/synth/synth.go

// Package synth is the deterministic randomness context for a generation run.
// One base seed derives three independent streams: general uniform/choice
// draws, a numeric distribution source for log-normal sampling, and a
// synthetic identity source for names, companies, job titles, and addresses.
// Child contexts derived per organization keep each organization's draws
// independent of every other organization's, so output for organization i is
// a pure function of (seed, i) and the documented draw order inside it.
package synth

import (
	mrand "math/rand/v2"
	"slices"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	xrand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Stream salts keep the three streams decorrelated even though they share
// one base seed.
const (
	fakerSalt   = 0x9e3779b97f4a7c15
	numericSalt = 0xbf58476d1ce4e5b9
)

type Context struct {
	seed    uint64
	rng     *mrand.Rand
	faker   *gofakeit.Faker
	numeric xrand.Source
}

// New creates the root context for a run.
func New(seed uint64) *Context {
	return newContext(seed, 0)
}

// Child derives an independent sub-context from the base seed and a stream
// index. Draws on a child never consume from, and are never perturbed by,
// the parent or any sibling.
func (c *Context) Child(index int) *Context {
	return newContext(c.seed, uint64(index)+1)
}

func newContext(seed, stream uint64) *Context {
	return &Context{
		seed:    seed,
		rng:     mrand.New(mrand.NewPCG(seed, stream)),
		faker:   gofakeit.NewFaker(mrand.NewPCG(seed^fakerSalt, stream), false),
		numeric: xrand.NewSource(seed ^ numericSalt ^ stream),
	}
}

// Float64 draws uniformly from [0, 1).
func (c *Context) Float64() float64 {
	return c.rng.Float64()
}

// Uniform draws uniformly from [lo, hi).
func (c *Context) Uniform(lo, hi float64) float64 {
	return lo + c.rng.Float64()*(hi-lo)
}

// IntBetween draws uniformly from the inclusive range [lo, hi].
func (c *Context) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + c.rng.IntN(hi-lo+1)
}

// Bool draws true with probability p.
func (c *Context) Bool(p float64) bool {
	return c.rng.Float64() < p
}

// Time draws a uniformly distributed second-precision instant in
// [start, end]. A window that is empty or inverted collapses to start.
func (c *Context) Time(start, end time.Time) time.Time {
	if !start.Before(end) {
		return start
	}
	seconds := int(end.Sub(start) / time.Second)
	return start.Add(time.Duration(c.IntBetween(0, seconds)) * time.Second)
}

// LogNormal draws from a log-normal distribution with the given log-space
// mean and deviation, consuming the numeric stream.
func (c *Context) LogNormal(mu, sigma float64) float64 {
	dist := distuv.LogNormal{Mu: mu, Sigma: sigma, Src: c.numeric}
	return dist.Rand()
}

// Identity synthesis, delegated to the seeded faker stream.

func (c *Context) Company() string   { return c.faker.Company() }
func (c *Context) FirstName() string { return c.faker.FirstName() }
func (c *Context) LastName() string  { return c.faker.LastName() }
func (c *Context) JobTitle() string  { return c.faker.JobTitle() }
func (c *Context) IPv4() string      { return c.faker.IPv4Address() }

// Pick draws one element uniformly.
func Pick[T any](c *Context, items []T) T {
	return items[c.rng.IntN(len(items))]
}

// WeightedPick draws one element with probability proportional to its weight.
// items and weights must be index-aligned.
func WeightedPick[T any](c *Context, items []T, weights []float64) T {
	var total float64
	for _, w := range weights {
		total += w
	}
	target := c.rng.Float64() * total
	for i, w := range weights {
		target -= w
		if target < 0 {
			return items[i]
		}
	}
	// Floating-point accumulation can leave target at exactly zero.
	return items[len(items)-1]
}

// Sample draws k elements without replacement, leaving items untouched.
// k larger than len(items) returns a permutation of all items.
func Sample[T any](c *Context, items []T, k int) []T {
	if k > len(items) {
		k = len(items)
	}
	pool := slices.Clone(items)
	for i := 0; i < k; i++ {
		j := i + c.rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
