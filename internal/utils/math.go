package utils

import (
	crand "crypto/rand"
	"encoding/binary"
	"math"
	"math/rand"
	"sync"
	"time"
)

// RNG is the random source consumed by game logic.
// *rand.Rand satisfies it, but is not safe for concurrent use; prefer NewSeededRNG.
type RNG interface {
	// Float64 returns a value in [0.0, 1.0)
	Float64() float64
	// Intn returns a value in [0, n)
	Intn(n int) int
}

// globalRNG draws from the math/rand top-level source, which is safe for concurrent use
type globalRNG struct{}

func (globalRNG) Float64() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

func (globalRNG) Intn(n int) int {
	return rand.Intn(n) //nolint:gosec // Game logic randomness, not security critical
}

// DefaultRNG returns the production random source
func DefaultRNG() RNG {
	return globalRNG{}
}

// lockedRNG serializes access to a seeded *rand.Rand
type lockedRNG struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSeededRNG returns a reproducible, concurrency-safe random source.
// A seed of 0 picks a random seed from crypto/rand (falling back to the clock).
func NewSeededRNG(seed int64) RNG {
	if seed == 0 {
		seed = randomSeed()
	}
	//nolint:gosec // G404: math/rand is acceptable for game mechanics, not for cryptographic purposes
	return &lockedRNG{rnd: rand.New(rand.NewSource(seed))}
}

func (l *lockedRNG) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rnd.Float64()
}

func (l *lockedRNG) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rnd.Intn(n)
}

func randomSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

// UniformRange returns a value drawn uniformly from [lo, hi] using a single draw from rng.
// The upper bound is only reachable through rounding, so results never leave the range.
func UniformRange(rng RNG, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return Clamp(lo+rng.Float64()*(hi-lo), lo, hi)
}

// Clamp bounds v into [lo, hi]. NaN is mapped to lo.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
