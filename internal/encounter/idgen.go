package encounter

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator produces unique encounter instance ids
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues time-ordered UUIDv7 ids (millisecond timestamp plus random bits)
type UUIDGenerator struct{}

// NewID returns a new UUIDv7, or a random UUIDv4 if the v7 clock source fails
func (UUIDGenerator) NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// SequentialIDGenerator issues "<prefix><n>" ids from an atomic counter. Used by tests and simulations.
type SequentialIDGenerator struct {
	Prefix string
	next   atomic.Uint64
}

// NewID returns the next id in sequence, starting at 1
func (g *SequentialIDGenerator) NewID() string {
	return g.Prefix + strconv.FormatUint(g.next.Add(1), 10)
}
