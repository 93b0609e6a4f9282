package idgen

import (
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Generator produces identifiers for catalog records and numeric pickup
// codes. Keeping it behind an interface lets tests substitute a
// deterministic implementation.
type Generator interface {
	NewID() string
	PickupCode() string
}

// Random is the production Generator: UUIDs for identifiers and a uniform
// 4-digit code in [1000, 9999] for pickups.
type Random struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandom creates a Random generator seeded from the current time.
func NewRandom() *Random {
	return &Random{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewID returns a new UUID string.
func (g *Random) NewID() string {
	return uuid.New().String()
}

// PickupCode returns a 4-digit code sampled uniformly in [1000, 9999].
func (g *Random) PickupCode() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return strconv.Itoa(1000 + g.rng.Intn(9000))
}

// Static is a fixed-output Generator for tests. Successive NewID calls
// append a counter so created records still get distinct identifiers.
type Static struct {
	ID   string
	Code string

	mu sync.Mutex
	n  int
}

func (g *Static) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	if g.n == 1 {
		return g.ID
	}
	return g.ID + "-" + strconv.Itoa(g.n)
}

func (g *Static) PickupCode() string {
	return g.Code
}
