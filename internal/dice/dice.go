package dice

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/rallied/internal/dice Roller

import (
	"math/rand"
	"sync"
	"time"
)

// Roller is the random source every stochastic decision draws from
type Roller interface {
	// Float64 returns a uniform sample in [0, 1)
	Float64() float64

	// Intn returns a uniform integer in [0, n)
	Intn(n int) int
}

// Config for dice roller
type Config struct {
	// Optional seed for exact replay; zero seeds from the clock
	Seed int64
}

// roller wraps a seeded *rand.Rand. Matches can auto-play concurrently, so
// access is serialized.
type roller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new dice roller
func New(cfg *Config) Roller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &roller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Float64 draws a uniform sample in [0, 1)
func (r *roller) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Float64()
}

// Intn draws a uniform integer in [0, n); n < 1 always yields 0
func (r *roller) Intn(n int) int {
	if n < 1 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Intn(n)
}
