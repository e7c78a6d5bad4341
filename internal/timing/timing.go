package timing

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/navadeep2604/Reflex-Rush/internal/timing Roller

// Roller draws the randomized phase durations for a round
type Roller interface {
	// DurationBetween returns a duration in the half-open range [min, max)
	DurationBetween(min, max time.Duration) time.Duration
}

// Config for the duration roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

type randomRoller struct {
	random *rand.Rand
}

// New creates a new duration roller
func New(cfg *Config) Roller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &randomRoller{
		random: random,
	}
}

// DurationBetween returns a duration in the half-open range [min, max)
func (r *randomRoller) DurationBetween(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	return min + time.Duration(r.random.Int63n(int64(max-min)))
}
