package generator

import (
	"math/rand"
	"time"

	"edugen/config"

	"github.com/brianvoe/gofakeit/v7"
)

// Generator produces every entity table from a single seeded random source.
// All draws go through the embedded rng, so a run is fully reproducible given
// the same seed, configuration and reference time.
type Generator struct {
	rng   *rand.Rand
	faker *gofakeit.Faker
	cfg   *config.Config
	now   time.Time
}

// New creates a Generator seeded from the configuration. Trailing time windows
// (user signups, course creation, enrollments) count back from now.
func New(cfg *config.Config, now time.Time) *Generator {
	return &Generator{
		rng:   rand.New(rand.NewSource(cfg.Seed)),
		faker: gofakeit.New(uint64(cfg.Seed)),
		cfg:   cfg,
		now:   now,
	}
}
