package builder

import (
	"math/rand"
	"strconv"
)

// Option configures Build.
type Option func(*builderConfig)

// builderConfig is passed by value to constructors.
type builderConfig struct {
	idFn   func(int) string
	rateFn func(i int, rng *rand.Rand) int
	rng    *rand.Rand
}

func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		idFn:   decimalID,
		rateFn: defaultRate,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func decimalID(i int) string { return strconv.Itoa(i) }

// defaultRate leaves index 0 (the conventional start) as a waypoint.
func defaultRate(i int, _ *rand.Rand) int {
	if i == 0 {
		return 0
	}

	return 1
}

// WithIDScheme sets the index → ID function. A nil fn is ignored.
func WithIDScheme(fn func(int) string) Option {
	return func(c *builderConfig) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithRateFn sets the index → rate function. A nil fn is ignored.
func WithRateFn(fn func(i int, rng *rand.Rand) int) Option {
	return func(c *builderConfig) {
		if fn != nil {
			c.rateFn = fn
		}
	}
}

// WithRand uses r as the random source.
func WithRand(r *rand.Rand) Option {
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a deterministic random source from seed.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// AlphaID renders 0,1,...,25,26,... as "AA","AB",...,"AZ","BA",...
// matching the two-letter identifiers of hand-written listings.
func AlphaID(i int) string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	if i < 0 || i >= len(letters)*len(letters) {
		return "X" + strconv.Itoa(i)
	}

	return string([]byte{letters[i/len(letters)], letters[i%len(letters)]})
}
