// Package brio: functional configuration for the reorderer.
package brio

import (
	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

// DefaultSeed seeds the reorderer's random source when no explicit
// source is supplied, keeping default runs reproducible.
const DefaultSeed uint64 = 1

// Option configures a Brio via functional arguments.
type Option func(*Options)

// Options holds the parameters of a reorder run.
type Options struct {
	// Rand drives the round sizes and the quickselect pivots. Each Brio
	// owns its handle; there is no global randomness.
	Rand *rand.Rand

	// Logger receives phase-level debug lines. Defaults to a no-op.
	Logger zerolog.Logger
}

// DefaultOptions returns Options with a deterministic random source and
// a no-op logger.
func DefaultOptions() Options {
	return Options{
		Rand:   rand.New(rand.NewSource(DefaultSeed)),
		Logger: zerolog.Nop(),
	}
}

// WithRand sets a custom random source.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSeed replaces the random source by one seeded with the given
// value.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the logger used for phase reporting.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}
