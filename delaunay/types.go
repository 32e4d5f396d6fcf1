// Package delaunay: sentinel errors and functional configuration for
// the triangulator.
package delaunay

import (
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

// Sentinel errors surfaced by Insert.
var (
	// ErrTooFewPoints is returned when the first batch holds fewer than
	// three points.
	ErrTooFewPoints = errors.New("delaunay: at least three points required")

	// ErrCollinearPoints is returned when every input point lies on one
	// line, so no finite face exists.
	ErrCollinearPoints = errors.New("delaunay: all input points are collinear")

	// ErrNonFiniteCoordinate is returned when an input coordinate is NaN
	// or infinite.
	ErrNonFiniteCoordinate = errors.New("delaunay: point has non-finite coordinate")

	// ErrDuplicatePoint is returned when two supplied points coincide.
	// Duplicates are rejected before any mutation.
	ErrDuplicatePoint = errors.New("delaunay: duplicate point")

	// ErrDegenerateLocation is returned when the point-location walk
	// reaches a predicate mask with no defined transition.
	ErrDegenerateLocation = errors.New("delaunay: point location failed on degenerate mask")
)

// DefaultSeed seeds the triangulator's random source when no explicit
// source is supplied.
const DefaultSeed uint64 = 1

// Option configures a Triangulation via functional arguments.
type Option func(*Options)

// Options holds the triangulator's parameters.
type Options struct {
	// Rand breaks walking ties and drives the BRIO. Each Triangulation
	// owns its handle; there is no global randomness.
	Rand *rand.Rand

	// Logger receives per-phase debug lines during insertion. Defaults
	// to a no-op.
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
// value, making runs reproducible.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the logger used for insertion phase reporting.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}
