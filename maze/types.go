// Package maze defines the core types, options, and sentinel errors
// for maze generation.
package maze

import (
	"errors"
	"math/rand"
)

// Sentinel errors for maze operations.
var (
	// ErrInvalidDimension indicates a width or length below 1.
	ErrInvalidDimension = errors.New("maze: width and length must be at least 1")
	// ErrOutOfRange indicates a coordinate outside [0,width) x [0,length).
	ErrOutOfRange = errors.New("maze: coordinate out of range")
)

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

// Wall is one closed edge of a cell that a scene builder must instantiate.
type Wall struct {
	Cell Cell      // Cell that owns the edge
	Side Direction // Side of Cell the wall sits on
}

// Option configures maze generation.
// Use with New(width, length, opts...).
type Option func(*Options)

// Options holds the permutation source used while carving.
type Options struct {
	// Shuffler permutes the four directions once per entered cell.
	Shuffler Shuffler
}

// DefaultOptions returns Options with a wall-clock seeded shuffler.
func DefaultOptions() Options {
	return Options{
		Shuffler: &randShuffler{r: rngFromClock()},
	}
}

// WithSeed returns an Option that carves from a deterministic stream.
// Seed 0 is mapped to a fixed default seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Shuffler = &randShuffler{r: rngFromSeed(seed)}
	}
}

// WithRand returns an Option that draws permutations from r.
// A nil r has no effect.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Shuffler = &randShuffler{r: r}
		}
	}
}

// WithShuffler returns an Option that installs a custom permutation source.
// A nil s has no effect.
func WithShuffler(s Shuffler) Option {
	return func(o *Options) {
		if s != nil {
			o.Shuffler = s
		}
	}
}
