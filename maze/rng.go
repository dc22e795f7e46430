// Package maze - permutation sources for the carving step.
//
// Goals:
//   - Uniformity: every one of the 4! direction orders is equally likely.
//   - Determinism: same seed => identical maze on every platform.
//   - Replaceability: any Shuffler may drive the carve; the spanning-tree
//     guarantees hold for every permutation order.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand passed
//     via WithRand across concurrent New calls.
package maze

import (
	"math/rand"
	"time"
)

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// Shuffler permutes a slice of directions in place. Implementations must
// leave dirs holding a permutation of its original contents.
type Shuffler interface {
	Shuffle(dirs []Direction)
}

// ShufflerFunc adapts a plain function to the Shuffler interface.
type ShufflerFunc func(dirs []Direction)

// Shuffle calls f(dirs).
func (f ShufflerFunc) Shuffle(dirs []Direction) {
	f(dirs)
}

// randShuffler is a Fisher–Yates shuffle over a math/rand stream.
type randShuffler struct {
	r *rand.Rand
}

// Shuffle performs an in-place Fisher–Yates shuffle of dirs.
//
// Complexity: O(n) time, O(1) extra space.
func (s *randShuffler) Shuffle(dirs []Direction) {
	var i, j int
	for i = len(dirs) - 1; i > 0; i-- {
		j = s.r.Intn(i + 1)
		dirs[i], dirs[j] = dirs[j], dirs[i]
	}
}

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 => defaultRNGSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// rngFromClock returns a stream seeded from the wall clock.
func rngFromClock() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
