// Package rng provides the seeded random sources used during maze generation.
//
// Goals:
//   - Determinism: same seed and same sequence of bounds ⇒ same draws, on every platform.
//   - Encapsulation: every maze owns its source; nothing here touches global state
//     except RandomSeed, which only picks a seed.
//   - Compatibility: LCG reproduces the 48-bit linear congruential generator
//     reference mazes were generated with, draw for draw.
//
// Concurrency:
//   - Sources are NOT goroutine-safe. Do not share one across goroutines.
package rng

import (
	"math"
	"math/rand"
)

// Source draws bounded uniform integers.
type Source interface {
	// IntN returns a uniform value in [0, bound). It panics if bound <= 0.
	IntN(bound int) int
}

// MaxSeed is the exclusive upper bound of seeds chosen by RandomSeed.
const MaxSeed = 32768

const (
	multiplier uint64 = 0x5DEECE66D
	addend     uint64 = 0xB
	mask       uint64 = 1<<48 - 1
)

// LCG is a 48-bit linear congruential generator:
//
//	state' = (state·0x5DEECE66D + 0xB) mod 2^48
//
// The seed is scrambled with the multiplier before the first step, and each
// draw of k bits returns the top k bits of the 48-bit state.
type LCG struct {
	state uint64
}

// NewLCG returns a generator seeded with seed.
// Complexity: O(1).
func NewLCG(seed int64) *LCG {
	return &LCG{state: (uint64(seed) ^ multiplier) & mask}
}

// next advances the state and returns its top bits as a signed 32-bit value.
func (l *LCG) next(bits uint) int32 {
	l.state = (l.state*multiplier + addend) & mask

	return int32(l.state >> (48 - bits))
}

// Int32 returns a uniform value over the full int32 range.
func (l *LCG) Int32() int32 {
	return l.next(32)
}

// IntN returns a uniform value in [0, bound).
//
// Power-of-two bounds take the high bits of one 31-bit draw. Other bounds
// use a modulo with rejection: draws from the incomplete final bucket are
// discarded, so one IntN call may consume more than one step.
//
// Panics if bound <= 0 or bound > math.MaxInt32.
func (l *LCG) IntN(bound int) int {
	if bound <= 0 || bound > math.MaxInt32 {
		panic("rng: invalid bound passed to IntN")
	}
	b := int32(bound)
	m := b - 1
	r := l.next(31)
	if b&m == 0 {
		return int((int64(b) * int64(r)) >> 31)
	}
	// u-r+m overflows int32 exactly when u lies in the incomplete bucket.
	for u := r; ; u = l.next(31) {
		r = u % b
		if u-r+m >= 0 {
			break
		}
	}

	return int(r)
}

// Math adapts math/rand to Source. Mazes built on it are deterministic per
// seed but do not match LCG seeds.
type Math struct {
	r *rand.Rand
}

// NewMath returns a math/rand backed Source seeded with seed.
func NewMath(seed int64) *Math {
	return &Math{r: rand.New(rand.NewSource(seed))}
}

// IntN returns a uniform value in [0, bound). It panics if bound <= 0.
func (m *Math) IntN(bound int) int {
	return m.r.Intn(bound)
}

// NewLCGSource is NewLCG typed as a Source constructor.
func NewLCGSource(seed int64) Source {
	return NewLCG(seed)
}

// NewMathSource is NewMath typed as a Source constructor.
func NewMathSource(seed int64) Source {
	return NewMath(seed)
}

// RandomSeed returns a seed drawn uniformly from [0, MaxSeed) using the
// process-wide math/rand source. Results are not reproducible.
func RandomSeed() int64 {
	return int64(rand.Intn(MaxSeed))
}
