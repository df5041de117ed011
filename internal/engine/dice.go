package engine

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"
)

// Die faces.
const (
	DieMin = 1
	DieMax = 6
)

// Die produces roll values. Implementations must return values in [DieMin, DieMax].
type Die interface {
	Roll() int
}

// RandomDie is a fair six-sided die backed by a seeded PRNG.
// Two dice created with the same non-zero seed produce the same sequence.
type RandomDie struct {
	rng *rand.Rand
}

// NewRandomDie creates a die. A seed of 0 picks a random seed.
func NewRandomDie(seed int64) *RandomDie {
	if seed == 0 {
		seed = NewSeed()
	}
	return &RandomDie{rng: rand.New(rand.NewSource(seed))}
}

// Roll returns a uniformly random value in [DieMin, DieMax].
func (d *RandomDie) Roll() int {
	return d.rng.Intn(DieMax-DieMin+1) + DieMin
}

// NewSeed returns a seed from crypto/rand, falling back to the clock.
func NewSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	seed := int64(binary.LittleEndian.Uint64(b[:]))
	if seed == 0 {
		seed = 1
	}
	return seed
}

// ScriptedDie replays a fixed sequence of values, cycling when exhausted.
// Useful for tests and demos. Values are returned as given; Session.Roll
// rejects any outside [DieMin, DieMax].
type ScriptedDie struct {
	values []int
	next   int
}

// NewScriptedDie creates a die that returns values in order.
func NewScriptedDie(values ...int) *ScriptedDie {
	return &ScriptedDie{values: values}
}

// Roll returns the next scripted value, or DieMin when the script is empty.
func (d *ScriptedDie) Roll() int {
	if len(d.values) == 0 {
		return DieMin
	}
	v := d.values[d.next%len(d.values)]
	d.next++
	return v
}
