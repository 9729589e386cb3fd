package random

import (
	"math/rand"
	"sync"
	"time"
)

const (
	// SequenceLength is the number of pre-generated values in a sequence.
	SequenceLength = 10000

	// Period is the wrap modulus of the cursor. Values repeat after Period calls.
	Period = SequenceLength
)

var (
	sharedOnce   sync.Once
	sharedValues []float64
)

// Sequence replays a fixed table of uniform values in [0,1).
// A Sequence is not safe for concurrent use; give each goroutine its own
// instance (instances created by NewSequence share the table, not the cursor).
type Sequence struct {
	values []float64
	cursor int
}

// NewSequence returns a sequence over the process-wide table. The table is
// generated once, on first use, so every instance replays the same values.
// The zero Sequence behaves like one returned by NewSequence.
func NewSequence() *Sequence {
	return &Sequence{values: shared()}
}

func shared() []float64 {
	sharedOnce.Do(func() {
		sharedValues = fill(rand.New(rand.NewSource(time.Now().UnixNano())))
	})
	return sharedValues
}

// NewSeededSequence returns a sequence with its own table generated from seed.
func NewSeededSequence(seed int64) *Sequence {
	return &Sequence{values: fill(rand.New(rand.NewSource(seed)))}
}

func fill(rnd *rand.Rand) []float64 {
	values := make([]float64, SequenceLength)
	for i := range values {
		values[i] = rnd.Float64()
	}
	return values
}

// Float64 returns the next value and advances the cursor.
func (s *Sequence) Float64() float64 {
	if s.values == nil {
		s.values = shared()
	}
	v := s.values[s.cursor]
	s.cursor = (s.cursor + 1) % Period
	return v
}

// Reset rewinds the cursor to the start of the table.
func (s *Sequence) Reset() {
	s.cursor = 0
}
