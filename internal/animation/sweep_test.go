package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepStartsAtLowerBound(t *testing.T) {
	s := NewSweep(-0.5, 0.5, 0.002)
	assert.Equal(t, float32(-0.5), s.Value())
}

func TestSweepStaysInRange(t *testing.T) {
	s := NewSweep(-0.5, 0.5, 0.002)
	for i := 0; i < 5000; i++ {
		v := s.Advance()
		require.GreaterOrEqual(t, v, float32(-0.5), "frame %d", i)
		require.Less(t, v, float32(0.5), "frame %d", i)
	}
}

// framesUntilWrap advances until the sweep jumps back to its lower bound.
func framesUntilWrap(t *testing.T, s *Sweep) int {
	t.Helper()
	lo, _ := s.Bounds()
	for n := 1; n <= 10000; n++ {
		if s.Advance() == lo {
			return n
		}
	}
	t.Fatal("sweep never wrapped")
	return 0
}

func TestSweepWrapsAfterAboutFiveHundredFrames(t *testing.T) {
	s := NewSweep(-0.5, 0.5, 0.002)

	first := framesUntilWrap(t, s)
	// float32 accumulation drifts a little around the ideal 500
	assert.GreaterOrEqual(t, first, 499)
	assert.LessOrEqual(t, first, 502)
	assert.Equal(t, float32(-0.5), s.Value())

	second := framesUntilWrap(t, s)
	assert.Equal(t, first, second, "every period should have the same length")
}

func TestSweepIsMonotonicWithinPeriod(t *testing.T) {
	s := NewSweep(-0.5, 0.5, 0.002)
	prev := s.Value()
	for i := 0; i < 400; i++ {
		v := s.Advance()
		assert.Greater(t, v, prev)
		prev = v
	}
}

func TestSweepReset(t *testing.T) {
	s := NewSweep(0, 1, 0.25)
	s.Advance()
	s.Advance()
	assert.Equal(t, float32(0.5), s.Value())

	s.Reset()
	assert.Equal(t, float32(0), s.Value())
}

func TestSweepExactStepHitsUpperBound(t *testing.T) {
	// 0.25 is exact in float32, so the fourth step lands on 1.0 exactly
	s := NewSweep(0, 1, 0.25)
	got := []float32{s.Advance(), s.Advance(), s.Advance(), s.Advance()}
	assert.Equal(t, []float32{0.25, 0.5, 0.75, 0}, got)
}
