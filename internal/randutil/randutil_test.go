package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeterministicSameSeedReproducesSequence(t *testing.T) {
	a := NewDeterministic(42)
	b := NewDeterministic(42)

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Uniform(52), b.Uniform(52))
	}
}

func TestDeterministicDifferentSeedsDiverge(t *testing.T) {
	a := NewDeterministic(1)
	b := NewDeterministic(2)

	diverged := false
	for i := 0; i < 20; i++ {
		if a.Uniform(1_000_000) != b.Uniform(1_000_000) {
			diverged = true
			break
		}
	}
	assert.True(t, diverged, "two different seeds produced an identical sequence")
}

func TestDeterministicUniformStaysInBounds(t *testing.T) {
	d := NewDeterministic(7)
	for i := 0; i < 500; i++ {
		v := d.Uniform(52)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 52)
	}
}

func TestStrongUniformStaysInBounds(t *testing.T) {
	var s Strong
	for i := 0; i < 500; i++ {
		v := s.Uniform(52)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 52)
	}
}
