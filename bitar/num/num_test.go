//go:build unit

package num

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 30.0, Clamp(31, 0, 30))
	assert.Equal(t, 15.0, Clamp(14, 15, 30))
	assert.Equal(t, 20.0, Clamp(20, 15, 30))
}

func TestMapRange(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.5, MapRange(5, 0, 10, 0, 1))
	assert.Equal(t, 50.0, MapRange(0.5, 0, 1, 0, 100))
	assert.Equal(t, 1.0, MapRange(20, 0, 10, 0, 1))
	assert.Equal(t, 0.0, MapRange(-5, 0, 10, 0, 1))
}

func TestInRange(t *testing.T) {
	t.Parallel()

	hundred := 100.0

	assert.True(t, InRange(10, 0, &hundred))
	assert.False(t, InRange(10, 50, &hundred))
	assert.True(t, InRange(10, 0, nil))
	assert.True(t, InRange(100, 0, &hundred))
	assert.False(t, InRange(-1, 0, nil))
}

func TestRandom(t *testing.T) {
	t.Parallel()

	for range 200 {
		v := Random(0, 10)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 10.0)
		assert.Zero(t, math.Mod(v, 1))
	}

	for range 200 {
		v := Random(0, 1, RoundNone)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}
