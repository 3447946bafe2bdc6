package safemath_test

import (
	"math"
	"testing"

	"github.com/coinsurf-com/invite/pkg"
	"github.com/coinsurf-com/invite/pkg/safemath"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeMath(t *testing.T) {
	t.Run("Addition that fits succeeds", func(t *testing.T) {
		v, err := safemath.Add(math.MaxUint64-1, 1)
		require.NoError(t, err)
		assert.Equal(t, uint64(math.MaxUint64), v)
	})

	t.Run("Addition that wraps fails", func(t *testing.T) {
		_, err := safemath.Inc(math.MaxUint64)
		require.Error(t, err)
		assert.True(t, errors.Is(err, pkg.ErrOverflow))
	})

	t.Run("Multiplication that wraps fails", func(t *testing.T) {
		_, err := safemath.Mul(math.MaxUint64/2+1, 2)
		assert.True(t, errors.Is(err, pkg.ErrOverflow))

		v, err := safemath.Mul(1<<32, 1<<31)
		require.NoError(t, err)
		assert.Equal(t, uint64(1<<63), v)
	})

	t.Run("Min picks the smaller operand", func(t *testing.T) {
		assert.Equal(t, uint64(3), safemath.Min(3, 7))
		assert.Equal(t, uint64(3), safemath.Min(7, 3))
	})
}
