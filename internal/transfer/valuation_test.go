package transfer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReroll(t *testing.T) {
	base := decimal.NewFromInt(1000000)

	t.Run("lowest draw appreciates by one percent", func(t *testing.T) {
		roller := NewRoller(fixedSource{f: 0})
		assert.True(t, roller.Reroll(base).Equal(decimal.NewFromInt(1010000)))
	})

	t.Run("midpoint draw is deterministic", func(t *testing.T) {
		roller := NewRoller(fixedSource{f: 0.5})
		assert.True(t, roller.Reroll(base).Equal(decimal.NewFromInt(1055000)))
	})

	t.Run("highest draw approaches ten percent", func(t *testing.T) {
		roller := NewRoller(fixedSource{f: 0.999999})
		result := roller.Reroll(base)
		assert.True(t, result.LessThanOrEqual(decimal.NewFromInt(1100000)), "value was %s", result)
		assert.True(t, result.GreaterThan(decimal.NewFromInt(1099000)), "value was %s", result)
	})

	t.Run("result is rounded to two decimal places", func(t *testing.T) {
		roller := NewRoller(fixedSource{f: 0.5})
		// 333.33 * 1.055 = 351.66315, rounds to 351.66
		result := roller.Reroll(decimal.RequireFromString("333.33"))
		assert.True(t, result.Equal(decimal.RequireFromString("351.66")), "value was %s", result)
	})

	t.Run("default source stays within bounds and never shrinks a value", func(t *testing.T) {
		roller := NewRoller(nil)
		lower := base.Mul(decimal.RequireFromString("1.01"))
		upper := base.Mul(decimal.RequireFromString("1.10"))
		for i := 0; i < 1000; i++ {
			result := roller.Reroll(base)
			require.True(t, result.GreaterThanOrEqual(lower), "value was %s", result)
			require.True(t, result.LessThanOrEqual(upper), "value was %s", result)
		}
	})
}
