package transfer

import (
	"math/rand" // Uniform random source for the valuation draw
	"time"      // Seed for the default source

	"github.com/shopspring/decimal" // Fixed-point decimal arithmetic
)

// Growth bounds for the post-trade valuation re-roll. A completed trade
// always appreciates the player by 1% to 10%.
const (
	minGrowth = 0.01
	maxGrowth = 0.10
)

// FloatSource yields uniform floats in [0, 1). *rand.Rand satisfies it; tests
// inject a fixed source to make trade-value growth deterministic.
type FloatSource interface {
	Float64() float64
}

// Roller draws the post-trade valuation for a player.
type Roller struct {
	src FloatSource // Random source, injectable
}

// NewRoller builds a roller around src, falling back to a time-seeded
// math/rand source when src is nil.
func NewRoller(src FloatSource) *Roller {
	if src == nil {
		src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Roller{src: src}
}

// Reroll returns the new value for a player after a completed trade:
// value * (1 + r) with r uniform in [0.01, 0.10], rounded to 2 places.
// The result is never below the old value.
func (r *Roller) Reroll(value decimal.Decimal) decimal.Decimal {
	growth := minGrowth + r.src.Float64()*(maxGrowth-minGrowth)
	return value.Mul(decimal.NewFromFloat(1 + growth)).Round(2)
}
