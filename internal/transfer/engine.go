package transfer

import (
	"gorm.io/gorm" // GORM ORM library
)

// Engine is the transfer market core: listing management, buy validation,
// atomic trade execution and transaction history. It holds no per-request
// state; the backing store is the only thing shared between callers.
type Engine struct {
	db        *gorm.DB   // Backing store
	validator *Validator // Precondition checks for buys
	roller    *Roller    // Post-trade valuation draw
}

// NewEngine builds an engine on db. Pass a nil roller to use the default
// time-seeded random source.
func NewEngine(db *gorm.DB, roller *Roller) *Engine {
	if roller == nil {
		roller = NewRoller(nil)
	}
	return &Engine{
		db:        db,
		validator: &Validator{},
		roller:    roller,
	}
}
