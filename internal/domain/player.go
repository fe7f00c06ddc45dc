package domain

import (
	"time" // Timestamps

	"github.com/shopspring/decimal" // Fixed-point decimal for player value
)

// Position is a player's position on the field
type Position string

// Valid positions
const (
	PositionGK  Position = "GK"  // Goalkeeper
	PositionDEF Position = "DEF" // Defender
	PositionMID Position = "MID" // Midfielder
	PositionATT Position = "ATT" // Attacker
)

// PositionNames maps position codes to display names
var PositionNames = map[Position]string{
	PositionGK:  "Goalkeeper",
	PositionDEF: "Defender",
	PositionMID: "Midfielder",
	PositionATT: "Attacker",
}

// Valid reports whether p is one of the four known positions
func (p Position) Valid() bool {
	_, ok := PositionNames[p]
	return ok
}

// DefaultPlayerValue is the market value every new player starts with.
var DefaultPlayerValue = decimal.NewFromInt(1000000)

// MaxRosterSize is the maximum number of players a team may hold.
const MaxRosterSize = 20

// Player Model
type Player struct {
	ID        uint             `gorm:"primaryKey" json:"id"`                     // Primary key
	Name      string           `gorm:"not null;size:100" json:"name"`            // Player name
	Position  Position         `gorm:"not null;size:3" json:"position"`          // Position: GK, DEF, MID or ATT
	Value     decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"value"` // Market value, re-rolled on transfer
	TeamID    uint             `gorm:"not null;index" json:"team_id"`            // Foreign key to the owning Team
	ForSale   bool             `gorm:"not null;default:false" json:"for_sale"`   // Listed on the transfer market
	SalePrice *decimal.Decimal `gorm:"type:decimal(10,2)" json:"sale_price"`     // Asking price, null unless for sale
	CreatedAt time.Time        `json:"created_at"`                               // Timestamp of creation
	UpdatedAt time.Time        `json:"updated_at"`                               // Timestamp of last update
}

// DisplayPosition returns the human-readable position name
func (p *Player) DisplayPosition() string {
	return PositionNames[p.Position]
}
