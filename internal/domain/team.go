package domain

import (
	"time" // Timestamps

	"github.com/shopspring/decimal" // Fixed-point decimal for capital
)

// DefaultCapital is the starting capital every new team receives.
var DefaultCapital = decimal.NewFromInt(5000000)

// Team Model
type Team struct {
	ID        uint            `gorm:"primaryKey" json:"id"`                      // Primary key
	UserID    uint            `gorm:"uniqueIndex;not null" json:"-"`             // Foreign key to User, one team per user
	Name      string          `gorm:"not null;size:100" json:"name"`             // Team name
	Slogan    string          `gorm:"size:255" json:"slogan"`                    // Team slogan
	Capital   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"capital"` // Team capital, 2 fractional digits
	CreatedAt time.Time       `json:"created_at"`                                // Timestamp of creation
	UpdatedAt time.Time       `json:"updated_at"`                                // Timestamp of last update
	Players   []Player        `gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE;" json:"-"` // Roster, deleted with the team
}

// TotalValue sums the value of every player on the roster
func (t *Team) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, p := range t.Players {
		total = total.Add(p.Value)
	}
	return total
}
