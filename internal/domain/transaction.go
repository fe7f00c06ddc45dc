package domain

import (
	"errors"
	"time" // Timestamps

	"github.com/shopspring/decimal" // Fixed-point decimal for the transfer amount
	"gorm.io/gorm"                  // GORM ORM library, needed for the delete hook
)

// ErrTransactionImmutable is returned when deleting a completed transfer record.
var ErrTransactionImmutable = errors.New("completed transfers cannot be deleted")

// Transaction Model. A row is only ever written as the terminal artifact of a
// successful transfer; Inactive means the record is closed and immutable.
type Transaction struct {
	ID             uint            `gorm:"primaryKey" json:"id"`                               // Primary key
	PlayerID       uint            `gorm:"not null;index" json:"player_id"`                    // Foreign key to the traded Player
	SellerTeamID   uint            `gorm:"not null;index" json:"seller_team_id"`               // Team that sold the player
	BuyerTeamID    *uint           `gorm:"index" json:"buyer_team_id"`                         // Team that bought the player, null until completed
	TransferAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"transfer_amount"` // Amount of capital moved
	Inactive       bool            `gorm:"not null;default:false" json:"inactive"`             // Completed/immutable flag
	CreatedAt      time.Time       `json:"created_at"`                                         // Timestamp of creation
}

// BeforeDelete blocks deletion of completed transfer records
func (t *Transaction) BeforeDelete(tx *gorm.DB) error {
	if t.Inactive {
		return ErrTransactionImmutable // Audit rows outlive the trade
	}
	return nil
}
