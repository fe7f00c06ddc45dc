package transfer

import (
	"context"                       // Request abort cancels the transaction scope
	"league_system/internal/domain" // Domain models

	"github.com/shopspring/decimal" // Fixed-point decimal arithmetic
	"github.com/sirupsen/logrus"    // Logging library
	"gorm.io/gorm"                  // GORM ORM library
)

// Buy executes a transfer as a single atomic unit: capital debit/credit,
// ownership reassignment, listing clear, valuation re-roll and the audit
// record. Validation runs inside the transaction against row-locked state, so
// of two concurrent buys on the same listing only the first can succeed; the
// second re-validates after the lock clears and fails with NOT_LISTED.
func (e *Engine) Buy(ctx context.Context, buyerUserID, playerID uint, offered decimal.Decimal) (*domain.Transaction, error) {
	if !offered.IsPositive() {
		return nil, invalid("Price must be a positive amount.")
	}
	offered = offered.Round(2)

	var record *domain.Transaction
	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		trade, err := e.validator.Validate(tx, buyerUserID, playerID, offered)
		if err != nil {
			return err // Typed failure, rolls back untouched state
		}

		// Move the capital, exact to 2 decimal places
		buyerCapital := trade.BuyerTeam.Capital.Sub(trade.Price)
		sellerCapital := trade.SellerTeam.Capital.Add(trade.Price)
		if err := tx.Model(trade.BuyerTeam).Update("capital", buyerCapital).Error; err != nil {
			return internal("Something went wrong")
		}
		if err := tx.Model(trade.SellerTeam).Update("capital", sellerCapital).Error; err != nil {
			return internal("Something went wrong")
		}

		// Hand the player over, clear the listing and re-roll his value
		newValue := e.roller.Reroll(trade.Player.Value)
		if err := tx.Model(trade.Player).Updates(map[string]any{
			"team_id":    trade.BuyerTeam.ID,
			"for_sale":   false,
			"sale_price": nil,
			"value":      newValue,
		}).Error; err != nil {
			return internal("Something went wrong")
		}

		// The audit row is the terminal artifact of the trade
		buyerID := trade.BuyerTeam.ID
		record = &domain.Transaction{
			PlayerID:       trade.Player.ID,
			SellerTeamID:   trade.SellerTeam.ID,
			BuyerTeamID:    &buyerID,
			TransferAmount: trade.Price,
			Inactive:       true,
		}
		if err := tx.Create(record).Error; err != nil {
			return internal("Something went wrong")
		}
		return nil
	})
	if err != nil {
		// Log the rejected or failed trade with context
		logrus.WithFields(logrus.Fields{
			"buyer_user_id": buyerUserID,
			"player_id":     playerID,
			"price":         offered.String(),
			"error":         err.Error(),
		}).Warn("Transfer rejected")
		if engineErr, ok := AsError(err); ok {
			return nil, engineErr
		}
		return nil, internal("Something went wrong")
	}
	// Log the completed trade
	logrus.WithFields(logrus.Fields{
		"transaction_id": record.ID,
		"player_id":      record.PlayerID,
		"seller_team_id": record.SellerTeamID,
		"buyer_team_id":  *record.BuyerTeamID,
		"amount":         record.TransferAmount.String(),
	}).Info("Transfer completed")
	return record, nil
}
