package transfer

import (
	"context"                       // Request-scoped cancellation
	"league_system/internal/domain" // Domain models
)

// Role of a team in a past trade
const (
	RoleSeller = "Seller"
	RoleBuyer  = "Buyer"
)

// TransactionView is a transaction joined with the names of the parties.
// Audit rows reference players and teams by id only, so the reader resolves
// them explicitly.
type TransactionView struct {
	domain.Transaction
	PlayerName string       `json:"player_name"` // Name of the traded player
	SellerTeam *domain.Team `json:"seller_team"` // Selling party
	BuyerTeam  *domain.Team `json:"buyer_team"`  // Buying party, nil for open offers
}

// TeamTransactionView is a transaction seen from one team's side.
type TeamTransactionView struct {
	domain.Transaction
	PlayerName   string       `json:"player_name"`   // Name of the traded player
	MyTeamRole   string       `json:"my_team_role"`  // "Seller" or "Buyer"
	OppositeTeam *domain.Team `json:"opposite_team"` // The other party
}

// ListTransactions returns every past transaction, newest first.
func (e *Engine) ListTransactions(ctx context.Context) ([]TransactionView, error) {
	db := e.db.WithContext(ctx)
	var transactions []domain.Transaction
	if err := db.Order("created_at desc, id desc").Find(&transactions).Error; err != nil {
		return nil, internal("Something went wrong")
	}
	views := make([]TransactionView, 0, len(transactions))
	for _, t := range transactions {
		view := TransactionView{Transaction: t}
		if player, err := playerByID(db, t.PlayerID); err == nil && player != nil {
			view.PlayerName = player.Name
		}
		if seller, err := teamByID(db, t.SellerTeamID); err == nil {
			view.SellerTeam = seller
		}
		if t.BuyerTeamID != nil {
			if buyer, err := teamByID(db, *t.BuyerTeamID); err == nil {
				view.BuyerTeam = buyer
			}
		}
		views = append(views, view)
	}
	return views, nil
}

// GetTransaction returns a single transaction by id.
func (e *Engine) GetTransaction(ctx context.Context, id uint) (*TransactionView, error) {
	db := e.db.WithContext(ctx)
	var transaction domain.Transaction
	if err := db.First(&transaction, id).Error; err != nil {
		return nil, notFound("Transaction not found")
	}
	view := TransactionView{Transaction: transaction}
	if player, err := playerByID(db, transaction.PlayerID); err == nil && player != nil {
		view.PlayerName = player.Name
	}
	if seller, err := teamByID(db, transaction.SellerTeamID); err == nil {
		view.SellerTeam = seller
	}
	if transaction.BuyerTeamID != nil {
		if buyer, err := teamByID(db, *transaction.BuyerTeamID); err == nil {
			view.BuyerTeam = buyer
		}
	}
	return &view, nil
}

// TeamTransactions returns the caller's trades, newest first, with the
// caller's role and the opposite party derived per row. A caller without a
// team gets an empty result and hasTeam=false; that is informational, not an
// error.
func (e *Engine) TeamTransactions(ctx context.Context, userID uint) ([]TeamTransactionView, bool, error) {
	db := e.db.WithContext(ctx)
	team, err := teamForUser(db, userID)
	if err != nil {
		return nil, false, internal("Something went wrong")
	}
	if team == nil {
		return nil, false, nil // No team yet, nothing to show
	}
	var transactions []domain.Transaction
	err = db.Where("seller_team_id = ? OR buyer_team_id = ?", team.ID, team.ID).
		Order("created_at desc, id desc").
		Find(&transactions).Error
	if err != nil {
		return nil, true, internal("Something went wrong")
	}
	views := make([]TeamTransactionView, 0, len(transactions))
	for _, t := range transactions {
		view := TeamTransactionView{Transaction: t, MyTeamRole: RoleBuyer}
		oppositeID := t.SellerTeamID
		if t.SellerTeamID == team.ID {
			view.MyTeamRole = RoleSeller
			if t.BuyerTeamID != nil {
				oppositeID = *t.BuyerTeamID
			} else {
				oppositeID = 0 // Open offer, no opposite party yet
			}
		}
		if player, err := playerByID(db, t.PlayerID); err == nil && player != nil {
			view.PlayerName = player.Name
		}
		if oppositeID != 0 {
			if opposite, err := teamByID(db, oppositeID); err == nil {
				view.OppositeTeam = opposite
			}
		}
		views = append(views, view)
	}
	return views, true, nil
}
