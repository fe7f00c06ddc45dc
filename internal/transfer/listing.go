package transfer

import (
	"context"                       // Request-scoped cancellation
	"league_system/internal/domain" // Domain models

	"github.com/shopspring/decimal" // Fixed-point decimal for the asking price
)

// SetForSale lists a player on the transfer market at the given asking price.
// Only the owning team's user may list; re-listing simply overwrites the
// price.
func (e *Engine) SetForSale(ctx context.Context, userID, playerID uint, price decimal.Decimal) (*domain.Player, error) {
	// Asking price must be a positive amount
	if !price.IsPositive() {
		return nil, invalid("Price must be a positive amount.")
	}
	db := e.db.WithContext(ctx)
	player, err := playerByID(db, playerID)
	if err != nil {
		return nil, internal("Something went wrong")
	}
	if player == nil {
		return nil, notFound("Player not found")
	}
	// Ownership check: the actor must own the player's team
	team, err := teamByID(db, player.TeamID)
	if err != nil {
		return nil, internal("Something went wrong")
	}
	if team == nil || team.UserID != userID {
		return nil, forbidden("You can only list players of your own team.")
	}
	price = price.Round(2)
	player.ForSale = true
	player.SalePrice = &price
	if err := db.Model(player).Updates(map[string]any{
		"for_sale":   true,
		"sale_price": price,
	}).Error; err != nil {
		return nil, internal("Something went wrong")
	}
	return player, nil
}

// RemoveFromSale delists a player. Clearing an already-unlisted player is a
// no-op, not an error.
func (e *Engine) RemoveFromSale(ctx context.Context, userID, playerID uint) (*domain.Player, error) {
	db := e.db.WithContext(ctx)
	player, err := playerByID(db, playerID)
	if err != nil {
		return nil, internal("Something went wrong")
	}
	if player == nil {
		return nil, notFound("Player not found")
	}
	// Same ownership check as listing
	team, err := teamByID(db, player.TeamID)
	if err != nil {
		return nil, internal("Something went wrong")
	}
	if team == nil || team.UserID != userID {
		return nil, forbidden("You can only delist players of your own team.")
	}
	player.ForSale = false
	player.SalePrice = nil
	if err := db.Model(player).Updates(map[string]any{
		"for_sale":   false,
		"sale_price": nil,
	}).Error; err != nil {
		return nil, internal("Something went wrong")
	}
	return player, nil
}

// ListForSale returns every listed player, most recently updated first. The
// market view is public, so no actor is required.
func (e *Engine) ListForSale(ctx context.Context) ([]domain.Player, error) {
	var players []domain.Player
	err := e.db.WithContext(ctx).
		Where("for_sale = ?", true).
		Order("updated_at desc").
		Find(&players).Error
	if err != nil {
		return nil, internal("Something went wrong")
	}
	return players, nil
}
