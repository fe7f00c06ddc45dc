package transfer

import (
	"league_system/internal/domain" // Domain models

	"github.com/shopspring/decimal" // Fixed-point decimal comparison
	"gorm.io/gorm"                  // GORM ORM library
)

// Trade is the bundle a successful validation hands to the executor. When the
// validation ran inside a transaction the player and both team rows are held
// under row locks.
type Trade struct {
	Player     *domain.Player  // The listed player
	BuyerTeam  *domain.Team    // Team of the buying user
	SellerTeam *domain.Team    // Current owner of the player
	Price      decimal.Decimal // Agreed transfer amount
}

// Validator evaluates the buy preconditions in strict order, short-circuiting
// on the first failure. It reads current persisted state and performs no
// writes.
type Validator struct{}

// Validate gates a buy request. The checks and their codes, in order:
// buyer has a team (1500), player exists (404), player is listed (1501),
// offer matches the asking price exactly (1502), buyer is not the seller
// (1503), buyer can afford the price (1504).
func (Validator) Validate(db *gorm.DB, buyerUserID, playerID uint, offered decimal.Decimal) (*Trade, error) {
	buyerTeam, err := teamForUser(db, buyerUserID)
	if err != nil {
		return nil, internal("Something went wrong")
	}
	if buyerTeam == nil {
		return nil, conflict(CodeNoTeam, "You don't have team.")
	}
	// Player row is read under lock when db is a transaction handle
	player, err := lockPlayerByID(db, playerID)
	if err != nil {
		return nil, internal("Something went wrong")
	}
	if player == nil {
		return nil, notFound("Player not found.")
	}
	if !player.ForSale || player.SalePrice == nil {
		return nil, conflict(CodeNotListed, "Player is not listed for sale.")
	}
	// Exact decimal equality, offering more is rejected too
	if !offered.Equal(*player.SalePrice) {
		return nil, conflict(CodePriceMismatch, "Offered price does not match the sale price.")
	}
	if player.TeamID == buyerTeam.ID {
		return nil, conflict(CodeSelfTrade, "You cannot buy a player of your own team.")
	}
	// Lock both team rows and re-read the buyer's capital post-lock
	teams, err := lockTeamsByID(db, buyerTeam.ID, player.TeamID)
	if err != nil {
		return nil, internal("Something went wrong")
	}
	if teams == nil {
		return nil, notFound("Team not found")
	}
	buyerTeam = teams[buyerTeam.ID]
	sellerTeam := teams[player.TeamID]
	if buyerTeam.Capital.LessThan(offered) {
		return nil, conflict(CodeInsufficientCapital, "Insufficient capital to buy this player.")
	}
	return &Trade{
		Player:     player,
		BuyerTeam:  buyerTeam,
		SellerTeam: sellerTeam,
		Price:      offered,
	}, nil
}
