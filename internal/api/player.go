package api

import (
	"league_system/internal/domain" // Importing domain models
	"net/http"                      // HTTP status codes
	"strconv"                       // String conversion

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/shopspring/decimal" // Fixed-point decimal for payloads
	"gorm.io/gorm"                  // GORM ORM library
)

// PlayerRequest represents a create/update player request
type PlayerRequest struct {
	Name     string `json:"name" binding:"required"`     // Player name must be provided
	Position string `json:"position" binding:"required"` // Position must be provided
}

// PlayerResponse is the serialized player payload
type PlayerResponse struct {
	ID              uint             `json:"id"`               // Player ID
	Name            string           `json:"name"`             // Player name
	Position        domain.Position  `json:"position"`         // Position code
	DisplayPosition string           `json:"display_position"` // Human-readable position
	Value           decimal.Decimal  `json:"value"`            // Market value
	TeamID          uint             `json:"team_id"`          // Owning team
	ForSale         bool             `json:"for_sale"`         // Listed on the market
	SalePrice       *decimal.Decimal `json:"sale_price"`       // Asking price, null unless listed
}

// serializePlayer builds the player payload
func serializePlayer(player *domain.Player) PlayerResponse {
	return PlayerResponse{
		ID:              player.ID,
		Name:            player.Name,
		Position:        player.Position,
		DisplayPosition: player.DisplayPosition(),
		Value:           player.Value,
		TeamID:          player.TeamID,
		ForSale:         player.ForSale,
		SalePrice:       player.SalePrice,
	}
}

// CreatePlayerHandler adds a player to the caller's roster
func CreatePlayerHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, authed := currentUserID(c) // Get userID from context
		if !authed {
			return
		}
		var req PlayerRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			fail(c, "Bad Request", http.StatusBadRequest, 0)
			return
		}
		position := domain.Position(req.Position) // Validate the position code
		if !position.Valid() {
			fail(c, "Position must be one of GK, DEF, MID, ATT", http.StatusBadRequest, 0)
			return
		}
		var team domain.Team // The caller must own a team to roster players
		if err := db.Where("user_id = ?", userID).First(&team).Error; err != nil {
			fail(c, "You don't have team.", http.StatusNotFound, 0)
			return
		}
		// A roster holds at most MaxRosterSize players
		var rosterSize int64
		if err := db.Model(&domain.Player{}).Where("team_id = ?", team.ID).Count(&rosterSize).Error; err != nil {
			fail(c, "Something went wrong", http.StatusInternalServerError, 0)
			return
		}
		if rosterSize >= domain.MaxRosterSize {
			fail(c, "Your roster is full.", http.StatusBadRequest, 0)
			return
		}
		// Every player starts at the default market value
		player := domain.Player{
			Name:     req.Name,
			Position: position,
			Value:    domain.DefaultPlayerValue,
			TeamID:   team.ID,
		}
		if err := db.Create(&player).Error; err != nil {
			fail(c, "Something went wrong", http.StatusInternalServerError, 0)
			return
		}
		created(c, "Player is created successfully.", serializePlayer(&player))
	}
}

// ListPlayersHandler returns all players, newest first
func ListPlayersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var players []domain.Player // All players
		if err := db.Order("created_at desc").Find(&players).Error; err != nil {
			fail(c, "Something went wrong", http.StatusInternalServerError, 0)
			return
		}
		payload := make([]PlayerResponse, 0, len(players)) // Serialized payload
		for i := range players {
			payload = append(payload, serializePlayer(&players[i]))
		}
		ok(c, "success", payload)
	}
}

// GetPlayerHandler returns a single player by id
func GetPlayerHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id")) // Parse player id from the path
		if err != nil {
			fail(c, "Bad Request", http.StatusBadRequest, 0)
			return
		}
		var player domain.Player // Fetch player from database
		if err := db.First(&player, id).Error; err != nil {
			fail(c, "Player not found", http.StatusNotFound, 0)
			return
		}
		ok(c, "success", serializePlayer(&player))
	}
}

// UpdatePlayerHandler renames or repositions a player on the caller's roster
func UpdatePlayerHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, authed := currentUserID(c) // Get userID from context
		if !authed {
			return
		}
		id, err := strconv.Atoi(c.Param("id")) // Parse player id from the path
		if err != nil {
			fail(c, "Bad Request", http.StatusBadRequest, 0)
			return
		}
		var player domain.Player // Fetch player from database
		if err := db.First(&player, id).Error; err != nil {
			fail(c, "Player not found", http.StatusNotFound, 0)
			return
		}
		// Only the owning team's user may update the player
		var team domain.Team
		if err := db.First(&team, player.TeamID).Error; err != nil || team.UserID != userID {
			fail(c, "Permission Error", http.StatusForbidden, 0)
			return
		}
		var req PlayerRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, "Bad Request", http.StatusBadRequest, 0)
			return
		}
		position := domain.Position(req.Position) // Validate the position code
		if !position.Valid() {
			fail(c, "Position must be one of GK, DEF, MID, ATT", http.StatusBadRequest, 0)
			return
		}
		// Name and position are the only writable fields; value is engine-owned
		if err := db.Model(&player).Updates(map[string]any{"name": req.Name, "position": position}).Error; err != nil {
			fail(c, "Something went wrong", http.StatusInternalServerError, 0)
			return
		}
		ok(c, "Player is updated successfully.", serializePlayer(&player))
	}
}
