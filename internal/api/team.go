package api

import (
	"league_system/internal/domain" // Importing domain models
	"net/http"                      // HTTP status codes
	"strconv"                       // String conversion
	"time"                          // Timestamps

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/shopspring/decimal" // Fixed-point decimal for payloads
	"gorm.io/gorm"                  // GORM ORM library
)

// TeamRequest represents a create/update team request
type TeamRequest struct {
	Name   string `json:"name" binding:"required"` // Team name must be provided
	Slogan string `json:"slogan"`                  // Slogan is optional
}

// TeamResponse is the serialized team payload
type TeamResponse struct {
	ID         uint            `json:"id"`          // Team ID
	Owner      gin.H           `json:"owner"`       // Owning user's public fields
	Name       string          `json:"name"`        // Team name
	Slogan     string          `json:"slogan"`      // Team slogan
	Capital    decimal.Decimal `json:"capital"`     // Team capital
	TotalValue decimal.Decimal `json:"total_value"` // Sum of roster values
	CreatedAt  time.Time       `json:"created_at"`  // Timestamp of creation
	UpdatedAt  time.Time       `json:"updated_at"`  // Timestamp of last update
}

// serializeTeam loads the owner and roster and builds the team payload
func serializeTeam(db *gorm.DB, team *domain.Team) TeamResponse {
	var owner domain.User // Owning user for the payload
	_ = db.First(&owner, team.UserID).Error
	var players []domain.Player // Roster for the total value
	_ = db.Where("team_id = ?", team.ID).Find(&players).Error
	team.Players = players
	return TeamResponse{
		ID: team.ID,
		Owner: gin.H{
			"id":         owner.ID,
			"first_name": owner.FirstName,
			"last_name":  owner.LastName,
			"email":      owner.Email,
		},
		Name:       team.Name,
		Slogan:     team.Slogan,
		Capital:    team.Capital,
		TotalValue: team.TotalValue(),
		CreatedAt:  team.CreatedAt,
		UpdatedAt:  team.UpdatedAt,
	}
}

// CreateTeamHandler registers the authenticated user's team
func CreateTeamHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, authed := currentUserID(c) // Get userID from context
		if !authed {
			return
		}
		var req TeamRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			fail(c, "Bad Request", http.StatusBadRequest, 0)
			return
		}
		// Every team starts with the default capital
		team := domain.Team{
			UserID:  userID,
			Name:    req.Name,
			Slogan:  req.Slogan,
			Capital: domain.DefaultCapital,
		}
		// Attempt to create the team; the unique index enforces one per user
		if err := db.Create(&team).Error; err != nil {
			fail(c, "You have already registered a team.", http.StatusBadRequest, 0)
			return
		}
		created(c, "Team is created successfully.", serializeTeam(db, &team))
	}
}

// ListTeamsHandler returns all teams, newest first
func ListTeamsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var teams []domain.Team // All teams
		if err := db.Order("created_at desc").Find(&teams).Error; err != nil {
			fail(c, "Something went wrong", http.StatusInternalServerError, 0)
			return
		}
		payload := make([]TeamResponse, 0, len(teams)) // Serialized payload
		for i := range teams {
			payload = append(payload, serializeTeam(db, &teams[i]))
		}
		ok(c, "success", payload)
	}
}

// GetTeamHandler returns a single team by id
func GetTeamHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id")) // Parse team id from the path
		if err != nil {
			fail(c, "Bad Request", http.StatusBadRequest, 0)
			return
		}
		var team domain.Team // Fetch team from database
		if err := db.First(&team, id).Error; err != nil {
			fail(c, "Team not found", http.StatusNotFound, 0)
			return
		}
		ok(c, "success", serializeTeam(db, &team))
	}
}

// UpdateTeamHandler updates the caller's own team
func UpdateTeamHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, authed := currentUserID(c) // Get userID from context
		if !authed {
			return
		}
		id, err := strconv.Atoi(c.Param("id")) // Parse team id from the path
		if err != nil {
			fail(c, "Bad Request", http.StatusBadRequest, 0)
			return
		}
		var team domain.Team // Fetch team from database
		if err := db.First(&team, id).Error; err != nil {
			fail(c, "Team not found", http.StatusNotFound, 0)
			return
		}
		// Only the owner may update the team
		if team.UserID != userID {
			fail(c, "Permission Error", http.StatusForbidden, 0)
			return
		}
		var req TeamRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, "Bad Request", http.StatusBadRequest, 0)
			return
		}
		// Name and slogan are the only writable fields; capital is engine-owned
		team.Name = req.Name
		team.Slogan = req.Slogan
		if err := db.Model(&team).Updates(map[string]any{"name": req.Name, "slogan": req.Slogan}).Error; err != nil {
			fail(c, "Something went wrong", http.StatusInternalServerError, 0)
			return
		}
		ok(c, "Team is updated successfully.", serializeTeam(db, &team))
	}
}

// DeleteTeamHandler deletes the caller's own team and, by cascade, its roster
func DeleteTeamHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, authed := currentUserID(c) // Get userID from context
		if !authed {
			return
		}
		id, err := strconv.Atoi(c.Param("id")) // Parse team id from the path
		if err != nil {
			fail(c, "Bad Request", http.StatusBadRequest, 0)
			return
		}
		var team domain.Team // Fetch team from database
		if err := db.First(&team, id).Error; err != nil {
			fail(c, "Team not found", http.StatusNotFound, 0)
			return
		}
		// Only the owner may delete the team
		if team.UserID != userID {
			fail(c, "Permission Error", http.StatusForbidden, 0)
			return
		}
		// Players go with the team; transactions are audit rows and stay
		if err := db.Where("team_id = ?", team.ID).Delete(&domain.Player{}).Error; err != nil {
			fail(c, "Something went wrong", http.StatusInternalServerError, 0)
			return
		}
		if err := db.Delete(&team).Error; err != nil {
			fail(c, "Something went wrong", http.StatusInternalServerError, 0)
			return
		}
		respond(c, true, "Team deleted successfully", http.StatusNoContent, 0, nil, nil)
	}
}

// MyTeamHandler returns the authenticated user's team
func MyTeamHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, authed := currentUserID(c) // Get userID from context
		if !authed {
			return
		}
		var team domain.Team // Fetch team owned by the caller
		if err := db.Where("user_id = ?", userID).First(&team).Error; err != nil {
			fail(c, "You don't have team.", http.StatusNotFound, 0)
			return
		}
		ok(c, "success", serializeTeam(db, &team))
	}
}
