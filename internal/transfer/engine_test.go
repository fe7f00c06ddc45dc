package transfer

import (
	"fmt"
	"testing"

	"league_system/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fixedSource is a FloatSource that always yields the same fraction, making
// the valuation re-roll deterministic in tests.
type fixedSource struct {
	f float64
}

func (s fixedSource) Float64() float64 {
	return s.f
}

// setupTestDB opens a fresh in-memory database migrated with the league schema
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Team{}, &domain.Player{}, &domain.Transaction{}))
	return db
}

// createUser inserts a user and returns it
func createUser(t *testing.T, db *gorm.DB, email string) *domain.User {
	t.Helper()
	user := &domain.User{
		Email:     email,
		FirstName: "User fn",
		LastName:  "User ln",
		Password:  "not-a-real-hash",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// createTeam inserts a team for the given user with the default capital
func createTeam(t *testing.T, db *gorm.DB, user *domain.User, name string) *domain.Team {
	t.Helper()
	team := &domain.Team{
		UserID:  user.ID,
		Name:    name,
		Slogan:  "Test Slogan",
		Capital: domain.DefaultCapital,
	}
	require.NoError(t, db.Create(team).Error)
	return team
}

// createPlayer inserts a player on the given team with the default value
func createPlayer(t *testing.T, db *gorm.DB, team *domain.Team, name string) *domain.Player {
	t.Helper()
	player := &domain.Player{
		Name:     name,
		Position: domain.PositionGK,
		Value:    domain.DefaultPlayerValue,
		TeamID:   team.ID,
	}
	require.NoError(t, db.Create(player).Error)
	return player
}

// reloadTeam fetches the current persisted state of a team
func reloadTeam(t *testing.T, db *gorm.DB, id uint) *domain.Team {
	t.Helper()
	var team domain.Team
	require.NoError(t, db.First(&team, id).Error)
	return &team
}

// reloadPlayer fetches the current persisted state of a player
func reloadPlayer(t *testing.T, db *gorm.DB, id uint) *domain.Player {
	t.Helper()
	var player domain.Player
	require.NoError(t, db.First(&player, id).Error)
	return &player
}

// countTransactions counts persisted transfer records
func countTransactions(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&domain.Transaction{}).Count(&count).Error)
	return count
}

// listPlayerAt marks a player for sale at the given price directly in the store
func listPlayerAt(t *testing.T, db *gorm.DB, player *domain.Player, price int64) decimal.Decimal {
	t.Helper()
	asking := decimal.NewFromInt(price)
	require.NoError(t, db.Model(player).Updates(map[string]any{
		"for_sale":   true,
		"sale_price": asking,
	}).Error)
	return asking
}
