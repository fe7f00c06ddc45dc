package domain_test

import (
	"fmt"
	"testing"

	"league_system/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

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

func TestTransactionImmutability(t *testing.T) {
	t.Run("completed records cannot be deleted", func(t *testing.T) {
		db := setupTestDB(t)
		buyerID := uint(2)
		record := domain.Transaction{
			PlayerID:       1,
			SellerTeamID:   1,
			BuyerTeamID:    &buyerID,
			TransferAmount: decimal.NewFromInt(500000),
			Inactive:       true,
		}
		require.NoError(t, db.Create(&record).Error)

		err := db.Delete(&record).Error
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrTransactionImmutable)

		// The audit row survives
		var count int64
		require.NoError(t, db.Model(&domain.Transaction{}).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})

	t.Run("open offers can still be removed", func(t *testing.T) {
		db := setupTestDB(t)
		record := domain.Transaction{
			PlayerID:       1,
			SellerTeamID:   1,
			TransferAmount: decimal.NewFromInt(500000),
			Inactive:       false,
		}
		require.NoError(t, db.Create(&record).Error)
		require.NoError(t, db.Delete(&record).Error)

		var count int64
		require.NoError(t, db.Model(&domain.Transaction{}).Count(&count).Error)
		assert.EqualValues(t, 0, count)
	})
}

func TestTeamTotalValue(t *testing.T) {
	team := domain.Team{
		Players: []domain.Player{
			{Value: decimal.RequireFromString("1000000.00")},
			{Value: decimal.RequireFromString("1055000.50")},
		},
	}
	assert.True(t, team.TotalValue().Equal(decimal.RequireFromString("2055000.50")))
}

func TestPositionValid(t *testing.T) {
	assert.True(t, domain.PositionGK.Valid())
	assert.True(t, domain.PositionDEF.Valid())
	assert.True(t, domain.PositionMID.Valid())
	assert.True(t, domain.PositionATT.Valid())
	assert.False(t, domain.Position("XX").Valid())
}
