package transfer

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetForSale(t *testing.T) {
	ctx := context.Background()

	t.Run("lists a player at the asking price", func(t *testing.T) {
		db := setupTestDB(t)
		engine := NewEngine(db, nil)
		owner := createUser(t, db, "owner@example.com")
		team := createTeam(t, db, owner, "Test Team")
		player := createPlayer(t, db, team, "Player - 1")

		listed, err := engine.SetForSale(ctx, owner.ID, player.ID, decimal.NewFromInt(500000))
		require.NoError(t, err)
		assert.True(t, listed.ForSale)
		require.NotNil(t, listed.SalePrice)
		assert.True(t, listed.SalePrice.Equal(decimal.NewFromInt(500000)))

		stored := reloadPlayer(t, db, player.ID)
		assert.True(t, stored.ForSale)
		require.NotNil(t, stored.SalePrice)
		assert.True(t, stored.SalePrice.Equal(decimal.NewFromInt(500000)))
	})

	t.Run("relisting overwrites the price", func(t *testing.T) {
		db := setupTestDB(t)
		engine := NewEngine(db, nil)
		owner := createUser(t, db, "owner@example.com")
		team := createTeam(t, db, owner, "Test Team")
		player := createPlayer(t, db, team, "Player - 1")

		_, err := engine.SetForSale(ctx, owner.ID, player.ID, decimal.NewFromInt(500000))
		require.NoError(t, err)
		_, err = engine.SetForSale(ctx, owner.ID, player.ID, decimal.NewFromInt(750000))
		require.NoError(t, err)

		stored := reloadPlayer(t, db, player.ID)
		assert.True(t, stored.ForSale)
		assert.True(t, stored.SalePrice.Equal(decimal.NewFromInt(750000)))
	})

	t.Run("rejects a non-positive price", func(t *testing.T) {
		db := setupTestDB(t)
		engine := NewEngine(db, nil)
		owner := createUser(t, db, "owner@example.com")
		team := createTeam(t, db, owner, "Test Team")
		player := createPlayer(t, db, team, "Player - 1")

		_, err := engine.SetForSale(ctx, owner.ID, player.ID, decimal.Zero)
		engineErr, isEngine := AsError(err)
		require.True(t, isEngine)
		assert.Equal(t, KindValidation, engineErr.Kind)

		stored := reloadPlayer(t, db, player.ID)
		assert.False(t, stored.ForSale)
		assert.Nil(t, stored.SalePrice)
	})

	t.Run("unknown player is not found", func(t *testing.T) {
		db := setupTestDB(t)
		engine := NewEngine(db, nil)
		owner := createUser(t, db, "owner@example.com")
		createTeam(t, db, owner, "Test Team")

		_, err := engine.SetForSale(ctx, owner.ID, 101, decimal.NewFromInt(500000))
		engineErr, isEngine := AsError(err)
		require.True(t, isEngine)
		assert.Equal(t, KindNotFound, engineErr.Kind)
	})

	t.Run("cannot list another team's player", func(t *testing.T) {
		db := setupTestDB(t)
		engine := NewEngine(db, nil)
		owner := createUser(t, db, "owner@example.com")
		team := createTeam(t, db, owner, "Test Team")
		player := createPlayer(t, db, team, "Player - 1")
		rival := createUser(t, db, "rival@example.com")
		createTeam(t, db, rival, "Rival Team")

		_, err := engine.SetForSale(ctx, rival.ID, player.ID, decimal.NewFromInt(500000))
		engineErr, isEngine := AsError(err)
		require.True(t, isEngine)
		assert.Equal(t, KindForbidden, engineErr.Kind)

		stored := reloadPlayer(t, db, player.ID)
		assert.False(t, stored.ForSale)
	})
}

func TestRemoveFromSale(t *testing.T) {
	ctx := context.Background()

	t.Run("delists a listed player", func(t *testing.T) {
		db := setupTestDB(t)
		engine := NewEngine(db, nil)
		owner := createUser(t, db, "owner@example.com")
		team := createTeam(t, db, owner, "Test Team")
		player := createPlayer(t, db, team, "Player - 1")
		listPlayerAt(t, db, player, 50000)

		delisted, err := engine.RemoveFromSale(ctx, owner.ID, player.ID)
		require.NoError(t, err)
		assert.False(t, delisted.ForSale)
		assert.Nil(t, delisted.SalePrice)

		stored := reloadPlayer(t, db, player.ID)
		assert.False(t, stored.ForSale)
		assert.Nil(t, stored.SalePrice)
	})

	t.Run("delisting twice is a no-op the second time", func(t *testing.T) {
		db := setupTestDB(t)
		engine := NewEngine(db, nil)
		owner := createUser(t, db, "owner@example.com")
		team := createTeam(t, db, owner, "Test Team")
		player := createPlayer(t, db, team, "Player - 1")
		listPlayerAt(t, db, player, 50000)

		_, err := engine.RemoveFromSale(ctx, owner.ID, player.ID)
		require.NoError(t, err)
		_, err = engine.RemoveFromSale(ctx, owner.ID, player.ID)
		require.NoError(t, err)

		stored := reloadPlayer(t, db, player.ID)
		assert.False(t, stored.ForSale)
		assert.Nil(t, stored.SalePrice)
	})

	t.Run("cannot delist another team's player", func(t *testing.T) {
		db := setupTestDB(t)
		engine := NewEngine(db, nil)
		owner := createUser(t, db, "owner@example.com")
		team := createTeam(t, db, owner, "Test Team")
		player := createPlayer(t, db, team, "Player - 1")
		listPlayerAt(t, db, player, 50000)
		rival := createUser(t, db, "rival@example.com")
		createTeam(t, db, rival, "Rival Team")

		_, err := engine.RemoveFromSale(ctx, rival.ID, player.ID)
		engineErr, isEngine := AsError(err)
		require.True(t, isEngine)
		assert.Equal(t, KindForbidden, engineErr.Kind)

		stored := reloadPlayer(t, db, player.ID)
		assert.True(t, stored.ForSale)
	})

	t.Run("unknown player is not found", func(t *testing.T) {
		db := setupTestDB(t)
		engine := NewEngine(db, nil)
		owner := createUser(t, db, "owner@example.com")
		createTeam(t, db, owner, "Test Team")

		_, err := engine.RemoveFromSale(ctx, owner.ID, 101)
		engineErr, isEngine := AsError(err)
		require.True(t, isEngine)
		assert.Equal(t, KindNotFound, engineErr.Kind)
	})
}

func TestListForSale(t *testing.T) {
	ctx := context.Background()

	t.Run("returns only listed players", func(t *testing.T) {
		db := setupTestDB(t)
		engine := NewEngine(db, nil)
		owner := createUser(t, db, "owner@example.com")
		team := createTeam(t, db, owner, "Test Team")
		listed1 := createPlayer(t, db, team, "Player - 1")
		listed2 := createPlayer(t, db, team, "Player - 2")
		createPlayer(t, db, team, "Player - 3") // Never listed
		listPlayerAt(t, db, listed1, 500000)
		listPlayerAt(t, db, listed2, 600000)

		market, err := engine.ListForSale(ctx)
		require.NoError(t, err)
		require.Len(t, market, 2)
		for _, p := range market {
			assert.True(t, p.ForSale)
			assert.NotNil(t, p.SalePrice)
		}
	})

	t.Run("empty market is not an error", func(t *testing.T) {
		db := setupTestDB(t)
		engine := NewEngine(db, nil)

		market, err := engine.ListForSale(ctx)
		require.NoError(t, err)
		assert.Empty(t, market)
	})
}
