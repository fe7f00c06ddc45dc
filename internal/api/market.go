package api

import (
	"context"                         // Context for Redis operations
	"league_system/internal/transfer" // Transfer engine
	"league_system/internal/utils"    // Utility functions
	"net/http"                        // HTTP status codes
	"strconv"                         // String conversion
	"time"                            // Time durations

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/redis/go-redis/v9"  // Redis client
	"github.com/shopspring/decimal" // Fixed-point decimal for the price
)

// marketCacheKey caches the public market view
const marketCacheKey = "market:forsale"

// PriceRequest carries the asking or offered price of a listing
type PriceRequest struct {
	Price decimal.Decimal `json:"price" binding:"required"` // Price must be provided
}

// invalidateMarket drops the cached market view after any listing change
func invalidateMarket(c *gin.Context) {
	if rdb, isRedis := c.MustGet("redisClient").(*redis.Client); isRedis {
		_ = utils.DeleteCache(context.Background(), rdb, marketCacheKey)
	}
}

// invalidateHistory drops the cached global history after a completed trade
func invalidateHistory(c *gin.Context) {
	if rdb, isRedis := c.MustGet("redisClient").(*redis.Client); isRedis {
		_ = utils.DeleteCache(context.Background(), rdb, historyCacheKey)
	}
}

// SetForSaleHandler lists one of the caller's players on the market
func SetForSaleHandler(engine *transfer.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, authed := currentUserID(c) // Get userID from context
		if !authed {
			return
		}
		playerID, err := strconv.Atoi(c.Param("id")) // Parse player id from the path
		if err != nil {
			fail(c, "Bad Request", http.StatusBadRequest, 0)
			return
		}
		var req PriceRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// Missing or non-numeric price
			fail(c, "Bad Request", http.StatusBadRequest, 0)
			return
		}
		player, err := engine.SetForSale(c.Request.Context(), userID, uint(playerID), req.Price)
		if err != nil {
			failEngine(c, err)
			return
		}
		invalidateMarket(c) // The market view changed
		ok(c, "Player is set for sale.", serializePlayer(player))
	}
}

// RemoveFromSaleHandler delists one of the caller's players
func RemoveFromSaleHandler(engine *transfer.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, authed := currentUserID(c) // Get userID from context
		if !authed {
			return
		}
		playerID, err := strconv.Atoi(c.Param("id")) // Parse player id from the path
		if err != nil {
			fail(c, "Bad Request", http.StatusBadRequest, 0)
			return
		}
		player, err := engine.RemoveFromSale(c.Request.Context(), userID, uint(playerID))
		if err != nil {
			failEngine(c, err)
			return
		}
		invalidateMarket(c) // The market view changed
		ok(c, "Player is removed from sale.", serializePlayer(player))
	}
}

// MarketHandler returns every player listed for sale; the view is public
func MarketHandler(engine *transfer.Engine, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Context for Redis operations
		var cached []PlayerResponse // Try the cache first
		found, err := utils.GetCache(ctx, rdb, marketCacheKey, &cached)
		if err == nil && found {
			ok(c, "success", cached)
			return
		}
		players, err := engine.ListForSale(c.Request.Context())
		if err != nil {
			failEngine(c, err)
			return
		}
		payload := make([]PlayerResponse, 0, len(players)) // Serialized payload
		for i := range players {
			payload = append(payload, serializePlayer(&players[i]))
		}
		// Cache the market view for 30 seconds
		_ = utils.SetCache(ctx, rdb, marketCacheKey, payload, 30*time.Second)
		ok(c, "success", payload)
	}
}

// BuyPlayerHandler executes a transfer on behalf of the caller
func BuyPlayerHandler(engine *transfer.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, authed := currentUserID(c) // Get userID from context
		if !authed {
			return
		}
		playerID, err := strconv.Atoi(c.Param("id")) // Parse player id from the path
		if err != nil {
			fail(c, "Bad Request", http.StatusBadRequest, 0)
			return
		}
		var req PriceRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// Missing or non-numeric price
			fail(c, "Bad Request", http.StatusBadRequest, 0)
			return
		}
		record, err := engine.Buy(c.Request.Context(), userID, uint(playerID), req.Price)
		if err != nil {
			failEngine(c, err)
			return
		}
		invalidateMarket(c)  // The listing was consumed
		invalidateHistory(c) // The history view gained a row
		ok(c, "Player bought successfully.", record)
	}
}
