package api

import (
	"context"                         // Context for Redis operations
	"league_system/internal/transfer" // Transfer engine
	"league_system/internal/utils"    // Utility functions
	"net/http"                        // HTTP status codes
	"strconv"                         // String conversion
	"time"                            // Time durations

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// historyCacheKey caches the global transaction history
const historyCacheKey = "txhistory:all"

// ListTransactionsHandler returns every past transaction; the history is public
func ListTransactionsHandler(engine *transfer.Engine, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()              // Context for Redis operations
		var cached []transfer.TransactionView    // Try the cache first
		found, err := utils.GetCache(ctx, rdb, historyCacheKey, &cached)
		if err == nil && found {
			ok(c, "success", cached)
			return
		}
		views, err := engine.ListTransactions(c.Request.Context())
		if err != nil {
			failEngine(c, err)
			return
		}
		// Cache the history for 30 seconds
		_ = utils.SetCache(ctx, rdb, historyCacheKey, views, 30*time.Second)
		ok(c, "success", views)
	}
}

// GetTransactionHandler returns a single transaction by id
func GetTransactionHandler(engine *transfer.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id")) // Parse transaction id from the path
		if err != nil {
			fail(c, "Bad Request", http.StatusBadRequest, 0)
			return
		}
		view, err := engine.GetTransaction(c.Request.Context(), uint(id))
		if err != nil {
			failEngine(c, err)
			return
		}
		ok(c, "success", view)
	}
}

// MyTransactionsHandler returns the caller's trades with their role per trade
func MyTransactionsHandler(engine *transfer.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, authed := currentUserID(c) // Get userID from context
		if !authed {
			return
		}
		views, hasTeam, err := engine.TeamTransactions(c.Request.Context(), userID)
		if err != nil {
			failEngine(c, err)
			return
		}
		// A caller without a team simply has no history yet
		if !hasTeam {
			ok(c, "You don't have team.", []transfer.TeamTransactionView{})
			return
		}
		ok(c, "success", views)
	}
}
