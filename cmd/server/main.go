package main

import (
	"context"                           // context package is needed for Redis operations
	"league_system/internal/api"        // Custom package for API handlers
	"league_system/internal/config"     // Custom package for configuration
	"league_system/internal/middleware" // Custom package for middleware
	"league_system/internal/transfer"   // Transfer engine
	"log"                               // log package is needed for logging

	// For loading .env files
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Setup Data Source Name (DSN) and connect to the database
	dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// The transfer engine with the default time-seeded valuation roller
	engine := transfer.NewEngine(db, nil)

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Auth routes
	r.POST("/register", api.RegisterHandler(db))           // Registration endpoint
	r.POST("/login", api.LoginHandler(db, cfg.JWTSecret)) // Login endpoint

	// Public market and history views
	r.GET("/market", api.MarketHandler(engine, redisClient))                   // Players listed for sale
	r.GET("/transactions", api.ListTransactionsHandler(engine, redisClient))   // Global transfer history
	r.GET("/transactions/:id", api.GetTransactionHandler(engine))              // Single transaction

	// Team routes (protected by JWT)
	teamGroup := r.Group("/team")
	teamGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	teamGroup.POST("", api.CreateTeamHandler(db))      // Create team endpoint
	teamGroup.GET("", api.ListTeamsHandler(db))        // List teams endpoint
	teamGroup.GET("/myteam", api.MyTeamHandler(db))    // Logged-in user's team endpoint
	teamGroup.GET("/:id", api.GetTeamHandler(db))      // Get team endpoint
	teamGroup.PUT("/:id", api.UpdateTeamHandler(db))   // Update team endpoint
	teamGroup.DELETE("/:id", api.DeleteTeamHandler(db)) // Delete team endpoint

	// Player and market routes (protected by JWT, with Redis for invalidation)
	playerGroup := r.Group("/player")
	playerGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), func(c *gin.Context) {
		c.Set("redisClient", redisClient)
		c.Next()
	})
	playerGroup.POST("", api.CreatePlayerHandler(db))                 // Create player endpoint
	playerGroup.GET("", api.ListPlayersHandler(db))                   // List players endpoint
	playerGroup.GET("/:id", api.GetPlayerHandler(db))                 // Get player endpoint
	playerGroup.PUT("/:id", api.UpdatePlayerHandler(db))              // Update player endpoint
	playerGroup.POST("/:id/sale", api.SetForSaleHandler(engine))      // List a player for sale
	playerGroup.POST("/:id/unsale", api.RemoveFromSaleHandler(engine)) // Delist a player
	playerGroup.POST("/:id/buy", api.BuyPlayerHandler(engine))        // Buy a listed player

	// Personal transfer history (protected by JWT)
	historyGroup := r.Group("/transactions")
	historyGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	historyGroup.GET("/mine", api.MyTransactionsHandler(engine)) // Caller's trades with roles

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
