package main

import (
	"context"
	"log"
	"os"
	"time"

	"smartinsights/db/generated"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	dbPool  *pgxpool.Pool
	queries generated.Querier

	// generatorErr is the startup failure reported on each request when no
	// generator could be built.
	generator    InsightGenerator
	generatorErr error

	catalog  *Locale
	location = time.Local
	clock    = time.Now
)

// @title Smart Insights API
// @version 1.0
// @description Summarizes a user's recent income and expenses and returns short business insights.
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal("Error loading configuration: ", err)
	}
	location = cfg.Location

	catalog, err = loadLocale(cfg.Locale, cfg.LocaleFile)
	if err != nil {
		log.Fatal("Error loading locale: ", err)
	}
	log.Printf("Loaded %s insight locale", catalog.Code)

	generator, generatorErr = newGenerator(cfg)
	if generatorErr != nil {
		log.Printf("Warning: insight generation unavailable: %v", generatorErr)
	}

	// Connect to database with retry logic
	maxRetries := 30
	retryInterval := time.Second * 2
	connStr := cfg.connString()

	for i := 0; i < maxRetries; i++ {
		dbPool, err = pgxpool.New(context.Background(), connStr)
		if err != nil {
			log.Printf("Attempt %d: Error opening database: %v", i+1, err)
			time.Sleep(retryInterval)
			continue
		}

		// Test database connection
		if err = dbPool.Ping(context.Background()); err != nil {
			log.Printf("Attempt %d: Error connecting to database: %v", i+1, err)
			dbPool.Close()
			time.Sleep(retryInterval)
			continue
		}

		log.Println("Successfully connected to database")
		break
	}

	if err != nil {
		log.Fatal("Failed to connect to database after retries: ", err)
	}
	defer dbPool.Close()

	queries = generated.New(dbPool)

	// Check if migrations directory exists
	if _, err := os.Stat(cfg.MigrationsPath); os.IsNotExist(err) {
		log.Printf("Migrations directory not found at %s, skipping migrations", cfg.MigrationsPath)
	} else if err := migrateDatabase(connStr, cfg.MigrationsPath); err != nil {
		log.Fatal("Error running migrations: ", err)
	}

	r := gin.Default()
	registerRoutes(r, cfg.AllowHeaders)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server stopped: ", err)
	}
}
