package main

import (
	"log"

	"smartedu/backend/catalog"
	"smartedu/backend/config"
	"smartedu/backend/middleware"
	"smartedu/backend/routes"
	"smartedu/backend/stores"
	"smartedu/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Validate catalog invariants
	if err := catalog.Validate(); err != nil {
		log.Fatalf("Invalid catalog: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Initialize state storage
	var storage stores.Storage
	if cfg.Storage == "memory" {
		storage = stores.NewMemoryStorage()
	} else {
		db, err := utils.InitDB(cfg)
		if err != nil {
			log.Fatalf("Error initializing database: %v", err)
		}
		if err := db.AutoMigrate(&stores.StateRecord{}); err != nil {
			log.Fatalf("Error migrating database: %v", err)
		}
		storage = stores.NewGormStorage(db)
	}

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, storage, cfg, logger)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
