package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"mavericks/backend/analytics"
	"mavericks/backend/config"
	"mavericks/backend/engagement"
	"mavericks/backend/middleware"
	"mavericks/backend/routes"
	"mavericks/backend/store"
	"mavericks/backend/tracker"
	"mavericks/backend/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Pick the activity store backend
	var activityStore store.ActivityStore
	switch cfg.StorageDriver {
	case "memory":
		activityStore = store.NewMemoryStore()
	default:
		db, err := utils.InitDB(cfg)
		if err != nil {
			log.Fatalf("Error initializing database: %v", err)
		}
		activityStore, err = store.NewGormStore(db)
		if err != nil {
			log.Fatalf("Error migrating activity store: %v", err)
		}
	}

	activityTracker := tracker.New(activityStore)
	engine := engagement.NewEngine()
	reporter := analytics.NewReporter(activityTracker, engine)

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"storage": cfg.StorageDriver,
		})
	})

	// Setup routes
	routes.SetupRoutes(app, activityTracker, engine, reporter, cfg)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
