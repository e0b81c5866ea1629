package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"lumiere-photography/internal/config"
	"lumiere-photography/internal/handler"
	"lumiere-photography/internal/middleware"
	"lumiere-photography/internal/repository"
	"lumiere-photography/internal/service"
	"lumiere-photography/internal/service/auth"
	"lumiere-photography/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.NewDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := config.Migrate(db, cfg.DBDriver); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	var redisClient *redis.Client
	if rdb, err := config.NewRedisClient(cfg); err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v (caching disabled)", err)
	} else {
		redisClient = rdb
		defer redisClient.Close()
	}

	blobs, err := newBlobStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize blob storage: %v", err)
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, redisClient, blobs, cfg)
	handlers := handler.NewHandlers(services)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
		BodyLimit:    int(cfg.MaxUploadBytes) + 1024*1024,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	if cfg.StorageDriver == "local" {
		app.Static("/uploads", cfg.LocalStorageDir)
	}

	setupRoutes(app, handlers, services.Auth)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func newBlobStore(cfg *config.Config) (storage.BlobStore, error) {
	if cfg.StorageDriver == "local" {
		return storage.NewLocalStore(cfg.LocalStorageDir, cfg.PublicBaseURL)
	}

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		return nil, err
	}
	return storage.NewMinIOStore(minioClient, cfg), nil
}

func setupRoutes(app *fiber.App, h *handler.Handlers, authService auth.Service) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	authRequired := middleware.AuthRequired(authService)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/login", h.Auth.Login)
	authGroup.Post("/logout", h.Auth.Logout)
	authGroup.Get("/verify", authRequired, h.Auth.Verify)

	media := api.Group("/media")
	media.Get("/", h.Media.List)
	media.Get("/category/:category", h.Media.ListByCategory)
	media.Post("/upload", authRequired, h.Media.Upload)
	media.Get("/:id", h.Media.Get)
	media.Put("/:id", authRequired, h.Media.Update)
	media.Delete("/:id", authRequired, h.Media.Delete)

	textContent := api.Group("/text-content")
	textContent.Get("/", h.TextContent.List)
	textContent.Put("/multiple", authRequired, h.TextContent.UpdateMultiple)
	textContent.Put("/", authRequired, h.TextContent.Update)
	textContent.Get("/:key", h.TextContent.GetByKey)

	backgrounds := api.Group("/backgrounds")
	backgrounds.Get("/", h.Background.List)
	backgrounds.Get("/:sectionType", h.Background.ListBySectionType)

	quotations := api.Group("/quotations")
	quotations.Post("/", h.Quotation.Submit)

	reviews := api.Group("/reviews")
	reviews.Post("/", h.Review.Submit)
	reviews.Get("/approved", h.Review.ListApproved)

	admin := api.Group("/admin", authRequired)
	admin.Post("/backgrounds", h.Background.Upload)
	admin.Delete("/backgrounds/:id", h.Background.Delete)
	admin.Get("/quotations", h.Quotation.List)
	admin.Get("/quotations/:id", h.Quotation.Get)
	admin.Put("/quotations/:id/status", h.Quotation.UpdateStatus)
	admin.Delete("/quotations/:id", h.Quotation.Delete)
	admin.Get("/reviews", h.Review.List)
	admin.Get("/reviews/:id", h.Review.Get)
	admin.Put("/reviews/:id/status", h.Review.UpdateStatus)
	admin.Delete("/reviews/:id", h.Review.Delete)
}
