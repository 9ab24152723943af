package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/bestmoments/bestmoments-backend/internal/config"
	"github.com/bestmoments/bestmoments-backend/internal/handler"
	"github.com/bestmoments/bestmoments-backend/internal/repository"
	"github.com/bestmoments/bestmoments-backend/internal/service"
	"github.com/bestmoments/bestmoments-backend/pkg/database"
	"github.com/bestmoments/bestmoments-backend/pkg/email"
	appLogger "github.com/bestmoments/bestmoments-backend/pkg/logger"
	"github.com/bestmoments/bestmoments-backend/pkg/storage"
	"github.com/bestmoments/bestmoments-backend/pkg/utils"
)

func main() {
	// .env is optional outside local development
	_ = godotenv.Load()

	cfg := config.LoadConfig()

	zapLogger, err := appLogger.New()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		zapLogger.Fatal("failed to initialize database", zap.Error(err))
	}

	blobStorage, err := storage.NewS3Storage(cfg)
	if err != nil {
		zapLogger.Fatal("failed to initialize blob storage", zap.Error(err))
	}

	emailService := email.NewEmailService(cfg)

	// Repositories
	eventRepo := repository.NewEventRepository(db)
	albumRepo := repository.NewAlbumRepository(db)
	imageRepo := repository.NewImageRepository(db)
	templateRepo := repository.NewTemplateRepository(db)

	// Services
	eventService := service.NewEventService(eventRepo, templateRepo, blobStorage, emailService, cfg.FrontendURL, zapLogger)
	albumService := service.NewAlbumService(albumRepo, eventRepo, imageRepo)
	imageService := service.NewImageService(imageRepo, eventRepo, albumRepo, blobStorage)
	templateService := service.NewTemplateService(templateRepo)

	validator := utils.NewValidator()

	// Handlers
	eventHandler := handler.NewEventHandler(eventService, validator)
	albumHandler := handler.NewAlbumHandler(albumService, validator)
	imageHandler := handler.NewImageHandler(imageService)
	templateHandler := handler.NewTemplateHandler(templateService, validator)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE",
	}))
	app.Use(logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	api := app.Group("/api/v1")

	events := api.Group("/events")
	events.Post("/", eventHandler.CreateEvent)
	events.Get("/", eventHandler.ListEvents)
	events.Get("/code/:code", eventHandler.GetEventByCode)
	events.Get("/:id", eventHandler.GetEvent)
	events.Put("/:id", eventHandler.UpdateEvent)
	events.Delete("/:id", eventHandler.DeleteEvent)

	albums := api.Group("/albums")
	albums.Post("/", albumHandler.CreateAlbum)
	albums.Get("/event/:eventId", albumHandler.ListAlbumsByEvent)
	albums.Get("/:id", albumHandler.GetAlbum)
	albums.Put("/:id", albumHandler.UpdateAlbum)
	albums.Delete("/:id", albumHandler.DeleteAlbum)

	images := api.Group("/images")
	images.Post("/upload", imageHandler.UploadImage)
	images.Get("/event/:eventId", imageHandler.ListImagesByEvent)
	images.Get("/album/:albumId", imageHandler.ListImagesByAlbum)
	images.Get("/:id", imageHandler.GetImage)
	images.Patch("/:id/move", imageHandler.MoveImage)
	images.Delete("/:id", imageHandler.DeleteImage)

	templates := api.Group("/templates")
	templates.Post("/", templateHandler.CreateTemplate)
	templates.Get("/", templateHandler.ListTemplates)
	templates.Get("/:id", templateHandler.GetTemplate)
	templates.Delete("/:id", templateHandler.DeleteTemplate)

	zapLogger.Info("starting API server", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}
