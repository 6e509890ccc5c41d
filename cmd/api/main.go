package main

import (
	"os"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ladybug-realty/ladybug-api/internal/config"
	"github.com/ladybug-realty/ladybug-api/internal/db"
	"github.com/ladybug-realty/ladybug-api/internal/services/assistant"
	"github.com/ladybug-realty/ladybug-api/internal/services/favorite"
	"github.com/ladybug-realty/ladybug-api/internal/services/inquiry"
	"github.com/ladybug-realty/ladybug-api/internal/services/profile"
	"github.com/ladybug-realty/ladybug-api/internal/services/property"
	"github.com/ladybug-realty/ladybug-api/internal/services/upload"
)

func main() {
	cfg := config.LoadConfig()

	if cfg.AppEnv != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	if err := db.InitDB(cfg); err != nil {
		log.Fatal().Err(err).Msg("database initialization failed")
	}
	defer db.CloseDB()

	app := fiber.New(fiber.Config{
		AppName:      "Ladybug API",
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowCredentials: false,
	}))

	property.NewPropertyService(cfg).SetupRoutes(app)
	favorite.NewFavoriteService(cfg).SetupRoutes(app)
	inquiry.NewInquiryService(cfg).SetupRoutes(app)
	profile.NewProfileService(cfg).SetupRoutes(app)
	assistant.NewAssistantService().SetupRoutes(app)
	upload.NewUploadService(cfg).SetupRoutes(app)

	log.Info().Str("port", cfg.Port).Msg("Ladybug API listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// errorHandler turns unhandled errors into the generic JSON error shape.
func errorHandler(c fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
