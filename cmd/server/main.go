// Package main starts the payment simulator API server.
package main

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"kaha/internal/config"
	"kaha/internal/repositories"
	"kaha/internal/routes"
	"kaha/internal/services/checkout"
)

func main() {
	zapLogger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	log := zapLogger.Sugar()
	defer func() {
		_ = zapLogger.Sync()
	}()

	config.LoadEnv()

	catalogPath := config.GetEnv("CATALOG_PATH", "config/catalog.yaml")
	catalog, err := checkout.LoadCatalog(catalogPath)
	if err != nil {
		log.Fatalf("failed to load catalog: %v", err)
	}
	log.Infow("catalog loaded",
		"path", catalogPath,
		"products", len(catalog.Products()),
		"currency", catalog.Currency(),
	)

	store := repositories.NewStore()

	app := fiber.New(fiber.Config{
		AppName:      "kaha",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())
	app.Use(limiter.New(limiter.Config{
		Max:        config.GetIntEnv("RATE_LIMIT_MAX", 100),
		Expiration: time.Minute,
	}))

	routes.SetupRoutes(app, store, catalog)

	port := config.GetEnv("PORT", "8080")
	log.Infow("starting server", "port", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
