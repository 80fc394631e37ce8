package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/relocateiq/country-analyzer/internal/analysis"
	httpapi "github.com/relocateiq/country-analyzer/internal/api/http"
	"github.com/relocateiq/country-analyzer/internal/cache"
	"github.com/relocateiq/country-analyzer/internal/config"
	"github.com/relocateiq/country-analyzer/internal/country"
	"github.com/relocateiq/country-analyzer/internal/country/providers"
	"github.com/relocateiq/country-analyzer/internal/scheduler"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound source calls. The timeout here is the
	// only bound on a single fetch; the analysis core joins on all of them.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// The five data sources, each with its own circuit breaker.
	provider := country.NewAggregatedProvider(
		providers.NewRestCountriesSource(httpClient),
		providers.NewWorldBankSource(httpClient),
		providers.NewOpenWeatherSource(httpClient, cfg.OpenWeatherAPIKey),
		providers.NewWAQISource(httpClient, cfg.WAQIAPIToken, cfg.GeocoderAPIKey),
		providers.NewTravelAdvisorySource(httpClient),
	)

	// Shared dataset cache with request coalescing.
	dataCache := cache.New[country.DataSet](cfg.CacheTTL)

	// Core service scoring and ranking countries.
	service := analysis.NewService(provider, dataCache)

	// Scheduler that keeps configured countries warm in the cache.
	sched := scheduler.New(cfg.WarmCountries, cfg.WarmInterval, service)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "country-analyzer",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          30 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "country-analyzer",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, service)

	// Start server with graceful shutdown
	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
