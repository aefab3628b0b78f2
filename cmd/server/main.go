package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Loads .env files into the environment
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/kohtao/scuba-reservation/internal/clock"      // Injected time source
	"github.com/kohtao/scuba-reservation/internal/config"     // Internal config loader
	"github.com/kohtao/scuba-reservation/internal/handler"    // HTTP handlers
	"github.com/kohtao/scuba-reservation/internal/middleware" // Rate limit and cache middleware
	"github.com/kohtao/scuba-reservation/internal/queue"      // reservation.created consumer
	"github.com/kohtao/scuba-reservation/internal/repository" // In-memory reservation store
	"github.com/kohtao/scuba-reservation/internal/router"     // Route registration
)

func main() {
	_ = godotenv.Load() // Load .env if present; real env vars win

	cfg := config.Load() // Load environment config

	// Redis backs the rate limiter and the response cache.  Both degrade
	// to pass-through middleware when Redis is unreachable, so a nil
	// client here is not fatal.
	rdb := config.NewRedisClient()

	clk := clock.System{}                   // Wall clock time source
	repo := repository.NewReservationRepo() // Shared in-memory store
	if err := repository.Seed(repo, clk); err != nil {
		log.Fatalf("seed reservations: %v", err)
	}

	e := echo.New()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	wizard := handler.NewWizardHandler(repo, clk, cfg)
	pos := handler.NewPOSHandler(repo, clk, cfg)

	router.RegisterRoutes(e)                 // Health check
	router.RegisterBooking(e, wizard, cache) // Customer booking wizard
	router.RegisterPOS(e, pos, cache)        // Staff dashboard

	// The consumer appends reservation.created events to the activity log.
	// It runs its own reconnect loop, so a broker outage never stops the API.
	go func() {
		if err := queue.StartReservationConsumer(); err != nil {
			log.Printf("reservation consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
