package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/rantevou-app/gateway/internal/backend"
	"github.com/rantevou-app/gateway/internal/config"
	"github.com/rantevou-app/gateway/internal/middleware"
	"github.com/rantevou-app/gateway/internal/reminder"
	"github.com/rantevou-app/gateway/internal/routes"
	"github.com/rantevou-app/gateway/internal/session"
	"github.com/rantevou-app/gateway/internal/timezone"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()

	api := backend.New(cfg.BackendURL, cfg.BackendTimeout)

	var store session.Store
	if cfg.RedisURL != "" {
		rs, err := session.NewRedisStore(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect redis: %v", err)
		}
		store = rs
	} else {
		store = session.NewMemoryStore()
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware(cfg.CORSAllowOrigin))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, api, store, cfg)

	sweeper := reminder.NewSweeper(
		api,
		reminder.NewDispatcher(api),
		func() string { return cfg.ReminderToken },
		timezone.Location(cfg.Timezone),
	)
	if c := sweeper.Start(cfg.ReminderCron); c != nil {
		defer c.Stop()
	}

	log.Printf("Gateway running on %s (backend %s)", cfg.Addr(), cfg.BackendURL)
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
