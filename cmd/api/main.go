package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/freelancedesk/freelance-tracker/internal/cache"
	"github.com/freelancedesk/freelance-tracker/internal/config"
	dbpkg "github.com/freelancedesk/freelance-tracker/internal/db"
	infraRepo "github.com/freelancedesk/freelance-tracker/internal/infra/repository"
	"github.com/freelancedesk/freelance-tracker/internal/middleware"
	"github.com/freelancedesk/freelance-tracker/internal/routes"
)

func main() {

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		rdb = redis.NewClient(opt)
	}
	summaryCache := cache.NewSummaryCache(rdb, cfg.SummaryCacheTTL)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, routes.Deps{
		Clients:  infraRepo.NewClientGormRepository(db),
		Gigs:     infraRepo.NewGigGormRepository(db),
		Invoices: infraRepo.NewInvoiceGormRepository(db),
		Cache:    summaryCache,
	})

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
