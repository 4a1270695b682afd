package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/serenity-salon/booking-api/internal/config"
	dbpkg "github.com/serenity-salon/booking-api/internal/db"
	domain "github.com/serenity-salon/booking-api/internal/domain/booking"
	infraRepo "github.com/serenity-salon/booking-api/internal/infra/repository"
	"github.com/serenity-salon/booking-api/internal/middleware"
	"github.com/serenity-salon/booking-api/internal/payments"
	"github.com/serenity-salon/booking-api/internal/routes"
	"github.com/serenity-salon/booking-api/internal/validators"
)

func main() {

	cfg := config.Load()

	var repo domain.Repository
	switch cfg.StorageDriver {
	case "memory":
		repo = infraRepo.NewBookingMemoryRepository()
	default:
		repo = infraRepo.NewBookingGormRepository(dbpkg.NewDB(cfg))
	}

	if err := dbpkg.Seed(context.Background(), repo); err != nil {
		log.Fatalf("failed to seed catalog: %v", err)
	}

	if cfg.StripeSecretKey == "" {
		log.Println("warning: STRIPE_SECRET_KEY not set, payments will fail")
	}
	provider := payments.NewStripeProvider(cfg.StripeSecretKey, cfg.PaymentCurrency)

	validators.Register()

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, repo, provider, cfg)

	log.Printf("Server running on %s (storage=%s)", cfg.Addr(), cfg.StorageDriver)
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
