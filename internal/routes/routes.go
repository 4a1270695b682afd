package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/serenity-salon/booking-api/internal/audit"
	"github.com/serenity-salon/booking-api/internal/config"
	domain "github.com/serenity-salon/booking-api/internal/domain/booking"
	"github.com/serenity-salon/booking-api/internal/handlers"
	"github.com/serenity-salon/booking-api/internal/middleware"
	"github.com/serenity-salon/booking-api/internal/payments"
	"github.com/serenity-salon/booking-api/internal/timezone"
	ucBooking "github.com/serenity-salon/booking-api/internal/usecase/booking"
	ucPayment "github.com/serenity-salon/booking-api/internal/usecase/payment"
)

func RegisterRoutes(
	r *gin.Engine,
	repo domain.Repository,
	provider payments.Provider,
	cfg *config.Config,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	auditLogger := audit.New(repo)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	salonLoc := timezone.Location(cfg.SalonTimezone)

	// ======================================================
	// USE CASES
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(repo, auditDispatcher, salonLoc)
	updateStatusUC := ucBooking.NewUpdateStatus(repo, auditDispatcher)
	reconciler := ucPayment.NewReconciler(repo, provider, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	catalogHandler := handlers.NewCatalogHandler(repo)
	appointmentHandler := handlers.NewAppointmentHandler(repo, createBookingUC, updateStatusUC)
	paymentHandler := handlers.NewPaymentHandler(reconciler)
	sessionHandler := handlers.NewBookingSessionHandler(repo, createBookingUC)
	authHandler := handlers.NewAuthHandler(repo, cfg)
	meHandler := handlers.NewMeHandler(repo)
	auditLogsHandler := handlers.NewAuditLogsHandler(repo)

	// ======================================================
	// PUBLIC (BOOKING + CHECKOUT)
	// ======================================================
	r.GET("/services", catalogHandler.ListServices)
	r.GET("/staff", catalogHandler.ListStaff)

	r.POST("/appointments", appointmentHandler.Create)
	r.GET("/appointments/:id", appointmentHandler.Get)

	r.POST("/create-payment-intent", paymentHandler.CreateIntent)
	r.POST("/confirm-payment", paymentHandler.Confirm)

	sessions := r.Group("/booking-sessions")
	{
		sessions.POST("", sessionHandler.Create)
		sessions.GET("/:id", sessionHandler.Get)
		sessions.POST("/:id/service", sessionHandler.SelectService)
		sessions.POST("/:id/schedule", sessionHandler.SelectSchedule)
		sessions.POST("/:id/contact", sessionHandler.SetContact)
		sessions.POST("/:id/next", sessionHandler.Next)
		sessions.POST("/:id/back", sessionHandler.Back)
		sessions.POST("/:id/submit", sessionHandler.Submit)
	}

	// ======================================================
	// AUTH
	// ======================================================
	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)

	// ======================================================
	// MANAGEMENT VIEW (STAFF ONLY)
	// ======================================================
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(cfg))
	{
		secured.GET("/me", meHandler.GetMe)

		secured.GET("/appointments", appointmentHandler.List)
		secured.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)

		secured.GET("/audit-logs", auditLogsHandler.List)
	}
}
