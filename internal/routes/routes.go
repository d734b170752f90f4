package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/glamora/salon-scheduler/internal/audit"
	"github.com/glamora/salon-scheduler/internal/cache"
	"github.com/glamora/salon-scheduler/internal/config"
	"github.com/glamora/salon-scheduler/internal/handlers"
	infraRepo "github.com/glamora/salon-scheduler/internal/infra/repository"
	"github.com/glamora/salon-scheduler/internal/media"
	"github.com/glamora/salon-scheduler/internal/middleware"
	ucBooking "github.com/glamora/salon-scheduler/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
	}
	availabilityCache := cache.NewAvailabilityCache(rdb)

	uploader := media.NewUploader(cfg)

	// ======================================================
	// USE CASES (BOOKINGS)
	// ======================================================
	admitUC := ucBooking.NewAdmitBooking(
		bookingRepo,
		auditDispatcher,
		availabilityCache,
	)

	availabilityUC := ucBooking.NewGetAvailability(
		bookingRepo,
		availabilityCache,
	)

	updateStatusUC := ucBooking.NewUpdateStatus(
		bookingRepo,
		auditDispatcher,
		availabilityCache,
	)

	markSeenUC := ucBooking.NewMarkSeen(
		bookingRepo,
		auditDispatcher,
	)

	listBookingsUC := ucBooking.NewListBookings(
		bookingRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher, uploader)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		admitUC,
		availabilityUC,
		updateStatusUC,
		markSeenUC,
		listBookingsUC,
		cfg.Timezone,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/bookings/slots", bookingHandler.Slots)
		api.POST("/bookings", bookingHandler.Create)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// STAFF
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/bookings", bookingHandler.List)
			secured.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus)
			secured.PATCH("/bookings/:id/seen", bookingHandler.MarkSeen)

			secured.POST("/services", serviceHandler.Create)
			secured.DELETE("/services/:id", serviceHandler.Delete)
			if uploader != nil {
				secured.POST("/services/:id/image", serviceHandler.UploadImage)
			}

			secured.GET("/audit-logs", auditLogsHandler.List)

			// ------------------------------
			// USERS (root only)
			// ------------------------------
			root := secured.Group("/auth/users")
			root.Use(middleware.RequireRole(middleware.RoleRoot))
			{
				root.GET("", authHandler.ListUsers)
				root.DELETE("/:id", authHandler.DeleteUser)
			}
		}
	}
}
