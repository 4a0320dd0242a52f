package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/garagehub/marketplace-api/internal/audit"
	"github.com/garagehub/marketplace-api/internal/auth"
	"github.com/garagehub/marketplace-api/internal/config"
	domain "github.com/garagehub/marketplace-api/internal/domain/booking"
	"github.com/garagehub/marketplace-api/internal/handlers"
	infraRepo "github.com/garagehub/marketplace-api/internal/infra/repository"
	"github.com/garagehub/marketplace-api/internal/mail"
	"github.com/garagehub/marketplace-api/internal/media"
	"github.com/garagehub/marketplace-api/internal/middleware"
	"github.com/garagehub/marketplace-api/internal/timezone"
	ucAuth "github.com/garagehub/marketplace-api/internal/usecase/auth"
	ucBooking "github.com/garagehub/marketplace-api/internal/usecase/booking"
)

const (
	refreshTokenTTL = 7 * 24 * time.Hour
	resetTokenTTL   = 1 * time.Hour
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	userRepo := infraRepo.NewUserGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	refreshStore := auth.NewRefreshStore(rdb, refreshTokenTTL)
	resetStore := auth.NewResetStore(rdb, resetTokenTTL)
	mailer := mail.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom)

	var mediaStorage *media.Storage
	if cfg.S3Bucket != "" {
		mediaStorage = media.NewStorage(media.Config{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Bucket:    cfg.S3Bucket,
			PublicURL: cfg.S3PublicURL,
		})
	}

	calendar := domain.DefaultCalendar()
	loc := timezone.Location(cfg.Timezone)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	computeSlotsUC := ucBooking.NewComputeSlots(bookingRepo, calendar, loc)

	checkoutUC := ucBooking.NewCheckout(
		bookingRepo,
		calendar,
		loc,
		auditDispatcher,
	)

	transitionUC := ucBooking.NewTransitionStatus(
		bookingRepo,
		loc,
		auditDispatcher,
	)

	listItemsUC := ucBooking.NewListItems(bookingRepo, loc)

	passwordResetUC := ucAuth.NewPasswordReset(
		userRepo,
		resetStore,
		mailer,
		cfg.PasswordResetURL,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, refreshStore, passwordResetUC)
	profileHandler := handlers.NewProfileHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	serviceImageHandler := handlers.NewServiceImageHandler(db, mediaStorage)
	cartHandler := handlers.NewCartHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		checkoutUC,
		transitionUC,
		listItemsUC,
	)

	availabilityHandler := handlers.NewAvailabilityHandler(computeSlotsUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/refresh", authHandler.Refresh)
		api.POST("/auth/logout", authHandler.Logout)
		api.POST("/auth/password-reset", authHandler.PasswordResetRequestHandler)
		api.POST("/auth/password-reset-confirm", authHandler.PasswordResetConfirmHandler)

		api.GET("/services/list", serviceHandler.SeedList)
		api.GET("/services/:vendor_id", serviceHandler.VendorCatalog)

		api.GET("/availability/slots", availabilityHandler.Slots)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/profile", profileHandler.Get)
			secured.PUT("/profile", profileHandler.Put)

			secured.GET("/services/vendor", serviceHandler.List)
			secured.POST("/services/vendor", serviceHandler.Create)
			secured.PATCH("/services/vendor", serviceHandler.Update)
			secured.DELETE("/services/vendor", serviceHandler.Delete)
			secured.POST("/services/vendor/image", serviceImageHandler.Upload)

			secured.GET("/cart", cartHandler.List)
			secured.POST("/cart", cartHandler.Add)
			secured.PATCH("/cart/:id", cartHandler.Update)
			secured.DELETE("/cart/:id", cartHandler.Delete)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/bookings/checkout", bookingHandler.Checkout)
			secured.GET("/bookings", bookingHandler.ListMine)
			secured.GET("/bookings/vendor", bookingHandler.ListVendor)
			secured.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
