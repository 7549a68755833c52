package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/marketplace-api/internal/audit"
	"github.com/BruksfildServices01/marketplace-api/internal/config"
	"github.com/BruksfildServices01/marketplace-api/internal/handlers"
	infraRepo "github.com/BruksfildServices01/marketplace-api/internal/infra/repository"
	"github.com/BruksfildServices01/marketplace-api/internal/mail"
	"github.com/BruksfildServices01/marketplace-api/internal/media"
	"github.com/BruksfildServices01/marketplace-api/internal/middleware"
	"github.com/BruksfildServices01/marketplace-api/internal/models"
	"github.com/BruksfildServices01/marketplace-api/internal/notify"
	"github.com/BruksfildServices01/marketplace-api/internal/realtime"
	ucBooking "github.com/BruksfildServices01/marketplace-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, hub *realtime.Hub) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	mailer := mail.New(cfg)
	storage := media.NewStorage(cfg)

	notifyStore := notify.NewGormStore(db)

	notifyDispatcher := notify.NewDispatcher(
		notifyStore,
		hub,
		mailer,
	)

	// ======================================================
	// 🧠 USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		auditDispatcher,
		notifyDispatcher,
		hub,
	)

	acceptBookingUC := ucBooking.NewAcceptBooking(
		bookingRepo,
		auditDispatcher,
		notifyDispatcher,
		hub,
	)

	rejectBookingUC := ucBooking.NewRejectBooking(
		bookingRepo,
		auditDispatcher,
		notifyDispatcher,
		hub,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		auditDispatcher,
		hub,
	)

	completeBookingUC := ucBooking.NewCompleteBooking(
		bookingRepo,
		auditDispatcher,
		hub,
	)

	listUserBookingsUC := ucBooking.NewListUserBookings(bookingRepo)
	listProviderBookingsUC := ucBooking.NewListProviderBookings(bookingRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, mailer)
	meHandler := handlers.NewMeHandler(db)

	categoryHandler := handlers.NewCategoryHandler(db)
	serviceHandler := handlers.NewServiceHandler(db, storage)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		acceptBookingUC,
		rejectBookingUC,
		cancelBookingUC,
		completeBookingUC,
		listUserBookingsUC,
		listProviderBookingsUC,
	)

	notificationHandler := handlers.NewNotificationHandler(notifyStore, hub)
	eventsHandler := handlers.NewEventsHandler(bookingRepo, hub)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		api.GET("/categories", categoryHandler.List)
		api.GET("/categories/:id", categoryHandler.Get)

		api.GET("/services", serviceHandler.List)
		api.GET("/services/:id", serviceHandler.Get)

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/login", authHandler.Login)
		api.GET("/auth/confirm", authHandler.ConfirmEmail)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me/profile", meHandler.UpdateProfile)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.GET("/me/bookings", bookingHandler.ListMine)

			asUser := secured.Group("/")
			asUser.Use(middleware.RequireRole(models.RoleUser))
			{
				asUser.POST("/me/bookings", bookingHandler.Create)
				asUser.PATCH("/me/bookings/:id/cancel", bookingHandler.Cancel)
			}

			asProvider := secured.Group("/")
			asProvider.Use(middleware.RequireRole(models.RoleProvider))
			{
				asProvider.PATCH("/me/bookings/:id/accept", bookingHandler.Accept)
				asProvider.PATCH("/me/bookings/:id/reject", bookingHandler.Reject)
				asProvider.PATCH("/me/bookings/:id/complete", bookingHandler.Complete)

				// ------------------------------
				// SERVICES (PROVIDER)
				// ------------------------------
				asProvider.GET("/me/services", serviceHandler.ListMine)
				asProvider.POST("/me/services", serviceHandler.Create)
				asProvider.PATCH("/me/services/:id", serviceHandler.Update)
				asProvider.POST("/me/services/:id/image", serviceHandler.UploadImage)
			}

			// ------------------------------
			// NOTIFICATIONS
			// ------------------------------
			secured.GET("/me/notifications", notificationHandler.List)
			secured.GET("/me/notifications/unread-count", notificationHandler.UnreadCount)
			secured.PATCH("/me/notifications/:id/read", notificationHandler.MarkRead)
			secured.PATCH("/me/notifications/read-all", notificationHandler.MarkAllRead)

			// ------------------------------
			// EVENTS (SSE)
			// ------------------------------
			secured.GET("/me/events", eventsHandler.Stream)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
