package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tutorlinkhq/tutor-marketplace/internal/audit"
	"github.com/tutorlinkhq/tutor-marketplace/internal/cache"
	"github.com/tutorlinkhq/tutor-marketplace/internal/config"
	"github.com/tutorlinkhq/tutor-marketplace/internal/handlers"
	infraRepo "github.com/tutorlinkhq/tutor-marketplace/internal/infra/repository"
	"github.com/tutorlinkhq/tutor-marketplace/internal/middleware"
	"github.com/tutorlinkhq/tutor-marketplace/internal/models"
	ucAvailability "github.com/tutorlinkhq/tutor-marketplace/internal/usecase/availability"
	ucBooking "github.com/tutorlinkhq/tutor-marketplace/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	availCache *cache.AvailabilityCache,
	cfg *config.Config,
	log *zap.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// USE CASES
	// ======================================================
	replaceAvailabilityUC := ucAvailability.NewReplace(
		scheduleRepo,
		availCache,
		auditDispatcher,
		log,
	)

	createBookingUC := ucBooking.NewCreate(scheduleRepo, auditDispatcher)
	completeBookingUC := ucBooking.NewComplete(scheduleRepo, auditDispatcher)
	cancelBookingUC := ucBooking.NewCancel(scheduleRepo, auditDispatcher)
	meetingLinkUC := ucBooking.NewUpdateMeetingLink(scheduleRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	tutorHandler := handlers.NewTutorHandler(db)
	categoryHandler := handlers.NewCategoryHandler(db)
	reviewHandler := handlers.NewReviewHandler(db)
	adminHandler := handlers.NewAdminHandler(db, auditDispatcher)

	availabilityHandler := handlers.NewAvailabilityHandler(
		replaceAvailabilityUC,
		scheduleRepo,
		availCache,
	)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		completeBookingUC,
		cancelBookingUC,
		meetingLinkUC,
		scheduleRepo,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PUBLIC READS
		// ------------------------------
		api.GET("/categories", categoryHandler.List)
		api.GET("/tutors", tutorHandler.List)
		api.GET("/tutors/:id", tutorHandler.Get)
		api.GET("/tutors/:id/availability", availabilityHandler.Get)
		api.GET("/tutors/:id/reviews", reviewHandler.ListForTutor)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// TUTOR (own profile / schedule)
			// ------------------------------
			tutor := secured.Group("/tutor")
			tutor.Use(middleware.RequireRoles(models.RoleTutor))
			{
				tutor.POST("/profile", tutorHandler.UpsertProfile)
				tutor.GET("/profile", tutorHandler.GetMyProfile)
				tutor.PUT("/availability", availabilityHandler.Replace)
				tutor.GET("/bookings", bookingHandler.ListForTutor)
			}

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			bookings := secured.Group("/bookings")
			{
				bookings.POST("", middleware.RequireRoles(models.RoleStudent), bookingHandler.Create)
				bookings.GET("", middleware.RequireRoles(models.RoleStudent), bookingHandler.ListMine)
				bookings.GET("/:id", bookingHandler.Get)
				bookings.PATCH("/:id/complete", middleware.RequireRoles(models.RoleTutor), bookingHandler.Complete)
				bookings.PATCH("/:id/cancel", bookingHandler.Cancel)
				bookings.PATCH("/:id/meeting-link", middleware.RequireRoles(models.RoleTutor), bookingHandler.UpdateMeetingLink)
			}

			// ------------------------------
			// REVIEWS
			// ------------------------------
			secured.POST("/reviews", middleware.RequireRoles(models.RoleStudent), reviewHandler.Create)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRoles(models.RoleAdmin))
			{
				admin.GET("/users", adminHandler.ListUsers)
				admin.PATCH("/users/:id/ban", adminHandler.BanUser)
				admin.PATCH("/users/:id/unban", adminHandler.UnbanUser)
				admin.GET("/stats", adminHandler.Stats)
				admin.GET("/audit-logs", adminHandler.ListAuditLogs)

				admin.POST("/categories", categoryHandler.Create)
				admin.DELETE("/categories/:id", categoryHandler.Delete)
			}
		}
	}
}
