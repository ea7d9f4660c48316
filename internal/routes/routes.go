package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/carepoint/clinic-scheduler/internal/audit"
	"github.com/carepoint/clinic-scheduler/internal/config"
	domain "github.com/carepoint/clinic-scheduler/internal/domain/appointment"
	"github.com/carepoint/clinic-scheduler/internal/handlers"
	infraRepo "github.com/carepoint/clinic-scheduler/internal/infra/repository"
	"github.com/carepoint/clinic-scheduler/internal/middleware"
	"github.com/carepoint/clinic-scheduler/internal/payments"
	ucAppointment "github.com/carepoint/clinic-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	var repo domain.Repository = infraRepo.NewAppointmentGormRepository(db)

	if cfg.RedisFallbackEnabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		repo = infraRepo.NewFallbackRepository(repo, rdb)
	}

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	paymentSvc := payments.NewService()

	// ======================================================
	// USE CASES (APPOINTMENTS)
	// ======================================================
	bookUC := ucAppointment.NewBookAppointment(repo, paymentSvc, auditDispatcher)
	adminCreateUC := ucAppointment.NewAdminCreateAppointment(repo, auditDispatcher)
	updateUC := ucAppointment.NewUpdateAppointment(repo, auditDispatcher)
	updateStatusUC := ucAppointment.NewUpdateStatus(repo, auditDispatcher)
	deleteUC := ucAppointment.NewDeleteAppointment(repo, auditDispatcher)
	listUC := ucAppointment.NewListAppointments(repo)
	availabilityUC := ucAppointment.NewGetAvailability(repo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		adminCreateUC,
		updateUC,
		updateStatusUC,
		deleteUC,
		listUC,
		availabilityUC,
	)

	directoryHandler := handlers.NewDirectoryHandler(repo)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

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
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments/patient/:id", appointmentHandler.ListByPatient)
			secured.GET("/appointments/doctor/:id", appointmentHandler.ListByDoctor)
			secured.GET("/appointments/doctor/:id/availability", appointmentHandler.Availability)
			secured.POST("/appointments/book", appointmentHandler.Book)
			secured.PUT("/appointments/:id/status", appointmentHandler.UpdateStatus)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole(middleware.RoleAdmin))
			{
				admin.GET("/doctors", directoryHandler.ListDoctors)
				admin.GET("/patients", directoryHandler.ListPatients)

				admin.POST("/appointments", appointmentHandler.AdminCreate)
				admin.PUT("/appointments/:id", appointmentHandler.Update)
				admin.DELETE("/appointments/:id", appointmentHandler.Delete)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
