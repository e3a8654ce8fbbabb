package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/andreamorim18/helpdesk/internal/audit"
	"github.com/andreamorim18/helpdesk/internal/avatar"
	"github.com/andreamorim18/helpdesk/internal/cache"
	"github.com/andreamorim18/helpdesk/internal/config"
	"github.com/andreamorim18/helpdesk/internal/handlers"
	infraRepo "github.com/andreamorim18/helpdesk/internal/infra/repository"
	"github.com/andreamorim18/helpdesk/internal/middleware"
	"github.com/andreamorim18/helpdesk/internal/models"
	"github.com/andreamorim18/helpdesk/internal/storage"
	ucCall "github.com/andreamorim18/helpdesk/internal/usecase/call"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, storageDriver storage.Driver) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	callRepo := infraRepo.NewCallGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	serviceCache := cache.NewServiceCache(cfg.RedisAddr, cfg.RedisPassword)
	avatarProcessor := avatar.NewProcessor(storageDriver)

	// ======================================================
	// USE CASES — CALLS
	// ======================================================
	createCallUC := ucCall.NewCreateCall(callRepo, auditDispatcher)
	listCallsUC := ucCall.NewListCalls(callRepo)
	getCallUC := ucCall.NewGetCall(callRepo)
	updateCallUC := ucCall.NewUpdateCall(callRepo, auditDispatcher)
	deleteCallUC := ucCall.NewDeleteCall(callRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db)
	serviceHandler := handlers.NewServiceHandler(db, serviceCache)
	uploadHandler := handlers.NewUploadHandler(db, avatarProcessor)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	callHandler := handlers.NewCallHandler(
		createCallUC,
		listCallsUC,
		getCallUC,
		updateCallUC,
		deleteCallUC,
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
		// SERVICES (public reads)
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/services/:id", serviceHandler.Get)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			// ------------------------------
			// USERS
			// ------------------------------
			secured.GET("/users/profile", userHandler.GetProfile)
			secured.PUT("/users/profile", userHandler.UpdateProfile)

			admin := secured.Group("/")
			admin.Use(middleware.RequireRoles(models.RoleAdmin))
			{
				admin.POST("/users/technicians", userHandler.CreateTechnician)
				admin.GET("/users/technicians", userHandler.ListTechnicians)
				admin.PUT("/users/technicians/:id", userHandler.UpdateTechnician)

				admin.GET("/users/clients", userHandler.ListClients)
				admin.PUT("/users/clients/:id", userHandler.UpdateClient)
				admin.DELETE("/users/clients/:id", userHandler.DeleteClient)

				admin.POST("/services", serviceHandler.Create)
				admin.PUT("/services/:id", serviceHandler.Update)
				admin.PATCH("/services/:id/deactivate", serviceHandler.Deactivate)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}

			// ------------------------------
			// CALLS
			// ------------------------------
			secured.POST("/calls", middleware.RequireRoles(models.RoleClient), callHandler.Create)
			secured.GET("/calls", callHandler.List)
			secured.GET("/calls/:id", callHandler.Get)
			secured.PUT("/calls/:id", callHandler.Update)
			secured.DELETE("/calls/:id", callHandler.Delete)

			// ------------------------------
			// UPLOAD
			// ------------------------------
			secured.POST("/upload/avatar", uploadHandler.UploadAvatar)
			secured.DELETE("/upload/avatar", uploadHandler.DeleteAvatar)
		}
	}
}
