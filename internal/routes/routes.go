package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/shamsy/home-services-api/internal/config"
	"github.com/shamsy/home-services-api/internal/handlers"
	infraRepo "github.com/shamsy/home-services-api/internal/infra/repository"
	"github.com/shamsy/home-services-api/internal/middleware"
	"github.com/shamsy/home-services-api/internal/notify"
	ucIdentity "github.com/shamsy/home-services-api/internal/usecase/identity"
	ucRequest "github.com/shamsy/home-services-api/internal/usecase/request"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ------------------------------
	// Infra (singletons)
	// ------------------------------
	identityRepo := infraRepo.NewIdentityGormRepository(db)
	requestRepo := infraRepo.NewRequestGormRepository(db)

	telegram := notify.NewTelegramClient(cfg.TelegramBotToken, cfg.TelegramChatID)
	notifier := notify.NewDispatcher(telegram, cfg.Timezone)

	// ------------------------------
	// Use cases
	// ------------------------------
	registerUC := ucIdentity.NewRegister(identityRepo)
	loginUC := ucIdentity.NewLogin(identityRepo)
	logoutUC := ucIdentity.NewLogout(identityRepo)
	authenticateUC := ucIdentity.NewAuthenticate(identityRepo)

	createRequestUC := ucRequest.NewCreate(requestRepo, notifier)
	listRequestsUC := ucRequest.NewList(requestRepo)

	// ------------------------------
	// Handlers
	// ------------------------------
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, logoutUC)
	serviceHandler := handlers.NewServiceHandler(requestRepo)
	requestHandler := handlers.NewServiceRequestHandler(createRequestUC, listRequestsUC)

	authLimit := middleware.RateLimit(rdb, 10, time.Minute, "auth")

	// ------------------------------
	// Public
	// ------------------------------
	r.GET("/services", serviceHandler.List)
	r.GET("/services/:id", serviceHandler.Get)

	r.POST("/register", authLimit, authHandler.Register)
	r.POST("/login", authLimit, authHandler.Login)

	// ------------------------------
	// Authenticated
	// ------------------------------
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(authenticateUC))
	{
		secured.POST("/logout", authHandler.Logout)

		secured.POST("/service-requests", requestHandler.Create)
		secured.GET("/service-requests", requestHandler.List)
	}
}
