package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/pairui/mission-board/docs"
	"github.com/pairui/mission-board/internal/api/handler"
	"github.com/pairui/mission-board/internal/api/middleware"
	"github.com/pairui/mission-board/internal/core/service"
	mongodb "github.com/pairui/mission-board/internal/infrastructure/db/mongo"
	redisdb "github.com/pairui/mission-board/internal/infrastructure/db/redis"
	"github.com/pairui/mission-board/internal/infrastructure/queue"
	"github.com/pairui/mission-board/internal/pkg/config"
	"github.com/pairui/mission-board/pkg/logger"
)

const tokenTTL = 5 * 24 * time.Hour

// NewRouter builds the Echo instance with all routes registered and returns it
// together with the notification dispatcher, which the caller must Start.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client) (*echo.Echo, *queue.Dispatcher) {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("mission_board"))

	// --- Repositories ---
	missionRepo := mongodb.NewMissionRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	notificationRepo := mongodb.NewNotificationRepository(db)
	unreadCounter := redisdb.NewUnreadCounter(rdb)

	// --- Services ---
	notificationService := service.NewNotificationService(notificationRepo, unreadCounter, log)
	dispatcher := queue.NewDispatcher(cfg.NotificationWorkers, notificationService, log)
	ledger := service.NewLedgerService(userRepo, log)
	missionService := service.NewMissionService(missionRepo, userRepo, ledger, dispatcher, log)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, tokenTTL)
	userService := service.NewUserService(userRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	missionHandler := handler.NewMissionHandler(missionService)
	notificationHandler := handler.NewNotificationHandler(notificationService)

	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)

	// --- User routes ---
	users := e.Group("/api/users", authMiddleware)
	users.GET("/me", userHandler.Me)
	users.PUT("/me", userHandler.UpdateAccount)
	users.PUT("/me/role", userHandler.SelectRole)
	users.PUT("/me/profile", userHandler.UpdateProfile)
	users.GET("/:id", userHandler.Get)

	// --- Mission routes ---
	missions := e.Group("/api/missions", authMiddleware)
	missions.POST("", missionHandler.Create)
	missions.GET("", missionHandler.List)
	missions.GET("/:id", missionHandler.Get)
	missions.PUT("/:id", missionHandler.Update)
	missions.DELETE("/:id", missionHandler.Delete)
	missions.POST("/:id/apply", missionHandler.Apply)
	missions.PUT("/:id/applications/:applicationId", missionHandler.Respond)
	missions.PUT("/:id/submit", missionHandler.Submit)
	missions.PUT("/:id/revision", missionHandler.RequestRevision)
	missions.PUT("/:id/feedback", missionHandler.Feedback)

	// --- Notification routes ---
	notifications := e.Group("/api/notifications", authMiddleware)
	notifications.GET("", notificationHandler.List)
	notifications.DELETE("", notificationHandler.DeleteAll)
	notifications.GET("/unread-count", notificationHandler.UnreadCount)
	notifications.PUT("/:id/read", notificationHandler.MarkRead)
	notifications.PUT("/read/all", notificationHandler.MarkAllRead)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, dispatcher
}
