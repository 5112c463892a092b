package http

import (
	"time"

	"github.com/gin-gonic/gin"

	appsvc "doubtconnect/internal/app"
	"doubtconnect/internal/bootstrap"
	"doubtconnect/internal/mail"
	"doubtconnect/internal/pkg/jwtutil"
	"doubtconnect/internal/platform/rabbitmq"
	"doubtconnect/internal/repository"
	"doubtconnect/internal/tokenstore"
	"doubtconnect/internal/transport/http/handler"
	"doubtconnect/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	healthHandler := handler.NewHealthHandler(app)
	router.GET("/healthz", healthHandler.Check)

	userRepo := repository.NewUserRepository(app.MySQL)
	tokens := tokenstore.New(
		app.Redis,
		time.Duration(app.Config.Verify.TokenTTLHours)*time.Hour,
		time.Duration(app.Config.Verify.ResendCooldownS)*time.Second,
	)
	mailer := mail.New(app.Config.Mail)
	events := rabbitmq.NewEventPublisher(app.MQConn, app.Config.RabbitMQ.AuthEventQueue)

	authService := appsvc.NewAuthService(
		userRepo,
		tokens,
		mailer,
		events,
		appsvc.AuthConfig{
			JWTSecret:       app.Config.Auth.JWTSecret,
			JWTExpiry:       time.Duration(app.Config.Auth.JWTExpireMinute) * time.Minute,
			EmailDomain:     app.Config.Verify.EmailDomain,
			ExternalBaseURL: app.Config.Verify.ExternalBaseURL,
		},
		jwtutil.GenerateToken,
	)
	userService := appsvc.NewUserService(userRepo)

	authHandler := handler.NewAuthHandler(authService, userService)
	userHandler := handler.NewUserHandler(userService)

	gate := middleware.RequireAuth(app.Config.Auth.JWTSecret)

	authGroup := router.Group("/api/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/getuser", gate, authHandler.GetUser)
	authGroup.GET("/confirmation/:email/:token", authHandler.Confirm)
	authGroup.POST("/resendtoken", authHandler.ResendToken)

	userGroup := router.Group("/api/user")
	userGroup.Use(gate)
	userGroup.GET("/id/:id", userHandler.GetByID)
	userGroup.GET("/username/:username", userHandler.GetByUsername)
	userGroup.PUT("/settings", userHandler.UpdateSettings)

	return router
}
