package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Teknetic/templink/internal/config"
	"github.com/Teknetic/templink/internal/handler"
	"github.com/Teknetic/templink/internal/mailer"
	"github.com/Teknetic/templink/internal/model"
	"github.com/Teknetic/templink/internal/mq"
	"github.com/Teknetic/templink/internal/repository"
	"github.com/Teknetic/templink/internal/service"
	"github.com/Teknetic/templink/internal/session"
	"github.com/Teknetic/templink/pkg/middleware"
	"github.com/Teknetic/templink/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// janitorInterval is how often expired links get swept
const janitorInterval = time.Minute

// @title TempLink API
// @version 1.0
// @description A temporary short link service with expiring, view-capped, password protected links

// @contact.name API Support
// @contact.url http://www.example.com/support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	setupLogger(cfg.Server.Mode)

	// Initialize repositories
	redisRepo := repository.NewRedisRepository(&cfg.Database.Redis)
	defer redisRepo.Close()

	mysqlRepo := repository.NewMySQLRepository(&cfg.Database.MySQL)
	defer mysqlRepo.Close()

	// Initialize MQ (optional, can be nil)
	var mqProducer *mq.Producer
	if cfg.RocketMQ.NameServer != "" {
		mqProducer, err = mq.NewProducer(&cfg.RocketMQ)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize RocketMQ producer, running without MQ")
		}
	}

	// Redemption events flow through the queue when available, otherwise
	// straight into MySQL
	var sink service.EventSink
	if mqProducer != nil {
		sink = mq.NewProducerEventSink(mqProducer)
	} else {
		sink = service.NewStoreEventSink(mysqlRepo)
	}

	// Initialize services
	hasher := util.NewBcryptHasher()
	signer := session.NewJWTSigner(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.SessionTTLHours)*time.Hour)
	notifier := mailer.NewMailer(cfg.Email, cfg.Server.BaseURL)

	bloomSvc := service.NewSlugBloomService(redisRepo.GetClient(), &cfg.Bloom)
	linkSvc := service.NewLinkService(mysqlRepo, redisRepo, bloomSvc, hasher, sink, cfg.Server.BaseURL)
	analyticsSvc := service.NewAnalyticsService(redisRepo)
	tokenSvc := service.NewTokenService(mysqlRepo)
	authSvc := service.NewAuthService(mysqlRepo, tokenSvc, hasher, signer, notifier, service.AuthConfig{
		MinPasswordLength: cfg.Auth.MinPasswordLength,
		VerificationTTL:   time.Duration(cfg.Auth.VerificationTTLMin) * time.Minute,
		ResetTTL:          time.Duration(cfg.Auth.ResetTTLMin) * time.Minute,
	})

	// Setup Gin
	gin.SetMode(cfg.Server.Mode)
	router := gin.New()

	// Middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(corsMiddleware())

	// HTML pages for the redirect path
	router.LoadHTMLGlob("templates/*")

	linkHandler := handler.NewLinkHandler(linkSvc, analyticsSvc)
	authHandler := handler.NewAuthHandler(authSvc)
	redirectHandler := handler.NewRedirectHandler(linkSvc, analyticsSvc)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Link creation works anonymously; a session attributes the link
		v1.POST("/links", middleware.OptionalAuth(signer), linkHandler.Create)
		v1.GET("/links/:slug/report", linkHandler.Report)
		v1.DELETE("/links/:slug", middleware.RequireAuth(signer), linkHandler.Deactivate)
		v1.GET("/analytics/:slug", linkHandler.Stats)

		// The cross-link listing is a paid dashboard feature
		v1.GET("/links/recent", middleware.RequireAuth(signer), middleware.RequirePlan(model.PlanPro), linkHandler.Recent)

		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			// GET so the link in the verification mail works directly
			auth.GET("/verify-email", authHandler.VerifyEmail)
			auth.POST("/forgot-password", authHandler.ForgotPassword)
			auth.POST("/reset-password", authHandler.ResetPassword)

			account := auth.Group("")
			account.Use(middleware.RequireAuth(signer))
			{
				account.GET("/me", authHandler.Me)
				account.GET("/stats", authHandler.Stats)
				account.POST("/verify-email/request", authHandler.RequestVerification)
				account.PUT("/password", authHandler.ChangePassword)
				account.PUT("/profile", authHandler.UpdateProfile)
				account.PUT("/plan", authHandler.UpdatePlan)
				account.DELETE("/account", authHandler.DeleteAccount)
			}
		}
	}

	// Redirect handler (slugs)
	router.GET("/:slug", redirectHandler.Redirect)

	// Swagger documentation
	setupSwagger(router)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Start MQ consumer if configured
	var mqConsumer *mq.Consumer
	if cfg.RocketMQ.NameServer != "" {
		mqConsumer, err = mq.NewConsumer(&cfg.RocketMQ, mq.NewPersistHandler(mysqlRepo))
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize RocketMQ consumer")
		} else {
			go func() {
				if err := mqConsumer.Subscribe(); err != nil {
					log.Error().Err(err).Msg("Failed to subscribe to RocketMQ")
				}
			}()
			defer mqConsumer.Close()
		}
	}

	// Sweep expired links in the background
	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	defer stopJanitor()
	go runJanitor(janitorCtx, mysqlRepo)

	// Start server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Msgf("Starting server on port %d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Close producer
	if mqProducer != nil {
		mqProducer.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// runJanitor periodically deactivates links past their expiration so the
// store converges even for links nobody redeems
func runJanitor(ctx context.Context, repo *repository.MySQLRepository) {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			swept, err := repo.DeactivateExpiredLinks(ctx)
			if err != nil {
				log.Error().Err(err).Msg("Failed to sweep expired links")
				continue
			}
			if swept > 0 {
				log.Info().Int64("count", swept).Msg("Deactivated expired links")
			}
		}
	}
}

// setupLogger configures the logger
func setupLogger(mode string) {
	if mode == "release" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// Use console writer for pretty output
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

// corsMiddleware adds CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// setupSwagger sets up Swagger UI
func setupSwagger(router *gin.Engine) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
