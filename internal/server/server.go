package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/gigpay/gigpay-api/internal/chain"
	"github.com/gigpay/gigpay-api/internal/client/facilitator"
	"github.com/gigpay/gigpay-api/internal/config"
	"github.com/gigpay/gigpay-api/internal/database"
	"github.com/gigpay/gigpay-api/internal/handlers"
	"github.com/gigpay/gigpay-api/internal/logger"
	"github.com/gigpay/gigpay-api/internal/services"
)

// Handler Definitions
var (
	paymentHandler     *handlers.PaymentHandler
	gigHandler         *handlers.GigHandler
	applicationHandler *handlers.ApplicationHandler
	userHandler        *handlers.UserHandler

	chainClient *chain.Client
)

// InitializeHandlers wires the database, chain client, facilitator client and
// service layer, then builds the HTTP handlers.
func InitializeHandlers(cfg *config.Config) error {
	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		return err
	}

	chainClient, err = chain.NewClient(cfg.Chain, logger.Log)
	if err != nil {
		return err
	}

	facilitatorClient := facilitator.NewClient(cfg.Facilitator.BaseURL, cfg.Facilitator.APIKey)

	// Without a signing key the payment service sees no writer and fails
	// fast with "Wallet not connected".
	var writer chain.Writer
	if chainClient.HasSigner() {
		writer = chainClient
	}

	paymentService := services.NewPaymentService(
		chainClient,
		writer,
		facilitatorClient,
		cfg.Chain.SpenderContractAddress,
		services.NewStatusCell(),
	)

	commonServices := handlers.NewCommonServices(
		paymentService,
		services.NewGigService(db),
		services.NewApplicationService(db),
		services.NewUserService(db),
	)

	paymentHandler = handlers.NewPaymentHandler(commonServices)
	gigHandler = handlers.NewGigHandler(commonServices)
	applicationHandler = handlers.NewApplicationHandler(commonServices)
	userHandler = handlers.NewUserHandler(commonServices)

	return nil
}

// InitializeRoutes registers middleware and the API routes.
func InitializeRoutes(router *gin.Engine) {
	router.Use(configureCORS())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Payments
		payments := v1.Group("/payments")
		{
			payments.POST("", paymentHandler.ProcessPayment)
			payments.GET("/status", paymentHandler.GetStatus)
			payments.GET("/balance", paymentHandler.GetBalance)
			payments.GET("/transactions/:hash", paymentHandler.GetTransactionStatus)
		}

		// Gigs
		gigs := v1.Group("/gigs")
		{
			gigs.GET("", gigHandler.ListGigs)
			gigs.POST("", gigHandler.CreateGig)
			gigs.GET("/:id", gigHandler.GetGig)
		}

		// Users
		users := v1.Group("/users")
		{
			users.GET("/:farcaster_id", userHandler.GetProfile)
			users.PUT("/:farcaster_id", userHandler.SaveProfile)
			users.GET("/:farcaster_id/matches", gigHandler.MatchGigs)
			users.GET("/:farcaster_id/applications", applicationHandler.ListApplications)
		}

		// Applications
		apps := v1.Group("/applications")
		{
			apps.POST("", applicationHandler.CreateApplication)
			apps.GET("/:id", applicationHandler.GetApplication)
			apps.PATCH("/:id/status", applicationHandler.UpdateStatus)
		}
	}
}

// Shutdown releases long-lived connections.
func Shutdown() {
	if chainClient != nil {
		chainClient.Close()
	}
	logger.Info("Server resources released")
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		// Default to localhost if not set
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}
