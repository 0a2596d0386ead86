package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/prepdesk/payment-service/internal/pkg/config"
	"github.com/prepdesk/payment-service/internal/pkg/database"
	"github.com/prepdesk/payment-service/internal/pkg/health"
	"github.com/prepdesk/payment-service/internal/pkg/logger"
	"github.com/prepdesk/payment-service/internal/pkg/middleware"
	"github.com/prepdesk/payment-service/internal/pkg/nats"
	"github.com/prepdesk/payment-service/internal/pkg/server"
	"github.com/prepdesk/payment-service/services/payment/gateway"
	"github.com/prepdesk/payment-service/services/payment/handler"
	"github.com/prepdesk/payment-service/services/payment/repository"
	"github.com/prepdesk/payment-service/services/payment/usecase"
)

func main() {
	appName := "payment-service"
	configPath := "config/payment.env"
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// A misconfigured merchant key or salt must fail startup, not silently
	// produce unverifiable hashes
	if err := config.ValidateGateway(configs.Gateway); err != nil {
		zapLogger.Fatal("Invalid gateway configuration", logger.Err(err))
	}

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS client
	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Initialize repository
	paymentRepo := repository.NewPaymentRepository(postgresClient.GetDB(), redisClient)

	// Initialize gateway
	paymentGW := gateway.NewPaymentGW(natsClient, zapLogger)

	// Initialize usecase
	paymentUC := usecase.NewPaymentUC(configs, paymentRepo, paymentGW, zapLogger)

	// Initialize handlers
	paymentHandler := handler.NewPaymentHandler(paymentUC, zapLogger)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	paymentHandler.RegisterRoutes(e, configs.JWT, configs.Internal.APIKey)

	// Register cleanup for external connections
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		natsClient.Close()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return postgresClient.Close()
	})

	// Start server, blocking until a shutdown signal arrives
	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	gracefulServer := server.NewGracefulServer(e, zapLogger, configs.Server.Port, shutdownTimeout)
	if err := gracefulServer.Start(); err != nil {
		zapLogger.Error("Server shutdown error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdownManager.Shutdown(ctx); err != nil {
		zapLogger.Error("Component shutdown error", logger.Err(err))
	}
}
