package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/prepdesk/payment-service/internal/pkg/logger"
	"github.com/prepdesk/payment-service/internal/pkg/middleware"
	"github.com/prepdesk/payment-service/internal/pkg/models"
	"github.com/prepdesk/payment-service/services/payment"
)

// PaymentHandler handles HTTP requests for payment operations
type PaymentHandler struct {
	paymentUC payment.PaymentUseCase
	logger    *logger.ZapLogger
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentUC payment.PaymentUseCase, l *logger.ZapLogger) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: paymentUC,
		logger:    l,
	}
}

// RegisterRoutes registers the payment API routes
func (h *PaymentHandler) RegisterRoutes(e *echo.Echo, jwtConfig models.JWTConfig, internalAPIKey string) {
	api := e.Group("/api/v1/payments")

	// Client routes (JWT authentication)
	authed := api.Group("")
	authed.Use(middleware.JWTAuthMiddleware(jwtConfig))
	authed.POST("/checkout", h.InitiateCheckout)
	authed.GET("/transactions/:txnid", h.GetTransaction)

	// Gateway callback routes. The gateway cannot carry our JWT; the hash
	// verification inside the usecase is the authentication.
	api.POST("/callback/success", h.HandleCallback)
	api.POST("/callback/failure", h.HandleCallback)

	// Service-to-service routes (API key authentication)
	internal := e.Group("/internal/payments")
	internal.Use(middleware.ValidateAPIKey(internalAPIKey))
	internal.GET("/stale", h.ListStaleInitiated)
}
