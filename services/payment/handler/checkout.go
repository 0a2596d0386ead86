package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/prepdesk/payment-service/internal/pkg/logger"
	"github.com/prepdesk/payment-service/internal/pkg/models"
	"github.com/prepdesk/payment-service/internal/utils"
	"github.com/prepdesk/payment-service/services/payment"
)

// InitiateCheckout handles checkout initiation requests
func (h *PaymentHandler) InitiateCheckout(c echo.Context) error {
	var req models.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	form, err := h.paymentUC.InitiateCheckout(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, payment.ErrMissingField) {
			return utils.BadRequestResponse(c, err.Error())
		}
		if errors.Is(err, payment.ErrServerMisconfigured) {
			return utils.ErrorResponseHandler(c, http.StatusServiceUnavailable, "Payment service unavailable")
		}

		h.logger.Error("Failed to initiate checkout",
			logger.String("plan_id", req.PlanID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to initiate checkout")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Checkout initiated successfully", form)
}
