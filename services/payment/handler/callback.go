package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/prepdesk/payment-service/internal/pkg/logger"
	"github.com/prepdesk/payment-service/internal/pkg/models"
	"github.com/prepdesk/payment-service/internal/utils"
)

// HandleCallback processes a gateway redirect or webhook delivery. The
// response is always a generic acknowledgment: the gateway retries on
// non-2xx, and the response body must never reveal whether verification
// passed.
func (h *PaymentHandler) HandleCallback(c echo.Context) error {
	var cb models.GatewayCallback
	if err := c.Bind(&cb); err != nil {
		h.logger.Warn("Unparseable gateway callback",
			logger.Err(err))
		return utils.SuccessResponse(c, http.StatusOK, "Callback received", nil)
	}

	result, err := h.paymentUC.HandleCallback(c.Request().Context(), cb)
	if err != nil {
		h.logger.Warn("Gateway callback not honored",
			logger.String("txn_id", cb.TxnID),
			logger.Err(err))
		return utils.SuccessResponse(c, http.StatusOK, "Callback received", nil)
	}

	h.logger.Info("Gateway callback processed",
		logger.String("txn_id", result.TxnID),
		logger.String("status", string(result.Status)),
		logger.Bool("replayed", result.Replayed))

	return utils.SuccessResponse(c, http.StatusOK, "Callback received", nil)
}
