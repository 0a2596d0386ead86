package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/prepdesk/payment-service/internal/pkg/logger"
	"github.com/prepdesk/payment-service/internal/utils"
	"github.com/prepdesk/payment-service/services/payment"
)

const (
	defaultStaleAge   = 30 * time.Minute
	defaultStaleLimit = 100
	maxStaleLimit     = 1000
)

// GetTransaction handles transaction status polling requests
func (h *PaymentHandler) GetTransaction(c echo.Context) error {
	txnID := c.Param("txnid")
	if txnID == "" {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	txn, err := h.paymentUC.GetTransaction(c.Request().Context(), txnID)
	if err != nil {
		if errors.Is(err, payment.ErrTransactionNotFound) {
			return utils.NotFoundResponse(c, "Transaction not found")
		}

		h.logger.Error("Failed to retrieve transaction",
			logger.String("txn_id", txnID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to retrieve transaction")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction retrieved successfully", txn)
}

// ListStaleInitiated handles reconciliation requests for transactions that
// never received a callback
func (h *PaymentHandler) ListStaleInitiated(c echo.Context) error {
	olderThan := defaultStaleAge
	if raw := c.QueryParam("older_than_minutes"); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes <= 0 {
			return utils.BadRequestResponse(c, "Invalid older_than_minutes parameter")
		}
		olderThan = time.Duration(minutes) * time.Minute
	}

	limit := defaultStaleLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > maxStaleLimit {
			return utils.BadRequestResponse(c, "Invalid limit parameter")
		}
		limit = parsed
	}

	txns, err := h.paymentUC.ListStaleInitiated(c.Request().Context(), olderThan, limit)
	if err != nil {
		h.logger.Error("Failed to list stale transactions",
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list stale transactions")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Stale transactions retrieved successfully", txns)
}
