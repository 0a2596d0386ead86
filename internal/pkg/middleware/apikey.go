package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/prepdesk/payment-service/internal/utils"
)

const (
	APIKeyHeader = "X-API-Key"
)

// ValidateAPIKey middleware guards operator-facing endpoints. The expected
// key is injected from configuration; an empty configured key disables the
// endpoint entirely rather than leaving it open.
func ValidateAPIKey(expectedKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if expectedKey == "" {
				return utils.ErrorResponseHandler(c, http.StatusServiceUnavailable, "Internal API is not configured")
			}

			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "API key is required")
			}

			if subtle.ConstantTimeCompare([]byte(apiKey), []byte(expectedKey)) != 1 {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
			}

			return next(c)
		}
	}
}
