package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/prepdesk/payment-service/internal/pkg/logger"
)

func newTestLogger(buf *bytes.Buffer) *logger.ZapLogger {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewDevelopmentConfig().EncoderConfig),
		zapcore.AddSync(buf),
		zapcore.DebugLevel,
	)
	return &logger.ZapLogger{Logger: zap.New(core)}
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		panicValue   interface{}
		expectInLogs []string
	}{
		{
			name:       "string panic",
			panicValue: "test panic message",
			expectInLogs: []string{
				"test panic message",
				"stack_trace",
				"Panic recovered during request processing",
			},
		},
		{
			name:       "error panic",
			panicValue: assert.AnError,
			expectInLogs: []string{
				"assert.AnError",
				"panic_type",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuffer bytes.Buffer
			zapLogger := newTestLogger(&logBuffer)

			e := echo.New()
			e.Use(PanicRecoveryMiddleware(zapLogger))
			e.GET("/panic", func(c echo.Context) error {
				panic(tt.panicValue)
			})

			req := httptest.NewRequest(http.MethodGet, "/panic", nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			for _, expected := range tt.expectInLogs {
				assert.Contains(t, logBuffer.String(), expected)
			}
		})
	}
}

func TestPanicRecoveryMiddlewareNoPanic(t *testing.T) {
	var logBuffer bytes.Buffer
	zapLogger := newTestLogger(&logBuffer)

	e := echo.New()
	e.Use(PanicRecoveryMiddleware(zapLogger))
	e.GET("/ok", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, logBuffer.String(), "Panic recovered")
}

func TestValidateAPIKey(t *testing.T) {
	e := echo.New()
	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}

	t.Run("valid key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(APIKeyHeader, "secret-key")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := ValidateAPIKey("secret-key")(handler)(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("wrong key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(APIKeyHeader, "wrong")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := ValidateAPIKey("secret-key")(handler)(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := ValidateAPIKey("secret-key")(handler)(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unconfigured key disables endpoint", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(APIKeyHeader, "anything")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := ValidateAPIKey("")(handler)(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
