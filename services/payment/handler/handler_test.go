package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/prepdesk/payment-service/internal/pkg/logger"
	"github.com/prepdesk/payment-service/internal/pkg/models"
	"github.com/prepdesk/payment-service/services/payment"
	"github.com/prepdesk/payment-service/services/payment/mocks"
)

func newHandler(t *testing.T) (*PaymentHandler, *mocks.MockPaymentUseCase) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockPaymentUseCase(ctrl)
	h := NewPaymentHandler(mockUC, &logger.ZapLogger{Logger: zap.NewNop()})
	return h, mockUC
}

func TestInitiateCheckout_Created(t *testing.T) {
	h, mockUC := newHandler(t)

	e := echo.New()
	requestBody := `{
		"amount": "499.00",
		"planId": "plan_gold_12m",
		"teacherId": "teacher_8821",
		"teacherEmail": "asha@example.com",
		"teacherName": "Asha Verma",
		"teacherPhone": "+91 98765 43210"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/checkout", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().
		InitiateCheckout(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, r models.CheckoutRequest) (*models.CheckoutForm, error) {
			assert.Equal(t, "499.00", r.Amount)
			assert.Equal(t, "plan_gold_12m", r.PlanID)
			assert.Equal(t, "+91 98765 43210", r.TeacherPhone)
			return &models.CheckoutForm{
				Key:        "gtKFFx",
				TxnID:      "PDK_teach_1700000000000",
				Amount:     r.Amount,
				Hash:       "deadbeef",
				PaymentURL: "https://secure.payu.in/_payment",
			}, nil
		})

	err := h.InitiateCheckout(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])

	data, ok := response["data"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "PDK_teach_1700000000000", data["txnid"])
	assert.Equal(t, "deadbeef", data["hash"])
}

func TestInitiateCheckout_MissingField(t *testing.T) {
	h, mockUC := newHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/checkout", strings.NewReader(`{"amount": "499.00"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().
		InitiateCheckout(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: planId", payment.ErrMissingField))

	err := h.InitiateCheckout(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInitiateCheckout_Misconfigured(t *testing.T) {
	h, mockUC := newHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/checkout", strings.NewReader(`{"amount": "499.00"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().
		InitiateCheckout(gomock.Any(), gomock.Any()).
		Return(nil, payment.ErrServerMisconfigured)

	err := h.InitiateCheckout(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func callbackForm() url.Values {
	form := url.Values{}
	form.Set("status", "success")
	form.Set("txnid", "PDK_teach_1700000000000")
	form.Set("amount", "499.00")
	form.Set("productinfo", "PrepDesk Subscription")
	form.Set("firstname", "Asha")
	form.Set("email", "asha@example.com")
	form.Set("udf1", "plan_gold_12m")
	form.Set("udf2", "teacher_8821")
	form.Set("hash", "cafef00d")
	return form
}

func TestHandleCallback_AcksVerifiedDelivery(t *testing.T) {
	h, mockUC := newHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/callback/success",
		strings.NewReader(callbackForm().Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().
		HandleCallback(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, cb models.GatewayCallback) (*models.CallbackResult, error) {
			assert.Equal(t, "success", cb.Status)
			assert.Equal(t, "PDK_teach_1700000000000", cb.TxnID)
			assert.Equal(t, "cafef00d", cb.Hash)
			return &models.CallbackResult{
				TxnID:  cb.TxnID,
				Status: models.TransactionSuccess,
			}, nil
		})

	err := h.HandleCallback(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleCallback_AcksRejectedDelivery(t *testing.T) {
	h, mockUC := newHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/callback/success",
		strings.NewReader(callbackForm().Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().
		HandleCallback(gomock.Any(), gomock.Any()).
		Return(nil, payment.ErrHashMismatch)

	// A forged callback still gets a 200 so the response reveals nothing
	err := h.HandleCallback(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Callback received", response["message"])
	assert.NotContains(t, rec.Body.String(), "hash")
}

func TestGetTransaction_Found(t *testing.T) {
	h, mockUC := newHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/v1/payments/transactions/:txnid")
	c.SetParamNames("txnid")
	c.SetParamValues("PDK_teach_1700000000000")

	mockUC.EXPECT().
		GetTransaction(gomock.Any(), "PDK_teach_1700000000000").
		Return(&models.PaymentTransaction{
			TxnID:  "PDK_teach_1700000000000",
			Status: models.TransactionSuccess,
		}, nil)

	err := h.GetTransaction(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "success", data["status"])
}

func TestGetTransaction_NotFound(t *testing.T) {
	h, mockUC := newHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/v1/payments/transactions/:txnid")
	c.SetParamNames("txnid")
	c.SetParamValues("PDK_gone_1")

	mockUC.EXPECT().
		GetTransaction(gomock.Any(), "PDK_gone_1").
		Return(nil, payment.ErrTransactionNotFound)

	err := h.GetTransaction(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListStaleInitiated_Defaults(t *testing.T) {
	h, mockUC := newHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/internal/payments/stale", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().
		ListStaleInitiated(gomock.Any(), 30*time.Minute, 100).
		Return([]models.PaymentTransaction{}, nil)

	err := h.ListStaleInitiated(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListStaleInitiated_QueryParams(t *testing.T) {
	h, mockUC := newHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/internal/payments/stale?older_than_minutes=90&limit=10", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().
		ListStaleInitiated(gomock.Any(), 90*time.Minute, 10).
		Return([]models.PaymentTransaction{{TxnID: "PDK_teach_1"}}, nil)

	err := h.ListStaleInitiated(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListStaleInitiated_InvalidLimit(t *testing.T) {
	h, _ := newHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/internal/payments/stale?limit=9999", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.ListStaleInitiated(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
