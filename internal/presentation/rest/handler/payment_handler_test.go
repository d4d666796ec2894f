package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	paymentapp "lords-payments/internal/application/payment"
	"lords-payments/internal/domain/payment"
	otelinfra "lords-payments/internal/infrastructure/observability/otel"
	restmiddleware "lords-payments/internal/presentation/rest/middleware"
)

func newPaymentHandler(mockGateway *MockPaymentGateway) (*PaymentHandler, *otelinfra.Logger) {
	tracer := noop.NewTracerProvider().Tracer("test")
	logger := otelinfra.NewLogger(tracer)
	metrics, _ := otelinfra.NewMetrics("test")
	service := paymentapp.NewPaymentApplicationService(mockGateway, "GBP", logger, metrics)
	return NewPaymentHandler(service), logger
}

func paymentFixture() *payment.Payment {
	ts := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
	card := payment.NewCardSummary("VISA", "1111", 12, 2027)
	return payment.MustNewPayment("pay_123", 2500, "GBP", payment.PaymentStatusCompleted, "CARD", card, ts, ts)
}

func TestPaymentHandler_CreatePayment(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(*MockPaymentGateway)
		expectedStatus int
		checkFunc      func(*testing.T, CreatePaymentResponse)
	}{
		{
			name: "正常系: 決済成功",
			requestBody: map[string]interface{}{
				"sourceId":       "cnon:card-nonce-ok",
				"amount":         2500,
				"description":    "Tournament entry fee",
				"idempotencyKey": "idem-abc",
			},
			setupMocks: func(mg *MockPaymentGateway) {
				mg.On("CreatePayment", mock.Anything, mock.MatchedBy(func(req *payment.CreatePaymentRequest) bool {
					return req.SourceID == "cnon:card-nonce-ok" && req.IdempotencyKey == "idem-abc"
				})).Return(paymentFixture(), nil)
			},
			expectedStatus: http.StatusOK,
			checkFunc: func(t *testing.T, resp CreatePaymentResponse) {
				assert.True(t, resp.Success)
				assert.Equal(t, "pay_123", resp.PaymentID)
				assert.Empty(t, resp.Error)
			},
		},
		{
			name: "異常系: カード拒否はベンダーの詳細メッセージを返す",
			requestBody: map[string]interface{}{
				"sourceId":       "cnon:card-nonce-declined",
				"amount":         2500,
				"idempotencyKey": "idem-abc",
			},
			setupMocks: func(mg *MockPaymentGateway) {
				mg.On("CreatePayment", mock.Anything, mock.Anything).
					Return(nil, payment.NewGatewayError("PAYMENT_METHOD_ERROR", "GENERIC_DECLINE", "Card declined", 402))
			},
			expectedStatus: http.StatusBadGateway,
			checkFunc: func(t *testing.T, resp CreatePaymentResponse) {
				assert.False(t, resp.Success)
				assert.Equal(t, "Card declined", resp.Error)
				assert.Empty(t, resp.PaymentID)
			},
		},
		{
			name: "異常系: 金額が0は検証エラー",
			requestBody: map[string]interface{}{
				"sourceId":       "cnon:card-nonce-ok",
				"amount":         0,
				"idempotencyKey": "idem-abc",
			},
			setupMocks:     func(mg *MockPaymentGateway) {},
			expectedStatus: http.StatusBadRequest,
			checkFunc: func(t *testing.T, resp CreatePaymentResponse) {
				assert.False(t, resp.Success)
				assert.NotEmpty(t, resp.Error)
			},
		},
		{
			name: "異常系: 決済オブジェクト不在",
			requestBody: map[string]interface{}{
				"sourceId":       "cnon:card-nonce-ok",
				"amount":         2500,
				"idempotencyKey": "idem-abc",
			},
			setupMocks: func(mg *MockPaymentGateway) {
				mg.On("CreatePayment", mock.Anything, mock.Anything).Return(nil, payment.ErrPaymentFailed)
			},
			expectedStatus: http.StatusBadGateway,
			checkFunc: func(t *testing.T, resp CreatePaymentResponse) {
				assert.False(t, resp.Success)
				assert.Equal(t, "Payment failed", resp.Error)
			},
		},
		{
			name: "異常系: 予期しないエラーは汎用メッセージ",
			requestBody: map[string]interface{}{
				"sourceId":       "cnon:card-nonce-ok",
				"amount":         2500,
				"idempotencyKey": "idem-abc",
			},
			setupMocks: func(mg *MockPaymentGateway) {
				mg.On("CreatePayment", mock.Anything, mock.Anything).Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			checkFunc: func(t *testing.T, resp CreatePaymentResponse) {
				assert.False(t, resp.Success)
				assert.Equal(t, "Unknown error occurred", resp.Error)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			mockGateway := new(MockPaymentGateway)
			tt.setupMocks(mockGateway)
			handler, _ := newPaymentHandler(mockGateway)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/payments/square", bytes.NewReader(body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, handler.CreatePayment(c))
			assert.Equal(t, tt.expectedStatus, rec.Code)

			var resp CreatePaymentResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			tt.checkFunc(t, resp)
			mockGateway.AssertExpectations(t)
		})
	}
}

func TestPaymentHandler_GetPayment(t *testing.T) {
	t.Run("正常系: 正規化済み決済を返す", func(t *testing.T) {
		e := echo.New()
		mockGateway := new(MockPaymentGateway)
		mockGateway.On("GetPayment", mock.Anything, "pay_123").Return(paymentFixture(), nil)
		handler, _ := newPaymentHandler(mockGateway)

		req := httptest.NewRequest(http.MethodGet, "/payments/pay_123", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("payment_id")
		c.SetParamValues("pay_123")

		require.NoError(t, handler.GetPayment(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp PaymentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "pay_123", resp.ID)
		assert.Equal(t, int64(2500), resp.Amount)
		assert.Equal(t, "£25.00", resp.FormattedAmount)
		assert.Equal(t, "completed", resp.Status)
		assert.Equal(t, "Completed", resp.StatusText)
		require.NotNil(t, resp.Card)
		assert.Equal(t, "VISA", resp.Card.Brand)
		assert.Equal(t, "1111", resp.Card.Last4)
	})

	t.Run("異常系: 見つからない場合は404", func(t *testing.T) {
		e := echo.New()
		mockGateway := new(MockPaymentGateway)
		mockGateway.On("GetPayment", mock.Anything, "pay_404").Return(nil, payment.ErrPaymentNotFound)
		handler, logger := newPaymentHandler(mockGateway)

		req := httptest.NewRequest(http.MethodGet, "/payments/pay_404", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("payment_id")
		c.SetParamValues("pay_404")

		// エラーハンドリングミドルウェアを手動で実行
		middlewareFunc := restmiddleware.ErrorHandlerMiddleware(logger)
		handlerFunc := middlewareFunc(func(c echo.Context) error {
			return handler.GetPayment(c)
		})
		require.NoError(t, handlerFunc(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("異常系: 参照自体の失敗も404に畳み込まれる", func(t *testing.T) {
		e := echo.New()
		mockGateway := new(MockPaymentGateway)
		mockGateway.On("GetPayment", mock.Anything, "pay_123").
			Return(nil, payment.NewGatewayError("API_ERROR", "INTERNAL", "Service unavailable", 503))
		handler, logger := newPaymentHandler(mockGateway)

		req := httptest.NewRequest(http.MethodGet, "/payments/pay_123", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("payment_id")
		c.SetParamValues("pay_123")

		middlewareFunc := restmiddleware.ErrorHandlerMiddleware(logger)
		handlerFunc := middlewareFunc(func(c echo.Context) error {
			return handler.GetPayment(c)
		})
		require.NoError(t, handlerFunc(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestPaymentHandler_RefundPayment(t *testing.T) {
	t.Run("正常系: 返金成功", func(t *testing.T) {
		e := echo.New()
		mockGateway := new(MockPaymentGateway)
		mockGateway.On("RefundPayment", mock.Anything, mock.MatchedBy(func(req *payment.RefundRequest) bool {
			return req.PaymentID == "pay_123" && req.Amount == 2500
		})).Return("ref_1", nil)
		handler, _ := newPaymentHandler(mockGateway)

		body, _ := json.Marshal(map[string]interface{}{"amount": 2500, "reason": "duplicate"})
		req := httptest.NewRequest(http.MethodPost, "/payments/pay_123/refund", bytes.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("payment_id")
		c.SetParamValues("pay_123")

		require.NoError(t, handler.RefundPayment(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp RefundPaymentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "ref_1", resp.RefundID)
	})

	t.Run("異常系: 返金失敗も200の結果オブジェクトで返す", func(t *testing.T) {
		e := echo.New()
		mockGateway := new(MockPaymentGateway)
		mockGateway.On("RefundPayment", mock.Anything, mock.Anything).
			Return("", payment.NewGatewayError("REFUND_ERROR", "INSUFFICIENT_FUNDS", "Refund amount exceeds payment", 400))
		handler, _ := newPaymentHandler(mockGateway)

		body, _ := json.Marshal(map[string]interface{}{"amount": 99999})
		req := httptest.NewRequest(http.MethodPost, "/payments/pay_123/refund", bytes.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("payment_id")
		c.SetParamValues("pay_123")

		require.NoError(t, handler.RefundPayment(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp RefundPaymentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "Refund amount exceeds payment", resp.Error)
		assert.Empty(t, resp.RefundID)
	})
}
