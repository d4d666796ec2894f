package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"lords-payments/internal/domain/customer"
	"lords-payments/internal/domain/money"
	"lords-payments/internal/domain/payment"
	otelinfra "lords-payments/internal/infrastructure/observability/otel"
)

// ErrorResponse エラーレスポンス
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ErrorHandlerMiddleware エラーハンドリングミドルウェア
func ErrorHandlerMiddleware(logger *otelinfra.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err == nil {
				return nil
			}

			// エラーハンドリング
			return handleError(c, err, logger)
		}
	}
}

// handleError エラーを処理して適切なHTTPレスポンスを返す
func handleError(c echo.Context, err error, logger *otelinfra.Logger) error {
	ctx := c.Request().Context()

	// ドメインエラーの判定と処理
	if errors.Is(err, payment.ErrInvalidAmount) || errors.Is(err, money.ErrInvalidAmountString) {
		logger.Warn(ctx, "Invalid amount", map[string]interface{}{
			"error": err.Error(),
		})
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_amount",
			Message: err.Error(),
		})
	}

	if errors.Is(err, payment.ErrMissingSourceID) {
		logger.Warn(ctx, "Missing source id", map[string]interface{}{
			"error": err.Error(),
		})
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "missing_source_id",
			Message: err.Error(),
		})
	}

	if errors.Is(err, payment.ErrMissingIdempotencyKey) {
		logger.Warn(ctx, "Missing idempotency key", map[string]interface{}{
			"error": err.Error(),
		})
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "missing_idempotency_key",
			Message: err.Error(),
		})
	}

	if errors.Is(err, payment.ErrPaymentNotFound) {
		logger.Warn(ctx, "Payment not found", map[string]interface{}{
			"error": err.Error(),
		})
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "payment_not_found",
			Message: err.Error(),
		})
	}

	if errors.Is(err, customer.ErrCustomerNotFound) {
		logger.Warn(ctx, "Customer not found", map[string]interface{}{
			"error": err.Error(),
		})
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "customer_not_found",
			Message: err.Error(),
		})
	}

	if errors.Is(err, customer.ErrCustomerCreationFailed) {
		logger.Warn(ctx, "Customer creation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return c.JSON(http.StatusBadGateway, ErrorResponse{
			Error:   "customer_creation_failed",
			Message: err.Error(),
		})
	}

	if errors.Is(err, customer.ErrSubscriptionFailed) {
		logger.Warn(ctx, "Subscription creation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return c.JSON(http.StatusBadGateway, ErrorResponse{
			Error:   "subscription_failed",
			Message: err.Error(),
		})
	}

	// ベンダーの構造化エラー
	var gwErr *payment.GatewayError
	if errors.As(err, &gwErr) {
		logger.Warn(ctx, "Payment gateway error", map[string]interface{}{
			"category": gwErr.Category,
			"code":     gwErr.Code,
			"detail":   gwErr.Detail,
		})
		return c.JSON(http.StatusBadGateway, ErrorResponse{
			Error:   "payment_gateway_error",
			Message: gwErr.Error(),
			Code:    gwErr.Code,
		})
	}

	if errors.Is(err, payment.ErrPaymentFailed) || errors.Is(err, payment.ErrRefundFailed) {
		logger.Warn(ctx, "Payment operation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return c.JSON(http.StatusBadGateway, ErrorResponse{
			Error:   "payment_failed",
			Message: err.Error(),
		})
	}

	// EchoのHTTPエラー
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		logger.Warn(ctx, "HTTP error", map[string]interface{}{
			"status_code": httpErr.Code,
			"message":     httpErr.Message,
		})
		message := ""
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		} else {
			message = http.StatusText(httpErr.Code)
		}
		return c.JSON(httpErr.Code, ErrorResponse{
			Error:   http.StatusText(httpErr.Code),
			Message: message,
		})
	}

	// 予期しないエラー
	logger.Error(ctx, "Internal server error", err, map[string]interface{}{
		"path": c.Request().URL.Path,
	})
	return c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_server_error",
		Message: "An unexpected error occurred",
	})
}
