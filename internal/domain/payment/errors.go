package payment

import (
	"errors"
	"fmt"
)

var (
	// ErrPaymentNotFound 決済が見つからないエラー
	ErrPaymentNotFound = errors.New("payment not found")
	// ErrPaymentFailed ベンダー呼び出しは成功したが決済オブジェクトが返らなかったエラー
	ErrPaymentFailed = errors.New("payment creation failed")
	// ErrInvalidPaymentID 決済IDが無効
	ErrInvalidPaymentID = errors.New("invalid payment id")
	// ErrInvalidAmount 金額が無効
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrMissingSourceID 決済ソーストークンが未指定
	ErrMissingSourceID = errors.New("source id is required")
	// ErrMissingIdempotencyKey 冪等性キーが未指定
	ErrMissingIdempotencyKey = errors.New("idempotency key is required")
	// ErrRefundFailed ベンダー呼び出しは成功したが返金オブジェクトが返らなかったエラー
	ErrRefundFailed = errors.New("refund creation failed")
)

// GatewayError ベンダーが構造化エラーを返した場合のエラー
// ベンダーの最初のエラー詳細を保持する
type GatewayError struct {
	Category   string
	Code       string
	Detail     string
	StatusCode int
}

// Error エラーメッセージを返す
func (e *GatewayError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("payment gateway error: %s", e.Detail)
	}
	return "payment gateway error: unknown error"
}

// NewGatewayError 新しいGatewayErrorを作成
func NewGatewayError(category, code, detail string, statusCode int) *GatewayError {
	return &GatewayError{
		Category:   category,
		Code:       code,
		Detail:     detail,
		StatusCode: statusCode,
	}
}
