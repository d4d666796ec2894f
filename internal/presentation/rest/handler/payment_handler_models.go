package handler

// CreatePaymentRequest 決済作成リクエスト
// フィールド名はチェックアウトフォームとの契約に合わせてcamelCase
// @Description 決済作成リクエスト
type CreatePaymentRequest struct {
	SourceID       string `json:"sourceId" example:"cnon:card-nonce-ok"`
	Amount         int64  `json:"amount" example:"2500"`
	Description    string `json:"description" example:"Tournament entry fee"`
	IdempotencyKey string `json:"idempotencyKey" example:"4f227007-5f76-4f3f-a0d4-6f4f7d3a0b6e"`
}

// CreatePaymentResponse 決済作成レスポンス
// @Description 決済作成レスポンス
type CreatePaymentResponse struct {
	Success   bool   `json:"success"`
	PaymentID string `json:"paymentId,omitempty" example:"pay_123"`
	Error     string `json:"error,omitempty" example:"Card declined"`
}

// CardSummaryResponse カード情報の要約
// @Description カード情報の要約
type CardSummaryResponse struct {
	Brand    string `json:"brand" example:"VISA"`
	Last4    string `json:"last4" example:"1111"`
	ExpMonth int    `json:"expMonth" example:"12"`
	ExpYear  int    `json:"expYear" example:"2027"`
}

// PaymentResponse 正規化済み決済レスポンス
// @Description 正規化済み決済レスポンス
type PaymentResponse struct {
	ID              string               `json:"id" example:"pay_123"`
	Amount          int64                `json:"amount" example:"2500"`
	FormattedAmount string               `json:"formattedAmount,omitempty" example:"£25.00"`
	Currency        string               `json:"currency" example:"GBP"`
	Status          string               `json:"status" example:"completed"`
	StatusText      string               `json:"statusText" example:"Completed"`
	SourceType      string               `json:"sourceType" example:"CARD"`
	Card            *CardSummaryResponse `json:"card,omitempty"`
	CreatedAt       string               `json:"createdAt" example:"2025-01-15T10:30:00Z"`
	UpdatedAt       string               `json:"updatedAt" example:"2025-01-15T10:30:00Z"`
}

// RefundPaymentRequest 返金リクエスト
// @Description 返金リクエスト
type RefundPaymentRequest struct {
	Amount int64  `json:"amount" example:"2500"`
	Reason string `json:"reason" example:"Tournament cancellation"`
}

// RefundPaymentResponse 返金レスポンス
// @Description 返金レスポンス
type RefundPaymentResponse struct {
	Success  bool   `json:"success"`
	RefundID string `json:"refundId,omitempty" example:"ref_123"`
	Error    string `json:"error,omitempty" example:"Refund failed"`
}
