package payment

// CreatePaymentRequest 決済作成リクエスト
// IdempotencyKeyは呼び出し元が生成し、ベンダーへ改変せずに転送される
type CreatePaymentRequest struct {
	Amount            int64  // 最小通貨単位（整数値、0より大きい）
	Currency          string // 未指定の場合は設定のデフォルト通貨
	SourceID          string // ベンダー発行のワンタイムトークン
	IdempotencyKey    string
	Note              string
	ReferenceID       string
	BuyerEmailAddress string
}

// Validate リクエストの妥当性を検証する
func (r *CreatePaymentRequest) Validate() error {
	if r.Amount <= 0 {
		return ErrInvalidAmount
	}
	if r.SourceID == "" {
		return ErrMissingSourceID
	}
	if r.IdempotencyKey == "" {
		return ErrMissingIdempotencyKey
	}
	return nil
}

// RefundRequest 返金リクエスト
// IdempotencyKeyはアダプター側が試行ごとに新規生成する
type RefundRequest struct {
	PaymentID      string
	Amount         int64
	Currency       string
	Reason         string
	IdempotencyKey string
}
