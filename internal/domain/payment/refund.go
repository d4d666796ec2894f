package payment

// RefundResult 返金結果
// 成功時はRefundIDのみ、失敗時はErrorMessageのみが設定される（排他）
type RefundResult struct {
	success      bool
	refundID     string
	errorMessage string
}

// NewRefundSuccess 成功の返金結果を作成
func NewRefundSuccess(refundID string) *RefundResult {
	return &RefundResult{
		success:  true,
		refundID: refundID,
	}
}

// NewRefundFailure 失敗の返金結果を作成
func NewRefundFailure(errorMessage string) *RefundResult {
	return &RefundResult{
		success:      false,
		errorMessage: errorMessage,
	}
}

// Success 返金が成功したかどうかを返す
func (r *RefundResult) Success() bool { return r.success }

// RefundID 返金IDを返す（成功時のみ）
func (r *RefundResult) RefundID() string { return r.refundID }

// ErrorMessage エラーメッセージを返す（失敗時のみ）
func (r *RefundResult) ErrorMessage() string { return r.errorMessage }
