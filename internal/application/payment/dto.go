package payment

import (
	domain "lords-payments/internal/domain/payment"
)

// PaymentLookup 決済参照の結果
// 参照系はエラーを外へ伝播させず、見つからない場合と参照自体が失敗した場合を
// タグ付きで区別して返す（失敗理由は診断用にのみ保持する）
type PaymentLookup struct {
	Payment       *domain.Payment
	Found         bool
	FailureReason string // 参照が失敗した場合の理由（単に存在しない場合は空）
}

// RefundCommand 返金コマンド
// 冪等性キーはサービス側が試行ごとに新規生成する
type RefundCommand struct {
	PaymentID string
	Amount    int64 // 最小通貨単位（整数値）
	Reason    string
}
