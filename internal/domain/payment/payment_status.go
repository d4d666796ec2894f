package payment

import (
	"fmt"
	"strings"
)

// PaymentStatus 決済ステータスを表す値オブジェクト
type PaymentStatus string

const (
	PaymentStatusCreated   PaymentStatus = "created"   // 承認済み（未確定）
	PaymentStatusPending   PaymentStatus = "pending"   // 処理中
	PaymentStatusCompleted PaymentStatus = "completed" // 完了
	PaymentStatusFailed    PaymentStatus = "failed"    // 失敗
	PaymentStatusCanceled  PaymentStatus = "canceled"  // キャンセル
	PaymentStatusUnknown   PaymentStatus = "unknown"   // 不明
)

// NewPaymentStatus 新しいPaymentStatusを作成
func NewPaymentStatus(s string) (PaymentStatus, error) {
	switch s {
	case "created", "pending", "completed", "failed", "canceled", "unknown":
		return PaymentStatus(s), nil
	default:
		return "", fmt.Errorf("invalid payment status: %s", s)
	}
}

// NormalizePaymentStatus ベンダーのステータス文字列を正規化する
// 未知の値はエラーにせずunknownへ畳み込む
func NormalizePaymentStatus(vendorStatus string) PaymentStatus {
	switch strings.ToUpper(vendorStatus) {
	case "APPROVED":
		return PaymentStatusCreated
	case "PENDING":
		return PaymentStatusPending
	case "COMPLETED":
		return PaymentStatusCompleted
	case "FAILED":
		return PaymentStatusFailed
	case "CANCELED":
		return PaymentStatusCanceled
	default:
		return PaymentStatusUnknown
	}
}

// String 文字列表現を返す
func (ps PaymentStatus) String() string {
	return string(ps)
}

// Valid 有効な決済ステータスかどうかを返す
func (ps PaymentStatus) Valid() bool {
	switch ps {
	case PaymentStatusCreated, PaymentStatusPending, PaymentStatusCompleted,
		PaymentStatusFailed, PaymentStatusCanceled, PaymentStatusUnknown:
		return true
	default:
		return false
	}
}

// IsCompleted 完了状態かどうかを返す
func (ps PaymentStatus) IsCompleted() bool {
	return ps == PaymentStatusCompleted
}

// IsTerminal 終端状態かどうかを返す
func (ps PaymentStatus) IsTerminal() bool {
	switch ps {
	case PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusCanceled:
		return true
	default:
		return false
	}
}

// DisplayText 表示用テキストを返す
func (ps PaymentStatus) DisplayText() string {
	switch ps {
	case PaymentStatusCreated:
		return "Created"
	case PaymentStatusPending:
		return "Pending"
	case PaymentStatusCompleted:
		return "Completed"
	case PaymentStatusFailed:
		return "Failed"
	case PaymentStatusCanceled:
		return "Cancelled"
	default:
		return string(ps)
	}
}
