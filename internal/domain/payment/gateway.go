package payment

import "context"

// PaymentGateway 決済ゲートウェイのポート
// ベンダーAPIとのワイヤー変換はインフラ層の実装が担い、
// 利用側は正規化済みのエンティティとドメインエラーのみを扱う
type PaymentGateway interface {
	// CreatePayment 決済を作成する
	// ベンダーが決済オブジェクトを返さない場合はErrPaymentFailed、
	// 構造化エラーを返した場合は*GatewayErrorを返す
	CreatePayment(ctx context.Context, req *CreatePaymentRequest) (*Payment, error)

	// GetPayment 決済を取得する
	// 存在しない場合はErrPaymentNotFoundを返す
	GetPayment(ctx context.Context, paymentID string) (*Payment, error)

	// RefundPayment 返金を作成し、返金IDを返す
	// ベンダーが返金オブジェクトを返さない場合はErrRefundFailedを返す
	RefundPayment(ctx context.Context, req *RefundRequest) (string, error)
}
