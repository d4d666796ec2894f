package checkout

import "context"

// トークン化結果のステータス
const TokenStatusOK = "OK"

// TokenError トークン化時の検証エラー
type TokenError struct {
	Message string
}

// TokenResult トークン化操作の結果
// StatusがTokenStatusOK以外の場合、Errorsに検証メッセージが入る
type TokenResult struct {
	Status string
	Token  string
	Errors []TokenError
}

// OK トークン化が成功したかどうかを判定
func (r *TokenResult) OK() bool {
	return r.Status == TokenStatusOK
}

// FirstErrorMessage 最初の検証メッセージを返す
// メッセージがない場合は汎用メッセージを返す
func (r *TokenResult) FirstErrorMessage() string {
	if len(r.Errors) > 0 && r.Errors[0].Message != "" {
		return r.Errors[0].Message
	}
	return "Card validation failed"
}

// SDKLoader ベンダーSDKのロードとアンロードを行うケーパビリティ
type SDKLoader interface {
	Load(ctx context.Context) (PaymentsSDK, error)
	Unload() error
}

// PaymentsSDK ロード済みベンダーSDKが提供するウィジェット生成のケーパビリティ
type PaymentsSDK interface {
	Card(ctx context.Context) (CardWidget, error)
	CardButton(ctx context.Context) (PayButton, error)
}

// CardWidget カード入力ウィジェットのケーパビリティ
// フォームコントローラーが必要とする操作のみを公開する
type CardWidget interface {
	Attach(ctx context.Context, selector string) error
	Tokenize(ctx context.Context) (*TokenResult, error)
	Destroy() error
}

// PayButton ワンクリック決済ボタンのケーパビリティ
type PayButton interface {
	Attach(ctx context.Context, selector string) error
	Destroy() error
}
