package customer

import "errors"

var (
	// ErrCustomerNotFound 顧客が見つからないエラー
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrInvalidCustomerID 顧客IDが無効
	ErrInvalidCustomerID = errors.New("invalid customer id")
	// ErrCustomerCreationFailed ベンダー呼び出しは成功したが顧客オブジェクトが返らなかったエラー
	ErrCustomerCreationFailed = errors.New("customer creation failed")
	// ErrSubscriptionFailed サブスクリプション作成に失敗したエラー
	ErrSubscriptionFailed = errors.New("subscription creation failed")
)
