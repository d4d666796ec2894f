package customer

import "context"

// CreateCustomerRequest 顧客作成リクエスト
// 全フィールドが任意（ベンダー側の仕様に合わせる）
type CreateCustomerRequest struct {
	GivenName    string
	FamilyName   string
	EmailAddress string
	PhoneNumber  string
}

// CreateSubscriptionRequest サブスクリプション作成リクエスト
// IdempotencyKeyはアダプター側が試行ごとに新規生成する
type CreateSubscriptionRequest struct {
	CustomerID     string
	PlanID         string
	IdempotencyKey string
}

// CustomerGateway 顧客管理のポート
type CustomerGateway interface {
	// CreateCustomer 顧客を作成する
	// ベンダーが顧客オブジェクトを返さない場合はErrCustomerCreationFailedを返す
	CreateCustomer(ctx context.Context, req *CreateCustomerRequest) (*Customer, error)

	// GetCustomer 顧客を取得する
	// 存在しない場合はErrCustomerNotFoundを返す
	GetCustomer(ctx context.Context, customerID string) (*Customer, error)

	// CreateSubscription サブスクリプションを作成し、サブスクリプションIDを返す
	CreateSubscription(ctx context.Context, req *CreateSubscriptionRequest) (string, error)
}
