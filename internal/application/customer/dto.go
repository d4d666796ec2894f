package customer

// CreateCustomerCommand 顧客作成コマンド
// 全フィールドが任意
type CreateCustomerCommand struct {
	GivenName    string
	FamilyName   string
	EmailAddress string
	PhoneNumber  string
}

// CreateSubscriptionCommand サブスクリプション作成コマンド
// 冪等性キーはサービス側が試行ごとに新規生成する
type CreateSubscriptionCommand struct {
	CustomerID string
	PlanID     string
}
