package handler

// CreateCustomerRequest 顧客作成リクエスト
// @Description 顧客作成リクエスト
type CreateCustomerRequest struct {
	GivenName    string `json:"givenName" example:"Alice"`
	FamilyName   string `json:"familyName" example:"Smith"`
	EmailAddress string `json:"emailAddress" example:"alice@example.com"`
	PhoneNumber  string `json:"phoneNumber" example:"+447700900000"`
}

// CustomerResponse 顧客レスポンス
// @Description 顧客レスポンス
type CustomerResponse struct {
	ID           string `json:"id" example:"cus_123"`
	GivenName    string `json:"givenName,omitempty" example:"Alice"`
	FamilyName   string `json:"familyName,omitempty" example:"Smith"`
	EmailAddress string `json:"emailAddress,omitempty" example:"alice@example.com"`
	PhoneNumber  string `json:"phoneNumber,omitempty" example:"+447700900000"`
	CreatedAt    string `json:"createdAt" example:"2025-01-15T10:30:00Z"`
	UpdatedAt    string `json:"updatedAt" example:"2025-01-15T10:30:00Z"`
}

// CreateSubscriptionRequest サブスクリプション作成リクエスト
// @Description サブスクリプション作成リクエスト
type CreateSubscriptionRequest struct {
	PlanID string `json:"planId" example:"plan_monthly"`
}

// CreateSubscriptionResponse サブスクリプション作成レスポンス
// @Description サブスクリプション作成レスポンス
type CreateSubscriptionResponse struct {
	SubscriptionID string `json:"subscriptionId" example:"sub_123"`
}
