package square

// Square APIのワイヤー形式
// https://developer.squareup.com/reference/square の決済・返金・顧客・サブスクリプションAPIに対応

// moneyPayload 金額
type moneyPayload struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// cardPayload カード情報
type cardPayload struct {
	CardBrand string `json:"card_brand,omitempty"`
	Last4     string `json:"last_4,omitempty"`
	ExpMonth  int    `json:"exp_month,omitempty"`
	ExpYear   int    `json:"exp_year,omitempty"`
}

// cardDetailsPayload カード決済の詳細
type cardDetailsPayload struct {
	Status string       `json:"status,omitempty"`
	Card   *cardPayload `json:"card,omitempty"`
}

// paymentPayload 決済オブジェクト
type paymentPayload struct {
	ID          string              `json:"id"`
	Status      string              `json:"status,omitempty"`
	SourceType  string              `json:"source_type,omitempty"`
	AmountMoney *moneyPayload       `json:"amount_money,omitempty"`
	CardDetails *cardDetailsPayload `json:"card_details,omitempty"`
	CreatedAt   string              `json:"created_at,omitempty"`
	UpdatedAt   string              `json:"updated_at,omitempty"`
}

// errorPayload 構造化エラー
type errorPayload struct {
	Category string `json:"category,omitempty"`
	Code     string `json:"code,omitempty"`
	Detail   string `json:"detail,omitempty"`
	Field    string `json:"field,omitempty"`
}

// errorEnvelope エラーレスポンス
type errorEnvelope struct {
	Errors []errorPayload `json:"errors,omitempty"`
}

// createPaymentRequestPayload 決済作成リクエスト
type createPaymentRequestPayload struct {
	SourceID          string        `json:"source_id"`
	IdempotencyKey    string        `json:"idempotency_key"`
	AmountMoney       *moneyPayload `json:"amount_money"`
	Note              string        `json:"note,omitempty"`
	ReferenceID       string        `json:"reference_id,omitempty"`
	BuyerEmailAddress string        `json:"buyer_email_address,omitempty"`
}

// paymentEnvelope 決済レスポンス
type paymentEnvelope struct {
	Payment *paymentPayload `json:"payment,omitempty"`
	Errors  []errorPayload  `json:"errors,omitempty"`
}

// refundPayload 返金オブジェクト
type refundPayload struct {
	ID        string        `json:"id"`
	Status    string        `json:"status,omitempty"`
	PaymentID string        `json:"payment_id,omitempty"`
	Amount    *moneyPayload `json:"amount_money,omitempty"`
}

// refundRequestPayload 返金リクエスト
type refundRequestPayload struct {
	IdempotencyKey string        `json:"idempotency_key"`
	AmountMoney    *moneyPayload `json:"amount_money"`
	PaymentID      string        `json:"payment_id"`
	Reason         string        `json:"reason,omitempty"`
}

// refundEnvelope 返金レスポンス
type refundEnvelope struct {
	Refund *refundPayload `json:"refund,omitempty"`
	Errors []errorPayload `json:"errors,omitempty"`
}

// customerPayload 顧客オブジェクト
type customerPayload struct {
	ID           string `json:"id"`
	GivenName    string `json:"given_name,omitempty"`
	FamilyName   string `json:"family_name,omitempty"`
	EmailAddress string `json:"email_address,omitempty"`
	PhoneNumber  string `json:"phone_number,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
	UpdatedAt    string `json:"updated_at,omitempty"`
}

// createCustomerRequestPayload 顧客作成リクエスト
type createCustomerRequestPayload struct {
	GivenName    string `json:"given_name,omitempty"`
	FamilyName   string `json:"family_name,omitempty"`
	EmailAddress string `json:"email_address,omitempty"`
	PhoneNumber  string `json:"phone_number,omitempty"`
}

// customerEnvelope 顧客レスポンス
type customerEnvelope struct {
	Customer *customerPayload `json:"customer,omitempty"`
	Errors   []errorPayload   `json:"errors,omitempty"`
}

// subscriptionPayload サブスクリプションオブジェクト
type subscriptionPayload struct {
	ID         string `json:"id"`
	Status     string `json:"status,omitempty"`
	CustomerID string `json:"customer_id,omitempty"`
	PlanID     string `json:"plan_id,omitempty"`
}

// createSubscriptionRequestPayload サブスクリプション作成リクエスト
type createSubscriptionRequestPayload struct {
	IdempotencyKey string `json:"idempotency_key"`
	LocationID     string `json:"location_id"`
	CustomerID     string `json:"customer_id"`
	PlanID         string `json:"plan_id"`
}

// subscriptionEnvelope サブスクリプションレスポンス
type subscriptionEnvelope struct {
	Subscription *subscriptionPayload `json:"subscription,omitempty"`
	Errors       []errorPayload       `json:"errors,omitempty"`
}
