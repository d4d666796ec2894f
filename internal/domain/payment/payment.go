package payment

import (
	"time"
)

// CardSummary カード情報の要約
// 正規化決済に含まれる場合は全フィールドが設定される
type CardSummary struct {
	brand    string
	last4    string
	expMonth int
	expYear  int
}

// NewCardSummary 新しいCardSummaryを作成
func NewCardSummary(brand, last4 string, expMonth, expYear int) *CardSummary {
	if brand == "" {
		brand = "UNKNOWN"
	}
	return &CardSummary{
		brand:    brand,
		last4:    last4,
		expMonth: expMonth,
		expYear:  expYear,
	}
}

// Brand カードブランドを返す
func (cs *CardSummary) Brand() string { return cs.brand }

// Last4 カード番号下4桁を返す
func (cs *CardSummary) Last4() string { return cs.last4 }

// ExpMonth 有効期限（月）を返す
func (cs *CardSummary) ExpMonth() int { return cs.expMonth }

// ExpYear 有効期限（年）を返す
func (cs *CardSummary) ExpYear() int { return cs.expYear }

// Payment 正規化済み決済エンティティ
// ベンダーレスポンスの欠落フィールドは生成時にデフォルト値で補完されるため、
// 利用側は常に全フィールドが設定されている前提で扱える
type Payment struct {
	id          string
	amount      int64  // 最小通貨単位（整数値）
	currency    string // 通貨コード（例: "GBP"）
	status      PaymentStatus
	sourceType  string
	cardSummary *CardSummary // カード以外の決済手段ではnil
	createdAt   time.Time
	updatedAt   time.Time
}

// NewPayment 新しいPaymentエンティティを作成
// id以外の欠落値はデフォルトで補完する
func NewPayment(
	id string,
	amount int64,
	currency string,
	status PaymentStatus,
	sourceType string,
	cardSummary *CardSummary,
	createdAt time.Time,
	updatedAt time.Time,
) (*Payment, error) {
	if id == "" {
		return nil, ErrInvalidPaymentID
	}
	if !status.Valid() {
		status = PaymentStatusUnknown
	}
	if sourceType == "" {
		sourceType = "UNKNOWN"
	}
	now := time.Now()
	if createdAt.IsZero() {
		createdAt = now
	}
	if updatedAt.IsZero() {
		updatedAt = now
	}
	return &Payment{
		id:          id,
		amount:      amount,
		currency:    currency,
		status:      status,
		sourceType:  sourceType,
		cardSummary: cardSummary,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

// MustNewPayment テスト用ヘルパー: NewPaymentを呼び出し、エラーが発生した場合はpanicする
func MustNewPayment(
	id string,
	amount int64,
	currency string,
	status PaymentStatus,
	sourceType string,
	cardSummary *CardSummary,
	createdAt time.Time,
	updatedAt time.Time,
) *Payment {
	p, err := NewPayment(id, amount, currency, status, sourceType, cardSummary, createdAt, updatedAt)
	if err != nil {
		panic(err)
	}
	return p
}

// ID 決済IDを返す
func (p *Payment) ID() string { return p.id }

// Amount 決済金額（最小通貨単位）を返す
func (p *Payment) Amount() int64 { return p.amount }

// Currency 通貨コードを返す
func (p *Payment) Currency() string { return p.currency }

// Status 決済ステータスを返す
func (p *Payment) Status() PaymentStatus { return p.status }

// SourceType 決済手段の種別を返す
func (p *Payment) SourceType() string { return p.sourceType }

// CardSummary カード情報の要約を返す（カード以外はnil）
func (p *Payment) CardSummary() *CardSummary { return p.cardSummary }

// CreatedAt 作成日時を返す
func (p *Payment) CreatedAt() time.Time { return p.createdAt }

// UpdatedAt 更新日時を返す
func (p *Payment) UpdatedAt() time.Time { return p.updatedAt }
