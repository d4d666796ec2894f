package customer

import (
	"time"
)

// Customer 顧客エンティティ
// アダプター呼び出しを通じてのみ作成・更新され、ローカルでの変更経路は持たない
type Customer struct {
	id           string
	givenName    string
	familyName   string
	emailAddress string
	phoneNumber  string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewCustomer 新しいCustomerエンティティを作成
// タイムスタンプの欠落値は現在時刻で補完する
func NewCustomer(
	id string,
	givenName string,
	familyName string,
	emailAddress string,
	phoneNumber string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Customer, error) {
	if id == "" {
		return nil, ErrInvalidCustomerID
	}
	now := time.Now()
	if createdAt.IsZero() {
		createdAt = now
	}
	if updatedAt.IsZero() {
		updatedAt = now
	}
	return &Customer{
		id:           id,
		givenName:    givenName,
		familyName:   familyName,
		emailAddress: emailAddress,
		phoneNumber:  phoneNumber,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

// MustNewCustomer テスト用ヘルパー: NewCustomerを呼び出し、エラーが発生した場合はpanicする
func MustNewCustomer(id, givenName, familyName, emailAddress, phoneNumber string, createdAt, updatedAt time.Time) *Customer {
	c, err := NewCustomer(id, givenName, familyName, emailAddress, phoneNumber, createdAt, updatedAt)
	if err != nil {
		panic(err)
	}
	return c
}

// ID 顧客IDを返す
func (c *Customer) ID() string { return c.id }

// GivenName 名を返す
func (c *Customer) GivenName() string { return c.givenName }

// FamilyName 姓を返す
func (c *Customer) FamilyName() string { return c.familyName }

// EmailAddress メールアドレスを返す
func (c *Customer) EmailAddress() string { return c.emailAddress }

// PhoneNumber 電話番号を返す
func (c *Customer) PhoneNumber() string { return c.phoneNumber }

// CreatedAt 作成日時を返す
func (c *Customer) CreatedAt() time.Time { return c.createdAt }

// UpdatedAt 更新日時を返す
func (c *Customer) UpdatedAt() time.Time { return c.updatedAt }
