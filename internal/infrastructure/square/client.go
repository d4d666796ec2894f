package square

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"lords-payments/internal/domain/customer"
	"lords-payments/internal/domain/payment"
	"lords-payments/internal/infrastructure/config"
)

// Square APIのバージョンヘッダー
const apiVersion = "2025-01-23"

// Client Square APIクライアント
// payment.PaymentGatewayとcustomer.CustomerGatewayの実装
// プロセス全体のシングルトンではなく、明示的に構築して注入する
type Client struct {
	httpClient      *http.Client
	baseURL         string
	accessToken     string
	locationID      string
	defaultCurrency string
}

var (
	_ payment.PaymentGateway   = (*Client)(nil)
	_ customer.CustomerGateway = (*Client)(nil)
)

// NewClient 新しいClientを作成
// httpClientがnilの場合は設定のタイムアウト付きクライアントを使用
func NewClient(cfg *config.SquareConfig, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.RequestTimeout}
	}
	return &Client{
		httpClient:      httpClient,
		baseURL:         cfg.APIBaseURL(),
		accessToken:     cfg.AccessToken,
		locationID:      cfg.LocationID,
		defaultCurrency: cfg.DefaultCurrency,
	}
}

// CreatePayment 決済を作成する
// リクエストの冪等性キーは改変せずにそのまま転送する
func (c *Client) CreatePayment(ctx context.Context, req *payment.CreatePaymentRequest) (*payment.Payment, error) {
	currency := req.Currency
	if currency == "" {
		currency = c.defaultCurrency
	}

	body := &createPaymentRequestPayload{
		SourceID:       req.SourceID,
		IdempotencyKey: req.IdempotencyKey,
		AmountMoney: &moneyPayload{
			Amount:   req.Amount,
			Currency: currency,
		},
		Note:              req.Note,
		ReferenceID:       req.ReferenceID,
		BuyerEmailAddress: req.BuyerEmailAddress,
	}

	var envelope paymentEnvelope
	if err := c.do(ctx, http.MethodPost, "/v2/payments", body, &envelope); err != nil {
		return nil, err
	}

	if envelope.Payment == nil {
		return nil, payment.ErrPaymentFailed
	}

	return c.toPayment(envelope.Payment)
}

// GetPayment 決済を取得する
func (c *Client) GetPayment(ctx context.Context, paymentID string) (*payment.Payment, error) {
	var envelope paymentEnvelope
	if err := c.do(ctx, http.MethodGet, "/v2/payments/"+paymentID, nil, &envelope); err != nil {
		var gwErr *payment.GatewayError
		if errors.As(err, &gwErr) && gwErr.StatusCode == http.StatusNotFound {
			return nil, payment.ErrPaymentNotFound
		}
		return nil, err
	}

	if envelope.Payment == nil {
		return nil, payment.ErrPaymentNotFound
	}

	return c.toPayment(envelope.Payment)
}

// RefundPayment 返金を作成し、返金IDを返す
func (c *Client) RefundPayment(ctx context.Context, req *payment.RefundRequest) (string, error) {
	currency := req.Currency
	if currency == "" {
		currency = c.defaultCurrency
	}

	body := &refundRequestPayload{
		IdempotencyKey: req.IdempotencyKey,
		AmountMoney: &moneyPayload{
			Amount:   req.Amount,
			Currency: currency,
		},
		PaymentID: req.PaymentID,
		Reason:    req.Reason,
	}

	var envelope refundEnvelope
	if err := c.do(ctx, http.MethodPost, "/v2/refunds", body, &envelope); err != nil {
		return "", err
	}

	if envelope.Refund == nil {
		return "", payment.ErrRefundFailed
	}

	return envelope.Refund.ID, nil
}

// CreateCustomer 顧客を作成する
func (c *Client) CreateCustomer(ctx context.Context, req *customer.CreateCustomerRequest) (*customer.Customer, error) {
	body := &createCustomerRequestPayload{
		GivenName:    req.GivenName,
		FamilyName:   req.FamilyName,
		EmailAddress: req.EmailAddress,
		PhoneNumber:  req.PhoneNumber,
	}

	var envelope customerEnvelope
	if err := c.do(ctx, http.MethodPost, "/v2/customers", body, &envelope); err != nil {
		return nil, err
	}

	if envelope.Customer == nil {
		return nil, customer.ErrCustomerCreationFailed
	}

	return c.toCustomer(envelope.Customer)
}

// GetCustomer 顧客を取得する
func (c *Client) GetCustomer(ctx context.Context, customerID string) (*customer.Customer, error) {
	var envelope customerEnvelope
	if err := c.do(ctx, http.MethodGet, "/v2/customers/"+customerID, nil, &envelope); err != nil {
		var gwErr *payment.GatewayError
		if errors.As(err, &gwErr) && gwErr.StatusCode == http.StatusNotFound {
			return nil, customer.ErrCustomerNotFound
		}
		return nil, err
	}

	if envelope.Customer == nil {
		return nil, customer.ErrCustomerNotFound
	}

	return c.toCustomer(envelope.Customer)
}

// CreateSubscription サブスクリプションを作成し、サブスクリプションIDを返す
func (c *Client) CreateSubscription(ctx context.Context, req *customer.CreateSubscriptionRequest) (string, error) {
	body := &createSubscriptionRequestPayload{
		IdempotencyKey: req.IdempotencyKey,
		LocationID:     c.locationID,
		CustomerID:     req.CustomerID,
		PlanID:         req.PlanID,
	}

	var envelope subscriptionEnvelope
	if err := c.do(ctx, http.MethodPost, "/v2/subscriptions", body, &envelope); err != nil {
		return "", err
	}

	if envelope.Subscription == nil || envelope.Subscription.ID == "" {
		return "", customer.ErrSubscriptionFailed
	}

	return envelope.Subscription.ID, nil
}

// do Square APIへの1回のHTTP呼び出しを行う
// 2xx以外のレスポンスはベンダーの最初のエラー詳細を*payment.GatewayErrorとして返す
func (c *Client) do(ctx context.Context, method, path string, reqBody, respBody interface{}) error {
	var reader io.Reader
	if reqBody != nil {
		data, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Square-Version", apiVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("square request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var errEnvelope errorEnvelope
		_ = json.Unmarshal(data, &errEnvelope)
		if len(errEnvelope.Errors) > 0 {
			first := errEnvelope.Errors[0]
			return payment.NewGatewayError(first.Category, first.Code, first.Detail, resp.StatusCode)
		}
		return payment.NewGatewayError("", "", "", resp.StatusCode)
	}

	if respBody != nil {
		if err := json.Unmarshal(data, respBody); err != nil {
			return fmt.Errorf("failed to decode response body: %w", err)
		}
	}

	return nil
}

// toPayment ワイヤー形式を正規化済みエンティティに変換する
// 欠落した任意フィールドは定義済みのデフォルト値に置き換える
func (c *Client) toPayment(p *paymentPayload) (*payment.Payment, error) {
	amount := int64(0)
	currency := c.defaultCurrency
	if p.AmountMoney != nil {
		amount = p.AmountMoney.Amount
		if p.AmountMoney.Currency != "" {
			currency = p.AmountMoney.Currency
		}
	}

	var card *payment.CardSummary
	if p.CardDetails != nil && p.CardDetails.Card != nil {
		card = payment.NewCardSummary(
			p.CardDetails.Card.CardBrand,
			p.CardDetails.Card.Last4,
			p.CardDetails.Card.ExpMonth,
			p.CardDetails.Card.ExpYear,
		)
	}

	return payment.NewPayment(
		p.ID,
		amount,
		currency,
		payment.NormalizePaymentStatus(p.Status),
		p.SourceType,
		card,
		parseTimestamp(p.CreatedAt),
		parseTimestamp(p.UpdatedAt),
	)
}

// toCustomer ワイヤー形式を顧客エンティティに変換する
func (c *Client) toCustomer(p *customerPayload) (*customer.Customer, error) {
	return customer.NewCustomer(
		p.ID,
		p.GivenName,
		p.FamilyName,
		p.EmailAddress,
		p.PhoneNumber,
		parseTimestamp(p.CreatedAt),
		parseTimestamp(p.UpdatedAt),
	)
}

// parseTimestamp RFC3339タイムスタンプを解析する
// 解析できない場合はゼロ値を返し、エンティティ側のデフォルト補完に委ねる
func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
