package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrAlreadyMounted マウント済みのフォームを再度マウントしたエラー
	ErrAlreadyMounted = errors.New("form already mounted")
	// ErrNotReady 送信可能な状態でないエラー
	ErrNotReady = errors.New("form is not ready to submit")
	// ErrFormClosed クローズ済みのフォームを操作したエラー
	ErrFormClosed = errors.New("form is closed")
)

const (
	defaultCardSelector   = "#card-container"
	defaultButtonSelector = "#card-button"
	defaultRequestTimeout = 30 * time.Second
)

// FormConfig フォームコントローラーの設定
type FormConfig struct {
	// Endpoint 決済リクエストの送信先
	Endpoint string
	// Amount 決済金額（最小通貨単位）
	Amount int64
	// Description 決済の説明
	Description string
	// CardSelector カードウィジェットのマウント先
	CardSelector string
	// ButtonSelector 決済ボタンのマウント先
	ButtonSelector string
	// HTTPClient 省略時はタイムアウト付きのデフォルトクライアント
	HTTPClient *http.Client
}

// Callbacks フォーム所有者へ結果を通知するコールバック
type Callbacks struct {
	// OnSuccess 決済成功時に決済IDを受け取る
	OnSuccess func(paymentID string)
	// OnError 失敗時にユーザー向けメッセージを受け取る
	OnError func(message string)
}

type paymentRequestBody struct {
	SourceID       string `json:"sourceId"`
	Amount         int64  `json:"amount"`
	Description    string `json:"description"`
	IdempotencyKey string `json:"idempotencyKey"`
}

type paymentResponseBody struct {
	Success   bool   `json:"success"`
	PaymentID string `json:"paymentId,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Form 決済フォームの状態機械
// ベンダーSDKをケーパビリティ経由で操作し、トークン化とバックエンド送信を調停する
// 全ての状態遷移はミューテックスで保護され、二重送信は開始時点で排除される
type Form struct {
	loader     SDKLoader
	config     FormConfig
	callbacks  Callbacks
	httpClient *http.Client

	mu     sync.Mutex
	state  FormState
	sdk    PaymentsSDK
	card   CardWidget
	button PayButton
	cancel context.CancelFunc
	closed bool
}

// NewForm 新しいFormを作成
func NewForm(loader SDKLoader, config FormConfig, callbacks Callbacks) *Form {
	if config.CardSelector == "" {
		config.CardSelector = defaultCardSelector
	}
	if config.ButtonSelector == "" {
		config.ButtonSelector = defaultButtonSelector
	}
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultRequestTimeout}
	}
	return &Form{
		loader:     loader,
		config:     config,
		callbacks:  callbacks,
		httpClient: httpClient,
		state:      FormStateUninitialized,
	}
}

// State 現在の状態を返す
func (f *Form) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Mount SDKをロードしてウィジェットを取り付ける
// カードウィジェットと決済ボタンの両方が取り付けられて初めてReadyになる
// 失敗時はFailedに遷移しエラーコールバックを呼ぶ。自動リトライはしない
func (f *Form) Mount(ctx context.Context) error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return ErrFormClosed
	}
	if f.state != FormStateUninitialized {
		f.mu.Unlock()
		return ErrAlreadyMounted
	}
	f.state = FormStateLoading
	f.mu.Unlock()

	sdk, err := f.loader.Load(ctx)
	if err != nil {
		return f.failMount(fmt.Errorf("failed to load payments SDK: %w", err))
	}

	card, err := sdk.Card(ctx)
	if err != nil {
		return f.failMount(fmt.Errorf("failed to create card widget: %w", err))
	}
	if err := card.Attach(ctx, f.config.CardSelector); err != nil {
		return f.failMount(fmt.Errorf("failed to attach card widget: %w", err))
	}

	button, err := sdk.CardButton(ctx)
	if err != nil {
		return f.failMount(fmt.Errorf("failed to create pay button: %w", err))
	}
	if err := button.Attach(ctx, f.config.ButtonSelector); err != nil {
		return f.failMount(fmt.Errorf("failed to attach pay button: %w", err))
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrFormClosed
	}
	f.sdk = sdk
	f.card = card
	f.button = button
	f.state = FormStateReady
	return nil
}

func (f *Form) failMount(err error) error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return ErrFormClosed
	}
	f.state = FormStateFailed
	onError := f.callbacks.OnError
	f.mu.Unlock()

	if onError != nil {
		onError(err.Error())
	}
	return err
}

// Submit カード入力をトークン化しバックエンドへ送信する
// Ready状態からのみ開始でき、開始と同時にSubmittingへ遷移して二重送信を防ぐ
// トークン化の検証エラーは回復可能としてReadyへ戻る
// 論理的に新しい試行のたびに新規UUIDの冪等性キーを生成する
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return ErrFormClosed
	}
	if !f.state.CanSubmit() {
		f.mu.Unlock()
		return ErrNotReady
	}
	f.state = FormStateSubmitting
	card := f.card
	ctx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	f.mu.Unlock()
	defer cancel()

	result, err := card.Tokenize(ctx)
	if err != nil {
		f.settle(FormStateReady, "", fmt.Sprintf("Tokenization failed: %v", err))
		return nil
	}
	if !result.OK() {
		f.settle(FormStateReady, "", result.FirstErrorMessage())
		return nil
	}

	response, err := f.postPayment(ctx, result.Token)
	if err != nil {
		f.settle(FormStateReady, "", fmt.Sprintf("Payment request failed: %v", err))
		return nil
	}
	if !response.Success {
		message := response.Error
		if message == "" {
			message = "Payment failed"
		}
		f.settle(FormStateReady, "", message)
		return nil
	}

	f.settle(FormStateSucceeded, response.PaymentID, "")
	return nil
}

// settle 送信試行の結果を確定しコールバックを呼ぶ
// クローズ済みの場合は状態遷移もコールバックも行わない
func (f *Form) settle(next FormState, paymentID, errorMessage string) {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	f.state = next
	f.cancel = nil
	onSuccess := f.callbacks.OnSuccess
	onError := f.callbacks.OnError
	f.mu.Unlock()

	if next == FormStateSucceeded {
		if onSuccess != nil {
			onSuccess(paymentID)
		}
		return
	}
	if errorMessage != "" && onError != nil {
		onError(errorMessage)
	}
}

func (f *Form) postPayment(ctx context.Context, token string) (*paymentResponseBody, error) {
	body := &paymentRequestBody{
		SourceID:       token,
		Amount:         f.config.Amount,
		Description:    f.config.Description,
		IdempotencyKey: uuid.NewString(),
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.config.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var response paymentResponseBody
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// 非2xxは本文のsuccess値に関わらず失敗として扱う
		response.Success = false
	}
	return &response, nil
}

// Close フォームを破棄する
// 送信中のリクエストをキャンセルし、以降の遅延コールバックを抑止する
// ウィジェットを破棄しSDKをアンロードする
func (f *Form) Close() error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil
	}
	f.closed = true
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	card := f.card
	button := f.button
	f.card = nil
	f.button = nil
	f.sdk = nil
	f.mu.Unlock()

	var errs []error
	if card != nil {
		if err := card.Destroy(); err != nil {
			errs = append(errs, err)
		}
	}
	if button != nil {
		if err := button.Destroy(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := f.loader.Unload(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
