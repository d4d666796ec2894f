package checkout

// FormState 決済フォームの状態を表す値オブジェクト
type FormState string

const (
	// FormStateUninitialized 未初期化
	FormStateUninitialized FormState = "uninitialized"
	// FormStateLoading SDKロード中
	FormStateLoading FormState = "loading"
	// FormStateReady 入力受付可能
	FormStateReady FormState = "ready"
	// FormStateSubmitting 送信中
	FormStateSubmitting FormState = "submitting"
	// FormStateSucceeded 決済成功（このマウントでは終端）
	FormStateSucceeded FormState = "succeeded"
	// FormStateFailed 初期化失敗（このマウントでは終端）
	FormStateFailed FormState = "failed"
)

// NewFormState 文字列からFormStateを作成
func NewFormState(value string) FormState {
	return FormState(value)
}

// String 文字列表現を返す
func (s FormState) String() string {
	return string(s)
}

// Valid 有効な状態かどうかを判定
func (s FormState) Valid() bool {
	switch s {
	case FormStateUninitialized, FormStateLoading, FormStateReady,
		FormStateSubmitting, FormStateSucceeded, FormStateFailed:
		return true
	}
	return false
}

// IsTerminal このマウントにおける終端状態かどうかを判定
// 再マウントは所有者側の責務であり、状態機械自身は復帰しない
func (s FormState) IsTerminal() bool {
	return s == FormStateSucceeded || s == FormStateFailed
}

// CanSubmit 送信を開始できる状態かどうかを判定
func (s FormState) CanSubmit() bool {
	return s == FormStateReady
}
