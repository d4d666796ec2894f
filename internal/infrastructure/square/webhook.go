package square

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// SignBody リクエストボディの生データに対するHMAC-SHA256署名をBase64エンコードで返す
func SignBody(body []byte, signatureKey string) string {
	mac := hmac.New(sha256.New, []byte(signatureKey))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// VerifyWebhookSignature Webhook署名を検証する
// リクエストボディの生データに対する署名を計算し、
// 署名ヘッダーの値と完全一致するかを返す
func VerifyWebhookSignature(body []byte, signature, signatureKey string) bool {
	expected := SignBody(body, signatureKey)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// SignatureVerifier 設定済みの署名キーを保持する検証器
// アプリケーション層へ注入して利用する
type SignatureVerifier struct {
	signatureKey string
}

// NewSignatureVerifier 新しいSignatureVerifierを作成
func NewSignatureVerifier(signatureKey string) *SignatureVerifier {
	return &SignatureVerifier{signatureKey: signatureKey}
}

// Verify 署名を検証する
func (v *SignatureVerifier) Verify(body []byte, signature string) bool {
	return VerifyWebhookSignature(body, signature, v.signatureKey)
}
