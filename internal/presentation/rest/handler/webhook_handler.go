package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	webhookapp "lords-payments/internal/application/webhook"
)

// ベンダーが付与する署名ヘッダー
const webhookSignatureHeader = "x-square-hmacsha256-signature"

// WebhookHandler Webhook受信ハンドラー
type WebhookHandler struct {
	webhookService *webhookapp.WebhookApplicationService
}

// NewWebhookHandler 新しいWebhookHandlerを作成
func NewWebhookHandler(webhookService *webhookapp.WebhookApplicationService) *WebhookHandler {
	return &WebhookHandler{
		webhookService: webhookService,
	}
}

// WebhookResponse Webhook受信レスポンス
// @Description Webhook受信レスポンス
type WebhookResponse struct {
	Received bool   `json:"received"`
	EventID  string `json:"eventId,omitempty" example:"evt_123"`
}

// HandleWebhook Webhookイベント受信ハンドラー
// 署名検証は生のリクエストボディに対して行うため、バインドせずに読み取る
// @Summary Webhookイベントを受信
// @Description 署名検証済みのWebhookイベントを受理します
// @Tags webhook
// @Accept json
// @Produce json
// @Success 200 {object} WebhookResponse "受理"
// @Failure 401 {object} middleware.ErrorResponse "署名検証失敗"
// @Router /webhooks/square [post]
func (h *WebhookHandler) HandleWebhook(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to read request body")
	}

	signature := c.Request().Header.Get(webhookSignatureHeader)

	event, err := h.webhookService.HandleEvent(c.Request().Context(), body, signature)
	if err != nil {
		if errors.Is(err, webhookapp.ErrInvalidSignature) {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid webhook signature")
		}
		if errors.Is(err, webhookapp.ErrMalformedEvent) {
			return echo.NewHTTPError(http.StatusBadRequest, "malformed webhook event")
		}
		return err
	}

	return c.JSON(http.StatusOK, WebhookResponse{
		Received: true,
		EventID:  event.EventID,
	})
}
