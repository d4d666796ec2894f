package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	paymentapp "lords-payments/internal/application/payment"
	"lords-payments/internal/domain/money"
	"lords-payments/internal/domain/payment"
)

// PaymentHandler 決済関連ハンドラー
type PaymentHandler struct {
	paymentService *paymentapp.PaymentApplicationService
}

// NewPaymentHandler 新しいPaymentHandlerを作成
func NewPaymentHandler(paymentService *paymentapp.PaymentApplicationService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// CreatePayment 決済作成ハンドラー
// チェックアウトフォームとの契約上、失敗もこのハンドラー自身が
// {success:false, error}形式で応答する（エラーミドルウェアには渡さない）
// @Summary 決済を作成
// @Description カードトークンから決済を作成します
// @Tags payment
// @Accept json
// @Produce json
// @Param request body CreatePaymentRequest true "決済作成リクエスト"
// @Success 200 {object} CreatePaymentResponse "決済成功"
// @Failure 400 {object} CreatePaymentResponse "検証エラー"
// @Failure 502 {object} CreatePaymentResponse "ベンダーエラー"
// @Router /payments/square [post]
func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	var reqBody CreatePaymentRequest
	if err := c.Bind(&reqBody); err != nil {
		return c.JSON(http.StatusBadRequest, CreatePaymentResponse{
			Success: false,
			Error:   "invalid request body",
		})
	}

	req := &payment.CreatePaymentRequest{
		Amount:         reqBody.Amount,
		SourceID:       reqBody.SourceID,
		IdempotencyKey: reqBody.IdempotencyKey,
		Note:           reqBody.Description,
	}

	result, err := h.paymentService.CreatePayment(c.Request().Context(), req)
	if err != nil {
		status, message := createPaymentFailure(err)
		return c.JSON(status, CreatePaymentResponse{
			Success: false,
			Error:   message,
		})
	}

	return c.JSON(http.StatusOK, CreatePaymentResponse{
		Success:   true,
		PaymentID: result.ID(),
	})
}

// createPaymentFailure 決済作成エラーをHTTPステータスとユーザー向けメッセージに変換
func createPaymentFailure(err error) (int, string) {
	var gwErr *payment.GatewayError
	switch {
	case errors.Is(err, payment.ErrInvalidAmount),
		errors.Is(err, payment.ErrMissingSourceID),
		errors.Is(err, payment.ErrMissingIdempotencyKey):
		return http.StatusBadRequest, err.Error()
	case errors.As(err, &gwErr):
		if gwErr.Detail != "" {
			return http.StatusBadGateway, gwErr.Detail
		}
		return http.StatusBadGateway, "Payment failed"
	case errors.Is(err, payment.ErrPaymentFailed):
		return http.StatusBadGateway, "Payment failed"
	default:
		return http.StatusInternalServerError, "Unknown error occurred"
	}
}

// GetPayment 決済取得ハンドラー
// @Summary 決済を取得
// @Description 正規化済みの決済情報を取得します
// @Tags payment
// @Produce json
// @Param payment_id path string true "決済ID"
// @Success 200 {object} PaymentResponse "決済情報"
// @Failure 404 {object} middleware.ErrorResponse "決済が見つからない"
// @Router /payments/{payment_id} [get]
func (h *PaymentHandler) GetPayment(c echo.Context) error {
	paymentID := c.Param("payment_id")
	if paymentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "payment_id is required")
	}

	lookup := h.paymentService.GetPayment(c.Request().Context(), paymentID)
	if !lookup.Found {
		return payment.ErrPaymentNotFound
	}

	return c.JSON(http.StatusOK, toPaymentResponse(lookup.Payment))
}

// RefundPayment 返金ハンドラー
// 返金は常に結果オブジェクトとして応答し、失敗もHTTPエラーにはしない
// @Summary 決済を返金
// @Description 決済の返金を行います
// @Tags payment
// @Accept json
// @Produce json
// @Param payment_id path string true "決済ID"
// @Param request body RefundPaymentRequest true "返金リクエスト"
// @Success 200 {object} RefundPaymentResponse "返金結果"
// @Router /payments/{payment_id}/refund [post]
func (h *PaymentHandler) RefundPayment(c echo.Context) error {
	paymentID := c.Param("payment_id")
	if paymentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "payment_id is required")
	}

	var reqBody RefundPaymentRequest
	if err := c.Bind(&reqBody); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	result := h.paymentService.RefundPayment(c.Request().Context(), &paymentapp.RefundCommand{
		PaymentID: paymentID,
		Amount:    reqBody.Amount,
		Reason:    reqBody.Reason,
	})

	return c.JSON(http.StatusOK, RefundPaymentResponse{
		Success:  result.Success(),
		RefundID: result.RefundID(),
		Error:    result.ErrorMessage(),
	})
}

// toPaymentResponse 決済エンティティをレスポンスモデルに変換
func toPaymentResponse(p *payment.Payment) PaymentResponse {
	resp := PaymentResponse{
		ID:         p.ID(),
		Amount:     p.Amount(),
		Currency:   p.Currency(),
		Status:     p.Status().String(),
		StatusText: p.Status().DisplayText(),
		SourceType: p.SourceType(),
		CreatedAt:  p.CreatedAt().UTC().Format(time.RFC3339),
		UpdatedAt:  p.UpdatedAt().UTC().Format(time.RFC3339),
	}

	// 表示用フォーマットはポンド建てのみ
	if p.Currency() == "GBP" {
		resp.FormattedAmount = money.FormatAmount(p.Amount())
	}

	if card := p.CardSummary(); card != nil {
		resp.Card = &CardSummaryResponse{
			Brand:    card.Brand(),
			Last4:    card.Last4(),
			ExpMonth: card.ExpMonth(),
			ExpYear:  card.ExpYear(),
		}
	}

	return resp
}
