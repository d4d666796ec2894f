package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	domain "lords-payments/internal/domain/payment"
	otelinfra "lords-payments/internal/infrastructure/observability/otel"
)

// 返金理由のデフォルト値
const defaultRefundReason = "Tournament cancellation"

// PaymentApplicationService 決済アプリケーションサービス
// ゲートウェイポートの呼び出しにトレーシング・ログ・メトリクスを付与し、
// 参照系のベストエフォート契約を実装する
type PaymentApplicationService struct {
	gateway         domain.PaymentGateway
	defaultCurrency string
	logger          *otelinfra.Logger
	metrics         *otelinfra.Metrics
	tracer          trace.Tracer
}

// NewPaymentApplicationService 新しいPaymentApplicationServiceを作成
func NewPaymentApplicationService(
	gateway domain.PaymentGateway,
	defaultCurrency string,
	logger *otelinfra.Logger,
	metrics *otelinfra.Metrics,
) *PaymentApplicationService {
	return &PaymentApplicationService{
		gateway:         gateway,
		defaultCurrency: defaultCurrency,
		logger:          logger,
		metrics:         metrics,
		tracer:          otel.Tracer("payment-service"),
	}
}

// CreatePayment 決済を作成する
// ベンダー呼び出しはちょうど1回。リトライは呼び出し元の責務であり、
// 同一の論理試行には同じ冪等性キーを渡すことでベンダー側の重複排除に委ねる
func (s *PaymentApplicationService) CreatePayment(ctx context.Context, req *domain.CreatePaymentRequest) (*domain.Payment, error) {
	ctx, span := s.tracer.Start(ctx, "PaymentApplicationService.CreatePayment")
	defer span.End()

	span.SetAttributes(
		attribute.Int64("payment.amount", req.Amount),
		attribute.String("payment.currency", req.Currency),
		attribute.String("payment.reference_id", req.ReferenceID),
	)

	if req.Currency == "" {
		req.Currency = s.defaultCurrency
	}

	if err := req.Validate(); err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, err
	}

	s.logger.Info(ctx, "Creating payment", map[string]interface{}{
		"amount":       req.Amount,
		"currency":     req.Currency,
		"reference_id": req.ReferenceID,
	})

	result, err := s.gateway.CreatePayment(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		s.logger.Error(ctx, "Failed to create payment", err, map[string]interface{}{
			"reference_id": req.ReferenceID,
		})
		s.metrics.RecordError(ctx, "payment_failed")
		return nil, err
	}

	span.SetAttributes(attribute.String("payment.id", result.ID()))
	s.metrics.RecordPayment(ctx, result.Status().String(), result.SourceType(), result.Amount())

	s.logger.Info(ctx, "Payment created", map[string]interface{}{
		"payment_id": result.ID(),
		"status":     result.Status().String(),
		"amount":     result.Amount(),
	})

	return result, nil
}

// GetPayment 決済を参照する
// ベストエフォート: いかなる失敗もエラーとして伝播せず、参照結果に畳み込む
// 失敗理由はログとトレースに残し、呼び出し元には見つからない扱いで返す
func (s *PaymentApplicationService) GetPayment(ctx context.Context, paymentID string) *PaymentLookup {
	ctx, span := s.tracer.Start(ctx, "PaymentApplicationService.GetPayment")
	defer span.End()

	span.SetAttributes(attribute.String("payment.id", paymentID))

	result, err := s.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		if errors.Is(err, domain.ErrPaymentNotFound) {
			return &PaymentLookup{Found: false}
		}
		span.RecordError(err)
		s.logger.Warn(ctx, "Payment lookup failed", map[string]interface{}{
			"payment_id": paymentID,
			"error":      err.Error(),
		})
		return &PaymentLookup{Found: false, FailureReason: err.Error()}
	}

	return &PaymentLookup{Payment: result, Found: true}
}

// RefundPayment 返金を行う
// エラーを送出せず、成功/失敗が排他的に設定された結果オブジェクトを返す
// 冪等性キーは試行ごとに新規生成されるため、同一返金の安全な再試行はできない
func (s *PaymentApplicationService) RefundPayment(ctx context.Context, cmd *RefundCommand) *domain.RefundResult {
	ctx, span := s.tracer.Start(ctx, "PaymentApplicationService.RefundPayment")
	defer span.End()

	span.SetAttributes(
		attribute.String("payment.id", cmd.PaymentID),
		attribute.Int64("refund.amount", cmd.Amount),
	)

	reason := cmd.Reason
	if reason == "" {
		reason = defaultRefundReason
	}

	req := &domain.RefundRequest{
		PaymentID:      cmd.PaymentID,
		Amount:         cmd.Amount,
		Currency:       s.defaultCurrency,
		Reason:         reason,
		IdempotencyKey: s.generateRefundIdempotencyKey(cmd.PaymentID),
	}

	refundID, err := s.gateway.RefundPayment(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		s.logger.Error(ctx, "Failed to refund payment", err, map[string]interface{}{
			"payment_id": cmd.PaymentID,
		})
		s.metrics.RecordRefund(ctx, false)

		var gwErr *domain.GatewayError
		switch {
		case errors.As(err, &gwErr) && gwErr.Detail != "":
			return domain.NewRefundFailure(gwErr.Detail)
		case errors.As(err, &gwErr):
			return domain.NewRefundFailure("Refund failed")
		case errors.Is(err, domain.ErrRefundFailed):
			return domain.NewRefundFailure("Refund creation failed")
		default:
			return domain.NewRefundFailure("Unknown error occurred")
		}
	}

	s.metrics.RecordRefund(ctx, true)
	s.logger.Info(ctx, "Payment refunded", map[string]interface{}{
		"payment_id": cmd.PaymentID,
		"refund_id":  refundID,
	})

	return domain.NewRefundSuccess(refundID)
}

// generateRefundIdempotencyKey 返金用の冪等性キーを生成
// 決済IDと現在時刻から試行ごとに異なるキーを生成する
func (s *PaymentApplicationService) generateRefundIdempotencyKey(paymentID string) string {
	return fmt.Sprintf("refund_%s_%d", paymentID, time.Now().UnixNano())
}
