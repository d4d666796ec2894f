package webhook

import (
	"context"
	"encoding/json"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	otelinfra "lords-payments/internal/infrastructure/observability/otel"
)

var (
	// ErrInvalidSignature 署名検証に失敗したエラー
	ErrInvalidSignature = errors.New("invalid webhook signature")
	// ErrMalformedEvent イベントボディが解釈できないエラー
	ErrMalformedEvent = errors.New("malformed webhook event")
)

// SignatureVerifier Webhook署名検証のポート
type SignatureVerifier interface {
	Verify(body []byte, signature string) bool
}

// Event 検証済みのWebhookイベント
type Event struct {
	Type    string `json:"type"`
	EventID string `json:"event_id"`
}

// WebhookApplicationService Webhookアプリケーションサービス
// 署名検証を通過したイベントのみを受理し、記録する
type WebhookApplicationService struct {
	verifier SignatureVerifier
	logger   *otelinfra.Logger
	metrics  *otelinfra.Metrics
	tracer   trace.Tracer
}

// NewWebhookApplicationService 新しいWebhookApplicationServiceを作成
func NewWebhookApplicationService(
	verifier SignatureVerifier,
	logger *otelinfra.Logger,
	metrics *otelinfra.Metrics,
) *WebhookApplicationService {
	return &WebhookApplicationService{
		verifier: verifier,
		logger:   logger,
		metrics:  metrics,
		tracer:   otel.Tracer("webhook-service"),
	}
}

// HandleEvent Webhookイベントを処理する
// 署名が検証できない場合はErrInvalidSignatureを返し、ボディは一切解釈しない
func (s *WebhookApplicationService) HandleEvent(ctx context.Context, body []byte, signature string) (*Event, error) {
	ctx, span := s.tracer.Start(ctx, "WebhookApplicationService.HandleEvent")
	defer span.End()

	if !s.verifier.Verify(body, signature) {
		span.SetStatus(otelcodes.Error, "signature verification failed")
		s.logger.Warn(ctx, "Webhook signature verification failed", map[string]interface{}{
			"body_size": len(body),
		})
		s.metrics.RecordWebhookEvent(ctx, "unknown", false)
		return nil, ErrInvalidSignature
	}

	var event Event
	if err := json.Unmarshal(body, &event); err != nil {
		span.RecordError(err)
		s.metrics.RecordWebhookEvent(ctx, "unknown", true)
		return nil, ErrMalformedEvent
	}
	if event.Type == "" {
		s.metrics.RecordWebhookEvent(ctx, "unknown", true)
		return nil, ErrMalformedEvent
	}

	span.SetAttributes(
		attribute.String("webhook.event_type", event.Type),
		attribute.String("webhook.event_id", event.EventID),
	)
	s.metrics.RecordWebhookEvent(ctx, event.Type, true)

	s.logger.Info(ctx, "Webhook event received", map[string]interface{}{
		"event_type": event.Type,
		"event_id":   event.EventID,
	})

	return &event, nil
}
