package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics メトリクス定義
type Metrics struct {
	// 決済数
	PaymentCount metric.Int64Counter

	// 決済金額（最小通貨単位）
	PaymentAmount metric.Int64Histogram

	// 返金数
	RefundCount metric.Int64Counter

	// Webhookイベント数
	WebhookEventCount metric.Int64Counter

	// リクエスト数
	RequestCount metric.Int64Counter

	// レスポンス時間
	ResponseTime metric.Float64Histogram

	// エラー率
	ErrorCount metric.Int64Counter
}

// NewMetrics 新しいMetricsを作成
func NewMetrics(meterName string) (*Metrics, error) {
	meter := otel.Meter(meterName)

	paymentCount, err := meter.Int64Counter(
		"payments_total",
		metric.WithDescription("Total number of payments"),
	)
	if err != nil {
		return nil, err
	}

	paymentAmount, err := meter.Int64Histogram(
		"payment_amount_minor_units",
		metric.WithDescription("Payment amount in minor currency units"),
	)
	if err != nil {
		return nil, err
	}

	refundCount, err := meter.Int64Counter(
		"refunds_total",
		metric.WithDescription("Total number of refunds"),
	)
	if err != nil {
		return nil, err
	}

	webhookEventCount, err := meter.Int64Counter(
		"webhook_events_total",
		metric.WithDescription("Total number of webhook events"),
	)
	if err != nil {
		return nil, err
	}

	requestCount, err := meter.Int64Counter(
		"requests_total",
		metric.WithDescription("Total number of requests"),
	)
	if err != nil {
		return nil, err
	}

	responseTime, err := meter.Float64Histogram(
		"response_time_seconds",
		metric.WithDescription("Response time in seconds"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		"errors_total",
		metric.WithDescription("Total number of errors"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		PaymentCount:      paymentCount,
		PaymentAmount:     paymentAmount,
		RefundCount:       refundCount,
		WebhookEventCount: webhookEventCount,
		RequestCount:      requestCount,
		ResponseTime:      responseTime,
		ErrorCount:        errorCount,
	}, nil
}

// RecordPayment 決済を記録
func (m *Metrics) RecordPayment(ctx context.Context, status, sourceType string, amount int64) {
	attrs := metric.WithAttributes(
		attribute.String("status", status),
		attribute.String("source_type", sourceType),
	)
	m.PaymentCount.Add(ctx, 1, attrs)
	m.PaymentAmount.Record(ctx, amount, attrs)
}

// RecordRefund 返金を記録
func (m *Metrics) RecordRefund(ctx context.Context, success bool) {
	m.RefundCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.Bool("success", success),
		),
	)
}

// RecordWebhookEvent Webhookイベントを記録
func (m *Metrics) RecordWebhookEvent(ctx context.Context, eventType string, valid bool) {
	m.WebhookEventCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("event_type", eventType),
			attribute.Bool("valid", valid),
		),
	)
}

// RecordRequest リクエストを記録
func (m *Metrics) RecordRequest(ctx context.Context, method, path string, statusCode int) {
	m.RequestCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("method", method),
			attribute.String("path", path),
			attribute.Int("status_code", statusCode),
		),
	)
}

// RecordResponseTime レスポンス時間を記録
func (m *Metrics) RecordResponseTime(ctx context.Context, method, path string, seconds float64) {
	m.ResponseTime.Record(ctx, seconds,
		metric.WithAttributes(
			attribute.String("method", method),
			attribute.String("path", path),
		),
	)
}

// RecordError エラーを記録
func (m *Metrics) RecordError(ctx context.Context, errorType string) {
	m.ErrorCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("error_type", errorType),
		),
	)
}
