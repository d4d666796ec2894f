package otel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric/noop"
)

func TestNewMetrics(t *testing.T) {
	// Noopメータープロバイダーを使用
	mp := noop.NewMeterProvider()
	otel.SetMeterProvider(mp)

	metrics, err := NewMetrics("test-meter")
	require.NoError(t, err)
	assert.NotNil(t, metrics)

	assert.NotNil(t, metrics.PaymentCount)
	assert.NotNil(t, metrics.PaymentAmount)
	assert.NotNil(t, metrics.RefundCount)
	assert.NotNil(t, metrics.WebhookEventCount)
	assert.NotNil(t, metrics.RequestCount)
	assert.NotNil(t, metrics.ResponseTime)
	assert.NotNil(t, metrics.ErrorCount)
}

func TestMetrics_RecordPayment(t *testing.T) {
	mp := noop.NewMeterProvider()
	otel.SetMeterProvider(mp)

	metrics, err := NewMetrics("test-meter")
	require.NoError(t, err)

	ctx := context.Background()

	// 決済を記録してもエラーが発生しないことを確認
	metrics.RecordPayment(ctx, "completed", "CARD", 2500)
}

func TestMetrics_RecordRefund(t *testing.T) {
	mp := noop.NewMeterProvider()
	otel.SetMeterProvider(mp)

	metrics, err := NewMetrics("test-meter")
	require.NoError(t, err)

	ctx := context.Background()

	metrics.RecordRefund(ctx, true)
	metrics.RecordRefund(ctx, false)
}

func TestMetrics_RecordWebhookEvent(t *testing.T) {
	mp := noop.NewMeterProvider()
	otel.SetMeterProvider(mp)

	metrics, err := NewMetrics("test-meter")
	require.NoError(t, err)

	ctx := context.Background()

	metrics.RecordWebhookEvent(ctx, "payment.updated", true)
	metrics.RecordWebhookEvent(ctx, "unknown", false)
}

func TestMetrics_RecordRequest(t *testing.T) {
	mp := noop.NewMeterProvider()
	otel.SetMeterProvider(mp)

	metrics, err := NewMetrics("test-meter")
	require.NoError(t, err)

	ctx := context.Background()

	metrics.RecordRequest(ctx, "POST", "/api/payments/square", 200)
	metrics.RecordResponseTime(ctx, "POST", "/api/payments/square", 0.12)
	metrics.RecordError(ctx, "payment_failed")
}
