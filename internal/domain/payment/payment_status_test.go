package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaymentStatus(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      PaymentStatus
		wantError bool
	}{
		{name: "正常系: created", input: "created", want: PaymentStatusCreated},
		{name: "正常系: pending", input: "pending", want: PaymentStatusPending},
		{name: "正常系: completed", input: "completed", want: PaymentStatusCompleted},
		{name: "正常系: failed", input: "failed", want: PaymentStatusFailed},
		{name: "正常系: canceled", input: "canceled", want: PaymentStatusCanceled},
		{name: "正常系: unknown", input: "unknown", want: PaymentStatusUnknown},
		{name: "異常系: 無効な値", input: "invalid", wantError: true},
		{name: "異常系: 空文字", input: "", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewPaymentStatus(tt.input)
			if tt.wantError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNormalizePaymentStatus(t *testing.T) {
	tests := []struct {
		name   string
		vendor string
		want   PaymentStatus
	}{
		{name: "正常系: COMPLETED", vendor: "COMPLETED", want: PaymentStatusCompleted},
		{name: "正常系: PENDING", vendor: "PENDING", want: PaymentStatusPending},
		{name: "正常系: APPROVED", vendor: "APPROVED", want: PaymentStatusCreated},
		{name: "正常系: CANCELED", vendor: "CANCELED", want: PaymentStatusCanceled},
		{name: "正常系: FAILED", vendor: "FAILED", want: PaymentStatusFailed},
		{name: "正常系: 小文字も受け付ける", vendor: "completed", want: PaymentStatusCompleted},
		{name: "正常系: 未知の値はunknown", vendor: "SOMETHING_NEW", want: PaymentStatusUnknown},
		{name: "正常系: 空文字はunknown", vendor: "", want: PaymentStatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePaymentStatus(tt.vendor))
		})
	}
}

func TestPaymentStatus_Valid(t *testing.T) {
	assert.True(t, PaymentStatusCompleted.Valid())
	assert.True(t, PaymentStatusUnknown.Valid())
	assert.False(t, PaymentStatus("bogus").Valid())
}

func TestPaymentStatus_IsCompleted(t *testing.T) {
	assert.True(t, PaymentStatusCompleted.IsCompleted())
	assert.False(t, PaymentStatusPending.IsCompleted())
}

func TestPaymentStatus_IsTerminal(t *testing.T) {
	assert.True(t, PaymentStatusCompleted.IsTerminal())
	assert.True(t, PaymentStatusFailed.IsTerminal())
	assert.True(t, PaymentStatusCanceled.IsTerminal())
	assert.False(t, PaymentStatusPending.IsTerminal())
	assert.False(t, PaymentStatusCreated.IsTerminal())
	assert.False(t, PaymentStatusUnknown.IsTerminal())
}

func TestPaymentStatus_DisplayText(t *testing.T) {
	tests := []struct {
		status PaymentStatus
		want   string
	}{
		{PaymentStatusCreated, "Created"},
		{PaymentStatusPending, "Pending"},
		{PaymentStatusCompleted, "Completed"},
		{PaymentStatusFailed, "Failed"},
		{PaymentStatusCanceled, "Cancelled"},
		{PaymentStatusUnknown, "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.status.DisplayText())
	}
}
