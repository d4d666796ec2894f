package customer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	domain "lords-payments/internal/domain/customer"
	otelinfra "lords-payments/internal/infrastructure/observability/otel"
)

// MockCustomerGateway モック顧客ゲートウェイ
type MockCustomerGateway struct {
	mock.Mock
}

func (m *MockCustomerGateway) CreateCustomer(ctx context.Context, req *domain.CreateCustomerRequest) (*domain.Customer, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerGateway) GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerGateway) CreateSubscription(ctx context.Context, req *domain.CreateSubscriptionRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func newTestService(gateway *MockCustomerGateway) *CustomerApplicationService {
	tracer := noop.NewTracerProvider().Tracer("test")
	logger := otelinfra.NewLogger(tracer)
	metrics, _ := otelinfra.NewMetrics("test")
	return NewCustomerApplicationService(gateway, logger, metrics)
}

func testCustomer() *domain.Customer {
	ts := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
	return domain.MustNewCustomer("cus_1", "Alice", "Smith", "alice@example.com", "", ts, ts)
}

func TestCustomerApplicationService_CreateCustomer(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(*MockCustomerGateway)
		checkFunc  func(*testing.T, *domain.Customer)
	}{
		{
			name: "正常系: 顧客作成成功",
			setupMocks: func(mg *MockCustomerGateway) {
				mg.On("CreateCustomer", mock.Anything, mock.MatchedBy(func(req *domain.CreateCustomerRequest) bool {
					return req.EmailAddress == "alice@example.com"
				})).Return(testCustomer(), nil)
			},
			checkFunc: func(t *testing.T, c *domain.Customer) {
				require.NotNil(t, c)
				assert.Equal(t, "cus_1", c.ID())
			},
		},
		{
			name: "異常系: ゲートウェイ失敗時はエラーではなくnilを返す",
			setupMocks: func(mg *MockCustomerGateway) {
				mg.On("CreateCustomer", mock.Anything, mock.Anything).Return(nil, domain.ErrCustomerCreationFailed)
			},
			checkFunc: func(t *testing.T, c *domain.Customer) {
				assert.Nil(t, c)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockGateway := new(MockCustomerGateway)
			tt.setupMocks(mockGateway)
			service := newTestService(mockGateway)

			result := service.CreateCustomer(context.Background(), &CreateCustomerCommand{
				GivenName:    "Alice",
				FamilyName:   "Smith",
				EmailAddress: "alice@example.com",
			})

			tt.checkFunc(t, result)
			mockGateway.AssertExpectations(t)
		})
	}
}

func TestCustomerApplicationService_GetCustomer(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(*MockCustomerGateway)
		checkFunc  func(*testing.T, *domain.Customer)
	}{
		{
			name: "正常系: 顧客が見つかる",
			setupMocks: func(mg *MockCustomerGateway) {
				mg.On("GetCustomer", mock.Anything, "cus_1").Return(testCustomer(), nil)
			},
			checkFunc: func(t *testing.T, c *domain.Customer) {
				require.NotNil(t, c)
				assert.Equal(t, "cus_1", c.ID())
			},
		},
		{
			name: "正常系: 見つからない場合はnil",
			setupMocks: func(mg *MockCustomerGateway) {
				mg.On("GetCustomer", mock.Anything, "cus_1").Return(nil, domain.ErrCustomerNotFound)
			},
			checkFunc: func(t *testing.T, c *domain.Customer) {
				assert.Nil(t, c)
			},
		},
		{
			name: "正常系: 参照の失敗もnilに畳み込む",
			setupMocks: func(mg *MockCustomerGateway) {
				mg.On("GetCustomer", mock.Anything, "cus_1").Return(nil, assert.AnError)
			},
			checkFunc: func(t *testing.T, c *domain.Customer) {
				assert.Nil(t, c)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockGateway := new(MockCustomerGateway)
			tt.setupMocks(mockGateway)
			service := newTestService(mockGateway)

			result := service.GetCustomer(context.Background(), "cus_1")

			tt.checkFunc(t, result)
			mockGateway.AssertExpectations(t)
		})
	}
}

func TestCustomerApplicationService_CreateSubscription(t *testing.T) {
	t.Run("正常系: サブスクリプションIDを返す", func(t *testing.T) {
		mockGateway := new(MockCustomerGateway)
		mockGateway.On("CreateSubscription", mock.Anything, mock.MatchedBy(func(req *domain.CreateSubscriptionRequest) bool {
			return req.CustomerID == "cus_1" && req.PlanID == "plan_1" && req.IdempotencyKey != ""
		})).Return("sub_1", nil)
		service := newTestService(mockGateway)

		subscriptionID := service.CreateSubscription(context.Background(), &CreateSubscriptionCommand{
			CustomerID: "cus_1",
			PlanID:     "plan_1",
		})

		assert.Equal(t, "sub_1", subscriptionID)
		mockGateway.AssertExpectations(t)
	})

	t.Run("異常系: 失敗時は空文字列を返す", func(t *testing.T) {
		mockGateway := new(MockCustomerGateway)
		mockGateway.On("CreateSubscription", mock.Anything, mock.Anything).Return("", domain.ErrSubscriptionFailed)
		service := newTestService(mockGateway)

		subscriptionID := service.CreateSubscription(context.Background(), &CreateSubscriptionCommand{
			CustomerID: "cus_1",
			PlanID:     "plan_1",
		})

		assert.Empty(t, subscriptionID)
		mockGateway.AssertExpectations(t)
	})

	t.Run("正常系: 試行ごとに異なる冪等性キーを生成する", func(t *testing.T) {
		mockGateway := new(MockCustomerGateway)

		var keys []string
		mockGateway.On("CreateSubscription", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				req := args.Get(1).(*domain.CreateSubscriptionRequest)
				keys = append(keys, req.IdempotencyKey)
			}).
			Return("sub_1", nil).
			Twice()

		service := newTestService(mockGateway)
		cmd := &CreateSubscriptionCommand{CustomerID: "cus_1", PlanID: "plan_1"}

		service.CreateSubscription(context.Background(), cmd)
		service.CreateSubscription(context.Background(), cmd)

		require.Len(t, keys, 2)
		assert.NotEqual(t, keys[0], keys[1])
		assert.Contains(t, keys[0], "subscription_cus_1_")
		mockGateway.AssertExpectations(t)
	})
}
