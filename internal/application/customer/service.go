package customer

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	domain "lords-payments/internal/domain/customer"
	otelinfra "lords-payments/internal/infrastructure/observability/otel"
)

// CustomerApplicationService 顧客アプリケーションサービス
// 全操作がベストエフォート: 失敗はログに残し、呼び出し元にはnilまたは空値で返す
type CustomerApplicationService struct {
	gateway domain.CustomerGateway
	logger  *otelinfra.Logger
	metrics *otelinfra.Metrics
	tracer  trace.Tracer
}

// NewCustomerApplicationService 新しいCustomerApplicationServiceを作成
func NewCustomerApplicationService(
	gateway domain.CustomerGateway,
	logger *otelinfra.Logger,
	metrics *otelinfra.Metrics,
) *CustomerApplicationService {
	return &CustomerApplicationService{
		gateway: gateway,
		logger:  logger,
		metrics: metrics,
		tracer:  otel.Tracer("customer-service"),
	}
}

// CreateCustomer 顧客を作成する
// 失敗時はnilを返す
func (s *CustomerApplicationService) CreateCustomer(ctx context.Context, cmd *CreateCustomerCommand) *domain.Customer {
	ctx, span := s.tracer.Start(ctx, "CustomerApplicationService.CreateCustomer")
	defer span.End()

	req := &domain.CreateCustomerRequest{
		GivenName:    cmd.GivenName,
		FamilyName:   cmd.FamilyName,
		EmailAddress: cmd.EmailAddress,
		PhoneNumber:  cmd.PhoneNumber,
	}

	result, err := s.gateway.CreateCustomer(ctx, req)
	if err != nil {
		span.RecordError(err)
		s.logger.Error(ctx, "Failed to create customer", err, map[string]interface{}{
			"email": cmd.EmailAddress,
		})
		s.metrics.RecordError(ctx, "customer_creation_failed")
		return nil
	}

	span.SetAttributes(attribute.String("customer.id", result.ID()))
	s.logger.Info(ctx, "Customer created", map[string]interface{}{
		"customer_id": result.ID(),
	})

	return result
}

// GetCustomer 顧客を取得する
// 見つからない場合もその他の失敗もnilを返す
func (s *CustomerApplicationService) GetCustomer(ctx context.Context, customerID string) *domain.Customer {
	ctx, span := s.tracer.Start(ctx, "CustomerApplicationService.GetCustomer")
	defer span.End()

	span.SetAttributes(attribute.String("customer.id", customerID))

	result, err := s.gateway.GetCustomer(ctx, customerID)
	if err != nil {
		s.logger.Warn(ctx, "Customer lookup failed", map[string]interface{}{
			"customer_id": customerID,
			"error":       err.Error(),
		})
		return nil
	}

	return result
}

// CreateSubscription サブスクリプションを作成する
// 成功時はサブスクリプションIDを、失敗時は空文字列を返す
func (s *CustomerApplicationService) CreateSubscription(ctx context.Context, cmd *CreateSubscriptionCommand) string {
	ctx, span := s.tracer.Start(ctx, "CustomerApplicationService.CreateSubscription")
	defer span.End()

	span.SetAttributes(
		attribute.String("customer.id", cmd.CustomerID),
		attribute.String("subscription.plan_id", cmd.PlanID),
	)

	req := &domain.CreateSubscriptionRequest{
		CustomerID:     cmd.CustomerID,
		PlanID:         cmd.PlanID,
		IdempotencyKey: s.generateSubscriptionIdempotencyKey(cmd.CustomerID),
	}

	subscriptionID, err := s.gateway.CreateSubscription(ctx, req)
	if err != nil {
		span.RecordError(err)
		s.logger.Error(ctx, "Failed to create subscription", err, map[string]interface{}{
			"customer_id": cmd.CustomerID,
			"plan_id":     cmd.PlanID,
		})
		s.metrics.RecordError(ctx, "subscription_failed")
		return ""
	}

	s.logger.Info(ctx, "Subscription created", map[string]interface{}{
		"customer_id":     cmd.CustomerID,
		"subscription_id": subscriptionID,
	})

	return subscriptionID
}

// generateSubscriptionIdempotencyKey サブスクリプション用の冪等性キーを生成
// 顧客IDと現在時刻から試行ごとに異なるキーを生成する
func (s *CustomerApplicationService) generateSubscriptionIdempotencyKey(customerID string) string {
	return fmt.Sprintf("subscription_%s_%d", customerID, time.Now().UnixNano())
}
