package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	customerapp "lords-payments/internal/application/customer"
	"lords-payments/internal/domain/customer"
)

// CustomerHandler 顧客関連ハンドラー
type CustomerHandler struct {
	customerService *customerapp.CustomerApplicationService
}

// NewCustomerHandler 新しいCustomerHandlerを作成
func NewCustomerHandler(customerService *customerapp.CustomerApplicationService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
	}
}

// CreateCustomer 顧客作成ハンドラー
// @Summary 顧客を作成
// @Description ベンダー側に顧客を作成します
// @Tags customer
// @Accept json
// @Produce json
// @Param request body CreateCustomerRequest true "顧客作成リクエスト"
// @Success 200 {object} CustomerResponse "作成された顧客"
// @Failure 502 {object} middleware.ErrorResponse "ベンダーエラー"
// @Router /customers [post]
func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	var reqBody CreateCustomerRequest
	if err := c.Bind(&reqBody); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	result := h.customerService.CreateCustomer(c.Request().Context(), &customerapp.CreateCustomerCommand{
		GivenName:    reqBody.GivenName,
		FamilyName:   reqBody.FamilyName,
		EmailAddress: reqBody.EmailAddress,
		PhoneNumber:  reqBody.PhoneNumber,
	})
	if result == nil {
		return customer.ErrCustomerCreationFailed
	}

	return c.JSON(http.StatusOK, toCustomerResponse(result))
}

// GetCustomer 顧客取得ハンドラー
// @Summary 顧客を取得
// @Description 顧客情報を取得します
// @Tags customer
// @Produce json
// @Param customer_id path string true "顧客ID"
// @Success 200 {object} CustomerResponse "顧客情報"
// @Failure 404 {object} middleware.ErrorResponse "顧客が見つからない"
// @Router /customers/{customer_id} [get]
func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	customerID := c.Param("customer_id")
	if customerID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "customer_id is required")
	}

	result := h.customerService.GetCustomer(c.Request().Context(), customerID)
	if result == nil {
		return customer.ErrCustomerNotFound
	}

	return c.JSON(http.StatusOK, toCustomerResponse(result))
}

// CreateSubscription サブスクリプション作成ハンドラー
// @Summary サブスクリプションを作成
// @Description 顧客のサブスクリプションを作成します
// @Tags customer
// @Accept json
// @Produce json
// @Param customer_id path string true "顧客ID"
// @Param request body CreateSubscriptionRequest true "サブスクリプション作成リクエスト"
// @Success 200 {object} CreateSubscriptionResponse "作成されたサブスクリプション"
// @Failure 502 {object} middleware.ErrorResponse "ベンダーエラー"
// @Router /customers/{customer_id}/subscriptions [post]
func (h *CustomerHandler) CreateSubscription(c echo.Context) error {
	customerID := c.Param("customer_id")
	if customerID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "customer_id is required")
	}

	var reqBody CreateSubscriptionRequest
	if err := c.Bind(&reqBody); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if reqBody.PlanID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "planId is required")
	}

	subscriptionID := h.customerService.CreateSubscription(c.Request().Context(), &customerapp.CreateSubscriptionCommand{
		CustomerID: customerID,
		PlanID:     reqBody.PlanID,
	})
	if subscriptionID == "" {
		return customer.ErrSubscriptionFailed
	}

	return c.JSON(http.StatusOK, CreateSubscriptionResponse{
		SubscriptionID: subscriptionID,
	})
}

// toCustomerResponse 顧客エンティティをレスポンスモデルに変換
func toCustomerResponse(cust *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:           cust.ID(),
		GivenName:    cust.GivenName(),
		FamilyName:   cust.FamilyName(),
		EmailAddress: cust.EmailAddress(),
		PhoneNumber:  cust.PhoneNumber(),
		CreatedAt:    cust.CreatedAt().UTC().Format(time.RFC3339),
		UpdatedAt:    cust.UpdatedAt().UTC().Format(time.RFC3339),
	}
}
