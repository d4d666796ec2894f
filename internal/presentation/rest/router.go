package rest

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	customerapp "lords-payments/internal/application/customer"
	paymentapp "lords-payments/internal/application/payment"
	webhookapp "lords-payments/internal/application/webhook"
	"lords-payments/internal/infrastructure/config"
	otelinfra "lords-payments/internal/infrastructure/observability/otel"
	"lords-payments/internal/presentation/rest/handler"
	restmiddleware "lords-payments/internal/presentation/rest/middleware"
)

// Router REST APIルーター
type Router struct {
	echo            *echo.Echo
	paymentHandler  *handler.PaymentHandler
	customerHandler *handler.CustomerHandler
	webhookHandler  *handler.WebhookHandler
}

// NewRouter 新しいRouterを作成
func NewRouter(
	cfg *config.Config,
	logger *otelinfra.Logger,
	metrics *otelinfra.Metrics,
	paymentService *paymentapp.PaymentApplicationService,
	customerService *customerapp.CustomerApplicationService,
	webhookService *webhookapp.WebhookApplicationService,
) (*Router, error) {
	e := echo.New()

	// Echoのデフォルトエラーハンドラーを無効化（カスタムエラーハンドラーを使用）
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		// エラーハンドリングミドルウェアで処理される
	}

	// ミドルウェアの設定
	setupMiddleware(e, cfg, logger, metrics)

	// ハンドラーの作成
	paymentHandler := handler.NewPaymentHandler(paymentService)
	customerHandler := handler.NewCustomerHandler(customerService)
	webhookHandler := handler.NewWebhookHandler(webhookService)

	// ルーティングの設定
	setupRoutes(e, paymentHandler, customerHandler, webhookHandler)

	// Swagger UI / ReDoc統合
	SetupSwagger(e)

	return &Router{
		echo:            e,
		paymentHandler:  paymentHandler,
		customerHandler: customerHandler,
		webhookHandler:  webhookHandler,
	}, nil
}

// setupMiddleware ミドルウェアを設定
func setupMiddleware(e *echo.Echo, cfg *config.Config, logger *otelinfra.Logger, metrics *otelinfra.Metrics) {
	// リカバリーミドルウェア
	e.Use(middleware.Recover())

	// CORS設定
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"}, // 本番環境では適切に設定
		AllowMethods: []string{echo.GET, echo.POST, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// リクエストIDの設定
	e.Use(middleware.RequestID())

	// セキュリティヘッダー
	e.Use(restmiddleware.SecurityHeadersMiddleware())

	// トレーシングミドルウェア
	e.Use(restmiddleware.TracingMiddleware())

	// ログミドルウェア
	e.Use(restmiddleware.LoggingMiddleware(logger))

	// メトリクスミドルウェア
	e.Use(restmiddleware.MetricsMiddleware(metrics))

	// エラーハンドリングミドルウェア
	e.Use(restmiddleware.ErrorHandlerMiddleware(logger))
}

// setupRoutes ルーティングを設定
func setupRoutes(
	e *echo.Echo,
	paymentHandler *handler.PaymentHandler,
	customerHandler *handler.CustomerHandler,
	webhookHandler *handler.WebhookHandler,
) {
	// APIグループ
	api := e.Group("/api")

	// 決済関連エンドポイント
	api.POST("/payments/square", paymentHandler.CreatePayment)
	api.GET("/payments/:payment_id", paymentHandler.GetPayment)
	api.POST("/payments/:payment_id/refund", paymentHandler.RefundPayment)

	// 顧客関連エンドポイント
	api.POST("/customers", customerHandler.CreateCustomer)
	api.GET("/customers/:customer_id", customerHandler.GetCustomer)
	api.POST("/customers/:customer_id/subscriptions", customerHandler.CreateSubscription)

	// Webhookエンドポイント
	api.POST("/webhooks/square", webhookHandler.HandleWebhook)

	// ヘルスチェックエンドポイント
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})
}

// Start サーバーを起動
func (r *Router) Start(address string) error {
	return r.echo.Start(address)
}

// Shutdown サーバーをシャットダウン
func (r *Router) Shutdown() error {
	return r.echo.Close()
}
