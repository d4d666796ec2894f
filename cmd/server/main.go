package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	customerapp "lords-payments/internal/application/customer"
	paymentapp "lords-payments/internal/application/payment"
	webhookapp "lords-payments/internal/application/webhook"
	"lords-payments/internal/infrastructure/config"
	otelinfra "lords-payments/internal/infrastructure/observability/otel"
	"lords-payments/internal/infrastructure/square"
	"lords-payments/internal/presentation/rest"
)

func main() {
	// 設定の読み込み（必須項目の欠落はここで失敗する）
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// OpenTelemetryの初期化
	tracerShutdown, err := otelinfra.InitTracer(&cfg.OpenTelemetry)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerShutdown(ctx); err != nil {
			log.Printf("Failed to shutdown tracer: %v", err)
		}
	}()

	meterShutdown, err := otelinfra.InitMeter(&cfg.OpenTelemetry)
	if err != nil {
		log.Fatalf("Failed to initialize meter: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := meterShutdown(ctx); err != nil {
			log.Printf("Failed to shutdown meter: %v", err)
		}
	}()

	// ロガーとメトリクスの初期化
	tracer := otelinfra.Tracer("lords-payments")
	logger := otelinfra.NewLogger(tracer)
	metrics, err := otelinfra.NewMetrics("lords-payments")
	if err != nil {
		log.Fatalf("Failed to create metrics: %v", err)
	}

	// Squareクライアントの初期化
	// ゲートウェイは明示的に注入する（プロセス全体の隠れた状態を持たない）
	squareClient := square.NewClient(&cfg.Square, nil)
	signatureVerifier := square.NewSignatureVerifier(cfg.Square.WebhookSignatureKey)

	// アプリケーションサービスの初期化
	paymentAppService := paymentapp.NewPaymentApplicationService(
		squareClient,
		cfg.Square.DefaultCurrency,
		logger,
		metrics,
	)

	customerAppService := customerapp.NewCustomerApplicationService(
		squareClient,
		logger,
		metrics,
	)

	webhookAppService := webhookapp.NewWebhookApplicationService(
		signatureVerifier,
		logger,
		metrics,
	)

	// REST APIルーターの初期化
	router, err := rest.NewRouter(
		cfg,
		logger,
		metrics,
		paymentAppService,
		customerAppService,
		webhookAppService,
	)
	if err != nil {
		log.Fatalf("Failed to create router: %v", err)
	}

	// サーバーアドレスの設定
	address := fmt.Sprintf(":%d", cfg.Server.Port)

	// グレースフルシャットダウンの設定
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	// REST APIサーバーを別ゴルーチンで起動
	go func() {
		log.Printf("REST API server starting on %s (square env: %s)", address, cfg.Square.Environment)
		if err := router.Start(address); err != nil {
			log.Printf("REST API server error: %v", err)
		}
	}()

	// シグナルを待機
	<-quit
	log.Println("Shutting down server...")

	// REST APIサーバーのシャットダウン
	if err := router.Shutdown(); err != nil {
		log.Printf("Error shutting down REST API server: %v", err)
	}

	log.Println("Server stopped")
}
