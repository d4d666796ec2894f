package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Square環境
const (
	SquareEnvironmentSandbox    = "sandbox"
	SquareEnvironmentProduction = "production"
)

// Config アプリケーション全体の設定
type Config struct {
	Server        ServerConfig
	Square        SquareConfig
	OpenTelemetry OpenTelemetryConfig
	Environment   string
}

// ServerConfig サーバー設定
type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// SquareConfig Square決済ゲートウェイ設定
type SquareConfig struct {
	ApplicationID       string
	LocationID          string
	AccessToken         string
	Environment         string // "sandbox" または "production"
	WebhookSignatureKey string
	DefaultCurrency     string
	RequestTimeout      time.Duration
}

// OpenTelemetryConfig OpenTelemetry設定
type OpenTelemetryConfig struct {
	Enabled         bool
	ServiceName     string
	ServiceVersion  string
	OTLPEndpoint    string
	OTLPInsecure    bool
	TraceExporter   string // "otlp", "stdout"
	MetricsExporter string // "otlp", "stdout"
}

// Load 設定を読み込む
// 必須項目の検証もここで行い、初回利用時ではなく起動時に失敗させる
func Load() (*Config, error) {
	// .envファイルを読み込む（存在しない場合は無視）
	_ = godotenv.Load()

	env := getEnv("ENVIRONMENT", "development")

	cfg := &Config{
		Environment: env,
		Server: ServerConfig{
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:  getEnvAsDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Square: SquareConfig{
			ApplicationID:       getEnv("SQUARE_APPLICATION_ID", ""),
			LocationID:          getEnv("SQUARE_LOCATION_ID", ""),
			AccessToken:         getEnv("SQUARE_ACCESS_TOKEN", ""),
			Environment:         getEnv("SQUARE_ENVIRONMENT", SquareEnvironmentSandbox),
			WebhookSignatureKey: getEnv("SQUARE_WEBHOOK_SIGNATURE_KEY", ""),
			DefaultCurrency:     getEnv("SQUARE_DEFAULT_CURRENCY", "GBP"),
			RequestTimeout:      getEnvAsDuration("SQUARE_REQUEST_TIMEOUT", 30*time.Second),
		},
		OpenTelemetry: OpenTelemetryConfig{
			Enabled:         getEnvAsBool("OTEL_ENABLED", true),
			ServiceName:     getEnv("OTEL_SERVICE_NAME", "lords-payments"),
			ServiceVersion:  getEnv("OTEL_SERVICE_VERSION", "1.0.0"),
			OTLPEndpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4318"),
			OTLPInsecure:    getEnvAsBool("OTEL_EXPORTER_OTLP_INSECURE", true),
			TraceExporter:   getEnv("OTEL_TRACES_EXPORTER", "otlp"),
			MetricsExporter: getEnv("OTEL_METRICS_EXPORTER", "otlp"),
		},
	}

	// 必須設定の検証
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate 設定の検証
func (c *Config) validate() error {
	if c.Square.AccessToken == "" {
		return fmt.Errorf("SQUARE_ACCESS_TOKEN is required")
	}
	if c.Square.ApplicationID == "" {
		return fmt.Errorf("SQUARE_APPLICATION_ID is required")
	}
	if c.Square.LocationID == "" {
		return fmt.Errorf("SQUARE_LOCATION_ID is required")
	}
	if c.Square.WebhookSignatureKey == "" {
		return fmt.Errorf("SQUARE_WEBHOOK_SIGNATURE_KEY is required")
	}
	if c.Square.Environment != SquareEnvironmentSandbox && c.Square.Environment != SquareEnvironmentProduction {
		return fmt.Errorf("SQUARE_ENVIRONMENT must be %q or %q", SquareEnvironmentSandbox, SquareEnvironmentProduction)
	}
	if c.Square.DefaultCurrency == "" {
		return fmt.Errorf("SQUARE_DEFAULT_CURRENCY is required")
	}
	return nil
}

// APIBaseURL Square APIのベースURLを返す
func (c *SquareConfig) APIBaseURL() string {
	if c.Environment == SquareEnvironmentProduction {
		return "https://connect.squareup.com"
	}
	return "https://connect.squareupsandbox.com"
}

// WebSDKURL Square Web Payments SDKのスクリプトURLを返す
func (c *SquareConfig) WebSDKURL() string {
	if c.Environment == SquareEnvironmentProduction {
		return "https://web.squarecdn.com/v1/square.js"
	}
	return "https://sandbox.web.squarecdn.com/v1/square.js"
}

// getEnv 環境変数を取得（デフォルト値付き）
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt 環境変数を整数として取得
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool 環境変数を真偽値として取得
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration 環境変数を時間として取得
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
