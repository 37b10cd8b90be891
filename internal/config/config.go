package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	DB       DBConfig
	JWT      JWTConfig
	S3       S3Config
	Log      LogConfig
	CORS     CORSConfig
	Parser   ParserConfig
	Webhook  WebhookConfig
	WhatsApp WhatsAppConfig
	Queue    QueueConfig
	Email    EmailConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// S3Config holds object storage settings. Endpoint supports S3-compatible
// providers (Supabase storage, MinIO) with path-style addressing.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ParserConfig holds schedule text parser settings.
type ParserConfig struct {
	Strategy      string `mapstructure:"strategy"`
	RecordPattern string `mapstructure:"record_pattern"`
}

// WebhookConfig holds the n8n automation endpoints. Empty URLs disable the
// corresponding trigger.
type WebhookConfig struct {
	ExtractURL          string        `mapstructure:"extract_url"`
	BulkDispatchURL     string        `mapstructure:"bulk_dispatch_url"`
	MarkAllAsReadURL    string        `mapstructure:"mark_all_as_read_url"`
	TransformNumbersURL string        `mapstructure:"transform_numbers_url"`
	DeleteURL           string        `mapstructure:"delete_url"`
	Timeout             time.Duration `mapstructure:"timeout"`
	DispatchTimeout     time.Duration `mapstructure:"dispatch_timeout"`
}

// WhatsAppConfig holds WhatsApp Cloud API credentials. Empty token disables
// direct sending.
type WhatsAppConfig struct {
	BaseURL       string        `mapstructure:"base_url"`
	AccessToken   string        `mapstructure:"access_token"`
	PhoneNumberID string        `mapstructure:"phone_number_id"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

// QueueConfig holds extraction queue worker settings.
type QueueConfig struct {
	PollIntervalSecs int `mapstructure:"poll_interval_secs"`
	MaxRetries       int `mapstructure:"max_retries"`
	Concurrency      int `mapstructure:"concurrency"`
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
	ReportTo    string `mapstructure:"report_to"`
}

// Load reads configuration from environment variables with the COFRAT_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("COFRAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "cofrat")
	v.SetDefault("db.password", "cofrat_secret")
	v.SetDefault("db.name", "cofrat_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "cofrat")

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "cofrat")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 25)
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:8501,http://127.0.0.1:8501")

	// Parser defaults
	v.SetDefault("parser.strategy", "flexible")
	v.SetDefault("parser.record_pattern", "trailing")

	// Webhook defaults
	v.SetDefault("webhook.extract_url", "")
	v.SetDefault("webhook.bulk_dispatch_url", "")
	v.SetDefault("webhook.mark_all_as_read_url", "")
	v.SetDefault("webhook.transform_numbers_url", "")
	v.SetDefault("webhook.delete_url", "")
	v.SetDefault("webhook.timeout", "5s")
	v.SetDefault("webhook.dispatch_timeout", "30s")

	// WhatsApp defaults
	v.SetDefault("whatsapp.base_url", "https://graph.facebook.com/v22.0")
	v.SetDefault("whatsapp.access_token", "")
	v.SetDefault("whatsapp.phone_number_id", "")
	v.SetDefault("whatsapp.timeout", "20s")

	// Queue defaults
	v.SetDefault("queue.poll_interval_secs", 10)
	v.SetDefault("queue.max_retries", 5)
	v.SetDefault("queue.concurrency", 3)

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "us-east-1")
	v.SetDefault("email.from_address", "noreply@cofrat.com.br")
	v.SetDefault("email.from_name", "COFRAT")
	v.SetDefault("email.report_to", "")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                  "COFRAT_SERVER_PORT",
		"server.read_timeout":          "COFRAT_SERVER_READ_TIMEOUT",
		"server.write_timeout":         "COFRAT_SERVER_WRITE_TIMEOUT",
		"server.environment":           "COFRAT_SERVER_ENVIRONMENT",
		"db.host":                      "COFRAT_DB_HOST",
		"db.port":                      "COFRAT_DB_PORT",
		"db.user":                      "COFRAT_DB_USER",
		"db.password":                  "COFRAT_DB_PASSWORD",
		"db.name":                      "COFRAT_DB_NAME",
		"db.sslmode":                   "COFRAT_DB_SSLMODE",
		"db.max_open":                  "COFRAT_DB_MAX_OPEN",
		"db.max_idle":                  "COFRAT_DB_MAX_IDLE",
		"jwt.secret":                   "COFRAT_JWT_SECRET",
		"jwt.access_expiry":            "COFRAT_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":           "COFRAT_JWT_REFRESH_EXPIRY",
		"jwt.issuer":                   "COFRAT_JWT_ISSUER",
		"s3.region":                    "COFRAT_S3_REGION",
		"s3.bucket":                    "COFRAT_S3_BUCKET",
		"s3.endpoint":                  "COFRAT_S3_ENDPOINT",
		"s3.access_key":                "COFRAT_S3_ACCESS_KEY",
		"s3.secret_key":                "COFRAT_S3_SECRET_KEY",
		"s3.max_file_size_mb":          "COFRAT_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":            "COFRAT_S3_PRESIGN_EXPIRY",
		"log.level":                    "COFRAT_LOG_LEVEL",
		"log.format":                   "COFRAT_LOG_FORMAT",
		"cors.allowed_origins":         "COFRAT_CORS_ALLOWED_ORIGINS",
		"parser.strategy":              "COFRAT_PARSER_STRATEGY",
		"parser.record_pattern":        "COFRAT_PARSER_RECORD_PATTERN",
		"webhook.extract_url":          "COFRAT_WEBHOOK_EXTRACT_URL",
		"webhook.bulk_dispatch_url":    "COFRAT_WEBHOOK_BULK_DISPATCH_URL",
		"webhook.mark_all_as_read_url": "COFRAT_WEBHOOK_MARK_ALL_AS_READ_URL",
		"webhook.transform_numbers_url": "COFRAT_WEBHOOK_TRANSFORM_NUMBERS_URL",
		"webhook.delete_url":            "COFRAT_WEBHOOK_DELETE_URL",
		"webhook.timeout":               "COFRAT_WEBHOOK_TIMEOUT",
		"webhook.dispatch_timeout":      "COFRAT_WEBHOOK_DISPATCH_TIMEOUT",
		"whatsapp.base_url":             "COFRAT_WHATSAPP_BASE_URL",
		"whatsapp.access_token":         "COFRAT_WHATSAPP_ACCESS_TOKEN",
		"whatsapp.phone_number_id":      "COFRAT_WHATSAPP_PHONE_NUMBER_ID",
		"whatsapp.timeout":              "COFRAT_WHATSAPP_TIMEOUT",
		"queue.poll_interval_secs":      "COFRAT_QUEUE_POLL_INTERVAL_SECS",
		"queue.max_retries":             "COFRAT_QUEUE_MAX_RETRIES",
		"queue.concurrency":             "COFRAT_QUEUE_CONCURRENCY",
		"email.provider":                "COFRAT_EMAIL_PROVIDER",
		"email.region":                  "COFRAT_EMAIL_REGION",
		"email.from_address":            "COFRAT_EMAIL_FROM_ADDRESS",
		"email.from_name":               "COFRAT_EMAIL_FROM_NAME",
		"email.report_to":               "COFRAT_EMAIL_REPORT_TO",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if COFRAT_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("COFRAT_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}
	cfg.Parser = ParserConfig{
		Strategy:      v.GetString("parser.strategy"),
		RecordPattern: v.GetString("parser.record_pattern"),
	}
	cfg.Webhook = WebhookConfig{
		ExtractURL:          v.GetString("webhook.extract_url"),
		BulkDispatchURL:     v.GetString("webhook.bulk_dispatch_url"),
		MarkAllAsReadURL:    v.GetString("webhook.mark_all_as_read_url"),
		TransformNumbersURL: v.GetString("webhook.transform_numbers_url"),
		DeleteURL:           v.GetString("webhook.delete_url"),
		Timeout:             v.GetDuration("webhook.timeout"),
		DispatchTimeout:     v.GetDuration("webhook.dispatch_timeout"),
	}
	cfg.WhatsApp = WhatsAppConfig{
		BaseURL:       v.GetString("whatsapp.base_url"),
		AccessToken:   v.GetString("whatsapp.access_token"),
		PhoneNumberID: v.GetString("whatsapp.phone_number_id"),
		Timeout:       v.GetDuration("whatsapp.timeout"),
	}
	cfg.Queue = QueueConfig{
		PollIntervalSecs: v.GetInt("queue.poll_interval_secs"),
		MaxRetries:       v.GetInt("queue.max_retries"),
		Concurrency:      v.GetInt("queue.concurrency"),
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
		ReportTo:    v.GetString("email.report_to"),
	}

	return cfg, nil
}
