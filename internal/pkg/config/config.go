package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, retention windows, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Cookie   CookieConfig
	Gateway  GatewayConfig
	Waitlist WaitlistConfig
	Cart     CartConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// GatewayConfig holds credentials and endpoints for the payment gateway.
// WebhookSecret verifies inbound event signatures; APIKey authenticates
// outbound checkout-session and refund calls.
type GatewayConfig struct {
	APIKey           string        `envconfig:"GATEWAY_API_KEY" required:"true"`
	WebhookSecret    string        `envconfig:"GATEWAY_WEBHOOK_SECRET" required:"true"`
	BaseURL          string        `envconfig:"GATEWAY_BASE_URL" default:"https://api.gateway.example.com"`
	RequestTimeout   time.Duration `envconfig:"GATEWAY_REQUEST_TIMEOUT" default:"15s"`
	SuccessURL       string        `envconfig:"GATEWAY_SUCCESS_URL" required:"true"`
	CancelURL        string        `envconfig:"GATEWAY_CANCEL_URL" required:"true"`
	SignatureMaxSkew time.Duration `envconfig:"GATEWAY_SIGNATURE_MAX_SKEW" default:"5m"`
}

type WaitlistConfig struct {
	ClaimTokenTTL time.Duration `envconfig:"WAITLIST_CLAIM_TOKEN_TTL" default:"48h"`
	ClaimBaseURL  string        `envconfig:"WAITLIST_CLAIM_BASE_URL" required:"true"`
}

type CartConfig struct {
	Retention     time.Duration `envconfig:"CART_RETENTION" default:"720h"` // 30 days
	SweepInterval time.Duration `envconfig:"CART_SWEEP_INTERVAL" default:"1h"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: time.Hour,
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Gateway: GatewayConfig{
			APIKey:           "sk_test_dummy",
			WebhookSecret:    "whsec_test_dummy",
			BaseURL:          "http://localhost:12111",
			RequestTimeout:   5 * time.Second,
			SuccessURL:       "http://localhost:3000/checkout/success",
			CancelURL:        "http://localhost:3000/checkout/cancel",
			SignatureMaxSkew: 5 * time.Minute,
		},
		Waitlist: WaitlistConfig{
			ClaimTokenTTL: 48 * time.Hour,
			ClaimBaseURL:  "http://localhost:3000/claim",
		},
		Cart: CartConfig{
			Retention:     720 * time.Hour,
			SweepInterval: time.Hour,
		},
	}
}
