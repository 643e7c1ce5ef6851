package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Redis   RedisConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Booking BookingConfig
	Sync    SyncConfig
}

type ServerConfig struct {
	Port          string `envconfig:"PORT" required:"true"`
	PublicBaseURL string `envconfig:"PUBLIC_BASE_URL" default:"http://localhost:8080"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// BookingConfig holds the platform-wide booking policy.
type BookingConfig struct {
	Currency             string `envconfig:"BOOKING_CURRENCY" default:"USD"`
	RefundFullDays       int    `envconfig:"BOOKING_REFUND_FULL_DAYS" default:"7"`
	RefundPartialDays    int    `envconfig:"BOOKING_REFUND_PARTIAL_DAYS" default:"3"`
	RefundPartialPercent int    `envconfig:"BOOKING_REFUND_PARTIAL_PERCENT" default:"50"`
	SearchHorizonDays    int    `envconfig:"BOOKING_SEARCH_HORIZON_DAYS" default:"90"`
	IdempotencyTTL       string `envconfig:"BOOKING_IDEMPOTENCY_TTL" default:"24h"`
}

type SyncConfig struct {
	Enabled         bool          `envconfig:"SYNC_ENABLED" default:"true"`
	TickInterval    time.Duration `envconfig:"SYNC_TICK_INTERVAL" default:"5m"`
	FetchTimeout    time.Duration `envconfig:"SYNC_FETCH_TIMEOUT" default:"15s"`
	LockTTL         time.Duration `envconfig:"SYNC_LOCK_TTL" default:"2m"`
	DefaultInterval time.Duration `envconfig:"SYNC_DEFAULT_INTERVAL" default:"60m"`
	ProductID       string        `envconfig:"SYNC_PRODUCT_ID" default:"-//stayhub//Booking Calendar//EN"`
	MaxFeedBytes    int64         `envconfig:"SYNC_MAX_FEED_BYTES" default:"5242880"`

	// ImportHorizonDays bounds how far ahead imported events block days.
	ImportHorizonDays int `envconfig:"SYNC_IMPORT_HORIZON_DAYS" default:"730"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables always win
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

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
			Port:          "8889", // Test port
			PublicBaseURL: "http://localhost:8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 20,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-e2e-only",
			Duration: "1h",
		},
		Booking: BookingConfig{
			Currency:             "USD",
			RefundFullDays:       7,
			RefundPartialDays:    3,
			RefundPartialPercent: 50,
			SearchHorizonDays:    90,
			IdempotencyTTL:       "24h",
		},
		Sync: SyncConfig{
			Enabled:           false,
			TickInterval:      time.Minute,
			FetchTimeout:      5 * time.Second,
			LockTTL:           time.Minute,
			DefaultInterval:   time.Hour,
			ProductID:         "-//stayhub//Booking Calendar//EN",
			MaxFeedBytes:      1 << 20,
			ImportHorizonDays: 365,
		},
	}
}
