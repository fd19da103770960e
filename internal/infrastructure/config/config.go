package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	S3        S3Config
	Log       LogConfig
	RateLimit RateLimitConfig
	Render    RenderConfig
	Capture   CaptureConfig
	Session   SessionConfig
}

type ServerConfig struct {
	Port            int           `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string      `envconfig:"SERVER_ALLOWED_ORIGINS" default:"*"`
	MaxUploadSize   int64         `envconfig:"SERVER_MAX_UPLOAD_SIZE" default:"10485760"`
}

type DatabaseConfig struct {
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            int           `envconfig:"DB_PORT" default:"5432"`
	User            string        `envconfig:"DB_USER" required:"true"`
	Password        string        `envconfig:"DB_PASSWORD" required:"true"`
	Name            string        `envconfig:"DB_NAME" required:"true"`
	SSLMode         string        `envconfig:"DB_SSL_MODE" default:"disable"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// JWTConfig signs the per-session tokens handed out on session creation.
type JWTConfig struct {
	SecretKey       string        `envconfig:"JWT_SECRET_KEY" required:"true"`
	SessionTokenTTL time.Duration `envconfig:"JWT_SESSION_TOKEN_TTL" default:"24h"`
}

type S3Config struct {
	Endpoint        string        `envconfig:"S3_ENDPOINT"`
	Region          string        `envconfig:"S3_REGION" default:"us-east-1"`
	Bucket          string        `envconfig:"S3_BUCKET" required:"true"`
	AccessKeyID     string        `envconfig:"S3_ACCESS_KEY_ID" required:"true"`
	SecretAccessKey string        `envconfig:"S3_SECRET_ACCESS_KEY" required:"true"`
	UsePathStyle    bool          `envconfig:"S3_USE_PATH_STYLE" default:"false"`
	PublicURL       string        `envconfig:"S3_PUBLIC_URL"`
	SignedURLTTL    time.Duration `envconfig:"S3_SIGNED_URL_TTL" default:"24h"`
	CreateBucket    bool          `envconfig:"S3_CREATE_BUCKET" default:"false"`
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

type RedisConfig struct {
	Host        string        `envconfig:"REDIS_HOST" default:"localhost"`
	Port        int           `envconfig:"REDIS_PORT" default:"6379"`
	Password    string        `envconfig:"REDIS_PASSWORD" default:""`
	DB          int           `envconfig:"REDIS_DB" default:"0"`
	PoolSize    int           `envconfig:"REDIS_POOL_SIZE" default:"20"`
	DialTimeout time.Duration `envconfig:"REDIS_DIAL_TIMEOUT" default:"5s"`
	OpTimeout   time.Duration `envconfig:"REDIS_OP_TIMEOUT" default:"2s"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// RateLimitConfig bounds export requests, the expensive endpoints.
type RateLimitConfig struct {
	Enabled        bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	ExportsPerMin  int  `envconfig:"RATE_LIMIT_EXPORTS_PER_MIN" default:"10"`
	RequestsPerMin int  `envconfig:"RATE_LIMIT_REQUESTS_PER_MIN" default:"300"`
}

type RenderConfig struct {
	BaseWidth    int    `envconfig:"RENDER_BASE_WIDTH" default:"1200"`
	PreviewWidth int    `envconfig:"RENDER_PREVIEW_WIDTH" default:"400"`
	ExportSlug   string `envconfig:"RENDER_EXPORT_SLUG" default:"gstudio"`
	AssetDir     string `envconfig:"RENDER_ASSET_DIR" default:"./public"`
}

type CaptureConfig struct {
	JPEGQuality  int           `envconfig:"CAPTURE_JPEG_QUALITY" default:"92"`
	Countdowns   []int         `envconfig:"CAPTURE_COUNTDOWNS" default:"3,5,10"`
	TickInterval time.Duration `envconfig:"CAPTURE_TICK_INTERVAL" default:"1s"`
	OpenTimeout  time.Duration `envconfig:"CAPTURE_OPEN_TIMEOUT" default:"15s"`
}

const (
	SessionStoreRedis  = "redis"
	SessionStoreMemory = "memory"
)

// SessionConfig selects where live sessions are kept. The memory store
// only suits a single instance.
type SessionConfig struct {
	Store string        `envconfig:"SESSION_STORE" default:"redis"`
	TTL   time.Duration `envconfig:"SESSION_TTL" default:"24h"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Session.Store {
	case SessionStoreRedis, SessionStoreMemory:
	default:
		return fmt.Errorf("unknown session store %q", c.Session.Store)
	}
	if c.Render.BaseWidth <= 0 || c.Render.PreviewWidth <= 0 {
		return fmt.Errorf("render widths must be positive")
	}
	if len(c.Capture.Countdowns) == 0 {
		return fmt.Errorf("at least one countdown duration is required")
	}
	for _, n := range c.Capture.Countdowns {
		if n <= 0 {
			return fmt.Errorf("countdown duration %d must be positive", n)
		}
	}
	if c.Capture.JPEGQuality < 1 || c.Capture.JPEGQuality > 100 {
		return fmt.Errorf("jpeg quality %d out of range", c.Capture.JPEGQuality)
	}
	return nil
}
