package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// App
	Env string // dev / staging / prod

	// HTTP
	HTTPAddr         string
	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration

	CORSAllowedOrigins []string
	UploadMaxBytes     int64

	// Auth
	JWTSecret       string
	JWTIssuer       string
	TokenTTL        time.Duration
	CookieMaxAge    time.Duration
	CookieSecure    bool
	AutoCreateUsers bool
	DefaultPassword string
	BcryptCost      int

	// Postgres
	DatabaseURL   string
	DBDebug       bool
	DBAutoMigrate bool
	DBSeed        bool

	// Redis & caching (optional)
	RedisURL          string
	CacheTTLTemplates time.Duration

	// RabbitMQ (optional in dev)
	RabbitURL      string
	RabbitExchange string

	// S3 upload archive (optional)
	S3Endpoint        string
	S3Region          string
	S3Bucket          string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3UsePathStyle    bool

	// Rate limiting
	RLEnabled     bool
	RLLimit       int
	RLWindow      time.Duration
	LoginRLLimit  int
	LoginRLWindow time.Duration
}

func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := &Config{
		Env:      getEnv("APP_ENV", "dev"),
		HTTPAddr: getEnv("HTTP_ADDR", ":8000"),
	}

	// required values
	cfg.DatabaseURL = getEnv("DATABASE_URL", "")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("missing required env var: DATABASE_URL")
	}
	cfg.JWTSecret = getEnv("JWT_SECRET", "")
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("missing required env var: JWT_SECRET")
	}
	cfg.JWTIssuer = getEnv("JWT_ISSUER", "leads-api")

	var err error
	if cfg.TokenTTL, err = getDuration("JWT_EXPIRATION", 7*24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.CookieMaxAge, err = getDuration("COOKIE_MAX_AGE", 7*24*time.Hour); err != nil {
		return nil, err
	}
	cfg.CookieSecure = getBool("COOKIE_SECURE", cfg.Env != "dev")
	cfg.AutoCreateUsers = getBool("AUTH_AUTO_CREATE_USERS", true)
	cfg.DefaultPassword = getEnv("AUTH_DEFAULT_PASSWORD", "default-password-123")
	cfg.BcryptCost = getIntEnv("BCRYPT_COST", 12)

	cfg.DBDebug = getBool("DB_DEBUG", false)
	cfg.DBAutoMigrate = getBool("DB_AUTO_MIGRATE", cfg.Env == "dev")
	cfg.DBSeed = getBool("DB_SEED", false)

	cfg.RedisURL = getEnv("REDIS_URL", "")
	if cfg.CacheTTLTemplates, err = getDuration("CACHE_TTL_TEMPLATES", 30*time.Second); err != nil {
		return nil, err
	}

	cfg.RabbitURL = getEnv("RABBIT_URL", "")
	cfg.RabbitExchange = getEnv("RABBIT_EXCHANGE", "leads.events")
	// Rabbit: dev may run without a broker
	if cfg.Env != "dev" && cfg.RabbitURL == "" {
		return nil, fmt.Errorf("missing RABBIT_URL (required when APP_ENV != dev)")
	}

	cfg.S3Endpoint = getEnv("S3_ENDPOINT", "")
	cfg.S3Region = getEnv("S3_REGION", "us-east-1")
	cfg.S3Bucket = getEnv("S3_BUCKET", "")
	cfg.S3AccessKeyID = getEnv("S3_ACCESS_KEY_ID", "")
	cfg.S3SecretAccessKey = getEnv("S3_SECRET_ACCESS_KEY", "")
	cfg.S3UsePathStyle = getBool("S3_USE_PATH_STYLE", true)

	// Rate limiting defaults: 100 reqs / 1 min per IP, 10 logins / 1 min
	cfg.RLEnabled = getBool("RL_ENABLED", true)
	cfg.RLLimit = getIntEnv("RL_IP_LIMIT", 100)
	if cfg.RLWindow, err = getDuration("RL_IP_WINDOW", time.Minute); err != nil {
		return nil, err
	}
	cfg.LoginRLLimit = getIntEnv("LOGIN_RL_LIMIT", 10)
	if cfg.LoginRLWindow, err = getDuration("LOGIN_RL_WINDOW", time.Minute); err != nil {
		return nil, err
	}

	cfg.CORSAllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"))
	cfg.UploadMaxBytes = int64(getIntEnv("UPLOAD_MAX_BYTES", 10<<20))

	if cfg.HTTPReadTimeout, err = getDuration("HTTP_READ_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.HTTPWriteTimeout, err = getDuration("HTTP_WRITE_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.HTTPIdleTimeout, err = getDuration("HTTP_IDLE_TIMEOUT", time.Minute); err != nil {
		return nil, err
	}

	return cfg, nil
}

// S3Enabled reports whether uploads should be archived.
func (c *Config) S3Enabled() bool {
	return c.S3Bucket != "" && c.S3Endpoint != ""
}

func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %q: %w", key, v, err)
	}
	return d, nil
}

func getIntEnv(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
