package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting. It is loaded once at startup and passed
// by value to constructors; nothing reads the environment after Load returns.
type Config struct {
	Env  string
	Port string

	DBUser string
	DBPass string
	DBHost string
	DBPort string
	DBName string

	JWTSecret     string
	JWTAlgorithm  string // HS256, HS384 or HS512
	AccessTTLMin  int
	RefreshTTLMin int
	BcryptCost    int

	// SMTP is optional: when Host or User is empty the mailer logs and
	// skips instead of sending.
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	AdminEmails  []string

	// AMQPURL is optional: empty disables the lifecycle event bus.
	AMQPURL string

	Redis     RedisConfig
	RateLimit RateLimitConfig
	Cache     CacheConfig
}

// EmailEnabled reports whether outbound email is configured.
func (c Config) EmailEnabled() bool {
	return c.SMTPHost != "" && c.SMTPUser != "" && c.SMTPPassword != ""
}

// Load reads a .env file when present, then the environment. Missing required
// variables are fatal; optional subsystems fall back to disabled defaults.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Env:  getenv("APP_ENV", "dev"),
		Port: getenv("APP_PORT", "8000"),

		DBUser: must("DB_USER"),
		DBPass: os.Getenv("DB_PASS"),
		DBHost: must("DB_HOST"),
		DBPort: must("DB_PORT"),
		DBName: must("DB_NAME"),

		JWTSecret:     must("SECRET_KEY"),
		JWTAlgorithm:  getenv("JWT_ALGORITHM", "HS256"),
		AccessTTLMin:  envInt("ACCESS_TOKEN_EXPIRE_MINUTES", 15),
		RefreshTTLMin: envInt("REFRESH_TOKEN_EXPIRE_MINUTES", 1440),
		BcryptCost:    envInt("BCRYPT_COST", 12),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     envInt("SMTP_PORT", 587),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		AdminEmails:  splitEmails(os.Getenv("ADMIN_EMAILS")),

		AMQPURL: os.Getenv("RABBITMQ_URL"),

		Redis:     loadRedis(),
		RateLimit: loadRateLimit(),
		Cache:     loadCache(),
	}
}

// splitEmails turns the comma-separated ADMIN_EMAILS value into a clean list.
func splitEmails(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, v)
	}
	return n
}

func envBool(key string, def bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}

func envDur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
