package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// knownWeakSecrets contains default/example secrets that must be rejected.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
}

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath        string `env:"MATHA_DB_PATH" envDefault:"./data/matha.db"`
	SessionSecret string `env:"MATHA_SESSION_SECRET,required"`
	ServerHost    string `env:"MATHA_SERVER_HOST" envDefault:"localhost"`
	ServerPort    int    `env:"MATHA_SERVER_PORT" envDefault:"8080"`
	Env           string `env:"MATHA_ENV" envDefault:"development"`
	LogLevel      string `env:"MATHA_LOG_LEVEL" envDefault:"info"`

	// Remote content backend (Supabase-style REST). Optional: when unset the
	// service serves the built-in fallback datasets.
	ContentAPIURL string `env:"MATHA_CONTENT_API_URL"`
	ContentAPIKey string `env:"MATHA_CONTENT_API_KEY"`

	// Admin backend (Firebase/Firestore REST). Optional: when unset the admin
	// panel runs in demo mode and skips all remote writes.
	FirebaseAPIKey    string `env:"MATHA_FIREBASE_API_KEY"`
	FirebaseProjectID string `env:"MATHA_FIREBASE_PROJECT_ID"`

	// Cache configuration
	RedisURL     string `env:"MATHA_REDIS_URL"`                         // Optional Redis URL for distributed caching
	CachePrefix  string `env:"MATHA_CACHE_PREFIX" envDefault:"matha:"`  // Redis key prefix
	CacheTTL     int    `env:"MATHA_CACHE_TTL" envDefault:"300"`        // Default cache TTL in seconds
	CacheMaxSize int    `env:"MATHA_CACHE_MAX_SIZE" envDefault:"10000"` // Max memory cache entries

	// Bulk notification broker. Optional: without it queued notifications are
	// marked dispatched locally.
	AMQPURL string `env:"MATHA_AMQP_URL"`

	// Scheduler configuration
	CronEnabled bool `env:"MATHA_CRON_ENABLED" envDefault:"true"`

	// Seeding configuration
	DoSeed bool `env:"MATHA_DO_SEED" envDefault:"false"` // Enable database seeding
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// ContentConfigured returns true if the remote content backend is configured.
func (c Config) ContentConfigured() bool {
	return c.ContentAPIURL != "" && c.ContentAPIKey != ""
}

// FirebaseConfigured returns true if the admin backend is configured.
func (c Config) FirebaseConfigured() bool {
	return c.FirebaseAPIKey != "" && c.FirebaseProjectID != ""
}

// AMQPConfigured returns true if a notification broker is configured.
func (c Config) AMQPConfigured() bool {
	return c.AMQPURL != ""
}

// MinSessionSecretLength is the minimum required length for the session secret.
// AES-256 requires 32 bytes minimum for secure encryption.
const MinSessionSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Validate session secret length
	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("MATHA_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}

	// Reject known weak/default secrets
	for _, weak := range knownWeakSecrets {
		if cfg.SessionSecret == weak {
			return nil, fmt.Errorf("MATHA_SESSION_SECRET is a known default value and must not be used; " +
				"generate a secure secret with: openssl rand -base64 32")
		}
	}

	// Warn about low-entropy secrets
	if !hasMinimumEntropy(cfg.SessionSecret) {
		slog.Warn("MATHA_SESSION_SECRET has low character diversity; " +
			"consider generating a random secret with: openssl rand -base64 32")
	}

	return cfg, nil
}

// hasMinimumEntropy checks that a secret contains at least 3 character classes
// (lowercase, uppercase, digits, special characters).
func hasMinimumEntropy(s string) bool {
	charTypes := 0
	if strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz") {
		charTypes++
	}
	if strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		charTypes++
	}
	if strings.ContainsAny(s, "0123456789") {
		charTypes++
	}
	if strings.ContainsAny(s, "!@#$%^&*()-_=+[]{}|;:,.<>?/~`'\"\\") {
		charTypes++
	}
	return charTypes >= 3
}
