package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all runtime configuration, loaded once at startup.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Redis    RedisConfig
	Storage  StorageConfig
	Log      LogConfig
	// WebhookURL, when set, receives a POST for every row change event.
	WebhookURL string
	// AutoMigrate runs schema migrations on startup.
	AutoMigrate bool
	Env         string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN builds the Postgres connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type AuthConfig struct {
	// JWTSecret signs session tokens. Required outside development.
	JWTSecret string
	// TokenTTLHours is the session token lifetime.
	TokenTTLHours int
}

type RedisConfig struct {
	// Addr is optional; when empty the realtime Redis publication is disabled.
	Addr     string
	Password string
	DB       int
}

type StorageConfig struct {
	// Root is the directory user documents are written under.
	Root string
	// BaseURL prefixes the public URL stored on profile rows.
	BaseURL string
}

type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from the environment.
// Precedence: explicit env var > .env file (if loaded by caller) > default.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getEnvInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvInt("SERVER_WRITE_TIMEOUT", 30),
			IdleTimeout:  getEnvInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "hrd"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Auth: AuthConfig{
			JWTSecret:     os.Getenv("JWT_SECRET"),
			TokenTTLHours: getEnvInt("TOKEN_TTL_HOURS", 24*14),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Storage: StorageConfig{
			Root:    getEnv("STORAGE_ROOT", "data/user-documents"),
			BaseURL: getEnv("STORAGE_BASE_URL", "/files"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		WebhookURL:  os.Getenv("CHANGE_WEBHOOK_URL"),
		AutoMigrate: getEnvBool("AUTO_MIGRATE", true),
		Env:         getEnv("APP_ENV", "development"),
	}
}

// Validate fails fast on configuration the server cannot run without.
// The original system logged missing credentials and limped on; here a
// misconfigured process refuses to start.
func (c Config) Validate() error {
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("database host and name are required")
	}
	if c.Env != "development" && c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required when APP_ENV=%s", c.Env)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return def
		}
		return b
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return def
		}
		return n
	}
	return def
}
