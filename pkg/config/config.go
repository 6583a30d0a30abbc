package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Storage  StorageConfig
	AI       AIConfig
	Reminder ReminderConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	AllowedOrigins  []string
	ShutdownTimeout int
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level      string
	Format     string // "json" or "console"
	File       string // optional rotating log file
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver         string // "postgres", "mongo" or "none"
	Host           string
	Port           string
	User           string
	Password       string
	Name           string
	SSLMode        string
	MaxConns       int
	MinConns       int
	AutoMigrate    bool
	MongoURI       string
	MongoDatabase  string
	ConnectTimeout time.Duration
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Enabled        bool
	Host           string
	Port           string
	Password       string
	DB             int
	ConnectTimeout time.Duration
}

// StorageConfig holds object storage configuration for transcript archives
type StorageConfig struct {
	Enabled         bool
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	UseSSL          bool
	PublicURL       string
}

// AIConfig holds text generation configuration
type AIConfig struct {
	Provider       string // "gemini" or "groq"
	GeminiAPIKey   string
	GeminiModel    string
	GroqAPIKey     string
	GroqBaseURL    string
	GroqModel      string
	RequestTimeout time.Duration
	RepairJSON     bool
}

// ReminderConfig holds due-task reminder configuration
type ReminderConfig struct {
	Enabled  bool
	Interval time.Duration
	Channel  string
}

// Database drivers
const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
	DriverNone     = "none"
)

// AI providers
const (
	ProviderGemini = "gemini"
	ProviderGroq   = "groq"
)

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := FromEnv()

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// FromEnv builds a Config from the current environment without reading .env or validating
func FromEnv() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "5000"),
			Host:            getEnv("HOST", "0.0.0.0"),
			Environment:     getEnv("ENVIRONMENT", "development"),
			AllowedOrigins:  getEnvAsList("ALLOWED_ORIGINS", "http://localhost:3000"),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 10),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			File:       getEnv("LOG_FILE", ""),
			MaxSizeMB:  getEnvAsInt("LOG_MAX_SIZE_MB", 100),
			MaxBackups: getEnvAsInt("LOG_MAX_BACKUPS", 5),
			MaxAgeDays: getEnvAsInt("LOG_MAX_AGE_DAYS", 28),
		},
		Database: DatabaseConfig{
			Driver:         strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
			Host:           getEnv("DB_HOST", "localhost"),
			Port:           getEnv("DB_PORT", "5432"),
			User:           getEnv("DB_USER", "postgres"),
			Password:       getEnv("DB_PASSWORD", "postgres"),
			Name:           getEnv("DB_NAME", "meeting_summarizer"),
			SSLMode:        getEnv("DB_SSLMODE", "disable"),
			MaxConns:       getEnvAsInt("DB_MAX_CONNS", 25),
			MinConns:       getEnvAsInt("DB_MIN_CONNS", 5),
			AutoMigrate:    getEnvAsBool("DB_AUTO_MIGRATE", true),
			MongoURI:       getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			MongoDatabase:  getEnv("MONGODB_DATABASE", "ai-meeting-summarizer"),
			ConnectTimeout: getEnvAsDuration("DB_CONNECT_TIMEOUT", "30s"),
		},
		Redis: RedisConfig{
			Enabled:  getEnvAsBool("REDIS_ENABLED", false),
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			// separate from DB_CONNECT_TIMEOUT
			ConnectTimeout: getEnvAsDuration("REDIS_CONNECT_TIMEOUT", "10s"),
		},
		Storage: StorageConfig{
			Enabled:         getEnvAsBool("STORAGE_ENABLED", false),
			Endpoint:        getEnv("STORAGE_ENDPOINT", "localhost:9000"),
			AccessKeyID:     getEnv("STORAGE_ACCESS_KEY", "minioadmin"),
			SecretAccessKey: getEnv("STORAGE_SECRET_KEY", "minioadmin"),
			BucketName:      getEnv("STORAGE_BUCKET", "meeting-transcripts"),
			UseSSL:          getEnvAsBool("STORAGE_USE_SSL", false),
			PublicURL:       getEnv("STORAGE_PUBLIC_URL", ""),
		},
		AI: AIConfig{
			Provider:       strings.ToLower(getEnv("AI_PROVIDER", ProviderGemini)),
			GeminiAPIKey:   apiKey("GOOGLE_GEMINI_API_KEY"),
			GeminiModel:    getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
			GroqAPIKey:     apiKey("GROQ_API_KEY"),
			GroqBaseURL:    getEnv("GROQ_API_URL", "https://api.groq.com"),
			GroqModel:      getEnv("GROQ_MODEL", "llama-3.1-70b-versatile"),
			RequestTimeout: getEnvAsDuration("AI_REQUEST_TIMEOUT", "30s"),
			RepairJSON:     getEnvAsBool("AI_REPAIR_JSON", false),
		},
		Reminder: ReminderConfig{
			Enabled:  getEnvAsBool("REMINDER_ENABLED", true),
			Interval: getEnvAsDuration("REMINDER_INTERVAL", "1h"),
			Channel:  getEnv("REMINDER_CHANNEL", "tasks:due"),
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverMongo, DriverNone:
	default:
		return fmt.Errorf("DB_DRIVER must be one of postgres, mongo, none (got %q)", c.Database.Driver)
	}
	switch c.AI.Provider {
	case ProviderGemini, ProviderGroq:
	default:
		return fmt.Errorf("AI_PROVIDER must be gemini or groq (got %q)", c.AI.Provider)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console (got %q)", c.Log.Format)
	}
	if c.AI.RequestTimeout <= 0 {
		return fmt.Errorf("AI_REQUEST_TIMEOUT must be positive")
	}
	if c.Database.ConnectTimeout <= 0 {
		return fmt.Errorf("DB_CONNECT_TIMEOUT must be positive")
	}
	if c.Redis.Enabled && c.Redis.ConnectTimeout <= 0 {
		return fmt.Errorf("REDIS_CONNECT_TIMEOUT must be positive")
	}
	if c.Reminder.Enabled && c.Reminder.Interval <= 0 {
		return fmt.Errorf("REMINDER_INTERVAL must be positive")
	}
	return nil
}

// ActiveAPIKey returns the key for the configured provider, empty when none is set
func (c AIConfig) ActiveAPIKey() string {
	if c.Provider == ProviderGroq {
		return c.GroqAPIKey
	}
	return c.GeminiAPIKey
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// IsProduction reports whether the server runs in production
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// apiKey treats template placeholders such as "your_api_key_here" as unset
func apiKey(key string) string {
	value := strings.TrimSpace(getEnv(key, ""))
	if strings.HasPrefix(strings.ToLower(value), "your_") {
		return ""
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}
	return duration
}

func getEnvAsList(key string, defaultValue string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, defaultValue), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
