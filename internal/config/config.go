package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	AI       AIConfig
	Security SecurityConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// AIConfig configures the external language-model collaborator used
// for category suggestions and spend insights. An empty APIKey
// disables both features; nothing else in the API depends on them.
type AIConfig struct {
	APIKey   string
	Model    string
	BaseURL  string
	Timeout  time.Duration
	Attempts int
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "spendtrack_user"),
			Password:        getEnv("DB_PASSWORD", "spendtrack_password"),
			Name:            getEnv("DB_NAME", "spendtrack_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		AI: AIConfig{
			APIKey:   getEnv("GEMINI_API_KEY", ""),
			Model:    getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			BaseURL:  getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
			Timeout:  getDurationEnv("GEMINI_TIMEOUT", 20*time.Second),
			Attempts: getIntEnv("GEMINI_RETRY_ATTEMPTS", 2),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	if config.AI.APIKey == "" {
		log.Println("GEMINI_API_KEY not set, AI features will be disabled")
	}

	return config
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins). Consider setting specific origins for security.")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	return origins
}
