package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// Config holds all configuration values
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Backup   BackupConfig
	OpenAI   OpenAIConfig
	Query    QueryConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds database configuration. Driver is "sqlite"
// (default, Path is the database file) or "postgres" (DSN is used).
type DatabaseConfig struct {
	Driver string
	Path   string
	DSN    string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL              string
	Password         string
	KeyEncryptionKey string
}

// BackupConfig holds database backup configuration
type BackupConfig struct {
	Dir        string
	MaxBackups int
}

// OpenAIConfig holds the optional pre-seeded OpenAI API key. The key is
// passed explicitly into the NL-to-SQL gateway; nothing reads it from
// ambient state after startup.
type OpenAIConfig struct {
	APIKey string
}

// QueryConfig holds row limits for raw SQL execution
type QueryConfig struct {
	DefaultRowLimit int
	MaxRowLimit     int
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("SERVER_ENV", "development"),
		},
		Database: DatabaseConfig{
			Driver: getEnv("DB_DRIVER", "sqlite"),
			Path:   getEnv("DATABASE_PATH", filepath.Join("data", "data_warehouse.db")),
			DSN:    getEnv("DATABASE_DSN", ""),
		},
		Redis: RedisConfig{
			URL:              getEnv("REDIS_URL", "redis://localhost:6379"),
			Password:         getEnv("REDIS_PASSWORD", ""),
			KeyEncryptionKey: getEnv("API_KEY_ENCRYPTION_KEY", "0000000000000000000000000000000000000000000000000000000000000000"), // 32-byte hex string
		},
		Backup: BackupConfig{
			Dir:        getEnv("BACKUP_DIR", filepath.Join("data", "backups")),
			MaxBackups: getEnvAsInt("MAX_BACKUPS", 10),
		},
		OpenAI: OpenAIConfig{
			APIKey: getEnv("OPENAI_API_KEY", ""),
		},
		Query: QueryConfig{
			DefaultRowLimit: getEnvAsInt("DEFAULT_ROW_LIMIT", 100),
			MaxRowLimit:     getEnvAsInt("MAX_ROW_LIMIT", 1000),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
