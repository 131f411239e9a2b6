package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	Extractor ExtractorConfig
	Pipeline  PipelineConfig
	Paths     PathsConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// ExtractorConfig holds vision-model configuration
type ExtractorConfig struct {
	Model          string
	APIKey         string
	AttemptTimeout time.Duration
	MaxAttempts    int
	RetryBackoff   time.Duration
}

// PipelineConfig holds background-processing configuration
type PipelineConfig struct {
	Workers        int
	QueueSize      int
	ProcessTimeout time.Duration
}

// PathsConfig holds the on-disk directories the pipeline reads/writes
type PathsConfig struct {
	UploadsDir        string
	GeneratedFormsDir string
	TemplatesDir      string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Extractor: ExtractorConfig{
			Model:          getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
			APIKey:         getEnv("GEMINI_API_KEY", ""),
			AttemptTimeout: getEnvAsDuration("EXTRACT_ATTEMPT_TIMEOUT", 90*time.Second),
			MaxAttempts:    getEnvAsInt("EXTRACT_MAX_ATTEMPTS", 3),
			RetryBackoff:   getEnvAsDuration("EXTRACT_RETRY_BACKOFF", 5*time.Second),
		},
		Pipeline: PipelineConfig{
			Workers:        getEnvAsInt("PIPELINE_WORKERS", 4),
			QueueSize:      getEnvAsInt("PIPELINE_QUEUE_SIZE", 256),
			ProcessTimeout: getEnvAsDuration("PIPELINE_PROCESS_TIMEOUT", 5*time.Minute),
		},
		Paths: PathsConfig{
			UploadsDir:        getEnv("UPLOADS_DIR", "./data/uploads"),
			GeneratedFormsDir: getEnv("GENERATED_FORMS_DIR", "./data/generated_forms"),
			TemplatesDir:      getEnv("TEMPLATES_DIR", "./static/pdf_templates"),
		},
	}
}

// Helper functions for environment variable parsing
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

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Extractor.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "GEMINI_API_KEY is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Extractor.MaxAttempts < 1 {
		return NewAppError("CONFIG_ERROR", "EXTRACT_MAX_ATTEMPTS must be at least 1", ErrInvalidInput)
	}
	return nil
}
