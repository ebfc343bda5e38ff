package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	Server ServerConfig
	API    APIConfig
	Upload UploadConfig
	Views  ViewConfig

	// EnvFile is the .env file that was loaded, if any
	EnvFile string `ignored:"true"`
	// Warnings collects suspicious values found while loading
	Warnings []string `ignored:"true"`
}

// ServerConfig configures the console server and logging
type ServerConfig struct {
	Env          string        `envconfig:"SHELF_ENV" default:"development"`
	Port         int           `envconfig:"SHELF_PORT" default:"8090"`
	LogLevel     string        `envconfig:"SHELF_LOG_LEVEL" default:"info"`
	LogFormat    string        `envconfig:"SHELF_LOG_FORMAT" default:"json"`
	ReadTimeout  time.Duration `envconfig:"SHELF_READ_TIMEOUT" default:"15s"`
	WriteTimeout time.Duration `envconfig:"SHELF_WRITE_TIMEOUT" default:"10m"`
	CORSOrigins  []string      `envconfig:"SHELF_CORS_ORIGINS" default:"*"`
	LogBodies    bool          `envconfig:"SHELF_LOG_BODIES" default:"false"`
}

// IsDev reports whether the server runs in development mode
func (s ServerConfig) IsDev() bool {
	return strings.EqualFold(s.Env, "development") || strings.EqualFold(s.Env, "dev")
}

// APIConfig points at the price extraction backend
type APIConfig struct {
	BaseURL string        `envconfig:"SHELF_API_BASE_URL" default:"http://localhost:8080"`
	Timeout time.Duration `envconfig:"SHELF_API_TIMEOUT" default:"60s"`
}

// UploadConfig bounds the photo selection
type UploadConfig struct {
	MaxFiles     int   `envconfig:"SHELF_UPLOAD_MAX_FILES" default:"10"`
	MaxFileBytes int64 `envconfig:"SHELF_UPLOAD_MAX_FILE_BYTES" default:"10485760"`
	MaxDimension int   `envconfig:"SHELF_UPLOAD_MAX_DIMENSION" default:"0"`
}

// ViewConfig sets listing page sizes
type ViewConfig struct {
	ReviewPageSize   int `envconfig:"SHELF_REVIEW_PAGE_SIZE" default:"50"`
	ProductsPageSize int `envconfig:"SHELF_PRODUCTS_PAGE_SIZE" default:"20"`
}

// LoadConfig loads the application configuration from a .env file and the environment
func LoadConfig() (*Config, error) {
	envFile := loadEnvFile()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.EnvFile = envFile
	cfg.Warnings = validateConfig(&cfg)

	return &cfg, nil
}

// loadEnvFile loads .env from the project root above the executable, falling
// back to the working directory. Variables already set are never overridden.
func loadEnvFile() string {
	if execPath, err := os.Executable(); err == nil {
		projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(execPath)))
		envPath := filepath.Join(projectRoot, ".env")
		if err := godotenv.Load(envPath); err == nil {
			return envPath
		}
	}

	if err := godotenv.Load(); err == nil {
		return ".env"
	}
	return ""
}

// validateConfig checks for values that will not work and returns warnings
func validateConfig(cfg *Config) []string {
	var warnings []string

	if u, err := url.Parse(cfg.API.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		warnings = append(warnings, fmt.Sprintf("API base URL %q is not an absolute URL. Backend requests will fail.", cfg.API.BaseURL))
	}

	if cfg.API.Timeout <= 0 {
		warnings = append(warnings, "API timeout is not positive; requests will never time out.")
	}

	if cfg.Upload.MaxFiles <= 0 {
		warnings = append(warnings, "Upload file limit is not positive, using 10.")
		cfg.Upload.MaxFiles = 10
	}

	if cfg.Upload.MaxFileBytes <= 0 {
		warnings = append(warnings, "Upload size limit is not positive, using 10 MiB.")
		cfg.Upload.MaxFileBytes = 10 << 20
	}

	if cfg.Upload.MaxDimension < 0 {
		warnings = append(warnings, "Negative max dimension, photos will be sent unresized.")
		cfg.Upload.MaxDimension = 0
	}

	if f := strings.ToLower(cfg.Server.LogFormat); f != "json" && f != "console" {
		warnings = append(warnings, fmt.Sprintf("Unknown log format %q, using json.", cfg.Server.LogFormat))
		cfg.Server.LogFormat = "json"
	}

	if cfg.Server.WriteTimeout > 0 && cfg.Server.WriteTimeout < cfg.API.Timeout {
		warnings = append(warnings, "Server write timeout is shorter than the API timeout; upload requests may be cut off.")
	}

	return warnings
}
