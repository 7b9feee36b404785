// config.go - Application configuration (YAML file + environment overrides)
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// AppConfig is the full application configuration. Values come from, in
// increasing precedence: built-in defaults, the YAML file, a .env file,
// and real environment variables.
type AppConfig struct {
	Server    ServerConfig    `yaml:"server"`
	Storage   StorageConfig   `yaml:"storage"`
	Retention RetentionConfig `yaml:"retention"`
	Analyzer  AnalyzerConfig  `yaml:"analyzer"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type ServerConfig struct {
	BindAddress  string `yaml:"bindAddress" env:"BIND_ADDRESS"`
	Port         int    `yaml:"port" env:"PORT"`
	ReadTimeout  int    `yaml:"readTimeoutSeconds"`
	WriteTimeout int    `yaml:"writeTimeoutSeconds"`
	IdleTimeout  int    `yaml:"idleTimeoutSeconds"`
	BodyLimit    string `yaml:"bodyLimit"`
	EnableCORS   bool   `yaml:"enableCors"`
	AllowOrigins string `yaml:"allowOrigins" env:"ALLOW_ORIGINS"`
	Debug        bool   `yaml:"debug" env:"DEBUG"`
}

type StorageConfig struct {
	DataDirectory string `yaml:"dataDirectory" env:"DATA_DIR"`
	StoreFile     string `yaml:"storeFile"`
	QuotaBytes    int64  `yaml:"quotaBytes" env:"STORE_QUOTA_BYTES"`
}

type RetentionConfig struct {
	ItemMaxAgeDays int   `yaml:"itemMaxAgeDays"`
	MaxUploadBytes int64 `yaml:"maxUploadBytes"`
}

type AnalyzerConfig struct {
	Provider       string `yaml:"provider"`
	APIKey         string `yaml:"-" env:"GEMINI_API_KEY"`
	Model          string `yaml:"model" env:"GEMINI_MODEL"`
	TimeoutSeconds int    `yaml:"timeoutSeconds"`
}

type LoggingConfig struct {
	Level      string `yaml:"level" env:"LOG_LEVEL"`
	Format     string `yaml:"format"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"maxSizeMb"`
	MaxBackups int    `yaml:"maxBackups"`
	MaxAgeDays int    `yaml:"maxAgeDays"`
	Compress   bool   `yaml:"compress"`
	ToStdout   bool   `yaml:"toStdout"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			BindAddress:  "0.0.0.0",
			Port:         8089,
			ReadTimeout:  30,
			WriteTimeout: 300,
			IdleTimeout:  120,
			BodyLimit:    "32M",
			EnableCORS:   true,
			AllowOrigins: "*",
		},
		Storage: StorageConfig{
			DataDirectory: "./data",
			StoreFile:     "recruitai.db",
			QuotaBytes:    5 << 20,
		},
		Retention: RetentionConfig{
			ItemMaxAgeDays: 7,
			MaxUploadBytes: 10 << 20,
		},
		Analyzer: AnalyzerConfig{
			Provider:       "gemini",
			Model:          "gemini-2.5-flash",
			TimeoutSeconds: 120,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "text",
			File:       "logs/server.log",
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 14,
			Compress:   true,
			ToStdout:   true,
		},
	}
}

// LoadConfig loads configuration. A missing YAML file is not an error;
// defaults plus environment apply. A .env file next to the working
// directory is honored when present.
func LoadConfig(configPath string) (*AppConfig, error) {
	godotenv.Load()

	cfg := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case os.IsNotExist(err):
			// fall through to defaults
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	for _, target := range []interface{}{
		&cfg.Server, &cfg.Storage, &cfg.Retention, &cfg.Analyzer, &cfg.Logging,
	} {
		if err := env.Parse(target); err != nil {
			return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
		}
	}

	return cfg, nil
}

// GetServerAddr returns the server bind address
func (c *AppConfig) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.BindAddress, c.Server.Port)
}

// StorePath returns the absolute path of the KV store file
func (c *AppConfig) StorePath() string {
	return filepath.Join(c.Storage.DataDirectory, c.Storage.StoreFile)
}

// LogPath resolves the log file location under the data directory
// unless an absolute path is configured.
func (c *AppConfig) LogPath() string {
	if filepath.IsAbs(c.Logging.File) {
		return c.Logging.File
	}
	return filepath.Join(c.Storage.DataDirectory, c.Logging.File)
}

// EnsureDirectories creates all necessary directories
func (c *AppConfig) EnsureDirectories() error {
	dirs := []string{
		c.Storage.DataDirectory,
		filepath.Dir(c.LogPath()),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
