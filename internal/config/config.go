package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	CORS    CORSConfig
	Gateway GatewayConfig
	Upload  UploadConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// GatewayConfig holds generative model provider settings.
type GatewayConfig struct {
	APIKey      string `mapstructure:"api_key"`
	Model       string `mapstructure:"model"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// UploadConfig holds upload limits.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// MaxFileSizeBytes returns the upload limit in bytes; zero disables it.
func (u *UploadConfig) MaxFileSizeBytes() int64 {
	return u.MaxFileSizeMB * 1024 * 1024
}

// Load reads configuration from environment variables with the GUIAFLOW_
// prefix. A missing gateway API key is a startup error: the pipeline cannot
// run without it and must not discover that per request.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("GUIAFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.environment", "development")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Gateway defaults
	v.SetDefault("gateway.api_key", "")
	v.SetDefault("gateway.model", "gemini-2.5-flash")
	v.SetDefault("gateway.timeout_secs", 120)

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 25)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "GUIAFLOW_SERVER_PORT",
		"server.read_timeout":     "GUIAFLOW_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "GUIAFLOW_SERVER_WRITE_TIMEOUT",
		"server.environment":      "GUIAFLOW_SERVER_ENVIRONMENT",
		"cors.allowed_origins":    "GUIAFLOW_CORS_ALLOWED_ORIGINS",
		"gateway.api_key":         "GUIAFLOW_GATEWAY_API_KEY",
		"gateway.model":           "GUIAFLOW_GATEWAY_MODEL",
		"gateway.timeout_secs":    "GUIAFLOW_GATEWAY_TIMEOUT_SECS",
		"upload.max_file_size_mb": "GUIAFLOW_UPLOAD_MAX_FILE_SIZE_MB",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if GUIAFLOW_SERVER_PORT
	// is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("GUIAFLOW_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Gateway = GatewayConfig{
		APIKey:      v.GetString("gateway.api_key"),
		Model:       v.GetString("gateway.model"),
		TimeoutSecs: v.GetInt("gateway.timeout_secs"),
	}

	cfg.Upload = UploadConfig{
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
	}

	if cfg.Gateway.APIKey == "" {
		return nil, errors.New("gateway API key is required (set GUIAFLOW_GATEWAY_API_KEY)")
	}

	return cfg, nil
}
