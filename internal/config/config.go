package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Log     LogConfig
	CORS    CORSConfig
	GST     GSTConfig
	Metrics MetricsConfig
	Swagger SwaggerConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	Environment     string        `mapstructure:"environment"`
}

// IsProduction reports whether the server runs in the production environment.
func (s ServerConfig) IsProduction() bool {
	return strings.EqualFold(s.Environment, "production")
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// GSTConfig holds calculator policy.
type GSTConfig struct {
	DefaultRate decimal.Decimal `mapstructure:"default_rate"`
	// StrictRates rejects unparsable rate strings instead of falling back
	// to DefaultRate.
	StrictRates bool `mapstructure:"strict_rates"`
}

// MetricsConfig holds prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// SwaggerConfig toggles the swagger UI route.
type SwaggerConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Load reads configuration from environment variables with the VOICEGST_ prefix.
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("VOICEGST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	v.SetDefault("gst.default_rate", "18")
	v.SetDefault("gst.strict_rates", false)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	v.SetDefault("swagger.enabled", true)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "VOICEGST_SERVER_PORT",
		"server.read_timeout":     "VOICEGST_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "VOICEGST_SERVER_WRITE_TIMEOUT",
		"server.shutdown_timeout": "VOICEGST_SERVER_SHUTDOWN_TIMEOUT",
		"server.environment":      "VOICEGST_SERVER_ENVIRONMENT",
		"log.level":               "VOICEGST_LOG_LEVEL",
		"log.format":              "VOICEGST_LOG_FORMAT",
		"cors.allowed_origins":    "VOICEGST_CORS_ALLOWED_ORIGINS",
		"gst.default_rate":        "VOICEGST_GST_DEFAULT_RATE",
		"gst.strict_rates":        "VOICEGST_GST_STRICT_RATES",
		"metrics.enabled":         "VOICEGST_METRICS_ENABLED",
		"metrics.path":            "VOICEGST_METRICS_PATH",
		"swagger.enabled":         "VOICEGST_SWAGGER_ENABLED",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if VOICEGST_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("VOICEGST_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:            serverPort,
		ReadTimeout:     v.GetDuration("server.read_timeout"),
		WriteTimeout:    v.GetDuration("server.write_timeout"),
		ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		Environment:     v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
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

	rate, err := decimal.NewFromString(strings.TrimSpace(v.GetString("gst.default_rate")))
	if err != nil {
		return nil, fmt.Errorf("gst.default_rate: %w", err)
	}
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(100)) {
		return nil, fmt.Errorf("gst.default_rate: %s is outside 0-100", rate)
	}
	cfg.GST = GSTConfig{
		DefaultRate: rate,
		StrictRates: v.GetBool("gst.strict_rates"),
	}

	cfg.Metrics = MetricsConfig{
		Enabled: v.GetBool("metrics.enabled"),
		Path:    v.GetString("metrics.path"),
	}
	cfg.Swagger = SwaggerConfig{Enabled: v.GetBool("swagger.enabled")}

	return cfg, nil
}
