package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/RMahshie/bamodel/internal/response"
	"github.com/RMahshie/bamodel/pkg/models"
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig
	AWS    AWSConfig
	Grid   models.GridSpec
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           string
	Env            string
	LogLevel       zerolog.Level
	AllowedOrigins []string
}

// AWSConfig holds AWS/S3 configuration for curve export
type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	S3Bucket        string
	S3Endpoint      string
}

// ExportEnabled reports whether an export bucket is configured
func (c AWSConfig) ExportEnabled() bool {
	return c.S3Bucket != ""
}

var envKeys = []string{
	"PORT",
	"ENVIRONMENT",
	"LOG_LEVEL",
	"ALLOWED_ORIGINS",
	"GRID_START",
	"GRID_STOP",
	"GRID_POINTS",
	"GRID_SCALE",
	"AWS_REGION",
	"AWS_ACCESS_KEY_ID",
	"AWS_SECRET_ACCESS_KEY",
	"S3_BUCKET",
	"S3_ENDPOINT",
}

// Load loads configuration from environment variables and .env files
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	// Set defaults
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENVIRONMENT", "dev")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")
	v.SetDefault("GRID_START", 20.0)
	v.SetDefault("GRID_STOP", 20000.0)
	v.SetDefault("GRID_POINTS", 500)
	v.SetDefault("GRID_SCALE", "linear")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "")
	v.SetDefault("S3_BUCKET", "") // empty disables export
	v.SetDefault("S3_ENDPOINT", "")

	// Bind specific environment variable names
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	// Read from .env files based on environment
	env := v.GetString("ENVIRONMENT")
	if env == "" {
		env = "dev" // Use "dev" to match .env.dev filename
	}

	v.SetConfigName(".env." + env)
	v.SetConfigType("env")
	v.AddConfigPath(".")

	// Read .env file (ignore error if file doesn't exist)
	_ = v.ReadInConfig()

	// Environment variables override .env file values
	v.AutomaticEnv()

	level, err := zerolog.ParseLevel(strings.ToLower(v.GetString("LOG_LEVEL")))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	var config Config
	config.Server.Port = v.GetString("PORT")
	config.Server.Env = env
	config.Server.LogLevel = level
	config.Server.AllowedOrigins = splitList(v.GetString("ALLOWED_ORIGINS"))
	config.Grid = models.GridSpec{
		Start:  v.GetFloat64("GRID_START"),
		Stop:   v.GetFloat64("GRID_STOP"),
		Points: v.GetInt("GRID_POINTS"),
		Scale:  v.GetString("GRID_SCALE"),
	}
	config.AWS.Region = v.GetString("AWS_REGION")
	config.AWS.AccessKeyID = v.GetString("AWS_ACCESS_KEY_ID")
	config.AWS.SecretAccessKey = v.GetString("AWS_SECRET_ACCESS_KEY")
	config.AWS.S3Bucket = v.GetString("S3_BUCKET")
	config.AWS.S3Endpoint = v.GetString("S3_ENDPOINT")

	if err := response.ValidateGrid(config.Grid); err != nil {
		return nil, fmt.Errorf("invalid GRID_* settings: %w", err)
	}

	log.Debug().
		Strs("allowed_origins", config.Server.AllowedOrigins).
		Interface("grid", config.Grid).
		Bool("export_enabled", config.AWS.ExportEnabled()).
		Msg("Configuration loaded")

	return &config, nil
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
