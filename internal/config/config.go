package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	S3      S3Config
	Log     LogConfig
	Image   ImageConfig
	Parser  ParserConfig
	Matcher MatcherConfig
	CORS    CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// S3Config holds settings for receipt image archival. Archival is disabled
// when Bucket is empty.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ImageConfig holds receipt image preprocessing settings.
type ImageConfig struct {
	MaxDimension  int   `mapstructure:"max_dimension"`
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// ParserConfig holds settings for the vision extraction provider.
type ParserConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	MaxTokens    int    `mapstructure:"max_tokens"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// MatcherConfig holds settings for the entity-resolution provider.
type MatcherConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
	MaxDistance  int    `mapstructure:"max_distance"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the MUNCH_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("MUNCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "munch")
	v.SetDefault("db.password", "munch_secret")
	v.SetDefault("db.name", "munch_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// S3 defaults (archival off unless a bucket is configured)
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.endpoint", "")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Image defaults
	v.SetDefault("image.max_dimension", 1024)
	v.SetDefault("image.max_file_size_mb", 20)

	// Parser defaults
	v.SetDefault("parser.provider", "openai")
	v.SetDefault("parser.api_key", "")
	v.SetDefault("parser.default_model", "gpt-4o")
	v.SetDefault("parser.max_tokens", 1000)
	v.SetDefault("parser.timeout_secs", 120)

	// Matcher defaults
	v.SetDefault("matcher.provider", "openai")
	v.SetDefault("matcher.api_key", "")
	v.SetDefault("matcher.default_model", "gpt-3.5-turbo")
	v.SetDefault("matcher.timeout_secs", 30)
	v.SetDefault("matcher.max_distance", 3)

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":            "MUNCH_SERVER_PORT",
		"server.read_timeout":    "MUNCH_SERVER_READ_TIMEOUT",
		"server.write_timeout":   "MUNCH_SERVER_WRITE_TIMEOUT",
		"server.environment":     "MUNCH_SERVER_ENVIRONMENT",
		"db.host":                "MUNCH_DB_HOST",
		"db.port":                "MUNCH_DB_PORT",
		"db.user":                "MUNCH_DB_USER",
		"db.password":            "MUNCH_DB_PASSWORD",
		"db.name":                "MUNCH_DB_NAME",
		"db.sslmode":             "MUNCH_DB_SSLMODE",
		"db.max_open":            "MUNCH_DB_MAX_OPEN",
		"db.max_idle":            "MUNCH_DB_MAX_IDLE",
		"s3.region":              "MUNCH_S3_REGION",
		"s3.bucket":              "MUNCH_S3_BUCKET",
		"s3.endpoint":            "MUNCH_S3_ENDPOINT",
		"s3.access_key":          "MUNCH_S3_ACCESS_KEY",
		"s3.secret_key":          "MUNCH_S3_SECRET_KEY",
		"log.level":              "MUNCH_LOG_LEVEL",
		"log.format":             "MUNCH_LOG_FORMAT",
		"image.max_dimension":    "MUNCH_IMAGE_MAX_DIMENSION",
		"image.max_file_size_mb": "MUNCH_IMAGE_MAX_FILE_SIZE_MB",
		"parser.provider":        "MUNCH_PARSER_PROVIDER",
		"parser.api_key":         "MUNCH_PARSER_API_KEY",
		"parser.default_model":   "MUNCH_PARSER_DEFAULT_MODEL",
		"parser.max_tokens":      "MUNCH_PARSER_MAX_TOKENS",
		"parser.timeout_secs":    "MUNCH_PARSER_TIMEOUT_SECS",
		"matcher.provider":       "MUNCH_MATCHER_PROVIDER",
		"matcher.api_key":        "MUNCH_MATCHER_API_KEY",
		"matcher.default_model":  "MUNCH_MATCHER_DEFAULT_MODEL",
		"matcher.timeout_secs":   "MUNCH_MATCHER_TIMEOUT_SECS",
		"matcher.max_distance":   "MUNCH_MATCHER_MAX_DISTANCE",
		"cors.allowed_origins":   "MUNCH_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if MUNCH_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("MUNCH_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.Image = ImageConfig{
		MaxDimension:  v.GetInt("image.max_dimension"),
		MaxFileSizeMB: v.GetInt64("image.max_file_size_mb"),
	}
	cfg.Parser = ParserConfig{
		Provider:     v.GetString("parser.provider"),
		APIKey:       v.GetString("parser.api_key"),
		DefaultModel: v.GetString("parser.default_model"),
		MaxTokens:    v.GetInt("parser.max_tokens"),
		TimeoutSecs:  v.GetInt("parser.timeout_secs"),
	}
	cfg.Matcher = MatcherConfig{
		Provider:     v.GetString("matcher.provider"),
		APIKey:       v.GetString("matcher.api_key"),
		DefaultModel: v.GetString("matcher.default_model"),
		TimeoutSecs:  v.GetInt("matcher.timeout_secs"),
		MaxDistance:  v.GetInt("matcher.max_distance"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	return cfg, nil
}
