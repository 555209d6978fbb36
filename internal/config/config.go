package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // zone database for minimal container images

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/aliskhannn/lexiquest/internal/domain/entities"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string    `mapstructure:"env" validate:"required"`             // current application environment (local, dev, production etc)
	TelegramAPIToken string    `mapstructure:"-"`                                   // Telegram API token loaded from environment
	WordsJSONPath    string    `mapstructure:"words_json_path" validate:"required"` // bundled vocabulary
	LogLevel         string    `mapstructure:"log_level"`                           // overrides the environment's default level
	Timezone         string    `mapstructure:"timezone"`                            // calendar used for the daily challenge
	DB               DB        `mapstructure:"database"`
	Storage          Storage   `mapstructure:"storage"`
	Practice         Practice  `mapstructure:"practice"`
	Reminders        Reminders `mapstructure:"reminders"`
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                                        // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections" validate:"gte=1,lte=500"` // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`                        // maximum lifetime of a single connection
}

// Storage selects the backend for learner data.
type Storage struct {
	Driver     string `mapstructure:"driver" validate:"oneof=postgres sqlite"`
	SQLitePath string `mapstructure:"sqlite_path" validate:"required_if=Driver sqlite"`
}

// Practice tunes session building.
type Practice struct {
	SessionSize     int           `mapstructure:"session_size" validate:"gte=5,lte=50"`
	DistractorCount int           `mapstructure:"distractor_count" validate:"gte=1,lte=7"`
	DailySize       int           `mapstructure:"daily_size" validate:"gte=1,lte=50"`
	SessionTTL      time.Duration `mapstructure:"session_ttl"` // idle sessions are dropped after this
}

// Reminders configures the due-card nudges.
type Reminders struct {
	Enabled   bool    `mapstructure:"enabled"`
	Cron      string  `mapstructure:"cron" validate:"required_if=Enabled true"`
	PerSecond float64 `mapstructure:"per_second" validate:"gte=0"`
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", fmt.Errorf("%w: DATABASE_URL", ErrMissingEnvironmentVariables)
	}
	return db.URL, nil
}

// Token returns the Telegram API token if it is configured.
func (c *Config) Token() (string, error) {
	if c.TelegramAPIToken == "" {
		return "", fmt.Errorf("%w: TELEGRAM_API_TOKEN", ErrMissingEnvironmentVariables)
	}
	return c.TelegramAPIToken, nil
}

// Location returns the configured time zone, UTC when unset. Fixed
// offsets like "UTC+3" are accepted too.
func (c *Config) Location() (*time.Location, error) {
	loc, err := entities.ParseLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Load reads configuration from config files and environment variables.
// An empty path searches ./config for config.yaml.
func Load(path string) (*Config, error) {
	// A .env file is optional; real environment variables take precedence.
	_ = godotenv.Load()

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
	}

	v.SetDefault("env", "local")
	v.SetDefault("words_json_path", "assets/data/words.json")
	v.SetDefault("timezone", "UTC")
	v.SetDefault("database.max_connections", 20)
	v.SetDefault("database.max_conn_lifetime", "30s")
	v.SetDefault("storage.driver", DriverPostgres)
	v.SetDefault("storage.sqlite_path", "data/lexiquest.db")
	v.SetDefault("practice.session_size", 20)
	v.SetDefault("practice.distractor_count", 3)
	v.SetDefault("practice.daily_size", 10)
	v.SetDefault("practice.session_ttl", "2h")
	v.SetDefault("reminders.enabled", false)
	v.SetDefault("reminders.cron", "0 * * * *")
	v.SetDefault("reminders.per_second", 20)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("storage.sqlite_path", "SQLITE_PATH")

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	cfg.DB.URL = v.GetString("database_url")

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
