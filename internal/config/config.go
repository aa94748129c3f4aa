package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers
const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	Storage           StorageConfig
	RedisplayInterval time.Duration
	LogPath           string
	Bot               BotConfig
	Database          DatabaseConfig
}

// StorageConfig selects where word sets and the archive live
type StorageConfig struct {
	Driver         string
	RepositoryPath string
	ArchivePath    string
}

// BotConfig holds Telegram bot settings
type BotConfig struct {
	Token    string
	Password string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("storage.driver", DriverFile)
	v.SetDefault("storage.repository_path", "storage/words.json")
	v.SetDefault("storage.archive_path", "storage/archive.json")
	v.SetDefault("redisplay_interval_seconds", 3600)
	v.SetDefault("log_path", "shark.log")
	v.SetDefault("bot.token", "")
	v.SetDefault("bot.password", "")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.name", "shark")
	v.SetDefault("db.user", "shark")
	v.SetDefault("db.password", "")

	v.SetConfigName("shark")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// storage.driver -> STORAGE_DRIVER, bot.token -> BOT_TOKEN
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads configuration from .env, shark.yaml and environment variables.
// Environment variables win over the file; both are optional.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	v := newViper()
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	interval, err := secondsToDuration(v.GetInt64("redisplay_interval_seconds"))
	if err != nil {
		return nil, fmt.Errorf("REDISPLAY_INTERVAL_SECONDS: %w", err)
	}

	cfg := &Config{
		Storage: StorageConfig{
			Driver:         strings.ToLower(strings.TrimSpace(v.GetString("storage.driver"))),
			RepositoryPath: v.GetString("storage.repository_path"),
			ArchivePath:    v.GetString("storage.archive_path"),
		},
		RedisplayInterval: interval,
		LogPath:           v.GetString("log_path"),
		Bot: BotConfig{
			Token:    v.GetString("bot.token"),
			Password: v.GetString("bot.password"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("db.host"),
			Port:     v.GetString("db.port"),
			Name:     v.GetString("db.name"),
			User:     v.GetString("db.user"),
			Password: v.GetString("db.password"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// maxSeconds is the largest whole number of seconds a time.Duration holds
const maxSeconds = math.MaxInt64 / int64(time.Second)

func secondsToDuration(seconds int64) (time.Duration, error) {
	if seconds > maxSeconds {
		return 0, fmt.Errorf("%d seconds is out of range (max %d)", seconds, maxSeconds)
	}
	return time.Duration(seconds) * time.Second, nil
}

// Validate checks settings shared by every front-end
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverFile:
		if c.Storage.RepositoryPath == "" {
			return fmt.Errorf("STORAGE_REPOSITORY_PATH is required")
		}
		if c.Storage.ArchivePath == "" {
			return fmt.Errorf("STORAGE_ARCHIVE_PATH is required")
		}
		if c.Storage.RepositoryPath == c.Storage.ArchivePath {
			return fmt.Errorf("STORAGE_REPOSITORY_PATH and STORAGE_ARCHIVE_PATH must differ")
		}
	case DriverPostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required")
		}
	default:
		return fmt.Errorf("STORAGE_DRIVER %q is not supported (use %s or %s)", c.Storage.Driver, DriverFile, DriverPostgres)
	}

	if c.RedisplayInterval <= 0 {
		return fmt.Errorf("REDISPLAY_INTERVAL_SECONDS must be positive")
	}
	return nil
}

// ValidateBot checks settings required by the Telegram bot
func (c *Config) ValidateBot() error {
	if c.Bot.Token == "" {
		return fmt.Errorf("BOT_TOKEN is required")
	}
	if c.Bot.Password == "" {
		return fmt.Errorf("BOT_PASSWORD is required")
	}
	return nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}
