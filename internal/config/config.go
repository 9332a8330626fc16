package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Snapshot sources
const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	ServerAddress    string `mapstructure:"SERVER_ADDRESS"`
	BotServerAddress string `mapstructure:"BOT_SERVER_ADDRESS"`
	DBSource         string `mapstructure:"DB_SOURCE"`
	DataFile         string `mapstructure:"DATA_FILE"`
	SnapshotSource   string `mapstructure:"SNAPSHOT_SOURCE"`

	PageSize        int `mapstructure:"PAGE_SIZE"`
	PreviewSize     int `mapstructure:"PREVIEW_SIZE"`
	BotMaxResults   int `mapstructure:"BOT_MAX_RESULTS"`
	SearchCacheSize int `mapstructure:"SEARCH_CACHE_SIZE"`

	LineChannelSecret      string `mapstructure:"LINE_CHANNEL_SECRET"`
	LineChannelAccessToken string `mapstructure:"LINE_CHANNEL_ACCESS_TOKEN"`
	BotRatePerMinute       int    `mapstructure:"BOT_RATE_PER_MINUTE"`
	BotRateBurst           int    `mapstructure:"BOT_RATE_BURST"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`
	GinMode   string `mapstructure:"GIN_MODE"`
}

// LoadConfig reads configuration from app.env in path, overridden by environment variables.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("BOT_SERVER_ADDRESS", "0.0.0.0:8081")
	v.SetDefault("DATA_FILE", "data/data.json")
	v.SetDefault("SNAPSHOT_SOURCE", SourceFile)
	v.SetDefault("PAGE_SIZE", 200)
	v.SetDefault("PREVIEW_SIZE", 50)
	v.SetDefault("BOT_MAX_RESULTS", 5)
	v.SetDefault("SEARCH_CACHE_SIZE", 256)
	v.SetDefault("BOT_RATE_PER_MINUTE", 30)
	v.SetDefault("BOT_RATE_BURST", 5)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("GIN_MODE", "release")

	// Every key must be known to viper for AutomaticEnv to reach Unmarshal.
	for _, key := range []string{"DB_SOURCE", "LINE_CHANNEL_SECRET", "LINE_CHANNEL_ACCESS_TOKEN"} {
		v.SetDefault(key, "")
	}

	var config Config
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return config, fmt.Errorf("config: failed to read config file: %w", err)
		}
	}

	if err := v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: failed to decode config: %w", err)
	}

	config.SnapshotSource = strings.ToLower(strings.TrimSpace(config.SnapshotSource))
	if err := config.Validate(); err != nil {
		return config, err
	}

	return config, nil
}

// Validate checks values that cannot be defaulted.
func (c Config) Validate() error {
	switch c.SnapshotSource {
	case SourceFile:
		if c.DataFile == "" {
			return fmt.Errorf("config: DATA_FILE is required when SNAPSHOT_SOURCE=%s", SourceFile)
		}
	case SourcePostgres:
		if c.DBSource == "" {
			return fmt.Errorf("config: DB_SOURCE is required when SNAPSHOT_SOURCE=%s", SourcePostgres)
		}
	default:
		return fmt.Errorf("config: unknown SNAPSHOT_SOURCE %q", c.SnapshotSource)
	}

	if c.PageSize <= 0 || c.PreviewSize <= 0 || c.BotMaxResults <= 0 {
		return fmt.Errorf("config: PAGE_SIZE, PREVIEW_SIZE and BOT_MAX_RESULTS must be positive")
	}

	return nil
}

// RequireBotCredentials reports an error when the LINE channel credentials are missing.
func (c Config) RequireBotCredentials() error {
	var missing []string
	if c.LineChannelSecret == "" {
		missing = append(missing, "LINE_CHANNEL_SECRET")
	}
	if c.LineChannelAccessToken == "" {
		missing = append(missing, "LINE_CHANNEL_ACCESS_TOKEN")
	}
	if len(missing) > 0 {
		return fmt.Errorf("config: missing bot credentials: %s", strings.Join(missing, ", "))
	}
	return nil
}
