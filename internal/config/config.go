package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"StockDash/internal/model"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Series struct {
		Days     int    `yaml:"days"`
		Timezone string `yaml:"timezone"`
	} `yaml:"series"`
	Analytics struct {
		Lookback  int `yaml:"lookback"`
		RSIPeriod int `yaml:"rsi_period"`
	} `yaml:"analytics"`
	Schedule struct {
		SnapshotCron string `yaml:"snapshot_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Companies []model.Company `yaml:"companies"`
	Proxy     string          `yaml:"proxy"`
}

// Load reads config from a YAML file, then a .env file in the working
// directory, then applies environment variable overrides and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Variables already set in the environment win over .env.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	// Environment variable overrides
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("SERIES_DAYS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("SERIES_DAYS: %w", err)
		}
		cfg.Series.Days = n
	}
	if v := os.Getenv("TIMEZONE"); v != "" {
		cfg.Series.Timezone = v
	}
	if v := os.Getenv("PREDICT_LOOKBACK"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("PREDICT_LOOKBACK: %w", err)
		}
		cfg.Analytics.Lookback = n
	}
	if v := os.Getenv("CRON_SNAPSHOT"); v != "" {
		cfg.Schedule.SnapshotCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Series.Days == 0 {
		cfg.Series.Days = 3 * 365
	}
	if cfg.Series.Timezone == "" {
		cfg.Series.Timezone = "Local"
	}
	if cfg.Analytics.Lookback == 0 {
		cfg.Analytics.Lookback = 60
	}
	if cfg.Analytics.RSIPeriod == 0 {
		cfg.Analytics.RSIPeriod = 14
	}
	if cfg.Schedule.SnapshotCron == "" {
		cfg.Schedule.SnapshotCron = "0 0 18 * * *"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/stockdash.db"
	}

	return cfg, nil
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if c.Series.Days <= 0 {
		return fmt.Errorf("series.days must be positive")
	}
	if c.Analytics.Lookback < 2 {
		return fmt.Errorf("analytics.lookback must be at least 2")
	}
	if c.Analytics.RSIPeriod <= 0 {
		return fmt.Errorf("analytics.rsi_period must be positive")
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("series.timezone: %w", err)
	}
	if (c.Telegram.BotToken == "") != (c.Telegram.ChatID == "") {
		return fmt.Errorf("telegram.bot_token and telegram.chat_id must be set together")
	}
	for i, co := range c.Companies {
		if co.Ticker == "" {
			return fmt.Errorf("companies[%d].ticker is required", i)
		}
	}
	return nil
}

// Location resolves the time zone whose calendar day ends each series.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Series.Timezone)
}

// TelegramEnabled reports whether digests and commands go through Telegram.
func (c *Config) TelegramEnabled() bool {
	return c.Telegram.BotToken != ""
}
