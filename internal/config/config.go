package config

import (
	"fmt"
	"os"
	"strings"

	"SiliconMeter/internal/model"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Feed struct {
		URL string `yaml:"url"` // empty = demo mode with the mock fetcher
	} `yaml:"feed"`
	Schedule struct {
		PollCron string `yaml:"poll_cron"`
	} `yaml:"schedule"`
	Server struct {
		ListenAddr string `yaml:"listen_addr"`
	} `yaml:"server"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	News  []model.NewsItem `yaml:"news"`
	Proxy string           `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
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

	// Environment variable overrides
	if v := os.Getenv("FEED_URL"); v != "" {
		cfg.Feed.URL = v
	}
	if v := os.Getenv("POLL_CRON"); v != "" {
		cfg.Schedule.PollCron = v
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.Server.ListenAddr = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Schedule.PollCron == "" {
		// Fixed 5-minute cadence; the dashboard polls an immutable snapshot.
		cfg.Schedule.PollCron = "0 */5 * * * *"
	}
	if cfg.Server.ListenAddr == "" {
		cfg.Server.ListenAddr = ":8080"
	}
	if len(cfg.News) == 0 {
		cfg.News = defaultNews()
	}

	return cfg, nil
}

// Validate checks that all configured fields are usable.
func (c *Config) Validate() error {
	if c.Feed.URL != "" && !strings.HasPrefix(c.Feed.URL, "http://") && !strings.HasPrefix(c.Feed.URL, "https://") {
		return fmt.Errorf("feed.url must be an http(s) URL, got %q", c.Feed.URL)
	}
	if c.Schedule.PollCron == "" {
		return fmt.Errorf("schedule.poll_cron is required")
	}
	if c.Server.ListenAddr == "" {
		return fmt.Errorf("server.listen_addr is required")
	}
	return nil
}

// defaultNews is the curated sidebar shown when no feed is configured.
func defaultNews() []model.NewsItem {
	return []model.NewsItem{
		{Title: "DRAM contract prices climb for third straight quarter", Source: "SiliconMeter Desk"},
		{Title: "HBM supply still allocated through next year, say packagers", Source: "SiliconMeter Desk"},
		{Title: "DDR4 end-of-life discounts widen as fabs shift capacity", Source: "SiliconMeter Desk"},
	}
}
