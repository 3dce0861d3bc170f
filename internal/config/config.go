package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Twitter  TwitterConfig `yaml:"twitter"`
	Discord  DiscordConfig `yaml:"discord"`
	Storage  StorageConfig `yaml:"storage"`
	Relay    RelayConfig   `yaml:"relay"`
	LogLevel string        `yaml:"log_level"`
}

type TwitterConfig struct {
	BearerToken string   `yaml:"bearer_token"`
	BaseURL     string   `yaml:"base_url"`
	Timeout     Duration `yaml:"timeout"`
}

type DiscordConfig struct {
	WebhookURL string   `yaml:"webhook_url"`
	Timeout    Duration `yaml:"timeout"`
}

type StorageConfig struct {
	Path string `yaml:"path"`
}

type RelayConfig struct {
	Interval Duration `yaml:"interval"`
	PageSize int      `yaml:"page_size"`
	Handles  string   `yaml:"handles"`
}

// HandleList splits the comma-separated handle list, trimming whitespace and
// any leading @.
func (r RelayConfig) HandleList() []string {
	var handles []string
	for _, h := range strings.Split(r.Handles, ",") {
		h = strings.TrimPrefix(strings.TrimSpace(h), "@")
		if h != "" {
			handles = append(handles, h)
		}
	}
	return handles
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Twitter.Timeout == 0 {
		c.Twitter.Timeout = Duration(30 * time.Second)
	}
	if c.Discord.Timeout == 0 {
		c.Discord.Timeout = Duration(30 * time.Second)
	}
	if c.Storage.Path == "" {
		c.Storage.Path = "tweet_relay.db"
	}
	if c.Relay.PageSize == 0 {
		c.Relay.PageSize = 10
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate enforces the startup preconditions: the process must not begin
// ticking with an incomplete configuration.
func (c *Config) Validate() error {
	if c.Twitter.BearerToken == "" {
		return fmt.Errorf("twitter.bearer_token is required")
	}
	if c.Discord.WebhookURL == "" {
		return fmt.Errorf("discord.webhook_url is required")
	}
	if c.Relay.Interval <= 0 {
		return fmt.Errorf("relay.interval must be a positive duration, got %s", c.Relay.Interval)
	}
	if len(c.Relay.HandleList()) == 0 {
		return fmt.Errorf("relay.handles must list at least one account")
	}
	return nil
}
