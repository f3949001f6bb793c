package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Client is one external career site to watch.
type Client struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

type Config struct {
	Clients []Client `yaml:"clients"`

	Mail struct {
		Enabled  bool     `yaml:"enabled"`
		SMTPHost string   `yaml:"smtp_host"`
		SMTPPort int      `yaml:"smtp_port"`
		Username string   `yaml:"username"`
		From     string   `yaml:"from"`
		To       []string `yaml:"to"`
	} `yaml:"mail"`

	Scrape struct {
		NavTimeoutSeconds    int `yaml:"nav_timeout_seconds"`
		SettleSeconds        int `yaml:"settle_seconds"`
		ActionTimeoutSeconds int `yaml:"action_timeout_seconds"`
		PreviewLimit         int `yaml:"preview_limit"`
		DigestGroupLimit     int `yaml:"digest_group_limit"`
	} `yaml:"scrape"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Scrape.NavTimeoutSeconds <= 0 {
		c.Scrape.NavTimeoutSeconds = 90
	}
	if c.Scrape.SettleSeconds <= 0 {
		c.Scrape.SettleSeconds = 4
	}
	if c.Scrape.ActionTimeoutSeconds <= 0 {
		c.Scrape.ActionTimeoutSeconds = 5
	}
	if c.Scrape.PreviewLimit <= 0 {
		c.Scrape.PreviewLimit = 10
	}
	if c.Scrape.DigestGroupLimit <= 0 {
		c.Scrape.DigestGroupLimit = 25
	}
	if c.Mail.SMTPPort == 0 {
		c.Mail.SMTPPort = 587
	}
}
