package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Service  ServiceConfig  `yaml:"service"`
	Source   SourceConfig   `yaml:"source"`
	Browser  BrowserConfig  `yaml:"browser"`
	Cache    CacheConfig    `yaml:"cache"`
	Resolver ResolverConfig `yaml:"resolver"`
	Postgres PostgresConfig `yaml:"postgres"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type ServiceConfig struct {
	Addr              string        `yaml:"addr"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
}

type SourceConfig struct {
	BaseURL      string            `yaml:"base_url"`
	AnalysisPath string            `yaml:"analysis_path"` // printf template, %s = match id
	UserAgent    string            `yaml:"user_agent"`
	Timeout      time.Duration     `yaml:"timeout"`
	Headers      map[string]string `yaml:"headers"`
}

type BrowserConfig struct {
	Enabled   bool          `yaml:"enabled"`    // use the headless browser source for filtered tables
	Timeout   time.Duration `yaml:"timeout"`
	WaitAfter time.Duration `yaml:"wait_after"` // settle time after clicking a filter toggle
}

type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	TTL       time.Duration `yaml:"ttl"`
	RedisAddr string        `yaml:"redis_addr"` // empty = in-memory cache
	RedisDB   int           `yaml:"redis_db"`
}

type ResolverConfig struct {
	Workers         int `yaml:"workers"`           // bulk pipeline worker count
	LastMatchWindow int `yaml:"last_match_window"` // bounded last-match scan, 0 = full sort
}

type PostgresConfig struct {
	DSN string `yaml:"dsn"` // empty disables the fact sink
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	config.applyDefaults()

	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Service.Addr == "" {
		c.Service.Addr = ":8080"
	}
	if c.Service.ReadHeaderTimeout <= 0 {
		c.Service.ReadHeaderTimeout = 10 * time.Second
	}
	if c.Source.AnalysisPath == "" {
		c.Source.AnalysisPath = "/analysis/%s"
	}
	if c.Source.Timeout <= 0 {
		c.Source.Timeout = 15 * time.Second
	}
	if c.Browser.Timeout <= 0 {
		c.Browser.Timeout = 45 * time.Second
	}
	if c.Browser.WaitAfter <= 0 {
		c.Browser.WaitAfter = 2 * time.Second
	}
	if c.Cache.TTL <= 0 {
		c.Cache.TTL = 5 * time.Minute
	}
	if c.Resolver.Workers <= 0 {
		c.Resolver.Workers = 5
	}
}
