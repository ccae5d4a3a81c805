package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Host            string        `yaml:"host"`
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
		// CORSOrigins is the browser origin allow list; ["*"] allows
		// any origin, an explicit empty list disables CORS handling.
		CORSOrigins []string `yaml:"cors_origins"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"log"`
	Yahoo struct {
		ChartURL       string        `yaml:"chart_url"`
		SearchURL      string        `yaml:"search_url"`
		UserAgent      string        `yaml:"user_agent"`
		QuoteTimeout   time.Duration `yaml:"quote_timeout"`
		HistoryTimeout time.Duration `yaml:"history_timeout"`
		SearchTimeout  time.Duration `yaml:"search_timeout"`
	} `yaml:"yahoo"`
	AlphaVantage struct {
		URL     string        `yaml:"url"`
		APIKey  string        `yaml:"api_key"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"alphavantage"`
	Cache struct {
		QuoteTTL  time.Duration `yaml:"quote_ttl"`
		SearchTTL time.Duration `yaml:"search_ttl"`
		Redis     struct {
			Enabled  bool   `yaml:"enabled"`
			Host     string `yaml:"host"`
			Port     int    `yaml:"port"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
			Prefix   string `yaml:"prefix"`
		} `yaml:"redis"`
	} `yaml:"cache"`
	Backend struct {
		URL          string        `yaml:"url"`
		Timeout      time.Duration `yaml:"timeout"`
		FallbackFile string        `yaml:"fallback_file"`
	} `yaml:"backend"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("ALPHAVANTAGE_API_KEY"); v != "" {
		c.AlphaVantage.APIKey = v
	}
	if v := os.Getenv("BACKEND_API_URL"); v != "" {
		c.Backend.URL = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		host, port, err := splitHostPort(v)
		if err == nil {
			c.Cache.Redis.Host = host
			c.Cache.Redis.Port = port
		}
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8001
	}
	if c.Server.CORSOrigins == nil {
		c.Server.CORSOrigins = []string{"*"}
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
	if c.Log.Output == "" {
		c.Log.Output = "stdout"
	}
	if c.Yahoo.ChartURL == "" {
		c.Yahoo.ChartURL = "https://query1.finance.yahoo.com/v8/finance/chart"
	}
	if c.Yahoo.SearchURL == "" {
		c.Yahoo.SearchURL = "https://query2.finance.yahoo.com/v1/finance/search"
	}
	if c.Yahoo.UserAgent == "" {
		c.Yahoo.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	}
	if c.Yahoo.QuoteTimeout == 0 {
		c.Yahoo.QuoteTimeout = 5 * time.Second
	}
	if c.Yahoo.HistoryTimeout == 0 {
		c.Yahoo.HistoryTimeout = 8 * time.Second
	}
	if c.Yahoo.SearchTimeout == 0 {
		c.Yahoo.SearchTimeout = 5 * time.Second
	}
	if c.AlphaVantage.URL == "" {
		c.AlphaVantage.URL = "https://www.alphavantage.co/query"
	}
	if c.AlphaVantage.APIKey == "" {
		c.AlphaVantage.APIKey = "demo"
	}
	if c.AlphaVantage.Timeout == 0 {
		c.AlphaVantage.Timeout = 5 * time.Second
	}
	if c.Cache.QuoteTTL == 0 {
		c.Cache.QuoteTTL = 15 * time.Second
	}
	if c.Cache.SearchTTL == 0 {
		c.Cache.SearchTTL = time.Minute
	}
	if c.Cache.Redis.Host == "" {
		c.Cache.Redis.Host = "localhost"
	}
	if c.Cache.Redis.Port == 0 {
		c.Cache.Redis.Port = 6379
	}
	if c.Cache.Redis.Prefix == "" {
		c.Cache.Redis.Prefix = "finquote"
	}
	if c.Backend.URL == "" {
		c.Backend.URL = "http://localhost:8000"
	}
	if c.Backend.Timeout == 0 {
		c.Backend.Timeout = 10 * time.Second
	}
	if c.Backend.FallbackFile == "" {
		c.Backend.FallbackFile = "transaction_data.json"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535, got %d", c.Server.Port)
	}
	if c.Yahoo.ChartURL == "" {
		return fmt.Errorf("yahoo.chart_url is required")
	}
	if c.Yahoo.SearchURL == "" {
		return fmt.Errorf("yahoo.search_url is required")
	}
	if c.AlphaVantage.URL == "" {
		return fmt.Errorf("alphavantage.url is required")
	}
	return nil
}

func splitHostPort(addr string) (string, int, error) {
	for i := len(addr) - 1; i >= 0; i-- {
		if addr[i] == ':' {
			port, err := strconv.Atoi(addr[i+1:])
			if err != nil {
				return "", 0, fmt.Errorf("parse addr %q: %w", addr, err)
			}
			return addr[:i], port, nil
		}
	}
	return "", 0, fmt.Errorf("addr %q missing port", addr)
}
