package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	LLM     LLMConfig     `yaml:"llm"`
	QC      QCConfig      `yaml:"qc"`
	Storage StorageConfig `yaml:"storage"`
	Catalog CatalogConfig `yaml:"catalog"`
	Auth    AuthConfig    `yaml:"auth"`
	Log     LogConfig     `yaml:"log"`
	Store   StoreConfig   `yaml:"store"`
	Users   []User        `yaml:"users"`
}

type ServerConfig struct {
	Port              int `yaml:"port"`
	RateLimit         int `yaml:"rate_limit"`          // requests per window per client IP
	RateWindowSeconds int `yaml:"rate_window_seconds"` // rate limit window length
}

// LLMConfig selects and configures the text generation backend.
type LLMConfig struct {
	Provider       string `yaml:"provider"` // gemini, openai
	APIKey         string `yaml:"api_key"`
	Model          string `yaml:"model"`
	BaseURL        string `yaml:"base_url"`
	Concurrency    int    `yaml:"concurrency"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// QCConfig carries the quality-control thresholds.
type QCConfig struct {
	NearLimitRatio float64 `yaml:"near_limit_ratio"`
	MinIntroChars  int     `yaml:"min_intro_chars"`
}

type StorageConfig struct {
	Endpoint   string `yaml:"endpoint"`
	AccessKey  string `yaml:"access_key"`
	SecretKey  string `yaml:"secret_key"`
	Bucket     string `yaml:"bucket"`
	UseSSL     bool   `yaml:"use_ssl"`
	ExpireDays int    `yaml:"expire_days"`
}

// CatalogConfig configures the external template catalog proxy. An empty
// APIKey disables the upstream call; the proxy then serves an empty list.
type CatalogConfig struct {
	APIURL          string `yaml:"api_url"`
	APIKey          string `yaml:"api_key"`
	TimeoutSeconds  int    `yaml:"timeout_seconds"`
	DefaultCategory string `yaml:"default_category"`
}

type AuthConfig struct {
	JWTSecret        string `yaml:"jwt_secret"`
	TokenExpireHours int    `yaml:"token_expire_hours"`
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

type StoreConfig struct {
	MaxOnepagers int `yaml:"max_onepagers"`
}

type User struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

var GlobalConfig *Config

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Set defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.RateLimit == 0 {
		cfg.Server.RateLimit = 100
	}
	if cfg.Server.RateWindowSeconds == 0 {
		cfg.Server.RateWindowSeconds = 60
	}
	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = "gemini"
	}
	if cfg.LLM.Model == "" {
		switch cfg.LLM.Provider {
		case "openai":
			cfg.LLM.Model = "gpt-4-turbo-preview"
		default:
			cfg.LLM.Model = "gemini-2.5-pro"
		}
	}
	if cfg.LLM.Concurrency == 0 {
		cfg.LLM.Concurrency = 6
	}
	if cfg.LLM.TimeoutSeconds == 0 {
		cfg.LLM.TimeoutSeconds = 60
	}
	if cfg.QC.NearLimitRatio == 0 {
		cfg.QC.NearLimitRatio = 0.9
	}
	if cfg.QC.MinIntroChars == 0 {
		cfg.QC.MinIntroChars = 50
	}
	if cfg.Storage.ExpireDays == 0 {
		cfg.Storage.ExpireDays = 7
	}
	if cfg.Catalog.TimeoutSeconds == 0 {
		cfg.Catalog.TimeoutSeconds = 5
	}
	if cfg.Catalog.DefaultCategory == "" {
		cfg.Catalog.DefaultCategory = "flyer"
	}
	if cfg.Auth.TokenExpireHours == 0 {
		cfg.Auth.TokenExpireHours = 24
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
	if cfg.Store.MaxOnepagers == 0 {
		cfg.Store.MaxOnepagers = 100
	}

	GlobalConfig = &cfg
	return &cfg, nil
}

// Validate checks the parts of the config that must be correct before any
// generation attempt. A missing credential is fatal rather than letting
// every slot degrade to empty.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case "gemini", "openai":
	default:
		return fmt.Errorf("unknown llm provider %q", c.LLM.Provider)
	}
	if c.LLM.APIKey == "" {
		return fmt.Errorf("llm api_key is required for provider %q", c.LLM.Provider)
	}
	return nil
}

// FindUser finds a user by username
func (c *Config) FindUser(username string) *User {
	for i := range c.Users {
		if c.Users[i].Username == username {
			return &c.Users[i]
		}
	}
	return nil
}
