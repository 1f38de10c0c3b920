package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/diesi/aienum/internal/errors"
	"github.com/diesi/aienum/internal/render"
)

const (
	defaultOpenAIModel = "gpt-4o-mini"
	defaultClaudeModel = "claude-3-5-haiku-latest"
	defaultGeminiModel = "gemini-1.5-flash"
	defaultCustomModel = "auto"

	// DefaultServerAddr is where `aienum serve` listens unless configured.
	DefaultServerAddr = "127.0.0.1:8787"

	// DefaultMaxRequestsPerMinute bounds provider calls when not configured.
	DefaultMaxRequestsPerMinute = 120

	// FileName is the config file looked up in $HOME (as a dotfile) and the working directory.
	FileName = "aienum.toml"
)

// Providers lists the accepted provider names.
var Providers = []string{"openai", "claude", "gemini", "custom"}

// Config holds runtime parameters merged from defaults, TOML files, env and flags.
type Config struct {
	Provider    string       `mapstructure:"provider"`
	Model       string       `mapstructure:"model"`
	APIKey      string       `mapstructure:"api_key"`
	Dictionary  string       `mapstructure:"dictionary"`   // YAML/TOML/JSON label -> identifier file
	Format      string       `mapstructure:"format"`       // ts, go, json, yaml
	Casing      bool         `mapstructure:"casing"`       // UpperCamelCase resolved identifiers
	Trailing    bool         `mapstructure:"trailing"`     // read the text after the last marker
	Interactive bool         `mapstructure:"interactive"`  // prompt for every identifier
	Mock        bool         `mapstructure:"mock"`         // offline canned identifiers
	Server      ServerConfig `mapstructure:"server"`

	// MaxRequestsPerMinute caps calls to the AI provider; 0 disables the limit.
	MaxRequestsPerMinute int `mapstructure:"max_requests_per_minute"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

func defaultModelFor(providerName string) string {
	switch providerName {
	case "claude":
		return defaultClaudeModel
	case "gemini":
		return defaultGeminiModel
	case "custom":
		return defaultCustomModel
	default:
		return defaultOpenAIModel
	}
}

// SetDefaults registers every key so env overrides reach Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("provider", "")
	v.SetDefault("model", "")
	v.SetDefault("api_key", "")
	v.SetDefault("dictionary", "")
	v.SetDefault("format", "ts")
	v.SetDefault("casing", true)
	v.SetDefault("trailing", false)
	v.SetDefault("interactive", false)
	v.SetDefault("mock", false)
	v.SetDefault("server.addr", DefaultServerAddr)
	v.SetDefault("max_requests_per_minute", DefaultMaxRequestsPerMinute)
}

// NewViper prepares a viper instance. With an explicit path only that file is
// read; otherwise ~/.aienum.toml and ./aienum.toml are merged in that order.
func NewViper(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("AIENUM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	v.SetConfigType("toml")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
		return v, nil
	}
	for _, p := range searchPaths() {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		v.SetConfigFile(p)
		if err := v.MergeInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to merge config file %s", p)
		}
	}
	return v, nil
}

func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil && strings.TrimSpace(home) != "" {
		paths = append(paths, filepath.Join(home, "."+FileName))
	}
	if wd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(wd, FileName))
	}
	return paths
}

// LoadWithViper unmarshals v, fills provider, model and key, and validates.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))
	if cfg.Provider == "" || cfg.Provider == "auto" {
		cfg.Provider = detectProvider()
	}
	if cfg.Model == "" {
		cfg.Model = defaultModelFor(cfg.Provider)
	}
	// Alias: plain gpt-5 -> specific dated release name
	if cfg.Provider == "openai" && cfg.Model == "gpt-5" {
		cfg.Model = "gpt-5-2025-08-07"
	}
	if cfg.APIKey == "" {
		cfg.APIKey = apiKeyFor(cfg.Provider)
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = DefaultServerAddr
	}
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// detectProvider picks a provider from available API keys.
// Priority when multiple are present: OpenAI > Claude > Gemini > Custom.
func detectProvider() string {
	switch {
	case strings.TrimSpace(Get(EnvOpenAIAPIKey)) != "":
		return "openai"
	case strings.TrimSpace(Get(EnvClaudeAPIKey)) != "":
		return "claude"
	case strings.TrimSpace(Get(EnvGeminiAPIKey)) != "":
		return "gemini"
	case strings.TrimSpace(Get(EnvCustomBaseURL)) != "":
		return "custom"
	default:
		// Fall back to OpenAI; a missing key is reported when a label needs translating.
		return "openai"
	}
}

func apiKeyFor(providerName string) string {
	switch providerName {
	case "claude":
		return Get(EnvClaudeAPIKey)
	case "gemini":
		return Get(EnvGeminiAPIKey)
	case "custom":
		return Get(EnvCustomAPIKey)
	default:
		return Get(EnvOpenAIAPIKey)
	}
}

// APIKeyEnv names the environment variable holding the key for providerName.
func APIKeyEnv(providerName string) string {
	switch providerName {
	case "claude":
		return EnvClaudeAPIKey
	case "gemini":
		return EnvGeminiAPIKey
	case "custom":
		return EnvCustomAPIKey
	default:
		return EnvOpenAIAPIKey
	}
}

// Validate rejects settings no component can honor.
func (c *Config) Validate() error {
	known := false
	for _, p := range Providers {
		if c.Provider == p {
			known = true
			break
		}
	}
	if !known {
		return errors.WithHintf(
			errors.Wrapf(errors.ErrUnknownProvider, "provider %q", c.Provider),
			"use one of: %s", strings.Join(Providers, ", "))
	}
	if _, err := render.ParseFormat(c.Format); err != nil {
		return err
	}
	if c.MaxRequestsPerMinute < 0 {
		return errors.Newf("max_requests_per_minute must not be negative, got %d", c.MaxRequestsPerMinute)
	}
	if c.Dictionary != "" {
		if _, err := os.Stat(c.Dictionary); err != nil {
			return errors.Wrapf(err, "dictionary %s", c.Dictionary)
		}
	}
	return nil
}
