package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var (
	ErrMissingAPIKey   = errors.New("API key not set")
	ErrUnknownProvider = errors.New("unknown provider")
)

type Config struct {
	Provider string `yaml:"provider"`
	APIKey   string `yaml:"api_key,omitempty"`
	Model    string `yaml:"model"`
	BaseURL  string `yaml:"base_url,omitempty"`
	LogFile  string `yaml:"log_file,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Provider: "gemini",
		Model:    "gemini-2.5-flash",
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "lexis"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config file at path. A missing file is not an error and
// yields nil.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return &cfg, nil
}

// Resolve builds the effective configuration: defaults, then the config
// file, then .env and process environment.
func Resolve() (*Config, error) {
	// A missing .env is the common case.
	_ = godotenv.Load()

	cfg := DefaultConfig()

	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	fileCfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	if fileCfg != nil {
		cfg.merge(fileCfg)
	}

	cfg.applyEnv(os.Getenv)
	return cfg, nil
}

func (c *Config) merge(o *Config) {
	if o.Provider != "" && o.Provider != c.Provider {
		c.Provider = o.Provider
		// The default model belongs to the default provider.
		c.Model = ""
	}
	if o.Model != "" {
		c.Model = o.Model
	}
	if o.APIKey != "" {
		c.APIKey = o.APIKey
	}
	if o.BaseURL != "" {
		c.BaseURL = o.BaseURL
	}
	if o.LogFile != "" {
		c.LogFile = o.LogFile
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
}

func (c *Config) applyEnv(getenv func(string) string) {
	if v := strings.TrimSpace(getenv("LEXIS_PROVIDER")); v != "" && v != c.Provider {
		c.Provider = v
		c.Model = ""
	}
	if v := strings.TrimSpace(getenv("LEXIS_MODEL")); v != "" {
		c.Model = v
	}
	if v := strings.TrimSpace(getenv("LEXIS_BASE_URL")); v != "" {
		c.BaseURL = v
	}
	if v := strings.TrimSpace(getenv("LEXIS_LOG_FILE")); v != "" {
		c.LogFile = v
	}
	if v := strings.TrimSpace(getenv("LEXIS_LOG_LEVEL")); v != "" {
		c.LogLevel = v
	}

	if v := strings.TrimSpace(getenv("API_KEY")); v != "" {
		c.APIKey = v
	} else if info := GetProvider(c.Provider); info != nil && info.KeyEnv != "" {
		if v := strings.TrimSpace(getenv(info.KeyEnv)); v != "" {
			c.APIKey = v
		}
	}

	if c.Model == "" {
		if info := GetProvider(c.Provider); info != nil {
			c.Model = info.DefaultModel
		}
	}
}

// Validate reports configuration the application cannot start with.
func (c *Config) Validate() error {
	info := GetProvider(c.Provider)
	if info == nil {
		return fmt.Errorf("%w: %s", ErrUnknownProvider, c.Provider)
	}
	if info.NeedsAPIKey && c.APIKey == "" {
		hint := "set API_KEY"
		if info.KeyEnv != "" {
			hint += " or " + info.KeyEnv
		}
		if info.SignupURL != "" {
			hint += " (get a key at " + info.SignupURL + ")"
		}
		return fmt.Errorf("%w: %s", ErrMissingAPIKey, hint)
	}
	if c.Provider == "custom" && c.BaseURL == "" {
		return fmt.Errorf("custom provider requires base_url")
	}
	return nil
}

// LogPath returns the configured log file or the default under ConfigDir.
func (c *Config) LogPath() (string, error) {
	if c.LogFile != "" {
		return c.LogFile, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "lexis.log"), nil
}
