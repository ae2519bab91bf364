package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	"github.com/docketlabs/docket/internal/extraction"
)

// Manager handles loading and hot-reloading configuration.
type Manager struct {
	mu        sync.RWMutex
	config    *Config
	callbacks []func(*Config)
}

// NewManager creates a new config manager and loads initial config.
func NewManager(cfgFile string) (*Manager, error) {
	cm := &Manager{
		callbacks: make([]func(*Config), 0),
	}

	if err := cm.initViper(cfgFile); err != nil {
		return nil, err
	}

	cfg, err := cm.load()
	if err != nil {
		return nil, err
	}
	cm.config = cfg

	return cm, nil
}

// initViper sets up viper with defaults and config file.
func (cm *Manager) initViper(cfgFile string) error {
	// Defaults are registered per leaf key so environment overrides and
	// partial config files merge correctly.
	defaults := DefaultConfig()
	viper.SetDefault("service.endpoint", defaults.Service.Endpoint)
	viper.SetDefault("service.api_key", defaults.Service.APIKey)
	viper.SetDefault("service.api_version", defaults.Service.APIVersion)
	viper.SetDefault("service.user_agent", defaults.Service.UserAgent)
	viper.SetDefault("classifier_id", defaults.ClassifierID)
	viper.SetDefault("analyzers", defaults.Analyzers)
	viper.SetDefault("review.zoom", defaults.Review.Zoom)
	viper.SetDefault("review.max_file_mb", defaults.Review.MaxFileMB)
	viper.SetDefault("pricing.input_per_1k", defaults.Pricing.InputPer1K)
	viper.SetDefault("pricing.output_per_1k", defaults.Pricing.OutputPer1K)

	// Environment variables with DOCKET_ prefix, e.g. DOCKET_SERVICE_API_KEY
	viper.SetEnvPrefix("DOCKET")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Config file
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.docket")
	}

	// Try to read config file (not required)
	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return nil
}

// load parses the current viper state into a Config struct.
func (cm *Manager) load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Get returns the current configuration (thread-safe).
func (cm *Manager) Get() *Config {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.config
}

// OnChange registers a callback for config changes.
func (cm *Manager) OnChange(fn func(*Config)) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.callbacks = append(cm.callbacks, fn)
}

// WatchConfig enables hot-reloading of configuration.
func (cm *Manager) WatchConfig() {
	viper.OnConfigChange(func(e fsnotify.Event) {
		cfg, err := cm.load()
		if err != nil {
			return
		}

		cm.mu.Lock()
		cm.config = cfg
		callbacks := make([]func(*Config), len(cm.callbacks))
		copy(callbacks, cm.callbacks)
		cm.mu.Unlock()

		for _, fn := range callbacks {
			fn(cfg)
		}
	})
	viper.WatchConfig()
}

// ResolveEnvVars expands ${ENV_VAR} references in a string.
func ResolveEnvVars(value string) string {
	if value == "" {
		return value
	}
	pattern := regexp.MustCompile(`\$\{([^}]+)\}`)
	return pattern.ReplaceAllStringFunc(value, func(match string) string {
		varName := match[2 : len(match)-1]
		return os.Getenv(varName)
	})
}

// ExtractionConfig converts the service section into extraction client options.
// It resolves ${ENV_VAR} references in the endpoint and key.
func (c *Config) ExtractionConfig() extraction.Config {
	return extraction.Config{
		Endpoint:   ResolveEnvVars(c.Service.Endpoint),
		APIVersion: c.Service.APIVersion,
		Key:        ResolveEnvVars(c.Service.APIKey),
		UserAgent:  c.Service.UserAgent,
	}
}

// WriteDefault writes the default configuration to the specified path.
func WriteDefault(path string) error {
	cfg := DefaultConfig()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# Docket configuration
# Secrets use ${ENV_VAR} syntax to reference environment variables
# Set these in your shell: export AZURE_AI_ENDPOINT=https://... AZURE_AI_API_KEY=xxx

`)
	return os.WriteFile(path, append(header, data...), 0o644)
}
