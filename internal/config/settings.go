package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/handiism/mvn-downloader/internal/http"
	"github.com/handiism/mvn-downloader/internal/logger"
	"github.com/handiism/mvn-downloader/internal/resolver"
)

// EnvPrefix is the prefix for environment overrides.
const EnvPrefix = "MVNDL"

// Settings holds all configuration options.
type Settings struct {
	// Download settings
	OutputDir       string `json:"output_dir" mapstructure:"output_dir"`
	VerifyTLS       bool   `json:"verify_tls" mapstructure:"verify_tls"`
	RepositoryURL   string `json:"repository_url" mapstructure:"repository_url"`
	UserAgent       string `json:"user_agent" mapstructure:"user_agent"`
	ResponseTimeout int    `json:"response_timeout" mapstructure:"response_timeout"` // seconds
	ChunkSize       int    `json:"chunk_size" mapstructure:"chunk_size"`

	// Log settings
	Log LogSettings `json:"log" mapstructure:"log"`
}

// LogSettings configures the application logger.
type LogSettings struct {
	Level  string `json:"level" mapstructure:"level"`
	Format string `json:"format" mapstructure:"format"` // console, json
	Path   string `json:"path" mapstructure:"path"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		OutputDir:       DefaultOutputDir(),
		VerifyTLS:       true,
		RepositoryURL:   resolver.DefaultRepositoryURL,
		UserAgent:       "mvn-downloader",
		ResponseTimeout: 60,
		ChunkSize:       http.DefaultChunkSize,
		Log: LogSettings{
			Level:  "info",
			Format: "console",
		},
	}
}

// DefaultOutputDir returns the "downloads" folder next to the running
// executable, or "downloads" in the working directory when the executable
// path is unknown.
func DefaultOutputDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "downloads"
	}
	return filepath.Join(filepath.Dir(exe), "downloads")
}

func setDefaults(v *viper.Viper) {
	d := DefaultSettings()
	v.SetDefault("output_dir", d.OutputDir)
	v.SetDefault("verify_tls", d.VerifyTLS)
	v.SetDefault("repository_url", d.RepositoryURL)
	v.SetDefault("user_agent", d.UserAgent)
	v.SetDefault("response_timeout", d.ResponseTimeout)
	v.SetDefault("chunk_size", d.ChunkSize)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.path", d.Log.Path)
}

// Load reads settings from a config file. The format follows the file
// extension (json, yaml, toml); files without one are read as JSON.
// An empty path or a missing file yields defaults. Environment variables
// override both.
func Load(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if filepath.Ext(path) == "" {
				v.SetConfigType("json")
			}
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, err
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, err
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &settings, nil
}

// Validate checks that the settings can drive a download.
func (s *Settings) Validate() error {
	if strings.TrimSpace(s.OutputDir) == "" {
		return errors.New("output_dir must not be empty")
	}
	if strings.TrimSpace(s.RepositoryURL) == "" {
		return errors.New("repository_url must not be empty")
	}
	if s.ChunkSize <= 0 {
		return fmt.Errorf("chunk_size must be positive, got %d", s.ChunkSize)
	}
	if s.ResponseTimeout < 0 {
		return fmt.Errorf("response_timeout must not be negative, got %d", s.ResponseTimeout)
	}
	return nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ToHTTPOptions converts settings to client options.
func (s *Settings) ToHTTPOptions() http.Options {
	return http.Options{
		UserAgent:       s.UserAgent,
		VerifyTLS:       s.VerifyTLS,
		ResponseTimeout: time.Duration(s.ResponseTimeout) * time.Second,
		ChunkSize:       s.ChunkSize,
	}
}

// ToLoggerConfig converts settings to logger configuration.
func (s *Settings) ToLoggerConfig() logger.Config {
	return logger.Config{
		Level:    s.Log.Level,
		Format:   s.Log.Format,
		Path:     s.Log.Path,
		Compress: true,
	}
}

// NewResolver returns a resolver for the configured repository.
func (s *Settings) NewResolver() *resolver.Resolver {
	return resolver.NewResolver(s.RepositoryURL)
}
