// Package config handles TOML configuration loading with environment
// variable substitution and overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config is the root configuration structure.
type Config struct {
	Download  DownloadConfig  `toml:"download"`
	Selection SelectionConfig `toml:"selection"`
	Server    ServerConfig    `toml:"server"`
}

// DownloadConfig controls where files land and how many jobs run at once.
type DownloadConfig struct {
	Dir         string `toml:"dir"`
	MaxParallel int    `toml:"max_parallel"`
}

// SelectionConfig holds the format selector policy handed to yt-dlp.
type SelectionConfig struct {
	DefaultCapHeight int    `toml:"default_cap_height"`
	MergeTemplate    string `toml:"merge_template"`
	AudioSelector    string `toml:"audio_selector"`
	AcceptVideoOnly  bool   `toml:"accept_video_only"`
}

// ServerConfig configures the optional web dashboard.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DefaultPath returns the conventional config file location under the user
// config directory, or an empty string when that cannot be resolved.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "yt-clipper", "config.toml")
}

// Load reads and parses the configuration file, then applies environment
// overrides. A missing file is not an error; the defaults are used.
func Load(path string) (*Config, error) {
	// A .env file next to the binary is a convenience for development.
	_ = godotenv.Load()

	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err == nil {
			// Substitute environment variables
			content := substituteEnvVars(string(data))
			if _, err := toml.Decode(content, &cfg); err != nil {
				return nil, fmt.Errorf("parsing config: %w", err)
			}
		}
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Download.Dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.Download.Dir = filepath.Join(home, "Downloads")
		} else {
			cfg.Download.Dir = "."
		}
	}
	if cfg.Download.MaxParallel <= 0 {
		cfg.Download.MaxParallel = 2
	}
	if cfg.Selection.DefaultCapHeight <= 0 {
		cfg.Selection.DefaultCapHeight = 1080
	}
	if cfg.Selection.MergeTemplate == "" {
		cfg.Selection.MergeTemplate = "bestvideo[height<={height}]+bestaudio/best[height<={height}]"
	}
	if cfg.Selection.AudioSelector == "" {
		cfg.Selection.AudioSelector = "bestaudio/best"
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "127.0.0.1"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8173
	}
}

func applyEnvOverrides(cfg *Config) {
	cfg.Download.Dir = getEnv("YTCLIPPER_DOWNLOAD_DIR", cfg.Download.Dir)
	cfg.Download.MaxParallel = getEnvInt("YTCLIPPER_MAX_PARALLEL", cfg.Download.MaxParallel)
	cfg.Selection.DefaultCapHeight = getEnvInt("YTCLIPPER_CAP_HEIGHT", cfg.Selection.DefaultCapHeight)
	cfg.Server.Host = getEnv("YTCLIPPER_HOST", cfg.Server.Host)
	cfg.Server.Port = getEnvInt("YTCLIPPER_PORT", cfg.Server.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1] // Strip ${ and }
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		return match // Leave unchanged if not found
	})
}
