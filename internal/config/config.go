package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// GitHubConfig holds authentication configuration for GitHub.
type GitHubConfig struct {
	Token    string `toml:"token"`
	Username string `toml:"username"`
}

// ListingConfig controls the paginated repository fetch.
type ListingConfig struct {
	PerPage  int `toml:"per_page"`
	MaxPages int `toml:"max_pages"`
}

// Config holds all repovis configuration.
type Config struct {
	GitHub  GitHubConfig  `toml:"github"`
	Listing ListingConfig `toml:"listing"`
}

const (
	defaultPerPage  = 100
	defaultMaxPages = 2
)

// PerPageOrDefault returns Listing.PerPage clamped to the API maximum of 100,
// or the default when unset.
func (c Config) PerPageOrDefault() int {
	if c.Listing.PerPage > 0 && c.Listing.PerPage <= defaultPerPage {
		return c.Listing.PerPage
	}
	return defaultPerPage
}

// MaxPagesOrDefault returns Listing.MaxPages if set, otherwise defaultMaxPages.
func (c Config) MaxPagesOrDefault() int {
	if c.Listing.MaxPages > 0 {
		return c.Listing.MaxPages
	}
	return defaultMaxPages
}

// LoadFrom reads configuration from the given TOML file path.
// If the file does not exist, it returns an empty config without error.
// Environment variables always take precedence over file values:
//   - PAT_TOKEN, then GITHUB_TOKEN, overrides github.token
//   - GITHUB_USER overrides github.username
func LoadFrom(path string) (Config, error) {
	var cfg Config
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	applyEnvOverrides(&cfg)
	return cfg, nil
}

// DefaultConfigPath returns the default path for the repovis config file.
func DefaultConfigPath() string {
	home, _ := os.UserHomeDir()
	return home + "/.config/repovis/config.toml"
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PAT_TOKEN"); v != "" {
		cfg.GitHub.Token = v
	} else if v := os.Getenv("GITHUB_TOKEN"); v != "" {
		cfg.GitHub.Token = v
	}
	if v := os.Getenv("GITHUB_USER"); v != "" {
		cfg.GitHub.Username = v
	}
}
