package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigPath is the default config file location.
const ConfigPath = "config.yaml"

const defaultPageSize = 5

// FileConfig represents configuration loaded from YAML.
type FileConfig struct {
	AuthServiceURL      string `yaml:"authServiceURL"`
	InventoryServiceURL string `yaml:"inventoryServiceURL"`
	StatePath           string `yaml:"statePath"`
	LogLevel            string `yaml:"logLevel"`
	PageSize            int    `yaml:"pageSize"`
}

// Load reads config from path (defaults to config.yaml). A missing file
// is not an error; defaults and environment overrides still apply.
func Load(path string) (FileConfig, error) {
	cfg := FileConfig{
		AuthServiceURL:      "http://localhost:8080",
		InventoryServiceURL: "http://localhost:8080",
		PageSize:            defaultPageSize,
	}
	if path == "" {
		path = ConfigPath
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	case os.IsNotExist(err):
		// Run on defaults.
	default:
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if v := os.Getenv("CATALOG_AUTH_URL"); v != "" {
		cfg.AuthServiceURL = strings.TrimSpace(v)
	}
	if v := os.Getenv("CATALOG_INVENTORY_URL"); v != "" {
		cfg.InventoryServiceURL = strings.TrimSpace(v)
	}
	if v := os.Getenv("CATALOG_STATE_PATH"); v != "" {
		cfg.StatePath = strings.TrimSpace(v)
	}
	if v := os.Getenv("CATALOG_LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.TrimSpace(v)
	}
	if v := os.Getenv("CATALOG_PAGE_SIZE"); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return cfg, fmt.Errorf("config: invalid CATALOG_PAGE_SIZE %q: %w", v, err)
		}
		cfg.PageSize = n
	}
	if cfg.StatePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, fmt.Errorf("resolve home dir for state path: %w", err)
		}
		cfg.StatePath = filepath.Join(home, ".bookcatalog", "session.json")
	}
	if err := validateConfig(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func validateConfig(cfg FileConfig) error {
	if cfg.AuthServiceURL == "" {
		return errors.New("config: authServiceURL is required (set in config.yaml or CATALOG_AUTH_URL)")
	}
	if cfg.InventoryServiceURL == "" {
		return errors.New("config: inventoryServiceURL is required (set in config.yaml or CATALOG_INVENTORY_URL)")
	}
	if cfg.PageSize <= 0 {
		return errors.New("config: pageSize must be > 0")
	}
	return nil
}
