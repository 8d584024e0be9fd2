package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds client configuration. Values come from SMARTHIRE_* environment
// variables; command-line flags override them.
type Config struct {
	APIURL   string        `envconfig:"API_URL" default:"http://localhost:8000/api"`
	StateDir string        `envconfig:"STATE_DIR"`
	Timeout  time.Duration `envconfig:"TIMEOUT" default:"30s"`
}

// LoadConfig reads configuration from the environment and fills defaults.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("smarthire", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if cfg.StateDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		cfg.StateDir = filepath.Join(homeDir, ".smarthire")
	}

	return &cfg, nil
}

// StatePath returns the path of the state store database.
func (c *Config) StatePath() string {
	return filepath.Join(c.StateDir, "state.db")
}
