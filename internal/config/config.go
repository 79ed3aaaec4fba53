// Package config loads the application configuration from a YAML file,
// applying defaults for anything left unset.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	// Database is the path to the durable SQLite store (credentials).
	Database string `yaml:"database"`

	// SessionDir is the directory for session-scoped state (login marker,
	// working inventory, generated recipes, pending action). Defaults to
	// a directory under the OS temp dir so it does not survive a reboot.
	SessionDir string `yaml:"session_dir"`

	AI AIConfig `yaml:"ai"`
}

// AIConfig configures the Vertex AI collaborator.
type AIConfig struct {
	ProjectID       string `yaml:"project_id"`
	Location        string `yaml:"location"`
	CredentialsFile string `yaml:"credentials_file"`
	VisionModel     string `yaml:"vision_model"`
	RecipeModel     string `yaml:"recipe_model"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads and decodes a YAML config file, then fills defaults.
// Unknown fields are rejected so a typo fails loudly instead of being
// silently ignored.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Path returns the config file location: the FRIGO_CONFIG environment
// variable when set, otherwise frigo.yaml in the working directory.
func Path() string {
	if path := os.Getenv("FRIGO_CONFIG"); path != "" {
		return path
	}
	return "frigo.yaml"
}

func (c *Config) applyDefaults() {
	if c.Database == "" {
		c.Database = "frigo.db"
	}
	if c.SessionDir == "" {
		c.SessionDir = filepath.Join(os.TempDir(), "frigo-session")
	}
	if c.AI.Location == "" {
		c.AI.Location = "us-central1"
	}
	if c.AI.VisionModel == "" {
		c.AI.VisionModel = "gemini-pro-vision"
	}
	if c.AI.RecipeModel == "" {
		c.AI.RecipeModel = "gemini-1.5-flash"
	}
	if c.AI.ProjectID == "" {
		c.AI.ProjectID = os.Getenv("GOOGLE_PROJECT_ID")
	}
	if c.AI.CredentialsFile == "" {
		c.AI.CredentialsFile = os.Getenv("GOOGLE_CREDENTIALS_FILE")
	}
}
