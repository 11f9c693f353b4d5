package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-graphrag/pkg/chunks"
	"github.com/dd0wney/cluso-graphrag/pkg/validation"
)

// Config is the toolkit configuration, loaded from a graphrag.yaml file.
type Config struct {
	// Artifact locations
	GraphPath string `yaml:"graph_path"`
	ChunkDir  string `yaml:"chunk_dir"`
	OutputDir string `yaml:"output_dir"`

	// Artifact naming convention for per-chunk extraction outputs
	ChunkPattern string `yaml:"chunk_pattern,omitempty"`

	// Query settings
	DefaultHops int `yaml:"default_hops"`

	// Logging
	LogLevel string `yaml:"log_level,omitempty"` // debug, info, warn, error
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		GraphPath:    "data/graph.json",
		ChunkDir:     "data/chunks",
		OutputDir:    "output",
		ChunkPattern: chunks.DefaultPattern,
		DefaultHops:  validation.DefaultHops,
		LogLevel:     "info",
	}
}

// Load reads and validates a config file. A missing file is not an error:
// defaults are returned so the toolkit works with zero configuration.
// Environment variables (GRAPHRAG_GRAPH_PATH, GRAPHRAG_CHUNK_DIR,
// GRAPHRAG_OUTPUT_DIR, GRAPHRAG_DEFAULT_HOPS, GRAPHRAG_LOG_LEVEL) override
// file values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("GRAPHRAG_GRAPH_PATH"); v != "" {
		c.GraphPath = v
	}
	if v := os.Getenv("GRAPHRAG_CHUNK_DIR"); v != "" {
		c.ChunkDir = v
	}
	if v := os.Getenv("GRAPHRAG_OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv("GRAPHRAG_DEFAULT_HOPS"); v != "" {
		hops, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("GRAPHRAG_DEFAULT_HOPS must be an integer, got %q", v)
		}
		c.DefaultHops = hops
	}
	if v := os.Getenv("GRAPHRAG_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	return nil
}

// Validate checks settings that would otherwise surface as confusing
// failures deep in the pipeline.
func (c *Config) Validate() error {
	if c.GraphPath == "" {
		return fmt.Errorf("graph_path must not be empty")
	}
	if c.ChunkDir == "" {
		return fmt.Errorf("chunk_dir must not be empty")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	if c.DefaultHops < 0 || c.DefaultHops > validation.MaxHops {
		return fmt.Errorf("default_hops must be between 0 and %d, got %d", validation.MaxHops, c.DefaultHops)
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error; got %q", c.LogLevel)
	}
	return nil
}
