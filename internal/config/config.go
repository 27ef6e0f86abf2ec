package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/parlaworks/promptshield/internal/rules"
)

const (
	DefaultConfigDir  = ".promptshield"
	DefaultConfigFile = "config.yaml"
	DefaultLogFile    = "audit.jsonl"

	DefaultMaxLength           = 5000
	DefaultMinLength           = 1
	DefaultConfidenceThreshold = 0.7
)

// Config is the tunable knob set, read once at pipeline construction.
// Instances are treated as read-only after the pipeline compiles them.
type Config struct {
	MaxLength int `yaml:"max_length"`
	MinLength int `yaml:"min_length"`

	// ConfidenceThreshold is advisory: no detector consults it in decision
	// logic. It is carried through to the exported guardrail document for
	// the external client's own scoring.
	ConfidenceThreshold float64 `yaml:"confidence_threshold"`

	// BlockedPatterns are raw regex strings, reject-severity, evaluated in
	// list order after the builtin content-safety rules.
	BlockedPatterns []string `yaml:"blocked_patterns"`

	// ProfanityMap is an ordered list (never a map) so sanitization order
	// and violation order stay deterministic across calls.
	ProfanityMap []rules.MaskEntry `yaml:"profanity_map"`
}

// Default returns the builtin configuration.
func Default() *Config {
	return &Config{
		MaxLength:           DefaultMaxLength,
		MinLength:           DefaultMinLength,
		ConfidenceThreshold: DefaultConfidenceThreshold,
		BlockedPatterns: []string{
			`ignore\s+(all\s+)?(previous|prior)\s+(instructions|rules)`,
		},
		ProfanityMap: rules.DefaultProfanityMap(),
	}
}

// Load reads a YAML config file. A missing file yields the defaults; zero
// fields in a present file are backfilled with defaults so partial configs
// stay valid.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.backfill()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// DefaultPath returns ~/.promptshield/config.yaml.
func DefaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return DefaultConfigFile
	}
	return filepath.Join(homeDir, DefaultConfigDir, DefaultConfigFile)
}

// DefaultLogPath returns ~/.promptshield/audit.jsonl.
func DefaultLogPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return DefaultLogFile
	}
	return filepath.Join(homeDir, DefaultConfigDir, DefaultLogFile)
}

func (c *Config) backfill() {
	if c.MaxLength == 0 {
		c.MaxLength = DefaultMaxLength
	}
	if c.MinLength == 0 {
		c.MinLength = DefaultMinLength
	}
	if c.ConfidenceThreshold == 0 {
		c.ConfidenceThreshold = DefaultConfidenceThreshold
	}
	if c.ProfanityMap == nil {
		c.ProfanityMap = rules.DefaultProfanityMap()
	}
	if c.BlockedPatterns == nil {
		c.BlockedPatterns = Default().BlockedPatterns
	}
}

// Validate rejects knob values the pipeline cannot honor.
func (c *Config) Validate() error {
	if c.MaxLength < 1 {
		return fmt.Errorf("max_length must be positive, got %d", c.MaxLength)
	}
	if c.MinLength < 1 {
		return fmt.Errorf("min_length must be positive, got %d", c.MinLength)
	}
	if c.MinLength > c.MaxLength {
		return fmt.Errorf("min_length %d exceeds max_length %d", c.MinLength, c.MaxLength)
	}
	if c.ConfidenceThreshold < 0 || c.ConfidenceThreshold > 1 {
		return fmt.Errorf("confidence_threshold must be in [0,1], got %g", c.ConfidenceThreshold)
	}
	return nil
}

// Clone returns a deep copy so a caller mutating its Config cannot affect a
// pipeline that already compiled it.
func (c *Config) Clone() *Config {
	clone := &Config{
		MaxLength:           c.MaxLength,
		MinLength:           c.MinLength,
		ConfidenceThreshold: c.ConfidenceThreshold,
	}
	clone.BlockedPatterns = make([]string, len(c.BlockedPatterns))
	copy(clone.BlockedPatterns, c.BlockedPatterns)
	clone.ProfanityMap = make([]rules.MaskEntry, len(c.ProfanityMap))
	copy(clone.ProfanityMap, c.ProfanityMap)
	return clone
}
