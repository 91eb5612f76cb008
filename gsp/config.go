package gsp

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFilePath is where a user-level config is read from and
// written to by default.
var DefaultConfigFilePath = filepath.Join(getUserHomeDir(), ".config/gsp/config.yaml")

// Config is the YAML-loadable mirror of Options. MaxK, MaxGap and MaxSpan
// use -1 in the file to mean "unbounded" (Unbounded doesn't round-trip
// cleanly through YAML), translated by ToOptions.
type Config struct {
	MinSup  float64 `yaml:"minsup"`
	MaxK    int     `yaml:"maxk"`
	MaxGap  int     `yaml:"maxgap"`
	MinGap  int     `yaml:"mingap"`
	MaxSpan int     `yaml:"maxspan"`
	Verbose bool    `yaml:"verbose"`
}

// NewConfig reads and parses a Config from filePath.
func NewConfig(filePath string) (*Config, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(bin, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultConfig returns a Config with every constraint unbounded and a
// middling minsup, the starting point GenerateSample writes out.
func DefaultConfig() Config {
	return Config{MinSup: 0.3, MaxK: -1, MaxGap: -1, MinGap: 0, MaxSpan: -1}
}

// GenerateSample writes a sample config with default values to filePath.
func GenerateSample(filePath string) error {
	bin, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, bin, 0644)
}

// ToOptions converts the file representation to Options, mapping -1 to
// Unbounded for MaxK, MaxGap and MaxSpan.
func (c Config) ToOptions() Options {
	opts := NewOptions(c.MinSup)
	if c.MaxK >= 0 {
		opts.MaxK = c.MaxK
	}
	if c.MaxGap >= 0 {
		opts.MaxGap = c.MaxGap
	}
	opts.MinGap = c.MinGap
	if c.MaxSpan >= 0 {
		opts.MaxSpan = c.MaxSpan
	}
	opts.Verbose = c.Verbose
	return opts
}

func getUserHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	return homeDir
}
