package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	ammmath "github.com/krazyTry/concentrated-amm-go/math"
	"github.com/krazyTry/concentrated-amm-go/pool"
)

const (
	FormatText = "text"
	FormatJSON = "json"

	DefaultWidth = 10
)

// Config binprice configuration
type Config struct {
	App    AppConfig    `yaml:"app"`
	Output OutputConfig `yaml:"output"`
	Pools  []PoolConfig `yaml:"pools"`
}

// AppConfig application basic configuration
type AppConfig struct {
	Name     string `yaml:"name"`
	LogLevel string `yaml:"logLevel"` // debug, info, warn, error
}

// OutputConfig controls how quotes are printed
type OutputConfig struct {
	Format  string `yaml:"format"` // text, json
	RoundUp bool   `yaml:"roundUp"`
}

// PoolConfig one pool to quote. Either binStep/activeBin or configJson is set.
type PoolConfig struct {
	Name       string `yaml:"name"`
	BinStep    uint32 `yaml:"binStep"`
	ActiveBin  int32  `yaml:"activeBin"`
	Width      int32  `yaml:"width"`      // bins quoted on each side of the active bin
	ConfigJSON string `yaml:"configJson"` // saved get_config result, relative to the config file
	ConfigPath string `yaml:"configPath"` // gjson path of the config inside configJson
}

// Load loads configuration from file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.setDefaults()
	cfg.resolvePaths(filepath.Dir(path))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.App.Name == "" {
		c.App.Name = "binprice"
	}
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.Output.Format == "" {
		c.Output.Format = FormatText
	}
	for i := range c.Pools {
		if c.Pools[i].Width == 0 {
			c.Pools[i].Width = DefaultWidth
		}
	}
}

func (c *Config) resolvePaths(dir string) {
	for i := range c.Pools {
		p := &c.Pools[i]
		if p.ConfigJSON != "" && !filepath.IsAbs(p.ConfigJSON) {
			p.ConfigJSON = filepath.Join(dir, p.ConfigJSON)
		}
	}
}

// Validate validates configuration
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("output.format must be %q or %q, got %q", FormatText, FormatJSON, c.Output.Format)
	}
	if len(c.Pools) == 0 {
		return fmt.Errorf("at least one pool must be configured")
	}
	for i, p := range c.Pools {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("pools[%d]: %w", i, err)
		}
	}
	return nil
}

// Validate checks one pool entry
func (p *PoolConfig) Validate() error {
	if p.Width < 0 || 2*int64(p.Width)+1 > pool.MaxQuoteRange {
		return fmt.Errorf("width %d out of range", p.Width)
	}
	if p.ConfigJSON != "" {
		return nil
	}
	if p.BinStep == 0 || p.BinStep >= ammmath.BasisPointMax {
		return fmt.Errorf("binStep %d must be within 1..%d", p.BinStep, ammmath.BasisPointMax-1)
	}
	return nil
}

// Resolve builds the pool configuration, reading configJson when it is set.
func (p *PoolConfig) Resolve() (*pool.Config, error) {
	if p.ConfigJSON == "" {
		cfg := &pool.Config{BinStep: p.BinStep, ActiveBin: p.ActiveBin}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	raw, err := os.ReadFile(p.ConfigJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to read pool config: %w", err)
	}
	return pool.ParseConfigAt(raw, p.ConfigPath)
}
