package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// Config is the parameters file shared by the slow-control tooling. TOML
// is the native format; YAML is accepted for setups that template their
// configs.
type Config struct {
	Store   StoreConfig       `toml:"store" yaml:"store"`
	Modules map[string]string `toml:"modules" yaml:"modules"`
	Render  RenderConfig      `toml:"render" yaml:"render"`
}

type StoreConfig struct {
	// Base is prefixed to relative database paths; both fields may use
	// $VAR / ${VAR} environment references.
	Base  string `toml:"base" yaml:"base"`
	Path  string `toml:"path" yaml:"path"`
	Table string `toml:"table" yaml:"table"`
}

type RenderConfig struct {
	Out    string `toml:"out" yaml:"out"`
	Format string `toml:"format" yaml:"format"`
	Every  int    `toml:"every" yaml:"every"`
}

func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	switch ext := filepath.Ext(path); ext {
	case ".toml":
		if err := toml.Unmarshal(raw, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Store.Table == "" {
		c.Store.Table = "monitor_logs"
	}
	if c.Render.Format == "" {
		c.Render.Format = "html"
	}
	if c.Render.Every < 1 {
		c.Render.Every = 1
	}
}

func (c *Config) validate() error {
	if c.Store.Path == "" {
		return fmt.Errorf("store.path is required")
	}
	switch c.Render.Format {
	case "html", "png":
	default:
		return fmt.Errorf("render.format must be html or png, got %q", c.Render.Format)
	}
	return nil
}

// DatabasePath resolves the database file for a run: the explicit
// override wins over the configured default, relative paths hang off
// store.base, and environment references are expanded last.
func (c *Config) DatabasePath(override string) string {
	p := override
	if p == "" {
		p = c.Store.Path
	}
	if c.Store.Base != "" && !filepath.IsAbs(p) {
		p = c.Store.Base + "/" + p
	}
	return os.ExpandEnv(p)
}

// ModuleAddress maps a named filter to its IP address.
func (c *Config) ModuleAddress(name string) (string, error) {
	addr, ok := c.Modules[name]
	if !ok {
		known := make([]string, 0, len(c.Modules))
		for k := range c.Modules {
			known = append(known, k)
		}
		sort.Strings(known)
		return "", fmt.Errorf("unknown module filter %q (known: %s)", name, strings.Join(known, ", "))
	}
	return addr, nil
}
