package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var (
	// ErrConfigMissing means no settings file existed. A default one has been
	// written and the caller should stop so the user can review it.
	ErrConfigMissing = errors.New("config file not found")
	// ErrConfigMalformed means the settings file could not be parsed or holds
	// invalid values.
	ErrConfigMalformed = errors.New("config file is malformed")
)

// Load reads, decodes and validates the settings file at path. The format is
// chosen by extension: .toml, .yaml/.yml, anything else is JSON. Optional keys
// absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigMissing, path)
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var doc map[string]any
	if err := decode(path, data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigMalformed, path, err)
	}
	if err := validateDocument(doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigMalformed, path, err)
	}

	cfg := Default()
	if err := decode(path, data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigMalformed, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigMalformed, path, err)
	}
	return cfg, nil
}

// LoadOrCreate loads path, or writes the default settings there when the file
// does not exist yet. In the latter case the defaults are returned together
// with ErrConfigMissing.
func LoadOrCreate(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := Default()
		if err := Save(cfg, path); err != nil {
			return nil, fmt.Errorf("create default config: %w", err)
		}
		return cfg, fmt.Errorf("%w: default written to %s", ErrConfigMissing, path)
	}

	return Load(path)
}

// Save writes cfg to path in the format implied by its extension.
func Save(cfg *Config, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	var (
		data []byte
		err  error
	)
	switch format(path) {
	case "toml":
		var b strings.Builder
		err = toml.NewEncoder(&b).Encode(cfg)
		data = []byte(b.String())
	case "yaml":
		data, err = yaml.Marshal(cfg)
	default:
		data, err = json.MarshalIndent(cfg, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func decode(path string, data []byte, v any) error {
	switch format(path) {
	case "toml":
		if _, err := toml.Decode(string(data), v); err != nil {
			return fmt.Errorf("decode TOML: %w", err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("decode YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("decode JSON: %w", err)
		}
	}
	return nil
}

func format(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}
