package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnknownKey is returned when a configuration file sets a key that does
// not exist.
var ErrUnknownKey = errors.New("config: unknown key")

// Load reads, decodes and validates the configuration file at path.
// The format is chosen by extension (.toml, .yaml, .yml, .json); any other
// extension is tried as TOML and then YAML. Keys missing from the file
// keep their defaults.
func Load(path string) (*Config, error) {
	cfg, err := loadConfigFromFile(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// loadConfigFromFile reads and decodes a config file based on its extension.
func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read: %w", err)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = decodeTOML(data, cfg)
	case ".yaml", ".yml":
		err = decodeYAML(data, cfg)
	case ".json":
		err = decodeJSON(data, cfg)
	default:
		err = autoDetectAndDecode(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func decodeTOML(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return fmt.Errorf("decode TOML: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: %s", ErrUnknownKey, undecoded[0])
	}
	return nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode YAML: %w", err)
	}
	return nil
}

func decodeJSON(data []byte, cfg *Config) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("decode JSON: %w", err)
	}
	return nil
}

// autoDetectAndDecode tries TOML first and then YAML, which also accepts
// JSON documents.
func autoDetectAndDecode(data []byte, cfg *Config) error {
	tomlCfg := *cfg
	tomlErr := decodeTOML(data, &tomlCfg)
	if tomlErr == nil {
		*cfg = tomlCfg
		return nil
	}
	yamlCfg := *cfg
	if err := decodeYAML(data, &yamlCfg); err != nil {
		return fmt.Errorf("unrecognized format: %w", errors.Join(tomlErr, err))
	}
	*cfg = yamlCfg
	return nil
}
