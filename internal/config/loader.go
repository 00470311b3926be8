package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Local search locations, relative to the working directory.
const (
	localConfigPath  = "configs/birdsplanes.yaml"
	legacyConfigPath = "config.json"
)

// Load returns the game configuration. It never fails: problems are logged
// and replaced by defaults.
//
// Search order: customPath -> ~/.birdsplanes/config.yaml ->
// ./configs/birdsplanes.yaml -> ./config.json -> embedded default.
// The first file that exists wins. A file that exists but cannot be read or
// parsed yields the full default configuration.
func Load(customPath string, logger *log.Logger) Config {
	cfg, source, err := load(customPath)
	if err != nil {
		logger.Warn("config unusable, using defaults", "source", source, "error", err)
		cfg = Default()
		source = "defaults"
	}

	for _, p := range cfg.Validate() {
		logger.Warn("invalid config value replaced with default", "key", p.Key, "value", p.Value, "reason", p.Reason)
	}

	logger.Debug("config loaded", "source", source)
	return cfg
}

// load finds and decodes the first available config file.
func load(customPath string) (Config, string, error) {
	candidates := []string{}
	if customPath != "" {
		candidates = append(candidates, customPath)
	}
	if userPath := userConfigPath("config.yaml"); userPath != "" {
		candidates = append(candidates, userPath)
	}
	candidates = append(candidates, localConfigPath, legacyConfigPath)

	for i, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			// A missing custom file is an error; missing search paths are not.
			if errors.Is(err, fs.ErrNotExist) && !(customPath != "" && i == 0) {
				continue
			}
			return Config{}, path, fmt.Errorf("config: cannot read %s: %w", path, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, path, fmt.Errorf("config: cannot parse %s: %w", path, err)
		}
		return cfg, path, nil
	}

	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), "builtin", nil
	}
	return cfg, "embedded", nil
}

// Parse decodes YAML (or JSON) on top of the defaults, so keys missing from
// data keep their default values. It does not validate.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal renders a configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".birdsplanes", filename)
}
