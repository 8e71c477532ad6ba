package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadValuesFile reads a flat key/value parameter file for a profile run.
// YAML (.yaml, .yml) and TOML (.toml) are supported. Values are expanded
// against the environment.
func LoadValuesFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read values file: %w", err)
	}

	raw := make(map[string]any)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported values file %s: use .yaml, .yml or .toml", path)
	}

	values := make(map[string]string, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			values[key] = os.ExpandEnv(v)
		case int, int64, uint64, float64, bool:
			values[key] = fmt.Sprint(v)
		default:
			return nil, fmt.Errorf("value of %q in %s must be a scalar, got %T", key, path, value)
		}
	}
	return values, nil
}
