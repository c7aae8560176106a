package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies a config file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatForPath picks the encoding from a file extension. Unknown
// extensions are treated as YAML.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// Load loads the survivor configuration.
// Search order: customPath -> ~/.survivor/configs/survivor.{yaml,toml} ->
// ./configs/survivor.{yaml,toml} -> embedded default.
// Only an unreadable or invalid customPath is reported as an error; broken
// files found while searching are skipped.
func Load(customPath string) (SurvivorConfig, error) {
	if customPath != "" {
		return LoadFile(customPath)
	}

	for _, candidate := range searchPaths() {
		if cfg, err := LoadFile(candidate); err == nil {
			return cfg, nil
		}
	}

	cfg := DefaultSurvivorConfig()
	if err := Decode(defaultSurvivorYAML, FormatYAML, &cfg); err != nil {
		return DefaultSurvivorConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFile reads and validates a single config file. Keys missing from the
// file keep their default values.
func LoadFile(path string) (SurvivorConfig, error) {
	cfg := DefaultSurvivorConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := Decode(data, FormatForPath(path), &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Decode unmarshals data in the given format on top of cfg.
func Decode(data []byte, format Format, cfg *SurvivorConfig) error {
	switch format {
	case FormatTOML:
		return toml.NewDecoder(bytes.NewReader(data)).Decode(cfg)
	case FormatYAML:
		return yaml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("config: unsupported format %q", format)
	}
}

// Encode marshals cfg in the given format.
func Encode(cfg SurvivorConfig, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		return toml.Marshal(cfg)
	case FormatYAML:
		return yaml.Marshal(cfg)
	default:
		return nil, fmt.Errorf("config: unsupported format %q", format)
	}
}

// searchPaths lists the implicit config locations in priority order.
func searchPaths() []string {
	var paths []string
	if dir := userConfigDir(); dir != "" {
		paths = append(paths,
			filepath.Join(dir, "survivor.yaml"),
			filepath.Join(dir, "survivor.toml"),
		)
	}
	return append(paths,
		filepath.Join("configs", "survivor.yaml"),
		filepath.Join("configs", "survivor.toml"),
	)
}

// userConfigDir returns the user config directory, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".survivor", "configs")
}
