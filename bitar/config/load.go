package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned by Load for extensions other than .toml, .yaml and .yml.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Load reads a Patch from a TOML or YAML file, chosen by extension.
//
//	locale = "es-ES"
//
//	[num.currency]
//	currency = "EUR"
//	spaced = false
func Load(path string) (Patch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Patch{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}

	return Decode(filepath.Ext(path), data)
}

// Decode parses data as the format named by ext (".toml", ".yaml" or ".yml").
func Decode(ext string, data []byte) (Patch, error) {
	var patch Patch

	switch strings.ToLower(ext) {
	case ".toml":
		if _, err := toml.Decode(string(data), &patch); err != nil {
			return Patch{}, fmt.Errorf("config parse failed (toml): %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &patch); err != nil {
			return Patch{}, fmt.Errorf("config parse failed (yaml): %w", err)
		}
	default:
		return Patch{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	return patch, nil
}
