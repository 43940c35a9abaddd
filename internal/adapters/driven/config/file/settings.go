// Package file provides file-based configuration adapters: TOML
// settings and user-editable prompt templates.
package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/paperchat/internal/core/domain"
)

// DefaultConfigFileName is the settings file name inside the config
// directory.
const DefaultConfigFileName = "config.toml"

// DefaultConfigDir returns the per-user configuration directory,
// ~/.paperchat.
func DefaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: get home directory: %v", domain.ErrInvalidConfig, err)
	}
	return filepath.Join(home, ".paperchat"), nil
}

// LoadSettings reads the TOML settings file at path, layered over the
// defaults, and validates the result. If path is empty the default
// location is used, and a commented default file is written when none
// exists yet. Malformed or invalid settings are fatal.
func LoadSettings(path string) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	if path == "" {
		dir, err := DefaultConfigDir()
		if err != nil {
			return settings, err
		}
		path = filepath.Join(dir, DefaultConfigFileName)

		if err := writeDefaultFile(path, settings); err != nil {
			return settings, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return settings, fmt.Errorf("%w: reading %q: %v", domain.ErrInvalidConfig, path, err)
	}

	if err := toml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("%w: parsing %q: %v", domain.ErrInvalidConfig, path, err)
	}

	if err := settings.Validate(); err != nil {
		return settings, fmt.Errorf("%q: %w", path, err)
	}

	return settings, nil
}

// writeDefaultFile creates the settings file with defaults when it
// does not exist yet. Existing files are never touched.
func writeDefaultFile(path string, settings domain.Settings) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: stat %q: %v", domain.ErrInvalidConfig, path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("%w: create config directory: %v", domain.ErrInvalidConfig, err)
	}

	data, err := toml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("%w: encode defaults: %v", domain.ErrInvalidConfig, err)
	}

	header := []byte("# Paperchat configuration. Edit and re-run.\n# input_folder must point at a directory of PDF files before ingesting.\n\n")
	if err := os.WriteFile(path, append(header, data...), 0600); err != nil {
		return fmt.Errorf("%w: write %q: %v", domain.ErrInvalidConfig, path, err)
	}

	return nil
}
