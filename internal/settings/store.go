package settings

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-hclog"
)

// EnvPath overrides the settings file location.
const EnvPath = "VARIA_SETTINGS"

// DefaultPath returns the settings file location: $VARIA_SETTINGS if set,
// otherwise variations.toml under the user configuration directory.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, "varia", "variations.toml"), nil
}

// Store reads and writes a settings file.
type Store struct {
	path   string
	logger hclog.Logger
}

// NewStore creates a store for the file at path. A nil logger discards output.
func NewStore(path string, logger hclog.Logger) *Store {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Store{path: path, logger: logger.Named("settings")}
}

// Path returns the file the store operates on.
func (s *Store) Path() string {
	return s.path
}

// Load reads the settings file. A missing file yields the defaults; keys
// absent from the file keep their default values.
func (s *Store) Load() (Settings, error) {
	cfg := Default()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Debug("no settings file, using defaults", "path", s.path)
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read settings: %w", err)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Default(), fmt.Errorf("failed to parse settings %s: %w", s.path, err)
	}
	for _, key := range md.Undecoded() {
		s.logger.Warn("ignoring unknown settings key", "key", key.String())
	}

	s.logger.Debug("loaded settings", "path", s.path, "strength", cfg.Strength)
	return cfg, nil
}

// Save writes cfg, creating the parent directory if needed. The file is
// replaced atomically.
func (s *Store) Save(cfg Settings) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".variations-*.toml")
	if err != nil {
		return fmt.Errorf("failed to create temporary settings file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set settings permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace settings: %w", err)
	}

	s.logger.Debug("saved settings", "path", s.path)
	return nil
}
