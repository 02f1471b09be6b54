package host

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Pure-Winter-hue/Random-Start-Date/internal/config"
)

// FileConfigStore keeps the mod settings as a single JSON file in a data
// directory, mirroring the host's config-persistence API.
type FileConfigStore struct {
	Path string
}

// NewFileConfigStore places the settings file under dir using the mod's
// fixed logical file name.
func NewFileConfigStore(dir string) *FileConfigStore {
	return &FileConfigStore{Path: filepath.Join(dir, config.ConfigFileName)}
}

// Load reads the settings file. An absent file returns (nil, nil) so the
// caller can decide to write defaults back.
func (s *FileConfigStore) Load() (*config.StartConfig, error) {
	raw, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrConfigLoad, err)
	}

	var cfg config.StartConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrConfigParse, err)
	}
	return &cfg, nil
}

// Save writes the settings file, creating the data directory if needed.
func (s *FileConfigStore) Save(cfg config.StartConfig) error {
	raw, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrConfigSave, err)
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), config.DirPermUserRWX); err != nil {
		return fmt.Errorf("%s: %w", config.ErrConfigSave, err)
	}
	if err := os.WriteFile(s.Path, raw, config.FilePermUserRW); err != nil {
		return fmt.Errorf("%s: %w", config.ErrConfigSave, err)
	}
	return nil
}

// FileSaveStore keeps per-save boolean flags as a flat JSON object,
// mirroring the host's save-game key/value API. Reads and writes go through
// the file on every call; the store holds no state between them.
type FileSaveStore struct {
	Path string
}

// NewFileSaveStore places the flag file for saveID under dir.
func NewFileSaveStore(dir, saveID string) *FileSaveStore {
	return &FileSaveStore{Path: filepath.Join(dir, saveID+config.SaveFileSuffix)}
}

// GetFlag reads a flag; an absent file or key reads as false.
func (s *FileSaveStore) GetFlag(key string) (bool, error) {
	flags, err := s.read()
	if err != nil {
		return false, err
	}
	return flags[key], nil
}

// SetFlag writes a flag, preserving any other keys in the file.
func (s *FileSaveStore) SetFlag(key string, value bool) error {
	flags, err := s.read()
	if err != nil {
		return err
	}
	flags[key] = value

	raw, err := json.MarshalIndent(flags, "", "  ")
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrFlagWrite, err)
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), config.DirPermUserRWX); err != nil {
		return fmt.Errorf("%s: %w", config.ErrFlagWrite, err)
	}
	if err := os.WriteFile(s.Path, raw, config.FilePermUserRW); err != nil {
		return fmt.Errorf("%s: %w", config.ErrFlagWrite, err)
	}
	return nil
}

func (s *FileSaveStore) read() (map[string]bool, error) {
	raw, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]bool{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrFlagRead, err)
	}

	flags := map[string]bool{}
	if err := json.Unmarshal(raw, &flags); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrFlagParse, err)
	}
	return flags, nil
}
