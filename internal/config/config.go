package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the main configuration for dupe.
type Config struct {
	BaseDir    string           `toml:"base_dir"`
	LogDir     string           `toml:"log_dir"`
	Hash       HashConfig       `toml:"hash"`
	Filesystem FilesystemConfig `toml:"filesystem"`
	Prompt     PromptConfig     `toml:"prompt"`
}

// HashConfig selects the digest algorithm and read sizes.
type HashConfig struct {
	Algorithm  string `toml:"algorithm"`   // "sha1" (default), "sha256", "md5" or "xxhash"
	PrefixSize int64  `toml:"prefix_size"` // bytes hashed in the prefix pass; defaults to 1024
	ChunkSize  int    `toml:"chunk_size"`  // read size for full hashes; defaults to 64KiB
}

// FilesystemConfig holds filesystem-related settings.
type FilesystemConfig struct {
	Ignore []string `toml:"ignore"`
}

// PromptConfig holds the answers assumed for empty input at yes/no prompts.
// Valid values are "yes", "no" and "" (an answer is required).
type PromptConfig struct {
	BulkDefault    string `toml:"bulk_default"`
	ConfirmDefault string `toml:"confirm_default"`
}

// NewConfig creates a new Config with default values rooted at baseDir.
func NewConfig(baseDir string) *Config {
	return &Config{
		BaseDir: baseDir,
		LogDir:  filepath.Join(baseDir, "log"),
		Hash: HashConfig{
			Algorithm:  "sha1",
			PrefixSize: 1024,
			ChunkSize:  64 * 1024,
		},
		Prompt: PromptConfig{
			BulkDefault:    "yes",
			ConfirmDefault: "no",
		},
	}
}

// Manager handles reading and writing configuration.
type Manager struct{}

// Read decodes a Config from the provided reader.
func (m *Manager) Read(r io.Reader) (*Config, error) {
	var cfg Config
	if _, err := m.ReadInto(r, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ReadInto decodes the provided reader on top of cfg, leaving fields absent
// from the input untouched.
func (m *Manager) ReadInto(r io.Reader, cfg *Config) (toml.MetaData, error) {
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return md, fmt.Errorf("failed to decode config: %w", err)
	}
	return md, nil
}

// Write encodes a Config to the provided writer.
func (m *Manager) Write(w io.Writer, cfg *Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// Load reads the config at path on top of NewConfig(baseDir), so keys absent
// from the file keep their defaults. A missing file yields the defaults.
func Load(path, baseDir string) (*Config, error) {
	cfg := NewConfig(baseDir)

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	md, err := m.ReadInto(f, cfg)
	if err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}
	if md.IsDefined("base_dir") && !md.IsDefined("log_dir") {
		cfg.LogDir = filepath.Join(cfg.BaseDir, "log")
	}
	return cfg, nil
}

// writeToFile writes a Config to the specified file path.
// This is an internal helper and should not be exported.
func writeToFile(path string, cfg *Config) error {
	// Ensure the directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	if err := m.Write(f, cfg); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Init initializes a new config file at the specified path with the provided Config.
func Init(path string, cfg *Config) error {
	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := writeToFile(path, cfg); err != nil {
		return fmt.Errorf("initializing config: %w", err)
	}
	return nil
}
