// Package config loads the shuffleset configuration file.
//
// The file is TOML and every key is optional; missing keys keep their
// defaults and a missing file means the defaults as a whole. Command-line
// flags override whatever the file sets.
//
//	count = 4
//	force = true
//	folder_prefix = "Warmup"
//	extensions = ["mp3", "flac"]
package config

import (
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/shuffleset/pkg/errors"
	"github.com/matzehuels/shuffleset/pkg/library"
	"github.com/matzehuels/shuffleset/pkg/materialize"
	"github.com/matzehuels/shuffleset/pkg/pipeline"
	"github.com/matzehuels/shuffleset/pkg/shuffle"
)

const (
	// AppName names the configuration directory.
	AppName = "shuffleset"

	// FileName is the configuration file inside the configuration directory.
	FileName = "config.toml"
)

// Config holds the values a run can take from the configuration file.
type Config struct {
	Count        int      `toml:"count"`
	MaxCount     int      `toml:"max_count"`
	MaxAttempts  int      `toml:"max_attempts"`
	Force        bool     `toml:"force"`
	Output       string   `toml:"output"`
	FolderPrefix string   `toml:"folder_prefix"`
	TrackLabel   string   `toml:"track_label"`
	Extensions   []string `toml:"extensions"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Count:        pipeline.DefaultCount,
		MaxCount:     pipeline.DefaultMaxCount,
		MaxAttempts:  shuffle.DefaultMaxAttempts,
		FolderPrefix: materialize.DefaultFolderPrefix,
		TrackLabel:   materialize.DefaultTrackLabel,
		Extensions:   slices.Clone(library.DefaultExtensions),
	}
}

// DefaultPath returns the configuration file path using the XDG standard
// (~/.config/shuffleset/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, AppName, FileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, FileName), nil
}

// Load reads the configuration file at path on top of the defaults.
// A missing file is not an error. Unknown keys are rejected so typos do not
// go unnoticed.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeIO, err, "read config file '%s'", path)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config file '%s'", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "unknown keys in config file '%s': %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config file '%s'", path)
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	opts := c.Options("")
	if err := opts.Validate(); err != nil {
		return err
	}
	if c.MaxCount == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "max_count must be positive")
	}
	if c.MaxAttempts == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "max_attempts must be positive")
	}
	if strings.TrimSpace(c.FolderPrefix) == "" || strings.TrimSpace(c.TrackLabel) == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "folder_prefix and track_label cannot be empty")
	}
	if len(c.Extensions) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "extensions cannot be empty")
	}
	return nil
}

// Options converts the configuration into pipeline options for inputDir.
func (c Config) Options(inputDir string) pipeline.Options {
	return pipeline.Options{
		InputDir:     inputDir,
		Extensions:   slices.Clone(c.Extensions),
		Count:        c.Count,
		MaxCount:     c.MaxCount,
		MaxAttempts:  c.MaxAttempts,
		OutputRoot:   c.Output,
		FolderPrefix: c.FolderPrefix,
		TrackLabel:   c.TrackLabel,
		Force:        c.Force,
	}
}

// Encode writes the configuration as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
