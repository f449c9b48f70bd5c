// Package config loads the optional edidctl YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output controls how generated .reg documents are written.
type Output struct {
	Directory string `yaml:"directory"`
	Encoding  string `yaml:"encoding"`
	WithBOM   bool   `yaml:"withBOM"`
	WrapLines bool   `yaml:"wrapLines"`
}

// Logs configures the rotating log file.
type Logs struct {
	Enabled    bool   `yaml:"enabled"`
	Directory  string `yaml:"directory"`
	Level      string `yaml:"level"`
	MaxSizeMB  int    `yaml:"maxSizeMB"`
	MaxAgeDays int    `yaml:"maxAgeDays"`
	MaxBackups int    `yaml:"maxBackups"`
	Compress   bool   `yaml:"compress"`
}

// Defaults seeds edit requests when flags are not given.
type Defaults struct {
	InputEncoding        string `yaml:"inputEncoding"`
	SetPreferredModeSize bool   `yaml:"setPreferredModeSize"`
}

// Config is the decoded configuration file.
type Config struct {
	Output   Output   `yaml:"output"`
	Logs     Logs     `yaml:"logs"`
	Defaults Defaults `yaml:"defaults"`

	// Path is the file the configuration was read from ("" for defaults).
	Path string `yaml:"-"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Output: Output{Encoding: "UTF-8"},
		Logs:   Logs{Level: "info", MaxSizeMB: 10, MaxAgeDays: 30, MaxBackups: 3},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/edidkit/config.yaml (or the platform
// equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "edidkit", "config.yaml"), nil
}

// Load reads path over the defaults. When path is empty the default
// location is tried and a missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	cfg.Path = path

	baseDir := filepath.Dir(path)
	cfg.Output.Directory = resolvePath(baseDir, cfg.Output.Directory)
	cfg.Logs.Directory = resolvePath(baseDir, cfg.Logs.Directory)
	return cfg, nil
}

// resolvePath makes p absolute relative to baseDir, expanding a leading ~.
func resolvePath(baseDir, p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(baseDir, p)
}
