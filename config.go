package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
)

// ConfigFileName is looked up next to the source file.
const ConfigFileName = "titania.toml"

// tomlConfigFile represents the config file as it is encoded in TOML
type tomlConfigFile struct {
	LogLevel string     `toml:"loglevel,omitempty"`
	Build    *tomlBuild `toml:"build"`
}

// tomlBuild represents the [build] table
type tomlBuild struct {
	OutputDir       string `toml:"output-dir,omitempty"`
	Extension       string `toml:"extension,omitempty"`
	EmitResultTypes bool   `toml:"emit-result-types"`
}

// Config is the resolved build configuration.
type Config struct {
	LogLevel        string
	OutputDir       string
	Extension       string
	EmitResultTypes bool
}

// DefaultConfig returns the configuration used when no file is present.
// An empty OutputDir means the working directory.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:  "verbose",
		Extension: ".wat",
	}
}

// LoadConfig reads the config file at path on top of the defaults. A missing
// file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	buff, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	} else if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := cfg.apply(buff, filepath.Dir(path)); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// apply overlays the TOML document buff. Relative output directories are
// resolved against baseDir.
func (cfg *Config) apply(buff []byte, baseDir string) error {
	tcf := &tomlConfigFile{}
	if err := toml.Unmarshal(buff, tcf); err != nil {
		return err
	}

	if tcf.LogLevel != "" {
		if !isLogLevel(tcf.LogLevel) {
			return fmt.Errorf("invalid loglevel %q", tcf.LogLevel)
		}
		cfg.LogLevel = tcf.LogLevel
	}

	if tcf.Build != nil {
		if tcf.Build.OutputDir != "" {
			dir := tcf.Build.OutputDir
			if !filepath.IsAbs(dir) {
				dir = filepath.Join(baseDir, dir)
			}
			cfg.OutputDir = dir
		}
		if tcf.Build.Extension != "" {
			cfg.Extension = tcf.Build.Extension
		}
		cfg.EmitResultTypes = tcf.Build.EmitResultTypes
	}
	return nil
}

// Options returns the pipeline options selected by cfg.
func (cfg *Config) Options() Options {
	return Options{EmitResultTypes: cfg.EmitResultTypes}
}
