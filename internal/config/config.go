// Package config loads reindent CLI profiles from YAML files.
// A profile bundles the conversion options and default I/O locations so a
// recurring workflow ("paste into Slack", "clean up for Obsidian") is one
// flag instead of ten.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mikan/reindent/internal/fileutil"
	"github.com/mikan/reindent/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// Config holds one conversion profile.
type Config struct {
	Input      InputConfig      `yaml:"input"`
	Output     OutputConfig     `yaml:"output"`
	Conversion ConversionConfig `yaml:"conversion"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = stdin or argument)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = stdout or next to input)
}

// ConversionConfig mirrors the library options. Booleans are pointers so a
// profile that omits a field keeps the library default rather than forcing
// it to false.
type ConversionConfig struct {
	Source                 string `yaml:"source"`                 // auto, slack, gdocs, obsidian, chatgpt
	Target                 string `yaml:"target"`                 // markdown, slack, gdocs, plain, json
	IndentSize             int    `yaml:"indentSize"`             // 2, 3, 4, 8 (0 = default)
	CollapseBlankLines     *bool  `yaml:"collapseBlankLines"`
	TrimTrailingWhitespace *bool  `yaml:"trimTrailingWhitespace"`
	KeepCodeFences         *bool  `yaml:"keepCodeFences"`
	ChatWrapCodeblock      *bool  `yaml:"chatWrapCodeblock"`
	BulletSymbol           string `yaml:"bulletSymbol"`       // "•" or "-"
	ConvertSmartQuotes     *bool  `yaml:"convertSmartQuotes"`
}

// DefaultConfig returns a neutral configuration: no default directories and
// every conversion field unset, deferring to the library defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or profile name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a profile name and searched in standard
// locations. Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	return &cfg, nil
}

// resolveConfigPath searches for a profile by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/reindent/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "reindent", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
