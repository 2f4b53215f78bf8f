package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/giantswarm/tconsole/pkg/logging"
)

const (
	userConfigDir = ".config/tconsole"
)

// configFileNames are probed, in order, when LoadConfig is given a directory.
var configFileNames = []string{"config.yaml", "config.yml", "config.toml"}

// GetDefaultConfigPath returns ~/.config/tconsole.
func GetDefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine user config directory: %w", err)
	}
	return filepath.Join(homeDir, userConfigDir), nil
}

// LoadConfig loads configuration from path, starting from DefaultConfig.
//
// path may be a file (format chosen by extension) or a directory containing
// config.yaml, config.yml or config.toml. A missing file or directory
// yields the defaults. Values present in the file override the defaults;
// absent values keep them.
func LoadConfig(path string) (ConsoleConfig, error) {
	config := DefaultConfig()

	configFilePath, err := resolveConfigFile(path)
	if err != nil {
		return ConsoleConfig{}, err
	}
	if configFilePath == "" {
		logging.Info("ConfigLoader", "No config file found at %s, using defaults", path)
		return config, nil
	}

	data, err := os.ReadFile(configFilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Info("ConfigLoader", "No config file found at %s, using defaults", configFilePath)
			return config, nil
		}
		return ConsoleConfig{}, NewConfigurationError(configFilePath, ErrorTypeIO, err.Error())
	}

	format := DetectFormat(configFilePath)
	if err := parseContent(data, format, &config); err != nil {
		return ConsoleConfig{}, NewConfigurationErrorWithDetails(configFilePath, ErrorTypeParse,
			fmt.Sprintf("malformed %s", format), err.Error(),
			[]string{fmt.Sprintf("check the file is valid %s", strings.ToUpper(string(format)))})
	}

	if errs := config.Validate(); errs.HasErrors() {
		cec := ConfigurationErrorCollection{}
		for _, verr := range errs {
			cec.Add(NewConfigurationError(configFilePath, ErrorTypeValidation, verr.Error()))
		}
		return ConsoleConfig{}, cec
	}

	logging.Info("ConfigLoader", "Loaded configuration from %s", configFilePath)
	return config, nil
}

// resolveConfigFile maps path to a concrete file, or "" when nothing exists.
func resolveConfigFile(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", NewConfigurationError(path, ErrorTypeIO, err.Error())
	}
	if !info.IsDir() {
		return path, nil
	}

	for _, name := range configFileNames {
		candidate := filepath.Join(path, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", nil
}

// DetectFormat determines the configuration format from the file extension.
// Unknown extensions are treated as YAML.
func DetectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// parseContent decodes data onto config, leaving absent fields untouched.
func parseContent(data []byte, format Format, config *ConsoleConfig) error {
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), config); err != nil {
			return fmt.Errorf("TOML parse error: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("YAML parse error: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
	return nil
}
