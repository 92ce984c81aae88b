package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ajxudir/toolcatalog/pkg/constants"
	"github.com/ajxudir/toolcatalog/pkg/verbose"
)

// LoadConfig loads configuration from the specified path or defaults.
//
// If configPath is provided, it loads that specific config file.
// Otherwise, it looks for .toolcatalog.yml in the working directory.
// If no config is found, it returns the built-in default configuration.
//
// Parameters:
//   - configPath: path to the config file, or empty to use defaults
//   - workDir: working directory for the configuration
//
// Returns:
//   - *Config: the loaded configuration
//   - error: any error encountered during loading
func LoadConfig(configPath, workDir string) (*Config, error) {
	var cfg *Config

	if configPath != "" {
		verbose.Infof("Loading config from: %s", configPath)
		loaded, err := loadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		cfg = loaded
		cfg.Source = configPath
		verbose.ConfigLoaded(configPath)
	} else {
		localConfig := filepath.Join(workDir, constants.ConfigFileName)
		if _, err := os.Stat(localConfig); err == nil {
			verbose.Infof("Found local config: %s", localConfig)
			loaded, err := loadConfigFile(localConfig)
			if err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
			cfg = loaded
			cfg.Source = localConfig
			verbose.ConfigLoaded(localConfig)
		}

		if cfg == nil {
			verbose.Info("Using built-in default configuration")
			cfg = loadDefaultConfig()
		}
	}

	if workDir != "" {
		cfg.WorkingDir = workDir
	} else if cfg.WorkingDir == "" {
		cfg.WorkingDir = "."
	}

	return cfg, nil
}

// CatalogBaseDir returns the directory catalog patterns are resolved against.
//
// Patterns in a config file are relative to that file; patterns from the
// built-in defaults or flags are relative to the working directory.
func (c *Config) CatalogBaseDir() string {
	if c.Source != "" {
		return filepath.Dir(c.Source)
	}
	return c.WorkingDir
}

// loadConfigFileWithLimit loads a config file with a configurable size limit.
//
// Parameters:
//   - path: path to the config file
//   - maxSize: maximum allowed file size in bytes
//
// Returns:
//   - *Config: the loaded configuration
//   - error: error if file is too large, not found, or has invalid YAML
func loadConfigFileWithLimit(path string, maxSize int64) (*Config, error) {
	data, err := readConfigWithLimit(path, maxSize)
	if err != nil {
		return nil, err
	}
	return loadConfigData(data)
}

// loadConfigFile loads a config file with the default size limit.
func loadConfigFile(path string) (*Config, error) {
	return loadConfigFileWithLimit(path, DefaultMaxConfigFileSize)
}

// readConfigWithLimit checks the file size before reading it.
func readConfigWithLimit(path string, maxSize int64) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > maxSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d bytes)", info.Size(), maxSize)
	}
	return os.ReadFile(path)
}

// loadConfigData parses YAML configuration data.
//
// Parameters:
//   - data: YAML configuration data as bytes
//
// Returns:
//   - *Config: the parsed configuration
//   - error: error if YAML is invalid or malformed
func loadConfigData(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return &cfg, nil
}

// LoadConfigFileStrict loads a config file and validates it for unknown fields.
//
// This is more strict than LoadConfig: it returns an error if the config
// contains any unknown fields or validation issues.
//
// Parameters:
//   - path: path to the config file
//
// Returns:
//   - *Config: the loaded configuration
//   - error: error if file has unknown fields, validation errors, or invalid YAML
func LoadConfigFileStrict(path string) (*Config, error) {
	data, err := readConfigWithLimit(path, DefaultMaxConfigFileSize)
	if err != nil {
		return nil, err
	}

	result := ValidateConfigFile(data)
	if result.HasErrors() {
		return nil, result.Errors[0]
	}

	cfg, err := loadConfigData(data)
	if err != nil {
		return nil, err
	}
	cfg.Source = path
	cfg.WorkingDir = filepath.Dir(path)
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
