package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/collectiontypes/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyOutput    = "output"
	cfgKeyDataDir   = "data_dir"
	cfgKeyLogLevel  = "log_level"
	cfgKeyLogFormat = "log_format"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# collectiontypes configuration

# Output format: text, json, or yaml (overridable by --output)
output: text

# Export directory (optional; overridable by --data-dir)
# data_dir:

# Logging: level is one of trace, debug, info, warn, error; format is text or json
log_level: info
log_format: text
`

// loadConfig reads config.yaml from configDir using Viper, creating the
// directory and a default file on first run. A missing config.yaml is not an
// error.
func loadConfig(configDir string) (types.Config, error) {
	defaults := types.DefaultConfig()

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return defaults, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return defaults, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyOutput, defaults.Output)
	v.SetDefault(cfgKeyDataDir, defaults.DataDir)
	v.SetDefault(cfgKeyLogLevel, defaults.LogLevel)
	v.SetDefault(cfgKeyLogFormat, defaults.LogFormat)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return defaults, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return defaults, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// ensureDefaultConfigFile creates a default config.yaml if none exists.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
