package types

import "errors"

// Config holds the settings read from config.yaml by the CLI.
type Config struct {
	Output    string `json:"output" yaml:"output" mapstructure:"output"`
	DataDir   string `json:"data_dir" yaml:"data_dir" mapstructure:"data_dir"`
	LogLevel  string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
	LogFormat string `json:"log_format" yaml:"log_format" mapstructure:"log_format"`
}

// Supported output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Supported log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config validation errors.
var (
	ErrOutputUnknown    = errors.New("unknown output format")
	ErrLogFormatUnknown = errors.New("unknown log format")
)

var knownOutputs = map[string]bool{
	OutputText: true,
	OutputJSON: true,
	OutputYAML: true,
}

var knownLogFormats = map[string]bool{
	LogFormatText: true,
	LogFormatJSON: true,
}

// DefaultConfig returns the settings used when config.yaml omits a key.
func DefaultConfig() Config {
	return Config{
		Output:    OutputText,
		LogLevel:  "info",
		LogFormat: LogFormatText,
	}
}

// Validate checks that the Config is well-formed. Empty fields are accepted
// and fall back to DefaultConfig. Log levels are checked by the logger setup.
func (c Config) Validate() error {
	if c.Output != "" && !knownOutputs[c.Output] {
		return ErrOutputUnknown
	}
	if c.LogFormat != "" && !knownLogFormats[c.LogFormat] {
		return ErrLogFormatUnknown
	}
	return nil
}
