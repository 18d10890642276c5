// Package paths resolves the configuration and export directories used by
// the collectiontypes CLI.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppDirName is the directory created under the platform config and data roots.
const AppDirName = "collectiontypes"

// DefaultDataDirName is the CWD-relative export directory used when nothing
// else is configured.
const DefaultDataDirName = ".collectiontypes"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "COLLECTIONTYPES_CONFIG_DIR"
	EnvDataDir   = "COLLECTIONTYPES_DATA_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// xdgDir returns $<env>/collectiontypes on Linux, falling back to
// ~/<fallback...>/collectiontypes. Other systems use os.UserConfigDir.
func xdgDir(env string, fallback ...string) (string, error) {
	if runtime.GOOS != "linux" {
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, AppDirName), nil
	}
	if v := os.Getenv(env); v != "" {
		return filepath.Join(v, AppDirName), nil
	}
	home, err := platformDir.homeDir()
	if err != nil {
		return "", err
	}
	parts := append([]string{home}, fallback...)
	return filepath.Join(append(parts, AppDirName)...), nil
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/collectiontypes (fallback ~/.config/collectiontypes)
// macOS:   ~/Library/Application Support/collectiontypes
// Windows: %APPDATA%/collectiontypes
func DefaultConfigDir() (string, error) {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// DefaultDataDir returns the platform-specific data directory.
//
// Linux:   $XDG_DATA_HOME/collectiontypes (fallback ~/.local/share/collectiontypes)
// macOS and Windows: same as DefaultConfigDir.
func DefaultDataDir() (string, error) {
	return xdgDir("XDG_DATA_HOME", ".local", "share")
}

// ResolveConfigDir returns the configuration directory:
// flag > COLLECTIONTYPES_CONFIG_DIR > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the export directory:
// flag > config.yaml data_dir > COLLECTIONTYPES_DATA_DIR > $(CWD)/.collectiontypes.
func ResolveDataDir(flag, configYAMLValue string) (string, error) {
	for _, v := range []string{flag, configYAMLValue, os.Getenv(EnvDataDir)} {
		if v != "" {
			return filepath.Abs(v)
		}
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}
