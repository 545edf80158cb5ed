// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/huekit-cli/huekit/constant"
	"github.com/huekit-cli/huekit/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "HUEKIT_CONFIG_PATH"

// ensureDir guarantees the existence of a directory at the specified path, creating it if necessary.
func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the absolute path to the primary application configuration directory.
// The resolution can be explicitly overridden via the HUEKIT_CONFIG_PATH environment variable.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Huekit))
}

// Cache resolves the absolute path to the application's persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		// Revert to a localized cache directory if the system path is inaccessible.
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Huekit))
}

// Logs resolves the absolute path to the directory used for application diagnostic logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Generators resolves the absolute path to the directory containing custom Lua palette generator scripts.
func Generators() string {
	return ensureDir(filepath.Join(Config(), "generators"))
}

// History resolves the absolute path to the recently used colors registry.
func History() string {
	return filepath.Join(Cache(), "history.json")
}

// VersionCache resolves the absolute path to the cached remote version lookup.
func VersionCache() string {
	return filepath.Join(Cache(), "version.json")
}
