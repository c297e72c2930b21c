// Package config manages fnmdesk configuration: its own paths and settings,
// and the environment snapshot every other component reads from.
package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/fnmdesk/fnmdesk/src/internal/constants"
)

// Paths holds the fnmdesk directory paths
type Paths struct {
	Root     string // Root fnmdesk directory (~/.fnmdesk)
	Settings string // Settings file (~/.fnmdesk/config.yaml)
}

var (
	defaultPaths *Paths
	pathsOnce    sync.Once
)

// DefaultPaths returns the default fnmdesk paths.
// This function is thread-safe and guarantees single initialization.
func DefaultPaths() *Paths {
	pathsOnce.Do(func() {
		defaultPaths = initPaths()
	})
	return defaultPaths
}

func initPaths() *Paths {
	root := getRootDir()
	return &Paths{
		Root:     root,
		Settings: filepath.Join(root, SettingsFileName),
	}
}

// getRootDir returns the root fnmdesk directory
func getRootDir() string {
	// FNMDESK_ROOT wins over the home directory
	if root := os.Getenv(constants.EnvRoot); root != "" {
		return root
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ".fnmdesk"
	}

	return filepath.Join(home, ".fnmdesk")
}

// SettingsFileName is the name of the settings file inside the root directory
const SettingsFileName = "config.yaml"

// SettingsPath returns the path to the settings file
func SettingsPath() string {
	return DefaultPaths().Settings
}

// ResetPathsCache resets the cached paths, forcing reinitialization on next access.
// This is primarily useful for testing.
func ResetPathsCache() {
	pathsOnce = sync.Once{}
	defaultPaths = nil
}
