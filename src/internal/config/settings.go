package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fnmdesk/fnmdesk/src/internal/constants"
	"gopkg.in/yaml.v3"
)

// Settings is the optional user configuration file.
//
//	# ~/.fnmdesk/config.yaml
//	fnm_path: /opt/tools/fnm
type Settings struct {
	// FnmPath pins the fnm executable, skipping discovery.
	FnmPath string `yaml:"fnm_path,omitempty"`
}

// LoadSettings reads the settings file from the default location.
// A missing file yields empty settings.
func LoadSettings() (*Settings, error) {
	return ReadSettings(SettingsPath())
}

// ReadSettings reads settings from a YAML file. A missing or empty file
// yields empty settings; a malformed one is an error.
func ReadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Settings{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}
	s.FnmPath = strings.TrimSpace(s.FnmPath)
	return &s, nil
}

// ExecutableOverride returns the pinned fnm path, if any.
// FNMDESK_FNM_PATH in the environment wins over the file.
func (s *Settings) ExecutableOverride(env Snapshot) string {
	if v := strings.TrimSpace(env.Get(constants.EnvFnmPath)); v != "" {
		return v
	}
	if s == nil {
		return ""
	}
	return s.FnmPath
}
