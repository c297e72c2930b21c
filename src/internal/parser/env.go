// Package parser interprets the loosely structured text fnm prints and the
// alias entries it keeps on disk. Parsing never fails: anything that cannot
// be understood is skipped and the affected fields keep their defaults.
package parser

import (
	"fmt"
	"strings"

	"github.com/fnmdesk/fnmdesk/src/internal/config"
	"github.com/fnmdesk/fnmdesk/src/internal/constants"
)

// Defaults fnm applies when a setting is not configured
const (
	DefaultVersionFileStrategy = "local"
	DefaultCorepackEnabled     = false
	DefaultResolveEngines      = true
	DefaultLogLevel            = "info"
)

// EnvConfig is fnm's effective configuration
type EnvConfig struct {
	Dir                 string `json:"fnm_dir" yaml:"fnm_dir"`
	NodeDistMirror      string `json:"node_dist_mirror" yaml:"node_dist_mirror"`
	VersionFileStrategy string `json:"version_file_strategy" yaml:"version_file_strategy"`
	CorepackEnabled     bool   `json:"corepack_enabled" yaml:"corepack_enabled"`
	ResolveEngines      bool   `json:"resolve_engines" yaml:"resolve_engines"`
	Arch                string `json:"arch" yaml:"arch"`
	LogLevel            string `json:"loglevel" yaml:"loglevel"`
}

// EnvKeys lists the variables that make up an EnvConfig, in display order
var EnvKeys = []string{
	constants.EnvFnmDir,
	constants.EnvFnmNodeDistMirror,
	constants.EnvFnmVersionFileStrategy,
	constants.EnvFnmCorepackEnabled,
	constants.EnvFnmResolveEngines,
	constants.EnvFnmArch,
	constants.EnvFnmLogLevel,
}

// DefaultEnvConfig returns fnm's built-in defaults. Dir and Arch are
// platform dependent and left empty.
func DefaultEnvConfig() EnvConfig {
	return EnvConfig{
		NodeDistMirror:      config.DefaultMirror,
		VersionFileStrategy: DefaultVersionFileStrategy,
		CorepackEnabled:     DefaultCorepackEnabled,
		ResolveEngines:      DefaultResolveEngines,
		LogLevel:            DefaultLogLevel,
	}
}

// Get returns the value of one of EnvKeys, formatted as fnm would print it
func (c EnvConfig) Get(key string) string {
	switch key {
	case constants.EnvFnmDir:
		return c.Dir
	case constants.EnvFnmNodeDistMirror:
		return c.NodeDistMirror
	case constants.EnvFnmVersionFileStrategy:
		return c.VersionFileStrategy
	case constants.EnvFnmCorepackEnabled:
		return formatBool(c.CorepackEnabled)
	case constants.EnvFnmResolveEngines:
		return formatBool(c.ResolveEngines)
	case constants.EnvFnmArch:
		return c.Arch
	case constants.EnvFnmLogLevel:
		return c.LogLevel
	default:
		return ""
	}
}

func (c *EnvConfig) set(key, value string) {
	switch key {
	case constants.EnvFnmDir:
		c.Dir = value
	case constants.EnvFnmNodeDistMirror:
		c.NodeDistMirror = value
	case constants.EnvFnmVersionFileStrategy:
		c.VersionFileStrategy = value
	case constants.EnvFnmCorepackEnabled:
		c.CorepackEnabled = ParseBool(value)
	case constants.EnvFnmResolveEngines:
		c.ResolveEngines = ParseBool(value)
	case constants.EnvFnmArch:
		c.Arch = value
	case constants.EnvFnmLogLevel:
		c.LogLevel = value
	}
}

// Format renders the config as POSIX shell export lines, the same shape
// `fnm env` prints. ParseEnv(c.Format()) yields c back as long as the
// mirror, strategy and log level are set.
func (c EnvConfig) Format() string {
	var b strings.Builder
	for _, key := range EnvKeys {
		fmt.Fprintf(&b, "export %s=\"%s\"\n", key, c.Get(key))
	}
	return b.String()
}

// ParseBool interprets an fnm boolean: "true" in any case or "1"
func ParseBool(value string) bool {
	value = strings.TrimSpace(value)
	return strings.EqualFold(value, "true") || value == "1"
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// ParseAssignments extracts KEY=VALUE assignments from shell output. It
// understands these line shapes:
//
//	export KEY=VALUE          (bash, zsh)
//	set KEY=VALUE             (cmd, any case)
//	KEY=VALUE
//	set -gx KEY VALUE         (fish)
//	$env:KEY = VALUE          (PowerShell)
//
// A trailing ';' and one pair of matching quotes are removed from values.
// When a key appears more than once the first occurrence wins.
func ParseAssignments(text string) map[string]string {
	vars := make(map[string]string)
	for _, line := range strings.Split(text, "\n") {
		key, value, ok := parseAssignment(line)
		if !ok {
			continue
		}
		if _, seen := vars[key]; !seen {
			vars[key] = value
		}
	}
	return vars
}

// ParseEnv reads the output of `fnm env` into an EnvConfig. Settings that
// are missing keep their defaults; unknown keys are ignored.
func ParseEnv(text string) EnvConfig {
	return ResolveEnv(ParseAssignments(text))
}

// ResolveEnv builds an EnvConfig from layers of variables. For each key the
// first layer with a non-blank value wins; keys no layer sets keep the
// defaults.
func ResolveEnv(layers ...map[string]string) EnvConfig {
	cfg := DefaultEnvConfig()
	for _, key := range EnvKeys {
		for _, layer := range layers {
			if v, ok := layer[key]; ok && strings.TrimSpace(v) != "" {
				cfg.set(key, v)
				break
			}
		}
	}
	return cfg
}

// EnvLayer picks the EnvKeys out of an environment snapshot, matching
// names case-insensitively when fold is set.
func EnvLayer(env config.Snapshot, fold bool) map[string]string {
	layer := make(map[string]string, len(EnvKeys))
	for _, key := range EnvKeys {
		var v string
		var ok bool
		if fold {
			v, ok = env.LookupFold(key)
		} else {
			v, ok = env.Lookup(key)
		}
		if ok {
			layer[key] = v
		}
	}
	return layer
}

func parseAssignment(line string) (string, string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	lower := strings.ToLower(line)

	var key, value string
	var found bool
	switch {
	case strings.HasPrefix(lower, "$env:"):
		key, value, found = strings.Cut(line[len("$env:"):], "=")
	case strings.HasPrefix(lower, "set -"):
		// drop the flag word, then KEY VALUE
		_, rest, _ := strings.Cut(strings.TrimSpace(line[len("set "):]), " ")
		key, value, found = strings.Cut(strings.TrimSpace(rest), " ")
	case strings.HasPrefix(line, "export "):
		key, value, found = strings.Cut(line[len("export "):], "=")
	case strings.HasPrefix(lower, "set "):
		key, value, found = strings.Cut(line[len("set "):], "=")
	default:
		key, value, found = strings.Cut(line, "=")
	}
	if !found {
		return "", "", false
	}

	key = strings.TrimSpace(key)
	if !validKey(key) {
		return "", "", false
	}
	return key, cleanValue(value), true
}

// cleanValue strips a trailing ';' and then one pair of matching quotes
func cleanValue(value string) string {
	value = strings.TrimSpace(value)
	value = strings.TrimSpace(strings.TrimSuffix(value, ";"))
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if first == last && (first == '"' || first == '\'') {
			value = value[1 : len(value)-1]
		}
	}
	return value
}

func validKey(key string) bool {
	if key == "" {
		return false
	}
	for i, r := range key {
		switch {
		case r == '_', r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
