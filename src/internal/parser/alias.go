package parser

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fnmdesk/fnmdesk/src/internal/constants"
	"github.com/fnmdesk/fnmdesk/src/internal/ui"
)

// installationDir is the leaf fnm links aliases to inside a version directory
const installationDir = "installation"

// DefaultAliasPath returns where fnm keeps the default alias
func DefaultAliasPath(dataDir string) string {
	return filepath.Join(dataDir, "aliases", "default")
}

// ResolveDefaultVersion reads the default alias under dataDir. fnm stores it
// as a symlink (a junction on Windows) into node-versions, or on some
// Windows setups as a plain file holding the version. Returns "none" when
// the alias is missing or unreadable.
func ResolveDefaultVersion(dataDir string) string {
	if strings.TrimSpace(dataDir) == "" {
		return constants.NoneVersion
	}

	path := DefaultAliasPath(dataDir)
	info, err := os.Lstat(path)
	if err != nil {
		ui.Debug("no default alias at %s", path)
		return constants.NoneVersion
	}

	if info.Mode().IsRegular() {
		data, err := os.ReadFile(path)
		if err != nil {
			return constants.NoneVersion
		}
		return orNone(strings.TrimSpace(string(data)))
	}

	target, err := os.Readlink(path)
	if err != nil {
		ui.Debug("default alias %s is neither a file nor a link: %v", path, err)
		return constants.NoneVersion
	}
	return orNone(VersionFromLinkTarget(target))
}

// VersionFromLinkTarget extracts the version from an alias link target.
// Both "node-versions/20.5.0" and ".../node-versions/v18.17.0/installation"
// name their version directory; either separator style is accepted.
func VersionFromLinkTarget(target string) string {
	segments := strings.FieldsFunc(target, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	if len(segments) == 0 {
		return ""
	}

	last := segments[len(segments)-1]
	if last == installationDir && len(segments) > 1 {
		return segments[len(segments)-2]
	}
	return last
}

func orNone(version string) string {
	if version == "" {
		return constants.NoneVersion
	}
	return version
}
