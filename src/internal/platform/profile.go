// Package platform describes where fnm lives on each operating system.
//
// A Profile is chosen once at startup and carries everything that differs
// between macOS, Linux and Windows: candidate install locations, the default
// fnm data directory, extra PATH directories, path and list separators, and
// the system utilities used to look up executables and open directories.
// Callers pass a config.Snapshot so no method reads the process environment.
package platform

import (
	"path"
	goruntime "runtime"
	"strings"

	"github.com/fnmdesk/fnmdesk/src/internal/config"
	"github.com/fnmdesk/fnmdesk/src/internal/constants"
)

// Kind identifies a platform profile
type Kind int

const (
	Unknown Kind = iota
	Darwin
	Linux
	Windows
)

// String returns the GOOS-style name of the kind
func (k Kind) String() string {
	switch k {
	case Darwin:
		return constants.OSDarwin
	case Linux:
		return constants.OSLinux
	case Windows:
		return constants.OSWindows
	default:
		return "unknown"
	}
}

// anchor is the directory a location is relative to
type anchor int

const (
	rooted anchor = iota
	home
	localAppData
	programFiles
)

// location is a path template: an anchor plus path elements
type location struct {
	anchor anchor
	elems  []string
}

func at(a anchor, elems ...string) location {
	return location{anchor: a, elems: elems}
}

// Profile is the platform-specific knowledge used to find and run fnm
type Profile struct {
	Kind Kind

	candidates []location
	extraPath  []location
	dataDir    location
	hasDataDir bool
	lookup     string
	open       string
}

// Detect returns the profile for the running operating system
func Detect() Profile {
	return ForOS(goruntime.GOOS)
}

// ForOS returns the profile for a GOOS value. Unrecognized systems get an
// Unknown profile with no candidates and no PATH augmentation.
func ForOS(goos string) Profile {
	switch goos {
	case constants.OSDarwin:
		return Profile{
			Kind: Darwin,
			candidates: []location{
				at(rooted, "/opt/homebrew/bin/fnm"), // Homebrew (Apple Silicon)
				at(rooted, "/usr/local/bin/fnm"),    // Homebrew (Intel)
				at(home, ".cargo", "bin", "fnm"),
				at(home, ".fnm", "fnm"), // official install script
				at(home, ".local", "bin", "fnm"),
			},
			extraPath: []location{
				at(rooted, "/opt/homebrew/bin"),
				at(rooted, "/usr/local/bin"),
				at(home, ".cargo", "bin"),
				at(home, ".fnm"),
				at(home, ".local", "bin"),
			},
			dataDir:    at(home, "Library", "Application Support", "fnm"),
			hasDataDir: true,
			lookup:     "which",
			open:       "open",
		}
	case constants.OSLinux:
		return Profile{
			Kind: Linux,
			candidates: []location{
				at(rooted, "/usr/bin/fnm"),
				at(rooted, "/usr/local/bin/fnm"),
				at(home, ".cargo", "bin", "fnm"),
				at(home, ".fnm", "fnm"),
				at(home, ".local", "bin", "fnm"),
			},
			extraPath: []location{
				at(rooted, "/usr/bin"),
				at(rooted, "/usr/local/bin"),
				at(home, ".cargo", "bin"),
				at(home, ".fnm"),
				at(home, ".local", "bin"),
			},
			dataDir:    at(home, ".local", "share", "fnm"),
			hasDataDir: true,
			lookup:     "which",
			open:       "xdg-open",
		}
	case constants.OSWindows:
		return Profile{
			Kind: Windows,
			candidates: []location{
				at(home, ".cargo", "bin", "fnm.exe"),
				at(home, "scoop", "shims", "fnm.exe"),
				at(localAppData, "fnm", "fnm.exe"),
				at(programFiles, "fnm", "fnm.exe"),
			},
			extraPath: []location{
				at(home, ".cargo", "bin"),
				at(home, "scoop", "shims"),
				at(localAppData, "fnm"),
			},
			dataDir:    at(localAppData, "fnm"),
			hasDataDir: true,
			lookup:     "where",
			open:       "explorer",
		}
	default:
		return Profile{Kind: Unknown, lookup: "which"}
	}
}

// Separator returns the path separator for the profile
func (p Profile) Separator() string {
	if p.Kind == Windows {
		return `\`
	}
	return "/"
}

// ListSeparator returns the PATH list separator for the profile
func (p Profile) ListSeparator() string {
	if p.Kind == Windows {
		return ";"
	}
	return ":"
}

// ExecutableName returns the fnm binary file name
func (p Profile) ExecutableName() string {
	if p.Kind == Windows {
		return constants.ToolName + constants.ExtExe
	}
	return constants.ToolName
}

// FoldEnvKeys reports whether environment variable names are case-insensitive
func (p Profile) FoldEnvKeys() bool {
	return p.Kind == Windows
}

// Join joins path elements with the profile's separator, independent of the
// host the code runs on.
func (p Profile) Join(elem ...string) string {
	if p.Kind != Windows {
		return path.Join(elem...)
	}

	parts := make([]string, 0, len(elem))
	for i, e := range elem {
		if i > 0 {
			e = strings.TrimLeft(e, `\/`)
		}
		if i < len(elem)-1 {
			e = strings.TrimRight(e, `\/`)
		}
		if e != "" {
			parts = append(parts, strings.ReplaceAll(e, "/", `\`))
		}
	}
	return strings.Join(parts, `\`)
}

// expand resolves a location template. It fails when the anchor directory
// is not known in env.
func (p Profile) expand(loc location, env config.Snapshot) (string, bool) {
	var base string
	switch loc.anchor {
	case rooted:
		return p.Join(loc.elems...), true
	case home:
		base = env.Home()
	case localAppData:
		base = env.Folder(constants.EnvLocalAppData)
	case programFiles:
		base = env.Folder(constants.EnvProgramFiles)
	}
	if base == "" {
		return "", false
	}
	return p.Join(append([]string{base}, loc.elems...)...), true
}

func (p Profile) expandAll(locs []location, env config.Snapshot) []string {
	out := make([]string, 0, len(locs))
	for _, loc := range locs {
		if s, ok := p.expand(loc, env); ok {
			out = append(out, s)
		}
	}
	return out
}

// CandidatePaths returns the fnm install locations in priority order.
// Entries whose base directory is unknown are omitted.
func (p Profile) CandidatePaths(env config.Snapshot) []string {
	return p.expandAll(p.candidates, env)
}

// ExtraPathDirs returns directories a GUI-launched process may be missing
// from PATH, in the order they should be prepended.
func (p Profile) ExtraPathDirs(env config.Snapshot) []string {
	return p.expandAll(p.extraPath, env)
}

// DataDir returns fnm's default data directory, or "" if it cannot be
// determined (unset HOME or LOCALAPPDATA, unknown platform).
func (p Profile) DataDir(env config.Snapshot) string {
	if !p.hasDataDir {
		return ""
	}
	dir, _ := p.expand(p.dataDir, env)
	return dir
}

// LookupCommand returns the system utility and arguments that print the
// location of fnm found on PATH.
func (p Profile) LookupCommand() (string, []string) {
	return p.lookup, []string{constants.ToolName}
}

// OpenCommand returns the utility that opens a directory in the file
// browser, or "" when the platform has none.
func (p Profile) OpenCommand() string {
	return p.open
}

// SplitPathList splits a PATH value, dropping empty entries
func (p Profile) SplitPathList(value string) []string {
	var dirs []string
	for _, d := range strings.Split(value, p.ListSeparator()) {
		if strings.TrimSpace(d) != "" {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// SamePath compares two directory paths the way the platform does
func (p Profile) SamePath(a, b string) bool {
	a = strings.TrimRight(a, `\/`)
	b = strings.TrimRight(b, `\/`)
	if p.Kind == Windows {
		return strings.EqualFold(strings.ReplaceAll(a, "/", `\`), strings.ReplaceAll(b, "/", `\`))
	}
	return a == b
}

// InstallHint is the remediation shown when fnm cannot be found
func (p Profile) InstallHint() string {
	return "fnm was not found. Make sure fnm is installed.\n\n" +
		"Install it with:\n" +
		"  macOS:   brew install fnm\n" +
		"  Windows: winget install Schniz.fnm\n" +
		"  Linux:   curl -fsSL https://fnm.vercel.app/install | bash"
}

// NodeArch maps a GOARCH value to the token fnm and nodejs.org use
func NodeArch(goarch string) string {
	switch goarch {
	case constants.ArchAMD64:
		return constants.NodeArchX64
	case constants.ArchARM64:
		return constants.NodeArchARM64
	default:
		return constants.NodeArchUnknown
	}
}

// HostArch returns the Node.js architecture token of the running binary
func HostArch() string {
	return NodeArch(goruntime.GOARCH)
}
