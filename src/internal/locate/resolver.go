// Package locate finds the fnm executable on the local machine.
//
// Discovery checks a pinned override, then a fixed list of well-known
// install locations for the platform, and only then asks the system lookup
// utility (which/where). A GUI-launched process often has a minimal PATH, so
// the fixed list comes first.
package locate

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/fnmdesk/fnmdesk/src/internal/config"
	"github.com/fnmdesk/fnmdesk/src/internal/platform"
	"github.com/fnmdesk/fnmdesk/src/internal/process"
	"github.com/fnmdesk/fnmdesk/src/internal/ui"
)

// ErrNotFound is matched by every NotFoundError
var ErrNotFound = errors.New("fnm executable not found")

// NotFoundError reports a failed discovery with the places that were checked
type NotFoundError struct {
	Searched []string
	Hint     string
}

func (e *NotFoundError) Error() string {
	var b strings.Builder
	b.WriteString(ErrNotFound.Error())
	if len(e.Searched) > 0 {
		b.WriteString(" (searched: ")
		b.WriteString(strings.Join(e.Searched, ", "))
		b.WriteString(")")
	}
	if e.Hint != "" {
		b.WriteString("\n\n")
		b.WriteString(e.Hint)
	}
	return b.String()
}

// Is lets errors.Is(err, ErrNotFound) match
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Resolver locates fnm. It keeps no state between calls, so a newly
// installed fnm is picked up on the next Resolve.
type Resolver struct {
	profile  platform.Profile
	env      config.Snapshot
	override string
	runner   process.Runner
	stat     func(string) (fs.FileInfo, error)
}

// Option configures a Resolver
type Option func(*Resolver)

// WithOverride pins the executable. A pinned path is the only place
// Resolve looks.
func WithOverride(path string) Option {
	return func(r *Resolver) {
		r.override = strings.TrimSpace(path)
	}
}

// WithRunner sets the runner used for the which/where fallback
func WithRunner(runner process.Runner) Option {
	return func(r *Resolver) {
		r.runner = runner
	}
}

// WithStat replaces the filesystem check, for tests
func WithStat(stat func(string) (fs.FileInfo, error)) Option {
	return func(r *Resolver) {
		r.stat = stat
	}
}

// New creates a Resolver for a platform and environment
func New(profile platform.Profile, env config.Snapshot, opts ...Option) *Resolver {
	r := &Resolver{
		profile: profile,
		env:     env,
		runner:  process.ExecRunner{},
		stat:    os.Stat,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Candidates returns every path Resolve checks before the lookup fallback,
// in order. With an override that is the override alone.
func (r *Resolver) Candidates() []string {
	if r.override != "" {
		return []string{r.override}
	}
	return r.profile.CandidatePaths(r.env)
}

// Check reports whether path exists and whether it is a regular file.
// Symlinks are followed, so a dangling link does not exist.
func (r *Resolver) Check(path string) (exists bool, isFile bool) {
	info, err := r.stat(path)
	if err != nil {
		return false, false
	}
	return true, info.Mode().IsRegular()
}

// Resolve returns the absolute path of the fnm executable. A pinned path
// that is not a regular file is an error; nothing else is tried.
func (r *Resolver) Resolve() (string, error) {
	if r.override != "" {
		if _, isFile := r.Check(r.override); !isFile {
			return "", &NotFoundError{
				Searched: []string{r.override},
				Hint:     pinnedHint(r.override),
			}
		}
		ui.Debug("fnm pinned at %s", r.override)
		return r.override, nil
	}

	candidates := r.Candidates()
	for _, candidate := range candidates {
		if _, isFile := r.Check(candidate); isFile {
			ui.Debug("fnm found at %s", candidate)
			return candidate, nil
		}
		ui.Debug("fnm not at %s", candidate)
	}

	if path, ok := r.lookup(); ok {
		ui.Debug("fnm found on PATH at %s", path)
		return path, nil
	}

	return "", &NotFoundError{
		Searched: candidates,
		Hint:     r.profile.InstallHint(),
	}
}

func pinnedHint(path string) string {
	return "The pinned fnm path " + path + " is not an executable file.\n" +
		"Fix or remove --fnm-path, FNMDESK_FNM_PATH or fnm_path in config.yaml."
}

// lookup asks the system utility where fnm is
func (r *Resolver) lookup() (string, bool) {
	name, args := r.profile.LookupCommand()
	if name == "" || r.runner == nil {
		return "", false
	}

	outcome, err := r.runner.Run(name, args, r.env.Environ())
	if err != nil {
		ui.Debug("%s lookup failed: %v", name, err)
		return "", false
	}
	if !outcome.Success {
		return "", false
	}

	path := firstLine(outcome.Stdout)
	if path == "" {
		return "", false
	}
	if _, isFile := r.Check(path); !isFile {
		ui.Debug("%s reported %s, which is not a file", name, path)
		return "", false
	}
	return path, true
}

// firstLine returns the first non-blank line, trimmed
func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}
