// Package environ builds the environment fnm subprocesses run with.
package environ

import (
	"strings"

	"github.com/fnmdesk/fnmdesk/src/internal/config"
	"github.com/fnmdesk/fnmdesk/src/internal/constants"
	"github.com/fnmdesk/fnmdesk/src/internal/platform"
	"github.com/fnmdesk/fnmdesk/src/internal/ui"
)

// Builder derives a subprocess environment from a base snapshot. The base
// is never modified.
type Builder struct {
	profile platform.Profile
	base    config.Snapshot
}

// New creates a Builder for a platform and base environment
func New(profile platform.Profile, base config.Snapshot) *Builder {
	return &Builder{profile: profile, base: base}
}

// Build returns a copy of the base environment where PATH also covers the
// directory of executable and the platform's usual tool directories, and
// FNM_DIR falls back to the platform default. Every other entry is kept
// as is.
func (b *Builder) Build(executable string) config.Snapshot {
	env := b.base.Clone()
	b.extendPath(&env, executable)
	b.defaultDataDir(&env)
	return env
}

// key returns the spelling under which name is stored, honoring the
// platform's case rules
func (b *Builder) key(env config.Snapshot, name string) string {
	if b.profile.FoldEnvKeys() {
		return env.KeyFold(name)
	}
	return name
}

func (b *Builder) lookup(env config.Snapshot, name string) (string, bool) {
	if b.profile.FoldEnvKeys() {
		return env.LookupFold(name)
	}
	return env.Lookup(name)
}

func (b *Builder) extendPath(env *config.Snapshot, executable string) {
	current, _ := b.lookup(*env, constants.EnvPath)
	existing := b.profile.SplitPathList(current)

	wanted := append([]string{b.dir(executable)}, b.profile.ExtraPathDirs(b.base)...)

	var prepend []string
	for _, dir := range wanted {
		if dir == "" || b.contains(existing, dir) || b.contains(prepend, dir) {
			continue
		}
		prepend = append(prepend, dir)
	}
	if len(prepend) == 0 {
		return
	}

	parts := prepend
	if current != "" {
		parts = append(parts, current)
	}
	value := strings.Join(parts, b.profile.ListSeparator())
	ui.Debug("PATH prepended with %s", strings.Join(prepend, b.profile.ListSeparator()))
	env.Set(b.key(*env, constants.EnvPath), value)
}

func (b *Builder) contains(dirs []string, dir string) bool {
	for _, d := range dirs {
		if b.profile.SamePath(d, dir) {
			return true
		}
	}
	return false
}

// dir returns the directory part of a path using the profile's separators
func (b *Builder) dir(executable string) string {
	seps := "/"
	if b.profile.Kind == platform.Windows {
		seps = `/\`
	}

	idx := strings.LastIndexAny(executable, seps)
	switch {
	case idx < 0:
		return ""
	case idx == 0:
		return executable[:1]
	}

	dir := executable[:idx]
	if strings.HasSuffix(dir, ":") {
		// C:\fnm.exe lives in C:\, not the drive-relative C:
		dir += executable[idx : idx+1]
	}
	return dir
}

func (b *Builder) defaultDataDir(env *config.Snapshot) {
	if v, ok := b.lookup(*env, constants.EnvFnmDir); ok && strings.TrimSpace(v) != "" {
		return
	}

	dir := b.profile.DataDir(b.base)
	if dir == "" {
		ui.Debug("no default FNM_DIR for %s", b.profile.Kind)
		return
	}
	ui.Debug("FNM_DIR defaulted to %s", dir)
	env.Set(b.key(*env, constants.EnvFnmDir), dir)
}
