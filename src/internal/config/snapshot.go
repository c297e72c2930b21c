package config

import (
	"os"
	"strings"
)

// Snapshot is an ordered copy of a process environment plus the user's home
// directory. Components receive a Snapshot instead of reading os.Getenv so
// they can be driven by fixtures in tests.
type Snapshot struct {
	keys    []string
	vars    map[string]string
	home    string
	folders map[string]string
}

// NewSnapshot builds a snapshot from KEY=VALUE entries (as returned by
// os.Environ) and an explicit home directory. Later duplicates win.
func NewSnapshot(environ []string, home string) Snapshot {
	s := Snapshot{
		vars:    make(map[string]string, len(environ)),
		home:    home,
		folders: map[string]string{},
	}
	for _, entry := range environ {
		key, value, ok := splitEntry(entry)
		if !ok {
			continue
		}
		s.Set(key, value)
	}
	return s
}

// CurrentSnapshot captures the environment of the running process.
func CurrentSnapshot() Snapshot {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	s := NewSnapshot(os.Environ(), home)
	for key, dir := range knownFolders() {
		s.folders[key] = dir
	}
	return s
}

// splitEntry splits KEY=VALUE. Windows keeps hidden entries like "=C:=C:\",
// so a leading '=' belongs to the key.
func splitEntry(entry string) (string, string, bool) {
	if entry == "" {
		return "", "", false
	}
	idx := strings.Index(entry[1:], "=")
	if idx < 0 {
		return "", "", false
	}
	idx++
	return entry[:idx], entry[idx+1:], true
}

// Home returns the user's home directory, or "" when unknown.
func (s Snapshot) Home() string {
	return s.home
}

// Lookup returns the value of key using an exact, case-sensitive match.
func (s Snapshot) Lookup(key string) (string, bool) {
	v, ok := s.vars[key]
	return v, ok
}

// LookupFold is Lookup with a case-insensitive fallback, for Windows where
// "Path" and "PATH" name the same variable.
func (s Snapshot) LookupFold(key string) (string, bool) {
	if v, ok := s.vars[key]; ok {
		return v, true
	}
	for _, k := range s.keys {
		if strings.EqualFold(k, key) {
			return s.vars[k], true
		}
	}
	return "", false
}

// Get returns the value of key or "".
func (s Snapshot) Get(key string) string {
	return s.vars[key]
}

// KeyFold returns the spelling under which key is stored, matching
// case-insensitively. Returns key itself when absent.
func (s Snapshot) KeyFold(key string) string {
	if _, ok := s.vars[key]; ok {
		return key
	}
	for _, k := range s.keys {
		if strings.EqualFold(k, key) {
			return k
		}
	}
	return key
}

// Folder returns a well-known directory variable (LOCALAPPDATA, ProgramFiles).
// The environment wins; otherwise a value discovered from the OS when the
// snapshot was captured is used.
func (s Snapshot) Folder(key string) string {
	if v, ok := s.LookupFold(key); ok && v != "" {
		return v
	}
	return s.folders[key]
}

// WithFolder returns a copy with a fallback value for a well-known directory.
func (s Snapshot) WithFolder(key, dir string) Snapshot {
	c := s.Clone()
	c.folders[key] = dir
	return c
}

// Set adds or replaces key. Snapshots returned by Clone may be mutated freely.
func (s *Snapshot) Set(key, value string) {
	if s.vars == nil {
		s.vars = map[string]string{}
	}
	if _, exists := s.vars[key]; !exists {
		s.keys = append(s.keys, key)
	}
	s.vars[key] = value
}

// Clone returns an independent copy.
func (s Snapshot) Clone() Snapshot {
	c := Snapshot{
		keys:    make([]string, len(s.keys)),
		vars:    make(map[string]string, len(s.vars)),
		home:    s.home,
		folders: make(map[string]string, len(s.folders)),
	}
	copy(c.keys, s.keys)
	for k, v := range s.vars {
		c.vars[k] = v
	}
	for k, v := range s.folders {
		c.folders[k] = v
	}
	return c
}

// Keys returns variable names in insertion order.
func (s Snapshot) Keys() []string {
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	return keys
}

// Environ renders the snapshot as KEY=VALUE entries for exec.Cmd.Env.
func (s Snapshot) Environ() []string {
	env := make([]string, 0, len(s.keys))
	for _, k := range s.keys {
		env = append(env, k+"="+s.vars[k])
	}
	return env
}

// Len returns the number of variables.
func (s Snapshot) Len() int {
	return len(s.keys)
}
