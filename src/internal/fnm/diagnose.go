package fnm

import (
	"fmt"
	"strings"

	"github.com/fnmdesk/fnmdesk/src/internal/constants"
)

// Diagnose reports everything that goes into finding and running fnm:
// the home directory, each candidate path, the resolved executable and the
// raw results of a few read-only commands. It never fails; problems are
// written into the report.
func (c *Client) Diagnose() string {
	var b strings.Builder

	fmt.Fprintf(&b, "platform: %s\n", c.profile.Kind)
	fmt.Fprintf(&b, "home directory: %s\n", orUnset(c.env.Home()))
	home, _ := c.lookup(c.env, constants.EnvHome)
	fmt.Fprintf(&b, "HOME: %s\n", orUnset(home))
	if path, ok := c.lookup(c.env, constants.EnvPath); ok {
		fmt.Fprintf(&b, "PATH: %s\n", path)
	}

	b.WriteString("\ncandidates:\n")
	for _, candidate := range c.resolver.Candidates() {
		exists, isFile := c.resolver.Check(candidate)
		fmt.Fprintf(&b, "  %s (exists: %t, file: %t)\n", candidate, exists, isFile)
	}

	inv, err := c.prepare()
	if err != nil {
		fmt.Fprintf(&b, "\nresolve: error: %v\n", err)
		return b.String()
	}
	fmt.Fprintf(&b, "\nresolve: %s\n", inv.executable)
	if dir, ok := c.lookup(inv.env, constants.EnvFnmDir); ok {
		fmt.Fprintf(&b, "FNM_DIR (subprocess): %s\n", dir)
	}

	for _, args := range [][]string{{"--version"}, {"list"}, {"current"}} {
		fmt.Fprintf(&b, "\n$ fnm %s\n", strings.Join(args, " "))
		outcome, err := c.exec(inv, args...)
		if err != nil {
			fmt.Fprintf(&b, "  launch error: %v\n", err)
			continue
		}
		fmt.Fprintf(&b, "  exit code: %d\n", outcome.ExitCode)
		fmt.Fprintf(&b, "  stdout: %s\n", indent(outcome.Stdout))
		fmt.Fprintf(&b, "  stderr: %s\n", indent(outcome.Stderr))
	}

	return b.String()
}

func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

// indent keeps multi-line output aligned under its label
func indent(s string) string {
	s = strings.TrimRight(s, "\r\n")
	if s == "" {
		return "(empty)"
	}
	return strings.ReplaceAll(s, "\n", "\n          ")
}
