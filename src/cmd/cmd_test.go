package cmd

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/fnmdesk/fnmdesk/src/internal/config"
	"github.com/fnmdesk/fnmdesk/src/internal/fnm"
	"github.com/fnmdesk/fnmdesk/src/internal/platform"
	"github.com/fnmdesk/fnmdesk/src/internal/process"
	"github.com/fnmdesk/fnmdesk/src/internal/ui"
)

const testExe = "/opt/fnm/fnm"

type stubResolver struct {
	path string
	err  error
}

func (s stubResolver) Resolve() (string, error) { return s.path, s.err }
func (s stubResolver) Candidates() []string     { return []string{s.path} }
func (s stubResolver) Check(path string) (bool, bool) {
	return path == s.path, path == s.path
}

// scriptedRunner answers fnm invocations by their joined arguments.
// Anything unscripted fails like an unknown fnm subcommand.
type scriptedRunner struct {
	mu        sync.Mutex
	responses map[string]process.Outcome
	calls     []string
}

func (r *scriptedRunner) Run(executable string, args []string, env []string) (process.Outcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.Join(args, " ")
	r.calls = append(r.calls, key)
	if outcome, ok := r.responses[key]; ok {
		return outcome, nil
	}
	return process.Outcome{ExitCode: 2, Stderr: "error: unrecognized subcommand '" + key + "'"}, nil
}

func (r *scriptedRunner) called(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.calls {
		if c == key {
			return true
		}
	}
	return false
}

func ok(stdout string) process.Outcome {
	return process.Outcome{Success: true, Stdout: stdout}
}

func failed(code int, stderr string) process.Outcome {
	return process.Outcome{ExitCode: code, Stderr: stderr}
}

type fakeFnm struct {
	runner  *scriptedRunner
	opened  []string
	environ []string
}

// useFakeFnm points every command at a scripted fnm on a Linux profile
func useFakeFnm(t *testing.T, responses map[string]process.Outcome, environ ...string) *fakeFnm {
	t.Helper()

	f := &fakeFnm{
		runner:  &scriptedRunner{responses: responses},
		environ: append([]string{"HOME=/home/dev", "PATH=/usr/bin"}, environ...),
	}

	saved := newClient
	newClient = func() (*fnm.Client, error) {
		env := config.NewSnapshot(f.environ, "/home/dev")
		return fnm.New(platform.ForOS("linux"), env,
			fnm.WithResolver(stubResolver{path: testExe}),
			fnm.WithRunner(f.runner),
			fnm.WithStarter(func(executable string, args ...string) error {
				f.opened = append(f.opened, executable+" "+strings.Join(args, " "))
				return nil
			}),
		), nil
	}
	t.Cleanup(func() { newClient = saved })
	return f
}

// runCommand executes the CLI with args and returns stdout and stderr
func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags()

	var out, errOut bytes.Buffer
	ui.SetOutput(&out, &errOut)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	t.Cleanup(func() {
		ui.SetOutput(nil, nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

// resetFlags restores flag variables; cobra keeps them between executions
func resetFlags() {
	verbose = false
	fnmPath = ""
	listFormat = formatTable
	listLTS = false
	listFilter = ""
	remoteFormat = formatTable
	remoteLTS = false
	remoteFilter = ""
	remoteLatest = false
	remoteOnly = false
	remoteLimit = 0
	installLTS = false
	installUse = false
	installSetDefault = false
	envFormat = formatTable
}
