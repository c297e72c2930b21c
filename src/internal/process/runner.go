// Package process runs external executables and captures what they print.
package process

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/fnmdesk/fnmdesk/src/internal/ui"
)

// Outcome is the result of a process that ran to completion
type Outcome struct {
	Success  bool
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner executes a program and waits for it to exit
type Runner interface {
	// Run executes executable with args and env (KEY=VALUE entries; nil
	// inherits the current environment). A non-zero exit is reported in the
	// Outcome, not as an error.
	Run(executable string, args []string, env []string) (Outcome, error)
}

// LaunchError means the process could not be started at all
type LaunchError struct {
	Executable string
	Err        error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to launch %s: %v", e.Executable, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// ExecRunner is the Runner backed by os/exec
type ExecRunner struct{}

// Run implements Runner. Output is buffered in full; nothing is streamed.
func (ExecRunner) Run(executable string, args []string, env []string) (Outcome, error) {
	ui.Debug("exec: %s %s", executable, strings.Join(args, " "))

	cmd := exec.Command(executable, args...)
	cmd.Env = env

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	outcome := Outcome{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			outcome.ExitCode = exitErr.ExitCode()
			ui.Debug("exec: %s exited with code %d", executable, outcome.ExitCode)
			return outcome, nil
		}
		return Outcome{}, &LaunchError{Executable: executable, Err: err}
	}

	outcome.Success = true
	return outcome, nil
}

// StartFunc launches a program without waiting for it
type StartFunc func(executable string, args ...string) error

// Start launches executable and returns once it has been spawned. Only a
// spawn failure is reported; the child's exit status is never observed.
func Start(executable string, args ...string) error {
	ui.Debug("start: %s %s", executable, strings.Join(args, " "))

	cmd := exec.Command(executable, args...)
	if err := cmd.Start(); err != nil {
		return &LaunchError{Executable: executable, Err: err}
	}

	// Reap the child in the background so it does not linger as a zombie
	go func() { _ = cmd.Wait() }()
	return nil
}
