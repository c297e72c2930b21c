package fnm

import (
	"errors"
	"fmt"
	"strings"
)

// ToolError is a non-zero exit from fnm. Its message carries what fnm
// printed so the reason reaches the user unchanged.
type ToolError struct {
	Args     []string
	ExitCode int
	Stdout   string
	Stderr   string
}

func (e *ToolError) Error() string {
	command := strings.TrimSpace("fnm " + strings.Join(e.Args, " "))
	if msg := strings.TrimSpace(e.Stderr); msg != "" {
		return fmt.Sprintf("%s failed: %s", command, msg)
	}
	if msg := strings.TrimSpace(e.Stdout); msg != "" {
		return fmt.Sprintf("%s failed: %s", command, msg)
	}
	return fmt.Sprintf("%s failed with exit code %d", command, e.ExitCode)
}

// ErrPathResolution is matched by every PathResolutionError
var ErrPathResolution = errors.New("cannot determine directory")

// PathResolutionError means a directory fnm uses could not be worked out
type PathResolutionError struct {
	What   string // e.g. "fnm data directory"
	Reason string
}

func (e *PathResolutionError) Error() string {
	return fmt.Sprintf("cannot determine %s: %s", e.What, e.Reason)
}

// Is lets errors.Is(err, ErrPathResolution) match
func (e *PathResolutionError) Is(target error) bool {
	return target == ErrPathResolution
}
