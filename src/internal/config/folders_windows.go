//go:build windows

package config

import (
	"github.com/fnmdesk/fnmdesk/src/internal/constants"
	"golang.org/x/sys/windows"
)

// knownFolders asks the shell for directories that GUI-launched processes
// sometimes lack in their environment block.
func knownFolders() map[string]string {
	folders := map[string]string{}
	if dir, err := windows.KnownFolderPath(windows.FOLDERID_LocalAppData, 0); err == nil && dir != "" {
		folders[constants.EnvLocalAppData] = dir
	}
	if dir, err := windows.KnownFolderPath(windows.FOLDERID_ProgramFiles, 0); err == nil && dir != "" {
		folders[constants.EnvProgramFiles] = dir
	}
	return folders
}
