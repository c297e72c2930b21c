//go:build !windows

package config

func knownFolders() map[string]string {
	return nil
}
