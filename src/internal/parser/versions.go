package parser

import (
	"regexp"
	"strings"

	"github.com/fnmdesk/fnmdesk/src/internal/runtime"
)

// systemVersion is the entry fnm lists for a Node.js not managed by fnm
const systemVersion = "system"

// ParseInstalled reads `fnm list` output. Each line is a version optionally
// followed by alias tags, such as "* v22.21.1 default" or
// "* v20.12.2 lts-latest". The "* system" entry is skipped. current marks
// the version in use.
func ParseInstalled(output, current string) []runtime.NodeVersion {
	current = strings.TrimSpace(current)

	var versions []runtime.NodeVersion
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "*"))
		fields := strings.Fields(line)
		if len(fields) == 0 || fields[0] == systemVersion {
			continue
		}

		nv := runtime.NodeVersion{
			Name:      fields[0],
			Installed: true,
			Current:   current != "" && fields[0] == current,
		}
		for _, tag := range fields[1:] {
			tag = strings.Trim(tag, "(),")
			switch {
			case tag == "":
			case tag == "default":
				nv.Default = true
			case strings.Contains(strings.ToLower(tag), "lts"):
				if !nv.LTS {
					nv.LTS = true
					nv.LTSName = tag
				}
			default:
				nv.Aliases = append(nv.Aliases, tag)
			}
		}
		versions = append(versions, nv)
	}
	return versions
}

var remoteLinePattern = regexp.MustCompile(`^(v[\d.]+)(?:\s+\(([^)]+)\))?`)

// ParseRemote reads `fnm list-remote` output, where LTS releases carry
// their codename:
//
//	v22.21.1
//	v20.12.2 (Iron)
//
// Versions whose name is in installed are marked installed.
func ParseRemote(output string, installed []string) []runtime.NodeVersion {
	have := make(map[string]bool, len(installed))
	for _, name := range installed {
		have[name] = true
	}

	var versions []runtime.NodeVersion
	for _, line := range strings.Split(output, "\n") {
		m := remoteLinePattern.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		versions = append(versions, runtime.NodeVersion{
			Name:      m[1],
			Installed: have[m[1]],
			LTS:       m[2] != "",
			LTSName:   m[2],
		})
	}
	return versions
}
