package config

import "strings"

// DefaultMirror is where fnm downloads Node.js from unless told otherwise
const DefaultMirror = "https://nodejs.org/dist"

// mirrorPreset is a well-known Node.js distribution mirror
type mirrorPreset struct {
	Label string
	URL   string
}

var mirrorPresets = []mirrorPreset{
	{Label: "Official", URL: DefaultMirror},
	{Label: "npmmirror", URL: "https://npmmirror.com/mirrors/node"},
	{Label: "Tencent Cloud", URL: "https://mirrors.cloud.tencent.com/nodejs-release"},
	{Label: "Huawei Cloud", URL: "https://mirrors.huaweicloud.com/nodejs"},
}

// MirrorLabel names a mirror URL, ignoring a trailing slash.
// Returns "" for unknown mirrors.
func MirrorLabel(url string) string {
	url = strings.TrimRight(strings.TrimSpace(url), "/")
	for _, p := range mirrorPresets {
		if strings.EqualFold(p.URL, url) {
			return p.Label
		}
	}
	return ""
}
