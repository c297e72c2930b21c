// Package runtime models Node.js versions as fnm reports them.
package runtime

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Version represents a Node.js version number
type Version struct {
	Raw   string // The raw version string (e.g., "v18.16.0", "20.5.0")
	Major int
	Minor int
	Patch int
	Valid bool // false when Raw has no major.minor.patch
}

var semverPattern = regexp.MustCompile(`v?(\d+)\.(\d+)\.(\d+)`)

// NewVersion parses a version string. Unparseable input keeps Raw and sorts
// as 0.0.0.
func NewVersion(version string) Version {
	v := Version{Raw: version}
	m := semverPattern.FindStringSubmatch(version)
	if m == nil {
		return v
	}
	v.Major, _ = strconv.Atoi(m[1])
	v.Minor, _ = strconv.Atoi(m[2])
	v.Patch, _ = strconv.Atoi(m[3])
	v.Valid = true
	return v
}

// String returns the string representation of the version
func (v Version) String() string {
	return v.Raw
}

// Compare returns -1, 0 or 1 as v is older than, equal to, or newer than other
func (v Version) Compare(other Version) int {
	switch {
	case v.Major != other.Major:
		return cmpInt(v.Major, other.Major)
	case v.Minor != other.Minor:
		return cmpInt(v.Minor, other.Minor)
	default:
		return cmpInt(v.Patch, other.Patch)
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// MajorOf returns the leading major number of a version string, if any
func MajorOf(version string) (int, bool) {
	s := strings.TrimPrefix(strings.TrimSpace(version), "v")
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	return n, err == nil
}

// NodeVersion is one Node.js release as listed by fnm, installed or remote
type NodeVersion struct {
	Name      string   `json:"name" yaml:"name"` // as fnm prints it, e.g. "v22.21.1"
	Installed bool     `json:"installed" yaml:"installed"`
	Default   bool     `json:"default" yaml:"default"`
	Current   bool     `json:"current" yaml:"current"`
	LTS       bool     `json:"lts" yaml:"lts"`
	LTSName   string   `json:"lts_name,omitempty" yaml:"lts_name,omitempty"` // codename such as "Jod", or an lts-* alias
	Aliases   []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
}

// Version returns the parsed version number
func (nv NodeVersion) Version() Version {
	return NewVersion(nv.Name)
}

// String returns the name with its markers, e.g. "v20.12.2 (Iron, default)"
func (nv NodeVersion) String() string {
	var tags []string
	if nv.LTSName != "" {
		tags = append(tags, nv.LTSName)
	}
	if nv.Default {
		tags = append(tags, "default")
	}
	tags = append(tags, nv.Aliases...)
	if len(tags) == 0 {
		return nv.Name
	}
	return fmt.Sprintf("%s (%s)", nv.Name, strings.Join(tags, ", "))
}

// SortDescending orders versions newest first. Equal versions keep their
// relative order.
func SortDescending(versions []NodeVersion) {
	sort.SliceStable(versions, func(i, j int) bool {
		return versions[i].Version().Compare(versions[j].Version()) > 0
	})
}

// GroupByMajor buckets versions by major number. Names without a major
// number are dropped.
func GroupByMajor(versions []NodeVersion) map[int][]NodeVersion {
	groups := make(map[int][]NodeVersion)
	for _, v := range versions {
		major, ok := MajorOf(v.Name)
		if !ok {
			continue
		}
		groups[major] = append(groups[major], v)
	}
	return groups
}

// LatestByMajor returns the newest version of each major line, newest
// major first.
func LatestByMajor(versions []NodeVersion) []NodeVersion {
	groups := GroupByMajor(versions)

	majors := make([]int, 0, len(groups))
	for major := range groups {
		majors = append(majors, major)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(majors)))

	result := make([]NodeVersion, 0, len(majors))
	for _, major := range majors {
		group := append([]NodeVersion(nil), groups[major]...)
		SortDescending(group)
		result = append(result, group[0])
	}
	return result
}

// FilterOptions narrows a version list
type FilterOptions struct {
	LTSOnly       bool
	InstalledOnly bool
	Keyword       string // case-insensitive match on name, LTS name or alias
}

// Filter returns the versions matching every set option
func Filter(versions []NodeVersion, opts FilterOptions) []NodeVersion {
	keyword := strings.ToLower(strings.TrimSpace(opts.Keyword))

	result := make([]NodeVersion, 0, len(versions))
	for _, v := range versions {
		if opts.LTSOnly && !v.LTS {
			continue
		}
		if opts.InstalledOnly && !v.Installed {
			continue
		}
		if keyword != "" && !v.matches(keyword) {
			continue
		}
		result = append(result, v)
	}
	return result
}

func (nv NodeVersion) matches(keyword string) bool {
	if strings.Contains(strings.ToLower(nv.Name), keyword) ||
		strings.Contains(strings.ToLower(nv.LTSName), keyword) {
		return true
	}
	for _, a := range nv.Aliases {
		if strings.Contains(strings.ToLower(a), keyword) {
			return true
		}
	}
	return false
}

// Names returns the version names in order
func Names(versions []NodeVersion) []string {
	names := make([]string, len(versions))
	for i, v := range versions {
		names[i] = v.Name
	}
	return names
}
