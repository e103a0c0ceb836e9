package internal

import (
	"regexp"
	"sort"
)

var filePresetPattern = regexp.MustCompile(FilePresetPattern)

// IsFilePreset reports whether a preset identifier references a file rather
// than a preset name. The check is a substring match, so "dir/alter.yml" and
// "ALTER.JSON" are both file references.
func IsFilePreset(preset string) bool {
	return filePresetPattern.MatchString(preset)
}

// SelectPresetFile picks the file backing a named preset from a directory
// listing. Filenames must be exactly <name>.json, <name>.yaml or <name>.yml,
// compared case-insensitively. When several match, the lexicographically
// smallest filename wins, which gives the priority .json > .yaml > .yml.
func SelectPresetFile(filenames []string, name string) (string, bool) {
	matcher, err := regexp.Compile(`(?i)^` + regexp.QuoteMeta(name) + PresetNameSuffixPattern + `$`)
	if err != nil {
		return "", false
	}

	var matches []string
	for _, filename := range filenames {
		if matcher.MatchString(filename) {
			matches = append(matches, filename)
		}
	}
	if len(matches) == 0 {
		return "", false
	}

	sort.Strings(matches)
	return matches[0], true
}
