package internal

import (
	"regexp"
	"sort"
	"strings"
)

var placeholderPattern = regexp.MustCompile(PlaceholderPattern)

var reservedPlaceholders = map[string]struct{}{
	ReservedPlaceholderContents: {},
	ReservedPlaceholderPreset:   {},
	ReservedPlaceholderToken:    {},
}

// IsReservedPlaceholder reports whether name can never be substituted.
func IsReservedPlaceholder(name string) bool {
	_, ok := reservedPlaceholders[name]
	return ok
}

// SubstitutePlaceholders replaces every $identifier$ span in text whose
// lower-cased identifier is a key of values. Reserved or unknown identifiers
// are left verbatim. The second result lists, sorted, the keys of values that
// were never used.
func SubstitutePlaceholders(text string, values map[string]string) (string, []string) {
	consumed := make(map[string]struct{}, len(values))

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, span := range placeholderPattern.FindAllStringSubmatchIndex(text, -1) {
		b.WriteString(text[last:span[0]])
		last = span[1]

		name := strings.ToLower(text[span[2]:span[3]])
		value, ok := values[name]
		if !ok || IsReservedPlaceholder(name) {
			b.WriteString(text[span[0]:span[1]])
			continue
		}
		consumed[name] = struct{}{}
		b.WriteString(value)
	}
	b.WriteString(text[last:])

	var unconsumed []string
	for name := range values {
		if _, ok := consumed[name]; !ok {
			unconsumed = append(unconsumed, name)
		}
	}
	sort.Strings(unconsumed)

	return b.String(), unconsumed
}

// PlaceholderNames lists the distinct lower-cased identifiers referenced in
// text, in order of first appearance.
func PlaceholderNames(text string) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, m := range placeholderPattern.FindAllStringSubmatch(text, -1) {
		name := strings.ToLower(m[1])
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}
