package internal

// Token path separator
const (
	TokenSeparator = "."
)

// Preset file patterns. FilePresetPattern detects a path reference anywhere in
// a preset identifier; PresetNameSuffixPattern is appended to a quoted preset
// name to match whole filenames.
const (
	FilePresetPattern       = `(?i)\.(?:json|ya?ml)`
	PresetNameSuffixPattern = `\.(?:json|ya?ml)`
	YAMLSuffixPattern       = `(?i)^\.ya?ml$`
)

// Placeholder syntax: $identifier$ where identifier is a letter followed by
// at most 23 word characters.
const (
	PlaceholderPattern = `\$([A-Za-z]\w{0,23})\$`
)

// Placeholder names that are never substituted. They collide with the
// parameter names of the parse call.
const (
	ReservedPlaceholderContents = "contents"
	ReservedPlaceholderPreset   = "preset"
	ReservedPlaceholderToken    = "token"
)

// Token error reasons
const (
	ReasonTokenNotFound    = "not_found"
	ReasonUnsupportedValue = "unsupported_value"
	ReasonEmptyList        = "empty_list"
)

// Error messages
const (
	ErrMsgTokenNotFound    = "token not found in preset"
	ErrMsgUnsupportedValue = "value is not numeric/boolean/string/list"
	ErrMsgEmptyList        = "list value has no entries"
	ErrMsgDecodeYAML       = "failed to decode YAML preset"
	ErrMsgDecodeJSON       = "failed to decode JSON preset"
)
