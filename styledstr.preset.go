package styledstr

import (
	"github.com/itsatony/go-styledstr/internal"
)

// Preset identifies the file a token is resolved against.
//
// A preset is either a bare name, searched for as <name>.json, <name>.yaml or
// <name>.yml in the resource directory, or a file path. The zero Preset
// selects the parser's default preset.
type Preset struct {
	ref      string
	explicit bool
}

// PresetRef builds a preset from a string. A string containing .json, .yaml
// or .yml (any case) is a file path, resolved against the resource directory
// unless it already names an existing file. Anything else is a preset name.
func PresetRef(ref string) Preset {
	return Preset{ref: ref}
}

// PresetFile builds a preset from a file path that is used as-is, without
// consulting the resource directory.
func PresetFile(path string) Preset {
	return Preset{ref: path, explicit: true}
}

// IsZero reports whether the preset is unset.
func (p Preset) IsZero() bool {
	return p.ref == ""
}

// IsFile reports whether the preset refers to a file rather than a name.
func (p Preset) IsFile() bool {
	return p.explicit || internal.IsFilePreset(p.ref)
}

// IsExplicitPath reports whether the preset was built with PresetFile.
func (p Preset) IsExplicitPath() bool {
	return p.explicit
}

// String returns the name or path the preset was built from.
func (p Preset) String() string {
	return p.ref
}
