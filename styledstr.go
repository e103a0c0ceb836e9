// Package styledstr looks up localized strings by dotted token in preset
// files and fills their $placeholder$ markers.
//
// A preset is a YAML or JSON document of nested mappings. A token such as
// "greeting.morning" walks one mapping key per segment and must end at a
// string, number, boolean or list. Lists yield one entry at random:
//
//	# strings/en.yaml
//	greeting:
//	  morning: Good morning, $name$!
//	  random:
//	    - Hi $name$
//	    - Hello $name$
//
// # Basic Usage
//
// Create a parser over a resource directory and parse tokens:
//
//	parser := styledstr.MustNew(
//	    styledstr.WithResourcePath("strings"),
//	    styledstr.WithDefaultPreset("en"),
//	)
//	text := parser.Parse("greeting.morning", styledstr.Placeholders{"name": "Ada"})
//	// text: "Good morning, Ada!"
//
// Parse never fails. A missing preset, a missing token or an unusable value
// is logged at error level and yields "". Use Resolve to receive the error
// instead; IsResourcePathError, IsPresetFileError and IsTokenError classify it.
//
// # Presets
//
// A preset is either a name or a file. A name is searched in the resource
// directory as <name>.json, <name>.yaml or <name>.yml, case-insensitively.
// When several match, the lexicographically smallest filename wins, so
// .json is preferred over .yaml, and .yaml over .yml:
//
//	parser.ParsePreset("greeting.morning", styledstr.PresetRef("de"), nil)
//	parser.ParsePreset("greeting.morning", styledstr.PresetRef("special/de.yaml"), nil)
//	parser.ParsePreset("greeting.morning", styledstr.PresetFile("/etc/bot/de.json"), nil)
//
// Presets are read again on every call; editing a file takes effect on the
// next parse.
//
// # Placeholders
//
// A placeholder is $name$ where name starts with a letter and has at most
// 24 word characters. The name is lower-cased before lookup, so both $text$
// and $TEXT$ are filled from Placeholders{"text": ...}, while a key such as
// "Text" never matches. The names contents, preset and token are reserved
// and left untouched.
// Supplied values that no placeholder consumed are reported in one warning.
//
// # Sources
//
// Presets may also come from an fs.FS (NewFSSource) or a PostgreSQL table
// (NewPostgresSource), or any driver registered with RegisterSourceDriver:
//
//	src, err := styledstr.OpenSource("postgres", dsn)
//	parser, err := styledstr.New(styledstr.WithSource(src))
package styledstr
