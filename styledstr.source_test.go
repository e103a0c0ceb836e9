package styledstr

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticSource serves a single in-memory document for every preset.
type staticSource struct {
	doc    *Document
	closed bool
}

func (s *staticSource) Load(ctx context.Context, preset Preset) (*Document, error) {
	if s.doc == nil {
		return nil, NewPresetNotFoundError(preset.String(), "static")
	}
	return s.doc, nil
}

func (s *staticSource) Close() error {
	s.closed = true
	return nil
}

type staticSourceDriver struct{}

func (staticSourceDriver) Open(connectionString string) (Source, error) {
	doc, err := NewDocument("static.json", "static", []byte(connectionString))
	if err != nil {
		return nil, err
	}
	return &staticSource{doc: doc}, nil
}

func TestSourceDriverRegistry(t *testing.T) {
	t.Run("built-in drivers", func(t *testing.T) {
		drivers := ListSourceDrivers()
		assert.Contains(t, drivers, SourceDriverNameFilesystem)
		assert.Contains(t, drivers, SourceDriverNamePostgres)
		assert.IsNonDecreasing(t, drivers)
	})

	t.Run("register and open", func(t *testing.T) {
		if !slices.Contains(ListSourceDrivers(), "static") {
			RegisterSourceDriver("static", staticSourceDriver{})
		}
		assert.Contains(t, ListSourceDrivers(), "static")

		source, err := OpenSource("static", `{"greeting": "hi $name$"}`)
		require.NoError(t, err)

		parser := MustNew(WithSource(source))
		assert.Equal(t, "hi Ada", parser.Parse("greeting", Placeholders{"name": "Ada"}))

		require.NoError(t, parser.Close())
		assert.True(t, source.(*staticSource).closed)
	})

	t.Run("duplicate registration panics", func(t *testing.T) {
		assert.Panics(t, func() {
			RegisterSourceDriver(SourceDriverNameFilesystem, &FilesystemSourceDriver{})
		})
	})

	t.Run("nil driver panics", func(t *testing.T) {
		assert.Panics(t, func() {
			RegisterSourceDriver("nil-driver", nil)
		})
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := OpenSource("unknown", "")
		require.Error(t, err)

		var sourceErr *SourceError
		require.ErrorAs(t, err, &sourceErr)
		assert.Equal(t, ErrMsgSourceDriverNotFound, sourceErr.Message)
		assert.Equal(t, "unknown", sourceErr.Driver)
	})
}

func TestSelectNamedPreset(t *testing.T) {
	filenames := []string{"en.yml", "en.yaml", "EN.json", "de.yaml", "notes.txt"}

	filename, err := selectNamedPreset(filenames, PresetRef("en"), "dir")
	require.NoError(t, err)
	assert.Equal(t, "EN.json", filename)

	_, err = selectNamedPreset(filenames, PresetRef("fr"), "dir")
	require.Error(t, err)
	assert.True(t, IsPresetFileError(err))
	assert.Contains(t, err.Error(), `preset "fr" from the resource path dir.`)
}

func TestPreset(t *testing.T) {
	tests := []struct {
		name     string
		preset   Preset
		zero     bool
		file     bool
		explicit bool
	}{
		{"zero", Preset{}, true, false, false},
		{"name", PresetRef("en"), false, false, false},
		{"yaml file", PresetRef("en.yaml"), false, true, false},
		{"upper-case json file", PresetRef("strings/EN.JSON"), false, true, false},
		{"extension inside the name", PresetRef("en.yml.old"), false, true, false},
		{"explicit file", PresetFile("/etc/en"), false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.zero, tt.preset.IsZero())
			assert.Equal(t, tt.file, tt.preset.IsFile())
			assert.Equal(t, tt.explicit, tt.preset.IsExplicitPath())
		})
	}

	assert.Equal(t, "strings/en.yaml", PresetRef("strings/en.yaml").String())
}
