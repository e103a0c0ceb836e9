package styledstr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDocumentYAML = `
greeting:
  morning: Good morning, $name$!
  random:
    - Hi $name$
    - Hello $name$, it is $time$
  empty: []
count: 3
nested:
  - key: value
`

func TestNewDocument(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		doc, err := NewDocument("en.yaml", "/srv/en.yaml", []byte(testDocumentYAML))
		require.NoError(t, err)
		assert.Equal(t, "en.yaml", doc.Filename)
		assert.Equal(t, "/srv/en.yaml", doc.Location)
	})

	t.Run("json with comments", func(t *testing.T) {
		doc, err := NewDocument("en.json", "en.json", []byte(`{
			// greeting strings
			"greeting": {"morning": "Good morning"},
		}`))
		require.NoError(t, err)

		text, err := doc.Lookup("greeting.morning")
		require.NoError(t, err)
		assert.Equal(t, "Good morning", text)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := NewDocument("en.yaml", "/srv/en.yaml", []byte("greeting: [unclosed"))
		require.Error(t, err)
		assert.True(t, IsPresetFileError(err))
		assert.Contains(t, err.Error(), ErrMsgPresetDecodeFailed)
	})
}

func TestDocument_Lookup(t *testing.T) {
	doc, err := NewDocument("en.yaml", "en.yaml", []byte(testDocumentYAML))
	require.NoError(t, err)

	text, err := doc.Lookup("greeting.morning")
	require.NoError(t, err)
	assert.Equal(t, "Good morning, $name$!", text)

	text, err = doc.Lookup("count")
	require.NoError(t, err)
	assert.Equal(t, "3", text)

	text, err = doc.Lookup("greeting.random")
	require.NoError(t, err)
	assert.Contains(t, []string{"Hi $name$", "Hello $name$, it is $time$"}, text)

	for _, token := range []string{"greeting", "greeting.empty", "nested", "greeting.evening", ""} {
		_, err := doc.Lookup(token)
		assert.True(t, IsTokenError(err), "token %q: %v", token, err)
	}
}

func TestDocument_Check(t *testing.T) {
	doc, err := NewDocument("en.yaml", "en.yaml", []byte(`
ok: fine
list: [a, b]
mixed:
  - a
  - {nested: value}
empty: []
`))
	require.NoError(t, err)

	assert.NoError(t, doc.Check("ok"))
	assert.NoError(t, doc.Check("list"))

	for _, token := range []string{"mixed", "empty", "missing"} {
		err := doc.Check(token)
		assert.True(t, IsTokenError(err), "token %q: %v", token, err)
	}
}

func TestDocument_Tokens(t *testing.T) {
	doc, err := NewDocument("en.yaml", "en.yaml", []byte(testDocumentYAML))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"count",
		"greeting.empty",
		"greeting.morning",
		"greeting.random",
		"nested",
	}, doc.Tokens())
}

func TestDocument_Placeholders(t *testing.T) {
	doc, err := NewDocument("en.yaml", "en.yaml", []byte(testDocumentYAML))
	require.NoError(t, err)

	names, err := doc.Placeholders("greeting.morning")
	require.NoError(t, err)
	assert.Equal(t, []string{"name"}, names)

	names, err = doc.Placeholders("greeting.random")
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "time"}, names)

	names, err = doc.Placeholders("count")
	require.NoError(t, err)
	assert.Empty(t, names)

	_, err = doc.Placeholders("greeting.evening")
	assert.True(t, IsTokenError(err))
}
