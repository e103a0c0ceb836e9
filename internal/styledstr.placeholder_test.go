package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstitutePlaceholders_Replace(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		values map[string]string
	}{
		{"plain", "$text$", map[string]string{"text": "pass"}},
		{"capital in text", "$TEXT$", map[string]string{"text": "pass"}},
		{"underscore", "$underscored_text$", map[string]string{"underscored_text": "pass"}},
		{"digits", "$test4science$", map[string]string{"test4science": "pass"}},
		{"max length", "$complicated__placeholder$", map[string]string{"complicated__placeholder": "pass"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, unconsumed := SubstitutePlaceholders(tt.text, tt.values)
			assert.Equal(t, "pass", got)
			assert.Empty(t, unconsumed)
		})
	}
}

func TestSubstitutePlaceholders_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		values map[string]string
	}{
		{"unknown name", "$text$", map[string]string{"nonexistence": "failed"}},
		{"uppercase key", "$text$", map[string]string{"Text": "failed"}},
		{"underscore prefix", "$__main__$", map[string]string{"__main__": "failed"}},
		{"digit prefix", "$1placeholder$", map[string]string{"1placeholder": "failed"}},
		{"too long", "$a_complicated_placeholder$", map[string]string{"a_complicated_placeholder": "failed"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, unconsumed := SubstitutePlaceholders(tt.text, tt.values)
			assert.Equal(t, tt.text, got)
			assert.Len(t, unconsumed, 1)
		})
	}
}

func TestSubstitutePlaceholders_Multiple(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		values   map[string]string
		expected string
	}{
		{
			"normal",
			"$subject$ $action$ $object$.",
			map[string]string{"subject": "The quick brown fox", "action": "jumps over", "object": "the lazy dog"},
			"The quick brown fox jumps over the lazy dog.",
		},
		{
			"with dollar",
			"US$ 1.00 approx. equals CA$ $value$ (data provided by $provider$ on $date$).",
			map[string]string{"value": "1.27", "date": "Jan 1, 2021", "provider": "Morningstar"},
			"US$ 1.00 approx. equals CA$ 1.27 (data provided by Morningstar on Jan 1, 2021).",
		},
		{
			"with invalid",
			"The $_invalid_placeholder$ will be ignored, and the $normal_placeholder$ will not.",
			map[string]string{"_invalid_placeholder": "invalid placeholder", "normal_placeholder": "normal one"},
			"The $_invalid_placeholder$ will be ignored, and the normal one will not.",
		},
		{
			"with duplicate",
			"Can you $can$ $a_can$ as a $canner$ $can$ $can$ $a_can$?",
			map[string]string{"can": "can", "a_can": "a can", "canner": "canner"},
			"Can you can a can as a canner can can a can?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := SubstitutePlaceholders(tt.text, tt.values)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSubstitutePlaceholders_EmptyValuesKeepsText(t *testing.T) {
	text := "Hello $name$, you have $count$ messages $$ and $ 5"

	got, unconsumed := SubstitutePlaceholders(text, nil)
	assert.Equal(t, text, got)
	assert.Empty(t, unconsumed)

	got, unconsumed = SubstitutePlaceholders(text, map[string]string{})
	assert.Equal(t, text, got)
	assert.Empty(t, unconsumed)
}

func TestSubstitutePlaceholders_Reserved(t *testing.T) {
	text := "$token$ $preset$ $contents$ $ok$"
	values := map[string]string{"token": "x", "preset": "y", "contents": "z", "ok": "fine"}

	got, unconsumed := SubstitutePlaceholders(text, values)
	assert.Equal(t, "$token$ $preset$ $contents$ fine", got)
	assert.Equal(t, []string{"contents", "preset", "token"}, unconsumed)
}

func TestSubstitutePlaceholders_UnconsumedSet(t *testing.T) {
	text := "$test$$prepare$ $4unforeseen$ $_consequences$"
	values := map[string]string{
		"test":          "RELAID WORDS: ",
		"prepare":       "Prepare ",
		"4unforeseen":   "for unforeseen ",
		"_consequences": "consequences.",
		"absent":        "never",
	}

	_, unconsumed := SubstitutePlaceholders(text, values)
	assert.Equal(t, []string{"4unforeseen", "_consequences", "absent"}, unconsumed)
}

func TestPlaceholderNames(t *testing.T) {
	names := PlaceholderNames("$A$ and $b$ then $a$ and $1x$")
	assert.Equal(t, []string{"a", "b"}, names)
}

func TestIsReservedPlaceholder(t *testing.T) {
	assert.True(t, IsReservedPlaceholder(ReservedPlaceholderToken))
	assert.True(t, IsReservedPlaceholder(ReservedPlaceholderPreset))
	assert.True(t, IsReservedPlaceholder(ReservedPlaceholderContents))
	assert.False(t, IsReservedPlaceholder("text"))
}
