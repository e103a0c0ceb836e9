package main

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/itsatony/go-styledstr"
)

// readInput reads content from a file or stdin
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == InputSourceStdin {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(path)
}

// decodeVars decodes a placeholder file. JSON files may carry comments;
// everything else, stdin included, is read as YAML, which accepts plain JSON.
func decodeVars(path string, data []byte) (styledstr.Placeholders, error) {
	vars := styledstr.Placeholders{}

	switch strings.ToLower(filepath.Ext(path)) {
	case styledstr.ConfigExtJSON, styledstr.ConfigExtJSONC:
		if err := json.Unmarshal(jsonc.ToJSON(data), &vars); err != nil {
			return nil, err
		}
	default:
		if err := yaml.Unmarshal(data, &vars); err != nil {
			return nil, err
		}
	}
	return vars, nil
}

// loadPlaceholders reads --vars then applies each --set on top of it.
func loadPlaceholders(varsPath string, sets []string, stdin io.Reader) (styledstr.Placeholders, error) {
	placeholders := styledstr.Placeholders{}

	if varsPath != "" {
		data, err := readInput(varsPath, stdin)
		if err != nil {
			return nil, err
		}
		vars, err := decodeVars(varsPath, data)
		if err != nil {
			return nil, err
		}
		for name, value := range vars {
			placeholders[name] = value
		}
	}

	for _, set := range sets {
		name, value, ok := strings.Cut(set, SetSeparator)
		if !ok || name == "" {
			return nil, errors.New(ErrMsgInvalidSet + ": " + set)
		}
		placeholders[name] = value
	}

	return placeholders, nil
}
