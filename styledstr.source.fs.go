package styledstr

import (
	"context"
	"io/fs"
	"path"
	"strings"
)

// FSSource loads presets from an fs.FS such as an embed.FS.
//
// The same name and file rules as FilesystemSource apply, with paths being
// slash-separated and relative to dir inside the file system.
type FSSource struct {
	fsys fs.FS
	dir  string
}

// NewFSSource creates a source that searches dir inside fsys. Use "." for
// the root of fsys.
func NewFSSource(fsys fs.FS, dir string) *FSSource {
	if dir == "" {
		dir = "."
	}
	return &FSSource{fsys: fsys, dir: path.Clean(dir)}
}

// Load locates, reads and decodes the preset.
func (s *FSSource) Load(ctx context.Context, preset Preset) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name, err := s.locate(preset)
	if err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return nil, NewPresetReadError(name, err)
	}

	return NewDocument(path.Base(name), name, data)
}

func (s *FSSource) locate(preset Preset) (string, error) {
	if !preset.IsFile() {
		entries, err := fs.ReadDir(s.fsys, s.dir)
		if err != nil {
			return "", NewPresetNotFoundError(preset.String(), s.dir)
		}

		filenames := make([]string, 0, len(entries))
		for _, entry := range entries {
			if !entry.IsDir() {
				filenames = append(filenames, entry.Name())
			}
		}

		filename, err := selectNamedPreset(filenames, preset, s.dir)
		if err != nil {
			return "", err
		}
		return path.Join(s.dir, filename), nil
	}

	name := strings.TrimPrefix(path.Clean(preset.String()), "/")
	if !s.exists(name) {
		name = path.Join(s.dir, name)
	}
	if !s.exists(name) {
		return "", NewPresetFileMissingError(name)
	}
	return name, nil
}

func (s *FSSource) exists(name string) bool {
	if !fs.ValidPath(name) {
		return false
	}
	info, err := fs.Stat(s.fsys, name)
	return err == nil && !info.IsDir()
}

// Close is a no-op.
func (s *FSSource) Close() error {
	return nil
}
