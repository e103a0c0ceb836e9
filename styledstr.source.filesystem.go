package styledstr

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// FilesystemSource loads presets from a resource directory on disk.
//
// Preset names are searched in the directory itself (not recursively). File
// presets are used as given when they name an existing file, and are joined
// to the directory otherwise.
type FilesystemSource struct {
	root string
}

// FilesystemSourceDriver is the driver for creating FilesystemSource instances.
type FilesystemSourceDriver struct{}

func init() {
	RegisterSourceDriver(SourceDriverNameFilesystem, &FilesystemSourceDriver{})
}

// Open creates a new FilesystemSource.
// The connection string is the resource directory path.
func (d *FilesystemSourceDriver) Open(connectionString string) (Source, error) {
	return NewFilesystemSource(connectionString), nil
}

// NewFilesystemSource creates a source rooted at the resource directory root.
// An empty root is allowed: file presets still load, name lookups fail with
// a resource path error.
func NewFilesystemSource(root string) *FilesystemSource {
	return &FilesystemSource{root: root}
}

// Root returns the resource directory.
func (s *FilesystemSource) Root() string {
	return s.root
}

// Load locates, reads and decodes the preset.
func (s *FilesystemSource) Load(ctx context.Context, preset Preset) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := s.locate(preset)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewPresetReadError(path, err)
	}

	return NewDocument(filepath.Base(path), path, data)
}

// locate maps a preset to the path of an existing file.
func (s *FilesystemSource) locate(preset Preset) (string, error) {
	if !preset.IsFile() {
		if s.root == "" {
			return "", NewResourcePathError(preset.String())
		}

		entries, err := os.ReadDir(s.root)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return "", NewPresetNotFoundError(preset.String(), absPath(s.root))
			}
			return "", NewPresetReadError(s.root, err)
		}

		filenames := make([]string, 0, len(entries))
		for _, entry := range entries {
			if entry.Type().IsRegular() || entry.Type()&fs.ModeSymlink != 0 {
				filenames = append(filenames, entry.Name())
			}
		}

		filename, err := selectNamedPreset(filenames, preset, absPath(s.root))
		if err != nil {
			return "", err
		}
		return filepath.Join(s.root, filename), nil
	}

	path := preset.String()
	if !preset.IsExplicitPath() && !isFile(path) {
		path = filepath.Join(s.root, path)
	}
	if _, err := os.Stat(path); err != nil {
		return "", NewPresetFileMissingError(absPath(path))
	}
	return path, nil
}

// Close is a no-op; the source holds no open handles.
func (s *FilesystemSource) Close() error {
	return nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
