package styledstr

import (
	"context"
	"sort"
	"sync"

	"github.com/itsatony/go-styledstr/internal"
)

// Source locates and decodes preset files.
//
// Every Load reads and decodes the preset again; sources keep no document
// cache. Implementations must be safe for concurrent use.
type Source interface {
	// Load returns the document backing preset.
	Load(ctx context.Context, preset Preset) (*Document, error)

	// Close releases resources held by the source.
	Close() error
}

// SourceDriver creates Source instances from a connection string.
type SourceDriver interface {
	// Open creates a source. The connection string format is driver-specific.
	Open(connectionString string) (Source, error)
}

// Source driver registry
var (
	sourceDriversMu sync.RWMutex
	sourceDrivers   = make(map[string]SourceDriver)
)

// RegisterSourceDriver registers a source driver by name.
// This is typically called from a driver's init() function.
// Panics if a driver with the same name is already registered.
func RegisterSourceDriver(name string, driver SourceDriver) {
	sourceDriversMu.Lock()
	defer sourceDriversMu.Unlock()

	if driver == nil {
		panic(ErrMsgNilSourceDriver)
	}
	if _, exists := sourceDrivers[name]; exists {
		panic(ErrMsgSourceDriverRegistered + ": " + name)
	}
	sourceDrivers[name] = driver
}

// OpenSource opens a preset source using the named driver.
//
// Example:
//
//	src, err := styledstr.OpenSource("filesystem", "/srv/bot/strings")
//	src, err := styledstr.OpenSource("postgres", "postgres://localhost/bot?sslmode=disable")
func OpenSource(driverName, connectionString string) (Source, error) {
	sourceDriversMu.RLock()
	driver, ok := sourceDrivers[driverName]
	sourceDriversMu.RUnlock()

	if !ok {
		return nil, &SourceError{Message: ErrMsgSourceDriverNotFound, Driver: driverName}
	}

	return driver.Open(connectionString)
}

// ListSourceDrivers returns the names of all registered source drivers, sorted.
func ListSourceDrivers() []string {
	sourceDriversMu.RLock()
	defer sourceDriversMu.RUnlock()

	names := make([]string, 0, len(sourceDrivers))
	for name := range sourceDrivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// selectNamedPreset applies the name lookup rules to a listing of filenames
// found at location.
func selectNamedPreset(filenames []string, preset Preset, location string) (string, error) {
	filename, ok := internal.SelectPresetFile(filenames, preset.String())
	if !ok {
		return "", NewPresetNotFoundError(preset.String(), location)
	}
	return filename, nil
}
