package styledstr

import (
	"go.uber.org/zap"
)

// Option is a functional option for configuring the Parser.
type Option func(*parserConfig)

// parserConfig holds the internal configuration for a Parser.
type parserConfig struct {
	config Config
	source Source
	logger *zap.Logger
}

// defaultParserConfig returns the default parser configuration.
func defaultParserConfig() *parserConfig {
	return &parserConfig{
		config: Config{DefaultPreset: DefaultPresetName},
	}
}

// WithConfig replaces the resource path and default preset at once.
// Options applied later still override individual fields.
func WithConfig(cfg Config) Option {
	return func(c *parserConfig) {
		c.config = cfg
	}
}

// WithResourcePath sets the directory searched for named presets.
// Default: unset (name lookups fail with a resource path error)
func WithResourcePath(dir string) Option {
	return func(c *parserConfig) {
		c.config.ResourcePath = dir
	}
}

// WithDefaultPreset sets the preset used when a call names none.
// Default: "default"
func WithDefaultPreset(preset string) Option {
	return func(c *parserConfig) {
		c.config.DefaultPreset = preset
	}
}

// WithSource sets the source presets are loaded from, replacing the
// filesystem source built from the resource path.
func WithSource(source Source) Option {
	return func(c *parserConfig) {
		c.source = source
	}
}

// WithLogger sets the logger for the parser.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *parserConfig) {
		c.logger = logger
	}
}
