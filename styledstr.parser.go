package styledstr

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/itsatony/go-styledstr/internal"
)

// Placeholders maps lower-case placeholder names to substitution values.
// Values are formatted with fmt's %v verb.
type Placeholders map[string]any

// Parser resolves tokens against presets and fills their placeholders.
//
// A Parser holds only read-only configuration; presets are loaded again on
// every call. It is safe for concurrent use.
type Parser struct {
	config Config
	source Source
	logger *zap.Logger
	pick   internal.Chooser
}

// New creates a Parser with the given options.
func New(opts ...Option) (*Parser, error) {
	pc := defaultParserConfig()
	for _, opt := range opts {
		opt(pc)
	}

	config := pc.config.withDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}

	logger := pc.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	source := pc.source
	if source == nil {
		source = NewFilesystemSource(config.ResourcePath)
	}

	logger.Debug(LogMsgParserCreated,
		zap.String(LogFieldResourcePath, config.ResourcePath),
		zap.String(LogFieldDefault, config.DefaultPreset))

	return &Parser{
		config: config,
		source: source,
		logger: logger,
		pick:   internal.DefaultChooser,
	}, nil
}

// NewFromConfig creates a Parser from a host configuration. Options are
// applied after cfg and may override it.
func NewFromConfig(cfg Config, opts ...Option) (*Parser, error) {
	return New(append([]Option{WithConfig(cfg)}, opts...)...)
}

// MustNew creates a new Parser and panics if there's an error.
func MustNew(opts ...Option) *Parser {
	parser, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return parser
}

// Config returns the configuration the parser was created with.
func (p *Parser) Config() Config {
	return p.config
}

// Source returns the source presets are loaded from.
func (p *Parser) Source() Source {
	return p.source
}

// Parse resolves token in the default preset and substitutes placeholders.
// Failures are logged and yield "".
func (p *Parser) Parse(token string, placeholders Placeholders) string {
	return p.ParseContext(context.Background(), token, Preset{}, placeholders)
}

// ParsePreset is Parse against an explicit preset.
func (p *Parser) ParsePreset(token string, preset Preset, placeholders Placeholders) string {
	return p.ParseContext(context.Background(), token, preset, placeholders)
}

// ParseContext resolves token in preset (the default preset when zero) and
// substitutes placeholders. It never fails: resource path, preset file and
// token errors are logged at error level and "" is returned.
func (p *Parser) ParseContext(ctx context.Context, token string, preset Preset, placeholders Placeholders) string {
	text, err := p.Resolve(ctx, token, preset, placeholders)
	if err != nil {
		if preset.IsZero() {
			preset = p.defaultPreset()
		}
		p.logger.Error(LogMsgParseFailed,
			zap.String(LogFieldToken, token),
			zap.String(LogFieldPreset, preset.String()),
			zap.Error(err))
		return ""
	}
	return text
}

// Resolve is ParseContext returning the failure instead of logging it.
// Placeholder problems are never errors; they are logged as a warning.
func (p *Parser) Resolve(ctx context.Context, token string, preset Preset, placeholders Placeholders) (string, error) {
	doc, err := p.Load(ctx, preset)
	if err != nil {
		return "", err
	}

	raw, err := doc.lookup(token, p.pick)
	if err != nil {
		return "", err
	}
	p.logger.Debug(LogMsgTokenParsed, zap.String(LogFieldToken, token))

	return p.Substitute(raw, placeholders), nil
}

// Load reads and decodes preset (the default preset when zero).
func (p *Parser) Load(ctx context.Context, preset Preset) (*Document, error) {
	if preset.IsZero() {
		preset = p.defaultPreset()
	}

	doc, err := p.source.Load(ctx, preset)
	if err != nil {
		return nil, err
	}

	p.logger.Info(LogMsgPresetLoaded,
		zap.String(LogFieldFile, doc.Filename),
		zap.String(LogFieldLocation, doc.Location))
	return doc, nil
}

// Substitute replaces $name$ placeholders in text. Placeholders that were
// supplied but not used are reported in a single warning.
func (p *Parser) Substitute(text string, placeholders Placeholders) string {
	values := make(map[string]string, len(placeholders))
	for name, value := range placeholders {
		values[name] = fmt.Sprint(value)
	}

	result, unconsumed := internal.SubstitutePlaceholders(text, values)
	if len(unconsumed) > 0 {
		p.logger.Warn(LogMsgPlaceholdersSkipped, zap.Strings(LogFieldPlaceholders, unconsumed))
	}
	return result
}

// Close closes the underlying source.
func (p *Parser) Close() error {
	err := p.source.Close()
	p.logger.Debug(LogMsgSourceClosed)
	return err
}

func (p *Parser) defaultPreset() Preset {
	return PresetRef(p.config.DefaultPreset)
}
