package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/itsatony/go-styledstr"
)

// presetOptions holds the flags shared by every command that loads a preset
type presetOptions struct {
	preset   string
	file     string
	respath  string
	config   string
	envFiles []string
	logLevel string
}

func (o *presetOptions) addFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.preset, FlagPreset, FlagPresetShort, "", "")
	fs.StringVar(&o.file, FlagFile, "", "")
	fs.StringVarP(&o.respath, FlagRespath, FlagRespathShort, "", "")
	fs.StringVarP(&o.config, FlagConfig, FlagConfigShort, "", "")
	fs.StringArrayVar(&o.envFiles, FlagEnvFile, nil, "")
	fs.StringVar(&o.logLevel, FlagLogLevel, FlagDefaultLogLevel, "")
}

func (o *presetOptions) validate() error {
	if o.preset != "" && o.file != "" {
		return errors.New(ErrMsgPresetConflict)
	}
	if _, err := zapcore.ParseLevel(o.logLevel); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInvalidLogLevel, err)
	}
	return nil
}

// presetRef returns the preset selected by --file or --preset, or the zero
// preset for the configured default.
func (o *presetOptions) presetRef() styledstr.Preset {
	if o.file != "" {
		return styledstr.PresetFile(o.file)
	}
	return styledstr.PresetRef(o.preset)
}

// loadConfig merges the configuration sources.
// Precedence: flags > environment > config file > defaults.
func (o *presetOptions) loadConfig() (styledstr.Config, error) {
	var cfg styledstr.Config

	if o.config != "" {
		fileCfg, err := styledstr.LoadConfigFile(o.config)
		if err != nil {
			return styledstr.Config{}, err
		}
		cfg = fileCfg
	}

	envCfg, err := styledstr.LoadConfigFromEnv(o.envFiles...)
	if err != nil {
		return styledstr.Config{}, err
	}
	cfg = cfg.Merge(envCfg)

	return cfg.Merge(styledstr.Config{ResourcePath: o.respath}), nil
}

// newParser builds a parser from the merged configuration, logging to stderr.
func (o *presetOptions) newParser(stderr io.Writer) (*styledstr.Parser, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgConfigFailed, err)
	}

	logger, err := newLogger(o.logLevel, stderr)
	if err != nil {
		return nil, err
	}

	parser, err := styledstr.NewFromConfig(cfg, styledstr.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCreateParserFailed, err)
	}
	return parser, nil
}

// newLogger creates a production JSON logger writing to w.
func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidLogLevel, err)
	}

	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), lvl)
	return zap.New(core), nil
}

// newFlagSet creates a quiet flag set; errors are reported by the caller.
func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}
