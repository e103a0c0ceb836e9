package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/itsatony/go-styledstr"
)

// parseConfig holds parsed parse command configuration
type parseConfig struct {
	presetOptions
	token  string
	sets   []string
	vars   string
	strict bool
}

func runParse(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseParseFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgMissingToken, err)
		return ExitCodeUsageError
	}

	placeholders, err := loadPlaceholders(cfg.vars, cfg.sets, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidVars, err)
		return ExitCodeInputError
	}

	parser, err := cfg.newParser(stderr)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgCreateParserFailed, err)
		return ExitCodeError
	}
	defer parser.Close()

	ctx := context.Background()
	preset := cfg.presetRef()

	if !cfg.strict {
		// Failures are logged by the parser and print an empty line
		fmt.Fprintln(stdout, parser.ParseContext(ctx, cfg.token, preset, placeholders))
		return ExitCodeSuccess
	}

	text, err := parser.Resolve(ctx, cfg.token, preset, placeholders)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgParseFailed, err)
		return exitCodeFor(err)
	}
	fmt.Fprintln(stdout, text)
	return ExitCodeSuccess
}

func parseParseFlags(args []string) (*parseConfig, error) {
	fs := newFlagSet(CmdNameParse)

	cfg := &parseConfig{}
	cfg.addFlags(fs)
	fs.StringArrayVarP(&cfg.sets, FlagSet, FlagSetShort, nil, "")
	fs.StringVar(&cfg.vars, FlagVars, "", "")
	fs.BoolVar(&cfg.strict, FlagStrict, false, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	switch fs.NArg() {
	case 0:
		return nil, errors.New(ErrMsgMissingToken)
	case 1:
		cfg.token = fs.Arg(0)
	default:
		return nil, errors.New(ErrMsgTooManyArgs)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// exitCodeFor maps resolution failures to exit codes. Missing presets and
// resource paths are input problems; bad tokens are validation failures.
func exitCodeFor(err error) int {
	switch {
	case styledstr.IsTokenError(err):
		return ExitCodeValidationError
	case styledstr.IsResourcePathError(err), styledstr.IsPresetFileError(err):
		return ExitCodeInputError
	default:
		return ExitCodeError
	}
}
