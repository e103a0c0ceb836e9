package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/itsatony/go-styledstr"
)

// tokensConfig holds parsed tokens command configuration
type tokensConfig struct {
	presetOptions
	format string
}

// tokensOutput represents JSON output for tokens
type tokensOutput struct {
	File     string   `json:"file"`
	Location string   `json:"location"`
	Tokens   []string `json:"tokens"`
}

func runTokens(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseTokensFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFormat, err)
		return ExitCodeUsageError
	}

	doc, code := loadDocument(&cfg.presetOptions, stderr)
	if doc == nil {
		return code
	}

	tokens := doc.Tokens()
	if cfg.format == OutputFormatJSON {
		output := tokensOutput{
			File:     doc.Filename,
			Location: doc.Location,
			Tokens:   append([]string{}, tokens...),
		}
		jsonBytes, _ := json.MarshalIndent(output, "", "  ")
		fmt.Fprintln(stdout, string(jsonBytes))
		return ExitCodeSuccess
	}

	for _, token := range tokens {
		fmt.Fprintln(stdout, token)
	}
	return ExitCodeSuccess
}

func parseTokensFlags(args []string) (*tokensConfig, error) {
	fs := newFlagSet(CmdNameTokens)

	cfg := &tokensConfig{}
	cfg.addFlags(fs)
	fs.StringVarP(&cfg.format, FlagFormat, FlagFormatShort, FlagDefaultFormat, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, errors.New(ErrMsgTooManyArgs)
	}

	if cfg.format != OutputFormatText && cfg.format != OutputFormatJSON {
		return nil, errors.New(ErrMsgInvalidFormat)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadDocument builds a parser and loads the selected preset. On failure
// the error is reported on stderr and the exit code is returned.
func loadDocument(opts *presetOptions, stderr io.Writer) (*styledstr.Document, int) {
	parser, err := opts.newParser(stderr)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgCreateParserFailed, err)
		return nil, ExitCodeError
	}
	defer parser.Close()

	doc, err := parser.Load(context.Background(), opts.presetRef())
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgLoadPresetFailed, err)
		return nil, exitCodeFor(err)
	}
	return doc, ExitCodeSuccess
}
