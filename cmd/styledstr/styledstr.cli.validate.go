package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// validateConfig holds parsed validate command configuration
type validateConfig struct {
	presetOptions
	format string
}

// validationOutput represents JSON output for validation
type validationOutput struct {
	Valid    bool                    `json:"valid"`
	File     string                  `json:"file"`
	Location string                  `json:"location"`
	Tokens   int                     `json:"tokens"`
	Issues   []validationIssueOutput `json:"issues,omitempty"`
}

type validationIssueOutput struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

func runValidate(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseValidateFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFormat, err)
		return ExitCodeUsageError
	}

	doc, code := loadDocument(&cfg.presetOptions, stderr)
	if doc == nil {
		return code
	}

	tokens := doc.Tokens()
	output := validationOutput{
		File:     doc.Filename,
		Location: doc.Location,
		Tokens:   len(tokens),
	}
	for _, token := range tokens {
		if err := doc.Check(token); err != nil {
			output.Issues = append(output.Issues, validationIssueOutput{
				Token:   token,
				Message: err.Error(),
			})
		}
	}
	output.Valid = len(output.Issues) == 0

	if cfg.format == OutputFormatJSON {
		return outputValidationJSON(output, stdout)
	}
	return outputValidationText(output, stdout)
}

func parseValidateFlags(args []string) (*validateConfig, error) {
	fs := newFlagSet(CmdNameValidate)

	cfg := &validateConfig{}
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

func outputValidationText(output validationOutput, stdout io.Writer) int {
	if output.Valid {
		fmt.Fprintf(stdout, ValidationTextSuccess+FmtNewline, output.File, output.Tokens)
		return ExitCodeSuccess
	}

	fmt.Fprintf(stdout, ValidationTextHeader+FmtNewline, output.File)
	for _, issue := range output.Issues {
		fmt.Fprintf(stdout, ValidationTextIssue+FmtNewline, issue.Token, issue.Message)
	}
	fmt.Fprintf(stdout, ValidationTextSummary+FmtNewline, len(output.Issues), output.Tokens)

	return ExitCodeValidationError
}

func outputValidationJSON(output validationOutput, stdout io.Writer) int {
	jsonBytes, _ := json.MarshalIndent(output, "", "  ")
	fmt.Fprintln(stdout, string(jsonBytes))

	if !output.Valid {
		return ExitCodeValidationError
	}
	return ExitCodeSuccess
}
