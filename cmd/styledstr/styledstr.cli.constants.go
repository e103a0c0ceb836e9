package main

// Command names
const (
	CmdNameParse    = "parse"
	CmdNameTokens   = "tokens"
	CmdNameValidate = "validate"
	CmdNameVersion  = "version"
	CmdNameHelp     = "help"
)

// Flag names - long form
const (
	FlagPreset   = "preset"
	FlagFile     = "file"
	FlagRespath  = "respath"
	FlagSet      = "set"
	FlagVars     = "vars"
	FlagConfig   = "config"
	FlagEnvFile  = "env-file"
	FlagLogLevel = "log-level"
	FlagStrict   = "strict"
	FlagFormat   = "format"
)

// Flag names - short form
const (
	FlagPresetShort  = "p"
	FlagRespathShort = "r"
	FlagSetShort     = "s"
	FlagConfigShort  = "c"
	FlagFormatShort  = "F"
)

// Flag default values
const (
	FlagDefaultLogLevel = "warn"
	FlagDefaultFormat   = "text"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Exit codes
const (
	ExitCodeSuccess         = 0
	ExitCodeError           = 1
	ExitCodeUsageError      = 2
	ExitCodeValidationError = 3
	ExitCodeInputError      = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Separator between placeholder name and value in --set
const (
	SetSeparator = "="
)

// Error messages - ALL must be constants
const (
	ErrMsgUnknownCommand     = "unknown command"
	ErrMsgMissingToken       = "token argument required"
	ErrMsgTooManyArgs        = "too many arguments"
	ErrMsgInvalidSet         = "invalid --set value, expected name=value"
	ErrMsgPresetConflict     = "--preset and --file are mutually exclusive"
	ErrMsgInvalidFormat      = "invalid output format"
	ErrMsgInvalidLogLevel    = "invalid log level"
	ErrMsgReadFileFailed     = "failed to read file"
	ErrMsgInvalidVars        = "invalid placeholder values"
	ErrMsgConfigFailed       = "failed to load configuration"
	ErrMsgCreateParserFailed = "failed to create parser"
	ErrMsgParseFailed        = "token parsing failed"
	ErrMsgLoadPresetFailed   = "failed to load preset"
)

// Help text templates
const (
	HelpMainUsage = `go-styledstr - Localized string lookup CLI

Usage:
    styledstr <command> [options]

Commands:
    parse       Resolve a token and fill its placeholders
    tokens      List the tokens of a preset
    validate    Check that every token of a preset resolves
    version     Show version information
    help        Show help for a command

Use "styledstr help <command>" for more information about a command.`

	HelpParseUsage = `Resolve a token and fill its placeholders

Usage:
    styledstr parse <token> [options]

Options:
    -p, --preset <name|path>   Preset name or file (default: configured default preset)
        --file <path>          Preset file used as-is, ignoring the resource path
    -r, --respath <dir>        Resource directory searched for named presets
    -s, --set <name=value>     Placeholder value (repeatable)
        --vars <file>          JSON or YAML file of placeholder values (use "-" for stdin)
    -c, --config <file>        Config file (.toml, .yaml, .yml, .json)
        --env-file <file>      Dotenv file read before the environment (repeatable)
        --log-level <level>    debug, info, warn, error (default: warn)
        --strict               Exit non-zero when the token cannot be resolved

Environment:
    STYLEDSTR_RESPATH          Resource directory
    STYLEDSTR_PRESET           Default preset

Examples:
    styledstr parse greeting.morning -r ./strings -p en -s name=Ada
    styledstr parse farewell --file ./strings/de.yaml --strict
    echo '{"name": "Ada"}' | styledstr parse greeting.morning --vars -`

	HelpTokensUsage = `List the tokens of a preset

Usage:
    styledstr tokens [options]

Options:
    -p, --preset <name|path>   Preset name or file (default: configured default preset)
        --file <path>          Preset file used as-is, ignoring the resource path
    -r, --respath <dir>        Resource directory searched for named presets
    -c, --config <file>        Config file (.toml, .yaml, .yml, .json)
        --env-file <file>      Dotenv file read before the environment (repeatable)
    -F, --format <format>      Output format: text, json (default: text)

Examples:
    styledstr tokens -r ./strings -p en
    styledstr tokens --file ./strings/en.yaml -F json`

	HelpValidateUsage = `Check that every token of a preset resolves

Usage:
    styledstr validate [options]

Options:
    -p, --preset <name|path>   Preset name or file (default: configured default preset)
        --file <path>          Preset file used as-is, ignoring the resource path
    -r, --respath <dir>        Resource directory searched for named presets
    -c, --config <file>        Config file (.toml, .yaml, .yml, .json)
        --env-file <file>      Dotenv file read before the environment (repeatable)
    -F, --format <format>      Output format: text, json (default: text)

Examples:
    styledstr validate -r ./strings -p en
    styledstr validate --file ./strings/en.yaml -F json`

	HelpVersionUsage = `Show version information

Usage:
    styledstr version [options]

Options:
    -F, --format <format>   Output format: text, json (default: text)`

	HelpHelpUsage = `Show help for a command

Usage:
    styledstr help [command]

Commands:
    parse       Show help for parse command
    tokens      Show help for tokens command
    validate    Show help for validate command
    version     Show help for version command`
)

// Version output format templates
const (
	VersionTextTemplate = "go-styledstr version %s\nCommit: %s\nBranch: %s\nBuilt: %s\nGo: %s"
	VersionUnknown      = "unknown"
)

// Validation output format templates
const (
	ValidationTextSuccess = "Preset %s is valid (%d tokens)"
	ValidationTextHeader  = "Preset %s has invalid tokens:"
	ValidationTextIssue   = "  %s: %s"
	ValidationTextSummary = "%d of %d token(s) invalid"
)

// CLI metadata
const (
	CLIName        = "styledstr"
	CLIDescription = "Localized string lookup CLI"
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtErrorWithDetail = "%s: %s\n"
	FmtErrorWithCause  = "%s: %v\n"
	FmtNewline         = "\n"
)
