package styledstr

import "time"

// Configuration defaults
const (
	// DefaultPresetName is used when no default preset is configured.
	DefaultPresetName = "default"
)

// Environment variables read by LoadConfigFromEnv
const (
	EnvResourcePath  = "STYLEDSTR_RESPATH"
	EnvDefaultPreset = "STYLEDSTR_PRESET"
)

// Config file extensions accepted by LoadConfigFile
const (
	ConfigExtTOML  = ".toml"
	ConfigExtYAML  = ".yaml"
	ConfigExtYML   = ".yml"
	ConfigExtJSON  = ".json"
	ConfigExtJSONC = ".jsonc"
)

// Source driver names
const (
	SourceDriverNameFilesystem = "filesystem"
	SourceDriverNamePostgres   = "postgres"
)

// PostgreSQL source defaults
const (
	PostgresTablePrefix            = "styledstr_"
	PostgresDefaultMaxOpenConns    = 10
	PostgresDefaultMaxIdleConns    = 2
	PostgresDefaultConnMaxLifetime = 5 * time.Minute
	PostgresDefaultConnMaxIdleTime = 5 * time.Minute
	PostgresDefaultQueryTimeout    = 10 * time.Second
)

// Error kinds, stored under MetaKeyKind
const (
	ErrKindResourcePath = "resource_path"
	ErrKindPresetFile   = "preset_file"
	ErrKindToken        = "token"
)

// Error code constants for categorization
const (
	ErrCodeResourcePath = "STYLEDSTR_RESOURCE_PATH"
	ErrCodePresetFile   = "STYLEDSTR_PRESET_FILE"
	ErrCodeToken        = "STYLEDSTR_TOKEN"
	ErrCodeConfig       = "STYLEDSTR_CONFIG"
)

// Error messages - ALL error messages must be constants
const (
	ErrMsgResourcePathUnset   = "resource path is not set, cannot search presets by name"
	ErrMsgResourcePathNotDir  = "resource path is not a directory"
	ErrMsgPresetNotFound      = "Cannot find any valid file for the indicated preset."
	ErrMsgPresetReadFailed    = "failed to read preset file"
	ErrMsgPresetDecodeFailed  = "failed to decode preset file"
	ErrMsgConfigReadFailed    = "failed to read config file"
	ErrMsgConfigDecodeFailed  = "failed to decode config file"
	ErrMsgConfigUnknownFormat = "unsupported config file format"
	ErrMsgEnvFileLoadFailed   = "failed to load env file"
	ErrMsgEmptyDefaultPreset  = "default preset cannot be blank"
)

// Error message formats. They reproduce the wording hosts already grep for.
const (
	ErrFmtPresetNotFound    = "Cannot find any valid file for preset %q from the resource path %s."
	ErrFmtPresetFileMissing = "Preset file %s does not exist."
	ErrFmtTokenInvalid      = "Token %q is regarded as invalid or nonexistent and skipped parsing."
	ErrFmtTokenValue        = "The value of the token %q is not a numeric, boolean, string or list."
	ErrFmtTokenEmptyList    = "The value of the token %q is an empty list."
)

// Source error messages
const (
	ErrMsgNilSourceDriver          = "source driver is nil"
	ErrMsgSourceDriverRegistered   = "source driver already registered"
	ErrMsgSourceDriverNotFound     = "source driver not found"
	ErrMsgSourceClosed             = "source is closed"
	ErrMsgInvalidPresetFilename    = "preset filename must end in .json, .yaml or .yml"
	ErrMsgPostgresEmptyConnString  = "PostgreSQL connection string is empty"
	ErrMsgPostgresConnectionFailed = "failed to connect to PostgreSQL"
	ErrMsgPostgresQueryFailed      = "PostgreSQL query failed"
	ErrMsgPostgresMigrationFailed  = "PostgreSQL migration failed"
	ErrMsgPostgresAlreadyClosed    = "PostgreSQL source is already closed"
)

// Metadata keys for cuserr.WithMetadata
const (
	MetaKeyKind     = "kind"
	MetaKeyPreset   = "preset"
	MetaKeyPath     = "path"
	MetaKeyToken    = "token"
	MetaKeyReason   = "reason"
	MetaKeyNodeKind = "node_kind"
)

// Log messages
const (
	LogMsgParserCreated       = "parser created"
	LogMsgPresetLoaded        = "preset file loaded"
	LogMsgTokenParsed         = "token parsed as expected"
	LogMsgParseFailed         = "token parsing failed"
	LogMsgPlaceholdersSkipped = "the following placeholders are regarded as invalid or nonexistent and skipped replacing"
	LogMsgSourceClosed        = "preset source closed"
)

// Log field names
const (
	LogFieldResourcePath = "resource_path"
	LogFieldPreset       = "preset"
	LogFieldDefault      = "default_preset"
	LogFieldFile         = "file"
	LogFieldLocation     = "location"
	LogFieldToken        = "token"
	LogFieldPlaceholders = "placeholders"
)
