package styledstr

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/itsatony/go-cuserr"

	"github.com/itsatony/go-styledstr/internal"
)

// NewResourcePathError creates an error for a name lookup without a
// configured resource directory.
func NewResourcePathError(preset string) error {
	return cuserr.NewValidationError(ErrCodeResourcePath, ErrMsgResourcePathUnset).
		WithMetadata(MetaKeyKind, ErrKindResourcePath).
		WithMetadata(MetaKeyPreset, preset)
}

// NewPresetNotFoundError creates an error for a preset name with no matching
// file in location. Location is reported verbatim.
func NewPresetNotFoundError(preset, location string) error {
	msg := ErrMsgPresetNotFound
	if preset != "" && location != "" {
		msg = fmt.Sprintf(ErrFmtPresetNotFound, preset, location)
	}
	return cuserr.NewNotFoundError(MetaKeyPreset, msg).
		WithMetadata(MetaKeyKind, ErrKindPresetFile).
		WithMetadata(MetaKeyPreset, preset).
		WithMetadata(MetaKeyPath, location)
}

// NewPresetFileMissingError creates an error for a file preset that does not
// exist. Path is reported verbatim.
func NewPresetFileMissingError(path string) error {
	return cuserr.NewNotFoundError(MetaKeyPath, fmt.Sprintf(ErrFmtPresetFileMissing, path)).
		WithMetadata(MetaKeyKind, ErrKindPresetFile).
		WithMetadata(MetaKeyPath, path)
}

// NewPresetReadError wraps an I/O failure while reading a preset or listing
// its directory.
func NewPresetReadError(path string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodePresetFile, ErrMsgPresetReadFailed).
		WithMetadata(MetaKeyKind, ErrKindPresetFile).
		WithMetadata(MetaKeyPath, path)
}

// NewPresetDecodeError wraps a YAML/JSON syntax error in a preset file.
func NewPresetDecodeError(path string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodePresetFile, ErrMsgPresetDecodeFailed).
		WithMetadata(MetaKeyKind, ErrKindPresetFile).
		WithMetadata(MetaKeyPath, path)
}

// NewTokenError creates an error for a token absent from the preset.
func NewTokenError(token string) error {
	return cuserr.NewNotFoundError(MetaKeyToken, fmt.Sprintf(ErrFmtTokenInvalid, token)).
		WithMetadata(MetaKeyKind, ErrKindToken).
		WithMetadata(MetaKeyToken, token)
}

// NewTokenValueError creates an error for a token whose value is not a
// scalar or a non-empty list of scalars.
func NewTokenValueError(token string, reason string, nodeKind string) error {
	format := ErrFmtTokenValue
	if reason == internal.ReasonEmptyList {
		format = ErrFmtTokenEmptyList
	}
	return cuserr.NewValidationError(ErrCodeToken, fmt.Sprintf(format, token)).
		WithMetadata(MetaKeyKind, ErrKindToken).
		WithMetadata(MetaKeyToken, token).
		WithMetadata(MetaKeyReason, reason).
		WithMetadata(MetaKeyNodeKind, nodeKind)
}

// NewConfigError creates a configuration error.
func NewConfigError(msg string, path string, cause error) error {
	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, ErrCodeConfig, msg)
	} else {
		err = cuserr.NewValidationError(ErrCodeConfig, msg)
	}
	return err.WithMetadata(MetaKeyPath, path)
}

// fromTokenError converts the walker's error into the public taxonomy.
func fromTokenError(err error) error {
	var tokenErr *internal.TokenError
	if !errors.As(err, &tokenErr) {
		return err
	}
	if tokenErr.Reason == internal.ReasonTokenNotFound {
		return NewTokenError(tokenErr.Token)
	}
	return NewTokenValueError(tokenErr.Token, tokenErr.Reason, tokenErr.Kind.String())
}

// IsResourcePathError reports whether err is a missing resource path error.
func IsResourcePathError(err error) bool {
	return errorKind(err) == ErrKindResourcePath
}

// IsPresetFileError reports whether err means the preset file could not be
// found, read or decoded.
func IsPresetFileError(err error) bool {
	return errorKind(err) == ErrKindPresetFile
}

// IsTokenError reports whether err is a token resolution failure.
func IsTokenError(err error) bool {
	return errorKind(err) == ErrKindToken
}

func errorKind(err error) string {
	var customErr *cuserr.CustomError
	if !errors.As(err, &customErr) {
		return ""
	}
	kind, _ := customErr.GetMetadata(MetaKeyKind)
	return kind
}

// SourceError represents a preset source failure outside the three
// resolution error kinds (driver lookup, database, closed source).
type SourceError struct {
	Message  string
	Driver   string
	Filename string
	Cause    error
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	msg := e.Message
	if e.Driver != "" {
		msg += ": " + e.Driver
	}
	if e.Filename != "" {
		msg += ": " + strconv.Quote(e.Filename)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *SourceError) Unwrap() error {
	return e.Cause
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
