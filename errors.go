package hvsampledata

import (
	"errors"
	"fmt"
	"strings"
)

// Error represents a failure detected while resolving or servicing a dataset
// request.
//
// Request errors include:
//   - Unknown dataset: name not in the catalog
//   - Unsupported engine: engine not valid for the dataset
//   - Incompatible options: laziness or options the engine cannot honor
//   - Resource unavailable: bundled asset missing (installation defect)
//   - Download failed: network or storage error while populating the cache
//   - Hash mismatch: downloaded bytes fail SHA-256 verification
//
// Errors raised by the underlying engine libraries are not wrapped in Error;
// they surface unchanged.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Dataset names the affected dataset, when known.
	Dataset string

	// Engine names the requested engine (for engine/option errors).
	Engine EngineID

	// Allowed lists the valid alternatives (for unknown-dataset and
	// unsupported-engine errors).
	Allowed []string

	// Err is the underlying cause, if any.
	Err error
}

// ErrorCode categorizes request errors.
type ErrorCode string

const (
	// ErrCodeUnknownDataset indicates the name is not in the catalog.
	ErrCodeUnknownDataset ErrorCode = "UNKNOWN_DATASET"

	// ErrCodeUnsupportedEngine indicates the engine is not valid for the dataset.
	ErrCodeUnsupportedEngine ErrorCode = "UNSUPPORTED_ENGINE"

	// ErrCodeIncompatibleOptions indicates options the resolved engine cannot
	// honor (for example lazy=true on an eager-only engine).
	ErrCodeIncompatibleOptions ErrorCode = "INCOMPATIBLE_OPTIONS"

	// ErrCodeResourceUnavailable indicates a bundled asset is missing or
	// unreadable. This is an installation defect, not a transient failure.
	ErrCodeResourceUnavailable ErrorCode = "RESOURCE_UNAVAILABLE"

	// ErrCodeDownloadFailed indicates a network or storage error while
	// populating the cache. Never retried internally.
	ErrCodeDownloadFailed ErrorCode = "DOWNLOAD_FAILED"

	// ErrCodeHashMismatch indicates downloaded bytes failed verification.
	ErrCodeHashMismatch ErrorCode = "HASH_MISMATCH"
)

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", e.Code, e.Message)
	if e.Dataset != "" {
		fmt.Fprintf(&b, " (dataset=%s", e.Dataset)
		if e.Engine != "" {
			fmt.Fprintf(&b, ", engine=%s", e.Engine)
		}
		b.WriteString(")")
	}
	if len(e.Allowed) > 0 {
		fmt.Fprintf(&b, "; valid: %s", strings.Join(e.Allowed, ", "))
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// hasCode reports whether err is (or wraps) an Error with the given code.
func hasCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// IsUnknownDataset reports whether the error is an unknown-dataset error.
// Uses errors.As to handle wrapped errors.
func IsUnknownDataset(err error) bool { return hasCode(err, ErrCodeUnknownDataset) }

// IsUnsupportedEngine reports whether the error is an unsupported-engine error.
func IsUnsupportedEngine(err error) bool { return hasCode(err, ErrCodeUnsupportedEngine) }

// IsIncompatibleOptions reports whether the error is an incompatible-options error.
func IsIncompatibleOptions(err error) bool { return hasCode(err, ErrCodeIncompatibleOptions) }

// IsResourceUnavailable reports whether the error is a missing-asset error.
func IsResourceUnavailable(err error) bool { return hasCode(err, ErrCodeResourceUnavailable) }

// IsDownloadFailed reports whether the error is a download error.
func IsDownloadFailed(err error) bool { return hasCode(err, ErrCodeDownloadFailed) }

// IsHashMismatch reports whether the error is a hash-verification error.
func IsHashMismatch(err error) bool { return hasCode(err, ErrCodeHashMismatch) }

// newUnknownDataset creates an Error for a name not in the catalog.
func newUnknownDataset(name string, known []string) *Error {
	return &Error{
		Code:    ErrCodeUnknownDataset,
		Message: fmt.Sprintf("unknown dataset %q", name),
		Dataset: name,
		Allowed: known,
	}
}

// newUnsupportedEngine creates an Error for an engine outside the dataset's
// supported set.
func newUnsupportedEngine(dataset string, engine string, allowed []EngineID) *Error {
	names := make([]string, len(allowed))
	for i, id := range allowed {
		names[i] = string(id)
	}
	return &Error{
		Code:    ErrCodeUnsupportedEngine,
		Message: fmt.Sprintf("engine %q is not supported", engine),
		Dataset: dataset,
		Engine:  EngineID(engine),
		Allowed: names,
	}
}

// newIncompatibleOptions creates an Error for an option combination the
// resolved engine cannot honor.
func newIncompatibleOptions(dataset string, engine EngineID, message string) *Error {
	return &Error{
		Code:    ErrCodeIncompatibleOptions,
		Message: message,
		Dataset: dataset,
		Engine:  engine,
	}
}

// newResourceUnavailable creates an Error for a missing or unreadable bundled
// asset.
func newResourceUnavailable(dataset string, err error) *Error {
	return &Error{
		Code:    ErrCodeResourceUnavailable,
		Message: "bundled asset missing or unreadable",
		Dataset: dataset,
		Err:     err,
	}
}

// newDownloadFailed creates an Error for a failed cache population.
func newDownloadFailed(dataset, url string, err error) *Error {
	return &Error{
		Code:    ErrCodeDownloadFailed,
		Message: fmt.Sprintf("download of %s failed", url),
		Dataset: dataset,
		Err:     err,
	}
}

// newHashMismatch creates an Error for a failed SHA-256 verification.
func newHashMismatch(dataset, url, want, got string) *Error {
	return &Error{
		Code:    ErrCodeHashMismatch,
		Message: fmt.Sprintf("hash mismatch for %s: expected %s, got %s; file may be corrupted", url, want, got),
		Dataset: dataset,
	}
}
