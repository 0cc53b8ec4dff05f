package numcode

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrResourceMissing indicates a charset resource file or directory was not found.
	ErrResourceMissing = errors.New("charset resource missing")

	// ErrSchemaInvalid indicates a charset resource is missing its mapping or is malformed.
	ErrSchemaInvalid = errors.New("charset schema invalid")

	// ErrInvalidSymbolKey indicates a key passed to AddKey is not a single symbol.
	ErrInvalidSymbolKey = errors.New("invalid symbol key")

	// ErrUnknownSymbol indicates encode input contains a symbol with no charset mapping.
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrEmptyInput indicates encode was given empty input or input yielding no symbols.
	ErrEmptyInput = errors.New("empty encode input")

	// ErrDecodeFormat indicates decode input is not parseable as a decimal integer.
	ErrDecodeFormat = errors.New("decode format error")

	// ErrTooManyUnresolved indicates decode found more unresolved code chunks
	// than the configured limit allows.
	ErrTooManyUnresolved = errors.New("too many unresolved symbols")

	// ErrBatchSize indicates a batch exceeded the configured maximum size.
	ErrBatchSize = errors.New("invalid batch size")
)

// ResourceError represents a charset resource loading failure.
// It wraps a sentinel error with the resource path and the underlying cause.
type ResourceError struct {
	Err   error  // Underlying sentinel error (ErrResourceMissing, ErrSchemaInvalid)
	Path  string // Resource path that failed, empty for in-memory sources
	Cause error  // Original error from the format or filesystem
}

func (e *ResourceError) Error() string {
	switch {
	case e.Path != "" && e.Cause != nil:
		return fmt.Sprintf("%s: %s: %v", e.Err.Error(), e.Path, e.Cause)
	case e.Path != "":
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Path)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}

// SymbolError represents a failure caused by a single symbol.
type SymbolError struct {
	Err      error  // Underlying sentinel error (ErrUnknownSymbol, ErrInvalidSymbolKey)
	Symbol   string // Symbol that triggered the error
	Position int    // Rune position in the input, -1 when not positional
}

func (e *SymbolError) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("%s %q at position %d", e.Err.Error(), e.Symbol, e.Position)
	}
	return fmt.Sprintf("%s %q", e.Err.Error(), e.Symbol)
}

func (e *SymbolError) Unwrap() error {
	return e.Err
}

// DecodeError represents a decode failure with chunk resolution context.
type DecodeError struct {
	Err        error // Underlying sentinel error (ErrDecodeFormat, ErrTooManyUnresolved)
	Unresolved int   // Number of code chunks with no reverse mapping
	Limit      int   // Configured unresolved limit
	Cause      error // Original parse error, if any
}

func (e *DecodeError) Error() string {
	if errors.Is(e.Err, ErrTooManyUnresolved) {
		return fmt.Sprintf("%s: %d unresolved chunks exceed limit %d", e.Err.Error(), e.Unresolved, e.Limit)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// BatchError represents a whole-batch rejection.
type BatchError struct {
	Err   error // Underlying sentinel error (ErrBatchSize)
	Size  int   // Submitted batch size
	Limit int   // Configured maximum
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("%s: %d items exceed maximum %d", e.Err.Error(), e.Size, e.Limit)
}

func (e *BatchError) Unwrap() error {
	return e.Err
}

// newResourceError creates a ResourceError for loading failures.
func newResourceError(sentinel error, path string, cause error) error {
	return &ResourceError{
		Err:   sentinel,
		Path:  path,
		Cause: cause,
	}
}

// newSymbolError creates a SymbolError for per-symbol failures.
func newSymbolError(sentinel error, symbol string, position int) error {
	return &SymbolError{
		Err:      sentinel,
		Symbol:   symbol,
		Position: position,
	}
}

// newDecodeError creates a DecodeError for decode failures.
func newDecodeError(sentinel error, unresolved, limit int, cause error) error {
	return &DecodeError{
		Err:        sentinel,
		Unresolved: unresolved,
		Limit:      limit,
		Cause:      cause,
	}
}

// newBatchError creates a BatchError for whole-batch rejections.
func newBatchError(size, limit int) error {
	return &BatchError{
		Err:   ErrBatchSize,
		Size:  size,
		Limit: limit,
	}
}
