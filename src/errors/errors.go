package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure scenarios
var (
	// Caller contract violations
	ErrChatMissing    = errors.New("prompt context has no chat")
	ErrNilContext     = errors.New("prompt context is nil")
	ErrUnknownVariant = errors.New("unknown template variant")

	// Store errors
	ErrStoreConnection   = errors.New("store connection failed")
	ErrWorldBookNotFound = errors.New("world book not found")
	ErrChatNotFound      = errors.New("chat not found")
	ErrPresetNotFound    = errors.New("preset not found")

	// Injector data errors
	ErrMalformedTransaction = errors.New("malformed transaction payload")
	ErrNoLinkedMemory       = errors.New("no linked memory sources")
)

// StoreError represents a store operation error with context
type StoreError struct {
	Op    string // Operation that failed (e.g., "get", "list", "init")
	Table string // Table involved
	Err   error  // Underlying error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s operation on %s: %v", e.Op, e.Table, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new store error
func NewStoreError(op, table string, err error) error {
	return &StoreError{
		Op:    op,
		Table: table,
		Err:   err,
	}
}

// InjectorError wraps a failure inside a single injector so the manager
// can log which unit degraded without aborting the build.
type InjectorError struct {
	Injector string
	Err      error
}

func (e *InjectorError) Error() string {
	return fmt.Sprintf("injector %s: %v", e.Injector, e.Err)
}

func (e *InjectorError) Unwrap() error {
	return e.Err
}

// IsNotFound checks if error indicates a missing resource
func IsNotFound(err error) bool {
	return errors.Is(err, ErrWorldBookNotFound) ||
		errors.Is(err, ErrChatNotFound) ||
		errors.Is(err, ErrPresetNotFound)
}

// IsContractViolation reports whether the error indicates a caller bug
// rather than a data-quality issue.
func IsContractViolation(err error) bool {
	return errors.Is(err, ErrChatMissing) ||
		errors.Is(err, ErrNilContext) ||
		errors.Is(err, ErrUnknownVariant)
}

// WrapWithContext adds context to an error
func WrapWithContext(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
