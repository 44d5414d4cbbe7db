package inventory

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of a load failure
type ErrorType int

const (
	// ErrTypeSourceNotFound indicates the inventory path does not exist
	ErrTypeSourceNotFound ErrorType = iota
	// ErrTypeSourceUnreadable indicates any other I/O or parse failure
	ErrTypeSourceUnreadable
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeSourceNotFound:
		return "Source Not Found"
	case ErrTypeSourceUnreadable:
		return "Source Unreadable"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// LoadError is returned by Load. Both types are fatal to the caller.
type LoadError struct {
	Type ErrorType // Category of error
	Path string    // Inventory path as given
	Err  error     // Underlying error
}

// Error implements the error interface
func (e *LoadError) Error() string {
	switch e.Type {
	case ErrTypeSourceNotFound:
		return fmt.Sprintf("inventory file '%s' not found", e.Path)
	default:
		if e.Err != nil {
			return fmt.Sprintf("failed to load inventory '%s': %v", e.Path, e.Err)
		}
		return fmt.Sprintf("failed to load inventory '%s'", e.Path)
	}
}

// Unwrap returns the underlying error for error chain inspection
func (e *LoadError) Unwrap() error {
	return e.Err
}

// IsSourceNotFound reports whether err is a LoadError of type ErrTypeSourceNotFound.
func IsSourceNotFound(err error) bool {
	var loadErr *LoadError
	return errors.As(err, &loadErr) && loadErr.Type == ErrTypeSourceNotFound
}

// IsSourceUnreadable reports whether err is a LoadError of type ErrTypeSourceUnreadable.
func IsSourceUnreadable(err error) bool {
	var loadErr *LoadError
	return errors.As(err, &loadErr) && loadErr.Type == ErrTypeSourceUnreadable
}
