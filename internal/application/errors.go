package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidDataset    = errors.New("invalid dataset")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// RecordError describes a dataset record that could not be loaded
type RecordError struct {
	Index  int // Position in the source
	ID     string
	Reason string
}

func (e *RecordError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("record %d: %s", e.Index, e.Reason)
	}
	return fmt.Sprintf("record %d (%s): %s", e.Index, e.ID, e.Reason)
}

func (e *RecordError) Is(target error) bool {
	return target == ErrInvalidDataset
}

// FormatError reports a source whose format cannot be read
type FormatError struct {
	Path   string
	Format string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("cannot read %s: unsupported format %q", e.Path, e.Format)
}

func (e *FormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}
