// errors.go
package datamodels

import (
	"fmt"

	"github.com/arc-language/datamodels/pkg/model"
)

var (
	// ErrUnknownModel indicates a value outside the closed set of data models
	ErrUnknownModel = model.ErrUnknownModel

	// ErrUnknownCategory indicates a value outside the closed set of type categories
	ErrUnknownCategory = model.ErrUnknownCategory

	// ErrNoMatchingModel indicates no data model has the requested widths
	ErrNoMatchingModel = model.ErrNoMatchingModel
)

// Error wraps an error with additional context
type Error struct {
	Op    string // Operation that failed
	Input string // Offending input if applicable
	Err   error  // Underlying error
}

func (e *Error) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Input, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
