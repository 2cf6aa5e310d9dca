package model

import "errors"

var (
	// ErrUnknownModel indicates a value outside the closed set of data models
	ErrUnknownModel = errors.New("unknown data model")

	// ErrUnknownCategory indicates a value outside the closed set of type categories
	ErrUnknownCategory = errors.New("unknown type category")

	// ErrNoMatchingModel indicates no data model has the requested widths
	ErrNoMatchingModel = errors.New("no matching data model")
)
