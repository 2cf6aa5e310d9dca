// datamodels.go
package datamodels

import (
	"github.com/arc-language/datamodels/pkg/model"
)

// Re-export model types for convenience
type (
	DataModel    = model.DataModel
	TypeCategory = model.TypeCategory
	// Row is one data model's widths keyed by category.
	Row = model.Row
)

// Re-export data models
const (
	LP32   = model.LP32
	ILP32  = model.ILP32
	LLP64  = model.LLP64
	LP64   = model.LP64
	ILP64  = model.ILP64
	SILP64 = model.SILP64
)

// Re-export type categories
const (
	Char     = model.Char
	Short    = model.Short
	Int      = model.Int
	Long     = model.Long
	LongLong = model.LongLong
	Pointer  = model.Pointer
)

// SizeOf returns the width in bytes of category c under data model m.
// Every pair from the closed sets yields 1, 2, 4 or 8.
func SizeOf(m DataModel, c TypeCategory) int {
	return model.SizeOf(m, c)
}

// BitsOf returns the width in bits of category c under data model m.
func BitsOf(m DataModel, c TypeCategory) int {
	return model.BitsOf(m, c)
}

// Lookup is SizeOf for values that did not come from the exported constants,
// such as integers read from elsewhere. Values outside the closed sets are
// reported as *Error.
func Lookup(m DataModel, c TypeCategory) (int, error) {
	size, err := model.Lookup(m, c)
	if err != nil {
		return 0, &Error{Op: "lookup", Input: m.String() + "/" + c.String(), Err: err}
	}
	return size, nil
}

// Guess returns the data model with the given int, long and pointer widths in
// bytes.
func Guess(intSize, longSize, ptrSize int) (DataModel, error) {
	m, err := model.Guess(intSize, longSize, ptrSize)
	if err != nil {
		return m, &Error{Op: "guess", Err: err}
	}
	return m, nil
}

// Parse resolves a data model from its name or int/long/pointer notation.
func Parse(s string) (DataModel, error) {
	m, err := model.ParseDataModel(s)
	if err != nil {
		return m, &Error{Op: "parse model", Err: err}
	}
	return m, nil
}

// ParseCategory resolves a type category from its name or C spelling.
func ParseCategory(s string) (TypeCategory, error) {
	c, err := model.ParseTypeCategory(s)
	if err != nil {
		return c, &Error{Op: "parse category", Err: err}
	}
	return c, nil
}

// Models returns every data model in declaration order.
func Models() []DataModel {
	return model.Models()
}

// Categories returns every type category in declaration order.
func Categories() []TypeCategory {
	return model.Categories()
}

// Table returns a snapshot of the full size table in bytes.
func Table() []Row {
	return model.Table()
}
