package model

import "fmt"

// sizes holds byte widths indexed by model then category. Rows and columns
// for the Invalid zero values stay 0.
var sizes = [numModels][numCategories]uint8{
	//      -  Char Short Int Long LongLong Pointer
	LP32:   {0, 1, 2, 2, 4, 8, 4},
	ILP32:  {0, 1, 2, 4, 4, 8, 4},
	LLP64:  {0, 1, 2, 4, 4, 8, 8},
	LP64:   {0, 1, 2, 4, 8, 8, 8},
	ILP64:  {0, 1, 2, 8, 8, 8, 8},
	SILP64: {0, 1, 8, 8, 8, 8, 8},
}

// SizeOf returns the width in bytes of category c under model m. It is 1, 2,
// 4 or 8 for every member of the closed sets and 0 for anything else.
func SizeOf(m DataModel, c TypeCategory) int {
	if m >= numModels || c >= numCategories {
		return 0
	}
	return int(sizes[m][c])
}

// BitsOf returns the width in bits of category c under model m.
func BitsOf(m DataModel, c TypeCategory) int {
	return SizeOf(m, c) * 8
}

// Lookup is SizeOf with the inputs checked against the closed sets.
func Lookup(m DataModel, c TypeCategory) (int, error) {
	if !m.Valid() {
		return 0, fmt.Errorf("%w: %s", ErrUnknownModel, m)
	}
	if !c.Valid() {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCategory, c)
	}
	return SizeOf(m, c), nil
}

// SizeOf returns the width in bytes of c under m.
func (m DataModel) SizeOf(c TypeCategory) int {
	return SizeOf(m, c)
}

// BitsOf returns the width in bits of c under m.
func (m DataModel) BitsOf(c TypeCategory) int {
	return BitsOf(m, c)
}

// Guess picks the data model whose int, long and pointer widths (in bytes)
// match the arguments. SILP64 shares ILP64's triple and is never returned.
func Guess(intSize, longSize, ptrSize int) (DataModel, error) {
	switch [3]int{intSize, longSize, ptrSize} {
	case [3]int{2, 4, 4}:
		return LP32, nil
	case [3]int{4, 4, 4}:
		return ILP32, nil
	case [3]int{4, 4, 8}:
		return LLP64, nil
	case [3]int{4, 8, 8}:
		return LP64, nil
	case [3]int{8, 8, 8}:
		return ILP64, nil
	}
	return Invalid, fmt.Errorf("%w: %d/%d/%d", ErrNoMatchingModel, intSize, longSize, ptrSize)
}

// Row is one data model's widths keyed by category.
type Row struct {
	Model DataModel
	Sizes map[TypeCategory]int
}

// Table returns a fresh snapshot of the full table in bytes, one row per
// model in declaration order.
func Table() []Row {
	models := Models()
	rows := make([]Row, 0, len(models))
	for _, m := range models {
		row := Row{Model: m, Sizes: make(map[TypeCategory]int, numCategories-1)}
		for _, c := range Categories() {
			row.Sizes[c] = SizeOf(m, c)
		}
		rows = append(rows, row)
	}
	return rows
}
