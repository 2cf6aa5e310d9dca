package model

import (
	"fmt"
	"strings"
)

// TypeCategory is one of the C type classes whose width depends on the data
// model.
type TypeCategory uint8

const (
	// InvalidCategory is the zero value and is not part of the closed set.
	InvalidCategory TypeCategory = iota
	// Char is the smallest addressable unit, CHAR_BIT bits wide.
	Char
	// Short is at least 16 bits.
	Short
	// Int is at least 16 bits.
	Int
	// Long is at least 32 bits.
	Long
	// LongLong is at least 64 bits.
	LongLong
	// Pointer covers data pointers and size_t; at least 16 bits.
	Pointer

	numCategories
)

var categoryNames = [numCategories]string{
	InvalidCategory: "Invalid",
	Char:            "Char",
	Short:           "Short",
	Int:             "Int",
	Long:            "Long",
	LongLong:        "LongLong",
	Pointer:         "Pointer",
}

var categoryCNames = [numCategories]string{
	Char:     "char",
	Short:    "short",
	Int:      "int",
	Long:     "long",
	LongLong: "long long",
	Pointer:  "void*",
}

var categoryMinBits = [numCategories]int{
	Char:     8,
	Short:    16,
	Int:      16,
	Long:     32,
	LongLong: 64,
	Pointer:  16,
}

// aliases maps spellings left over after normalizeCType to categories.
var aliases = map[string]TypeCategory{
	"ptr":    Pointer,
	"char*":  Pointer,
	"void*":  Pointer,
	"size_t": Pointer,
}

// Categories returns every type category in declaration order, which is also
// the order of non-decreasing width.
func Categories() []TypeCategory {
	out := make([]TypeCategory, 0, numCategories-1)
	for c := Char; c < numCategories; c++ {
		out = append(out, c)
	}
	return out
}

// Valid reports whether c is a member of the closed set.
func (c TypeCategory) Valid() bool {
	return c > InvalidCategory && c < numCategories
}

func (c TypeCategory) String() string {
	if c < numCategories {
		return categoryNames[c]
	}
	return fmt.Sprintf("TypeCategory(%d)", uint8(c))
}

// CName is the C spelling of the category.
func (c TypeCategory) CName() string {
	if !c.Valid() {
		return ""
	}
	return categoryCNames[c]
}

// MinBits is the minimum width the C standard allows for the category.
func (c TypeCategory) MinBits() int {
	if !c.Valid() {
		return 0
	}
	return categoryMinBits[c]
}

// ParseTypeCategory resolves a category from its Go name ("LongLong") or a C
// spelling ("long long", "unsigned long int", "void *").
func ParseTypeCategory(s string) (TypeCategory, error) {
	key := normalizeCType(s)

	for c := Char; c < numCategories; c++ {
		if key == strings.ToLower(categoryNames[c]) || key == categoryCNames[c] {
			return c, nil
		}
	}
	if c, ok := aliases[key]; ok {
		return c, nil
	}
	return InvalidCategory, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// normalizeCType lower-cases s, collapses whitespace, drops the signedness
// prefix and the int that may follow short, long and long long. A bare
// "signed" or "unsigned" is int.
func normalizeCType(s string) string {
	key := strings.ToLower(strings.Join(strings.Fields(s), " "))
	key = strings.ReplaceAll(key, " *", "*")

	for _, prefix := range []string{"signed", "unsigned"} {
		if key == prefix {
			return "int"
		}
		if rest, ok := strings.CutPrefix(key, prefix+" "); ok {
			key = rest
			break
		}
	}

	switch key {
	case "short int", "long int", "long long int":
		key = strings.TrimSuffix(key, " int")
	}
	return key
}
