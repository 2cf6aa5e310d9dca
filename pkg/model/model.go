package model

import (
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// DataModel is a named convention for the widths of C's integer types and
// pointers on a platform or ABI.
//
// The names encode which types are wide; ILP32 means (I)nt, (L)ong and
// (P)ointer are 32 bits. The scheme is not fully consistent across models.
type DataModel uint8

const (
	// Invalid is the zero value and is not part of the closed set.
	Invalid DataModel = iota
	// LP32 has a 16-bit int and 32-bit long and pointer (m68k Mac, Win16).
	LP32
	// ILP32 has 32-bit int, long and pointer (Win32, Unix before the mid-1990s).
	ILP32
	// LLP64 has 32-bit int and long and a 64-bit pointer (Win64).
	LLP64
	// LP64 has a 32-bit int and 64-bit long and pointer (Unix, Linux, macOS).
	LP64
	// ILP64 has 64-bit int, long and pointer (HAL/Fujitsu SPARC64).
	ILP64
	// SILP64 widens short to 64 bits as well (UNICOS on Cray).
	SILP64

	numModels
)

var modelNames = [numModels]string{
	Invalid: "Invalid",
	LP32:    "LP32",
	ILP32:   "ILP32",
	LLP64:   "LLP64",
	LP64:    "LP64",
	ILP64:   "ILP64",
	SILP64:  "SILP64",
}

var modelDescriptions = [numModels]string{
	LP32:   "16-bit int, 32-bit long and pointer",
	ILP32:  "32-bit int, long and pointer",
	LLP64:  "32-bit int and long, 64-bit pointer",
	LP64:   "32-bit int, 64-bit long and pointer",
	ILP64:  "64-bit int, long and pointer",
	SILP64: "64-bit short, int, long and pointer",
}

var modelPlatforms = [numModels][]string{
	LP32:   {"m68k Mac", "Win16 API"},
	ILP32:  {"Win32 API", "Unix before mid-1990s"},
	LLP64:  {"Win64 API"},
	LP64:   {"Unix", "Linux", "macOS"},
	ILP64:  {"HAL/Fujitsu SPARC64"},
	SILP64: {"UNICOS (Cray)"},
}

// Models returns every data model in declaration order.
func Models() []DataModel {
	out := make([]DataModel, 0, numModels-1)
	for m := LP32; m < numModels; m++ {
		out = append(out, m)
	}
	return out
}

// Valid reports whether m is a member of the closed set.
func (m DataModel) Valid() bool {
	return m > Invalid && m < numModels
}

func (m DataModel) String() string {
	if m < numModels {
		return modelNames[m]
	}
	return fmt.Sprintf("DataModel(%d)", uint8(m))
}

// Description is a one-line summary of the model's widths.
func (m DataModel) Description() string {
	if !m.Valid() {
		return ""
	}
	return modelDescriptions[m]
}

// Platforms lists the platforms and APIs historically built on m.
func (m DataModel) Platforms() []string {
	if !m.Valid() {
		return nil
	}
	return append([]string(nil), modelPlatforms[m]...)
}

// Notation renders the int/long/pointer byte widths, e.g. "4/8/8" for LP64.
func (m DataModel) Notation() string {
	if !m.Valid() {
		return ""
	}
	return fmt.Sprintf("%d/%d/%d", m.SizeOf(Int), m.SizeOf(Long), m.SizeOf(Pointer))
}

// ParseDataModel resolves a model by name ("lp64") or by its int/long/pointer
// notation ("4/8/8"). Name matching ignores case.
func ParseDataModel(s string) (DataModel, error) {
	name := strings.TrimSpace(s)
	for m := LP32; m < numModels; m++ {
		if strings.EqualFold(name, modelNames[m]) {
			return m, nil
		}
	}

	if parts := strings.Split(name, "/"); len(parts) == 3 {
		var sizes [3]int
		for i, p := range parts {
			n, err := parseWidth(p)
			if err != nil {
				return Invalid, fmt.Errorf("%w: %q: %v", ErrUnknownModel, s, err)
			}
			sizes[i] = n
		}
		m, err := Guess(sizes[0], sizes[1], sizes[2])
		if err != nil {
			return Invalid, fmt.Errorf("%w: %q", ErrUnknownModel, s)
		}
		return m, nil
	}

	return Invalid, fmt.Errorf("%w: %q", ErrUnknownModel, s)
}

// parseWidth reads one byte width of the int/long/pointer notation.
func parseWidth(s string) (int, error) {
	u, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, err
	}
	return safecast.Conv[int](u)
}
