package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeOfKnownWidths(t *testing.T) {
	tests := []struct {
		model    DataModel
		category TypeCategory
		want     int
	}{
		{LP64, Pointer, 8},
		{LP64, Int, 4},
		{LP64, Long, 8},
		{ILP32, Pointer, 4},
		{ILP32, Long, 4},
		{LLP64, Long, 4},
		{LLP64, Pointer, 8},
		{LP32, Int, 2},
		{LP32, Pointer, 4},
		{ILP64, Int, 8},
		{SILP64, Short, 8},
	}

	for _, tt := range tests {
		t.Run(tt.model.String()+"/"+tt.category.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, SizeOf(tt.model, tt.category))
			assert.Equal(t, tt.want, tt.model.SizeOf(tt.category))
			assert.Equal(t, tt.want*8, BitsOf(tt.model, tt.category))
			assert.Equal(t, tt.want*8, tt.model.BitsOf(tt.category))
		})
	}
}

func TestSizeOfCoreModels(t *testing.T) {
	want := map[DataModel][]int{
		//     Char Short Int Long LongLong Pointer
		LP32:  {1, 2, 2, 4, 8, 4},
		ILP32: {1, 2, 4, 4, 8, 4},
		LLP64: {1, 2, 4, 4, 8, 8},
		LP64:  {1, 2, 4, 8, 8, 8},
	}

	for m, row := range want {
		for i, c := range Categories() {
			assert.Equal(t, row[i], SizeOf(m, c), "%s %s", m, c)
		}
	}
}

func TestTableIsTotal(t *testing.T) {
	require.Len(t, Models(), 6)
	require.Len(t, Categories(), 6)

	for _, m := range Models() {
		for _, c := range Categories() {
			size, err := Lookup(m, c)
			require.NoError(t, err)
			assert.Contains(t, []int{1, 2, 4, 8}, size, "%s %s", m, c)
			assert.GreaterOrEqual(t, size*8, c.MinBits(), "%s %s below C minimum", m, c)
		}
	}
}

func TestTableIsMonotone(t *testing.T) {
	ordered := []TypeCategory{Char, Short, Int, Long, LongLong}
	for _, m := range Models() {
		for i := 1; i < len(ordered); i++ {
			prev, cur := ordered[i-1], ordered[i]
			assert.LessOrEqual(t, SizeOf(m, prev), SizeOf(m, cur), "%s: %s wider than %s", m, prev, cur)
		}
	}
}

func TestSizeOfIsDeterministic(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, m := range Models() {
				for _, c := range Categories() {
					first := SizeOf(m, c)
					assert.Equal(t, first, SizeOf(m, c))
				}
			}
		}()
	}
	wg.Wait()
}

func TestSizeOfOutsideClosedSet(t *testing.T) {
	assert.Zero(t, SizeOf(Invalid, Int))
	assert.Zero(t, SizeOf(LP64, InvalidCategory))
	assert.Zero(t, SizeOf(DataModel(200), Int))
	assert.Zero(t, SizeOf(LP64, TypeCategory(200)))

	_, err := Lookup(DataModel(200), Int)
	assert.ErrorIs(t, err, ErrUnknownModel)

	_, err = Lookup(Invalid, Int)
	assert.ErrorIs(t, err, ErrUnknownModel)

	_, err = Lookup(LP64, TypeCategory(42))
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestGuess(t *testing.T) {
	tests := []struct {
		name              string
		intS, longS, ptrS int
		want              DataModel
	}{
		{"lp32", 2, 4, 4, LP32},
		{"ilp32", 4, 4, 4, ILP32},
		{"llp64", 4, 4, 8, LLP64},
		{"lp64", 4, 8, 8, LP64},
		{"ilp64", 8, 8, 8, ILP64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Guess(tt.intS, tt.longS, tt.ptrS)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.intS, got.SizeOf(Int))
			assert.Equal(t, tt.longS, got.SizeOf(Long))
			assert.Equal(t, tt.ptrS, got.SizeOf(Pointer))
		})
	}
}

func TestGuessNoMatch(t *testing.T) {
	for _, triple := range [][3]int{
		{2, 0, 2}, // IP16
		{2, 4, 2}, // IP16L32
		{8, 4, 8},
		{-4, 8, 8},
		{4, 8, 4096},
	} {
		_, err := Guess(triple[0], triple[1], triple[2])
		assert.ErrorIs(t, err, ErrNoMatchingModel, "%v", triple)
	}
}

func TestTableSnapshot(t *testing.T) {
	rows := Table()
	require.Len(t, rows, len(Models()))

	for i, row := range rows {
		assert.Equal(t, Models()[i], row.Model)
		for _, c := range Categories() {
			assert.Equal(t, SizeOf(row.Model, c), row.Sizes[c])
		}
	}

	rows[0].Sizes[Char] = 99
	assert.Equal(t, 1, Table()[0].Sizes[Char])
}
