package compressor

import (
	"fmt"
	"testing"
)

func TestCompressor_Compress(t *testing.T) {
	x := -1 // an empty value

	allCompressors := func() []Compressor {
		return []Compressor{
			NewUniqueRows(),
			NewRowDisplacement(x),
			NewTable(x),
		}
	}

	tests := []struct {
		original []int
		rowCount int
		colCount int
	}{
		{
			original: []int{
				1, 1, 1, 1, 1,
				1, 1, 1, 1, 1,
				1, 1, 1, 1, 1,
			},
			rowCount: 3,
			colCount: 5,
		},
		{
			original: []int{
				x, x, x, x, x,
				x, x, x, x, x,
				x, x, x, x, x,
			},
			rowCount: 3,
			colCount: 5,
		},
		{
			original: []int{
				1, 1, 1, 1, 1,
				x, x, x, x, x,
				1, 1, 1, 1, 1,
			},
			rowCount: 3,
			colCount: 5,
		},
		{
			original: []int{
				1, x, 1, 1, 1,
				1, 1, x, 1, 1,
				1, 1, 1, x, 1,
			},
			rowCount: 3,
			colCount: 5,
		},
		{
			original: []int{
				0, x, x, -5, x,
				x, 2, x, x, x,
				0, x, x, -5, x,
				x, x, 3, x, 4,
			},
			rowCount: 4,
			colCount: 5,
		},
	}
	for i, tt := range tests {
		for _, comp := range allCompressors() {
			t.Run(fmt.Sprintf("%T #%v", comp, i), func(t *testing.T) {
				dup := make([]int, len(tt.original))
				copy(dup, tt.original)

				m, err := NewMatrix(tt.original, tt.colCount)
				if err != nil {
					t.Fatal(err)
				}
				err = comp.Compress(m)
				if err != nil {
					t.Fatal(err)
				}
				rowCount, colCount := comp.OriginalTableSize()
				if rowCount != tt.rowCount || colCount != tt.colCount {
					t.Fatalf("unexpected table size; want: %vx%v, got: %vx%v", tt.rowCount, tt.colCount, rowCount, colCount)
				}
				for i := 0; i < tt.rowCount; i++ {
					for j := 0; j < tt.colCount; j++ {
						v, err := comp.Lookup(i, j)
						if err != nil {
							t.Fatal(err)
						}
						expected := tt.original[i*tt.colCount+j]
						if v != expected {
							t.Fatalf("unexpected entry (%v, %v); want: %v, got: %v", i, j, expected, v)
						}
					}
				}

				// Calling with out-of-range indexes should be an error.
				if _, err := comp.Lookup(0, -1); err == nil {
					t.Fatalf("expected error didn't occur (0, -1)")
				}
				if _, err := comp.Lookup(-1, 0); err == nil {
					t.Fatalf("expected error didn't occur (-1, 0)")
				}
				if _, err := comp.Lookup(rowCount-1, colCount); err == nil {
					t.Fatalf("expected error didn't occur (%v, %v)", rowCount-1, colCount)
				}
				if _, err := comp.Lookup(rowCount, colCount-1); err == nil {
					t.Fatalf("expected error didn't occur (%v, %v)", rowCount, colCount-1)
				}

				// The compressor must not break the original table.
				for i := 0; i < tt.rowCount; i++ {
					for j := 0; j < tt.colCount; j++ {
						idx := i*tt.colCount + j
						if tt.original[idx] != dup[idx] {
							t.Fatalf("the original table is broken (%v, %v); want: %v, got: %v", i, j, dup[idx], tt.original[idx])
						}
					}
				}
			})
		}
	}
}

func TestUniqueRows_SharesIdenticalRows(t *testing.T) {
	m, err := NewMatrix([]int{
		1, -1,
		2, 3,
		1, -1,
		1, -1,
	}, 2)
	if err != nil {
		t.Fatal(err)
	}
	u := NewUniqueRows()
	err = u.Compress(m)
	if err != nil {
		t.Fatal(err)
	}
	if u.UniqueRowCount() != 2 {
		t.Fatalf("unexpected unique row count; want: 2, got: %v", u.UniqueRowCount())
	}
	expectedRowNums := []int{0, 1, 0, 0}
	for i, e := range expectedRowNums {
		if u.RowNums[i] != e {
			t.Fatalf("unexpected row number of row %v; want: %v, got: %v", i, e, u.RowNums[i])
		}
	}
}

func TestNewMatrix(t *testing.T) {
	tests := []struct {
		caption  string
		entries  []int
		colCount int
	}{
		{
			caption:  "entries must not be empty",
			entries:  []int{},
			colCount: 1,
		},
		{
			caption:  "the column count must be positive",
			entries:  []int{1, 2},
			colCount: 0,
		},
		{
			caption:  "the entries must fill whole rows",
			entries:  []int{1, 2, 3},
			colCount: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			_, err := NewMatrix(tt.entries, tt.colCount)
			if err == nil {
				t.Fatal("an error is expected")
			}
		})
	}
}
