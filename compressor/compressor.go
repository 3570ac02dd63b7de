package compressor

import (
	"encoding/binary"
	"fmt"
	"sort"
)

// Matrix is a dense row-major table of ints.
type Matrix struct {
	entries  []int
	rowCount int
	colCount int
}

func NewMatrix(entries []int, colCount int) (*Matrix, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("entries is empty")
	}
	if colCount <= 0 {
		return nil, fmt.Errorf("colCount must be >=1")
	}
	if len(entries)%colCount != 0 {
		return nil, fmt.Errorf("entries length or column count are incorrect; entries length: %v, column count: %v", len(entries), colCount)
	}

	return &Matrix{
		entries:  entries,
		rowCount: len(entries) / colCount,
		colCount: colCount,
	}, nil
}

func (m *Matrix) Size() (int, int) {
	return m.rowCount, m.colCount
}

type Compressor interface {
	Compress(m *Matrix) error
	Lookup(row, col int) (int, error)
	OriginalTableSize() (int, int)
}

var (
	_ Compressor = &UniqueRows{}
	_ Compressor = &RowDisplacement{}
	_ Compressor = &Table{}
)

// UniqueRows stores each distinct row once. Rows of a parsing table often repeat: non-terminals
// that are only reachable through the same lookaheads share a row.
type UniqueRows struct {
	Rows             []int `json:"rows"`
	RowNums          []int `json:"row_nums"`
	OriginalRowCount int   `json:"original_row_count"`
	OriginalColCount int   `json:"original_col_count"`
}

func NewUniqueRows() *UniqueRows {
	return &UniqueRows{}
}

func (tab *UniqueRows) Lookup(row, col int) (int, error) {
	if row < 0 || row >= tab.OriginalRowCount || col < 0 || col >= tab.OriginalColCount {
		return 0, fmt.Errorf("indexes are out of range: [%v, %v]", row, col)
	}
	return tab.Rows[tab.RowNums[row]*tab.OriginalColCount+col], nil
}

func (tab *UniqueRows) OriginalTableSize() (int, int) {
	return tab.OriginalRowCount, tab.OriginalColCount
}

// UniqueRowCount returns the number of distinct rows.
func (tab *UniqueRows) UniqueRowCount() int {
	if tab.OriginalColCount == 0 {
		return 0
	}
	return len(tab.Rows) / tab.OriginalColCount
}

func (tab *UniqueRows) Compress(m *Matrix) error {
	var rows []int
	rowNums := make([]int, m.rowCount)
	key2RowNum := map[string]int{}
	nextRowNum := 0
	for row := 0; row < m.rowCount; row++ {
		start := row * m.colCount
		key := rowKey(m.entries[start : start+m.colCount])
		rowNum, ok := key2RowNum[key]
		if !ok {
			rowNum = nextRowNum
			nextRowNum++
			key2RowNum[key] = rowNum
			rows = append(rows, m.entries[start:start+m.colCount]...)
		}
		rowNums[row] = rowNum
	}

	tab.Rows = rows
	tab.RowNums = rowNums
	tab.OriginalRowCount = m.rowCount
	tab.OriginalColCount = m.colCount

	return nil
}

// rowKey encodes a row as a string usable as a map key. Negative entries are valid.
func rowKey(row []int) string {
	buf := make([]byte, 0, len(row)*binary.MaxVarintLen64)
	b := make([]byte, binary.MaxVarintLen64)
	for _, v := range row {
		n := binary.PutVarint(b, int64(v))
		buf = append(buf, b[:n]...)
	}
	return string(buf)
}

// ForbiddenValue marks a slot of the displacement vector that belongs to no row.
const ForbiddenValue = -1

// RowDisplacement overlays the rows into one vector. Each row is shifted by its displacement so
// that its non-empty entries land on slots no other row occupies.
type RowDisplacement struct {
	OriginalRowCount int   `json:"original_row_count"`
	OriginalColCount int   `json:"original_col_count"`
	EmptyValue       int   `json:"empty_value"`
	Entries          []int `json:"entries"`
	Bounds           []int `json:"bounds"`
	Displacement     []int `json:"displacement"`
}

func NewRowDisplacement(emptyValue int) *RowDisplacement {
	return &RowDisplacement{
		EmptyValue: emptyValue,
	}
}

func (tab *RowDisplacement) Lookup(row int, col int) (int, error) {
	if row < 0 || row >= tab.OriginalRowCount || col < 0 || col >= tab.OriginalColCount {
		return tab.EmptyValue, fmt.Errorf("indexes are out of range: [%v, %v]", row, col)
	}
	d := tab.Displacement[row]
	if d+col >= len(tab.Bounds) || tab.Bounds[d+col] != row {
		return tab.EmptyValue, nil
	}
	return tab.Entries[d+col], nil
}

func (tab *RowDisplacement) OriginalTableSize() (int, int) {
	return tab.OriginalRowCount, tab.OriginalColCount
}

type rowStat struct {
	rowNum      int
	nonEmptyCol []int
}

func (tab *RowDisplacement) Compress(m *Matrix) error {
	stats := make([]rowStat, m.rowCount)
	for row := 0; row < m.rowCount; row++ {
		stats[row].rowNum = row
		for col := 0; col < m.colCount; col++ {
			if m.entries[row*m.colCount+col] == tab.EmptyValue {
				continue
			}
			stats[row].nonEmptyCol = append(stats[row].nonEmptyCol, col)
		}
	}
	// Denser rows are placed first; sparse rows fill the gaps they leave.
	sort.SliceStable(stats, func(i int, j int) bool {
		return len(stats[i].nonEmptyCol) > len(stats[j].nonEmptyCol)
	})

	size := len(m.entries)
	entries := make([]int, size)
	bounds := make([]int, size)
	for i := 0; i < size; i++ {
		entries[i] = tab.EmptyValue
		bounds[i] = ForbiddenValue
	}
	displacement := make([]int, m.rowCount)
	bottom := 0
	d := 0
	for _, st := range stats {
		if len(st.nonEmptyCol) == 0 {
			continue
		}
		for !fits(bounds, d, st.nonEmptyCol) {
			d++
		}
		displacement[st.rowNum] = d
		for _, col := range st.nonEmptyCol {
			entries[d+col] = m.entries[st.rowNum*m.colCount+col]
			bounds[d+col] = st.rowNum
		}
		if d+m.colCount > bottom {
			bottom = d + m.colCount
		}
		d++
	}

	tab.OriginalRowCount = m.rowCount
	tab.OriginalColCount = m.colCount
	tab.Entries = entries[:bottom]
	tab.Bounds = bounds[:bottom]
	tab.Displacement = displacement

	return nil
}

func fits(bounds []int, d int, cols []int) bool {
	for _, col := range cols {
		if bounds[d+col] != ForbiddenValue {
			return false
		}
	}
	return true
}

// Table applies UniqueRows and then RowDisplacement to the unique rows.
type Table struct {
	RowNums          []int            `json:"row_nums"`
	Unique           *RowDisplacement `json:"unique"`
	OriginalRowCount int              `json:"original_row_count"`
	OriginalColCount int              `json:"original_col_count"`
}

func NewTable(emptyValue int) *Table {
	return &Table{
		Unique: NewRowDisplacement(emptyValue),
	}
}

func (tab *Table) Compress(m *Matrix) error {
	u := NewUniqueRows()
	err := u.Compress(m)
	if err != nil {
		return err
	}
	um, err := NewMatrix(u.Rows, u.OriginalColCount)
	if err != nil {
		return err
	}
	err = tab.Unique.Compress(um)
	if err != nil {
		return err
	}
	tab.RowNums = u.RowNums
	tab.OriginalRowCount = m.rowCount
	tab.OriginalColCount = m.colCount
	return nil
}

func (tab *Table) Lookup(row, col int) (int, error) {
	if row < 0 || row >= tab.OriginalRowCount || col < 0 || col >= tab.OriginalColCount {
		return tab.Unique.EmptyValue, fmt.Errorf("indexes are out of range: [%v, %v]", row, col)
	}
	return tab.Unique.Lookup(tab.RowNums[row], col)
}

func (tab *Table) OriginalTableSize() (int, int) {
	return tab.OriginalRowCount, tab.OriginalColCount
}
