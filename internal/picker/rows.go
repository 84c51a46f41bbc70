package picker

// RowKind discriminates the closed set of row variants.
type RowKind int

// Row kinds. Static rows (Default, Silent) precede sound rows, Default
// before Silent when both are present.
const (
	RowSound RowKind = iota
	RowDefault
	RowSilent
)

// Row is one entry of the picker list.
type Row struct {
	Kind RowKind
	URI  string // sound rows only
	Name string
}

// PosUnknown is the sentinel for "no row". It is distinct from every valid
// row index, including 0, and negative so the conversion helpers can pass
// it through untouched.
const PosUnknown = -1

// Rows is the ordered row list with its static-row count. List positions
// and enumerator positions share one contiguous index space offset by
// StaticCount.
type Rows struct {
	rows        []Row
	staticCount int
}

// Len returns the number of rows.
func (r Rows) Len() int { return len(r.rows) }

// At returns the row at the list position. ok is false out of range.
func (r Rows) At(pos int) (Row, bool) {
	if pos < 0 || pos >= len(r.rows) {
		return Row{}, false
	}
	return r.rows[pos], true
}

// All returns the rows in order.
func (r Rows) All() []Row { return r.rows }

// StaticCount returns the number of leading static rows.
func (r Rows) StaticCount() int { return r.staticCount }

// ToEnumeratorPos converts a list position to the enumerator's native index.
// Only meaningful for sound rows.
func (r Rows) ToEnumeratorPos(listPos int) int {
	return listPos - r.staticCount
}

// ToListPos converts an enumerator index to a list position. A negative
// not-found sentinel passes through unchanged, never offset.
func (r Rows) ToListPos(enumeratorPos int) int {
	if enumeratorPos < 0 {
		return enumeratorPos
	}
	return enumeratorPos + r.staticCount
}
