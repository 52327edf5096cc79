package table

// New builds a Table from parallel name and column slices.
// Names and columns are copied at the slice level; the float64 backing
// arrays are shared with the caller and must not be mutated afterwards.
//
// Errors:
//   - ErrNoColumns if names is empty or len(names) != len(cols).
//   - ErrEmptyName if any name is "".
//   - ErrDuplicateColumn if a name repeats.
//   - ErrRaggedColumns if columns differ in length.
func New(names []string, cols [][]float64) (*Table, error) {
	if len(names) == 0 || len(names) != len(cols) {
		return nil, ErrNoColumns
	}
	t := &Table{
		names: make([]string, len(names)),
		index: make(map[string]int, len(names)),
		cols:  make([][]float64, len(cols)),
		rows:  len(cols[0]),
	}
	for i, name := range names {
		if name == "" {
			return nil, ErrEmptyName
		}
		if _, dup := t.index[name]; dup {
			return nil, ErrDuplicateColumn
		}
		if len(cols[i]) != t.rows {
			return nil, ErrRaggedColumns
		}
		t.names[i] = name
		t.index[name] = i
		t.cols[i] = cols[i]
	}

	return t, nil
}

// Rows reports the number of rows (time points).
func (t *Table) Rows() int { return t.rows }

// Len reports the number of columns.
func (t *Table) Len() int { return len(t.names) }

// Names returns the column names in table order. The slice is a copy.
func (t *Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)

	return out
}

// Has reports whether a column with the given name exists.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]

	return ok
}

// Col returns the values of the named column, or ErrUnknownColumn.
// The returned slice shares storage with the table; treat it as
// read-only.
func (t *Table) Col(name string) ([]float64, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, ErrUnknownColumn
	}

	return t.cols[i], nil
}

// Select returns a new table containing exactly the named columns, in
// the given order. Column storage is shared with the receiver.
// Returns ErrUnknownColumn if any name is absent and ErrNoColumns if
// no names are given.
func (t *Table) Select(names ...string) (*Table, error) {
	if len(names) == 0 {
		return nil, ErrNoColumns
	}
	cols := make([][]float64, len(names))
	for i, name := range names {
		j, ok := t.index[name]
		if !ok {
			return nil, ErrUnknownColumn
		}
		cols[i] = t.cols[j]
	}

	return New(names, cols)
}

// Concat joins tables column-wise in argument order, preserving each
// table's internal column order. All tables must agree on row count
// (ErrRowMismatch) and no column name may repeat (ErrDuplicateColumn).
func Concat(ts ...*Table) (*Table, error) {
	if len(ts) == 0 {
		return nil, ErrNoColumns
	}
	if len(ts) == 1 {
		return ts[0], nil
	}
	rows := ts[0].rows
	var names []string
	var cols [][]float64
	for _, t := range ts {
		if t.rows != rows {
			return nil, ErrRowMismatch
		}
		names = append(names, t.names...)
		cols = append(cols, t.cols...)
	}

	return New(names, cols)
}
