package fjc

// Row is one record of a source table, keyed by column name.
type Row map[string]string

// Table is an in-memory tabular dataset with a stable column order. Row
// order is preserved through every stage; the forward-fill of senate vote
// fields depends on it (multi-row vote events carry the outcome only on
// their first row).
type Table struct {
	Columns []string
	Rows    []Row
}

// HasColumn reports whether the table carries the named column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}
