package fjc

import (
	"fmt"
)

// joinKey is the identity column shared by all three FJC exports.
const joinKey = "nid"

// Merge inner-joins the three source tables on nid, left to right:
// service first, then career, then demographics. Column names already
// present on the left keep their name; a colliding column from the right
// table is suffixed. A table without the nid column is a structural fault
// and aborts the merge.
func Merge(service, career, demographics *Table) (*Table, error) {
	for _, in := range []struct {
		name  string
		table *Table
	}{
		{"service", service},
		{"career", career},
		{"demographics", demographics},
	} {
		if !in.table.HasColumn(joinKey) {
			return nil, fmt.Errorf("%s table is missing join column %q", in.name, joinKey)
		}
	}

	combined := joinOn(service, career, joinKey)
	combined = joinOn(combined, demographics, joinKey)
	return combined, nil
}

// joinOn performs an inner join of right onto left. Matching is
// many-to-many: every (left row, right row) pair sharing a key value
// produces one output row, in left-table order.
func joinOn(left, right *Table, key string) *Table {
	byKey := make(map[string][]Row, len(right.Rows))
	for _, row := range right.Rows {
		k := row[key]
		byKey[k] = append(byKey[k], row)
	}

	// Resolve right-table column names up front.
	renamed := make(map[string]string, len(right.Columns))
	out := &Table{Columns: append([]string(nil), left.Columns...)}
	for _, col := range right.Columns {
		if col == key {
			continue
		}
		name := col
		if left.HasColumn(col) {
			name = col + "_EXTRA"
		}
		renamed[col] = name
		out.Columns = append(out.Columns, name)
	}

	for _, lrow := range left.Rows {
		for _, rrow := range byKey[lrow[key]] {
			row := make(Row, len(out.Columns))
			for k, v := range lrow {
				row[k] = v
			}
			for col, name := range renamed {
				row[name] = rrow[col]
			}
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}
