package fjc

import (
	"strings"
	"testing"
)

func TestMerge(t *testing.T) {
	service := &Table{
		Columns: []string{"nid", "Court Name"},
		Rows: []Row{
			{"nid": "1", "Court Name": "X"},
			{"nid": "2", "Court Name": "Y"},
			{"nid": "3", "Court Name": "Z"},
		},
	}
	career := &Table{
		Columns: []string{"nid", "Professional Career"},
		Rows: []Row{
			{"nid": "1", "Professional Career": "private practice"},
			{"nid": "2", "Professional Career": "prosecutor"},
		},
	}
	demographics := &Table{
		Columns: []string{"nid", "Gender", "Court Name"},
		Rows: []Row{
			{"nid": "1", "Gender": "Female", "Court Name": "stale"},
			{"nid": "2", "Gender": "Male", "Court Name": "stale"},
		},
	}

	got, err := Merge(service, career, demographics)
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}

	// Inner join: nid 3 has no career or demographics rows.
	if len(got.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(got.Rows))
	}

	// The left table keeps its column; the collision is suffixed.
	if !got.HasColumn("Court Name_EXTRA") {
		t.Errorf("missing suffixed collision column, columns: %v", got.Columns)
	}
	if got.Rows[0]["Court Name"] != "X" {
		t.Errorf("Court Name = %q, want left value %q", got.Rows[0]["Court Name"], "X")
	}
	if got.Rows[0]["Gender"] != "Female" {
		t.Errorf("Gender = %q, want %q", got.Rows[0]["Gender"], "Female")
	}
}

func TestMergeManyToMany(t *testing.T) {
	// Multiple service assignments for one judge each pick up the single
	// career and demographics row.
	service := &Table{
		Columns: []string{"nid", "Court Name"},
		Rows: []Row{
			{"nid": "1", "Court Name": "X"},
			{"nid": "1", "Court Name": "Y"},
		},
	}
	career := &Table{
		Columns: []string{"nid"},
		Rows:    []Row{{"nid": "1"}},
	}
	demographics := &Table{
		Columns: []string{"nid", "Gender"},
		Rows:    []Row{{"nid": "1", "Gender": "Male"}},
	}

	got, err := Merge(service, career, demographics)
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	if len(got.Rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(got.Rows))
	}
	if got.Rows[1]["Court Name"] != "Y" {
		t.Errorf("row order not preserved: %v", got.Rows)
	}
}

func TestMergeMissingJoinKey(t *testing.T) {
	service := &Table{Columns: []string{"nid"}, Rows: []Row{{"nid": "1"}}}
	career := &Table{Columns: []string{"jid"}, Rows: []Row{{"jid": "1"}}}
	demographics := &Table{Columns: []string{"nid"}, Rows: []Row{{"nid": "1"}}}

	_, err := Merge(service, career, demographics)
	if err == nil {
		t.Fatal("Merge() expected error for table without nid")
	}
	if !strings.Contains(err.Error(), "career") {
		t.Errorf("error should name the faulty table, got: %v", err)
	}
}
