package fjc

import (
	"bytes"
	"testing"
)

func TestReadCSVWindows1252(t *testing.T) {
	// 0xE9 is "é" in windows-1252, invalid as bare UTF-8.
	input := append([]byte("nid,Last Name\n1,Garc"), 0xE9)
	input = append(input, []byte("s\n")...)

	table, err := readCSV(bytes.NewReader(input))
	if err != nil {
		t.Fatalf("readCSV() error = %v", err)
	}

	if len(table.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(table.Rows))
	}
	if got := table.Rows[0]["Last Name"]; got != "Garcés" {
		t.Errorf("Last Name = %q, want decoded %q", got, "Garcés")
	}
}

func TestReadCSVShortRow(t *testing.T) {
	input := []byte("nid,Last Name,Gender\n1,Smith\n")

	table, err := readCSV(bytes.NewReader(input))
	if err != nil {
		t.Fatalf("readCSV() error = %v", err)
	}
	if got := table.Rows[0]["Gender"]; got != "" {
		t.Errorf("Gender = %q, want padded empty string", got)
	}
}
