package pipeline

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"certgen/internal"
	"certgen/internal/storage"
)

func TestExportDB(t *testing.T) {
	tmp := t.TempDir()
	db, err := storage.Open(filepath.Join(tmp, "certificates.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	record := internal.SubmissionRecord{
		Name:          "Alice",
		SchoolName:    "Lincoln High",
		SchoolNumber:  "LH-01",
		ContactNumber: "0123456789",
		ICNumber:      "990101-01-1234",
		Timestamp:     "2026-08-23T00:00:00Z",
	}
	if _, err := db.InsertSubmission(record, true); err != nil {
		t.Fatal(err)
	}
	if err := db.InsertRun("trace-1", 2, 1, "certificates.zip"); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(tmp, "certificates_export.xlsx")
	if err := ExportDB(db, out); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenFile(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	sheets := map[string]bool{}
	for _, s := range f.GetSheetList() {
		sheets[s] = true
	}
	if !sheets["submissions"] || !sheets["runs"] {
		t.Fatalf("sheets=%v", f.GetSheetList())
	}

	rows, err := f.GetRows("submissions")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows=%d", len(rows))
	}
	if rows[0][1] != "name" {
		t.Fatalf("header order changed: %v", rows[0])
	}
	if rows[1][1] != "Alice" {
		t.Fatalf("unexpected data row: %v", rows[1])
	}
}
