package dataset

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func mkXLSX(rows [][]any) []byte {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}
	buf := bytes.NewBuffer(nil)
	_, _ = f.WriteTo(buf)
	return buf.Bytes()
}

func TestNormalizeXLSX(t *testing.T) {
	blob := mkXLSX([][]any{
		{"Student Name", "School"},
		{"Alice", "Lincoln High"},
		{"   ", "Washington High"},
		{"Bob", ""},
		{"  Carol  ", "  Lincoln High  "},
	})

	table, err := ReadXLSX(blob)
	if err != nil {
		t.Fatal(err)
	}
	cols := DetectColumns(table.Headers)

	rows, errs := Normalize(table, cols)
	if len(rows) != 3 {
		t.Fatalf("rows=%d", len(rows))
	}
	if len(errs) != 1 {
		t.Fatalf("errs=%d", len(errs))
	}
	if errs[0].RowIndex != 2 || errs[0].Name != "Unknown" {
		t.Fatalf("unexpected row error: %+v", errs[0])
	}

	if rows[0].RowIndex != 1 || rows[0].Name != "Alice" || rows[0].Affiliation != "Lincoln High" {
		t.Fatalf("unexpected row: %+v", rows[0])
	}
	if rows[1].RowIndex != 3 || rows[1].Name != "Bob" || rows[1].Affiliation != "" {
		t.Fatalf("unexpected row: %+v", rows[1])
	}
	if rows[2].Name != "Carol" || rows[2].Affiliation != "Lincoln High" {
		t.Fatalf("trim not applied: %+v", rows[2])
	}
}

func TestNormalizeSingleColumn(t *testing.T) {
	table, err := ReadCSV(strings.NewReader("Participants\nAlice\n \nBob\n"))
	if err != nil {
		t.Fatal(err)
	}
	cols := DetectColumns(table.Headers)
	if cols.AffiliationIdx != -1 {
		t.Fatalf("single column must have no affiliation, got %d", cols.AffiliationIdx)
	}

	rows, errs := Normalize(table, cols)
	if len(rows) != 2 || len(errs) != 1 {
		t.Fatalf("rows=%d errs=%d", len(rows), len(errs))
	}
	for _, r := range rows {
		if r.Affiliation != "" {
			t.Fatalf("unexpected affiliation %q", r.Affiliation)
		}
	}
}

func TestReadEmptyDatasetIsError(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader("")); err == nil {
		t.Fatal("empty dataset must be an input error")
	}
}
