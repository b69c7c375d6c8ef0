package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"certgen/internal"
)

// Table is a parsed tabular dataset: one header row plus data rows in
// source order. Cells are kept raw; trimming happens in Normalize.
type Table struct {
	Headers []string
	Records [][]string
}

func (t *Table) Len() int {
	return len(t.Records)
}

// ReadFile loads a dataset by extension: .xlsx/.xls spreadsheets or
// .csv delimited text. Anything else is an input error, fatal to the run.
func ReadFile(path string) (*Table, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return ReadXLSX(blob)
	case ".csv":
		return ReadCSV(bytes.NewReader(blob))
	default:
		return nil, fmt.Errorf("unsupported dataset type: %s", filepath.Ext(path))
	}
}

// Read parses dataset bytes of an explicit kind, for callers that carry
// uploads in memory.
func Read(kind internal.DatasetKind, blob []byte) (*Table, error) {
	switch kind {
	case internal.DatasetXLSX:
		return ReadXLSX(blob)
	case internal.DatasetCSV:
		return ReadCSV(bytes.NewReader(blob))
	default:
		return nil, fmt.Errorf("unsupported dataset kind: %s", kind)
	}
}

// ReadXLSX parses the first sheet of a spreadsheet, first row as header.
func ReadXLSX(blob []byte) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(blob))
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return tableFromRows(rows)
}

// ReadCSV parses a delimited text table with a header row.
func ReadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read delimited table: %w", err)
	}
	return tableFromRows(rows)
}

func tableFromRows(rows [][]string) (*Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("dataset has no header row")
	}
	return &Table{Headers: rows[0], Records: rows[1:]}, nil
}

func pickCell(cells []string, idx int) string {
	if idx >= 0 && idx < len(cells) {
		return cells[idx]
	}
	return ""
}
