package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"certgen/internal/storage"
)

// ExportDB writes every table of the local database into one workbook,
// one sheet per table, column order preserved, values untransformed.
func ExportDB(db *storage.DB, outputPath string) error {
	tables, err := db.TableNames()
	if err != nil {
		return err
	}
	if len(tables) == 0 {
		return fmt.Errorf("database has no tables to export")
	}

	f := excelize.NewFile()
	for i, table := range tables {
		sheet := table
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
				return err
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return err
			}
		}

		columns, records, err := db.DumpTable(table)
		if err != nil {
			return err
		}

		for c, name := range columns {
			cell, _ := excelize.CoordinatesToCellName(c+1, 1)
			_ = f.SetCellValue(sheet, cell, name)
		}
		for r, record := range records {
			for c, value := range record {
				cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
				_ = f.SetCellValue(sheet, cell, value)
			}
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(outputPath)
}
