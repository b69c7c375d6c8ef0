package dataset

import (
	"strings"

	"certgen/internal"
)

// Normalize validates and trims every data row against the detected
// columns. Rows whose name cell is empty after trimming are rejected and
// reported as RowErrors; an empty affiliation is not a failure, the
// certificate simply omits that line.
func Normalize(t *Table, cols Columns) ([]internal.NormalizedParticipant, []internal.RowError) {
	out := make([]internal.NormalizedParticipant, 0, len(t.Records))
	var errs []internal.RowError

	for i, record := range t.Records {
		rowIndex := i + 1

		name := strings.TrimSpace(pickCell(record, cols.NameIdx))
		if name == "" {
			errs = append(errs, internal.RowError{
				RowIndex: rowIndex,
				Name:     "Unknown",
				Message:  "missing participant name",
			})
			continue
		}

		affiliation := ""
		if cols.AffiliationIdx >= 0 {
			affiliation = strings.TrimSpace(pickCell(record, cols.AffiliationIdx))
		}

		out = append(out, internal.NormalizedParticipant{
			RowIndex:    rowIndex,
			Name:        name,
			Affiliation: affiliation,
		})
	}

	return out, errs
}
