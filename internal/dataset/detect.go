package dataset

import "strings"

// Columns is the result of header auto-detection. AffiliationIdx is -1
// when the dataset carries no affiliation column.
type Columns struct {
	NameIdx        int
	AffiliationIdx int
}

var (
	nameProbes        = []string{"student", "name"}
	affiliationProbes = []string{"school", "institution"}
)

// DetectColumns picks the name and affiliation columns from the header
// row. Matching is ordered, case-insensitive substring; first match in
// column order wins. A single-column dataset is all name, no affiliation.
func DetectColumns(headers []string) Columns {
	if len(headers) <= 1 {
		return Columns{NameIdx: 0, AffiliationIdx: -1}
	}

	nameIdx := findHeaderIndex(headers, nameProbes, -1)
	if nameIdx < 0 {
		nameIdx = 0
	}

	affIdx := findHeaderIndex(headers, affiliationProbes, nameIdx)
	if affIdx < 0 {
		affIdx = 1
	}

	return Columns{NameIdx: nameIdx, AffiliationIdx: affIdx}
}

func findHeaderIndex(headers []string, probes []string, exclude int) int {
	for i, h := range headers {
		if i == exclude {
			continue
		}
		lower := strings.ToLower(h)
		for _, probe := range probes {
			if strings.Contains(lower, probe) {
				return i
			}
		}
	}
	return -1
}
