package certificate

import (
	"fmt"
	"strings"
	"unicode"
)

var entryReplacer = strings.NewReplacer("<", "_", ">", "_", ":", "_", "\"", "_", "/", "_", "\\", "_", "|", "_", "?", "_", "*", "_")

// EntryName derives the archive entry name for a row: zero-padded 1-based
// row index, the participant name with whitespace and reserved filename
// characters replaced by underscores, and a fixed suffix. The numeric
// prefix keeps entries unique even for duplicate names.
func EntryName(rowIndex int, name string) string {
	safe := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, name)
	safe = entryReplacer.Replace(safe)
	return fmt.Sprintf("%03d_%s_certificate.pdf", rowIndex, safe)
}
