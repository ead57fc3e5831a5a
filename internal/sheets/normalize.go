package sheets

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks removes combining diacritical marks after canonical
// decomposition, turning "Nguyễn" into "Nguyen".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// đ carries no combining mark and survives decomposition, so it is
// mapped separately, along with the eth letters people type for it.
var dReplacer = strings.NewReplacer("đ", "d", "Đ", "d", "ð", "d", "Ð", "d")

// NormalizeName folds a display name for comparison: diacritics
// stripped, đ mapped to d, lowercased, surrounding whitespace trimmed.
// The fold is idempotent, and it is applied to both the stored and the
// queried side of every row lookup.
func NormalizeName(name string) string {
	folded, _, _ := transform.String(stripMarks, name)
	folded = dReplacer.Replace(folded)
	return strings.TrimSpace(strings.ToLower(folded))
}
