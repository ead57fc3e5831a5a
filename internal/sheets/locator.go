package sheets

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// dateHeaderCandidates lists every spelling the header row may use for
// a date: the bare day of month, then slash forms in day/month and
// month/day order, padded and unpadded, with and without the year.
func dateHeaderCandidates(date time.Time) []string {
	d, m, y := date.Day(), int(date.Month()), date.Year()
	return []string{
		strconv.Itoa(d),
		fmt.Sprintf("%02d", d),
		fmt.Sprintf("%d/%d/%d", d, m, y),
		fmt.Sprintf("%02d/%02d/%d", d, m, y),
		fmt.Sprintf("%d/%d/%d", m, d, y),
		fmt.Sprintf("%02d/%02d/%d", m, d, y),
		fmt.Sprintf("%d/%d", d, m),
		fmt.Sprintf("%02d/%02d", d, m),
	}
}

// FindDateColumn scans the header row left to right and returns the
// 1-based index of the first cell whose trimmed text spells date in
// any accepted form. Blank cells are skipped.
func FindDateColumn(header []string, date time.Time) (int, bool) {
	candidates := dateHeaderCandidates(date)
	for i, cell := range header {
		text := strings.TrimSpace(cell)
		if text == "" {
			continue
		}
		for _, want := range candidates {
			if text == want {
				return i + 1, true
			}
		}
	}
	return 0, false
}

// rowMatcher is one strategy for deciding whether a stored member name
// refers to the queried person. Both sides arrive normalized.
type rowMatcher struct {
	name  string
	match func(stored, query string) bool
}

// rowMatchers run in priority order; the first strategy to accept any
// row settles the lookup, so an exact hit anywhere in the column beats
// a substring hit higher up.
var rowMatchers = []rowMatcher{
	{name: "exact", match: func(stored, query string) bool {
		return stored == query
	}},
	{name: "substring", match: func(stored, query string) bool {
		return strings.Contains(stored, query)
	}},
	{name: "tokens", match: func(stored, query string) bool {
		have := make(map[string]bool)
		for _, tok := range strings.Fields(stored) {
			have[tok] = true
		}
		tokens := strings.Fields(query)
		if len(tokens) == 0 {
			return false
		}
		for _, tok := range tokens {
			if !have[tok] {
				return false
			}
		}
		return true
	}},
}

// FindUserRow scans the name column top to bottom under each matcher
// strategy in turn and returns the 1-based index of the first row the
// earliest strategy accepts. Blank cells are skipped; names are
// compared in normalized form.
func FindUserRow(column []string, displayName string) (int, bool) {
	query := NormalizeName(displayName)
	if query == "" {
		return 0, false
	}
	for _, m := range rowMatchers {
		for i, cell := range column {
			stored := NormalizeName(cell)
			if stored == "" {
				continue
			}
			if m.match(stored, query) {
				return i + 1, true
			}
		}
	}
	return 0, false
}
