package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Hint carries what a raw message says about its target day. The zero
// value means "the day the message was sent".
type Hint struct {
	Day       int
	Yesterday bool
}

var dayPatterns = []*regexp.Regexp{
	regexp.MustCompile(`ngày\s+(\d{1,2})`),
	regexp.MustCompile(`day\s+(\d{1,2})`),
	regexp.MustCompile(`(\d{1,2})\s+tui`),
}

var yesterdayWords = []string{"hôm qua", "ngày hôm qua", "yesterday", "hqua"}

// HintFromMessage extracts a day-of-month or a yesterday marker from
// the message text. Day patterns are tried in order on the lowercased
// text; numbers outside 1..31 are ignored. Yesterday keywords are only
// consulted when no usable day number is found.
func HintFromMessage(text string) Hint {
	lower := strings.ToLower(text)
	for _, re := range dayPatterns {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		if day, err := strconv.Atoi(m[1]); err == nil && day >= 1 && day <= 31 {
			return Hint{Day: day}
		}
	}
	for _, w := range yesterdayWords {
		if strings.Contains(lower, w) {
			return Hint{Yesterday: true}
		}
	}
	return Hint{}
}

// ResolveMessageDate resolves the calendar date a message refers to.
// A day number supplied by the classifier wins, then a day spelled out
// in the text, then a yesterday marker, then the message timestamp.
func ResolveMessageDate(ref time.Time, classifierDay int, text string) (time.Time, error) {
	if classifierDay >= 1 {
		return Resolve(ref, classifierDay, false)
	}
	h := HintFromMessage(text)
	return Resolve(ref, h.Day, h.Yesterday)
}
