package dates

import (
	"testing"
	"time"
)

func TestHintFromMessage(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Hint
	}{
		{"vietnamese day word", "order giùm mình ngày 20 nhé", Hint{Day: 20}},
		{"english day word", "mark me for day 15 please", Hint{Day: 15}},
		{"trailing tui form", "20 tui đặt cơm rồi", Hint{Day: 20}},
		{"mixed case", "Ngày 9 order giùm", Hint{Day: 9}},
		{"out of range day ignored", "ngày 45 gì đó", Hint{}},
		{"yesterday keyword", "hôm qua quên order", Hint{Yesterday: true}},
		{"yesterday shorthand", "hqua mình có đặt", Hint{Yesterday: true}},
		{"day wins over yesterday", "hôm qua tính đặt ngày 12", Hint{Day: 12}},
		{"plain order text", "cho mình 1 phần cơm gà", Hint{}},
		{"empty", "", Hint{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HintFromMessage(tt.text); got != tt.want {
				t.Fatalf("HintFromMessage(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestResolveMessageDate(t *testing.T) {
	ref := time.Date(2026, time.January, 15, 9, 30, 0, 0, ict)

	tests := []struct {
		name          string
		classifierDay int
		text          string
		want          time.Time
	}{
		{"classifier day wins over text", 5, "ngày 20 nhé", date(2026, time.January, 5)},
		{"text day with rollover", 0, "order ngày 20", date(2025, time.December, 20)},
		{"yesterday keyword", 0, "hôm qua mình đặt rồi", date(2026, time.January, 14)},
		{"defaults to message day", 0, "cho mình cơm sườn", date(2026, time.January, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveMessageDate(ref, tt.classifierDay, tt.text)
			if err != nil {
				t.Fatalf("ResolveMessageDate returned error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Fatalf("ResolveMessageDate = %s, want %s", got, tt.want)
			}
		})
	}
}
