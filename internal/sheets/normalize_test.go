package sheets

import "testing"

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"vietnamese full name", "Nguyễn Duy Thái", "nguyen duy thai"},
		{"dj letter both cases", "Đặng Văn Đức", "dang van duc"},
		{"eth letters", "ðạt Ðức", "dat duc"},
		{"already plain", "tran binh", "tran binh"},
		{"uppercase ascii", "TRAN BINH", "tran binh"},
		{"surrounding space trimmed", "  Hòa An  ", "hoa an"},
		{"inner spacing kept", "Hòa  An", "hoa  an"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeName(tt.in); got != tt.want {
				t.Fatalf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeNameIdempotent(t *testing.T) {
	inputs := []string{"Nguyễn Duy Thái", "Đặng Văn Đức", "  Mixed  Case  ", "already normal", ""}
	for _, in := range inputs {
		once := NormalizeName(in)
		if twice := NormalizeName(once); twice != once {
			t.Fatalf("NormalizeName not idempotent for %q: %q != %q", in, twice, once)
		}
	}
}

func TestNormalizeNameAccentInsensitive(t *testing.T) {
	if NormalizeName("Nguyễn Duy Thái") != NormalizeName("nguyen duy thai") {
		t.Fatal("accented and plain spellings should normalize identically")
	}
}
