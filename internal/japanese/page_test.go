package japanese

import "testing"

func TestPage(t *testing.T) {
	const text = "猫が好きです。"
	tests := []struct {
		name      string
		start     int
		size      int
		wantSlice string
	}{
		{"whole text", 0, 100, text},
		{"exact size", 0, 7, text},
		{"prefix", 0, 2, "猫が"},
		{"middle", 2, 3, "好きで"},
		{"tail clamps", 5, 100, "す。"},
		{"start at end", 7, 10, ""},
		{"start past end", 50, 10, ""},
		{"zero size", 0, 0, ""},
		{"negative size", 0, -3, ""},
		{"negative start clamps", -2, 1, "猫"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slice, total := Page(text, tt.start, tt.size)
			if slice != tt.wantSlice {
				t.Errorf("slice = %q, want %q", slice, tt.wantSlice)
			}
			if total != 7 {
				t.Errorf("total = %d, want 7", total)
			}
		})
	}
}

func TestPageEmpty(t *testing.T) {
	slice, total := Page("", 0, 100)
	if slice != "" || total != 0 {
		t.Errorf("got %q, %d", slice, total)
	}
}

func TestPageCountsCodePointsNotBytes(t *testing.T) {
	_, total := Page("日本語", 0, 1)
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
}
