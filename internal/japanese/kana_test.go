package japanese

import "testing"

func TestKatakanaToHiragana(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "ネコ", "ねこ"},
		{"range bounds", "ァン", "ぁん"},
		{"long vowel mark untouched", "ラーメン", "らーめん"},
		{"vu outside range", "ヴァイオリン", "ヴぁいおりん"},
		{"middle dot untouched", "コーヒー・カップ", "こーひー・かっぷ"},
		{"already hiragana", "ねこ", "ねこ"},
		{"ascii and kanji", "ABC猫", "ABC猫"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KatakanaToHiragana(tt.in); got != tt.want {
				t.Errorf("KatakanaToHiragana(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestKanaConversionRoundTrip(t *testing.T) {
	for r := rune(katakanaFirst); r <= katakanaLast; r++ {
		s := string(r)
		if got := HiraganaToKatakana(KatakanaToHiragana(s)); got != s {
			t.Errorf("round trip of %q (U+%04X) gave %q", s, r, got)
		}
	}
}

func TestHiraganaToKatakana(t *testing.T) {
	if got := HiraganaToKatakana("すきー"); got != "スキー" {
		t.Errorf("got %q", got)
	}
}
