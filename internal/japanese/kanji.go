package japanese

// CJK Unified Ideographs block.
const (
	kanjiFirst = 0x4E00
	kanjiLast  = 0x9FFF
)

// IsKanji reports whether r is in the CJK Unified Ideographs block.
func IsKanji(r rune) bool {
	return r >= kanjiFirst && r <= kanjiLast
}

// ContainsKanji reports whether s has at least one kanji.
func ContainsKanji(s string) bool {
	for _, r := range s {
		if IsKanji(r) {
			return true
		}
	}
	return false
}
