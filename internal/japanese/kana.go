// Package japanese provides the pure text transforms used by the annotation pipeline:
// windowing, sentence splitting, kana script conversion and kanji detection.
package japanese

const (
	// katakanaFirst and katakanaLast bound the shifted range: ァ (U+30A1) through ン (U+30F3).
	katakanaFirst = 'ァ'
	katakanaLast  = 'ン'
	hiraganaFirst = katakanaFirst - kanaOffset
	hiraganaLast  = katakanaLast - kanaOffset
	kanaOffset    = 0x60
)

// KatakanaToHiragana shifts every character in ァ..ン down to its hiragana counterpart.
// Anything outside that range, including the long-vowel mark ー and ヴ, is left untouched.
func KatakanaToHiragana(s string) string {
	return shift(s, katakanaFirst, katakanaLast, -kanaOffset)
}

// HiraganaToKatakana is the inverse of KatakanaToHiragana over ぁ..ん.
func HiraganaToKatakana(s string) string {
	return shift(s, hiraganaFirst, hiraganaLast, kanaOffset)
}

func shift(s string, first, last rune, delta rune) string {
	runes := []rune(s)
	changed := false
	for i, r := range runes {
		if r >= first && r <= last {
			runes[i] = r + delta
			changed = true
		}
	}
	if !changed {
		return s
	}
	return string(runes)
}
