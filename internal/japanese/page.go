package japanese

import "unicode/utf8"

// Page returns the code-point window [start, start+size) of text together with the length of the whole
// text in code points. Out-of-range windows yield an empty slice, never an error.
func Page(text string, start, size int) (string, int) {
	total := utf8.RuneCountInString(text)
	if start < 0 {
		start = 0
	}
	if start >= total || size <= 0 {
		return "", total
	}
	end := total
	if size < total-start {
		end = start + size
	}

	// Walk the string once so the window stays a substring of text.
	from, to := len(text), len(text)
	i := 0
	for pos := range text {
		if i == start {
			from = pos
		}
		if i == end {
			to = pos
			break
		}
		i++
	}
	return text[from:to], total
}
