package japanese

import "strings"

// SentenceDelimiter is the Japanese full stop.
const SentenceDelimiter = "。"

// SplitSentences splits text on the full stop and drops fragments that are empty or whitespace only.
// Kept fragments are returned as they appeared, without trimming.
func SplitSentences(text string) []string {
	if text == "" {
		return nil
	}
	parts := strings.Split(text, SentenceDelimiter)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
