// Package cli provides output formatting for the yomu command line.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/hyperjump/yomu/internal/models"
	"github.com/hyperjump/yomu/pkg/utils"
)

// OutputFormat is the format for command output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is the same JSON the HTTP API returns.
	OutputJSON OutputFormat = "json"
)

// maxTranslationWidth bounds the translation column in text output.
const maxTranslationWidth = 60

// WritePage writes an annotated page to w in the given format.
// Text output prints each sentence with furigana in brackets, followed by a glossary of the page's words.
func WritePage(w io.Writer, page *models.AnnotationPage, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, page)
	}

	for _, sentence := range page.Sentences {
		var b strings.Builder
		for _, tok := range sentence {
			switch t := tok.(type) {
			case *models.WordToken:
				b.WriteString(t.Surface)
				if t.Furigana != "" {
					fmt.Fprintf(&b, "[%s]", t.Furigana)
				}
			case *models.TextToken:
				b.WriteString(t.Value)
			}
		}
		fmt.Fprintln(w, b.String())
	}

	words := page.WordTokens()
	if len(words) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "--- Words ---")
		for _, word := range words {
			fmt.Fprintf(w, "%4d  %s (%s)  %s%s\n",
				word.SequenceID, word.Surface, word.Furigana,
				utils.Truncate(word.Translation, maxTranslationWidth), formatLevels(word.KanjiMetadata))
		}
	}
	fmt.Fprintf(w, "\n%d sentences, %d words, document length %d\n", len(page.Sentences), len(words), page.TotalLength)
	return nil
}

// WriteKanji writes the metadata for one character.
func WriteKanji(w io.Writer, meta *models.KanjiMetadata, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, meta)
	}
	fmt.Fprintf(w, "Kanji:     %s\n", meta.Character)
	fmt.Fprintf(w, "JLPT:      %s\n", optional(meta.JLPTLevel, "N"))
	fmt.Fprintf(w, "Frequency: %s\n", optional(meta.FrequencyRank, "#"))
	fmt.Fprintf(w, "Grade:     %s\n", optional(meta.SchoolGrade, ""))
	return nil
}

func formatLevels(metadata []models.KanjiMetadata) string {
	if len(metadata) == 0 {
		return ""
	}
	parts := make([]string, 0, len(metadata))
	for _, m := range metadata {
		parts = append(parts, m.Character+":"+optional(m.JLPTLevel, "N"))
	}
	return "  [" + strings.Join(parts, " ") + "]"
}

func optional(v *int, prefix string) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%s%d", prefix, *v)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
