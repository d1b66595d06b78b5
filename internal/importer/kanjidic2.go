package importer

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	"github.com/hyperjump/yomu/internal/models"
)

var (
	literalExpr = xpath.MustCompile("literal")
	jlptExpr    = xpath.MustCompile("misc/jlpt")
	freqExpr    = xpath.MustCompile("misc/freq")
	gradeExpr   = xpath.MustCompile("misc/grade")
)

// Kanjidic2 streams <character> elements out of a KANJIDIC2 document.
// Characters without a JLPT level are included; their level is stored as NULL.
func Kanjidic2(r io.Reader) ([]models.KanjiMetadata, error) {
	parser, err := xmlquery.CreateStreamParser(r, "/kanjidic2/character")
	if err != nil {
		return nil, fmt.Errorf("failed to create kanjidic2 parser: %w", err)
	}

	var out []models.KanjiMetadata
	for {
		node, err := parser.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse kanjidic2: %w", err)
		}

		literal := xmlquery.QuerySelector(node, literalExpr)
		if literal == nil {
			continue
		}
		meta := models.KanjiMetadata{Character: strings.TrimSpace(literal.InnerText())}
		if meta.Character == "" {
			continue
		}
		if meta.JLPTLevel, err = elementInt(node, jlptExpr); err != nil {
			return nil, fmt.Errorf("kanji %q: %w", meta.Character, err)
		}
		if meta.FrequencyRank, err = elementInt(node, freqExpr); err != nil {
			return nil, fmt.Errorf("kanji %q: %w", meta.Character, err)
		}
		if meta.SchoolGrade, err = elementInt(node, gradeExpr); err != nil {
			return nil, fmt.Errorf("kanji %q: %w", meta.Character, err)
		}
		out = append(out, meta)
	}
	return out, nil
}

func elementInt(node *xmlquery.Node, expr *xpath.Expr) (*int, error) {
	n := xmlquery.QuerySelector(node, expr)
	if n == nil {
		return nil, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(n.InnerText()))
	if err != nil {
		return nil, err
	}
	return &v, nil
}
