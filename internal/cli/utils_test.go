package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/hyperjump/yomu/internal/models"
)

func samplePage() *models.AnnotationPage {
	level := 3
	return &models.AnnotationPage{
		Sentences: [][]models.AnnotatedToken{{
			&models.WordToken{Surface: "猫", Furigana: "ねこ", Translation: "cat | shamisen", SequenceID: 1,
				KanjiMetadata: []models.KanjiMetadata{{Character: "猫", JLPTLevel: &level}}},
			&models.TextToken{Value: "が"},
			&models.WordToken{Surface: "好き", Furigana: "すき", SequenceID: 2,
				KanjiMetadata: []models.KanjiMetadata{{Character: "好"}}},
			&models.TextToken{Value: "です"},
		}},
		TotalLength: 7,
	}
}

func TestWritePage_Text(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePage(&buf, samplePage(), OutputText); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"猫[ねこ]が好き[すき]です\n",
		"   1  猫 (ねこ)  cat | shamisen  [猫:N3]",
		"   2  好き (すき)    [好:-]",
		"1 sentences, 2 words, document length 7",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWritePage_TextEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePage(&buf, &models.AnnotationPage{TotalLength: 7}, OutputText); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "--- Words ---") {
		t.Errorf("empty page should have no glossary:\n%s", buf.String())
	}
}

func TestWritePage_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePage(&buf, samplePage(), OutputJSON); err != nil {
		t.Fatal(err)
	}
	var decoded struct {
		Data        [][]map[string]interface{} `json:"data"`
		TotalLength int                        `json:"totalLength"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if decoded.TotalLength != 7 || len(decoded.Data[0]) != 4 {
		t.Errorf("decoded = %+v", decoded)
	}
	if decoded.Data[0][1]["type"] != "text" || decoded.Data[0][1]["value"] != "が" {
		t.Errorf("text token = %v", decoded.Data[0][1])
	}
}

func TestWriteKanji(t *testing.T) {
	level, grade := 3, 8
	meta := &models.KanjiMetadata{Character: "猫", JLPTLevel: &level, SchoolGrade: &grade}

	var buf bytes.Buffer
	if err := WriteKanji(&buf, meta, OutputText); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"Kanji:     猫", "JLPT:      N3", "Frequency: -", "Grade:     8"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	if err := WriteKanji(&buf, meta, OutputJSON); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"freq_mainichi_shinbun": null`) {
		t.Errorf("json output = %s", buf.String())
	}
}
