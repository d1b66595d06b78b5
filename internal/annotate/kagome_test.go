package annotate

import (
	"context"
	"testing"

	"github.com/hyperjump/yomu/internal/models"
	"github.com/hyperjump/yomu/internal/segment"
)

func TestAnnotatePage_Kagome(t *testing.T) {
	seg, err := segment.NewKagome(segment.DictIPA)
	if err != nil {
		t.Fatal(err)
	}
	a := NewAnnotator(seg, newFakeKanji(), newFakeTranslations())
	page, err := a.AnnotatePage(context.Background(), "猫が好きです。", 0, 100)
	if err != nil {
		t.Fatal(err)
	}
	if page.TotalLength != 7 || len(page.Sentences) != 1 {
		t.Fatalf("got total %d, %d sentences", page.TotalLength, len(page.Sentences))
	}
	first, ok := page.Sentences[0][0].(*models.WordToken)
	if !ok {
		t.Fatalf("first token should be a word, got %#v", page.Sentences[0][0])
	}
	if first.Surface != "猫" || first.Furigana != "ねこ" || first.SequenceID != 1 {
		t.Errorf("first token = %+v", first)
	}
	if first.Translation != "cat | shamisen" {
		t.Errorf("translation = %q", first.Translation)
	}
	if _, ok := page.Sentences[0][1].(*models.TextToken); !ok {
		t.Errorf("particle should be text, got %#v", page.Sentences[0][1])
	}
}
