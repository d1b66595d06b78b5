package annotate

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/hyperjump/yomu/internal/models"
	"github.com/hyperjump/yomu/internal/segment"
)

func newTestAnnotator() *Annotator {
	return NewAnnotator(catSegmenter, newFakeKanji(), newFakeTranslations())
}

func TestAnnotatePage_Sentence(t *testing.T) {
	page, err := newTestAnnotator().AnnotatePage(context.Background(), "猫が好きです。", 0, 100)
	if err != nil {
		t.Fatal(err)
	}
	if page.TotalLength != 7 {
		t.Errorf("TotalLength = %d, want 7", page.TotalLength)
	}
	if len(page.Sentences) != 1 {
		t.Fatalf("expected 1 sentence, got %d", len(page.Sentences))
	}
	tokens := page.Sentences[0]
	if len(tokens) != 4 {
		t.Fatalf("expected 4 tokens, got %d", len(tokens))
	}
	first, ok := tokens[0].(*models.WordToken)
	if !ok {
		t.Fatalf("first token should be a word, got %#v", tokens[0])
	}
	if first.Surface != "猫" || first.Furigana != "ねこ" || first.SequenceID != 1 {
		t.Errorf("first token = %+v", first)
	}
	if len(first.KanjiMetadata) != 1 || first.KanjiMetadata[0].Character != "猫" {
		t.Errorf("first token metadata = %+v", first.KanjiMetadata)
	}
	wantKinds := []models.TokenKind{models.KindWord, models.KindText, models.KindWord, models.KindText}
	for i, tok := range tokens {
		if tok.Kind() != wantKinds[i] {
			t.Errorf("token %d kind = %s, want %s", i, tok.Kind(), wantKinds[i])
		}
	}
}

func TestAnnotatePage_SequenceIDsSpanSentences(t *testing.T) {
	page, err := newTestAnnotator().AnnotatePage(context.Background(), "猫が好き。犬です。猫。", 0, 1000)
	if err != nil {
		t.Fatal(err)
	}
	if len(page.Sentences) != 3 {
		t.Fatalf("expected 3 sentences, got %d", len(page.Sentences))
	}
	words := page.WordTokens()
	for i, w := range words {
		if w.SequenceID != i+1 {
			t.Errorf("word %d (%s) id = %d, want %d", i, w.Surface, w.SequenceID, i+1)
		}
	}
	if len(words) != 4 {
		t.Errorf("expected 4 words, got %d", len(words))
	}
}

func TestAnnotatePage_Idempotent(t *testing.T) {
	a := newTestAnnotator()
	text := "猫が好きです。犬です。"
	first, err := a.AnnotatePage(context.Background(), text, 0, 100)
	if err != nil {
		t.Fatal(err)
	}
	second, err := a.AnnotatePage(context.Background(), text, 0, 100)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("annotating the same input twice should give identical pages")
	}
}

func TestAnnotatePage_PastEnd(t *testing.T) {
	a := newTestAnnotator()
	text := "猫が好きです。"
	for _, start := range []int{7, 8, 1000} {
		page, err := a.AnnotatePage(context.Background(), text, start, 100)
		if err != nil {
			t.Fatal(err)
		}
		if len(page.Sentences) != 0 || page.TotalLength != 7 {
			t.Errorf("start %d: got %d sentences, total %d", start, len(page.Sentences), page.TotalLength)
		}
		data, _ := json.Marshal(page)
		if string(data) != `{"data":[],"totalLength":7}` {
			t.Errorf("start %d: json = %s", start, data)
		}
	}
}

func TestAnnotatePage_EmptyInput(t *testing.T) {
	page, err := newTestAnnotator().AnnotatePage(context.Background(), "", 5, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(page.Sentences) != 0 || page.TotalLength != 0 {
		t.Errorf("got %+v", page)
	}
}

func TestAnnotatePage_WhitespaceSentencesDropped(t *testing.T) {
	page, err := newTestAnnotator().AnnotatePage(context.Background(), "猫。 。\n。", 0, 100)
	if err != nil {
		t.Fatal(err)
	}
	if len(page.Sentences) != 1 {
		t.Errorf("expected 1 sentence, got %d", len(page.Sentences))
	}
}

func TestAnnotatePage_Window(t *testing.T) {
	// Window [5, 9) is "犬です。".
	page, err := newTestAnnotator().AnnotatePage(context.Background(), "猫が好き。犬です。", 5, 4)
	if err != nil {
		t.Fatal(err)
	}
	if page.TotalLength != 9 {
		t.Errorf("TotalLength = %d, want 9", page.TotalLength)
	}
	words := page.WordTokens()
	if len(words) != 1 || words[0].Surface != "犬" || words[0].SequenceID != 1 {
		t.Errorf("words = %+v", words)
	}
	if words[0].Translation != "dog" {
		t.Errorf("translation = %q, want dog", words[0].Translation)
	}
}

func TestAnnotatePage_Truncation(t *testing.T) {
	page, err := newTestAnnotator().AnnotatePage(context.Background(), "猫", 0, 10)
	if err != nil {
		t.Fatal(err)
	}
	w := page.WordTokens()[0]
	if got := strings.Count(w.Translation, TranslationSeparator); got != 1 {
		t.Errorf("expected exactly two candidates, got %q", w.Translation)
	}
}

func TestAnnotatePage_SegmentationFailure(t *testing.T) {
	seg := &fakeSegmenter{dict: catSegmenter.dict, fail: "犬"}
	a := NewAnnotator(seg, newFakeKanji(), newFakeTranslations())
	page, err := a.AnnotatePage(context.Background(), "猫が好き。犬です。", 0, 100)
	if page != nil {
		t.Error("no partial output expected on segmentation failure")
	}
	if !errors.Is(err, segment.ErrSegmentation) {
		t.Fatalf("expected ErrSegmentation, got %v", err)
	}
	var segErr *segment.SegmentationError
	if !errors.As(err, &segErr) || segErr.Sentence != "犬です" {
		t.Errorf("unexpected error %#v", err)
	}
}

func TestAnnotatePage_DegradedTables(t *testing.T) {
	kanji := newFakeKanji()
	kanji.err = errors.New("disk I/O error")
	translations := newFakeTranslations()
	translations.err = errors.New("disk I/O error")
	a := NewAnnotator(catSegmenter, kanji, translations)

	page, err := a.AnnotatePage(context.Background(), "猫が好きです。", 0, 100)
	if err != nil {
		t.Fatalf("degraded tables must not fail the page: %v", err)
	}
	for _, w := range page.WordTokens() {
		if w.Translation != "" || len(w.KanjiMetadata) != 0 {
			t.Errorf("expected empty enrichment, got %+v", w)
		}
	}
}

func TestAnnotatePage_Concurrent(t *testing.T) {
	a := newTestAnnotator()
	want, err := a.AnnotatePage(context.Background(), "猫が好きです。犬です。", 0, 100)
	if err != nil {
		t.Fatal(err)
	}
	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := a.AnnotatePage(context.Background(), "猫が好きです。犬です。", 0, 100)
			if err != nil {
				errs <- err
				return
			}
			if !reflect.DeepEqual(got, want) {
				errs <- errors.New("concurrent result differs")
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
