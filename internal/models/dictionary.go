package models

// TranslationEntry is one row of the word dictionary. Translations keep dictionary source order.
type TranslationEntry struct {
	KanjiForm    string   `json:"kanji_form"`
	KanaForm     string   `json:"kana_form"`
	Translations []string `json:"translations"`
}
