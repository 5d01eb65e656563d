package wordbank

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"codeberg.org/snonux/glossa/internal/script"
)

// Alternate keys seen in older word lists, in lookup order.
var (
	greekKeys                = []string{"greek_word", "Greek_word", "word", "Greek"}
	romanizationKeys         = []string{"romanization", "verb_romanization"}
	englishKeys              = []string{"english_meaning", "english"}
	greekSentenceKeys        = []string{"greek_sentence", "Greek_sentence", "korean_sentence", "exampleKor"}
	sentenceRomanizationKeys = []string{"sentence_romanization", "korean_sentence_romanization", "exampleRom"}
	englishSentenceKeys      = []string{"english_sentence", "exampleEng"}
)

// Parse decodes a JSON array of words. Entries missing an id or a Greek
// word are skipped and counted; missing romanizations are derived from the
// Greek text.
func Parse(r io.Reader) ([]Word, int, error) {
	var elements []json.RawMessage
	if err := json.NewDecoder(r).Decode(&elements); err != nil {
		return nil, 0, fmt.Errorf("failed to decode word list: %w", err)
	}

	words := make([]Word, 0, len(elements))
	skipped := 0
	for i, raw := range elements {
		w, ok := parseWord(raw)
		if !ok {
			skipped++
			if skipped <= 5 {
				slog.Warn("skipping malformed word entry", "index", i)
			}
			continue
		}
		words = append(words, w)
	}

	slog.Debug("parsed word list", "words", len(words), "skipped", skipped, "total", len(elements))
	return words, skipped, nil
}

func parseWord(raw json.RawMessage) (Word, bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil || obj == nil {
		return Word{}, false
	}

	id, ok := lookup(obj, "id")
	if !ok || strings.TrimSpace(id) == "" {
		return Word{}, false
	}
	greek, ok := lookup(obj, greekKeys...)
	if !ok || strings.TrimSpace(greek) == "" {
		return Word{}, false
	}

	w := Word{ID: id, Greek: greek}
	w.Category, _ = lookup(obj, "category")
	w.English, _ = lookup(obj, englishKeys...)
	w.GreekSentence, _ = lookup(obj, greekSentenceKeys...)
	w.EnglishSentence, _ = lookup(obj, englishSentenceKeys...)

	if w.Romanization, ok = lookup(obj, romanizationKeys...); !ok {
		w.Romanization = script.Transliterate(w.Greek)
	}
	if w.SentenceRomanization, ok = lookup(obj, sentenceRomanizationKeys...); !ok {
		w.SentenceRomanization = script.Transliterate(w.GreekSentence)
	}

	return w, true
}

// lookup returns the first key holding a scalar. Null values are treated
// as absent.
func lookup(obj map[string]any, keys ...string) (string, bool) {
	for _, key := range keys {
		switch v := obj[key].(type) {
		case string:
			return v, true
		case json.Number:
			return v.String(), true
		case bool:
			return fmt.Sprint(v), true
		}
	}
	return "", false
}
