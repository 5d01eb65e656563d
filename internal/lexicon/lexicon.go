package lexicon

import (
	"strings"
	"sync"

	"codeberg.org/snonux/glossa/internal/script"
)

// Translation is a dictionary hit.
type Translation struct {
	English  string // first alias form of the matched entry, for display
	Greek    string
	Phonetic string
}

// Lexicon resolves noisy English object names to Greek words. It is
// immutable after construction and safe for concurrent use.
type Lexicon struct {
	index map[string]Translation
	// keys holds index keys in insertion order and drives the
	// substring fallback so that ties are broken by declaration order.
	keys []string
}

// New builds a Lexicon from entries. On alias collisions the entry declared
// first wins.
func New(entries ...Entry) *Lexicon {
	l := &Lexicon{index: make(map[string]Translation)}

	for _, e := range entries {
		forms := aliasForms(e.Aliases)
		if len(forms) == 0 {
			continue
		}

		hit := Translation{
			English:  forms[0],
			Greek:    e.Greek,
			Phonetic: script.Transliterate(e.Greek),
		}
		for _, form := range forms {
			key := normalize(form)
			if key == "" {
				continue
			}
			if _, exists := l.index[key]; exists {
				continue
			}
			l.index[key] = hit
			l.keys = append(l.keys, key)
		}
	}

	return l
}

var defaultLexicon = sync.OnceValue(func() *Lexicon {
	return New(DefaultEntries()...)
})

// Default returns the Lexicon for the built-in dictionary. It is built on
// first use and shared afterwards.
func Default() *Lexicon {
	return defaultLexicon()
}

// Len returns the number of distinct alias keys.
func (l *Lexicon) Len() int {
	return len(l.keys)
}

// Translate finds the best dictionary entry for input. The second return
// value is false when nothing matches; that is not an error.
func (l *Lexicon) Translate(input string) (Translation, bool) {
	if strings.TrimSpace(input) == "" {
		return Translation{}, false
	}

	normalized := normalize(input)
	if hit, ok := l.index[normalized]; ok {
		return hit, true
	}

	if singular := normalize(singularizePhrase(input)); singular != "" && singular != normalized {
		if hit, ok := l.index[singular]; ok {
			return hit, true
		}
	}

	// Longest window first, then leftmost, exact form before singular form.
	tokens := strings.Fields(normalized)
	for size := len(tokens); size >= 1; size-- {
		for start := 0; start+size <= len(tokens); start++ {
			window := tokens[start : start+size]
			if hit, ok := l.index[strings.Join(window, " ")]; ok {
				return hit, true
			}
			if hit, ok := l.index[singularizeTokens(window)]; ok {
				return hit, true
			}
		}
	}

	return l.longestContained(normalized)
}

// longestContained returns the entry for the longest key found as whole
// words inside normalized. Equal lengths resolve to the earlier key.
func (l *Lexicon) longestContained(normalized string) (Translation, bool) {
	best := ""
	for _, key := range l.keys {
		if len(key) > len(best) && containsWord(normalized, key) {
			best = key
		}
	}
	if best == "" {
		return Translation{}, false
	}
	return l.index[best], true
}

// aliasForms expands aliases with their singular forms, keeping order and
// dropping duplicates and blanks.
func aliasForms(aliases []string) []string {
	seen := make(map[string]struct{}, len(aliases)*2)
	forms := make([]string, 0, len(aliases)*2)

	add := func(form string) {
		if strings.TrimSpace(form) == "" {
			return
		}
		if _, ok := seen[form]; ok {
			return
		}
		seen[form] = struct{}{}
		forms = append(forms, form)
	}

	for _, alias := range aliases {
		add(alias)
		add(singularizePhrase(alias))
	}
	return forms
}
