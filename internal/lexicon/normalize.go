package lexicon

import (
	"strings"
	"unicode/utf8"
)

// normalize lowercases text, turns everything outside [a-z0-9] into a
// separator and collapses separators to single spaces.
func normalize(text string) string {
	lower := strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(lower))
	pendingSpace := false
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
			continue
		}
		pendingSpace = true
	}
	return b.String()
}

// singularize strips an English plural suffix. It is a heuristic: the length
// guard on the bare "s" rule keeps short words such as "bus" intact.
func singularize(word string) string {
	switch {
	case strings.HasSuffix(word, "ies"):
		return word[:len(word)-3] + "y"
	case strings.HasSuffix(word, "ves"):
		return word[:len(word)-3] + "f"
	case strings.HasSuffix(word, "oes"):
		return word[:len(word)-2]
	case strings.HasSuffix(word, "ses"), strings.HasSuffix(word, "xes"), strings.HasSuffix(word, "zes"):
		return word[:len(word)-2]
	case strings.HasSuffix(word, "s") && utf8.RuneCountInString(word) > 3:
		return word[:len(word)-1]
	default:
		return word
	}
}

// singularizePhrase singularizes every space separated word of text.
func singularizePhrase(text string) string {
	var words []string
	for _, w := range strings.Split(text, " ") {
		if w != "" {
			words = append(words, singularize(w))
		}
	}
	return strings.Join(words, " ")
}

func singularizeTokens(tokens []string) string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = singularize(tok)
	}
	return strings.Join(out, " ")
}

// containsWord reports whether word occurs in normalized text on word
// boundaries. Both arguments must already be normalized, so a boundary is
// always a space or an end of the string.
func containsWord(text, word string) bool {
	if word == "" {
		return false
	}
	return strings.Contains(" "+text+" ", " "+word+" ")
}
