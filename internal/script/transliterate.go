package script

import "strings"

// digraphs are replaced before single letters, in this order.
var digraphs = []struct {
	greek string
	latin string
}{
	{"ΑΥ", "av"}, {"ΕΥ", "ev"}, {"ΗΥ", "iv"}, {"ΟΥ", "ou"},
	{"ΑΙ", "ai"}, {"ΕΙ", "ei"}, {"ΟΙ", "oi"},
	{"αυ", "av"}, {"ευ", "ev"}, {"ηυ", "iv"}, {"ου", "ou"},
	{"αι", "ai"}, {"ει", "ei"}, {"οι", "oi"},
}

var letters = map[rune]string{
	'Α': "A", 'Β': "V", 'Γ': "G", 'Δ': "D", 'Ε': "E",
	'Ζ': "Z", 'Η': "I", 'Θ': "Th", 'Ι': "I", 'Κ': "K",
	'Λ': "L", 'Μ': "M", 'Ν': "N", 'Ξ': "X", 'Ο': "O",
	'Π': "P", 'Ρ': "R", 'Σ': "S", 'Τ': "T", 'Υ': "Y",
	'Φ': "F", 'Χ': "Ch", 'Ψ': "Ps", 'Ω': "O",

	'α': "a", 'β': "v", 'γ': "g", 'δ': "d", 'ε': "e",
	'ζ': "z", 'η': "i", 'θ': "th", 'ι': "i", 'κ': "k",
	'λ': "l", 'μ': "m", 'ν': "n", 'ξ': "x", 'ο': "o",
	'π': "p", 'ρ': "r", 'σ': "s", 'ς': "s", 'τ': "t",
	'υ': "y", 'φ': "f", 'χ': "ch", 'ψ': "ps", 'ω': "o",

	'ά': "a", 'έ': "e", 'ή': "i", 'ί': "i", 'ό': "o",
	'ύ': "y", 'ώ': "o",
	'Ά': "A", 'Έ': "E", 'Ή': "I", 'Ί': "I", 'Ό': "O",
	'Ύ': "Y", 'Ώ': "O",
}

// Transliterate returns a lowercase Latin approximation of how Greek text is
// pronounced. Text without Greek characters yields "". Characters without a
// mapping are kept as they are.
func Transliterate(text string) string {
	if !ContainsGreek(text) {
		return ""
	}

	result := strings.Join(strings.Fields(text), " ")
	for _, d := range digraphs {
		result = strings.ReplaceAll(result, d.greek, d.latin)
	}

	var b strings.Builder
	b.Grow(len(result))
	for _, r := range result {
		if latin, ok := letters[r]; ok {
			b.WriteString(latin)
			continue
		}
		b.WriteRune(r)
	}

	return strings.ToLower(b.String())
}
