package script

import (
	"fmt"
	"strings"
)

const (
	greekBlockStart = 0x0370
	greekBlockEnd   = 0x03FF
)

// commonGreekWords catches short Greek fragments whose letters were mangled
// by OCR but where a frequent word survived.
var commonGreekWords = []string{"είμαι", "έχω", "και", "για", "με", "από", "στο", "στον", "στην"}

// ContainsGreek reports whether text holds any character of the Greek and
// Coptic block, or one of a handful of very common Greek words.
func ContainsGreek(text string) bool {
	for _, r := range text {
		if r >= greekBlockStart && r <= greekBlockEnd {
			return true
		}
	}

	lower := strings.ToLower(text)
	for _, word := range commonGreekWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// ValidateGreekText validates that the input text is non-empty Greek text
func ValidateGreekText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("text cannot be empty")
	}

	if !ContainsGreek(text) {
		return fmt.Errorf("text must contain Greek characters")
	}

	return nil
}
