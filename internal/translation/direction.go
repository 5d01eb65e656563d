package translation

import (
	"fmt"
	"strings"
)

// Direction is the translation direction of a request.
type Direction int

const (
	EnglishToGreek Direction = iota
	GreekToEnglish
)

// Languages returns the source and target ISO codes. It panics on a value
// that is not one of the declared directions.
func (d Direction) Languages() (source, target string) {
	switch d {
	case EnglishToGreek:
		return "en", "el"
	case GreekToEnglish:
		return "el", "en"
	default:
		panic(fmt.Sprintf("translation: invalid direction %d", int(d)))
	}
}

func (d Direction) String() string {
	source, target := d.Languages()
	return source + "-" + target
}

// ParseDirection parses "en-el" or "el-en".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "en-el":
		return EnglishToGreek, nil
	case "el-en":
		return GreekToEnglish, nil
	default:
		return 0, fmt.Errorf("invalid direction %q: must be 'en-el' or 'el-en'", s)
	}
}
