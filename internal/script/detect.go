package script

import (
	"unicode"

	"github.com/abadojack/whatlanggo"
)

// IsGreekScript reports whether the dominant script of text is Greek. Unlike
// ContainsGreek it looks at the text as a whole, so a single stray Greek
// letter in an English sentence does not flip the result.
func IsGreekScript(text string) bool {
	return whatlanggo.DetectScript(text) == unicode.Greek
}
