package batch

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"codeberg.org/snonux/glossa/internal/translation"
)

// Query is a single line of a query file.
type Query struct {
	Text      string
	Direction translation.Direction
	// Forced is set when the line carried a direction prefix.
	Forced bool
}

// ReadQueryFile reads queries from a file, one per line.
// Supports formats:
// - Plain text: "coffee maker" (direction chosen by the caller)
// - English prefix: "en: coffee maker" (translated to Greek)
// - Greek prefix: "el: καφετιέρα" (translated to English)
// Blank lines and lines starting with '#' are skipped.
func ReadQueryFile(filename string) ([]Query, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read query file: %w", err)
	}

	var queries []Query
	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if q, ok := parseLine(line); ok {
			queries = append(queries, q)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan query file: %w", err)
	}

	return queries, nil
}

func parseLine(line string) (Query, bool) {
	prefixes := []struct {
		prefix string
		dir    translation.Direction
	}{
		{"en:", translation.EnglishToGreek},
		{"el:", translation.GreekToEnglish},
	}

	for _, p := range prefixes {
		if len(line) >= len(p.prefix) && strings.EqualFold(line[:len(p.prefix)], p.prefix) {
			text := strings.TrimSpace(line[len(p.prefix):])
			if text == "" {
				return Query{}, false
			}
			return Query{Text: text, Direction: p.dir, Forced: true}, true
		}
	}

	return Query{Text: line}, true
}
