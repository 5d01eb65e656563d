package lexicon

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadEntries reads extra dictionary entries from a YAML file of the form
//
//	- greek: καρπούζι
//	  aliases: [watermelon, watermelons]
func LoadEntries(path string) ([]Entry, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read entries file: %w", err)
	}

	var raw []Entry
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse entries file %s: %w", path, err)
	}

	entries := make([]Entry, 0, len(raw))
	for i, e := range raw {
		greek := strings.TrimSpace(e.Greek)
		if greek == "" {
			return nil, fmt.Errorf("entry %d in %s has no greek term", i+1, path)
		}
		entries = append(entries, NewEntry(greek, e.Aliases...))
	}
	return entries, nil
}
