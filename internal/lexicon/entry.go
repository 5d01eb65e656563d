package lexicon

import "codeberg.org/snonux/glossa/internal/script"

// Entry is a Greek term with the English surface forms that name it.
type Entry struct {
	Greek   string   `yaml:"greek"`
	Aliases []string `yaml:"aliases"`
}

// NewEntry creates an Entry with duplicate aliases removed. A term that
// contains no Greek characters is kept as an alias of itself so mixed-script
// tables still resolve.
func NewEntry(greek string, aliases ...string) Entry {
	seen := make(map[string]struct{}, len(aliases)+1)
	out := make([]string, 0, len(aliases)+1)
	for _, a := range aliases {
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}

	if _, ok := seen[greek]; !ok && !script.ContainsGreek(greek) {
		out = append(out, greek)
	}

	return Entry{Greek: greek, Aliases: out}
}
