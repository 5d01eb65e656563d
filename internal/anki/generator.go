package anki

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"codeberg.org/snonux/glossa/internal/wordbank"
)

// Card represents a single Anki flashcard
type Card struct {
	Greek        string // The Greek word/phrase
	Romanization string
	English      string
	Example      string // Greek example sentence with its translation
	Tags         string
}

// GeneratorOptions configures the Anki export
type GeneratorOptions struct {
	OutputPath     string // Output CSV file path
	IncludeHeaders bool   // Include CSV headers
	Separator      rune
}

// DefaultGeneratorOptions returns sensible defaults
func DefaultGeneratorOptions() *GeneratorOptions {
	return &GeneratorOptions{
		OutputPath:     "anki_import.csv",
		IncludeHeaders: true,
		Separator:      ',',
	}
}

// Generator creates Anki-compatible import files
type Generator struct {
	options *GeneratorOptions
	cards   []Card
}

// NewGenerator creates a new Anki generator
func NewGenerator(options *GeneratorOptions) *Generator {
	if options == nil {
		options = DefaultGeneratorOptions()
	}
	return &Generator{
		options: options,
		cards:   make([]Card, 0),
	}
}

// AddCard adds a card to the collection
func (g *Generator) AddCard(card Card) {
	g.cards = append(g.cards, card)
}

// AddWords adds one card per word bank entry
func (g *Generator) AddWords(words []wordbank.Word) {
	for _, w := range words {
		g.AddCard(CardFromWord(w))
	}
}

// Cards returns the collected cards
func (g *Generator) Cards() []Card {
	return g.cards
}

// CardFromWord turns a word bank entry into a card. The category becomes
// the tag, with spaces replaced since Anki splits tags on whitespace.
func CardFromWord(w wordbank.Word) Card {
	card := Card{
		Greek:        w.Greek,
		Romanization: w.Romanization,
		English:      w.English,
		Tags:         strings.Join(strings.Fields(w.Category), "_"),
	}

	var example []string
	if w.GreekSentence != "" {
		example = append(example, w.GreekSentence)
	}
	if w.SentenceRomanization != "" {
		example = append(example, "<i>"+w.SentenceRomanization+"</i>")
	}
	if w.EnglishSentence != "" {
		example = append(example, w.EnglishSentence)
	}
	card.Example = strings.Join(example, "<br>")
	return card
}

// GenerateCSV creates the CSV file at the configured output path
func (g *Generator) GenerateCSV() error {
	file, err := os.Create(g.options.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	return g.WriteCSV(file)
}

// WriteCSV writes the cards as CSV to w
func (g *Generator) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	if g.options.Separator != 0 {
		writer.Comma = g.options.Separator
	}

	if g.options.IncludeHeaders {
		headers := []string{"Greek", "Romanization", "English", "Example", "Tags"}
		if err := writer.Write(headers); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	for _, card := range g.cards {
		record := []string{card.Greek, card.Romanization, card.English, card.Example, card.Tags}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write card: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// Stats returns statistics about the card collection
func (g *Generator) Stats() (totalCards, withExamples int) {
	totalCards = len(g.cards)
	for _, card := range g.cards {
		if card.Example != "" {
			withExamples++
		}
	}
	return
}
