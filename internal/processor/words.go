package processor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"codeberg.org/snonux/glossa/internal/anki"
	"codeberg.org/snonux/glossa/internal/archive"
	"codeberg.org/snonux/glossa/internal/cli"
	"codeberg.org/snonux/glossa/internal/wordbank"
)

// ProcessWords runs the word bank subcommand
func (p *Processor) ProcessWords(ctx context.Context, wf *cli.WordsFlags) error {
	format, err := p.format()
	if err != nil {
		return err
	}

	path := viper.GetString("wordbank.path")
	if path == "" {
		path = p.flags.WordBankPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create word bank directory: %w", err)
	}

	if wf.Archive {
		archived, err := archive.ArchiveFile(path)
		if err != nil {
			return fmt.Errorf("failed to archive word bank: %w", err)
		}
		fmt.Fprintf(p.out, "Word bank archived to: %s\n", archived)
		return nil
	}

	store, err := wordbank.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	if wf.Import != "" {
		return p.importWords(ctx, store, wf.Import)
	}

	var words []wordbank.Word
	switch {
	case wf.ID != "":
		w, err := store.ByID(ctx, wf.ID)
		if err != nil {
			return err
		}
		words = []wordbank.Word{w}
	case wf.Category != "":
		words, err = store.ByCategory(ctx, wf.Category)
	case wf.Search != "":
		words, err = store.Search(ctx, wf.Search)
	case wf.Random > 0:
		words, err = store.Random(ctx, wf.Random)
	case wf.Anki != "":
		words, err = store.All(ctx)
	default:
		return p.printCategories(ctx, store, format)
	}
	if err != nil {
		return err
	}

	if wf.Anki != "" {
		return p.exportAnki(words, wf.Anki)
	}
	return writeWords(p.out, format, words)
}

func (p *Processor) printCategories(ctx context.Context, store *wordbank.Store, format string) error {
	categories, err := store.Categories(ctx)
	if err != nil {
		return err
	}
	if format != "text" {
		if categories == nil {
			categories = []string{}
		}
		return encode(p.out, format, categories)
	}
	for _, c := range categories {
		fmt.Fprintln(p.out, c)
	}
	return nil
}

func (p *Processor) exportAnki(words []wordbank.Word, path string) error {
	options := anki.DefaultGeneratorOptions()
	options.OutputPath = path

	gen := anki.NewGenerator(options)
	gen.AddWords(words)
	if err := gen.GenerateCSV(); err != nil {
		return err
	}

	total, withExamples := gen.Stats()
	fmt.Fprintf(p.out, "Anki file created: %s (%d cards, %d with examples)\n", path, total, withExamples)
	return nil
}

func (p *Processor) importWords(ctx context.Context, store *wordbank.Store, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()

	words, skipped, err := wordbank.Parse(f)
	if err != nil {
		return err
	}

	n, err := store.Import(ctx, words)
	if err != nil {
		return err
	}

	fmt.Fprintf(p.out, "Imported %d words", n)
	if skipped > 0 {
		fmt.Fprintf(p.out, " (skipped %d malformed entries)", skipped)
	}
	fmt.Fprintln(p.out)
	return nil
}

func writeWords(w io.Writer, format string, words []wordbank.Word) error {
	if format != "text" {
		if words == nil {
			words = []wordbank.Word{}
		}
		return encode(w, format, words)
	}

	if len(words) == 0 {
		_, err := fmt.Fprintln(w, "No words found")
		return err
	}

	for _, word := range words {
		fmt.Fprintf(w, "[%s] %s (%s) - %s\n", word.ID, word.Greek, word.Romanization, word.English)
		if word.GreekSentence != "" {
			fmt.Fprintf(w, "    %s", word.GreekSentence)
			if word.SentenceRomanization != "" {
				fmt.Fprintf(w, " (%s)", word.SentenceRomanization)
			}
			fmt.Fprintln(w)
		}
		if word.EnglishSentence != "" {
			fmt.Fprintf(w, "    %s\n", word.EnglishSentence)
		}
	}
	return nil
}
