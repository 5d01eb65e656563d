package processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"

	"codeberg.org/snonux/glossa/internal/batch"
	"codeberg.org/snonux/glossa/internal/cli"
	"codeberg.org/snonux/glossa/internal/lexicon"
	"codeberg.org/snonux/glossa/internal/models"
	"codeberg.org/snonux/glossa/internal/script"
	"codeberg.org/snonux/glossa/internal/translation"
	"codeberg.org/snonux/glossa/internal/tutor"
)

// ErrUnavailable is returned when a single query could not be translated.
var ErrUnavailable = errors.New(translation.UnavailableMessage)

// Processor handles the main translation logic
type Processor struct {
	flags  *cli.Flags
	out    io.Writer
	logger *slog.Logger
}

// NewProcessor creates a new processor writing results to stdout
func NewProcessor(flags *cli.Flags) *Processor {
	return &Processor{
		flags:  flags,
		out:    os.Stdout,
		logger: slog.Default(),
	}
}

// ProcessQuery translates a single query given on the command line
func (p *Processor) ProcessQuery(ctx context.Context, query string) error {
	format, err := p.format()
	if err != nil {
		return err
	}

	dir, err := p.direction(query)
	if err != nil {
		return err
	}

	o, err := p.newOrchestrator(ctx)
	if err != nil {
		return err
	}

	result := o.Resolve(ctx, query, dir)
	if err := writeResults(p.out, format, []Output{newOutput(query, dir, result)}); err != nil {
		return err
	}

	switch result.Status.Kind {
	case translation.StatusError:
		return ErrUnavailable
	case translation.StatusIdle:
		return fmt.Errorf("nothing to translate")
	}
	return nil
}

// ProcessBatch translates every query of the batch file
func (p *Processor) ProcessBatch(ctx context.Context) error {
	format, err := p.format()
	if err != nil {
		return err
	}

	queries, err := batch.ReadQueryFile(p.flags.BatchFile)
	if err != nil {
		return err
	}

	for i, q := range queries {
		if q.Forced {
			continue
		}
		if queries[i].Direction, err = p.direction(q.Text); err != nil {
			return err
		}
	}

	o, err := p.newOrchestrator(ctx)
	if err != nil {
		return err
	}

	workers := viper.GetInt("batch.workers")
	if workers == 0 {
		workers = p.flags.Workers
	}
	items, err := batch.Resolve(ctx, o, queries, workers)
	if err != nil {
		return fmt.Errorf("batch translation interrupted: %w", err)
	}

	outputs := make([]Output, 0, len(items))
	counts := map[translation.StatusKind]int{}
	for _, item := range items {
		outputs = append(outputs, newOutput(item.Query.Text, item.Query.Direction, item.Result))
		counts[item.Result.Status.Kind]++
	}
	if err := writeResults(p.out, format, outputs); err != nil {
		return err
	}

	p.logger.Info("batch finished",
		"queries", len(items),
		"dictionary", counts[translation.StatusDictionary],
		"detected_greek", counts[translation.StatusDetectedGreek],
		"machine", counts[translation.StatusMachine],
		"errors", counts[translation.StatusError])
	return nil
}

// ListModels prints the chat models of the configured endpoint
func (p *Processor) ListModels(ctx context.Context) error {
	baseURL := viper.GetString("translation.base_url")
	if baseURL == "" {
		baseURL = p.flags.BaseURL
	}
	lister := models.NewLister(baseURL, apiKeyFor(baseURL))
	return lister.PrintChatModels(ctx, p.out)
}

// Ask sends question to the tutor and prints the answer
func (p *Processor) Ask(ctx context.Context, question string) error {
	format, err := p.format()
	if err != nil {
		return err
	}

	t := tutor.NewOffline()
	if !p.flags.Offline {
		t = tutor.New(p.tutorConfig())
	}

	answer := t.Ask(ctx, question)
	if answer.Offline {
		p.logger.Warn("tutor unavailable, showing offline answer")
	}

	if format == "text" {
		_, err := fmt.Fprintln(p.out, tutor.StripMarkdown(answer.Text))
		return err
	}
	return encode(p.out, format, struct {
		Answer  string `json:"answer" yaml:"answer"`
		Offline bool   `json:"offline" yaml:"offline"`
	}{answer.Text, answer.Offline})
}

func (p *Processor) newOrchestrator(ctx context.Context) (*translation.Orchestrator, error) {
	lex, err := loadLexicon(viper.GetString("lexicon.extra_entries"))
	if err != nil {
		return nil, err
	}

	var remote translation.Remote
	if !p.flags.Offline {
		remote, err = translation.NewRemote(ctx, p.remoteConfig())
		if err != nil {
			return nil, fmt.Errorf("failed to create remote translator: %w", err)
		}
	}

	logger := p.logger
	return translation.NewOrchestrator(lex, remote,
		translation.WithTimeout(viper.GetDuration("translation.timeout")),
		translation.WithLogger(logger),
		translation.WithStatusHook(func(requestID string, s translation.Status) {
			logger.Debug("translation status", "request_id", requestID, "status", s.String())
		}),
	), nil
}

func loadLexicon(extraEntries string) (*lexicon.Lexicon, error) {
	if extraEntries == "" {
		return lexicon.Default(), nil
	}

	extra, err := lexicon.LoadEntries(extraEntries)
	if err != nil {
		return nil, err
	}
	lex := lexicon.New(append(lexicon.DefaultEntries(), extra...)...)
	slog.Debug("loaded extra dictionary entries", "file", extraEntries, "entries", len(extra), "keys", lex.Len())
	return lex, nil
}

func (p *Processor) remoteConfig() *translation.Config {
	config := translation.DefaultConfig()
	if provider := viper.GetString("translation.provider"); provider != "" {
		config.Provider = provider
	}
	if baseURL := viper.GetString("translation.base_url"); baseURL != "" {
		config.BaseURL = baseURL
	}
	if model := viper.GetString("translation.model"); model != "" {
		config.Model = model
	}
	if viper.IsSet("translation.temperature") {
		config.Temperature = float32(viper.GetFloat64("translation.temperature"))
	}
	if n := viper.GetInt("translation.max_tokens"); n > 0 {
		config.MaxTokens = n
	}
	if viper.IsSet("breaker.max_failures") {
		config.BreakerMaxFailures = viper.GetUint32("breaker.max_failures")
	}
	if d := viper.GetDuration("breaker.open_timeout"); d > 0 {
		config.BreakerOpenTimeout = d
	}

	if config.Provider == "gemini" {
		config.APIKey = cli.GetGeminiKey()
	} else {
		config.APIKey = apiKeyFor(config.BaseURL)
	}
	return config
}

func (p *Processor) tutorConfig() *tutor.Config {
	config := tutor.DefaultConfig()
	if baseURL := viper.GetString("translation.base_url"); baseURL != "" {
		config.BaseURL = baseURL
	}
	config.APIKey = apiKeyFor(config.BaseURL)
	if model := viper.GetString("tutor.model"); model != "" {
		config.Model = model
	}
	if n := viper.GetInt("tutor.max_tokens"); n > 0 {
		config.MaxTokens = n
	}
	if d := viper.GetDuration("tutor.timeout"); d > 0 {
		config.Timeout = d
	}
	return config
}

// apiKeyFor keeps OPENAI_API_KEY away from the public keyless endpoint.
func apiKeyFor(baseURL string) string {
	if baseURL == translation.DefaultBaseURL {
		return viper.GetString("translation.api_key")
	}
	return cli.GetOpenAIKey()
}

func (p *Processor) direction(text string) (translation.Direction, error) {
	value := viper.GetString("translation.direction")
	if value == "" {
		value = p.flags.Direction
	}

	if strings.EqualFold(strings.TrimSpace(value), "auto") {
		if script.IsGreekScript(text) {
			return translation.GreekToEnglish, nil
		}
		return translation.EnglishToGreek, nil
	}
	return translation.ParseDirection(value)
}

func (p *Processor) format() (string, error) {
	format := strings.ToLower(viper.GetString("output.format"))
	if format == "" {
		format = p.flags.Format
	}
	switch format {
	case "text", "json", "yaml":
		return format, nil
	default:
		return "", fmt.Errorf("invalid output format %q: must be text, json or yaml", format)
	}
}
