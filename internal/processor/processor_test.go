package processor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"codeberg.org/snonux/glossa/internal/cli"
	"codeberg.org/snonux/glossa/internal/testutil"
	"codeberg.org/snonux/glossa/internal/translation"
	"codeberg.org/snonux/glossa/internal/tutor"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func newTestProcessor(t *testing.T, baseURL string) (*Processor, *bytes.Buffer) {
	t.Helper()
	resetViper(t)

	flags := cli.NewFlags()
	if baseURL == "" {
		flags.Offline = true
	} else {
		viper.Set("translation.base_url", baseURL)
	}

	var buf bytes.Buffer
	p := NewProcessor(flags)
	p.out = &buf
	return p, &buf
}

func greekReply(userMessage string) string {
	switch {
	case strings.Contains(userMessage, "stapler"):
		return "συρραπτικό"
	case strings.Contains(userMessage, "καφετιέρα"):
		return "coffee maker"
	default:
		return "κάτι"
	}
}

func TestProcessQuery_Dictionary(t *testing.T) {
	p, buf := newTestProcessor(t, "")

	if err := p.ProcessQuery(context.Background(), "Apples"); err != nil {
		t.Fatalf("ProcessQuery failed: %v", err)
	}

	if got, want := buf.String(), "Apples = μήλο (milo) [dictionary]\n"; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestProcessQuery_MachineJSON(t *testing.T) {
	server := testutil.NewChatServer(t, greekReply)
	p, buf := newTestProcessor(t, server.URL)
	viper.Set("output.format", "json")

	if err := p.ProcessQuery(context.Background(), "stapler"); err != nil {
		t.Fatalf("ProcessQuery failed: %v", err)
	}

	var got Output
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("Failed to decode output %q: %v", buf.String(), err)
	}
	want := Output{
		Query:     "stapler",
		Direction: "en-el",
		Text:      "συρραπτικό",
		Phonetic:  "syrraptiko",
		Status:    "machine",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Output mismatch (-want +got):\n%s", diff)
	}
	if server.Requests() != 1 {
		t.Errorf("Expected 1 request, got %d", server.Requests())
	}
}

func TestProcessQuery_AutoDirection(t *testing.T) {
	server := testutil.NewChatServer(t, greekReply)
	p, buf := newTestProcessor(t, server.URL)
	viper.Set("translation.direction", "auto")

	if err := p.ProcessQuery(context.Background(), "καφετιέρα"); err != nil {
		t.Fatalf("ProcessQuery failed: %v", err)
	}

	if got, want := buf.String(), "καφετιέρα = coffee maker [machine]\n"; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}

	bodies := server.Bodies()
	if len(bodies) != 1 || !strings.Contains(bodies[0].Messages[1].Content, "from Greek to English") {
		t.Errorf("Expected a Greek to English request, got %+v", bodies)
	}
}

func TestProcessQuery_OfflineUnknownWord(t *testing.T) {
	p, buf := newTestProcessor(t, "")

	err := p.ProcessQuery(context.Background(), "stapler")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Expected ErrUnavailable, got %v", err)
	}
	if got, want := buf.String(), "stapler: Translation unavailable [error]\n"; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestProcessQuery_Errors(t *testing.T) {
	p, _ := newTestProcessor(t, "")

	if err := p.ProcessQuery(context.Background(), "   "); err == nil {
		t.Error("Expected error for blank query")
	}

	viper.Set("translation.direction", "sideways")
	if err := p.ProcessQuery(context.Background(), "apple"); err == nil {
		t.Error("Expected error for invalid direction")
	}

	viper.Set("translation.direction", "en-el")
	viper.Set("output.format", "xml")
	if err := p.ProcessQuery(context.Background(), "apple"); err == nil {
		t.Error("Expected error for invalid format")
	}
}

func TestProcessQuery_ExtraEntries(t *testing.T) {
	p, buf := newTestProcessor(t, "")
	path := testutil.WriteTempFile(t, "extra.yaml", "- greek: αμφορέας\n  aliases: [amphora, amphorae]\n")
	viper.Set("lexicon.extra_entries", path)

	if err := p.ProcessQuery(context.Background(), "amphora"); err != nil {
		t.Fatalf("ProcessQuery failed: %v", err)
	}
	if got, want := buf.String(), "amphora = αμφορέας (amforeas) [dictionary]\n"; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}

	viper.Set("lexicon.extra_entries", "/nonexistent/extra.yaml")
	if err := p.ProcessQuery(context.Background(), "amphora"); err == nil {
		t.Error("Expected error for missing entries file")
	}
}

func TestProcessBatch(t *testing.T) {
	server := testutil.NewChatServer(t, greekReply)
	p, buf := newTestProcessor(t, server.URL)
	p.flags.BatchFile = testutil.WriteTempFile(t, "queries.txt", "# objects\napple\nel: καφετιέρα\n\nstapler\n")

	if err := p.ProcessBatch(context.Background()); err != nil {
		t.Fatalf("ProcessBatch failed: %v", err)
	}

	want := "apple = μήλο (milo) [dictionary]\n" +
		"καφετιέρα = coffee maker [machine]\n" +
		"stapler = συρραπτικό (syrraptiko) [machine]\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("Batch output mismatch (-want +got):\n%s", diff)
	}
	if server.Requests() != 2 {
		t.Errorf("Expected 2 remote requests, got %d", server.Requests())
	}
}

func TestProcessBatch_YAML(t *testing.T) {
	p, buf := newTestProcessor(t, "")
	p.flags.BatchFile = testutil.WriteTempFile(t, "queries.txt", "apple\nstapler\n")
	viper.Set("output.format", "yaml")

	if err := p.ProcessBatch(context.Background()); err != nil {
		t.Fatalf("ProcessBatch failed: %v", err)
	}

	var got []Output
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("Failed to decode output %q: %v", buf.String(), err)
	}
	want := []Output{
		{Query: "apple", Direction: "en-el", Text: "μήλο", Phonetic: "milo", Status: "dictionary"},
		{Query: "stapler", Direction: "en-el", Status: "error", Message: translation.UnavailableMessage},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Batch output mismatch (-want +got):\n%s", diff)
	}
}

func TestProcessBatch_MissingFile(t *testing.T) {
	p, _ := newTestProcessor(t, "")
	p.flags.BatchFile = "/nonexistent/queries.txt"

	if err := p.ProcessBatch(context.Background()); err == nil {
		t.Error("Expected error for missing batch file")
	}
}

func TestListModels(t *testing.T) {
	server := testutil.NewChatServer(t, nil)
	server.Models = []string{"gpt-4o", "tts-1", "openai"}
	p, buf := newTestProcessor(t, server.URL)

	if err := p.ListModels(context.Background()); err != nil {
		t.Fatalf("ListModels failed: %v", err)
	}

	want := "Chat/Translation Models at " + server.URL + ":\n  gpt-4o\n  openai\n"
	if got := buf.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestAsk_Online(t *testing.T) {
	server := testutil.NewChatServer(t, func(string) string { return "**Γεια** σου (ya su)" })
	p, buf := newTestProcessor(t, server.URL)

	if err := p.Ask(context.Background(), "How do I say hello?"); err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if got, want := buf.String(), "Γεια σου (ya su)\n"; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestAsk_OfflineJSON(t *testing.T) {
	p, buf := newTestProcessor(t, "")
	viper.Set("output.format", "json")

	question := "How do I conjugate verbs?"
	if err := p.Ask(context.Background(), question); err != nil {
		t.Fatalf("Ask failed: %v", err)
	}

	var got struct {
		Answer  string `json:"answer"`
		Offline bool   `json:"offline"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("Failed to decode output %q: %v", buf.String(), err)
	}
	if !got.Offline {
		t.Error("Expected offline answer")
	}
	if want := tutor.NewOffline().Ask(context.Background(), question).Text; got.Answer != want {
		t.Errorf("Expected fallback answer %q, got %q", want, got.Answer)
	}
}

const wordList = `[
	{"id": "1", "category": "Food", "greek_word": "ψωμί", "romanization": "psomi", "english_meaning": "bread",
	 "greek_sentence": "Τρώω ψωμί.", "sentence_romanization": "Troo psomi.", "english_sentence": "I eat bread."},
	{"id": "2", "category": "Drinks", "greek_word": "νερό", "english_meaning": "water"},
	{"category": "Broken"}
]`

func TestProcessWords(t *testing.T) {
	p, buf := newTestProcessor(t, "")
	dbPath := filepath.Join(t.TempDir(), "state", "words.db")
	viper.Set("wordbank.path", dbPath)
	ctx := context.Background()

	importFile := testutil.WriteTempFile(t, "words.json", wordList)
	if err := p.ProcessWords(ctx, &cli.WordsFlags{Import: importFile}); err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if got, want := buf.String(), "Imported 2 words (skipped 1 malformed entries)\n"; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}

	tests := []struct {
		name  string
		flags cli.WordsFlags
		want  string
	}{
		{"categories", cli.WordsFlags{Categories: true}, "Drinks\nFood\n"},
		{"category", cli.WordsFlags{Category: "Drinks"}, "[2] νερό (nero) - water\n"},
		{"search", cli.WordsFlags{Search: "BREAD"}, "[1] ψωμί (psomi) - bread\n    Τρώω ψωμί. (Troo psomi.)\n    I eat bread.\n"},
		{"no results", cli.WordsFlags{Search: "zebra"}, "No words found\n"},
		{"food category", cli.WordsFlags{Category: "Food"}, "[1] ψωμί (psomi) - bread\n    Τρώω ψωμί. (Troo psomi.)\n    I eat bread.\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			if err := p.ProcessWords(ctx, &tt.flags); err != nil {
				t.Fatalf("ProcessWords failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, buf.String()); diff != "" {
				t.Errorf("Output mismatch (-want +got):\n%s", diff)
			}
		})
	}

	buf.Reset()
	if err := p.ProcessWords(ctx, &cli.WordsFlags{Random: 5}); err != nil {
		t.Fatalf("Random failed: %v", err)
	}
	if n := strings.Count(buf.String(), "["); n != 2 {
		t.Errorf("Expected 2 random words, got %d in %q", n, buf.String())
	}

	buf.Reset()
	if err := p.ProcessWords(ctx, &cli.WordsFlags{ID: "3"}); err == nil {
		t.Error("Expected error for unknown id")
	}
}

func TestProcessWords_JSONAndArchive(t *testing.T) {
	p, buf := newTestProcessor(t, "")
	stateDir := t.TempDir()
	dbPath := filepath.Join(stateDir, "words.db")
	viper.Set("wordbank.path", dbPath)
	ctx := context.Background()

	if err := p.ProcessWords(ctx, &cli.WordsFlags{Import: testutil.WriteTempFile(t, "words.json", wordList)}); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	viper.Set("output.format", "json")
	buf.Reset()
	if err := p.ProcessWords(ctx, &cli.WordsFlags{ID: "2"}); err != nil {
		t.Fatalf("ByID failed: %v", err)
	}
	var words []map[string]string
	if err := json.Unmarshal(buf.Bytes(), &words); err != nil {
		t.Fatalf("Failed to decode output %q: %v", buf.String(), err)
	}
	if len(words) != 1 || words[0]["greek_word"] != "νερό" || words[0]["romanization"] != "nero" {
		t.Errorf("Unexpected word output: %v", words)
	}

	buf.Reset()
	if err := p.ProcessWords(ctx, &cli.WordsFlags{Archive: true}); err != nil {
		t.Fatalf("Archive failed: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "Word bank archived to: ") {
		t.Errorf("Unexpected archive output %q", buf.String())
	}
	if _, err := os.Stat(dbPath); !os.IsNotExist(err) {
		t.Error("Word bank still exists after archiving")
	}
	entries, err := os.ReadDir(filepath.Join(stateDir, "archive"))
	if err != nil || len(entries) != 1 {
		t.Errorf("Expected one archived word bank, got %v (err %v)", entries, err)
	}
}

func TestAPIKeyFor(t *testing.T) {
	resetViper(t)
	t.Setenv("OPENAI_API_KEY", "env-key")
	viper.Set("translation.api_key", "config-key")

	if got := apiKeyFor(translation.DefaultBaseURL); got != "config-key" {
		t.Errorf("Expected config key for the default endpoint, got %q", got)
	}
	if got := apiKeyFor("http://localhost:8080/v1"); got != "env-key" {
		t.Errorf("Expected environment key for a custom endpoint, got %q", got)
	}
}

func TestRemoteConfig(t *testing.T) {
	resetViper(t)
	viper.Set("translation.provider", "gemini")
	viper.Set("translation.temperature", 0.0)
	viper.Set("breaker.max_failures", 0)
	t.Setenv("GEMINI_API_KEY", "gemini-key")

	p := NewProcessor(cli.NewFlags())
	config := p.remoteConfig()

	want := translation.DefaultConfig()
	want.Provider = "gemini"
	want.APIKey = "gemini-key"
	want.Temperature = 0
	want.BreakerMaxFailures = 0
	if diff := cmp.Diff(want, config); diff != "" {
		t.Errorf("Config mismatch (-want +got):\n%s", diff)
	}
}

func TestProcessWords_AnkiExport(t *testing.T) {
	p, buf := newTestProcessor(t, "")
	viper.Set("wordbank.path", filepath.Join(t.TempDir(), "words.db"))
	ctx := context.Background()

	if err := p.ProcessWords(ctx, &cli.WordsFlags{Import: testutil.WriteTempFile(t, "words.json", wordList)}); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	csvPath := filepath.Join(t.TempDir(), "cards.csv")
	buf.Reset()
	if err := p.ProcessWords(ctx, &cli.WordsFlags{Anki: csvPath}); err != nil {
		t.Fatalf("Anki export failed: %v", err)
	}
	if got, want := buf.String(), "Anki file created: "+csvPath+" (2 cards, 1 with examples)\n"; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
	testutil.AssertFileContains(t, csvPath, "νερό,nero,water,,Drinks")

	buf.Reset()
	if err := p.ProcessWords(ctx, &cli.WordsFlags{Category: "Drinks", Anki: csvPath}); err != nil {
		t.Fatalf("Anki export failed: %v", err)
	}
	if !strings.Contains(buf.String(), "(1 cards, 0 with examples)") {
		t.Errorf("Expected a single exported card, got %q", buf.String())
	}
}

func TestNewProcessor_WritesToStdout(t *testing.T) {
	resetViper(t)
	flags := cli.NewFlags()
	flags.Offline = true

	var err error
	out := testutil.CaptureOutput(t, func() {
		err = NewProcessor(flags).ProcessQuery(context.Background(), "banana")
	})
	if err != nil {
		t.Fatalf("ProcessQuery failed: %v", err)
	}
	if want := "banana = μπανάνα (mpanana) [dictionary]\n"; out != want {
		t.Errorf("Expected %q, got %q", want, out)
	}
}
