package cli

import (
	"os"
	"path/filepath"
	"time"

	"codeberg.org/snonux/glossa/internal/translation"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile   string
	Format    string
	LogLevel  string
	LogFormat string
	Offline   bool

	// Translation flags
	Direction    string
	BatchFile    string
	Workers      int
	ListModels   bool
	ExtraEntries string

	// Remote flags
	Provider string
	BaseURL  string
	Model    string
	Timeout  time.Duration

	// Word bank flags
	WordBankPath string
}

// WordsFlags holds the flags of the words subcommand
type WordsFlags struct {
	Import     string
	Categories bool
	Category   string
	Search     string
	ID         string
	Random     int
	Archive    bool
	Anki       string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Format:       "text",
		LogLevel:     "warn",
		LogFormat:    "text",
		Direction:    "en-el",
		Workers:      4,
		Provider:     "openai",
		BaseURL:      translation.DefaultBaseURL,
		Model:        translation.DefaultChatModel,
		Timeout:      translation.DefaultTimeout,
		WordBankPath: defaultWordBankPath(),
	}
}

func defaultWordBankPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "glossa-words.db"
	}
	return filepath.Join(home, ".local", "state", "glossa", "words.db")
}
