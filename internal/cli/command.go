package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/glossa/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "glossa [text]",
		Short: "Greek object and word translator",
		Long: `glossa translates object names, as produced by OCR or image labelling,
between English and Greek.

It looks words up in a built-in Greek dictionary first, keeps text that is
already Greek as is, and only asks a remote chat model for anything else.

Examples:
  glossa "coffee maker"                # Dictionary lookup, prints καφετιέρα
  glossa --direction el-en καφετιέρα   # Greek to English via the remote model
  glossa --direction auto "Καλημέρα"   # Detect the direction from the script
  glossa --batch objects.txt           # Translate one query per line
  glossa ask "How do I say thank you?" # Ask the Greek tutor
  glossa words --search water          # Browse the word bank`,
		Args:    cobra.ArbitraryArgs,
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

// CreateAskCommand creates the tutor subcommand
func CreateAskCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask the Greek language tutor",
		Long: `Ask the Greek language tutor a free-form question. Answers are given in
the language of the question with romanized Greek examples. When the model
cannot be reached a built-in offline answer is shown.`,
		Args: cobra.MinimumNArgs(1),
	}
}

// CreateWordsCommand creates the word bank subcommand
func CreateWordsCommand(wf *WordsFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Browse the Greek word bank",
		Long: `Import a JSON word list into the word bank and browse it by category,
search term, id or as a random practice set.`,
		Args: cobra.NoArgs,
	}

	cmd.Flags().StringVar(&wf.Import, "import", "", "Import words from a JSON file")
	cmd.Flags().BoolVar(&wf.Categories, "categories", false, "List categories")
	cmd.Flags().StringVar(&wf.Category, "category", "", "List words of a category")
	cmd.Flags().StringVar(&wf.Search, "search", "", "Search words, meanings and sentences")
	cmd.Flags().StringVar(&wf.ID, "id", "", "Show a single word")
	cmd.Flags().IntVar(&wf.Random, "random", 0, "Show N random words")
	cmd.Flags().StringVar(&wf.Anki, "anki", "", "Export the selected words as an Anki CSV file")
	cmd.Flags().BoolVar(&wf.Archive, "archive", false, "Move the word bank to the archive directory")

	return cmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.glossa.yaml)")
	cmd.PersistentFlags().StringVarP(&flags.Format, "format", "f", flags.Format, "Output format: text, json or yaml")
	cmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&flags.LogFormat, "log-format", flags.LogFormat, "Log format: text or json")
	cmd.PersistentFlags().BoolVar(&flags.Offline, "offline", false, "Never contact a remote model")
	cmd.PersistentFlags().StringVar(&flags.WordBankPath, "db", flags.WordBankPath, "Word bank database file")

	// Remote model flags
	cmd.PersistentFlags().StringVar(&flags.Provider, "provider", flags.Provider, "Remote translator: openai (any compatible endpoint) or gemini")
	cmd.PersistentFlags().StringVar(&flags.BaseURL, "base-url", flags.BaseURL, "Base URL of the OpenAI-compatible endpoint")
	cmd.PersistentFlags().StringVar(&flags.Model, "model", flags.Model, "Chat model used for translation")
	cmd.PersistentFlags().DurationVar(&flags.Timeout, "timeout", flags.Timeout, "Deadline for a single remote translation")

	// Local flags
	cmd.Flags().StringVarP(&flags.Direction, "direction", "d", flags.Direction, "Translation direction: en-el, el-en or auto")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Translate queries from file (one per line)")
	cmd.Flags().IntVar(&flags.Workers, "workers", flags.Workers, "Concurrent remote requests in batch mode")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List chat models offered by the endpoint")
	cmd.Flags().StringVar(&flags.ExtraEntries, "entries", "", "YAML file with additional dictionary entries")

	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("output.format", cmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("log.level", cmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.format", cmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("wordbank.path", cmd.PersistentFlags().Lookup("db"))
	viper.BindPFlag("translation.provider", cmd.PersistentFlags().Lookup("provider"))
	viper.BindPFlag("translation.base_url", cmd.PersistentFlags().Lookup("base-url"))
	viper.BindPFlag("translation.model", cmd.PersistentFlags().Lookup("model"))
	viper.BindPFlag("translation.timeout", cmd.PersistentFlags().Lookup("timeout"))
	viper.BindPFlag("translation.direction", cmd.Flags().Lookup("direction"))
	viper.BindPFlag("batch.workers", cmd.Flags().Lookup("workers"))
	viper.BindPFlag("lexicon.extra_entries", cmd.Flags().Lookup("entries"))
}

func setDefaults() {
	viper.SetDefault("translation.temperature", 1.0)
	viper.SetDefault("translation.max_tokens", 500)
	viper.SetDefault("breaker.max_failures", 5)
	viper.SetDefault("breaker.open_timeout", 30*time.Second)
	viper.SetDefault("tutor.model", "openai")
	viper.SetDefault("tutor.max_tokens", 1500)
	viper.SetDefault("tutor.timeout", 120*time.Second)
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	setDefaults()

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".glossa" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".glossa")
	}

	// Environment variables
	viper.SetEnvPrefix("GLOSSA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("translation.api_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("translation.api_key")
}
