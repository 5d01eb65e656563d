package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestCreateRootCommand(t *testing.T) {
	resetViper(t)

	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	if cmd.Use != "glossa [text]" {
		t.Errorf("Expected Use to be 'glossa [text]', got %s", cmd.Use)
	}

	if !strings.Contains(cmd.Short, "Greek") {
		t.Errorf("Expected Short description to mention Greek, got %s", cmd.Short)
	}

	flagTests := []struct {
		name       string
		persistent bool
	}{
		{"config", true},
		{"format", true},
		{"log-level", true},
		{"log-format", true},
		{"offline", true},
		{"db", true},
		{"provider", true},
		{"base-url", true},
		{"model", true},
		{"timeout", true},
		{"direction", false},
		{"batch", false},
		{"workers", false},
		{"list-models", false},
		{"entries", false},
	}

	for _, tt := range flagTests {
		t.Run("flag_"+tt.name, func(t *testing.T) {
			var flag *pflag.Flag
			if tt.persistent {
				flag = cmd.PersistentFlags().Lookup(tt.name)
			} else {
				flag = cmd.Flags().Lookup(tt.name)
			}
			if flag == nil {
				t.Errorf("Expected flag %s to exist", tt.name)
			}
		})
	}
}

func TestSetupFlags(t *testing.T) {
	resetViper(t)

	cmd := &cobra.Command{}
	setupFlags(cmd, NewFlags())

	defaults := map[string]string{
		"direction": "en-el",
		"workers":   "4",
	}
	for name, want := range defaults {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			t.Fatalf("%s flag not found", name)
		}
		if flag.DefValue != want {
			t.Errorf("Expected default %s to be %s, got %s", name, want, flag.DefValue)
		}
	}

	persistentDefaults := map[string]string{
		"format":   "text",
		"base-url": "https://text.pollinations.ai/openai",
		"model":    "openai",
		"timeout":  "3s",
	}
	for name, want := range persistentDefaults {
		flag := cmd.PersistentFlags().Lookup(name)
		if flag == nil {
			t.Fatalf("%s flag not found", name)
		}
		if flag.DefValue != want {
			t.Errorf("Expected default %s to be %s, got %s", name, want, flag.DefValue)
		}
	}
}

func TestCreateWordsCommand(t *testing.T) {
	wf := &WordsFlags{}
	cmd := CreateWordsCommand(wf)

	if err := cmd.ParseFlags([]string{"--search", "water", "--random", "3", "--anki", "cards.csv", "--archive"}); err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if wf.Search != "water" || wf.Random != 3 || wf.Anki != "cards.csv" || !wf.Archive {
		t.Errorf("Unexpected words flags: %+v", wf)
	}
}

func TestCreateAskCommand(t *testing.T) {
	cmd := CreateAskCommand()
	if err := cmd.Args(cmd, nil); err == nil {
		t.Error("Expected ask to require a question")
	}
}

func TestInitConfig(t *testing.T) {
	resetViper(t)

	cfgPath := filepath.Join(t.TempDir(), "glossa.yaml")
	content := `translation:
  provider: gemini
  api_key: test-key
  timeout: 5s
tutor:
  model: mistral
`
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test config: %v", err)
	}

	InitConfig(cfgPath)

	if viper.GetString("translation.provider") != "gemini" {
		t.Errorf("Expected provider gemini, got %s", viper.GetString("translation.provider"))
	}
	if viper.GetDuration("translation.timeout") != 5*time.Second {
		t.Errorf("Expected 5s timeout, got %v", viper.GetDuration("translation.timeout"))
	}
	if viper.GetString("tutor.model") != "mistral" {
		t.Errorf("Expected tutor model mistral, got %s", viper.GetString("tutor.model"))
	}
	if viper.GetInt("translation.max_tokens") != 500 {
		t.Errorf("Expected default max tokens 500, got %d", viper.GetInt("translation.max_tokens"))
	}
	if viper.GetDuration("tutor.timeout") != 120*time.Second {
		t.Errorf("Expected default tutor timeout 120s, got %v", viper.GetDuration("tutor.timeout"))
	}
}

func TestInitConfig_Environment(t *testing.T) {
	resetViper(t)
	t.Setenv("GLOSSA_TEST_VAR", "test-value")
	t.Setenv("GLOSSA_BREAKER_MAX_FAILURES", "9")

	InitConfig(filepath.Join(t.TempDir(), "missing.yaml"))

	if viper.GetString("test_var") != "test-value" {
		t.Error("Environment variable not properly loaded")
	}
	if viper.GetInt("breaker.max_failures") != 9 {
		t.Errorf("Expected nested key from environment, got %d", viper.GetInt("breaker.max_failures"))
	}
}

func TestGetOpenAIKey(t *testing.T) {
	tests := []struct {
		name      string
		envKey    string
		configKey string
		expected  string
	}{
		{"from environment", "env-test-key", "config-test-key", "env-test-key"},
		{"from config when no env", "", "config-test-key", "config-test-key"},
		{"empty when neither set", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper(t)
			t.Setenv("OPENAI_API_KEY", tt.envKey)

			if tt.configKey != "" {
				viper.Set("translation.api_key", tt.configKey)
			}

			if got := GetOpenAIKey(); got != tt.expected {
				t.Errorf("GetOpenAIKey() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetGeminiKey(t *testing.T) {
	resetViper(t)
	t.Setenv("GEMINI_API_KEY", "gemini-key")
	viper.Set("translation.api_key", "config-key")

	if got := GetGeminiKey(); got != "gemini-key" {
		t.Errorf("GetGeminiKey() = %v, want gemini-key", got)
	}
}

func TestBindFlagsToViper(t *testing.T) {
	resetViper(t)

	cmd := &cobra.Command{}
	setupFlags(cmd, NewFlags())

	cmd.PersistentFlags().Set("model", "mistral")
	cmd.PersistentFlags().Set("timeout", "750ms")
	cmd.Flags().Set("direction", "el-en")
	cmd.Flags().Set("entries", "/tmp/extra.yaml")

	if viper.GetString("translation.model") != "mistral" {
		t.Errorf("Expected translation.model to be mistral, got %s", viper.GetString("translation.model"))
	}
	if viper.GetDuration("translation.timeout") != 750*time.Millisecond {
		t.Errorf("Expected translation.timeout to be 750ms, got %v", viper.GetDuration("translation.timeout"))
	}
	if viper.GetString("translation.direction") != "el-en" {
		t.Errorf("Expected translation.direction to be el-en, got %s", viper.GetString("translation.direction"))
	}
	if viper.GetString("lexicon.extra_entries") != "/tmp/extra.yaml" {
		t.Errorf("Expected lexicon.extra_entries to be set, got %s", viper.GetString("lexicon.extra_entries"))
	}
}
