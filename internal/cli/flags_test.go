package cli

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"Format", flags.Format, "text"},
		{"LogLevel", flags.LogLevel, "warn"},
		{"LogFormat", flags.LogFormat, "text"},
		{"Direction", flags.Direction, "en-el"},
		{"Workers", flags.Workers, 4},
		{"Provider", flags.Provider, "openai"},
		{"BaseURL", flags.BaseURL, "https://text.pollinations.ai/openai"},
		{"Model", flags.Model, "openai"},
		{"Timeout", flags.Timeout, 3 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.expected) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	boolTests := []struct {
		name  string
		value bool
	}{
		{"Offline", flags.Offline},
		{"ListModels", flags.ListModels},
	}

	for _, tt := range boolTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value {
				t.Errorf("%s = %v, want false", tt.name, tt.value)
			}
		})
	}

	stringTests := []struct {
		name  string
		value string
	}{
		{"CfgFile", flags.CfgFile},
		{"BatchFile", flags.BatchFile},
		{"ExtraEntries", flags.ExtraEntries},
	}

	for _, tt := range stringTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Errorf("%s = %v, want empty string", tt.name, tt.value)
			}
		})
	}

	if !strings.HasSuffix(flags.WordBankPath, "words.db") {
		t.Errorf("Expected word bank path ending in words.db, got %s", flags.WordBankPath)
	}
}
