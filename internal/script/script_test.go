package script

import "testing"

func TestContainsGreek(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"empty", "", false},
		{"english", "apple", false},
		{"greek word", "μήλο", true},
		{"mixed", "red μήλο", true},
		{"uppercase greek", "ΚΑΛΗΜΕΡΑ", true},
		{"cyrillic", "ябълка", false},
		{"digits and punctuation", "123 !?", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsGreek(tt.text); got != tt.want {
				t.Errorf("ContainsGreek(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestValidateGreekText(t *testing.T) {
	if err := ValidateGreekText("μήλο"); err != nil {
		t.Errorf("Expected no error for Greek text, got %v", err)
	}
	if err := ValidateGreekText("   "); err == nil {
		t.Error("Expected error for blank text")
	}
	if err := ValidateGreekText("apple"); err == nil {
		t.Error("Expected error for non-Greek text")
	}
}

func TestTransliterate(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"μήλο", "milo"},
		{"Καλημέρα", "kalimera"},
		{"ευχαριστώ", "evcharisto"},
		{"Γεια σου", "geia sou"},
		{"  ΟΥΡΑΝΟΣ  ", "ouranos"},
		{"ψωμί", "psomi"},
		{"θάλασσα", "thalassa"},
		{"καφές   και", "kafes kai"},
		{"apple", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := Transliterate(tt.text); got != tt.want {
				t.Errorf("Transliterate(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestTransliterate_UnmappedPassThrough(t *testing.T) {
	// ϊ is in the Greek block but has no entry in the letter table.
	got := Transliterate("ϊ1")
	if got != "ϊ1" {
		t.Errorf("Expected unmapped characters to pass through, got %q", got)
	}
}

func TestIsGreekScript(t *testing.T) {
	if !IsGreekScript("Καλημέρα σας, τι κάνετε;") {
		t.Error("Expected Greek sentence to be detected as Greek script")
	}
	if IsGreekScript("good morning, how are you?") {
		t.Error("Expected English sentence not to be detected as Greek script")
	}
}
