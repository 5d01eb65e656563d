package translation

import "testing"

func TestDirectionLanguages(t *testing.T) {
	tests := []struct {
		dir    Direction
		source string
		target string
		name   string
	}{
		{EnglishToGreek, "en", "el", "en-el"},
		{GreekToEnglish, "el", "en", "el-en"},
	}

	for _, tt := range tests {
		source, target := tt.dir.Languages()
		if source != tt.source || target != tt.target {
			t.Errorf("%v.Languages() = (%s, %s), want (%s, %s)", tt.dir, source, target, tt.source, tt.target)
		}
		if tt.dir.String() != tt.name {
			t.Errorf("Expected String() %q, got %q", tt.name, tt.dir.String())
		}
	}
}

func TestDirectionLanguages_InvalidPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for invalid direction")
		}
	}()
	Direction(42).Languages()
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"en-el", EnglishToGreek, false},
		{"EL-EN", GreekToEnglish, false},
		{" en-el ", EnglishToGreek, false},
		{"auto", 0, true},
		{"", 0, true},
		{"en-fr", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDirection(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseDirection(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLanguageName(t *testing.T) {
	tests := map[string]string{
		"en": "English",
		"el": "Greek",
		"lt": "Lithuanian",
		"no": "Norwegian",
		"EN": "English",
		"El": "Greek",
		"xx": "XX",
		"":   "",
	}
	for code, want := range tests {
		if got := LanguageName(code); got != want {
			t.Errorf("LanguageName(%q) = %q, want %q", code, got, want)
		}
	}

	if len(languageNames) != 34 {
		t.Errorf("Expected 34 known languages, got %d", len(languageNames))
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{Status{Kind: StatusIdle}, "idle"},
		{Status{Kind: StatusLoading}, "loading"},
		{Status{Kind: StatusDictionary}, "dictionary"},
		{Status{Kind: StatusMachine}, "machine"},
		{Status{Kind: StatusDetectedGreek}, "detected-greek"},
		{ErrorStatus(UnavailableMessage), "error: Translation unavailable"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}

	if (Status{Kind: StatusLoading}).Terminal() {
		t.Error("Loading must not be terminal")
	}
	if !ErrorStatus("x").Terminal() {
		t.Error("Error must be terminal")
	}
}
