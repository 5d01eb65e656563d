package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"codeberg.org/snonux/glossa/internal/translation"
)

func TestReadQueryFile(t *testing.T) {
	tests := []struct {
		name        string
		fileContent string
		want        []Query
	}{
		{
			name:        "empty file",
			fileContent: "",
			want:        nil,
		},
		{
			name:        "only whitespace",
			fileContent: "   \n\t\r\n   ",
			want:        nil,
		},
		{
			name: "plain queries",
			fileContent: `apple
coffee maker
red car`,
			want: []Query{
				{Text: "apple"},
				{Text: "coffee maker"},
				{Text: "red car"},
			},
		},
		{
			name: "direction prefixes",
			fileContent: `en: ladder
el: καφετιέρα
EL:μήλο
stapler`,
			want: []Query{
				{Text: "ladder", Direction: translation.EnglishToGreek, Forced: true},
				{Text: "καφετιέρα", Direction: translation.GreekToEnglish, Forced: true},
				{Text: "μήλο", Direction: translation.GreekToEnglish, Forced: true},
				{Text: "stapler"},
			},
		},
		{
			name: "comments and empty prefixes",
			fileContent: `# kitchen
  apple  

en:
# el: skipped
el:   
fork`,
			want: []Query{
				{Text: "apple"},
				{Text: "fork"},
			},
		},
		{
			name:        "windows line endings",
			fileContent: "apple\r\nen: fork\r\nknife",
			want: []Query{
				{Text: "apple"},
				{Text: "fork", Direction: translation.EnglishToGreek, Forced: true},
				{Text: "knife"},
			},
		},
		{
			name:        "prefix-like words stay plain",
			fileContent: "enamel mug\nelephant",
			want: []Query{
				{Text: "enamel mug"},
				{Text: "elephant"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpFile := filepath.Join(t.TempDir(), "queries.txt")
			if err := os.WriteFile(tmpFile, []byte(tt.fileContent), 0644); err != nil {
				t.Fatalf("Failed to create test file: %v", err)
			}

			got, err := ReadQueryFile(tmpFile)
			if err != nil {
				t.Fatalf("ReadQueryFile() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ReadQueryFile() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadQueryFile_NonExistent(t *testing.T) {
	_, err := ReadQueryFile("/non/existent/file.txt")
	if err == nil {
		t.Error("Expected error for non-existent file")
	}
}
