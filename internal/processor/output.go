package processor

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"codeberg.org/snonux/glossa/internal/translation"
)

// Output is the printed form of a translation result.
type Output struct {
	Query     string `json:"query" yaml:"query"`
	Direction string `json:"direction" yaml:"direction"`
	Text      string `json:"text,omitempty" yaml:"text,omitempty"`
	Phonetic  string `json:"phonetic,omitempty" yaml:"phonetic,omitempty"`
	Status    string `json:"status" yaml:"status"`
	Message   string `json:"message,omitempty" yaml:"message,omitempty"`
}

func newOutput(query string, dir translation.Direction, r translation.Result) Output {
	out := Output{
		Query:     query,
		Direction: dir.String(),
		Text:      r.Text,
		Phonetic:  r.Phonetic,
		Status:    r.Status.String(),
	}
	if r.Status.Kind == translation.StatusError {
		out.Status = "error"
		out.Message = r.Status.Message
	}
	return out
}

func writeResults(w io.Writer, format string, outputs []Output) error {
	if format != "text" {
		if len(outputs) == 1 {
			return encode(w, format, outputs[0])
		}
		return encode(w, format, outputs)
	}

	for _, o := range outputs {
		var line string
		switch {
		case o.Message != "":
			line = fmt.Sprintf("%s: %s [%s]", o.Query, o.Message, o.Status)
		case o.Text == "":
			line = fmt.Sprintf("%s: [%s]", o.Query, o.Status)
		case o.Phonetic != "":
			line = fmt.Sprintf("%s = %s (%s) [%s]", o.Query, o.Text, o.Phonetic, o.Status)
		default:
			line = fmt.Sprintf("%s = %s [%s]", o.Query, o.Text, o.Status)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
