package wordbank

// Word is a vocabulary entry with an example sentence.
type Word struct {
	ID                   string `json:"id" yaml:"id"`
	Category             string `json:"category" yaml:"category"`
	Greek                string `json:"greek_word" yaml:"greek_word"`
	Romanization         string `json:"romanization" yaml:"romanization"`
	English              string `json:"english_meaning" yaml:"english_meaning"`
	GreekSentence        string `json:"greek_sentence" yaml:"greek_sentence"`
	SentenceRomanization string `json:"sentence_romanization" yaml:"sentence_romanization"`
	EnglishSentence      string `json:"english_sentence" yaml:"english_sentence"`
}
