package tutor

import (
	"strings"
	"unicode"
)

const (
	wordExplanationAnswer = "I'm sorry, I can't give a detailed explanation of this word right now. " +
		"Please check your internet connection and try again. Online answers cover usage patterns, " +
		"conjugation tips and example sentences."

	greetingAnswer = "Γεια σας! (Yasas) - Hello!\n\n" +
		"I'm your Greek language tutor. I can help you learn Greek words, grammar and conversation. " +
		"What would you like to practice today?"

	conjugationAnswer = "Let me explain how to conjugate γράφω (grafo - to write):\n\n" +
		"**Present Tense:**\n" +
		"• εγώ (I): γράφω (grafo) - I write\n" +
		"• εσύ (you): γράφεις (grafeis) - you write\n" +
		"• αυτός/αυτή (he/she): γράφει (grafei) - he/she writes\n" +
		"• εμείς (we): γράφουμε (grafoume) - we write\n\n" +
		"**Past Tense (Aorist):**\n" +
		"• έγραψα (egrapsa) - I wrote\n" +
		"• έγραψες (egrapses) - you wrote\n" +
		"• έγραψε (egrapse) - he/she wrote\n\n" +
		"**Future Tense:**\n" +
		"• θα γράψω (tha grapso) - I will write\n" +
		"• θα γράψεις (tha grapseis) - you will write\n\n" +
		"Practice sentence: Γράφω ένα γράμμα (Grafo ena gramma) - I write a letter"

	wordsAnswer = "Here are some essential Greek words to learn:\n\n" +
		"**Daily Actions:**\n" +
		"• τρώω (troo) - to eat\n" +
		"• πίνω (pino) - to drink\n" +
		"• κοιμάμαι (kimame) - to sleep\n" +
		"• ξυπνάω (xipnao) - to wake up\n" +
		"• διαβάζω (diavazo) - to study/read\n" +
		"• πηγαίνω (pigeno) - to go\n\n" +
		"**Tip:** Most Greek verbs end in -ω (-o) in their dictionary form. " +
		"To conjugate them, you change the ending based on person and tense.\n\n" +
		"Would you like to practice conjugating any of these words?"

	grammarAnswer = "Greek grammar has some unique features. Here are key points:\n\n" +
		"**Word Order:** Greek typically follows Subject-Verb-Object (SVO)\n" +
		"Example: Εγώ τρώω ένα μήλο (Ego troo ena milo)\n" +
		"I eat an apple\n\n" +
		"**Cases:** Greek uses four cases for nouns and adjectives\n" +
		"• Nominative (ο, η, το) - subject\n" +
		"• Genitive (του, της, των) - possession\n" +
		"• Accusative (τον, τη, το) - object\n" +
		"• Vocative - addressing someone\n\n" +
		"**Gender:** All nouns have one of three genders\n" +
		"• Masculine (ο)\n" +
		"• Feminine (η)\n" +
		"• Neuter (το)\n\n" +
		"Which aspect would you like to explore more?"

	thanksAnswer = "Παρακαλώ! (Parakalo) - You're welcome!\n\n" +
		"Other ways to say thank you in Greek:\n" +
		"• Ευχαριστώ πολύ (Efharisto poli) - Thank you very much\n" +
		"• Σας ευχαριστώ (Sas efharisto) - Thank you (formal)\n" +
		"• Σ' ευχαριστώ (S' efharisto) - Thank you (casual)\n" +
		"• Ευχαριστώ (Efharisto) - Thanks\n\n" +
		"Keep practicing, you're doing great! Καλή τύχη! (Kali tychi - good luck!)"

	genericAnswer = "That's an interesting question about Greek! I'm offline right now, " +
		"but I can help you with:\n\n" +
		"• Greek verb conjugations (γράφω, είμαι, έχω)\n" +
		"• Basic grammar rules (cases, gender, articles)\n" +
		"• Common phrases and expressions (Γεια σας, Ευχαριστώ)\n" +
		"• Greek alphabet (Α-Ω) basics\n" +
		"• Pronunciation tips\n\n" +
		"Try asking about one of these topics, or check your internet connection " +
		"for full answers."
)

// fallbackAnswer picks a canned answer by keyword. Rules are checked in
// order and the first match wins.
func fallbackAnswer(question string) string {
	q := strings.ToLower(question)

	switch {
	case strings.Contains(q, "explain the greek word"),
		strings.Contains(q, "detailed meaning"),
		strings.Contains(q, "conjugation tips"):
		return wordExplanationAnswer
	case hasWord(q, "hello"), hasWord(q, "hi"), strings.Contains(q, "γεια"), strings.Contains(q, "yasas"):
		return greetingAnswer
	case strings.Contains(q, "conjugate") && (strings.Contains(q, "γράφω") || strings.Contains(q, "grafo")):
		return conjugationAnswer
	case strings.Contains(q, "word"), strings.Contains(q, "λέξη"):
		return wordsAnswer
	case strings.Contains(q, "grammar"), strings.Contains(q, "γραμματική"):
		return grammarAnswer
	case strings.Contains(q, "thank"), strings.Contains(q, "ευχαριστώ"), strings.Contains(q, "efharisto"):
		return thanksAnswer
	default:
		return genericAnswer
	}
}

// hasWord reports whether word appears in text as a whole word, so that
// "hi" does not match "which".
func hasWord(text, word string) bool {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, f := range fields {
		if f == word {
			return true
		}
	}
	return false
}
