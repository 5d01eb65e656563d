// Package lexicon is an offline English to Greek object dictionary. It is
// tuned for noisy input from OCR and image labelling: matching ignores case
// and punctuation, folds English plurals, and falls back to the longest
// known phrase contained in the query.
package lexicon
