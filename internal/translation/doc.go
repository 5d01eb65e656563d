// Package translation decides how a detected string is turned into a
// Greek or English result. The Orchestrator tries the offline lexicon
// first, short-circuits text that is already Greek, and only then asks a
// remote chat model, at most once per request.
package translation
