// Package processor wires configuration into the lexicon, the translation
// orchestrator, the tutor and the word bank, and drives each CLI flow:
// single queries, batch files, model listing, tutor questions and word bank
// browsing.
package processor
