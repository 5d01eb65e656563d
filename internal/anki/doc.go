// Package anki exports word bank entries as CSV files that Anki can import
// as flashcards.
package anki
