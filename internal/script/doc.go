// Package script recognises Greek text and produces Latin phonetic
// transcriptions of it. It has no knowledge of dictionaries or translation.
package script
