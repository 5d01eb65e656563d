// Package wordbank loads Greek vocabulary lists and stores them in SQLite
// for browsing by category, search and random practice sets.
package wordbank
