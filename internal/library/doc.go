// Package library persists parsed media paths in a SQLite index.
//
// A Store owns the database handle, applies the embedded schema on open and
// exposes entry upserts, scan bookkeeping, listing, fuzzy title search and
// summary statistics. Writers take an advisory file lock next to the
// database so only one scan mutates the index at a time; readers never
// lock. Entries keep the full parsed record as JSON alongside the columns
// used for filtering.
package library
