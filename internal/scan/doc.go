// Package scan walks a media library, parses every media file path and
// records the results in the library index.
//
// Parsing fans out over a bounded worker pool while a single writer
// goroutine owns all index writes. Each run holds the index writer lock and
// is tagged with its own scan ID.
package scan
