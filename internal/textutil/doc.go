// Package textutil holds the text normalization shared by the parser, the
// library index and the HTTP search endpoint.
//
// FoldKey produces a Unicode case-folded key for case-insensitive identity
// checks. SortKey transliterates to ASCII and reduces a title to lowercase
// words so that "Amélie" and "Amelie" index and search the same way.
// Fingerprints are term-frequency vectors over SortKey tokens, compared with
// cosine similarity to rank search results.
package textutil
