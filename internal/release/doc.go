// Package release extracts structured metadata from free-text release names.
//
// A release name is the label a distributed media file travels under:
// dot-separated scene names, bracketed anime names, Plex/Jellyfin style
// "Title (Year) - S01E01 - Episode [specs]-GROUP" names and the streaming-rip
// variants in between. None of them follow a grammar, so the package runs an
// ordered set of field extractors against the raw string and then recovers
// the human title by subtracting every token the extractors recognized.
//
// Extraction order is part of the contract. Catalogs are evaluated top to
// bottom and the first hit wins; the title is resolved last because it
// depends on every other field. Parsing never fails: unrecognized input
// yields a record with empty or absent fields.
//
// Parser values hold no mutable state and may be shared between goroutines.
package release
