package textutil

import (
	"math"
	"strings"
)

// Fingerprint is a term-frequency vector over the words of a title.
type Fingerprint struct {
	tokens map[string]float64
	norm   float64
}

// NewFingerprint builds a fingerprint from text. It returns nil when text
// has no words.
func NewFingerprint(text string) *Fingerprint {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return nil
	}
	counts := make(map[string]float64, len(tokens))
	for _, token := range tokens {
		counts[token]++
	}
	var sum float64
	for _, count := range counts {
		sum += count * count
	}
	return &Fingerprint{tokens: counts, norm: math.Sqrt(sum)}
}

// Tokenize splits the SortKey form of text into words.
func Tokenize(text string) []string {
	key := SortKey(text)
	if key == "" {
		return nil
	}
	return strings.Split(key, " ")
}
