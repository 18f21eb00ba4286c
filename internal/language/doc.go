// Package language maps language codes and words found in release names to
// ISO 639-1 codes and display names.
package language
