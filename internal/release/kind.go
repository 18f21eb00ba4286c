package release

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is the release-type hint supplied by the caller.
type Kind string

const (
	KindMovie  Kind = "movie"
	KindTV     Kind = "tv"
	KindSeries Kind = "series"
)

// ErrUnknownKind reports a release-type hint outside movie, tv and series.
var ErrUnknownKind = errors.New("unknown release kind")

// ParseKind resolves a user supplied hint. Matching is case-insensitive and
// accepts a few common aliases.
func ParseKind(value string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "movie", "movies", "film":
		return KindMovie, nil
	case "tv", "show", "episode":
		return KindTV, nil
	case "series":
		return KindSeries, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, value)
}

// Episodic reports whether season and episode extraction applies.
func (k Kind) Episodic() bool {
	return k == KindTV || k == KindSeries
}

func (k Kind) String() string {
	return string(k)
}
