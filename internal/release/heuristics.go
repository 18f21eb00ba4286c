package release

// Heuristics holds the numeric bounds behind the guess-based extractors.
//
// Bare "N - M" numbering is only read as season/episode when both numbers
// fall inside MaxBareSeason and MaxBareEpisode. These bounds are empirical:
// very long running shows exceed them and will then parse without a season.
type Heuristics struct {
	// MaxBareSeason bounds the season in "S5 - 02" and "5 - 01" forms.
	MaxBareSeason int
	// MaxBareEpisode bounds the episode in the same forms.
	MaxBareEpisode int
	// MaxEpisodeSpan caps the number of episodes a range may expand to.
	// Longer ranges collapse to their first episode.
	MaxEpisodeSpan int
	// MinYear and MaxYear bound every year candidate.
	MinYear int
	MaxYear int
}

const (
	DefaultMaxBareSeason  = 20
	DefaultMaxBareEpisode = 200
	DefaultMaxEpisodeSpan = 500
	DefaultMinYear        = 1900
	DefaultMaxYear        = 2100
)

// DefaultHeuristics returns the stock bounds.
func DefaultHeuristics() Heuristics {
	return Heuristics{
		MaxBareSeason:  DefaultMaxBareSeason,
		MaxBareEpisode: DefaultMaxBareEpisode,
		MaxEpisodeSpan: DefaultMaxEpisodeSpan,
		MinYear:        DefaultMinYear,
		MaxYear:        DefaultMaxYear,
	}
}

// withDefaults fills zero or negative bounds from the defaults.
func (h Heuristics) withDefaults() Heuristics {
	def := DefaultHeuristics()
	if h.MaxBareSeason <= 0 {
		h.MaxBareSeason = def.MaxBareSeason
	}
	if h.MaxBareEpisode <= 0 {
		h.MaxBareEpisode = def.MaxBareEpisode
	}
	if h.MaxEpisodeSpan <= 0 {
		h.MaxEpisodeSpan = def.MaxEpisodeSpan
	}
	if h.MinYear <= 0 {
		h.MinYear = def.MinYear
	}
	if h.MaxYear <= 0 {
		h.MaxYear = def.MaxYear
	}
	return h
}

func (h Heuristics) yearInRange(year int) bool {
	return year >= h.MinYear && year <= h.MaxYear
}

func (h Heuristics) bareInRange(season, episode int) bool {
	return season >= 1 && season <= h.MaxBareSeason && episode >= 1 && episode <= h.MaxBareEpisode
}

// expandRange lists first..last inclusive. An inverted range is empty and a
// range longer than MaxEpisodeSpan collapses to its first episode.
func (h Heuristics) expandRange(first, last int) []int {
	if last < first {
		return []int{}
	}
	if last-first+1 > h.MaxEpisodeSpan {
		return []int{first}
	}
	out := make([]int, 0, last-first+1)
	for ep := first; ep <= last; ep++ {
		out = append(out, ep)
	}
	return out
}
