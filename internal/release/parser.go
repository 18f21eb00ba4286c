package release

// Parser extracts release metadata for one release kind.
type Parser struct {
	kind       Kind
	heuristics Heuristics
}

// Option configures a Parser.
type Option func(*Parser)

// WithHeuristics overrides the numeric bounds. Zero fields keep their
// defaults.
func WithHeuristics(h Heuristics) Option {
	return func(p *Parser) {
		p.heuristics = h.withDefaults()
	}
}

// New returns a parser for kind.
func New(kind Kind, opts ...Option) *Parser {
	p := &Parser{kind: kind, heuristics: DefaultHeuristics()}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// Kind reports the release kind the parser was built for.
func (p *Parser) Kind() Kind {
	return p.kind
}

// Heuristics reports the bounds in effect.
func (p *Parser) Heuristics() Heuristics {
	return p.heuristics
}

// Parse extracts every field from name. It never fails; fields that cannot
// be recognized are left empty or absent.
func (p *Parser) Parse(name string) *Release {
	h := p.heuristics
	rec := &Release{Release: name, Type: p.kind}

	rec.Group = extractGroup(name)

	if p.kind.Episodic() {
		if n, ok := extractNumbering(h, name); ok {
			rec.Season = n.season
			rec.setEpisodes(n.episodes)
		}
	}

	if year, ok := extractYear(h, name); ok {
		rec.Year = intPtr(year)
	}
	rec.Source = extractSource(name)
	rec.Format = extractFormat(name)
	rec.Resolution = extractResolution(name)
	rec.Audio = extractAudio(name)
	rec.Device = extractDevice(name)
	rec.OS = extractOS(name)
	rec.Version = extractVersion(name)
	rec.Languages = extractLanguages(name)
	rec.Flags = extractFlags(name)
	rec.TMDBID = extractTMDBID(name)
	rec.TVDBID = extractTVDBID(name)
	rec.IMDBID = extractIMDBID(name)
	rec.Edition = extractEdition(name)

	if abs, ok := extractAbsoluteNumber(h, name); ok {
		switch {
		case abs.ranged:
			rec.setEpisodes(h.expandRange(abs.first, abs.last))
		case rec.Episode == nil:
			rec.setEpisodes([]int{abs.first})
		}
	}

	rec.Date = extractDate(name)
	rec.HDR = extractHDR(name)
	rec.StreamingProvider = extractStreamingProvider(name)

	title := resolveTitle(titleInput{name: name, rec: rec, episodic: p.kind.Episodic()})
	rec.Title = title.title
	rec.EpisodeTitle = title.episodeTitle
	rec.TitleExtra = title.extra

	if disc, ok := extractDisc(name); ok {
		rec.Disc = intPtr(disc)
	}
	return rec
}

// setEpisodes stores episodes and keeps Episode in step: it is set only for
// a single episode.
func (r *Release) setEpisodes(episodes []int) {
	r.Episodes = episodes
	r.Episode = nil
	if len(episodes) == 1 {
		r.Episode = intPtr(episodes[0])
	}
	if len(episodes) == 0 {
		r.Episodes = nil
	}
}

// Parse is shorthand for New(kind).Parse(name).
func Parse(kind Kind, name string) *Release {
	return New(kind).Parse(name)
}
