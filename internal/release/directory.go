package release

import "regexp"

var (
	dirYearRe      = regexp.MustCompile(`\s*\(\d{4}\)\s*`)
	dirTMDBBraceRe = regexp.MustCompile(`\s*\{tmdb-\d+\}\s*`)
	dirTMDBRe      = regexp.MustCompile(`\s*\{tmdb-\d+\}\s*|\[tmdb(?:id)?-\d+\]`)
	dirTVDBRe      = regexp.MustCompile(`\s*\{tvdb-\d+\}\s*|\[tvdb(?:id)?-\d+\]`)
	dirIMDBRe      = regexp.MustCompile(`\s*\{imdb-tt\d+\}\s*|\[imdb(?:id)?-tt\d+\]`)
	seriesDirStrip = []*regexp.Regexp{dirYearRe, dirTMDBBraceRe, dirTVDBRe, dirIMDBRe}
	movieDirStrip  = []*regexp.Regexp{dirYearRe, dirTMDBRe, dirIMDBRe}
)

// ParseSeriesDirectory reads a "Show Title (2010) {tvdb-12345}" style
// directory name: title, year and external ids only.
func (p *Parser) ParseSeriesDirectory(name string) *Release {
	rec := &Release{Release: name, Type: KindSeries}
	p.directoryFields(rec, name)
	rec.TVDBID = extractTVDBID(name)
	rec.Title = stripDirectoryTitle(name, seriesDirStrip)
	return rec
}

// ParseMovieDirectory reads a "Movie Title (2010) {imdb-tt1520211}" style
// directory name.
func (p *Parser) ParseMovieDirectory(name string) *Release {
	rec := &Release{Release: name, Type: KindMovie}
	p.directoryFields(rec, name)
	rec.Title = stripDirectoryTitle(name, movieDirStrip)
	return rec
}

func (p *Parser) directoryFields(rec *Release, name string) {
	if year, ok := extractYear(p.heuristics, name); ok {
		rec.Year = intPtr(year)
	}
	rec.TMDBID = extractTMDBID(name)
	rec.IMDBID = extractIMDBID(name)
}

func stripDirectoryTitle(name string, strip []*regexp.Regexp) string {
	sp := newSpans(name)
	for _, re := range strip {
		sp.consumeAll(re)
	}
	return cleanTitle(sp.remaining())
}

// ParseSeriesDirectory parses a series directory name with default bounds.
func ParseSeriesDirectory(name string) *Release {
	return New(KindSeries).ParseSeriesDirectory(name)
}

// ParseMovieDirectory parses a movie directory name with default bounds.
func ParseMovieDirectory(name string) *Release {
	return New(KindMovie).ParseMovieDirectory(name)
}
