package release

import "testing"

func TestParseSeriesDirectory(t *testing.T) {
	tests := []struct {
		name  string
		title string
		check func(t *testing.T, rec *Release)
	}{
		{
			name:  "The Series Title! (2010) {imdb-tt1520211}",
			title: "The Series Title!",
			check: func(t *testing.T, rec *Release) {
				expectInt(t, "year", rec.Year, 2010)
				expectString(t, "imdb", rec.IMDBID, "tt1520211")
			},
		},
		{
			name:  "The Series Title! (2010) {tvdb-1520211}",
			title: "The Series Title!",
			check: func(t *testing.T, rec *Release) {
				expectString(t, "tvdb", rec.TVDBID, "1520211")
			},
		},
		{
			name:  "The Series Title! (2010) [tvdb-1520211]",
			title: "The Series Title!",
			check: func(t *testing.T, rec *Release) {
				expectString(t, "tvdb", rec.TVDBID, "1520211")
			},
		},
		{
			name:  "GBRB - Joy Pops Laugh Pops (2025) {tvdb-468780}",
			title: "GBRB - Joy Pops Laugh Pops",
			check: func(t *testing.T, rec *Release) {
				expectInt(t, "year", rec.Year, 2025)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ParseSeriesDirectory(tt.name)
			expectString(t, "title", rec.Title, tt.title)
			expectString(t, "type", string(rec.Type), "series")
			expectString(t, "release", rec.Release, tt.name)
			tt.check(t, rec)
		})
	}
}

func TestParseMovieDirectory(t *testing.T) {
	tests := []struct {
		name string
		tmdb string
		imdb string
	}{
		{"The Movie Title (2010)", "", ""},
		{"The Movie Title (2010) {imdb-tt1520211}", "", "tt1520211"},
		{"The Movie Title (2010) {tmdb-1520211}", "1520211", ""},
		{"The Movie Title (2010) [imdb-tt1520211]", "", "tt1520211"},
		{"The Movie Title (2010) [tmdb-1520211]", "1520211", ""},
		{"The Movie Title (2010) [imdbid-tt1520211]", "", "tt1520211"},
		{"The Movie Title (2010) [tmdbid-1520211]", "1520211", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ParseMovieDirectory(tt.name)
			expectString(t, "title", rec.Title, "The Movie Title")
			expectInt(t, "year", rec.Year, 2010)
			expectString(t, "tmdb", rec.TMDBID, tt.tmdb)
			expectString(t, "imdb", rec.IMDBID, tt.imdb)
			expectString(t, "type", string(rec.Type), "movie")
			if rec.Source != "" || rec.Group != "" {
				t.Fatalf("directory parse filled release fields: %+v", rec)
			}
		})
	}
}

func TestParseSeasonDirectory(t *testing.T) {
	tests := []struct {
		name string
		want int
		ok   bool
	}{
		{"Season 01", 1, true},
		{"Season 1", 1, true},
		{"season 10", 10, true},
		{"Season 00", 0, true},
		{"Specials", 0, false},
		{"Season01", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseSeasonDirectory(tt.name)
			if got != tt.want || ok != tt.ok {
				t.Fatalf("unexpected season: got (%d, %v) want (%d, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}
