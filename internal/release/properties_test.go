package release

import (
	"reflect"
	"slices"
	"strings"
	"sync"
	"testing"
)

var propertyCorpus = []string{
	"",
	" ",
	"\t\n",
	"[",
	"]]]][[[[",
	"((((",
	"{tmdb-",
	"-",
	"---",
	"....",
	"[][][]",
	"()",
	"S01E01-E00",
	"S99E999-E001",
	"Show.S01E001-E999.720p",
	"E001E999",
	"- 999-001 -",
	"[9999][0000][1]",
	"Season 99 Episode 999",
	"\xff\xfe[broken]-\xff",
	"日本語のタイトル - 01 [1080p]",
	strings.Repeat("A.", 500) + "S01E01",
	strings.Repeat("[x]", 200),
	"The.Matrix.1999.1080p.BluRay.x264-GROUP",
	"Arrow (2012) - S05E04 - Penance [Bluray-1080p Remux][DTS-HD MA 5.1][AVC]-EPSiLON",
	"Running Man E780 1080p VIU WEB-DL AAC 2.0 H.264-MMR",
	"[SubsPlease] The Daily Life of the Immortal King S5 - 02 (1080p) [66856162].mkv",
	"[GM-Team][国漫][仙逆][Renegade Immortal][2023][119][AVC][GB][1080P]",
	"The Series Title! (2010) - S01E01-E03 - 001-003 - Episode Title [iNTERNAL HDTV-720p v2][HDR10][10bit][x264][DTS 5.1][JA]-RlsGrp",
}

var propertyKinds = []Kind{KindMovie, KindTV, KindSeries, Kind("unknown")}

func TestParseIsTotal(t *testing.T) {
	for _, kind := range propertyKinds {
		for _, name := range propertyCorpus {
			rec := Parse(kind, name)
			if rec == nil {
				t.Fatalf("nil record for %q", name)
			}
			if rec.Release != name {
				t.Fatalf("release not preserved: got %q want %q", rec.Release, name)
			}
			if rec.Type != kind {
				t.Fatalf("unexpected type: got %q want %q", rec.Type, kind)
			}
			ParseSeriesDirectory(name)
			ParseMovieDirectory(name)
			ParseSeasonDirectory(name)
			ParsePath(kind, "/library/"+name+"/"+name+".mkv")
		}
	}
}

func TestParseIsDeterministic(t *testing.T) {
	for _, name := range propertyCorpus {
		first := Parse(KindTV, name)
		second := Parse(KindTV, name)
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("parse of %q not repeatable:\n%+v\n%+v", name, first, second)
		}
	}
}

func TestEpisodeConsistency(t *testing.T) {
	for _, kind := range propertyKinds {
		for _, name := range propertyCorpus {
			rec := Parse(kind, name)
			if (rec.Episode != nil) != (len(rec.Episodes) == 1) {
				t.Fatalf("episode/episodes disagree for %q: episode=%v episodes=%v", name, rec.Episode, rec.Episodes)
			}
			if rec.Episode != nil && rec.Episodes[0] != *rec.Episode {
				t.Fatalf("episode %d not in episodes %v for %q", *rec.Episode, rec.Episodes, name)
			}
			if len(rec.Episodes) > DefaultMaxEpisodeSpan {
				t.Fatalf("episode span not capped for %q: %d", name, len(rec.Episodes))
			}
			if rec.Year != nil && (*rec.Year < DefaultMinYear || *rec.Year > DefaultMaxYear) {
				t.Fatalf("year out of bounds for %q: %d", name, *rec.Year)
			}
		}
	}
}

func TestParseConcurrent(t *testing.T) {
	p := New(KindTV)
	want := make([]*Release, len(propertyCorpus))
	for i, name := range propertyCorpus {
		want[i] = p.Parse(name)
	}

	var wg sync.WaitGroup
	errs := make(chan string, len(propertyCorpus)*8)
	for worker := 0; worker < 8; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, name := range propertyCorpus {
				if got := p.Parse(name); !reflect.DeepEqual(got, want[i]) {
					errs <- name
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for name := range errs {
		t.Fatalf("concurrent parse diverged for %q", name)
	}
}

func TestRangeExpansion(t *testing.T) {
	rec := Parse(KindTV, "S01E01-E03")
	if !slices.Equal(rec.Episodes, []int{1, 2, 3}) {
		t.Fatalf("unexpected episodes: %v", rec.Episodes)
	}
	expectNil(t, "episode", rec.Episode)

	h := DefaultHeuristics()
	if got := h.expandRange(5, 3); len(got) != 0 {
		t.Fatalf("expected inverted range to be empty, got %v", got)
	}
	h.MaxEpisodeSpan = 2
	if got := h.expandRange(1, 3); !slices.Equal(got, []int{1}) {
		t.Fatalf("expected capped range to collapse, got %v", got)
	}
	if got := h.expandRange(4, 4); !slices.Equal(got, []int{4}) {
		t.Fatalf("unexpected single range: %v", got)
	}
}

func TestRemuxBeatsBluRay(t *testing.T) {
	rec := Parse(KindMovie, "Some Movie (2020) [Bluray-1080p Remux][TrueHD 7.1][AVC]-GRP")
	expectString(t, "source", rec.Source, "Remux")
}
