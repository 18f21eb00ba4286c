package httpapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"relparse/internal/config"
	"relparse/internal/httpapi"
	"relparse/internal/library"
	"relparse/internal/logging"
	"relparse/internal/release"
	"relparse/internal/testsupport"
)

func get(t *testing.T, handler http.Handler, path string, params url.Values) *httptest.ResponseRecorder {
	t.Helper()
	target := path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("unexpected status: got %d want %d (body %q)", rec.Code, want, rec.Body.String())
	}
}

func newHandler(t *testing.T, cfg *config.Config, store *library.Store) http.Handler {
	t.Helper()
	return httpapi.New(cfg, store, logging.NewNop()).Handler()
}

func TestParseReturnsRecord(t *testing.T) {
	handler := newHandler(t, testsupport.NewConfig(t), nil)

	rec := get(t, handler, "/api/parse", url.Values{
		"name": {"Arrow.S02E05.720p.HDTV.x264-KILLERS"},
		"kind": {"tv"},
	})
	expectStatus(t, rec, http.StatusOK)
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type: got %q want %q", ct, "application/json")
	}
	var got release.Release
	decode(t, rec, &got)
	if got.Title != "Arrow" {
		t.Fatalf("unexpected title: got %q want %q", got.Title, "Arrow")
	}
	if got.Season == nil || *got.Season != 2 || got.Episode == nil || *got.Episode != 5 {
		t.Fatalf("unexpected numbering: season %v episode %v", got.Season, got.Episode)
	}
	if got.Type != release.KindTV {
		t.Fatalf("unexpected type: got %q want %q", got.Type, release.KindTV)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected request id header")
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	handler := newHandler(t, testsupport.NewConfig(t), nil)

	tests := []struct {
		name   string
		path   string
		params url.Values
	}{
		{"missing name", "/api/parse", nil},
		{"blank name", "/api/parse", url.Values{"name": {"  "}}},
		{"unknown kind", "/api/parse", url.Values{"name": {"Heat.1995"}, "kind": {"podcast"}}},
		{"missing path", "/api/path", nil},
		{"missing dir name", "/api/dir/series", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, handler, tt.path, tt.params)
			expectStatus(t, rec, http.StatusBadRequest)
			var body map[string]string
			decode(t, rec, &body)
			if body["error"] == "" {
				t.Fatalf("expected error message in %v", body)
			}
		})
	}
}

func TestParseSingleField(t *testing.T) {
	handler := newHandler(t, testsupport.NewConfig(t), nil)

	tests := []struct {
		field   string
		present bool
		value   string
	}{
		{"resolution", true, "720p"},
		{"group", true, "KILLERS"},
		{"year", false, ""},
		{"bogus", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			rec := get(t, handler, "/api/parse", url.Values{
				"name":  {"Arrow.S02E05.720p.HDTV.x264-KILLERS"},
				"kind":  {"tv"},
				"field": {tt.field},
			})
			expectStatus(t, rec, http.StatusOK)
			var got httpapi.FieldValue
			decode(t, rec, &got)
			if got.Present != tt.present || got.Value != tt.value {
				t.Fatalf("unexpected field value: got %+v want present=%v value=%q", got, tt.present, tt.value)
			}
		})
	}
}

func TestPathEndpoint(t *testing.T) {
	handler := newHandler(t, testsupport.NewConfig(t), nil)

	rec := get(t, handler, "/api/path", url.Values{
		"path": {"/tv/Arrow (2012)/Season 02/Arrow.S02E05.720p.HDTV.x264-KILLERS.mkv"},
		"kind": {"tv"},
	})
	expectStatus(t, rec, http.StatusOK)
	var info release.PathInfo
	decode(t, rec, &info)
	if info.Season == nil || *info.Season != 2 {
		t.Fatalf("unexpected season: %v", info.Season)
	}
	if info.Directory == nil || info.Directory.Title != "Arrow" {
		t.Fatalf("unexpected directory: %+v", info.Directory)
	}

	rec = get(t, handler, "/api/path", url.Values{"path": {"/"}})
	expectStatus(t, rec, http.StatusUnprocessableEntity)
}

func TestDirectoryEndpoints(t *testing.T) {
	handler := newHandler(t, testsupport.NewConfig(t), nil)

	rec := get(t, handler, "/api/dir/season", url.Values{"name": {"Season 03"}})
	expectStatus(t, rec, http.StatusOK)
	var season httpapi.SeasonResponse
	decode(t, rec, &season)
	if season.Season == nil || *season.Season != 3 {
		t.Fatalf("unexpected season: %v", season.Season)
	}

	rec = get(t, handler, "/api/dir/movie", url.Values{"name": {"The Matrix (1999) {imdb-tt0133093}"}})
	expectStatus(t, rec, http.StatusOK)
	var movie release.Release
	decode(t, rec, &movie)
	if movie.Title != "The Matrix" || movie.IMDBID != "tt0133093" {
		t.Fatalf("unexpected movie directory: %+v", movie)
	}

	rec = get(t, handler, "/api/dir/episode", url.Values{"name": {"x"}})
	expectStatus(t, rec, http.StatusNotFound)
}

func TestFieldsEndpoint(t *testing.T) {
	handler := newHandler(t, testsupport.NewConfig(t), nil)
	rec := get(t, handler, "/api/fields", nil)
	expectStatus(t, rec, http.StatusOK)
	var body map[string][]string
	decode(t, rec, &body)
	if len(body["fields"]) != len(release.Fields()) {
		t.Fatalf("unexpected fields: %v", body["fields"])
	}
}

func TestMethodNotAllowed(t *testing.T) {
	handler := newHandler(t, testsupport.NewConfig(t), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/fields", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	expectStatus(t, rec, http.StatusMethodNotAllowed)
}

func TestIndexRoutesWithoutStore(t *testing.T) {
	handler := newHandler(t, testsupport.NewConfig(t), nil)
	rec := get(t, handler, "/api/index/stats", nil)
	expectStatus(t, rec, http.StatusServiceUnavailable)
}

func seedIndex(t *testing.T, store *library.Store) []*library.Entry {
	t.Helper()
	paths := []string{
		"/tv/Arrow (2012)/Season 02/Arrow.S02E05.720p.HDTV.x264-KILLERS.mkv",
		"/movies/The Matrix (1999)/The.Matrix.1999.1080p.BluRay.x264-GRP.mkv",
	}
	entries := make([]*library.Entry, 0, len(paths))
	for _, path := range paths {
		entry, err := library.NewEntry("seed", release.ParsePath(release.KindTV, path))
		if err != nil {
			t.Fatalf("NewEntry: %v", err)
		}
		if err := store.Upsert(context.Background(), entry); err != nil {
			t.Fatalf("Upsert: %v", err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestIndexRoutes(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenIndex(t, cfg)
	seeded := seedIndex(t, store)
	handler := newHandler(t, cfg, store)

	rec := get(t, handler, "/api/index/search", url.Values{"q": {"matrix"}})
	expectStatus(t, rec, http.StatusOK)
	var search struct {
		Results []library.SearchResult `json:"results"`
	}
	decode(t, rec, &search)
	if len(search.Results) != 1 || search.Results[0].Entry.Title != "The Matrix" {
		t.Fatalf("unexpected search results: %+v", search.Results)
	}

	rec = get(t, handler, "/api/index/search", nil)
	expectStatus(t, rec, http.StatusBadRequest)
	rec = get(t, handler, "/api/index/search", url.Values{"q": {"!!!"}})
	expectStatus(t, rec, http.StatusBadRequest)

	rec = get(t, handler, "/api/index/entries", url.Values{"kind": {"tv"}})
	expectStatus(t, rec, http.StatusOK)
	var list struct {
		Entries []library.Entry `json:"entries"`
	}
	decode(t, rec, &list)
	if len(list.Entries) != 1 || list.Entries[0].Title != "Arrow" {
		t.Fatalf("unexpected entries: %+v", list.Entries)
	}

	rec = get(t, handler, "/api/index/entries", url.Values{"year": {"abc"}})
	expectStatus(t, rec, http.StatusBadRequest)

	rec = get(t, handler, "/api/index/entries/"+strconv.FormatInt(seeded[1].ID, 10), nil)
	expectStatus(t, rec, http.StatusOK)
	var entry library.Entry
	decode(t, rec, &entry)
	if entry.Path != seeded[1].Path {
		t.Fatalf("unexpected entry path: got %q want %q", entry.Path, seeded[1].Path)
	}

	rec = get(t, handler, "/api/index/entries/999", nil)
	expectStatus(t, rec, http.StatusNotFound)

	rec = get(t, handler, "/api/index/stats", nil)
	expectStatus(t, rec, http.StatusOK)
	var stats library.Stats
	decode(t, rec, &stats)
	if stats.Entries != 2 || stats.Movies != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestBearerTokenRequired(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Server.Token = "secret"
	handler := newHandler(t, cfg, nil)

	rec := get(t, handler, "/api/fields", nil)
	expectStatus(t, rec, http.StatusUnauthorized)

	tests := []struct {
		header string
		want   int
	}{
		{"Bearer secret", http.StatusOK},
		{"Bearer secreT", http.StatusUnauthorized},
		{"Bearer secret2", http.StatusUnauthorized},
		{"Bearer ", http.StatusUnauthorized},
		{"secret", http.StatusUnauthorized},
		{"Basic secret", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/fields", nil)
			req.Header.Set("Authorization", tt.header)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			expectStatus(t, rec, tt.want)
		})
	}
}

func TestServeShutsDownOnCancel(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	server := httpapi.New(cfg, nil, logging.NewNop())
	listener := httptest.NewUnstartedServer(nil).Listener

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Serve(ctx, listener) }()

	resp, err := http.Get("http://" + listener.Addr().String() + "/api/health")
	if err != nil {
		t.Fatalf("GET health: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: got %d want %d", resp.StatusCode, http.StatusOK)
	}

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Serve returned error: %v", err)
	}
}
