package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"relparse/internal/library"
	"relparse/internal/logging"
	"relparse/internal/release"
)

// FieldValue is the response for a single field lookup.
type FieldValue struct {
	Field   string `json:"field"`
	Present bool   `json:"present"`
	Value   string `json:"value,omitempty"`
}

// SeasonResponse is the response for a season directory lookup.
type SeasonResponse struct {
	Name   string `json:"name"`
	Season *int   `json:"season"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"index":  s.store != nil,
	})
}

func (s *Server) handleFields(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string][]string{"fields": release.Fields()})
}

// parserFor resolves the optional kind query parameter.
func (s *Server) parserFor(w http.ResponseWriter, r *http.Request) (*release.Parser, bool) {
	var kind release.Kind
	if raw := strings.TrimSpace(r.URL.Query().Get("kind")); raw != "" {
		parsed, err := release.ParseKind(raw)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, err.Error())
			return nil, false
		}
		kind = parsed
	}
	return s.cfg.NewParser(kind), true
}

func requiredParam(r *http.Request, name string) (string, bool) {
	value := r.URL.Query().Get(name)
	if strings.TrimSpace(value) == "" {
		return "", false
	}
	return value, true
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	name, ok := requiredParam(r, "name")
	if !ok {
		s.writeError(w, http.StatusBadRequest, "missing name parameter")
		return
	}
	parser, ok := s.parserFor(w, r)
	if !ok {
		return
	}
	rec := parser.Parse(name)

	if field := strings.TrimSpace(r.URL.Query().Get("field")); field != "" {
		value, present := rec.Get(field)
		s.writeJSON(w, http.StatusOK, FieldValue{Field: field, Present: present, Value: value})
		return
	}
	s.writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handlePath(w http.ResponseWriter, r *http.Request) {
	path, ok := requiredParam(r, "path")
	if !ok {
		s.writeError(w, http.StatusBadRequest, "missing path parameter")
		return
	}
	parser, ok := s.parserFor(w, r)
	if !ok {
		return
	}
	info := parser.ParsePath(path)
	if info == nil {
		s.writeError(w, http.StatusUnprocessableEntity, "path could not be parsed")
		return
	}
	s.writeJSON(w, http.StatusOK, info)
}

func (s *Server) handleDirectory(w http.ResponseWriter, r *http.Request) {
	name, ok := requiredParam(r, "name")
	if !ok {
		s.writeError(w, http.StatusBadRequest, "missing name parameter")
		return
	}
	parser := s.cfg.NewParser("")
	switch mux.Vars(r)["type"] {
	case "series":
		s.writeJSON(w, http.StatusOK, parser.ParseSeriesDirectory(name))
	case "movie":
		s.writeJSON(w, http.StatusOK, parser.ParseMovieDirectory(name))
	default:
		resp := SeasonResponse{Name: name}
		if season, ok := release.ParseSeasonDirectory(name); ok {
			resp.Season = &season
		}
		s.writeJSON(w, http.StatusOK, resp)
	}
}

func (s *Server) requireStore(w http.ResponseWriter) bool {
	if s.store == nil {
		s.writeError(w, http.StatusServiceUnavailable, "index not available")
		return false
	}
	return true
}

func (s *Server) handleEntries(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	query := r.URL.Query()
	filter := library.Filter{Language: query.Get("language"), ScanID: query.Get("scan")}
	if raw := strings.TrimSpace(query.Get("kind")); raw != "" {
		kind, err := release.ParseKind(raw)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		filter.Kind = kind
	}
	for _, param := range []struct {
		name string
		dst  *int
	}{
		{"year", &filter.Year},
		{"season", &filter.Season},
		{"limit", &filter.Limit},
	} {
		raw := strings.TrimSpace(query.Get(param.name))
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			s.writeError(w, http.StatusBadRequest, "invalid "+param.name+" parameter")
			return
		}
		*param.dst = n
	}

	entries, err := s.store.List(r.Context(), filter)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	if entries == nil {
		entries = []*library.Entry{}
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"entries": entries})
}

func (s *Server) handleEntry(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid entry id")
		return
	}
	entry, err := s.store.Get(r.Context(), id)
	if errors.Is(err, library.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, "entry not found")
		return
	}
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, entry)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	q, ok := requiredParam(r, "q")
	if !ok {
		s.writeError(w, http.StatusBadRequest, "missing q parameter")
		return
	}
	limit := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			s.writeError(w, http.StatusBadRequest, "invalid limit parameter")
			return
		}
		limit = n
	}
	results, err := s.store.Search(r.Context(), q, limit)
	if errors.Is(err, library.ErrEmptyQuery) {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	if results == nil {
		results = []library.SearchResult{}
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	stats, err := s.store.Stats(r.Context())
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, stats)
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	logging.WithContext(r.Context(), s.logger).Error("request failed",
		logging.String("path", r.URL.Path),
		logging.Error(err),
	)
	s.writeError(w, http.StatusInternalServerError, err.Error())
}
