package release

import (
	"strconv"
	"strings"
)

// Release is the structured result of parsing one release name.
//
// String fields use the empty string for "not found". Year, Season, Episode
// and Disc are pointers so that absence is distinguishable from zero.
// Episode is set only when Episodes holds exactly one entry.
type Release struct {
	Release           string            `json:"release"`
	Title             string            `json:"title"`
	TitleExtra        string            `json:"title_extra,omitempty"`
	EpisodeTitle      string            `json:"episode_title,omitempty"`
	Group             string            `json:"group,omitempty"`
	Year              *int              `json:"year,omitempty"`
	Date              string            `json:"date,omitempty"`
	Season            *int              `json:"season,omitempty"`
	Episode           *int              `json:"episode,omitempty"`
	Episodes          []int             `json:"episodes,omitempty"`
	Disc              *int              `json:"disc,omitempty"`
	Flags             []string          `json:"flags,omitempty"`
	Source            string            `json:"source,omitempty"`
	Format            string            `json:"format,omitempty"`
	Resolution        string            `json:"resolution,omitempty"`
	Audio             string            `json:"audio,omitempty"`
	Device            string            `json:"device,omitempty"`
	OS                string            `json:"os,omitempty"`
	Version           string            `json:"version,omitempty"`
	Languages         map[string]string `json:"language,omitempty"`
	TMDBID            string            `json:"tmdb_id,omitempty"`
	TVDBID            string            `json:"tvdb_id,omitempty"`
	IMDBID            string            `json:"imdb_id,omitempty"`
	Edition           string            `json:"edition,omitempty"`
	HDR               string            `json:"hdr,omitempty"`
	StreamingProvider string            `json:"streaming_provider,omitempty"`
	Type              Kind              `json:"type"`
}

// PathInfo is the hierarchical result of parsing a media file path.
type PathInfo struct {
	Directory *Release `json:"directory,omitempty"`
	Season    *int     `json:"season,omitempty"`
	File      *Release `json:"file"`
	FullPath  string   `json:"full_path"`
}

var fieldNames = []string{
	"release",
	"title",
	"title_extra",
	"episode_title",
	"group",
	"year",
	"date",
	"season",
	"episode",
	"episodes",
	"disc",
	"source",
	"format",
	"resolution",
	"audio",
	"device",
	"os",
	"version",
	"tmdb_id",
	"tvdb_id",
	"imdb_id",
	"edition",
	"hdr",
	"streaming_provider",
	"type",
}

// Fields lists the names accepted by Release.Get in a stable order.
func Fields() []string {
	out := make([]string, len(fieldNames))
	copy(out, fieldNames)
	return out
}

// Get returns a field rendered as a string. Plain string fields are always
// present, even when empty. Optional fields report false when absent, as do
// unknown names. Episodes are joined with commas.
func (r *Release) Get(field string) (string, bool) {
	if r == nil {
		return "", false
	}
	switch field {
	case "release":
		return r.Release, true
	case "title":
		return r.Title, true
	case "title_extra":
		return r.TitleExtra, true
	case "episode_title":
		return r.EpisodeTitle, true
	case "group":
		return r.Group, true
	case "year":
		return optionalInt(r.Year)
	case "date":
		return optionalString(r.Date)
	case "season":
		return optionalInt(r.Season)
	case "episode":
		return optionalInt(r.Episode)
	case "episodes":
		if len(r.Episodes) == 0 {
			return "", false
		}
		parts := make([]string, len(r.Episodes))
		for i, ep := range r.Episodes {
			parts[i] = strconv.Itoa(ep)
		}
		return strings.Join(parts, ","), true
	case "disc":
		return optionalInt(r.Disc)
	case "source":
		return r.Source, true
	case "format":
		return r.Format, true
	case "resolution":
		return r.Resolution, true
	case "audio":
		return r.Audio, true
	case "device":
		return r.Device, true
	case "os":
		return r.OS, true
	case "version":
		return r.Version, true
	case "tmdb_id":
		return optionalString(r.TMDBID)
	case "tvdb_id":
		return optionalString(r.TVDBID)
	case "imdb_id":
		return optionalString(r.IMDBID)
	case "edition":
		return optionalString(r.Edition)
	case "hdr":
		return r.HDR, true
	case "streaming_provider":
		return r.StreamingProvider, true
	case "type":
		return string(r.Type), true
	}
	return "", false
}

func optionalInt(v *int) (string, bool) {
	if v == nil {
		return "", false
	}
	return strconv.Itoa(*v), true
}

func optionalString(v string) (string, bool) {
	if v == "" {
		return "", false
	}
	return v, true
}

func intPtr(v int) *int {
	return &v
}
