package release

import (
	"regexp"
	"strconv"
	"strings"
)

// numbering is a season/episode reading. Season is nil for episode-only
// conventions.
type numbering struct {
	season   *int
	episodes []int
}

type numberingStrategy func(h Heuristics, name string) (numbering, bool)

var (
	doubleEpisodeRe   = regexp.MustCompile(`(?i)E(\d{1,3})E(\d{1,3})`)
	absoluteEpisodeRe = regexp.MustCompile(`(?i)\bE(\d{3})\b`)
	seasonTailRe      = regexp.MustCompile(`(?i)S\d+\s*$`)
	episodeRangeRe    = regexp.MustCompile(`(?i)S(\d{1,2})E(\d{1,3})-E(\d{1,3})`)
	seasonEpisodeRes  = []*regexp.Regexp{
		regexp.MustCompile(`(?i)S(\d{1,2})E(\d{1,3})`),
		regexp.MustCompile(`(?i)\bS(\d{1,2})\s+E(\d{1,3})\b`),
		regexp.MustCompile(`(?i)(\d{1,2})x(\d{1,3})`),
		regexp.MustCompile(`(?i)Season\s*(\d{1,2})\s*Episode\s*(\d{1,3})`),
	}
	seasonDashRe    = regexp.MustCompile(`(?i)S(\d{1,2})\s*-\s*(\d{1,3})`)
	bareDashRe      = regexp.MustCompile(`(\d{1,2})\s*-\s*(\d{1,3})`)
	episodeWordRe   = regexp.MustCompile(`(?i)Episode\s+(\d{1,3})`)
	absoluteDashRe  = regexp.MustCompile(`-\s*(\d{3})(?:-(\d{3}))?\s*-`)
	bracketNumberRe = regexp.MustCompile(`\[(\d{1,4})\]`)

	yearParenRe   = regexp.MustCompile(`\((\d{4})\)`)
	yearBracketRe = regexp.MustCompile(`\[(\d{4})\]`)
	yearBareRe    = regexp.MustCompile(`\b(?:19|20|21)\d{2}\b`)
	dateRe        = regexp.MustCompile(`-\s*(\d{4}-\d{2}-\d{2})\s*-`)
	discRe        = regexp.MustCompile(`(?i)(?:Disc|CD|DVD)\s*(\d+)`)
	seasonDirRe   = regexp.MustCompile(`(?i)Season\s+(\d+)`)
)

// numberingStrategies is the season/episode cascade, most specific first.
var numberingStrategies = []numberingStrategy{
	doubleEpisode,
	absoluteEpisode,
	seasonEpisodeRange,
	seasonEpisode,
	bareSeasonEpisode(seasonDashRe),
	bareSeasonEpisode(bareDashRe),
}

func extractNumbering(h Heuristics, name string) (numbering, bool) {
	name = maskDate(name)
	for _, strategy := range numberingStrategies {
		if n, ok := strategy(h, name); ok {
			return n, true
		}
	}
	if m := episodeWordRe.FindStringSubmatch(name); m != nil {
		ep := atoi(m[1])
		return numbering{episodes: []int{ep}}, true
	}
	return numbering{}, false
}

// doubleEpisode reads "E01E02": two episodes, no season.
func doubleEpisode(_ Heuristics, name string) (numbering, bool) {
	m := doubleEpisodeRe.FindStringSubmatch(name)
	if m == nil {
		return numbering{}, false
	}
	return numbering{episodes: []int{atoi(m[1]), atoi(m[2])}}, true
}

// absoluteEpisode reads a standalone "E780" that does not follow "Sxx".
func absoluteEpisode(_ Heuristics, name string) (numbering, bool) {
	loc := absoluteEpisodeRe.FindStringSubmatchIndex(name)
	if loc == nil {
		return numbering{}, false
	}
	if seasonTailRe.MatchString(name[:loc[0]]) {
		return numbering{}, false
	}
	return numbering{episodes: []int{atoi(name[loc[2]:loc[3]])}}, true
}

func seasonEpisodeRange(h Heuristics, name string) (numbering, bool) {
	m := episodeRangeRe.FindStringSubmatch(name)
	if m == nil {
		return numbering{}, false
	}
	return numbering{
		season:   intPtr(atoi(m[1])),
		episodes: h.expandRange(atoi(m[2]), atoi(m[3])),
	}, true
}

func seasonEpisode(_ Heuristics, name string) (numbering, bool) {
	for _, re := range seasonEpisodeRes {
		if m := re.FindStringSubmatch(name); m != nil {
			return numbering{season: intPtr(atoi(m[1])), episodes: []int{atoi(m[2])}}, true
		}
	}
	return numbering{}, false
}

// bareSeasonEpisode reads "S5 - 02" or "5 - 01" forms, accepted only inside
// the heuristic bounds.
func bareSeasonEpisode(re *regexp.Regexp) numberingStrategy {
	return func(h Heuristics, name string) (numbering, bool) {
		m := re.FindStringSubmatch(name)
		if m == nil {
			return numbering{}, false
		}
		season, episode := atoi(m[1]), atoi(m[2])
		if !h.bareInRange(season, episode) {
			return numbering{}, false
		}
		return numbering{season: intPtr(season), episodes: []int{episode}}, true
	}
}

// absoluteNumber is an episode number that carries no season: " - 012 - ",
// " - 001-003 - " or a bracketed "[119]".
type absoluteNumber struct {
	first, last int
	ranged      bool
}

func extractAbsoluteNumber(h Heuristics, name string) (absoluteNumber, bool) {
	if m := absoluteDashRe.FindStringSubmatch(name); m != nil {
		if m[2] != "" {
			return absoluteNumber{first: atoi(m[1]), last: atoi(m[2]), ranged: true}, true
		}
		n := atoi(m[1])
		return absoluteNumber{first: n, last: n}, true
	}
	for _, m := range bracketNumberRe.FindAllStringSubmatch(name, -1) {
		digits := m[1]
		n := atoi(digits)
		if len(digits) == 4 && h.yearInRange(n) {
			continue
		}
		return absoluteNumber{first: n, last: n}, true
	}
	return absoluteNumber{}, false
}

type yearStrategy func(h Heuristics, name string) (int, bool)

var yearStrategies = []yearStrategy{
	firstYearMatch(yearParenRe),
	firstYearMatch(yearBracketRe),
	bareYear,
}

func extractYear(h Heuristics, name string) (int, bool) {
	for _, strategy := range yearStrategies {
		if year, ok := strategy(h, name); ok {
			return year, true
		}
	}
	return 0, false
}

// firstYearMatch only considers the first match of re.
func firstYearMatch(re *regexp.Regexp) yearStrategy {
	return func(h Heuristics, name string) (int, bool) {
		m := re.FindStringSubmatch(name)
		if m == nil {
			return 0, false
		}
		year := atoi(m[1])
		return year, h.yearInRange(year)
	}
}

func bareYear(h Heuristics, name string) (int, bool) {
	for _, candidate := range yearBareRe.FindAllString(name, -1) {
		if year := atoi(candidate); h.yearInRange(year) {
			return year, true
		}
	}
	return 0, false
}

// maskDate blanks the digits of an air date so no numbering tier can read
// "2013-10-30" as season 13 episode 10.
func maskDate(name string) string {
	loc := dateRe.FindStringSubmatchIndex(name)
	if loc == nil {
		return name
	}
	return name[:loc[2]] + strings.Repeat(" ", loc[3]-loc[2]) + name[loc[3]:]
}

func extractDate(name string) string {
	if m := dateRe.FindStringSubmatch(name); m != nil {
		return m[1]
	}
	return ""
}

func extractDisc(name string) (int, bool) {
	m := discRe.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	disc, err := strconv.Atoi(m[1])
	if err != nil || disc > 255 {
		return 0, false
	}
	return disc, true
}

// ParseSeasonDirectory reads the number from a "Season 01" directory name.
func ParseSeasonDirectory(name string) (int, bool) {
	m := seasonDirRe.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	season, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return season, true
}

// atoi parses digits already validated by a bounded pattern.
func atoi(digits string) int {
	n, _ := strconv.Atoi(digits)
	return n
}
