package release

import (
	"regexp"
	"strings"
	"unicode"
)

// titleResult is what a title strategy resolved. extra holds trailing text
// that a fallback split could not classify.
type titleResult struct {
	title        string
	episodeTitle string
	extra        string
}

// titleInput is the raw name plus the fields already extracted from it.
type titleInput struct {
	name     string
	rec      *Release
	episodic bool
}

type titleStrategy func(in titleInput) (titleResult, bool)

// titleStrategies run in order; the subtractive strategy always succeeds and
// closes the list.
var titleStrategies = []titleStrategy{
	episodic(dottedEpisodeTitle),
	episodic(dottedAbsoluteEpisodeTitle),
	episodic(dottedStopWordEpisodeTitle),
	episodic(dashedTitle(dashedEpisodeTitleRe, dashedEpisodeMainRe, true)),
	episodic(dashedTitle(dashedDateTitleRe, dashedDateMainRe, false)),
	episodic(dashedTitle(dashedAbsoluteTitleRe, dashedAbsoluteMainRe, false)),
	episodic(animeBracketTitle),
	episodic(splitAroundEpisode),
	subtractiveTitle,
}

var (
	dottedEpisodeTitleRe = regexp.MustCompile(`(?i)(.+?)\.(S\d{1,2}E\d{1,3})\.(.+?)(?:\.(?:German|English|French|Spanish|Italian|Portuguese|Russian|Dutch|Polish|Swedish|Norwegian|Danish|Finnish|Japanese|Chinese|Korean|Arabic|Turkish|NORDiC|SWEDiSH|NORWEGiAN|GERMAN|ANiME|DL|BluRay|BDRip|DVDRip|WEB-DL|HDTV|1080p|720p|480p|x264|x265|h264|h265|HEVC|AVC|\d{4}))`)
	dottedAbsoluteTitleRe = regexp.MustCompile(`(?i)(.+?)\.E\d{3,}\.(.+?)(?:\.(?:1080p|720p|480p|VIU|WEB-DL|WEBDL|WEBRip|H264|H265|H\.264|H\.265|x264|x265|h264|h265|HEVC|AVC|AAC|AC3|DTS))`)

	dashedEpisodeTitleRe  = regexp.MustCompile(`(?i)\s*-\s*S\d{1,2}E\d{1,3}(?:-E\d{1,3})?\s*-\s*([^-\[\{]+)`)
	dashedEpisodeMainRe   = regexp.MustCompile(`^(.+?)\s*-\s*S\d{1,2}E\d{1,3}`)
	dashedDateTitleRe     = regexp.MustCompile(`\s*-\s*\d{4}-\d{2}-\d{2}\s*-\s*([^-\[\{]+)`)
	dashedDateMainRe      = regexp.MustCompile(`^(.+?)\s*-\s*\d{4}-\d{2}-\d{2}`)
	dashedAbsoluteTitleRe = regexp.MustCompile(`\s*-\s*\d{3}(?:-\d{3})?\s*-\s*([^-\[\{]+)`)
	dashedAbsoluteMainRe  = regexp.MustCompile(`^(.+?)\s*-\s*\d{3}(?:-\d{3})?`)

	dottedYearRe      = regexp.MustCompile(`\.(?:19|20|21)\d{2}(?:\.|$)`)
	trailingYearRe    = regexp.MustCompile(`(?:19|20|21)\d{2}$`)
	wordYearRe        = regexp.MustCompile(`\b(?:19|20|21)\d{2}\b`)
	splitEpisodeRe    = regexp.MustCompile(`(?i)(.+?)[.\s]+S\d{1,2}E\d{1,3}[.\s]+(.+)`)
	splitBareDashRe   = regexp.MustCompile(`(.+?)\s+(\d{1,2})\s*-\s*(\d{1,3})`)
	trailingCountryRe = regexp.MustCompile(`\s*\([A-Z]{2}\)\s*$`)

	// markers stripped from the main title of dashed names
	dashedMarkerRes = []*regexp.Regexp{
		regexp.MustCompile(`\s*\(\d{4}\)\s*`),
		regexp.MustCompile(`\s*\{tmdb-\d+\}\s*`),
		regexp.MustCompile(`\s*\{tvdb-\d+\}\s*`),
		regexp.MustCompile(`\s*\{imdb-tt\d+\}\s*|\[imdb(?:id)?-tt\d+\]`),
		regexp.MustCompile(`\[tmdb(?:id)?-\d+\]`),
		regexp.MustCompile(`\s*\{edition-[^}]+\}\s*`),
	}

	// markers claimed before token subtraction
	markerRes = []*regexp.Regexp{
		regexp.MustCompile(`\[\s*\]`),
		regexp.MustCompile(`\{tmdb-\d+\}`),
		regexp.MustCompile(`\{tvdb-\d+\}|\[tvdb(?:id)?-\d+\]`),
		regexp.MustCompile(`\{imdb-tt\d+\}|\[imdb(?:id)?-tt\d+\]`),
		regexp.MustCompile(`\{edition-[^}]+\}`),
		regexp.MustCompile(`\[tmdb(?:id)?-\d+\]`),
		regexp.MustCompile(`\(\d{4}\)`),
		regexp.MustCompile(`\[\d{4}\]`),
	}

	// structural tokens claimed after the markers
	tokenRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)S\d{1,2}E\d{1,3}(?:-E\d{1,3})?`),
		regexp.MustCompile(`(?i)\bS\d{1,2}\s+E\d{1,3}\b`),
		regexp.MustCompile(`(?i)E\d{1,3}E\d{1,3}`),
		regexp.MustCompile(`(?i)\bE\d{3,}\b`),
		regexp.MustCompile(`(?i)S\d{1,2}\s*-\s*\d{1,3}`),
		regexp.MustCompile(`(?i)\d{1,2}x\d{1,3}`),
		regexp.MustCompile(`(?i)Season\s*\d{1,2}\s*Episode\s*\d{1,3}`),
		regexp.MustCompile(`\b(?:19|20|21)\d{2}\b`),
		regexp.MustCompile(`(?i)\d{3,4}[pi]`),
		regexp.MustCompile(`\(\d{3,4}p\)`),
		regexp.MustCompile(`\([^)]*(?:\d+p|WEB-DL|WEBRip|WEBDL|CR|NF|AMZN|H264|H265|H\.264|H\.265|AAC|DDP|2\.0|5\.1)[^)]*\)`),
		regexp.MustCompile(`(?i)READ\.?NFO`),
		regexp.MustCompile(`(?i)PROPER`),
		regexp.MustCompile(`(?i)REPACK`),
		regexp.MustCompile(`\[Eng\.Hard\.Sub\]`),
		regexp.MustCompile(`\[U-Edition\]`),
		regexp.MustCompile(`(?i)DDP\d+\.\d+`),
		regexp.MustCompile(`(?i)\bDDP\d+\b`),
		regexp.MustCompile(`(?i)Episode\s+\d+`),
		regexp.MustCompile(`(?i)\b(?:AAC|AC3|DTS|DDP)\s+\d+\.\d+\b`),
		mediaExtensionRe,
	}

	// leftovers claimed after the noise tokens
	leftoverRes = []*regexp.Regexp{
		mediaExtensionRe,
		regexp.MustCompile(`\[\d{6,}\]`),
		regexp.MustCompile(`\(\s*\)`),
		regexp.MustCompile(`(?i)\bDDP\d+\s+\d+\b`),
		regexp.MustCompile(`\[\s*\]`),
	}

	mediaExtensionRe = regexp.MustCompile(`\.(?:mkv|mp4|avi|mov|wmv|flv|webm|m4v)$`)
	emptyParenRe     = regexp.MustCompile(`\(\s*\)`)
	emptyBracketRe   = regexp.MustCompile(`\[\s*\]`)
)

func resolveTitle(in titleInput) titleResult {
	for _, strategy := range titleStrategies {
		if res, ok := strategy(in); ok {
			return res
		}
	}
	return titleResult{}
}

// episodic limits a strategy to TV and series names.
func episodic(strategy titleStrategy) titleStrategy {
	return func(in titleInput) (titleResult, bool) {
		if !in.episodic {
			return titleResult{}, false
		}
		return strategy(in)
	}
}

// dottedEpisodeTitle handles "Show.S01E01.Episode.Title.German..." where a
// language, source, codec or year token ends the episode title.
func dottedEpisodeTitle(in titleInput) (titleResult, bool) {
	m := dottedEpisodeTitleRe.FindStringSubmatch(in.name)
	if m == nil {
		return titleResult{}, false
	}
	return titleResult{
		title:        cleanTitle(stripDottedYear(m[1])),
		episodeTitle: cleanTitle(dotsToSpaces(m[3])),
	}, true
}

// dottedAbsoluteEpisodeTitle handles "Show.E780.Episode.Title.1080p...".
func dottedAbsoluteEpisodeTitle(in titleInput) (titleResult, bool) {
	m := dottedAbsoluteTitleRe.FindStringSubmatch(in.name)
	if m == nil {
		return titleResult{}, false
	}
	return titleResult{
		title:        cleanTitle(dotsToSpaces(m[1])),
		episodeTitle: cleanTitle(dotsToSpaces(m[2])),
	}, true
}

func dottedStopWordEpisodeTitle(in titleInput) (titleResult, bool) {
	for _, re := range terminatorTitles {
		m := re.FindStringSubmatch(in.name)
		if m == nil {
			continue
		}
		episode := dotsToSpaces(m[3])
		if episode == "" {
			continue
		}
		return titleResult{
			title:        cleanTitle(dotsToSpaces(m[1])),
			episodeTitle: cleanTitle(episode),
		}, true
	}
	return titleResult{}, false
}

// dashedTitle handles "Show (2010) - <marker> - Episode Title [specs]" names.
// With episodeOnly set, a name whose main title cannot be isolated still
// yields its episode title; otherwise the strategy passes.
func dashedTitle(episodeRe, mainRe *regexp.Regexp, episodeOnly bool) titleStrategy {
	return func(in titleInput) (titleResult, bool) {
		m := episodeRe.FindStringSubmatch(in.name)
		if m == nil {
			return titleResult{}, false
		}
		episode := strings.TrimSpace(m[1])
		main := mainRe.FindStringSubmatch(in.name)
		if main == nil {
			if episodeOnly {
				return titleResult{episodeTitle: cleanTitle(episode)}, true
			}
			return titleResult{}, false
		}
		title := main[1]
		for _, re := range dashedMarkerRes {
			title = re.ReplaceAllString(title, " ")
		}
		return titleResult{title: cleanTitle(title), episodeTitle: cleanTitle(episode)}, true
	}
}

// animeBracketTitle picks the first bracket group of a "[Group][..][Title]"
// name that reads like a multi-word title.
func animeBracketTitle(in titleInput) (titleResult, bool) {
	if !strings.HasPrefix(in.name, "[") {
		return titleResult{}, false
	}
	group := strings.TrimSpace(in.rec.Group)
	for _, m := range bracketGroupRe.FindAllStringSubmatch(in.name, -1) {
		content := strings.TrimSpace(m[1])
		if group != "" && (content == group || stripSpaces(content) == stripSpaces(group)) {
			continue
		}
		if looksLikeBracketTitle(content) {
			return titleResult{title: cleanTitle(content)}, true
		}
	}
	return titleResult{}, false
}

func looksLikeBracketTitle(content string) bool {
	words := strings.Fields(content)
	if len(words) < 2 {
		return false
	}
	for _, w := range words {
		if !hasASCIILetter(w) {
			return false
		}
	}
	if equalFoldAny(content, []string{"AVC", "GB", "1080P", "720p", "1080p"}) {
		return false
	}
	for _, reject := range animeTitleRejects {
		if strings.Contains(content, reject) {
			return false
		}
	}
	return !allASCIIDigits(content)
}

// splitAroundEpisode is the TV fallback: the text before "SxxExx" is the
// title and anything after it is kept as extra. Bare "Title 5 - 01" names
// yield only the title.
func splitAroundEpisode(in titleInput) (titleResult, bool) {
	working := mediaExtensionRe.ReplaceAllString(stripLeadingGroup(in.name, in.rec.Group), "")
	if m := splitEpisodeRe.FindStringSubmatch(working); m != nil {
		return titleResult{
			title: cleanTitle(stripDottedYear(strings.TrimSpace(m[1]))),
			extra: cleanTitle(dotsToSpaces(strings.TrimSpace(m[2]))),
		}, true
	}
	if m := splitBareDashRe.FindStringSubmatch(working); m != nil {
		title := trailingCountryRe.ReplaceAllString(strings.TrimSpace(m[1]), "")
		return titleResult{title: cleanTitle(title)}, true
	}
	return titleResult{}, false
}

// subtractiveTitle claims every recognized token in the name and keeps what
// is left over.
func subtractiveTitle(in titleInput) (titleResult, bool) {
	sp := newSpans(in.name)
	group := strings.TrimSpace(in.rec.Group)

	if group != "" {
		if start, end, ok := groupSpan(in.name, group); ok {
			sp.consume(start, end)
		} else {
			sp.consumeLiteral("[" + group + "]")
		}
	}

	view := sp.view()
	for _, loc := range bracketGroupRe.FindAllStringSubmatchIndex(view, -1) {
		if metadataBracket(view[loc[2]:loc[3]]) {
			sp.consume(loc[0], loc[1])
		}
	}
	for _, re := range markerRes {
		sp.consumeAll(re)
	}
	for _, re := range tokenRes {
		sp.consumeAll(re)
	}
	for _, re := range noisePatterns {
		sp.consumeAll(re)
	}
	if in.rec.StreamingProvider != "" {
		sp.consumeAll(wordPattern(in.rec.StreamingProvider))
	}
	for _, re := range leftoverRes {
		sp.consumeAll(re)
	}

	working := separatorsToSpaces(sp.remaining(), strings.ContainsAny(in.name, ". "))
	working = collapseSpaces(working)
	working = emptyBracketRe.ReplaceAllString(working, " ")
	working = strings.TrimSpace(emptyParenRe.ReplaceAllString(working, " "))
	if group != "" {
		working = stripGroupText(working, group)
	}
	return titleResult{title: cleanTitle(working)}, true
}

// separatorsToSpaces turns dots and hyphens into spaces. When keepJoined is
// set a hyphen between two letters stays, so "Spider-Man" survives in names
// that use dots or spaces as separators.
func separatorsToSpaces(s string, keepJoined bool) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i, r := range runes {
		switch r {
		case '.':
			b.WriteByte(' ')
		case '-':
			if keepJoined && i > 0 && i+1 < len(runes) && unicode.IsLetter(runes[i-1]) && unicode.IsLetter(runes[i+1]) {
				b.WriteRune(r)
				continue
			}
			b.WriteByte(' ')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// metadataBracket reports whether a bracket group holds release metadata
// rather than title text.
func metadataBracket(content string) bool {
	for _, marker := range bracketMetadataMarkers {
		if strings.Contains(content, marker) {
			return true
		}
	}
	if equalFoldAny(content, []string{"AVC", "GB", "1080P"}) {
		return true
	}
	for _, r := range content {
		if !(r >= '0' && r <= '9') && !(r >= 'A' && r <= 'Z') && r != ' ' && r != '-' && r != '.' {
			return false
		}
	}
	return true
}

// stripGroupText removes leftovers of the group name from a normalized title.
func stripGroupText(working, group string) string {
	bracketed := "[" + group + "]"
	if strings.HasPrefix(working, bracketed) {
		working = strings.TrimSpace(working[len(bracketed):])
	}
	if strings.HasSuffix(working, " "+group) {
		working = strings.TrimSpace(working[:len(working)-len(group)-1])
	} else if strings.HasSuffix(working, group) {
		working = strings.TrimSpace(working[:len(working)-len(group)])
	}
	working = strings.ReplaceAll(working, " "+group, " ")
	working = strings.ReplaceAll(working, group, " ")
	return strings.TrimSpace(working)
}

// stripLeadingGroup drops a leading "[Group]" when it names the group.
func stripLeadingGroup(name, group string) string {
	group = strings.TrimSpace(group)
	if group == "" || !strings.HasPrefix(name, "[") {
		return name
	}
	loc := leadingBracketRe.FindStringSubmatchIndex(name)
	if loc == nil || !sameGroup(name[loc[2]:loc[3]], group) {
		return name
	}
	return strings.TrimSpace(name[loc[1]:])
}

func sameGroup(candidate, group string) bool {
	candidate = strings.TrimSpace(candidate)
	return strings.EqualFold(candidate, group) || strings.EqualFold(stripSpaces(candidate), stripSpaces(group))
}

// stripDottedYear removes a year from a dotted title and converts dots to
// spaces.
func stripDottedYear(title string) string {
	title = dottedYearRe.ReplaceAllString(title, ".")
	title = strings.TrimSpace(trailingYearRe.ReplaceAllString(title, ""))
	title = strings.ReplaceAll(title, ".", " ")
	return strings.TrimSpace(wordYearRe.ReplaceAllString(title, ""))
}

func dotsToSpaces(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, ".", " "))
}

// cleanTitle collapses whitespace and drops empty bracket pairs.
func cleanTitle(title string) string {
	cleaned := collapseSpaces(title)
	cleaned = emptyParenRe.ReplaceAllString(cleaned, " ")
	cleaned = emptyBracketRe.ReplaceAllString(cleaned, " ")
	return collapseSpaces(cleaned)
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func stripSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "")
}

func hasASCIILetter(s string) bool {
	for _, r := range s {
		if r <= unicode.MaxASCII && unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func allASCIIDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
