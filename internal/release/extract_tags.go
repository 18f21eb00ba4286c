package release

import (
	"regexp"
	"strings"

	"relparse/internal/language"
	"relparse/internal/textutil"
)

var (
	engBracketRe     = regexp.MustCompile(`\[Eng(?:\.Hard\.Sub)?\]`)
	countryParenRe   = regexp.MustCompile(`\(([A-Z]{2})\)`)
	tmdbBraceRe      = regexp.MustCompile(`\{tmdb-(\d+)\}`)
	tmdbBracketRe    = regexp.MustCompile(`\[tmdb(?:id)?-(\d+)\]`)
	tvdbBraceRe      = regexp.MustCompile(`\{tvdb-(\d+)\}`)
	tvdbBracketRe    = regexp.MustCompile(`\[tvdb(?:id)?-(\d+)\]`)
	imdbBraceRe      = regexp.MustCompile(`\{imdb-(tt\d+)\}`)
	imdbBracketRe    = regexp.MustCompile(`\[imdb(?:id)?-(tt\d+)\]`)
	editionBraceRe   = regexp.MustCompile(`\{edition-([^}]+)\}`)
	editionBracketRe = regexp.MustCompile(`\[([A-Z]-Edition)\]`)
)

const (
	multiLanguageKey  = "multi"
	multiLanguageName = "Multilingual"
)

// extractLanguages collects every language hint into a code to display name
// map. Bracketed codes ("[DE]", "[Eng]") come first, then language words,
// then multilingual markers and parenthesized country codes.
func extractLanguages(name string) map[string]string {
	languages := make(map[string]string)

	for i, code := range bracketLanguageCodes {
		if bracketLangRes[i].MatchString(name) {
			key := strings.ToLower(code)
			languages[key] = language.DisplayName(key)
		}
	}
	if engBracketRe.MatchString(name) {
		languages["en"] = language.DisplayName("en")
	}

	for _, lw := range languageWords {
		if _, seen := languages[lw.code]; seen {
			continue
		}
		if strings.Contains(name, lw.word) {
			languages[lw.code] = language.DisplayName(lw.code)
		}
	}

	if strings.Contains(name, "Multi") || strings.Contains(name, "MULTI") {
		languages[multiLanguageKey] = multiLanguageName
	}

	for _, m := range countryParenRe.FindAllStringSubmatch(name, -1) {
		for _, cc := range countryCodes {
			if !strings.EqualFold(m[1], cc.code) {
				continue
			}
			key := strings.ToLower(cc.code)
			if _, seen := languages[key]; !seen {
				languages[key] = cc.name
			}
		}
	}

	if len(languages) == 0 {
		return nil
	}
	return languages
}

// extractFlags returns every matching flag once, in catalog order. Flags
// that differ only in case collapse to the first spelling.
func extractFlags(name string) []string {
	var flags []string
	seen := make(map[string]struct{})
	for _, fp := range flagCatalog {
		if !fp.re.MatchString(name) {
			continue
		}
		key := textutil.FoldKey(fp.name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		flags = append(flags, fp.name)
	}
	return flags
}

func firstSubmatch(name string, res ...*regexp.Regexp) string {
	for _, re := range res {
		if m := re.FindStringSubmatch(name); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

func extractTMDBID(name string) string {
	return firstSubmatch(name, tmdbBraceRe, tmdbBracketRe)
}

func extractTVDBID(name string) string {
	return firstSubmatch(name, tvdbBraceRe, tvdbBracketRe)
}

func extractIMDBID(name string) string {
	return firstSubmatch(name, imdbBraceRe, imdbBracketRe)
}

func extractEdition(name string) string {
	return firstSubmatch(name, editionBraceRe, editionBracketRe)
}
