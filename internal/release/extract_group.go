package release

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	leadingBracketRe  = regexp.MustCompile(`^\[([^\]]+)\]`)
	trailingBracketRe = regexp.MustCompile(`\[([^\]]+)\]$`)
	dottedGroupRe     = regexp.MustCompile(`\.([A-Z][a-zA-Z0-9]{2,15})$`)
)

type groupStrategy func(name string) (string, bool)

// groupStrategies: "[Group] ..." first, then "... [Group]", then the token
// after the last hyphen, then a capitalized last dotted token.
var groupStrategies = []groupStrategy{
	leadingBracketGroup,
	trailingBracketGroup,
	hyphenGroup,
	dottedGroup,
}

func extractGroup(name string) string {
	for _, strategy := range groupStrategies {
		if group, ok := strategy(name); ok {
			return group
		}
	}
	return ""
}

func leadingBracketGroup(name string) (string, bool) {
	m := leadingBracketRe.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}
	candidate := strings.TrimSpace(m[1])
	if len(candidate) < 3 || len(candidate) > 30 {
		return "", false
	}
	if !mostlyGroupChars(candidate, true) || equalFoldAny(candidate, leadingGroupExclusions) {
		return "", false
	}
	return candidate, true
}

func trailingBracketGroup(name string) (string, bool) {
	m := trailingBracketRe.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}
	candidate := strings.TrimSpace(m[1])
	if len(candidate) < 2 || len(candidate) > 30 {
		return "", false
	}
	if !mostlyGroupChars(candidate, false) || equalFoldAny(candidate, trailingGroupExclusions) {
		return "", false
	}
	return candidate, true
}

// groupSpan locates the token group was read from, tier by tier: the whole
// bracket for the bracket tiers, everything from the last hyphen for the
// hyphen tier, and the final dotted word otherwise. A name opening with a
// bracket only gives up that bracket.
func groupSpan(name, group string) (int, int, bool) {
	if g, ok := leadingBracketGroup(name); ok && sameGroup(g, group) {
		loc := leadingBracketRe.FindStringIndex(name)
		return loc[0], loc[1], true
	}
	if strings.HasPrefix(name, "[") {
		return 0, 0, false
	}
	if g, ok := trailingBracketGroup(name); ok && sameGroup(g, group) {
		loc := trailingBracketRe.FindStringIndex(name)
		return loc[0], loc[1], true
	}
	if g, ok := hyphenGroup(name); ok && g == group {
		return strings.LastIndexByte(name, '-'), len(name), true
	}
	if g, ok := dottedGroup(name); ok && g == group {
		loc := dottedGroupRe.FindStringIndex(name)
		return loc[0], loc[1], true
	}
	return 0, 0, false
}

// hyphenGroup takes the text after the last hyphen, minus any extension.
func hyphenGroup(name string) (string, bool) {
	idx := strings.LastIndexByte(name, '-')
	if idx < 0 {
		return "", false
	}
	group := name[idx+1:]
	if dot := strings.IndexByte(group, '.'); dot >= 0 {
		group = group[:dot]
	}
	if group == "" || len(group) >= 50 {
		return "", false
	}
	return group, true
}

func dottedGroup(name string) (string, bool) {
	m := dottedGroupRe.FindStringSubmatch(name)
	if m == nil || equalFoldAny(m[1], dottedGroupExclusions) {
		return "", false
	}
	return m[1], true
}

// mostlyGroupChars reports whether more than 70% of the candidate is made of
// letters, digits, '-' and '_' (and spaces when allowSpace is set).
func mostlyGroupChars(candidate string, allowSpace bool) bool {
	count := 0
	for _, r := range candidate {
		switch {
		case unicode.IsLetter(r), unicode.IsNumber(r), r == '-', r == '_':
			count++
		case allowSpace && r == ' ':
			count++
		}
	}
	return float64(count)/float64(len(candidate)) > 0.7
}

func equalFoldAny(value string, list []string) bool {
	for _, item := range list {
		if strings.EqualFold(value, item) {
			return true
		}
	}
	return false
}
