package language

import "strings"

type entry struct {
	iso1    string
	iso2    string
	iso2b   string // bibliographic form, when it differs
	display string
}

var table = []entry{
	{"en", "eng", "", "English"},
	{"de", "deu", "ger", "German"},
	{"fr", "fra", "fre", "French"},
	{"es", "spa", "", "Spanish"},
	{"it", "ita", "", "Italian"},
	{"pt", "por", "", "Portuguese"},
	{"ru", "rus", "", "Russian"},
	{"nl", "nld", "dut", "Dutch"},
	{"pl", "pol", "", "Polish"},
	{"sv", "swe", "", "Swedish"},
	{"no", "nor", "", "Norwegian"},
	{"da", "dan", "", "Danish"},
	{"fi", "fin", "", "Finnish"},
	{"ja", "jpn", "", "Japanese"},
	{"zh", "zho", "chi", "Chinese"},
	{"ko", "kor", "", "Korean"},
	{"ar", "ara", "", "Arabic"},
	{"tr", "tur", "", "Turkish"},
	{"hi", "hin", "", "Hindi"},
}

var index map[string]*entry

func init() {
	index = make(map[string]*entry, len(table)*4)
	for i := range table {
		e := &table[i]
		index[e.iso1] = e
		index[e.iso2] = e
		if e.iso2b != "" {
			index[e.iso2b] = e
		}
		index[strings.ToLower(e.display)] = e
	}
}

func lookup(code string) *entry {
	return index[strings.ToLower(strings.TrimSpace(code))]
}

// ToISO2 converts a two or three letter code, or an English language name,
// to its two-letter form. Unknown two-letter codes pass through; anything
// else unknown yields "".
func ToISO2(code string) string {
	if e := lookup(code); e != nil {
		return e.iso1
	}
	code = strings.ToLower(strings.TrimSpace(code))
	if len(code) == 2 {
		return code
	}
	return ""
}

// DisplayName returns the English name for a code. Unknown codes come back
// uppercased, and blank input yields "Unknown".
func DisplayName(code string) string {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return "Unknown"
	}
	if e := lookup(trimmed); e != nil {
		return e.display
	}
	return strings.ToUpper(trimmed)
}

// Known reports whether code resolves to a table entry.
func Known(code string) bool {
	return lookup(code) != nil
}
