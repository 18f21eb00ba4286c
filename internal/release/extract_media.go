package release

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	remuxBracketRe      = regexp.MustCompile(`\[[^\]]*Remux[^\]]*\]`)
	resolutionBracketRe = regexp.MustCompile(`\[([^\]]+?)(?:-\d+p)`)
	bracketWordRe       = regexp.MustCompile(`\[([A-Za-z0-9]+)\]`)
	dottedH26xRe        = regexp.MustCompile(`(?i)H\.(264|265)`)
	bracketResRe        = regexp.MustCompile(`\[[^\]]*-(\d{3,4})p`)
	parenResRe          = regexp.MustCompile(`\((\d{3,4})p\)`)
	bareResRe           = regexp.MustCompile(`(?i)(\d{3,4})[pi]`)
	bracketGroupRe      = regexp.MustCompile(`\[([^\]]+)\]`)
	audioChannelsRe     = regexp.MustCompile(`(?i)(AAC|AC3|DTS|MP3|FLAC|TrueHD|EAC3|DDP|Dolby Digital Plus)(\s+|\.?)(\d+\.\d+)`)
	audioWordRe         = regexp.MustCompile(`(?i)\b(AAC|AC3|DTS|MP3|FLAC|TrueHD|EAC3|DDP)\b`)
	versionRe           = regexp.MustCompile(`(?i)v(\d+(?:\.\d+)*)`)
	amznBracketRe       = regexp.MustCompile(`(?i)\[AMZN\s+WEBDL`)
	providerBeforeWebRe = regexp.MustCompile(`(?i)(\d+p)\.([A-Z0-9]+)\.(?:WEB-DL|WEBRip|WEBDL)`)
	crunchyrollWebRe    = regexp.MustCompile(`(?i)\bCR\s+(?:WEB-DL|WEBRip|WEBDL)`)
	netflixWebRe        = regexp.MustCompile(`(?i)\bNF\s+(?:WEB-DL|WEBRip|WEBDL)`)

	bracketAudioRes []*regexp.Regexp
)

func init() {
	bracketAudioRes = make([]*regexp.Regexp, len(bracketAudioCatalog))
	for i, name := range bracketAudioCatalog {
		bracketAudioRes[i] = regexp.MustCompile(`(` + regexp.QuoteMeta(name) + `)\s+(\d+\.\d+)`)
	}
}

// extractSource prefers Remux, then bracketed "<source>-<res>p" groups, then
// the source catalog.
func extractSource(name string) string {
	hasRemuxBracket := remuxBracketRe.MatchString(name)
	if hasRemuxBracket || strings.Contains(name, "Remux-") {
		return "Remux"
	}
	for _, m := range resolutionBracketRe.FindAllStringSubmatch(name, -1) {
		if source := bracketSource(m[1]); source != "" {
			return source
		}
	}
	if strings.Contains(name, "MA.WEBDL") || strings.Contains(name, "MA WEBDL") {
		return "MA WEBDL"
	}
	for i, source := range sourceCatalog {
		if sourcePatterns[i].MatchString(name) {
			return source
		}
	}
	return ""
}

func bracketSource(content string) string {
	switch {
	case strings.Contains(content, "MA WEBDL"), strings.Contains(content, "MA.WEBDL"):
		return "MA WEBDL"
	case strings.Contains(content, "iNTERNAL"):
		return "iNTERNAL"
	case strings.Contains(content, "AMZN WEBDL"):
		return "WEBDL"
	case strings.Contains(content, "WEBDL"), strings.Contains(content, "WEB-DL"):
		return "WEB-DL"
	case strings.Contains(content, "Bluray"), strings.Contains(content, "BluRay"):
		if !strings.Contains(content, "Remux") {
			return "BluRay"
		}
	}
	return ""
}

func extractFormat(name string) string {
	for _, m := range bracketWordRe.FindAllStringSubmatch(name, -1) {
		for _, format := range bracketFormatCatalog {
			if strings.EqualFold(m[1], format) {
				return format
			}
		}
	}
	if m := dottedH26xRe.FindStringSubmatch(name); m != nil {
		return "H." + m[1]
	}
	for _, format := range formatCatalog {
		if strings.Contains(name, format) {
			return format
		}
	}
	return ""
}

func extractResolution(name string) string {
	for _, re := range []*regexp.Regexp{bracketResRe, parenResRe, bareResRe} {
		if m := re.FindStringSubmatch(name); m != nil {
			return m[1] + "p"
		}
	}
	return ""
}

// extractAudio reads codec and channel layout, bracket groups first.
func extractAudio(name string) string {
	for _, m := range bracketGroupRe.FindAllStringSubmatch(name, -1) {
		content := strings.TrimSpace(m[1])
		for i, codec := range bracketAudioCatalog {
			if !strings.Contains(content, codec) {
				continue
			}
			if cm := bracketAudioRes[i].FindStringSubmatch(content); cm != nil {
				return strings.TrimSpace(cm[1]) + " " + cm[2]
			}
			return codec
		}
	}
	if m := audioChannelsRe.FindStringSubmatch(name); m != nil {
		return normalizeAudioCodec(m[1]) + " " + m[3]
	}
	if m := audioWordRe.FindStringSubmatch(name); m != nil {
		return m[1]
	}
	if !strings.Contains(name, "[") {
		for _, audio := range audioCatalog {
			if strings.Contains(name, audio) {
				return audio
			}
		}
	}
	return ""
}

func normalizeAudioCodec(codec string) string {
	if strings.EqualFold(codec, "Dolby Digital Plus") {
		return "DDP"
	}
	return codec
}

func extractHDR(name string) string {
	switch {
	case strings.Contains(name, "DV HDR10Plus"), strings.Contains(name, "DV.HDR10Plus"):
		return "DV HDR10Plus"
	case strings.Contains(name, "HDR10Plus"):
		return "HDR10Plus"
	case strings.Contains(name, "DV HDR10"), strings.Contains(name, "DV.HDR10"):
		return "DV HDR10"
	case strings.Contains(name, "HDR10"):
		return "HDR10"
	}
	return ""
}

func firstContained(name string, catalog []string) string {
	for _, item := range catalog {
		if strings.Contains(name, item) {
			return item
		}
	}
	return ""
}

func extractDevice(name string) string {
	return firstContained(name, deviceCatalog)
}

func extractOS(name string) string {
	return firstContained(name, osCatalog)
}

func extractVersion(name string) string {
	if m := versionRe.FindStringSubmatch(name); m != nil {
		return m[1]
	}
	return ""
}

// extractStreamingProvider recognizes the service a web release was taken
// from. Structural hints ("[AMZN WEBDL", "1080p.SKST.WEB-DL", "CR WEB-DL")
// win over a plain catalog scan.
func extractStreamingProvider(name string) string {
	if amznBracketRe.MatchString(name) {
		return "AMZN"
	}
	if m := providerBeforeWebRe.FindStringSubmatch(name); m != nil {
		token := m[2]
		for _, provider := range providerCatalog {
			if strings.EqualFold(token, provider) {
				return provider
			}
		}
		if len(token) >= 2 && len(token) <= 6 && upperOrDigits(token) {
			return token
		}
	}
	if crunchyrollWebRe.MatchString(name) {
		return "CR"
	}
	if netflixWebRe.MatchString(name) {
		return "NF"
	}
	for i, provider := range providerCatalog {
		if providerPatterns[i].MatchString(name) {
			return provider
		}
	}
	if strings.Contains(name, "AMZN WEBDL") || strings.Contains(name, "AMZN.WEBDL") {
		return "AMZN"
	}
	return ""
}

func upperOrDigits(token string) bool {
	for _, r := range token {
		if !unicode.IsUpper(r) && !(r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}
