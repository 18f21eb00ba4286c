package release

import "regexp"

// Catalogs are evaluated in declaration order and the first hit wins, so the
// order of every list below is significant.

var sourceCatalog = []string{
	// DVD
	"DVDRip", "DVD-Rip", "DVDR", "DVD5", "DVD9", "DVD-R", "DvDrip",
	// Web
	"WEB-DL", "WEBRip", "Web Rip", "Web Download", "WEB", "WEBDL", "AMZN WEBDL", "MA WEBDL",
	// Broadcast
	"HDTV", "PDTV", "DSR", "SATRip", "TVRip", "iNTERNAL HDTV", "iNTERNAL",
	// Blu-ray
	"BluRay", "BDRip", "BRRip", "BD",
	// Theatrical and pre-release
	"VHSRip", "R5", "TC", "TS", "CAM", "SCR",
	"HDCAM", "TELESYNC", "TELECINE", "Remux",
	"Workprint", "WP", "PPV Rip", "PPVRip", "DDC",
	"VOD Rip", "VODRip", "HC HD Rip", "HCHDRip",
	"Web Capture", "HDRip", "DCP", "Theatre", "Theater",
}

var bracketFormatCatalog = []string{"AVC", "h265", "h264", "HEVC", "H264", "x265", "x264"}

var formatCatalog = []string{
	"SVCD", "VCD", "XviD", "DivX", "x264", "x265", "HEVC",
	"H264", "AVC", "MPEG2", "MPEG4", "h265", "h264",
}

// bracketAudioCatalog lists the codec names recognized inside bracket
// groups, longer names first.
var bracketAudioCatalog = []string{
	"TrueHD", "DTS-HD MA", "DTS-HD", "EAC3 Atmos", "EAC3", "AC3", "AAC", "MP3", "FLAC", "DDP", "Dolby Digital Plus",
}

var audioCatalog = []string{
	"AC3", "DTS", "AAC", "MP3", "FLAC", "TrueHD",
	"DTS-HD", "DTS-HDMA", "DTS-HD MA", "EAC3", "EAC3 Atmos",
	"DD5.1", "DD2.0", "DDP5.1", "DDP2.0", "DDP", "Dolby Digital Plus",
}

var deviceCatalog = []string{
	"XBOX", "XBOX360", "XBOXONE", "PS2", "PS3", "PS4", "PS5",
	"Wii", "WiiU", "Switch", "PSP", "NDS", "3DS",
}

var osCatalog = []string{
	"Linux", "Windows", "MacOS", "OSX", "Unix",
	"Android", "iOS", "WinXP", "Win7", "Win8", "Win10", "Win11",
}

// bracketLanguageCodes are matched as whole bracket groups such as "[DE]".
var bracketLanguageCodes = []string{
	"DE", "EN", "FR", "ES", "IT", "PT", "RU", "NL", "PL",
	"SV", "NO", "DA", "FI", "JA", "ZH", "KO", "AR", "TR",
}

type languageWord struct {
	word string
	code string
}

// languageWords are matched case-sensitively anywhere in the name.
var languageWords = []languageWord{
	{"German", "de"}, {"GERMAN", "de"}, {"English", "en"}, {"ENGLISH", "en"},
	{"French", "fr"}, {"FRENCH", "fr"}, {"Spanish", "es"}, {"SPANISH", "es"},
	{"Italian", "it"}, {"ITALIAN", "it"}, {"iTALiAN", "it"}, {"Portuguese", "pt"}, {"PORTUGUESE", "pt"},
	{"Russian", "ru"}, {"RUSSIAN", "ru"}, {"Dutch", "nl"}, {"DUTCH", "nl"},
	{"Polish", "pl"}, {"POLISH", "pl"}, {"Swedish", "sv"}, {"SWEDiSH", "sv"},
	{"Norwegian", "no"}, {"NORWEGiAN", "no"}, {"NORDiC", "no"}, {"Nordic", "no"},
	{"Danish", "da"}, {"DANISH", "da"}, {"Finnish", "fi"}, {"FINNISH", "fi"},
	{"Japanese", "ja"}, {"JAPANESE", "ja"}, {"Chinese", "zh"}, {"CHINESE", "zh"},
	{"Korean", "ko"}, {"KOREAN", "ko"}, {"Arabic", "ar"}, {"ARABIC", "ar"},
	{"Turkish", "tr"}, {"TURKISH", "tr"},
}

type countryCode struct {
	code string
	name string
}

// countryCodes are matched inside parentheses, e.g. "(CA)".
var countryCodes = []countryCode{
	{"CA", "Canadian"}, {"US", "US"}, {"UK", "UK"}, {"AU", "Australian"},
	{"DE", "German"}, {"FR", "French"}, {"ES", "Spanish"}, {"IT", "Italian"},
	{"JP", "Japanese"}, {"CN", "Chinese"}, {"KR", "Korean"},
}

type flagPattern struct {
	name string
	re   *regexp.Regexp
}

func flag(name, pattern string) flagPattern {
	return flagPattern{name: name, re: regexp.MustCompile(pattern)}
}

var flagCatalog = []flagPattern{
	flag("READNFO", `(?i)READ\.?NFO`),
	flag("PROPER", `(?i)PROPER`),
	flag("REPACK", `(?i)REPACK`),
	flag("RERIP", `(?i)RERIP`),
	flag("INTERNAL", `(?i)\bINTERNAL\b`),
	flag("TV Dubbed", `(?i)TV\.?Dubbed`),
	flag("Dubbed", `(?i)\bDubbed\b`),
	flag("Subbed", `(?i)\bSubbed\b`),
	flag("Hard Sub", `(?i)(?:Hard\.?Sub|HardSub)`),
	flag("MultiSub", `(?i)MultiSub`),
	flag("Multi-Subs", `(?i)Multi-Subs`),
	flag("Uncut", `(?i)\bUncut\b`),
	flag("Director's Cut", `(?i)Director'?s\.?Cut`),
	flag("Extended", `(?i)\bExtended\b`),
	flag("Limited", `(?i)\bLimited\b`),
	flag("Limited Edition", `(?i)Limited\.?Edition`),
	flag("Special Edition", `(?i)Special\.?Edition`),
	flag("Collector's Edition", `(?i)Collector'?s\.?Edition`),
	flag("Ultimate Edition", `(?i)Ultimate\.?Edition`),
	flag("IMAX", `(?i)\bIMAX\b`),
	flag("IMAX HYBRID", `(?i)IMAX\s+HYBRID`),
	flag("3D", `(?i)\[3D\]|\b3D\b`),
	flag("10bit", `(?i)\[10bit\]|\b10bit\b`),
	flag("REMASTERED", `(?i)REMASTERED`),
	flag("ANiME", `(?i)ANiME`),
	flag("NUKED", `(?i)NUKED`),
	flag("DUPE", `(?i)DUPE`),
	flag("RETAIL", `(?i)RETAIL`),
	flag("NFOFIX", `(?i)NFOFIX`),
	flag("COMPLETE", `(?i)COMPLETE`),
	flag("FESTIVAL", `(?i)FESTIVAL`),
	flag("STV", `(?i)\bSTV\b`),
}

var providerCatalog = []string{
	"9NOW", "A3P", "AE", "ABC", "AJAZ", "ALL4", "AMC", "AMZN", "Amazon", "Prime Video", "Prime",
	"ANLB", "ANPL", "APPS", "ARD", "AS", "ATVP", "Apple TV+", "AppleTV", "Apple",
	"AUBC", "BCORE", "BK", "BNGE", "BOOM", "BRAV", "CBC", "CBS", "CC", "CHGD", "CLBI",
	"CMAX", "Cinemax", "CMOR", "CMT", "CN", "CNBC", "CNLP", "COOK", "CR", "Crunchyroll",
	"CRAV", "CRIT", "CRKL", "CRKI", "CSPN", "CTV", "CUR", "CW", "CWS", "DCU", "DDY",
	"DEST", "DF", "DISC", "Discovery", "Discovery+", "Discovery Plus", "DIY", "DPLY",
	"DRPO", "DRTV", "DSCP", "DSNP", "Disney+", "DisneyPlus", "Disney", "DTV",
	"DW", "DLWP", "EPIX", "ESPN", "ESPN+", "ESPN Plus", "ESQ", "ETTV", "ETV",
	"FAH", "FAM", "FBWatch", "FJR", "FOOD", "FOX", "FPT", "FREE", "FTV", "FUNI", "Funimation",
	"FXTL", "FYI", "GC", "GLBL", "GLOB", "GLBO", "GO90", "GPLAY", "Google Play", "PLAY",
	"HBO", "HBO Max", "HMAX", "MAX", "Max", "HGTV", "HIDI", "HIDIVE", "HIST", "HLMK",
	"HPLAY", "HTSR", "HS", "HULU", "Hulu", "iP", "BBC iPlayer", "BBC", "iQIYI",
	"iT", "iTunes", "ITV", "ITVX", "JC", "KAYO", "KNOW", "KNPY", "KS", "LGP", "LIFE",
	"LN", "MA", "Movies Anywhere", "MBC", "MMAX", "MNBC", "MS", "Microsoft Store",
	"MTOD", "MTV", "MUBI", "MY5", "NATG", "NBA", "NBC", "NBLA", "NF", "Netflix",
	"NFL", "NFLN", "NICK", "NOW", "NRK", "ODK", "OPTO", "OSN", "OXGN", "PBS", "PBSK",
	"PCOK", "Peacock", "PLUZ", "PMNT", "PMTP", "Paramount+", "Paramount Plus", "Paramount",
	"POGO", "PSN", "PlayStation Network", "PUHU", "QIBI", "RED", "YouTube Premium", "YouTube Red",
	"RKTN", "ROKU", "RSTR", "RTE", "RTP", "RTPPLAY", "SAINA", "SP", "SBS", "SESO",
	"SHDR", "SHMI", "SHO", "Showtime", "Showtime Anytime", "SKST", "SkyShowtime",
	"SLNG", "SNET", "SNXT", "SPIK", "SPRT", "SS", "STAN", "STRP", "STZ", "STARZ", "Starz",
	"SVT", "SYFY", "TEN", "TIMV", "TK", "TLC", "TOU", "TRVL", "TUBI", "TV2", "TV3", "TV4",
	"TVING", "TVL", "TVNZ", "UFC", "UKTV", "UNIV", "USAN", "VH1", "VIAP", "Viaplay",
	"VICE", "VIKI", "VIU", "VLCT", "VMEO", "Vimeo", "VRV", "VTRN", "WAVVE", "WNET", "WTCH", "WWEN",
	"WWE Network", "XBOX", "Xbox Video", "YT", "YouTube", "YouTube Movies", "YouTube TV",
	"ZDF",
	// Japanese broadcasters and services
	"ABMA", "ADN", "ANIMAX", "AO", "AT-X", "ATX", "Baha", "B-Global", "Bstation", "BSP",
	"NHK-BSP", "BS4", "BS5", "EX-BS", "BS-EX", "BS6", "BS7", "BSJ", "BS-TX", "BS8",
	"BS-Fuji", "BS11", "BS12", "CS-Fuji ONE", "CX", "DMM", "EX", "CS3", "EX-CS1",
	"CS-EX1", "CSA", "FOD", "FUNi", "KBC", "M-ON!", "MX", "NHKG", "NHKE", "NTV", "TBS",
	"TX", "UNXT", "U-NEXT", "WAKA", "Wakanim", "WOWOW", "Wowow", "YTV",
}

// Group exclusions are compared case-insensitively against candidate groups.
var (
	leadingGroupExclusions = []string{
		"AVC", "GB", "1080P", "720p", "WEB-DL", "WEBDL", "WEBRiP", "BluRay", "x264", "x265",
		"h264", "h265", "HEVC", "AAC", "AC3", "DTS", "MultiSub", "Multi-Subs",
	}
	trailingGroupExclusions = append(append([]string{}, leadingGroupExclusions...), "H264", "AAC 2.0")
	dottedGroupExclusions   = []string{"DVDRip", "x264", "x265", "AC3", "DTS", "AAC", "MP3", "FLAC", "HEVC", "AVC"}
)

// titleTerminators end the episode title in dotted "Show.S01E01.Title.<term>"
// names. Each is tried in order.
var titleTerminators = []string{
	"German", "English", "French", "Spanish", "Italian", "Portuguese", "Russian", "Dutch",
	"Polish", "Swedish", "Norwegian", "Danish", "Finnish", "Japanese", "Chinese", "Korean",
	"Arabic", "Turkish", "NORDiC", "SWEDiSH", "NORWEGiAN", "GERMAN", "DL", "TV", "Dubbed",
	"Subbed", "BluRay", "BDRip", "DVDRip", "WEB-DL", "HDTV", "1080p", "720p", "480p", "x264",
	"x265", "h264", "h265", "HEVC", "AVC", "SVCD", "VCD", "READ", "NFO",
}

// bracketMetadataMarkers flag a bracket group as metadata when contained in it.
var bracketMetadataMarkers = []string{
	"Remux", "TrueHD", "DTS-HD", "DTS HD", "EAC3", "WEB-DL", "WEBRip", "WEBDL", "BluRay", "Bluray",
	"x264", "x265", "h264", "h265", "HEVC", "AVC", "AAC", "AC3", "DTS", "MultiSub", "Multi-Subs",
	"HDR10", "1080p", "720p", "2160p", "480p", "GB", "Surround Sound", "imdbid", "imdb", "tmdb",
}

// animeTitleRejects disqualify a bracket group from being an anime title.
var animeTitleRejects = []string{
	"WEB-DL", "WEBRip", "WEBDL", "MultiSub", "Multi-Subs", "Surround Sound",
	"x264", "x265", "h264", "h265", "HEVC", "AVC",
}

// titleNoiseTokens are erased from the title wherever they stand as words.
// The streaming provider catalog is appended at init.
var titleNoiseTokens = []string{
	"DVDRip", "DVD-Rip", "DVDR", "DVD5", "DVD9", "DVD-R", "DvDrip",
	"WEB-DL", "WEBRip", "Web Rip", "Web Download", "WEB", "WEBDL", "AMZN WEBDL", "MA WEBDL",
	"HDTV", "PDTV", "DSR", "SATRip", "TVRip", "iNTERNAL HDTV", "iNTERNAL", "INTERNAL",
	"BluRay", "BDRip", "BRRip", "BD", "Remux", "Hybrid",
	"VHSRip", "R5", "TC", "TS", "CAM", "SCR", "HDCAM", "TELESYNC", "TELECINE",
	"Workprint", "WP", "PPV Rip", "PPVRip", "DDC", "VOD Rip", "VODRip",
	"HC HD Rip", "HCHDRip", "Web Capture", "HDRip", "DCP", "Theatre", "Theater",
	"SVCD", "VCD", "XviD", "DivX", "x264", "x265", "h265", "h264", "HEVC", "AVC",
	"H.264", "H.265", "H264", "H265", "MPEG2", "MPEG4",
	"AC3", "DTS", "AAC", "MP3", "TrueHD", "EAC3", "Atmos", "Surround Sound", "DDP", "DDP2.0", "DDP5.1", "DDP2", "DDP5", "Dolby Digital Plus",
	"AAC 2.0", "AAC2.0", "AAC 5.1", "AAC5.1", "AC3 2.0", "AC3 5.1", "DTS 5.1", "DTS 2.0",
	"German", "English", "French", "Spanish", "Italian", "Eng",
	"NORDiC", "SWEDiSH", "NORWEGiAN", "Swedish", "Norwegian", "Danish",
	"Finnish", "Japanese", "Chinese", "Korean", "Arabic", "Turkish",
	"Multi", "MULTI", "Dubbed", "Subbed", "Hard.Sub", "HardSub",
	"TV", "DL", "READNFO", "NFO", "HDR10", "DV", "HDR10Plus",
	"3D", "10bit", "IMAX", "HYBRID", "REMASTERED", "Proper",
	"Uncut", "Extended", "Limited", "Special", "Collector",
	"Ultimate", "Edition", "U-Edition", "Director", "Cut",
	"ANiME", "MultiSub", "Multi-Subs",
}

var (
	sourcePatterns   []*regexp.Regexp
	providerPatterns []*regexp.Regexp
	noisePatterns    []*regexp.Regexp
	terminatorTitles []*regexp.Regexp
	bracketLangRes   []*regexp.Regexp
)

func init() {
	sourcePatterns = make([]*regexp.Regexp, len(sourceCatalog))
	for i, source := range sourceCatalog {
		sourcePatterns[i] = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(source))
	}

	providerPatterns = make([]*regexp.Regexp, len(providerCatalog))
	for i, provider := range providerCatalog {
		providerPatterns[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(provider) + `\b`)
	}

	titleNoiseTokens = append(titleNoiseTokens, providerCatalog...)
	noisePatterns = make([]*regexp.Regexp, len(titleNoiseTokens))
	for i, token := range titleNoiseTokens {
		noisePatterns[i] = wordPattern(token)
	}

	terminatorTitles = make([]*regexp.Regexp, len(titleTerminators))
	for i, word := range titleTerminators {
		terminatorTitles[i] = regexp.MustCompile(`(?i)(.+?)\.(S\d{1,2}E\d{1,3})\.(.+?)\.` + regexp.QuoteMeta(word) + `(?:\.|$)`)
	}

	bracketLangRes = make([]*regexp.Regexp, len(bracketLanguageCodes))
	for i, code := range bracketLanguageCodes {
		bracketLangRes[i] = regexp.MustCompile(`\[` + regexp.QuoteMeta(code) + `\]`)
	}
}

// wordPattern matches token as a standalone word or when glued to a dot.
func wordPattern(token string) *regexp.Regexp {
	q := regexp.QuoteMeta(token)
	return regexp.MustCompile(`(?i)\b` + q + `\b|\.` + q + `\b|\b` + q + `\.`)
}
