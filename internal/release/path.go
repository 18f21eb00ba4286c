package release

import (
	"strings"
	"unicode/utf8"
)

// ParsePath splits a media file path into series or movie directory, an
// optional season directory and the file name, and parses each part. Both
// "/" and "\" separate components.
//
// The file is parsed with the parser's kind; its Type is then set to tv when
// a season or episode was found and to movie otherwise, and the directory is
// parsed as a series or movie directory to match. ParsePath returns nil when
// the path is not valid UTF-8, has no file name, or has no directory name
// where one is needed.
func (p *Parser) ParsePath(path string) *PathInfo {
	if !utf8.ValidString(path) {
		return nil
	}
	parts := pathComponents(strings.ReplaceAll(path, `\`, "/"))
	if len(parts) < 2 {
		return nil
	}
	fileName := parts[len(parts)-1]
	if fileName == ".." {
		return nil
	}

	file := p.Parse(fileStem(fileName))
	fileKind := KindMovie
	if file.Season != nil || file.Episode != nil {
		fileKind = KindTV
	}
	file.Type = fileKind

	parent := parts[len(parts)-2]
	dirName := parent
	var season *int
	if n, ok := ParseSeasonDirectory(parent); ok {
		if len(parts) < 3 {
			return nil
		}
		season = intPtr(n)
		dirName = parts[len(parts)-3]
	}
	if dirName == ".." {
		return nil
	}

	dirParser := &Parser{kind: fileKind, heuristics: p.heuristics}
	var dir *Release
	if fileKind == KindTV {
		dir = dirParser.ParseSeriesDirectory(dirName)
	} else {
		dir = dirParser.ParseMovieDirectory(dirName)
	}

	return &PathInfo{
		Directory: dir,
		Season:    season,
		File:      file,
		FullPath:  path,
	}
}

// pathComponents returns the named components of a slash separated path.
// Empty and "." components are dropped; the root has no name.
func pathComponents(path string) []string {
	var parts []string
	for _, part := range strings.Split(path, "/") {
		if part == "" || part == "." {
			continue
		}
		parts = append(parts, part)
	}
	return parts
}

// fileStem drops the final extension. A leading dot does not start an
// extension, so ".hidden" stays whole.
func fileStem(name string) string {
	idx := strings.LastIndexByte(name, '.')
	if idx <= 0 {
		return name
	}
	return name[:idx]
}

// ParsePath parses path with a default parser for kind.
func ParsePath(kind Kind, path string) *PathInfo {
	return New(kind).ParsePath(path)
}
