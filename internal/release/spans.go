package release

import (
	"regexp"
	"strings"
)

// spans tracks which byte ranges of a release name have been claimed by a
// recognized token. Matching always runs against view(), where claimed bytes
// read as spaces, so offsets stay aligned with the original string and later
// patterns see word boundaries where earlier tokens used to be.
type spans struct {
	src      string
	consumed []bool
}

func newSpans(src string) *spans {
	return &spans{src: src, consumed: make([]bool, len(src))}
}

// consume marks [start, end) as claimed. Out of range bounds are clipped.
func (s *spans) consume(start, end int) {
	if start < 0 {
		start = 0
	}
	if end > len(s.src) {
		end = len(s.src)
	}
	for i := start; i < end; i++ {
		s.consumed[i] = true
	}
}

// consumeAll claims every match of re in the current view.
func (s *spans) consumeAll(re *regexp.Regexp) {
	for _, loc := range re.FindAllStringIndex(s.view(), -1) {
		s.consume(loc[0], loc[1])
	}
}

// consumeLiteral claims every occurrence of text in the current view.
func (s *spans) consumeLiteral(text string) {
	if text == "" {
		return
	}
	view := s.view()
	offset := 0
	for {
		idx := strings.Index(view[offset:], text)
		if idx < 0 {
			return
		}
		start := offset + idx
		s.consume(start, start+len(text))
		offset = start + len(text)
	}
}

func (s *spans) view() string {
	var b strings.Builder
	b.Grow(len(s.src))
	for i := 0; i < len(s.src); i++ {
		if s.consumed[i] {
			b.WriteByte(' ')
			continue
		}
		b.WriteByte(s.src[i])
	}
	return b.String()
}

// remaining joins the unclaimed runs with single spaces.
func (s *spans) remaining() string {
	var parts []string
	start := -1
	for i := 0; i <= len(s.src); i++ {
		free := i < len(s.src) && !s.consumed[i]
		switch {
		case free && start < 0:
			start = i
		case !free && start >= 0:
			parts = append(parts, s.src[start:i])
			start = -1
		}
	}
	return strings.Join(parts, " ")
}
