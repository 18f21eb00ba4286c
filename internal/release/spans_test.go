package release

import (
	"regexp"
	"testing"
)

func TestSpansConsume(t *testing.T) {
	sp := newSpans("Show.S01E01.1080p-GROUP")
	sp.consumeAll(regexp.MustCompile(`S\d{2}E\d{2}`))
	sp.consume(17, 100)

	if got, want := sp.view(), "Show.      .1080p      "; got != want {
		t.Fatalf("unexpected view: got %q want %q", got, want)
	}
	if got, want := sp.remaining(), "Show. .1080p"; got != want {
		t.Fatalf("unexpected remaining: got %q want %q", got, want)
	}
}

func TestSpansMatchAgainstView(t *testing.T) {
	sp := newSpans("AxB")
	sp.consumeLiteral("x")
	// With x claimed, A and B are separate words.
	sp.consumeAll(regexp.MustCompile(`\bB\b`))
	if got := sp.remaining(); got != "A" {
		t.Fatalf("unexpected remaining: got %q want %q", got, "A")
	}
}

func TestSpansEdges(t *testing.T) {
	sp := newSpans("")
	sp.consume(-5, 5)
	sp.consumeLiteral("")
	if got := sp.remaining(); got != "" {
		t.Fatalf("unexpected remaining: got %q", got)
	}

	sp = newSpans("aaa")
	sp.consumeLiteral("a")
	if got := sp.remaining(); got != "" {
		t.Fatalf("unexpected remaining: got %q", got)
	}
}

func TestSubtractiveTitleClaimsUnplacedBracketGroup(t *testing.T) {
	// The group sits mid-name, where no group tier would have read it.
	res, ok := subtractiveTitle(titleInput{name: "Movie [GRP] 1080p", rec: &Release{Group: "GRP"}})
	if !ok {
		t.Fatal("expected a title")
	}
	if res.title != "Movie" {
		t.Fatalf("unexpected title: got %q want %q", res.title, "Movie")
	}
}
