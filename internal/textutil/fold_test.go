package textutil

import "testing"

func TestSortKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"The.Matrix.1999", "the matrix 1999"},
		{"  Amélie  ", "amelie"},
		{"Marvel's Agents of S.H.I.E.L.D.", "marvel s agents of s h i e l d"},
		{"[GM-Team]", "gm team"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := SortKey(tt.in); got != tt.want {
				t.Fatalf("unexpected sort key: got %q want %q", got, tt.want)
			}
		})
	}
}

func TestFoldKey(t *testing.T) {
	if FoldKey("iNTERNAL") != FoldKey("INTERNAL") {
		t.Fatal("expected case-insensitive fold keys to match")
	}
	if FoldKey("PROPER") == FoldKey("REPACK") {
		t.Fatal("expected distinct fold keys")
	}
}
