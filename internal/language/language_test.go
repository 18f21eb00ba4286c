package language

import "testing"

func TestToISO2(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"en", "en"},
		{"EN", "en"},
		{"ger", "de"},
		{"deu", "de"},
		{"fre", "fr"},
		{"chi", "zh"},
		{"tur", "tr"},
		{"Turkish", "tr"},
		{"german", "de"},
		{"xy", "xy"},
		{"xyz", ""},
		{"", ""},
		{"  ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ToISO2(tt.input); got != tt.want {
				t.Fatalf("unexpected code: got %q want %q", got, tt.want)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"de", "German"},
		{"DE", "German"},
		{"sv", "Swedish"},
		{"no", "Norwegian"},
		{"tr", "Turkish"},
		{"ja", "Japanese"},
		{"xx", "XX"},
		{"", "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := DisplayName(tt.input); got != tt.want {
				t.Fatalf("unexpected display name: got %q want %q", got, tt.want)
			}
		})
	}
}

func TestKnown(t *testing.T) {
	if !Known("fin") {
		t.Fatal("expected fin to be known")
	}
	if Known("klingon") {
		t.Fatal("expected klingon to be unknown")
	}
}
