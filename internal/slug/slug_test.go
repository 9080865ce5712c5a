package slug

import "testing"

// TestGenerate exercises the slug generator with typical site titles,
// special characters, and edge cases.
func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "simple two words", input: "Shop A", want: "shop-a"},
		{name: "title with year", input: "Portfolio 2026", want: "portfolio-2026"},
		{name: "already lowercase", input: "already lowercase", want: "already-lowercase"},
		{name: "single word", input: "Bakery", want: "bakery"},
		{name: "punctuation stripped", input: "Jack & Jill's Cafe!", want: "jack-jills-cafe"},
		{name: "leading and trailing spaces", input: "  Spaced Out  ", want: "spaced-out"},
		{name: "consecutive hyphens collapsed", input: "a -- b", want: "a-b"},
		{name: "empty string", input: "", want: ""},
		{name: "only punctuation", input: "!!!", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Generate(tt.input); got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
