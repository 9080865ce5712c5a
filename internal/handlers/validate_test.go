package handlers

import "testing"

func TestRequireString(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"hello", true},
		{" padded ", true},
		{"", false},
		{"   ", false},
		{"\t\n", false},
	}
	for _, tt := range tests {
		if got := requireString(tt.in); got != tt.want {
			t.Errorf("requireString(%q): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRequireID(t *testing.T) {
	tests := []struct {
		in   int64
		want bool
	}{
		{1, true},
		{42, true},
		{0, false},
		{-5, false},
	}
	for _, tt := range tests {
		if got := requireID(tt.in); got != tt.want {
			t.Errorf("requireID(%d): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseQueryID(t *testing.T) {
	tests := []struct {
		in     string
		wantID int64
		wantOK bool
	}{
		{"7", 7, true},
		{" 7 ", 7, true},
		{"", 0, false},
		{"missing", 0, false},
		{"0", 0, false},
		{"-3", 0, false},
		{"1.5", 0, false},
	}
	for _, tt := range tests {
		id, ok := parseQueryID(tt.in)
		if id != tt.wantID || ok != tt.wantOK {
			t.Errorf("parseQueryID(%q): got (%d, %v), want (%d, %v)", tt.in, id, ok, tt.wantID, tt.wantOK)
		}
	}
}
