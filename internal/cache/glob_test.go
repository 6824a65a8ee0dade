package cache

import "testing"

func TestMatchPattern(t *testing.T) {
	testCases := []struct {
		name    string
		pattern string
		input   string
		want    bool
	}{
		{"exact match", "user:1", "user:1", true},
		{"exact mismatch", "user:1", "user:2", false},
		{"whole-string semantics", "user", "user:1", false},
		{"empty pattern empty name", "", "", true},
		{"empty pattern nonempty name", "", "x", false},
		{"lone star", "*", "anything at all", true},
		{"lone star empty name", "*", "", true},
		{"star prefix", "*:1", "user:1", true},
		{"star suffix", "user:*", "user:123", true},
		{"star suffix matches empty run", "user:*", "user:", true},
		{"star middle", "user:*:profile", "user:42:profile", true},
		{"star crosses separators", "user:*", "user:1/archive", true},
		{"double star", "a*b*c", "aXXbYYc", true},
		{"double star mismatch", "a*b*c", "aXXcYYb", false},
		{"question mark", "user:?", "user:7", true},
		{"question mark needs one char", "user:?", "user:", false},
		{"question mark only one char", "user:?", "user:77", false},
		{"question mark unicode", "caf?", "café", true},
		{"bracket set", "report:[123]", "report:2", true},
		{"bracket set mismatch", "report:[123]", "report:4", false},
		{"bracket range", "slot:[a-c]", "slot:b", true},
		{"bracket range mismatch", "slot:[a-c]", "slot:d", false},
		{"negated set", "slot:[!a-c]", "slot:d", true},
		{"negated set mismatch", "slot:[!a-c]", "slot:b", false},
		{"caret negation alias", "slot:[^a]", "slot:b", true},
		{"literal closing bracket", "[]]x", "]x", true},
		{"literal dash at end", "[a-]", "-", true},
		{"class then star", "[du]octor:*", "doctor:12", true},
		{"malformed unclosed class", "user:[", "user:[", false},
		{"malformed unclosed class with members", "user:[12", "user:1", false},
		{"malformed class after star", "*[", "anything", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := matchPattern(tc.pattern, tc.input); got != tc.want {
				t.Errorf("matchPattern(%q, %q) = %v, want %v", tc.pattern, tc.input, got, tc.want)
			}
		})
	}
}
