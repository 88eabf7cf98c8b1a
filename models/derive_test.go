package models

import (
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple two words", "Hello World", "hello-world"},
		{"mixed case", "The Quick Brown Fox", "the-quick-brown-fox"},
		{"punctuation stripped", "Hello, World! How's it going?", "hello-world-hows-it-going"},
		{"colon separated title", "Go: The Complete Guide", "go-the-complete-guide"},
		{"ampersand and at sign", "Rock & Roll @ the Arena", "rock-roll-the-arena"},
		{"numbers kept", "Issue #42 costs $100", "issue-42-costs-100"},
		{"existing hyphens kept", "well-known fact", "well-known-fact"},
		{"hyphen runs collapsed", "hello---world", "hello-world"},
		{"whitespace runs collapsed", "hello    world", "hello-world"},
		{"tabs and newlines treated as whitespace", "hello\t\nworld", "hello-world"},
		{"leading and trailing trimmed", "  --hello world--  ", "hello-world"},
		{"empty string", "", ""},
		{"only special characters", "!@#$%^&*()", ""},
		{"only hyphens", "-----", ""},
		{"single character", "A", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Slugifying an existing slug must not change it.
func TestSlugifyIdempotent(t *testing.T) {
	for _, s := range []string{"hello-world", "my-post-2026", "a", "123"} {
		if got := Slugify(s); got != s {
			t.Errorf("Slugify(%q) = %q, want unchanged", s, got)
		}
	}
}

func TestSlugifyShape(t *testing.T) {
	inputs := []string{
		"Deploying Go Apps on Kubernetes (2026 Edition)",
		"   lots\tof \n whitespace   ",
		"----", "UPPER lower MiXeD", "unicode éè stripped",
	}
	for _, in := range inputs {
		got := Slugify(in)
		if got != strings.ToLower(got) {
			t.Errorf("Slugify(%q) = %q is not lowercase", in, got)
		}
		if strings.HasPrefix(got, "-") || strings.HasSuffix(got, "-") {
			t.Errorf("Slugify(%q) = %q has a leading or trailing hyphen", in, got)
		}
		if strings.Contains(got, "--") {
			t.Errorf("Slugify(%q) = %q contains a hyphen run", in, got)
		}
		for _, r := range got {
			if !(r == '-' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')) {
				t.Errorf("Slugify(%q) = %q contains disallowed rune %q", in, got, r)
			}
		}
	}
}

func TestReadTime(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"empty content", "", 1},
		{"whitespace only", "   \n\t  ", 1},
		{"one word", "hello", 1},
		{"exactly 200 words", strings.Repeat("word ", 200), 1},
		{"201 words rounds up", strings.Repeat("word ", 201), 2},
		{"400 words", strings.Repeat("word ", 400), 2},
		{"401 words", strings.Repeat("word ", 401), 3},
		{"1000 words", strings.Repeat("word ", 1000), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReadTime(tt.content); got != tt.want {
				t.Errorf("ReadTime(...) = %d, want %d", got, tt.want)
			}
		})
	}
}
