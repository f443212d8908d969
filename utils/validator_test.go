package utils

import (
	"testing"
)

func TestValidWordCount(t *testing.T) {
	cases := []struct {
		count int
		want  bool
	}{
		{1999, false},
		{2000, true},
		{3500, true},
		{8000, true},
		{8001, false},
		{0, false},
		{-1, false},
	}
	for _, tc := range cases {
		if got := ValidWordCount(tc.count); got != tc.want {
			t.Errorf("ValidWordCount(%d) = %v, want %v", tc.count, got, tc.want)
		}
	}
}

func TestValidManuscriptFilename(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"paper.doc", true},
		{"paper.docx", true},
		{"PAPER.DOCX", true},
		{"paper.pdf", false},
		{"paper.doc.txt", false},
		{"paper", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := ValidManuscriptFilename(tc.name); got != tc.want {
			t.Errorf("ValidManuscriptFilename(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"user@example.org", "a.b+c@sub.domain.es"}
	invalid := []string{"", "user", "user@", "@example.org", "user@host"}

	for _, e := range valid {
		if !ValidateEmail(e) {
			t.Errorf("ValidateEmail(%q) = false, want true", e)
		}
	}
	for _, e := range invalid {
		if ValidateEmail(e) {
			t.Errorf("ValidateEmail(%q) = true, want false", e)
		}
	}
}

func TestSanitizeInput(t *testing.T) {
	if got := SanitizeInput("  hello\x00world  "); got != "helloworld" {
		t.Errorf("unexpected result %q", got)
	}
}
