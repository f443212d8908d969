// utils/validator.go - Input validation
package utils

import (
	"regexp"
	"strings"
)

// Manuscript word count must stay within the journal's bounds, inclusive.
const (
	MinWordCount = 2000
	MaxWordCount = 8000
)

// MinMotivationLength is the minimum motivation letter length for reviewer
// applications. Measured in characters, not words.
const MinMotivationLength = 500

// ValidateEmail checks if email is valid
func ValidateEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// ValidWordCount reports whether count is within [MinWordCount, MaxWordCount].
func ValidWordCount(count int) bool {
	return count >= MinWordCount && count <= MaxWordCount
}

// ValidManuscriptFilename reports whether the filename carries an accepted
// manuscript extension (.doc or .docx).
func ValidManuscriptFilename(filename string) bool {
	name := strings.ToLower(filename)
	return strings.HasSuffix(name, ".doc") || strings.HasSuffix(name, ".docx")
}

// SanitizeInput removes potentially harmful characters
func SanitizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ReplaceAll(input, "\x00", "")
	return input
}
