// utils/validation.go
package utils

import (
	"regexp"
	"strings"
	"time"
)

var (
	phoneRegex = regexp.MustCompile(`^[+\d\s-]{10,15}$`)
	timeRegex  = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)
	slugRegex  = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	// Anything that is not a latin word character or CJK/Hangul text
	// collapses to a single hyphen when deriving slugs.
	slugifyRegex = regexp.MustCompile(`[^a-z0-9\p{Han}\p{Hangul}\p{Hiragana}\p{Katakana}]+`)
)

// ValidatePhone checks the booking phone format: digits, spaces,
// hyphens and an optional leading +, 10 to 15 characters.
func ValidatePhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// ValidateTime checks a 24h HH:mm string.
func ValidateTime(t string) bool {
	return timeRegex.MatchString(t)
}

// ValidateSlug checks a lowercase hyphen-separated slug.
func ValidateSlug(slug string) bool {
	return slugRegex.MatchString(slug)
}

func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

// Slugify derives a URL slug from a display name: lowercased, runs of
// non-word non-CJK characters become single hyphens, edges trimmed.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugifyRegex.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
