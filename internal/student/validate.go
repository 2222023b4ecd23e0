package student

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Validation rule patterns.
const (
	// NamePattern allows letters and spaces, checked against the
	// trimmed value.
	NamePattern = `^[A-Za-z ]+$`

	// EmailPattern is a minimal format check; domains are not verified.
	EmailPattern = `^[A-Za-z0-9+_.-]+@(.+)$`

	// PhonePattern allows an optional leading +, then 10-15 digits,
	// spaces, dashes or parentheses. Applied to the raw value.
	PhonePattern = `^[+]?[0-9\s\-()]{10,15}$`
)

var compiledPatterns = struct {
	Name  *regexp.Regexp
	Email *regexp.Regexp
	Phone *regexp.Regexp
}{
	Name:  regexp.MustCompile(NamePattern),
	Email: regexp.MustCompile(EmailPattern),
	Phone: regexp.MustCompile(PhonePattern),
}

const dateLayout = "2006-01-02"

// Date-of-birth bounds: [1900-01-01, today].
var minBirthDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// IsValidName reports whether s is a usable first or last name: at
// least two characters after trimming, letters and spaces only.
func IsValidName(s string) bool {
	s = strings.TrimSpace(s)
	return len(s) >= 2 && compiledPatterns.Name.MatchString(s)
}

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return compiledPatterns.Email.MatchString(s)
}

// IsValidPhone reports whether s is a plausible phone number. The value
// is matched as-is, whitespace included.
func IsValidPhone(s string) bool {
	return compiledPatterns.Phone.MatchString(s)
}

// IsValidMajor reports whether the trimmed major is 2-50 characters.
func IsValidMajor(s string) bool {
	n := len(strings.TrimSpace(s))
	return n >= 2 && n <= 50
}

// IsValidGPA reports whether gpa is within [0.0, 4.0].
func IsValidGPA(gpa float64) bool {
	return gpa >= 0.0 && gpa <= 4.0
}

// IsValidBirthDate reports whether d lies within [1900-01-01, today].
func IsValidBirthDate(d time.Time) bool {
	return !d.IsZero() && !d.Before(minBirthDate) && !d.After(today())
}

// ParseDate parses a strict yyyy-mm-dd date of birth. It reports false
// for unparsable input and for dates outside [1900-01-01, today].
func ParseDate(s string) (time.Time, bool) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	if !IsValidBirthDate(d) {
		return time.Time{}, false
	}
	return d, true
}

// ParseFloat parses a decimal number, reporting false instead of an
// error on bad input.
func ParseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v, err == nil
}

// ParseInt parses an integer, reporting false instead of an error on
// bad input.
func ParseInt(s string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	return v, err == nil
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
