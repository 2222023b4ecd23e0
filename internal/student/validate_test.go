package student_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/chamithamadusanka111-tech/StudentMangementSystem/internal/student"
)

func TestIsValidName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"simple name", "Ada", true},
		{"two characters", "Al", true},
		{"with space", "Mary Jane", true},
		{"surrounding whitespace trimmed", "  Ada  ", true},
		{"single character", "A", false},
		{"empty", "", false},
		{"only whitespace", "   ", false},
		{"digits", "Ada2", false},
		{"punctuation", "O'Brien", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, student.IsValidName(tt.input))
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"plain address", "ada@x.com", true},
		{"plus and dots", "a+b.c-d_e@uni.edu", true},
		{"anything after at", "ada@localhost", true},
		{"missing at", "ada.x.com", false},
		{"missing local part", "@x.com", false},
		{"missing domain", "ada@", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, student.IsValidEmail(tt.input))
		})
	}
}

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"ten digits", "1234567890", true},
		{"with plus", "+12345678901", true},
		{"formatted", "(123) 456-7890", true},
		{"nine digits", "123456789", false},
		{"sixteen characters", "1234567890123456", false},
		{"letters", "12345abcde", false},
		{"plus in the middle", "123+4567890", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, student.IsValidPhone(tt.input))
		})
	}
}

func TestIsValidMajor(t *testing.T) {
	assert.True(t, student.IsValidMajor("Math"))
	assert.True(t, student.IsValidMajor("CS"))
	assert.True(t, student.IsValidMajor(strings.Repeat("a", 50)))
	assert.True(t, student.IsValidMajor("  Math  "))
	assert.False(t, student.IsValidMajor("M"))
	assert.False(t, student.IsValidMajor(""))
	assert.False(t, student.IsValidMajor(strings.Repeat("a", 51)))
}

func TestIsValidGPA(t *testing.T) {
	assert.True(t, student.IsValidGPA(0.0))
	assert.True(t, student.IsValidGPA(4.0))
	assert.True(t, student.IsValidGPA(3.14))
	assert.False(t, student.IsValidGPA(-0.01))
	assert.False(t, student.IsValidGPA(4.01))
}

func TestParseDate(t *testing.T) {
	t.Run("lower bound", func(t *testing.T) {
		d, ok := student.ParseDate("1900-01-01")
		assert.True(t, ok)
		assert.Equal(t, 1900, d.Year())
	})

	t.Run("below lower bound", func(t *testing.T) {
		_, ok := student.ParseDate("1899-12-31")
		assert.False(t, ok)
	})

	t.Run("today is accepted", func(t *testing.T) {
		today := time.Now().UTC().Format("2006-01-02")
		_, ok := student.ParseDate(today)
		assert.True(t, ok)
	})

	t.Run("tomorrow is rejected", func(t *testing.T) {
		tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
		_, ok := student.ParseDate(tomorrow)
		assert.False(t, ok)
	})

	t.Run("bad formats", func(t *testing.T) {
		for _, input := range []string{"", "2000/01/01", "01-01-2000", "2000-13-01", "not a date"} {
			_, ok := student.ParseDate(input)
			assert.False(t, ok, "input %q", input)
		}
	})
}

func TestParseFloat(t *testing.T) {
	v, ok := student.ParseFloat("3.5")
	assert.True(t, ok)
	assert.Equal(t, 3.5, v)

	v, ok = student.ParseFloat(" 4.0 ")
	assert.True(t, ok)
	assert.Equal(t, 4.0, v)

	_, ok = student.ParseFloat("three")
	assert.False(t, ok)

	_, ok = student.ParseFloat("")
	assert.False(t, ok)
}

func TestParseInt(t *testing.T) {
	v, ok := student.ParseInt("42")
	assert.True(t, ok)
	assert.Equal(t, 42, v)

	_, ok = student.ParseInt("4.2")
	assert.False(t, ok)

	_, ok = student.ParseInt("abc")
	assert.False(t, ok)
}
