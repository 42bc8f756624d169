package xer

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// xerDatePattern matches the P6 export form "2006-01-02 15:04", with the
// time part optional.
var xerDatePattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})(?:\s+(\d{2}):(\d{2}))?`)

// numberPrefix matches the longest numeric prefix, as parseFloat would.
var numberPrefix = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// fallbackDateLayouts is tried in order when the value is not in XER form.
var fallbackDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"01/02/2006 15:04",
	"01/02/2006",
	"1/2/2006",
	"Jan 2, 2006 15:04",
	"Jan 2, 2006",
	"2 Jan 2006",
	"02-Jan-06",
	time.RFC1123,
}

// parseDate converts an XER date string. Empty or unparseable values yield
// nil.
func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if m := xerDatePattern.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		var hour, minute int
		if m[4] != "" {
			hour, _ = strconv.Atoi(m[4])
			minute, _ = strconv.Atoi(m[5])
		}
		t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
		return &t
	}
	for _, layout := range fallbackDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

// parseNumber converts the numeric prefix of s. Empty or non-numeric values
// yield nil, and so does a prefix outside the float64 range such as "1e999".
func parseNumber(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	m := numberPrefix.FindString(s)
	if m == "" {
		return nil
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return nil
	}
	return &f
}

func parseNumberOr(s string, fallback float64) float64 {
	if f := parseNumber(s); f != nil {
		return *f
	}
	return fallback
}

// parseFlag reports whether s is exactly "Y".
func parseFlag(s string) bool {
	return s == "Y"
}

// optionalString returns nil for the empty string.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
