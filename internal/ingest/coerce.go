package ingest

import (
	"strconv"
	"strings"
)

// The source payloads are dirty: numbers arrive as strings, with
// thousands separators, or not at all. Coercion failures are localized:
// the single field becomes NULL (or the entry is skipped where the field
// is the identifier) and the batch continues.

// nullString maps empty strings to SQL NULL so sparse payloads never
// overwrite a populated column with "".
func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// nullID maps the zero value of absent JSON ids to SQL NULL.
func nullID(n int64) any {
	if n == 0 {
		return nil
	}
	return n
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ParseCapacity turns free-text crowd capacities like "50,000" into an
// integer by stripping comma separators. Anything else ("TBD", "", text
// with stray units) reports ok=false and is stored as NULL, never raised.
func ParseCapacity(s string) (int64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if !allDigits(s) {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// intOrNull parses a positional stat field as an integer, NULL on
// anything non-numeric. Matches the source convention: only pure digit
// strings count.
func intOrNull(s string) any {
	if !allDigits(s) {
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return n
}

func floatOrNull(s string) any {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	return f
}
