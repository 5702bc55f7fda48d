// Package dateutil expands "auto" date stamps used in export file names.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length to prevent abuse.
const MaxDateFormatLength = 50

// DefaultDateFormat is used when "auto" is specified without a format.
const DefaultDateFormat = "YYYY-MM-DD"

// dateTokens maps user-friendly tokens to Go time format components.
// Ordered by length descending for greedy matching.
var dateTokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// DatePresets are named formats that are safe inside file names.
var DatePresets = map[string]string{
	"iso":     "YYYY-MM-DD",
	"compact": "YYYYMMDD",
	"month":   "YYYY-MM",
}

// ParseDateFormat converts a token format (YYYY, YY, MMMM, MMM, MM, M, DD, D)
// to Go's reference layout. Text inside [brackets] is copied literally;
// other non-token characters are kept as they are.
func ParseDateFormat(format string) (string, error) {
	switch {
	case format == "":
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	case len(format) > MaxDateFormatLength:
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var b strings.Builder
	rest := format
	for rest != "" {
		if rest[0] == '[' {
			end := strings.IndexByte(rest, ']')
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, len(format)-len(rest))
			}
			b.WriteString(rest[1:end])
			rest = rest[end+1:]
			continue
		}
		rest = writeToken(&b, rest)
	}

	return b.String(), nil
}

// writeToken writes the Go layout for the token at the start of s, or the
// first byte of s when no token matches, and returns the remainder.
func writeToken(b *strings.Builder, s string) string {
	for _, t := range dateTokens {
		if strings.HasPrefix(s, t.token) {
			b.WriteString(t.goFmt)
			return s[len(t.token):]
		}
	}
	b.WriteByte(s[0])
	return s[1:]
}

// IsAuto reports whether value asks for a generated date stamp.
func IsAuto(value string) bool {
	lower := strings.ToLower(value)
	return lower == "auto" || strings.HasPrefix(lower, "auto:")
}

// ResolveStamp formats t according to an "auto" value:
//   - "auto" -> YYYY-MM-DD
//   - "auto:FORMAT" -> custom token format, e.g. "auto:YYYYMMDD"
//   - "auto:preset" -> named preset (iso, compact, month)
//
// The result must be usable inside a file name, so formats producing a
// path separator are rejected.
func ResolveStamp(value string, t time.Time) (string, error) {
	if !IsAuto(value) {
		return "", fmt.Errorf("%w: %q is not \"auto\" or \"auto:FORMAT\"", ErrInvalidDateFormat, value)
	}

	format := DefaultDateFormat
	if len(value) > len("auto") {
		format = value[len("auto:"):] // preserve case for tokens
		if format == "" {
			return "", fmt.Errorf("%w: format cannot be empty after \"auto:\"", ErrInvalidDateFormat)
		}
		if preset, ok := DatePresets[strings.ToLower(format)]; ok {
			format = preset
		}
	}

	layout, err := ParseDateFormat(format)
	if err != nil {
		return "", err
	}

	stamp := t.Format(layout)
	if strings.ContainsAny(stamp, "/\\") {
		return "", fmt.Errorf("%w: %q produces a path separator", ErrInvalidDateFormat, format)
	}
	return stamp, nil
}
