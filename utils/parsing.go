package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// locationColumns are the dropoff address parts, in display order
var locationColumns = []string{
	"DropoffLocation",
	"DropoffDormRoomNumber",
	"DropoffDormRoomLetter",
	"DropoffAddressLine1",
	"DropoffAddressLine2",
}

// dateLayouts are tried in order; first match wins
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParsePhone normalizes a raw phone number to "(AAA) BBB-CCCC".
// A leading country "1" on an 11-digit number is dropped. Anything that does
// not reduce to exactly 10 digits yields the empty string.
func ParsePhone(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	number := digits.String()
	if len(number) == 11 && strings.HasPrefix(number, "1") {
		number = number[1:]
	}
	if len(number) != 10 {
		return ""
	}

	return fmt.Sprintf("(%s) %s-%s", number[:3], number[3:6], number[6:])
}

// ParseFullLocation joins the dropoff address parts of a row with single
// spaces. Empty parts, the "None" placeholder and the "Off-Campus" sentinel
// are dropped.
func ParseFullLocation(row map[string]string) string {
	var parts []string
	for _, column := range locationColumns {
		part := row[column]
		if part == "" || part == "None" || part == "Off-Campus" {
			continue
		}
		parts = append(parts, part)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// ParseFileType returns the extension after the last dot of a path.
// A path with no extension is an error: it means the upstream URL is
// malformed, and that must surface rather than default silently.
func ParseFileType(path string) (string, error) {
	idx := strings.LastIndex(path, ".")
	if idx < 0 || idx == len(path)-1 {
		return "", fmt.Errorf("no file extension in %q", path)
	}
	return path[idx+1:], nil
}

// ParseDate parses a date string, trying each supported layout in order.
// Returns false for empty or unparseable input.
func ParseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// ParseInt coerces a string to an integer. Zero is treated as absent, since
// in the source data it means "no pending balance".
func ParseInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed == 0 {
		return 0, false
	}
	return parsed, true
}
