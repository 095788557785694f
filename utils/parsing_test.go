package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePhone_TenDigits(t *testing.T) {
	assert.Equal(t, "(555) 123-4567", ParsePhone("5551234567"))
}

func TestParsePhone_FormattingCharactersStripped(t *testing.T) {
	assert.Equal(t, "(555) 123-4567", ParsePhone("(555) 123-4567"))
	assert.Equal(t, "(555) 123-4567", ParsePhone("555.123.4567"))
	assert.Equal(t, "(555) 123-4567", ParsePhone(" 555-123-4567 "))
}

func TestParsePhone_LeadingCountryDigit(t *testing.T) {
	// An 11-digit number starting with 1 normalizes to its trailing 10 digits
	assert.Equal(t, "(555) 123-4567", ParsePhone("15551234567"))
	assert.Equal(t, "(555) 123-4567", ParsePhone("+1 (555) 123-4567"))
}

func TestParsePhone_InvalidLengths(t *testing.T) {
	assert.Equal(t, "", ParsePhone(""))
	assert.Equal(t, "", ParsePhone("12345"))
	assert.Equal(t, "", ParsePhone("555123456789"))
	// 11 digits not starting with 1 stays 11 digits and is invalid
	assert.Equal(t, "", ParsePhone("25551234567"))
	assert.Equal(t, "", ParsePhone("not a phone"))
}

func TestParseFullLocation_AllParts(t *testing.T) {
	row := map[string]string{
		"DropoffLocation":       "West Hall",
		"DropoffDormRoomNumber": "214",
		"DropoffDormRoomLetter": "B",
		"DropoffAddressLine1":   "12 College Ave",
		"DropoffAddressLine2":   "Apt 3",
	}
	assert.Equal(t, "West Hall 214 B 12 College Ave Apt 3", ParseFullLocation(row))
}

func TestParseFullLocation_DropsSentinels(t *testing.T) {
	row := map[string]string{
		"DropoffLocation":       "Off-Campus",
		"DropoffDormRoomNumber": "214",
		"DropoffDormRoomLetter": "None",
		"DropoffAddressLine1":   "12 College Ave",
		"DropoffAddressLine2":   "",
	}
	joined := ParseFullLocation(row)
	assert.Equal(t, "214 12 College Ave", joined)
	assert.NotContains(t, joined, "  ")
}

func TestParseFullLocation_EmptyRow(t *testing.T) {
	assert.Equal(t, "", ParseFullLocation(map[string]string{}))
}

func TestParseFileType(t *testing.T) {
	ext, err := ParseFileType("/uploads/orders/95003/photo_1.jpg")
	require.NoError(t, err)
	assert.Equal(t, "jpg", ext)
}

func TestParseFileType_LastDotWins(t *testing.T) {
	ext, err := ParseFileType("archive.tar.gz")
	require.NoError(t, err)
	assert.Equal(t, "gz", ext)
}

func TestParseFileType_MissingExtension(t *testing.T) {
	_, err := ParseFileType("/uploads/orders/95003/photo")
	assert.Error(t, err)

	_, err = ParseFileType("trailing.")
	assert.Error(t, err)
}

func TestParseDate_Layouts(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2025-08-21", time.Date(2025, 8, 21, 0, 0, 0, 0, time.UTC)},
		{"2025-08-21T14:30:05", time.Date(2025, 8, 21, 14, 30, 5, 0, time.UTC)},
		{"2025-08-21 14:30:05", time.Date(2025, 8, 21, 14, 30, 5, 0, time.UTC)},
	}
	for _, tc := range tests {
		parsed, ok := ParseDate(tc.input)
		require.True(t, ok, "expected %q to parse", tc.input)
		assert.Equal(t, tc.want, parsed)
	}
}

func TestParseDate_Invalid(t *testing.T) {
	_, ok := ParseDate("")
	assert.False(t, ok)

	_, ok = ParseDate("21/08/2025")
	assert.False(t, ok)

	_, ok = ParseDate("soon")
	assert.False(t, ok)
}

func TestParseInt(t *testing.T) {
	value, ok := ParseInt("150")
	require.True(t, ok)
	assert.Equal(t, 150, value)
}

func TestParseInt_ZeroMeansAbsent(t *testing.T) {
	_, ok := ParseInt("0")
	assert.False(t, ok)
}

func TestParseInt_Invalid(t *testing.T) {
	_, ok := ParseInt("")
	assert.False(t, ok)

	_, ok = ParseInt("12.50")
	assert.False(t, ok)

	_, ok = ParseInt("abc")
	assert.False(t, ok)
}
