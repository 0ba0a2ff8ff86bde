package extract

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractContact(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		cname string
		email string
		phone string
	}{
		{
			name:  "all present",
			text:  "John Smith\njohn.smith@example.com\n(555) 123-4567",
			cname: "John Smith",
			email: "john.smith@example.com",
			phone: "5551234567",
		},
		{
			name:  "international",
			text:  "Maria Garcia\nmaria@dev.io\n+34 612 345 678",
			cname: "Maria Garcia",
			email: "maria@dev.io",
			phone: "+34612345678",
		},
		{
			name:  "merged name runs",
			text:  "JohnSmith built several services.",
			cname: "John Smith",
		},
		{
			name:  "nothing found",
			text:  "no contact details here at all",
			cname: NamePlaceholder,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			info := extractContact(tc.text)
			require.Equal(t, tc.cname, info.Name)
			require.Equal(t, tc.email, info.Email)
			require.Equal(t, tc.phone, info.Phone)
		})
	}
}

func TestFindPhonePrefersInternational(t *testing.T) {
	// A zip-code-shaped number appears first; the explicit country code wins.
	text := "Sector 12345 6789, reach me at +1 415 555 0100"
	require.Equal(t, "+1 415 555 0100", findPhone(text))
}

func TestSanitizePhoneShape(t *testing.T) {
	shape := regexp.MustCompile(`^\+?\d+$`)
	inputs := []string{
		"(555) 123-4567",
		"+49 160 1234567",
		"555.123.4567",
		"555 1234 567",
		"+1-800-555-0100",
	}
	for _, in := range inputs {
		got := sanitizePhone(in)
		require.NotEmpty(t, got, "input %q", in)
		require.Regexp(t, shape, got, "input %q", in)
	}
	require.Equal(t, "", sanitizePhone(""))
}
