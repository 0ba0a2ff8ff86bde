package extract

import (
	"regexp"
	"strings"
)

// Contact info is a front-of-document convention, so only the head of the
// document is searched.
const contactWindow = 1000

// NamePlaceholder pre-fills the editable portfolio form when no name-shaped
// token is found near the top of the document.
const NamePlaceholder = "Your Name"

var (
	nameRe  = regexp.MustCompile(`([A-Z][a-z]+)\s+([A-Z][a-z]+)`)
	emailRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	// Optional +country code, optional parenthesized area code, two groups
	// of 3-4 digits with flexible separators.
	phoneRe        = regexp.MustCompile(`(\+\s*\d{1,3}[\s.-]?)?\(?\d{2,4}\)?[\s.-]?\d{3,4}[\s.-]?\d{3,4}`)
	phoneDigitsRe  = regexp.MustCompile(`[\s.()-]`)
	nonPhoneRuneRe = regexp.MustCompile(`[^\d+]`)
)

// contactInfo keeps the raw matched substrings alongside the sanitized
// values; the aggregator scrubs the raw forms out of the summary text.
type contactInfo struct {
	Name     string
	Email    string
	Phone    string
	rawName  string
	rawPhone string
}

func extractContact(text string) contactInfo {
	window := truncateRunes(splitMergedWords(text), contactWindow)

	info := contactInfo{Name: NamePlaceholder}
	if m := nameRe.FindStringSubmatch(window); m != nil {
		info.rawName = m[0]
		info.Name = m[1] + " " + m[2]
	}
	info.Email = emailRe.FindString(window)
	info.rawPhone = findPhone(window)
	info.Phone = sanitizePhone(info.rawPhone)
	return info
}

// findPhone returns the best phone-shaped substring. When several match,
// one with an explicit + prefix and at least 7 digits wins; a stray numeric
// ID in the text rarely has both.
func findPhone(text string) string {
	matches := phoneRe.FindAllString(text, -1)
	if len(matches) == 0 {
		return ""
	}
	for _, m := range matches {
		stripped := phoneDigitsRe.ReplaceAllString(m, "")
		if strings.Contains(m, "+") && len(strings.TrimPrefix(stripped, "+")) >= 7 {
			return m
		}
	}
	return matches[0]
}

// sanitizePhone keeps digits and a leading + only.
func sanitizePhone(raw string) string {
	if raw == "" {
		return ""
	}
	plus := strings.HasPrefix(strings.TrimSpace(raw), "+")
	digits := nonPhoneRuneRe.ReplaceAllString(raw, "")
	digits = strings.ReplaceAll(digits, "+", "")
	if digits == "" {
		return ""
	}
	if plus {
		return "+" + digits
	}
	return digits
}
