package extract

import (
	"regexp"
	"strings"
)

var (
	institutionRe = regexp.MustCompile(`(?i)\b(university|college|institute|school of|academy)\b`)
	degreeRe      = regexp.MustCompile(`(?i)\b(bachelor|master|b\.?sc|m\.?sc|b\.?tech|m\.?tech|b\.?a\b|m\.?a\b|ph\.?d|mba|diploma|degree)\b`)
	yearRangeRe   = regexp.MustCompile(`(\d{4})\s*-\s*(\d{4}|Present|present)`)
	bareYearRe    = regexp.MustCompile(`\b(19|20)\d{2}\b`)
)

// extractEducation parses the education section into entries, one per
// blank-line block.
func extractEducation(sectionText string) []Education {
	items := []Education{}
	for _, block := range blankLineSplit.Split(sectionText, -1) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		if item, ok := parseEducationBlock(block); ok {
			items = append(items, item)
		}
	}
	return items
}

func parseEducationBlock(block string) (Education, bool) {
	var item Education
	for _, line := range splitLines(block) {
		switch {
		case item.Institution == "" && institutionRe.MatchString(line):
			item.Institution = stripYears(line)
		case item.Degree == "" && degreeRe.MatchString(line):
			item.Degree = stripYears(line)
		}
	}
	if item.Institution == "" && item.Degree == "" {
		return Education{}, false
	}

	if m := yearRangeRe.FindStringSubmatch(block); m != nil {
		item.StartYear = m[1]
		item.EndYear = m[2]
	} else if year := bareYearRe.FindString(block); year != "" {
		// A single year on an education entry is read as graduation year.
		item.EndYear = year
	}
	return item, true
}

func stripYears(line string) string {
	line = yearRangeRe.ReplaceAllString(line, "")
	line = bareYearRe.ReplaceAllString(line, "")
	line = strings.Trim(line, " ,|-")
	return collapseWhitespace(line)
}
