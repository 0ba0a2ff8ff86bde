package extract

import (
	"regexp"
	"strings"
)

var (
	blankLineSplit = regexp.MustCompile(`\n\s*\n`)
	monthOrYear    = `(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s*\d{4}|Present|Current|\d{4}`
	dateRangeRe    = regexp.MustCompile(`(?i)(` + monthOrYear + `)\s*(?:-|to)\s*(` + monthOrYear + `)`)
	titleSplitRe   = regexp.MustCompile(`[-|,]`)
)

// extractExperience splits the experience section on blank lines, the only
// available proxy for entry boundaries, and parses each block into
// role/company/duration/description.
func extractExperience(sectionText string) []Experience {
	items := []Experience{}
	for _, block := range blankLineSplit.Split(sectionText, -1) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		if item, ok := parseExperienceBlock(block); ok {
			items = append(items, item)
		}
	}
	return items
}

func parseExperienceBlock(block string) (Experience, bool) {
	duration := dateRangeRe.FindString(block)
	lines := splitLines(block)
	if len(lines) == 0 {
		return Experience{}, false
	}

	// The first non-date line carries "Role - Company" (or "Role, Company").
	titleLine := lines[0]
	titleLineUsed := 0
	companyLineUsed := -1
	if duration != "" && titleLine == duration {
		if len(lines) > 1 {
			titleLine = lines[1]
			titleLineUsed = 1
		} else {
			titleLine = ""
			titleLineUsed = -1
		}
	} else {
		titleLine = collapseWhitespace(strings.Replace(titleLine, duration, "", 1))
	}

	var role, company string
	parts := splitTitleParts(titleLine)
	switch {
	case len(parts) >= 2:
		role = parts[0]
		company = parts[1]
	default:
		role = titleLine
		if next := titleLineUsed + 1; next > 0 && next < len(lines) {
			company = collapseWhitespace(strings.Replace(lines[next], duration, "", 1))
			companyLineUsed = next
		}
	}

	description := buildDescription(lines, duration, titleLineUsed, companyLineUsed)
	if role == "" && company == "" && duration == "" {
		return Experience{}, false
	}
	return Experience{
		Company:     company,
		Role:        role,
		Duration:    duration,
		Description: description,
	}, true
}

func splitTitleParts(titleLine string) []string {
	var parts []string
	for _, part := range titleSplitRe.Split(titleLine, -1) {
		part = strings.TrimSpace(part)
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

func buildDescription(lines []string, duration string, titleLineUsed, companyLineUsed int) string {
	var rest []string
	for i, line := range lines {
		if i == 0 || i == titleLineUsed || i == companyLineUsed {
			continue
		}
		line = strings.Replace(line, duration, "", 1)
		if collapseWhitespace(line) == "" {
			continue
		}
		rest = append(rest, line)
	}
	return collapseWhitespace(strings.Join(rest, " "))
}

func splitLines(block string) []string {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
