package extract

import (
	"regexp"
	"strings"
)

// Canonical section keys. The summary bucket always exists: it collects
// everything above the first recognized header and under unknown ones.
const (
	SectionSummary      = "summary"
	SectionContact      = "contact"
	SectionExperience   = "experience"
	SectionEducation    = "education"
	SectionSkills       = "skills"
	SectionProjects     = "projects"
	SectionAchievements = "achievements"
)

// sectionHeaders maps normalized header phrases to canonical section keys.
var sectionHeaders = map[string]string{
	"EXPERIENCE":              SectionExperience,
	"WORK EXPERIENCE":         SectionExperience,
	"EMPLOYMENT HISTORY":      SectionExperience,
	"PROFESSIONAL EXPERIENCE": SectionExperience,
	"WORK HISTORY":            SectionExperience,
	"EDUCATION":               SectionEducation,
	"ACADEMIC BACKGROUND":     SectionEducation,
	"EDUCATION AND TRAINING":  SectionEducation,
	"SKILLS":                  SectionSkills,
	"TECHNICAL SKILLS":        SectionSkills,
	"KEY SKILLS":              SectionSkills,
	"CORE COMPETENCIES":       SectionSkills,
	"TECHNOLOGIES":            SectionSkills,
	"PROJECTS":                SectionProjects,
	"TECHNICAL PROJECTS":      SectionProjects,
	"PERSONAL PROJECTS":       SectionProjects,
	"PORTFOLIO":               SectionProjects,
	"ACHIEVEMENTS":            SectionAchievements,
	"KEY ACHIEVEMENTS":        SectionAchievements,
	"AWARDS":                  SectionAchievements,
	"SUMMARY":                 SectionSummary,
	"PROFESSIONAL SUMMARY":    SectionSummary,
	"PROFILE":                 SectionSummary,
	"OBJECTIVE":               SectionSummary,
	"CONTACT":                 SectionContact,
	"CONTACT INFORMATION":     SectionContact,
}

// Headers are terse; anything longer is body text that merely mentions a
// keyword.
const maxHeaderLineLen = 50

var nonHeaderChars = regexp.MustCompile(`[^A-Z\s]`)

// matchHeader reports the canonical key for a line, if the line is a
// section header. The whole normalized line must be a dictionary phrase,
// which also settles ambiguity: "TECHNICAL SKILLS" maps through its own
// entry, never through the shorter "SKILLS".
func matchHeader(line string) (string, bool) {
	if line == "" || len(line) >= maxHeaderLineLen {
		return "", false
	}
	normalized := collapseWhitespace(nonHeaderChars.ReplaceAllString(strings.ToUpper(line), ""))
	if normalized == "" {
		return "", false
	}
	key, ok := sectionHeaders[normalized]
	return key, ok
}

// SplitSections partitions the reassembled document into named blocks by
// scanning for header lines. Header lines themselves are dropped; every
// other character of the body lands in exactly one section.
func SplitSections(text string) map[string]string {
	sections := map[string]string{SectionSummary: ""}
	current := SectionSummary
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if key, ok := matchHeader(trimmed); ok {
			current = key
			if _, exists := sections[current]; !exists {
				sections[current] = ""
			}
			continue
		}
		sections[current] += trimmed + "\n"
	}
	return sections
}
