package extract

import (
	"regexp"
	"strings"
)

const (
	minProjectSummary = 10
	maxProjectSummary = 150
)

var (
	// "CapitalizedTitle - description": the structural convention marking a
	// new project entry. Lines without it continue the previous summary.
	projectTitleRe = regexp.MustCompile(`^[A-Z].*?\s+-\s+`)
	projectSepRe   = regexp.MustCompile(`\s+-\s+`)
	linkLabelRe    = regexp.MustCompile(`(?i)(github|demo|url|link)\s*:\s*\S*`)
	bulletGlyphRe  = regexp.MustCompile(`[•▪◦*]`)
)

// extractProjects parses the projects section into titled entries. Only the
// dash convention starts a new project; wrapped title lines fold into the
// previous entry's summary.
func extractProjects(sectionText string) []Project {
	projects := []Project{}
	if strings.TrimSpace(sectionText) == "" {
		return projects
	}

	var current *Project
	flush := func() {
		if current == nil {
			return
		}
		if cleaned, ok := cleanProjectSummary(current.Summary); ok {
			projects = append(projects, Project{Title: current.Title, Summary: cleaned})
		}
		current = nil
	}

	for _, line := range strings.Split(sectionText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if projectTitleRe.MatchString(line) {
			flush()
			parts := projectSepRe.Split(line, 2)
			current = &Project{Title: strings.TrimSpace(parts[0])}
			if len(parts) == 2 {
				current.Summary = strings.TrimSpace(parts[1])
			}
			continue
		}
		if current == nil {
			current = &Project{Title: line}
			continue
		}
		if current.Summary != "" {
			current.Summary += " "
		}
		current.Summary += line
	}
	flush()
	return projects
}

// cleanProjectSummary strips link labels and bullets, bounds the length and
// rejects noise entries.
func cleanProjectSummary(summary string) (string, bool) {
	summary = linkLabelRe.ReplaceAllString(summary, " ")
	summary = bulletGlyphRe.ReplaceAllString(summary, " ")
	summary = collapseWhitespace(summary)
	if len(summary) < minProjectSummary {
		return "", false
	}
	if len(summary) > maxProjectSummary {
		summary = strings.TrimSpace(truncateRunes(summary, maxProjectSummary)) + "..."
	}
	return summary, true
}
