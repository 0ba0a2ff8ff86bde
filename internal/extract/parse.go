package extract

import (
	"context"
	"strings"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
)

const (
	maxSummaryLen = 500
	maxRawTextLen = 2000
)

// Parse runs the full extraction pipeline over decoded PDF pages and always
// returns a usable resume: missing fields stay at their zero values and slice
// fields stay non-nil, never a nil result or an error.
func Parse(ctx context.Context, pages []Page) *ParsedResume {
	res := NewParsedResume()

	text := Reassemble(ctx, pages)
	if strings.TrimSpace(text) == "" {
		return res
	}
	res.RawText = truncateRunes(text, maxRawTextLen)

	sections := SplitSections(text)

	// Contact details often sit above the first header (summary bucket) or
	// under an explicit contact header; search both.
	contact := extractContact(sections[SectionSummary] + "\n" + sections[SectionContact])
	res.Name = contact.Name
	res.Email = contact.Email
	res.Phone = contact.Phone

	res.Skills = extractSkills(sections[SectionSkills], text)
	res.Experience = extractExperience(sections[SectionExperience])
	res.Education = extractEducation(sections[SectionEducation])
	res.Projects = extractProjects(sections[SectionProjects])
	res.Summary = buildSummary(sections[SectionSummary], contact)
	res.Headline = deriveHeadline(res)

	logutil.GetLogger(ctx).Debug("resume parsed",
		zap.Int("pages", len(pages)),
		zap.Int("skills", len(res.Skills)),
		zap.Int("experience", len(res.Experience)),
		zap.Int("education", len(res.Education)),
		zap.Int("projects", len(res.Projects)))
	return res
}

// buildSummary cleans the free-text block: contact artifacts are scrubbed so
// the portfolio bio does not repeat the name, email and phone shown in the
// header.
func buildSummary(block string, contact contactInfo) string {
	if contact.rawName != "" {
		block = strings.Replace(block, contact.rawName, "", 1)
	}
	if contact.Email != "" {
		block = strings.Replace(block, contact.Email, "", 1)
	}
	if contact.rawPhone != "" {
		block = strings.Replace(block, contact.rawPhone, "", 1)
	}
	block = collapseWhitespace(splitMergedWords(block))
	return strings.TrimSpace(truncateRunes(block, maxSummaryLen))
}

// deriveHeadline picks a short tagline: the most recent role when one was
// parsed, otherwise the leading skills.
func deriveHeadline(res *ParsedResume) string {
	if len(res.Experience) > 0 && res.Experience[0].Role != "" {
		return res.Experience[0].Role
	}
	n := len(res.Skills)
	if n > 3 {
		n = 3
	}
	if n > 0 {
		return strings.Join(res.Skills[:n], " | ")
	}
	return ""
}
