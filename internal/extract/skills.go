package extract

import (
	"regexp"
	"strings"
)

const (
	minSkillLen = 3
	maxSkillLen = 30
	maxSkills   = 15
	// When the fallback scan has to guess where the skills block ends,
	// stop after this much captured text.
	maxFallbackScan = 500
)

var (
	skillDelims = regexp.MustCompile(`[,;•|/\n]`)
	// Category sub-headers inside a skills block ("Frontend:", "Tools:")
	// are delimiters, not skills.
	skillCategoryRe = regexp.MustCompile(`(?i)\b(frontend|backend|databases|tools|languages|frameworks|apis|core|cloud|devops)\s*:`)
	skillKeywordRe  = regexp.MustCompile(`(?i)(technical\s*skills?|key\s*skills?|technologies|frameworks|languages)`)
	skillStopScanRe = regexp.MustCompile(`(?i)\b(objective|education|experience|projects|work)\b`)
	skillJunkRe     = regexp.MustCompile(`(?i)(https?|www\.|\.com|\.org|\.net|@|github|linkedin)`)
)

var skillStopWords = map[string]struct{}{
	"and": {}, "the": {}, "with": {}, "etc": {}, "for": {}, "from": {},
	"our": {}, "are": {}, "was": {}, "has": {}, "have": {}, "into": {},
	"using": {}, "other": {}, "others": {}, "various": {},
}

// extractSkills tokenizes the skills section into a deduplicated,
// length-bounded list. When the segmenter found no skills section, a
// keyword scan over the whole document stands in for it.
func extractSkills(sectionText, fullText string) []string {
	block := strings.TrimSpace(sectionText)
	if block == "" {
		block = fallbackSkillBlock(fullText)
	}
	if block == "" {
		return []string{}
	}

	block = skillCategoryRe.ReplaceAllString(block, ",")
	block = strings.ReplaceAll(block, ":", ",")

	skills := make([]string, 0, maxSkills)
	seen := make(map[string]struct{})
	for _, token := range skillDelims.Split(block, -1) {
		token = collapseWhitespace(token)
		if !acceptableSkill(token) {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		skills = append(skills, token)
		if len(skills) >= maxSkills {
			break
		}
	}
	return skills
}

func acceptableSkill(token string) bool {
	if len(token) < minSkillLen || len(token) > maxSkillLen {
		return false
	}
	if _, stop := skillStopWords[strings.ToLower(token)]; stop {
		return false
	}
	// Guards against section-boundary leakage from an adjacent contact or
	// bio block.
	return !skillJunkRe.MatchString(token)
}

// fallbackSkillBlock recovers a skills block from documents whose headers
// the segmenter could not recognize: find a line bearing a skills keyword
// and capture text up to the next major section keyword.
func fallbackSkillBlock(fullText string) string {
	var captured strings.Builder
	found := false
	for _, line := range strings.Split(fullText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !found {
			if loc := skillKeywordRe.FindStringIndex(line); loc != nil {
				found = true
				captured.WriteString(strings.TrimLeft(line[loc[1]:], ": "))
			}
			continue
		}
		if skillStopScanRe.MatchString(line) || captured.Len() > maxFallbackScan {
			break
		}
		captured.WriteString(" ")
		captured.WriteString(line)
	}
	return strings.TrimSpace(captured.String())
}
