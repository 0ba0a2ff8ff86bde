package extract

import (
	"context"
	"net/url"
	"regexp"
	"strings"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
)

var (
	escapeTriplet = regexp.MustCompile(`%[0-9a-fA-F]{2}`)
	lowerToUpper  = regexp.MustCompile(`([a-z])([A-Z])`)
	whitespaceRun = regexp.MustCompile(`\s+`)
	dashVariants  = strings.NewReplacer("–", "-", "—", "-", "‒", "-", "―", "-")
)

// decodeFragment percent-decodes one fragment. PDF text runs are not
// reliably valid URI-encoded sequences, so a malformed escape falls back to
// stripping the %XX triplets instead of failing the whole document.
func decodeFragment(ctx context.Context, raw string) string {
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		logutil.GetLogger(ctx).Debug("malformed percent escape in fragment, stripping",
			zap.String("fragment", raw))
		return escapeTriplet.ReplaceAllString(raw, "")
	}
	return decoded
}

// Reassemble joins decoded fragments into the logical document, one line
// per fragment grouping. Header detection downstream depends on these line
// boundaries, so only dash variants are normalized here; merged-word repair
// happens in the collapsed copies used for field parsing.
func Reassemble(ctx context.Context, pages []Page) string {
	var lines []string
	for _, page := range pages {
		for _, frag := range page.Fragments {
			lines = append(lines, decodeFragment(ctx, frag.Text))
		}
	}
	return dashVariants.Replace(strings.Join(lines, "\n"))
}

// splitMergedWords undoes the common PDF artifact where whitespace between
// visually adjacent but differently styled runs is dropped ("fooBar").
func splitMergedWords(s string) string {
	return lowerToUpper.ReplaceAllString(s, "$1 $2")
}

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

func truncateRunes(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
