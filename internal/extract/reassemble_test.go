package extract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeFragment(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "hello world", want: "hello world"},
		{name: "escaped space", in: "Senior%20Engineer", want: "Senior Engineer"},
		{name: "escaped at sign", in: "a%40b.com", want: "a@b.com"},
		{name: "malformed escape strips valid triplets", in: "Revenue%20up%ZZ", want: "Revenueup%ZZ"},
		{name: "empty", in: "", want: ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, decodeFragment(ctx, tc.in))
		})
	}
}

func TestReassembleLineBoundaries(t *testing.T) {
	got := Reassemble(context.Background(), []Page{
		{Fragments: []Fragment{{Text: "SKILLS"}, {Text: "React%2C%20Redux"}}},
		{Fragments: []Fragment{{Text: "EDUCATION"}}},
	})
	require.Equal(t, "SKILLS\nReact, Redux\nEDUCATION", got)
}

func TestReassembleNormalizesDashes(t *testing.T) {
	got := Reassemble(context.Background(), pagesOf("2019 – 2021", "App — a tool"))
	require.Equal(t, "2019 - 2021\nApp - a tool", got)
}

// Feeding already-decoded fragments back through the pipeline yields the
// same document as the encoded originals.
func TestReassembleStableUnderReencoding(t *testing.T) {
	encoded := pagesOf("John%20Smith", "Senior%20Engineer%20at%20Acme")
	first := Reassemble(context.Background(), encoded)

	var decoded []Page
	for _, page := range encoded {
		var frags []Fragment
		for _, f := range page.Fragments {
			frags = append(frags, Fragment{Text: decodeFragment(context.Background(), f.Text)})
		}
		decoded = append(decoded, Page{Fragments: frags})
	}
	require.Equal(t, first, Reassemble(context.Background(), decoded))
}

func TestSplitMergedWords(t *testing.T) {
	require.Equal(t, "John Smith", splitMergedWords("JohnSmith"))
	require.Equal(t, "already spaced", splitMergedWords("already spaced"))
}

func TestTruncateRunes(t *testing.T) {
	require.Equal(t, "abc", truncateRunes("abcdef", 3))
	require.Equal(t, "abc", truncateRunes("abc", 10))
	require.Equal(t, "", truncateRunes("abc", 0))
	require.Equal(t, "hél", truncateRunes("héllo", 3))
}
