package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderMarkdown(t *testing.T) {
	html, err := renderMarkdown("Engineer with **ten years** of experience.")
	require.NoError(t, err)
	require.Contains(t, html, "<strong>ten years</strong>")
}

func TestRenderMarkdownEscapesRawHTML(t *testing.T) {
	html, err := renderMarkdown(`hello <script>alert(1)</script>`)
	require.NoError(t, err)
	require.False(t, strings.Contains(html, "<script>"))
}
