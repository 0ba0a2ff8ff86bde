package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractProjects(t *testing.T) {
	section := "TaskManager - A full-stack task tracking app.\nChatApp - Realtime messaging with websockets and presence.\n"
	projects := extractProjects(section)
	require.Len(t, projects, 2)
	require.Equal(t, "TaskManager", projects[0].Title)
	require.Equal(t, "A full-stack task tracking app.", projects[0].Summary)
	require.Equal(t, "ChatApp", projects[1].Title)
}

func TestExtractProjectsWrappedSummary(t *testing.T) {
	// Continuation lines without the dash convention extend the previous
	// entry instead of opening a new one.
	section := "Pipeline - Ingests events from several sources\nand fans them out to downstream consumers.\n"
	projects := extractProjects(section)
	require.Len(t, projects, 1)
	require.Contains(t, projects[0].Summary, "downstream consumers")
}

func TestExtractProjectsStripLinksAndBullets(t *testing.T) {
	section := "Scraper - • Collects listings nightly. GitHub: https://github.com/x/scraper\n"
	projects := extractProjects(section)
	require.Len(t, projects, 1)
	require.Equal(t, "Collects listings nightly.", projects[0].Summary)
}

func TestExtractProjectsSummaryBounds(t *testing.T) {
	long := strings.Repeat("word ", 60)
	projects := extractProjects("BigOne - " + long + "\n")
	require.Len(t, projects, 1)
	require.True(t, strings.HasSuffix(projects[0].Summary, "..."))
	require.LessOrEqual(t, len(projects[0].Summary), maxProjectSummary+3)

	// Too-short summaries are noise and the entry is dropped.
	require.Empty(t, extractProjects("Stub - ok\n"))
}

func TestExtractProjectsLeadingOrphanLine(t *testing.T) {
	// A first line without the dash convention becomes a title whose
	// summary accumulates from following lines.
	section := "Inventory\nTracks stock levels across warehouses.\n"
	projects := extractProjects(section)
	require.Len(t, projects, 1)
	require.Equal(t, "Inventory", projects[0].Title)
	require.Equal(t, "Tracks stock levels across warehouses.", projects[0].Summary)
}

func TestExtractProjectsEmpty(t *testing.T) {
	require.Empty(t, extractProjects(""))
	require.Empty(t, extractProjects("  \n "))
}
