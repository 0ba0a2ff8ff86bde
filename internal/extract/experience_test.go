package extract

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractExperience(t *testing.T) {
	section := "Senior Engineer - Acme Corp\nJan 2020 - Present\nLed the billing rewrite.\nShipped three releases.\n\nEngineer, Initech\n2016 - 2019\nBuilt reporting tools.\n"
	items := extractExperience(section)
	require.Len(t, items, 2)

	require.Equal(t, "Senior Engineer", items[0].Role)
	require.Equal(t, "Acme Corp", items[0].Company)
	require.Equal(t, "Jan 2020 - Present", items[0].Duration)
	require.Equal(t, "Led the billing rewrite. Shipped three releases.", items[0].Description)

	require.Equal(t, "Engineer", items[1].Role)
	require.Equal(t, "Initech", items[1].Company)
	require.Equal(t, "2016 - 2019", items[1].Duration)
}

func TestExtractExperienceDateFirst(t *testing.T) {
	section := "Mar 2021 - Dec 2023\nPlatform Engineer - Globex\nRan the deploy pipeline.\n"
	items := extractExperience(section)
	require.Len(t, items, 1)
	require.Equal(t, "Platform Engineer", items[0].Role)
	require.Equal(t, "Globex", items[0].Company)
	require.Equal(t, "Mar 2021 - Dec 2023", items[0].Duration)
	require.Equal(t, "Ran the deploy pipeline.", items[0].Description)
}

func TestExtractExperienceDateFirstCompanyOnNextLine(t *testing.T) {
	section := "Jan 2020 - Dec 2021\nSoftware Developer\nAcme Corporation\nBuilt many things.\n"
	items := extractExperience(section)
	require.Len(t, items, 1)
	require.Equal(t, "Software Developer", items[0].Role)
	require.Equal(t, "Acme Corporation", items[0].Company)
	require.Equal(t, "Jan 2020 - Dec 2021", items[0].Duration)
	require.Equal(t, "Built many things.", items[0].Description)
	require.NotContains(t, items[0].Description, "Software Developer")
}

func TestExtractExperienceCompanyOnNextLine(t *testing.T) {
	section := "Staff Engineer\nHooli\n2018 to 2022\nScaled the storage tier.\n"
	items := extractExperience(section)
	require.Len(t, items, 1)
	require.Equal(t, "Staff Engineer", items[0].Role)
	require.Equal(t, "Hooli", items[0].Company)
	require.Equal(t, "2018 to 2022", items[0].Duration)
	require.Equal(t, "Scaled the storage tier.", items[0].Description)
}

func TestExtractExperienceMissingFields(t *testing.T) {
	// No role/company/duration at all: the block is discarded.
	require.Empty(t, extractExperience("   \n\n  "))
	require.Empty(t, extractExperience(""))

	// A title with no dates still yields an entry with an empty duration.
	items := extractExperience("Consultant - SelfEmployed\nAdvised startups.\n")
	require.Len(t, items, 1)
	require.Equal(t, "Consultant", items[0].Role)
	require.Equal(t, "", items[0].Duration)
}

func TestExtractExperienceDurationFormats(t *testing.T) {
	tests := []struct {
		block string
		want  string
	}{
		{block: "Dev - X\nJan 2020 - Present\n", want: "Jan 2020 - Present"},
		{block: "Dev - X\nMarch 2019 - June 2021\n", want: "March 2019 - June 2021"},
		{block: "Dev - X\n2015 - 2017\n", want: "2015 - 2017"},
		{block: "Dev - X\n2015 to Current\n", want: "2015 to Current"},
		{block: "Dev - X\nSep. 2022 - Present\n", want: "Sep. 2022 - Present"},
	}
	for _, tc := range tests {
		items := extractExperience(tc.block)
		require.Len(t, items, 1, "block %q", tc.block)
		require.Equal(t, tc.want, items[0].Duration, "block %q", tc.block)
	}
}
