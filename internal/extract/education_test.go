package extract

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractEducation(t *testing.T) {
	section := "Technical University of Munich\nMSc Computer Science\n2014 - 2016\n\nState College\nBachelor of Arts\n2013\n"
	items := extractEducation(section)
	require.Len(t, items, 2)

	require.Equal(t, "Technical University of Munich", items[0].Institution)
	require.Equal(t, "MSc Computer Science", items[0].Degree)
	require.Equal(t, "2014", items[0].StartYear)
	require.Equal(t, "2016", items[0].EndYear)

	require.Equal(t, "State College", items[1].Institution)
	require.Equal(t, "Bachelor of Arts", items[1].Degree)
	require.Equal(t, "", items[1].StartYear)
	require.Equal(t, "2013", items[1].EndYear)
}

func TestExtractEducationOngoing(t *testing.T) {
	items := extractEducation("Open University\nBSc Mathematics\n2022 - Present\n")
	require.Len(t, items, 1)
	require.Equal(t, "2022", items[0].StartYear)
	require.Equal(t, "Present", items[0].EndYear)
}

func TestExtractEducationInlineYears(t *testing.T) {
	items := extractEducation("Riverside Institute of Technology, 2010 - 2014\nB.Tech Electronics\n")
	require.Len(t, items, 1)
	require.Equal(t, "Riverside Institute of Technology", items[0].Institution)
	require.Equal(t, "B.Tech Electronics", items[0].Degree)
	require.Equal(t, "2010", items[0].StartYear)
	require.Equal(t, "2014", items[0].EndYear)
}

func TestExtractEducationDiscardsNoise(t *testing.T) {
	require.Empty(t, extractEducation(""))
	require.Empty(t, extractEducation("relevant coursework and honors\nGPA 3.9\n"))
}

func TestExtractEducationDegreeOnly(t *testing.T) {
	items := extractEducation("Diploma in Graphic Design\n")
	require.Len(t, items, 1)
	require.Equal(t, "", items[0].Institution)
	require.Equal(t, "Diploma in Graphic Design", items[0].Degree)
}
