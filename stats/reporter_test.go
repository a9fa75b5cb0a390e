package stats

import (
	"bikeshare/domain/entities/filter"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportAll_WithDemographics(t *testing.T) {
	out := &bytes.Buffer{}
	reporter := NewReporter(out, testConfig())

	err := reporter.ReportAll(loadTable(t, filter.Chicago, filter.All, filter.All))
	require.NoError(t, err)

	output := out.String()
	expectedLines := []string{
		"Calculating The Most Frequent Times of Travel...",
		"The most common month is: March",
		"The most common day of the week is: Monday",
		"The most common start hour is: 8",
		"The most commonly used start station is: Clark St & Elm St",
		"The most commonly used end station is: Canal St & Adams St",
		"The most frequent combination of start station and end station trip is: Clark St & Elm St-Canal St & Adams St",
		"The total travel time is: 3660 seconds",
		"The mean travel time is: 610 seconds",
		"User Type Counts:\n  Subscriber: 4\n  Customer: 2\n",
		"Gender Counts:\n  Male: 3\n  Female: 2\n",
		"Earliest Birth Year: 1972",
		"Most Recent Birth Year: 1999",
		"Most Common Birth Year: 1985",
	}
	for _, expectedLine := range expectedLines {
		assert.Contains(t, output, expectedLine)
	}
	assert.Equal(t, 4, strings.Count(output, "This took "))
	assert.Equal(t, 4, strings.Count(output, Separator+"\n"))
	assert.NotContains(t, output, "not available")
}

func TestReportAll_WithoutDemographics(t *testing.T) {
	out := &bytes.Buffer{}
	reporter := NewReporter(out, testConfig())

	err := reporter.ReportAll(loadTable(t, filter.Washington, filter.All, filter.All))
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "User Type Counts:\n  Subscriber: 2\n  Customer: 1\n")
	assert.Contains(t, output, "Gender data not available.")
	assert.Contains(t, output, "Birth Year data not available.")
	assert.Contains(t, output, "The total travel time is: 1892 seconds")
}

func TestReportAll_EmptyTable(t *testing.T) {
	out := &bytes.Buffer{}
	reporter := NewReporter(out, testConfig())

	err := reporter.ReportAll(loadTable(t, filter.Washington, "january", filter.All))
	require.ErrorIs(t, err, ErrEmptyTable)
}
