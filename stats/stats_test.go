package stats

import (
	"bikeshare/config"
	"bikeshare/dataset"
	"bikeshare/domain/business/frequencycounter"
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/trip"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.ExplorerConfig {
	cfg := config.Default()
	cfg.DataDir = "../dataset/testdata"
	return cfg
}

func loadTable(t *testing.T, city filter.City, month filter.Month, day filter.Day) *dataset.Table {
	t.Helper()
	table, err := dataset.NewLoader(testConfig()).Load(filter.NewSelection(city, month, day))
	require.NoError(t, err)
	return table
}

func TestComputeTimeStats(t *testing.T) {
	timeStats, err := ComputeTimeStats(loadTable(t, filter.Chicago, filter.All, filter.All))
	require.NoError(t, err)

	expected := TimeStats{
		MostCommonMonth: "March",
		MostCommonDay:   "Monday",
		MostCommonHour:  8,
	}
	assert.Equal(t, expected, timeStats)
}

func TestComputeTimeStats_MostCommonHourMatchesStartTimes(t *testing.T) {
	table := loadTable(t, filter.Chicago, filter.All, filter.All)

	startTimes, err := table.Strings(trip.DefaultColumns().StartTime)
	require.NoError(t, err)

	hours := make([]int, 0, len(startTimes))
	for _, startTimeStr := range startTimes {
		startTime, err := time.Parse("2006-01-02 15:04:05", startTimeStr)
		require.NoError(t, err)
		hours = append(hours, startTime.Hour())
	}
	expectedHour, ok := frequencycounter.FromValues(hours).Mode()
	require.True(t, ok)

	timeStats, err := ComputeTimeStats(table)
	require.NoError(t, err)
	assert.Equal(t, expectedHour, timeStats.MostCommonHour)
}

func TestComputeTimeStats_EmptyTable(t *testing.T) {
	_, err := ComputeTimeStats(loadTable(t, filter.Chicago, "february", filter.All))
	require.ErrorIs(t, err, ErrEmptyTable)
}

func TestComputeStationStats(t *testing.T) {
	stationStats, err := ComputeStationStats(loadTable(t, filter.Chicago, filter.All, filter.All), trip.DefaultColumns(), "-")
	require.NoError(t, err)

	expected := StationStats{
		MostCommonStartStation: "Clark St & Elm St",
		MostCommonEndStation:   "Canal St & Adams St",
		MostCommonTrip:         "Clark St & Elm St-Canal St & Adams St",
	}
	assert.Equal(t, expected, stationStats)
}

func TestComputeStationStats_FilteredByMonth(t *testing.T) {
	stationStats, err := ComputeStationStats(loadTable(t, filter.Chicago, "march", filter.All), trip.DefaultColumns(), "|")
	require.NoError(t, err)

	assert.Equal(t, "Canal St & Adams St", stationStats.MostCommonStartStation)
	assert.Equal(t, "Streeter Dr & Grand Ave", stationStats.MostCommonEndStation)
	assert.Equal(t, "Canal St & Adams St|Streeter Dr & Grand Ave", stationStats.MostCommonTrip)
}

func TestComputeStationStats_SkipsMissingStations(t *testing.T) {
	// --- Arrange ---
	trips := strings.Join([]string{
		"Start Time,Trip Duration,Start Station,End Station,User Type",
		"2017-01-02 08:15:00,300,,Sheffield Ave & Waveland Ave,Subscriber",
		"2017-01-02 09:15:00,300,,Sheffield Ave & Waveland Ave,Subscriber",
		"2017-01-03 08:30:00,600,Clark St & Elm St,Canal St & Adams St,Customer",
		"2017-01-04 08:30:00,600,Clark St & Elm St,,Customer",
	}, "\n")
	table, err := dataset.ReadTrips(strings.NewReader(trips), trip.DefaultColumns())
	require.NoError(t, err)

	// --- Act ---
	stationStats, err := ComputeStationStats(table, trip.DefaultColumns(), "-")

	// --- Assert ---
	require.NoError(t, err)
	expected := StationStats{
		MostCommonStartStation: "Clark St & Elm St",
		MostCommonEndStation:   "Sheffield Ave & Waveland Ave",
		MostCommonTrip:         "Clark St & Elm St-Canal St & Adams St",
	}
	assert.Equal(t, expected, stationStats)
}

func TestComputeStationStats_EmptyTable(t *testing.T) {
	_, err := ComputeStationStats(loadTable(t, filter.Chicago, "february", filter.All), trip.DefaultColumns(), "-")
	require.ErrorIs(t, err, ErrEmptyTable)
}

func TestComputeDurationStats(t *testing.T) {
	testCases := []struct {
		name            string
		city            filter.City
		expectedTotal   float64
		expectedAverage float64
	}{
		{name: "chicago", city: filter.Chicago, expectedTotal: 3660, expectedAverage: 610},
		{name: "washington", city: filter.Washington, expectedTotal: 1892, expectedAverage: 630.6666666},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			durationStats, err := ComputeDurationStats(loadTable(t, tc.city, filter.All, filter.All), trip.DefaultColumns())
			require.NoError(t, err)
			assert.InDelta(t, tc.expectedTotal, durationStats.TotalDuration, 1e-6)
			assert.InDelta(t, tc.expectedAverage, durationStats.AverageDuration, 1e-6)
		})
	}
}

func TestComputeDurationStats_SubsetNeverExceedsTotal(t *testing.T) {
	columns := trip.DefaultColumns()
	unfiltered, err := ComputeDurationStats(loadTable(t, filter.Chicago, filter.All, filter.All), columns)
	require.NoError(t, err)

	months := append([]string{filter.All}, filter.Months...)
	days := append([]string{filter.All}, filter.Days...)
	for _, month := range months {
		for _, day := range days {
			table := loadTable(t, filter.Chicago, filter.Month(month), filter.Day(day))
			if table.Nrow() == 0 {
				continue
			}

			durationStats, err := ComputeDurationStats(table, columns)
			require.NoError(t, err)
			assert.LessOrEqual(t, durationStats.TotalDuration, unfiltered.TotalDuration, "month: %s, day: %s", month, day)
		}
	}
}

func TestComputeUserStats_WithDemographics(t *testing.T) {
	userStats, err := ComputeUserStats(loadTable(t, filter.Chicago, filter.All, filter.All), trip.DefaultColumns())
	require.NoError(t, err)

	expectedUserTypes := []frequencycounter.ValueCount[string]{
		{Value: "Subscriber", Count: 4},
		{Value: "Customer", Count: 2},
	}
	if diff := cmp.Diff(expectedUserTypes, userStats.UserTypes); diff != "" {
		t.Errorf("user types mismatch (-want +got):\n%s", diff)
	}

	genders, ok := userStats.Genders.Get()
	require.True(t, ok)
	expectedGenders := []frequencycounter.ValueCount[string]{
		{Value: "Male", Count: 3},
		{Value: "Female", Count: 2},
	}
	if diff := cmp.Diff(expectedGenders, genders); diff != "" {
		t.Errorf("genders mismatch (-want +got):\n%s", diff)
	}

	birthYears, ok := userStats.BirthYears.Get()
	require.True(t, ok)
	assert.Equal(t, BirthYearStats{Earliest: 1972, MostRecent: 1999, MostCommon: 1985}, birthYears)
}

func TestComputeUserStats_WithoutDemographics(t *testing.T) {
	userStats, err := ComputeUserStats(loadTable(t, filter.Washington, filter.All, filter.All), trip.DefaultColumns())
	require.NoError(t, err)

	expectedUserTypes := []frequencycounter.ValueCount[string]{
		{Value: "Subscriber", Count: 2},
		{Value: "Customer", Count: 1},
	}
	if diff := cmp.Diff(expectedUserTypes, userStats.UserTypes); diff != "" {
		t.Errorf("user types mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, userStats.Genders.IsPresent())
	assert.False(t, userStats.BirthYears.IsPresent())
}

func TestComputeUserStats_OnlyMissingBirthYears(t *testing.T) {
	// the only Chicago trip of a Monday in March at 17h has neither gender nor birth year
	table := loadTable(t, filter.Chicago, "march", "monday")
	table, err := table.Where(trip.HourColumn, 17)
	require.NoError(t, err)
	require.Equal(t, 1, table.Nrow())

	userStats, err := ComputeUserStats(table, trip.DefaultColumns())
	require.NoError(t, err)

	genders, ok := userStats.Genders.Get()
	require.True(t, ok)
	assert.Empty(t, genders)
	assert.False(t, userStats.BirthYears.IsPresent())
}
